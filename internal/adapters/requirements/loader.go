// Package requirements reads requirements files into ordered dependency specifiers.
package requirements

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/whencanirun/internal/core/domain"
	"go.trai.ch/whencanirun/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.RequirementsLoader on the local filesystem.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader reporting diagnostics to logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the file at path and returns every line that does not contain
// the comment marker, verbatim and in file order.
func (l *Loader) Load(path string) (domain.Requirements, error) {
	// #nosec G304 -- path is the caller's requirements file
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(domain.ErrRequirementsNotFound, zerr.With(zerr.Wrap(err, "open"), "path", path))
		}
		return nil, errors.Join(domain.ErrRequirementsReadFailed, zerr.With(zerr.Wrap(err, "open"), "path", path))
	}
	defer func() {
		_ = f.Close()
	}()

	reqs, err := parse(f)
	if err != nil {
		return nil, errors.Join(domain.ErrRequirementsReadFailed, zerr.With(zerr.Wrap(err, "read"), "path", path))
	}
	return reqs, nil
}

// LoadOrEmpty calls Load and degrades any failure to an empty sequence,
// logging a single diagnostic that names path.
func (l *Loader) LoadOrEmpty(path string) domain.Requirements {
	reqs, err := l.Load(path)
	if err != nil {
		if l.Logger != nil {
			l.Logger.Warn(domain.UnavailableDiagnostic(path))
		}
		return domain.Requirements{}
	}
	return reqs
}

func parse(r io.Reader) (domain.Requirements, error) {
	reqs := domain.Requirements{}
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if req, ok := domain.NewRequirement(line); ok {
				reqs = append(reqs, req)
			}
		}
		if errors.Is(err, io.EOF) {
			return reqs, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
