// Package config provides the manifest loader for the setup tool.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"go.trai.ch/whencanirun/internal/core/domain"
	"go.trai.ch/whencanirun/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var validNameRegex = regexp.MustCompile("^[a-zA-Z0-9._-]+$")

// Loader implements ports.ManifestLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads setup.yaml from dir. Fields the file leaves unset keep their
// default values, and a missing file yields the default manifest.
func (l *Loader) Load(dir string) (domain.Manifest, error) {
	manifest := domain.DefaultManifest()
	path := filepath.Join(dir, domain.ManifestFileName)

	var setupfile Setupfile
	found, err := readAndUnmarshalYAML(path, &setupfile)
	if err != nil {
		return domain.Manifest{}, zerr.With(err, "path", path)
	}
	if !found {
		if l.Logger != nil {
			l.Logger.Info(fmt.Sprintf("no %s found in %s, using built-in metadata", domain.ManifestFileName, dir))
		}
		return manifest, nil
	}

	if err := applySetupfile(&manifest, &setupfile); err != nil {
		return domain.Manifest{}, zerr.With(err, "path", path)
	}

	if err := validate(&manifest); err != nil {
		return domain.Manifest{}, zerr.With(err, "path", path)
	}

	return manifest, nil
}

func validate(m *domain.Manifest) error {
	if !validNameRegex.MatchString(m.Name) {
		return zerr.With(domain.ErrInvalidDistributionName, "name", m.Name)
	}
	if strings.ContainsFunc(m.Version, unicode.IsSpace) {
		return zerr.With(domain.ErrInvalidVersion, "version", m.Version)
	}
	return nil
}

func applySetupfile(m *domain.Manifest, s *Setupfile) error {
	setIfNotEmpty(&m.Name, s.Name)
	setIfNotEmpty(&m.Version, s.Version)
	setIfNotEmpty(&m.Description, s.Description)
	setIfNotEmpty(&m.Author, s.Author)
	setIfNotEmpty(&m.AuthorEmail, s.AuthorEmail)
	setIfNotEmpty(&m.RequirementsFile, s.Requirements)

	if s.Scripts != nil {
		m.Scripts = s.Scripts
	}

	policy, err := domain.ParseRequirementsPolicy(s.Policy)
	if err != nil {
		return err
	}
	m.Policy = policy
	return nil
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// readAndUnmarshalYAML reports false without error when path does not exist.
func readAndUnmarshalYAML[T any](path string, target *T) (bool, error) {
	// #nosec G304 -- path is built from the working directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return false, zerr.Wrap(parseErr, domain.ErrManifestParseFailed.Error())
	}

	return true, nil
}
