// Package dist writes resolved distribution descriptors to disk.
package dist

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/whencanirun/internal/core/domain"
	"go.trai.ch/whencanirun/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DistributionWriter = (*Writer)(nil)

// Writer implements ports.DistributionWriter with one JSON file per
// distribution version under the dist directory.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write stores the descriptor for d under root and returns its path.
// An existing descriptor for the same name and version is replaced.
func (w *Writer) Write(root string, d *domain.Distribution) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return "", zerr.Wrap(err, domain.ErrDescriptorMarshalFailed.Error())
	}
	data := buf.Bytes()

	filename := domain.DescriptorPath(root, d)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDistDirCreateFailed.Error()), "path", filepath.Dir(filename))
	}

	//nolint:gosec // Path is built from the project root and validated manifest fields
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDescriptorWriteFailed.Error()), "path", filename)
	}

	return filename, nil
}
