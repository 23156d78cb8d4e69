package dist_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/whencanirun/internal/adapters/dist"
	"go.trai.ch/whencanirun/internal/core/domain"
)

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	d := domain.NewDistribution(domain.DefaultManifest(), domain.Requirements{"requests>=2.0\n", "flask==1.1\n"})
	d.Fingerprint = "0123456789abcdef"

	path, err := dist.NewWriter().Write(root, d)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "dist", "when_can_i_run-0.0.1.json"), path)

	//nolint:gosec // Test reads the file it just wrote
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got domain.Distribution
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, *d, got)
	assert.Contains(t, string(data), `"install_requires": [`)
	assert.Contains(t, string(data), `"requests>=2.0\n"`)
}

func TestWriter_Write_Overwrites(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	w := dist.NewWriter()
	d := domain.NewDistribution(domain.DefaultManifest(), nil)

	_, err := w.Write(root, d)
	require.NoError(t, err)

	d.Description = "updated"
	path, err := w.Write(root, d)
	require.NoError(t, err)

	//nolint:gosec // Test reads the file it just wrote
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"description": "updated"`)
}

func TestWriter_Write_DistIsFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.DistDirName), []byte("x"), domain.FilePerm))

	_, err := dist.NewWriter().Write(root, domain.NewDistribution(domain.DefaultManifest(), nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create dist directory")
}
