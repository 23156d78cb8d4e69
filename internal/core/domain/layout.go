package domain

import "path/filepath"

const (
	// ManifestFileName is the name of the distribution manifest file.
	ManifestFileName = "setup.yaml"

	// DefaultRequirementsFile is the requirements file used when the manifest names none.
	DefaultRequirementsFile = "requirements.txt"

	// DistDirName is the name of the directory distribution descriptors are written to.
	DistDirName = "dist"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DescriptorPath returns the path of the descriptor for the distribution under root.
func DescriptorPath(root string, d *Distribution) string {
	return filepath.Join(root, DistDirName, d.Name+"-"+d.Version+".json")
}
