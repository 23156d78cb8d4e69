package ports

import "go.trai.ch/whencanirun/internal/core/domain"

// ManifestLoader defines the interface for loading the distribution manifest.
//
//go:generate mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest from dir, falling back to domain.DefaultManifest
	// when dir holds no manifest file.
	Load(dir string) (domain.Manifest, error)
}
