// Package app implements the application layer for the setup tool.
package app

import (
	"context"
	"errors"
	"path/filepath"

	"go.trai.ch/whencanirun/internal/adapters/detector"
	"go.trai.ch/whencanirun/internal/core/domain"
	"go.trai.ch/whencanirun/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	manifests    ports.ManifestLoader
	requirements ports.RequirementsLoader
	fingerprints ports.Fingerprinter
	writer       ports.DistributionWriter
	logger       ports.Logger
	detectMode   func() detector.OutputMode
}

// New creates a new App instance.
func New(
	manifests ports.ManifestLoader,
	requirements ports.RequirementsLoader,
	fingerprints ports.Fingerprinter,
	writer ports.DistributionWriter,
	log ports.Logger,
) *App {
	return &App{
		manifests:    manifests,
		requirements: requirements,
		fingerprints: fingerprints,
		writer:       writer,
		logger:       log,
		detectMode:   detector.DetectEnvironment,
	}
}

// WithOutputMode overrides terminal detection for the auto format.
// This is primarily used for testing.
func (a *App) WithOutputMode(mode detector.OutputMode) *App {
	a.detectMode = func() detector.OutputMode { return mode }
	return a
}

// Options configures how a distribution is resolved.
type Options struct {
	// Dir is the project directory holding the manifest. Defaults to ".".
	Dir string
	// Requirements overrides the manifest's requirements file.
	Requirements string
	// Policy overrides the manifest's requirements policy when set.
	Policy string
}

// Resolve loads the manifest and its requirements into a distribution.
func (a *App) Resolve(ctx context.Context, opts Options) (*domain.Distribution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	manifest, err := a.manifests.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}

	policy := manifest.Policy
	if opts.Policy != "" {
		policy, err = domain.ParseRequirementsPolicy(opts.Policy)
		if err != nil {
			return nil, err
		}
	}

	path := opts.Requirements
	if path == "" {
		path = manifest.RequirementsFile
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	reqs, err := a.loadRequirements(path, policy)
	if err != nil {
		return nil, err
	}

	d := domain.NewDistribution(manifest, reqs)
	d.Fingerprint = a.fingerprints.Fingerprint(d.InstallRequires)
	return d, nil
}

func (a *App) loadRequirements(path string, policy domain.RequirementsPolicy) (domain.Requirements, error) {
	if policy == domain.PolicyLenient {
		return a.requirements.LoadOrEmpty(path), nil
	}

	reqs, err := a.requirements.Load(path)
	if err == nil {
		return reqs, nil
	}

	if policy == domain.PolicySoft && errors.Is(err, domain.ErrRequirementsNotFound) {
		a.logger.Warn(domain.UnavailableDiagnostic(path))
		return domain.Requirements{}, nil
	}

	return nil, err
}

// Build resolves the distribution and writes its descriptor under the
// project directory, returning the descriptor path.
func (a *App) Build(ctx context.Context, opts Options) (string, error) {
	d, err := a.Resolve(ctx, opts)
	if err != nil {
		return "", err
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	path, err := a.writer.Write(dir, d)
	if err != nil {
		return "", zerr.Wrap(err, "failed to build distribution")
	}

	a.logger.Info("wrote " + path)
	return path, nil
}
