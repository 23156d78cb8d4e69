package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/whencanirun/internal/adapters/detector"
	"go.trai.ch/whencanirun/internal/app"
	"go.trai.ch/whencanirun/internal/core/domain"
	"go.trai.ch/whencanirun/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	manifests    *mocks.MockManifestLoader
	requirements *mocks.MockRequirementsLoader
	fingerprints *mocks.MockFingerprinter
	writer       *mocks.MockDistributionWriter
	logger       *mocks.MockLogger
}

func newTestApp(t *testing.T) (*app.App, *testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &testMocks{
		manifests:    mocks.NewMockManifestLoader(ctrl),
		requirements: mocks.NewMockRequirementsLoader(ctrl),
		fingerprints: mocks.NewMockFingerprinter(ctrl),
		writer:       mocks.NewMockDistributionWriter(ctrl),
		logger:       mocks.NewMockLogger(ctrl),
	}

	a := app.New(m.manifests, m.requirements, m.fingerprints, m.writer, m.logger).
		WithOutputMode(detector.ModePlain)
	return a, m
}

var sampleReqs = domain.Requirements{"requests>=2.0\n", "flask==1.1\n"}

func notFound(path string) error {
	return errors.Join(domain.ErrRequirementsNotFound, errors.New("open "+path+": no such file or directory"))
}

func TestApp_Resolve(t *testing.T) {
	a, m := newTestApp(t)

	reqPath := filepath.Join("proj", "requirements.txt")
	m.manifests.EXPECT().Load("proj").Return(domain.DefaultManifest(), nil)
	m.requirements.EXPECT().Load(reqPath).Return(sampleReqs, nil)
	m.fingerprints.EXPECT().Fingerprint(sampleReqs).Return("0123456789abcdef")

	d, err := a.Resolve(context.Background(), app.Options{Dir: "proj"})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultName, d.Name)
	assert.Equal(t, domain.DefaultVersion, d.Version)
	assert.Equal(t, domain.DefaultAuthor, d.Author)
	assert.Equal(t, sampleReqs, d.InstallRequires)
	assert.Equal(t, []string{domain.DefaultScript}, d.Scripts)
	assert.Equal(t, "0123456789abcdef", d.Fingerprint)
}

func TestApp_Resolve_DefaultDir(t *testing.T) {
	a, m := newTestApp(t)

	m.manifests.EXPECT().Load(".").Return(domain.DefaultManifest(), nil)
	m.requirements.EXPECT().Load("requirements.txt").Return(domain.Requirements{}, nil)
	m.fingerprints.EXPECT().Fingerprint(gomock.Any()).Return("x")

	_, err := a.Resolve(context.Background(), app.Options{})
	require.NoError(t, err)
}

func TestApp_Resolve_RequirementsOverride(t *testing.T) {
	a, m := newTestApp(t)
	abs := filepath.Join(t.TempDir(), "other.txt")

	m.manifests.EXPECT().Load("proj").Return(domain.DefaultManifest(), nil)
	m.requirements.EXPECT().Load(abs).Return(sampleReqs, nil)
	m.fingerprints.EXPECT().Fingerprint(gomock.Any()).Return("x")

	_, err := a.Resolve(context.Background(), app.Options{Dir: "proj", Requirements: abs})
	require.NoError(t, err)
}

func TestApp_Resolve_Policies(t *testing.T) {
	reqPath := filepath.Join(".", "requirements.txt")

	t.Run("soft policy degrades a missing file", func(t *testing.T) {
		a, m := newTestApp(t)

		m.manifests.EXPECT().Load(".").Return(domain.DefaultManifest(), nil)
		m.requirements.EXPECT().Load(reqPath).Return(nil, notFound(reqPath))
		m.logger.EXPECT().Warn("Could not open requirements file " + reqPath)
		m.fingerprints.EXPECT().Fingerprint(domain.Requirements{}).Return("ef46db3751d8e999")

		d, err := a.Resolve(context.Background(), app.Options{})
		require.NoError(t, err)
		assert.NotNil(t, d.InstallRequires)
		assert.Empty(t, d.InstallRequires)
	})

	t.Run("soft policy propagates other faults", func(t *testing.T) {
		a, m := newTestApp(t)
		readErr := errors.Join(domain.ErrRequirementsReadFailed, errors.New("permission denied"))

		m.manifests.EXPECT().Load(".").Return(domain.DefaultManifest(), nil)
		m.requirements.EXPECT().Load(reqPath).Return(nil, readErr)

		_, err := a.Resolve(context.Background(), app.Options{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrRequirementsReadFailed))
	})

	t.Run("strict policy from manifest", func(t *testing.T) {
		a, m := newTestApp(t)
		manifest := domain.DefaultManifest()
		manifest.Policy = domain.PolicyStrict

		m.manifests.EXPECT().Load(".").Return(manifest, nil)
		m.requirements.EXPECT().Load(reqPath).Return(nil, notFound(reqPath))

		_, err := a.Resolve(context.Background(), app.Options{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrRequirementsNotFound))
	})

	t.Run("strict policy from options", func(t *testing.T) {
		a, m := newTestApp(t)

		m.manifests.EXPECT().Load(".").Return(domain.DefaultManifest(), nil)
		m.requirements.EXPECT().Load(reqPath).Return(nil, notFound(reqPath))

		_, err := a.Resolve(context.Background(), app.Options{Policy: "strict"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrRequirementsNotFound))
	})

	t.Run("lenient policy uses the fail-soft loader", func(t *testing.T) {
		a, m := newTestApp(t)

		m.manifests.EXPECT().Load(".").Return(domain.DefaultManifest(), nil)
		m.requirements.EXPECT().LoadOrEmpty(reqPath).Return(domain.Requirements{})
		m.fingerprints.EXPECT().Fingerprint(domain.Requirements{}).Return("x")

		d, err := a.Resolve(context.Background(), app.Options{Policy: "lenient"})
		require.NoError(t, err)
		assert.Empty(t, d.InstallRequires)
	})

	t.Run("invalid policy", func(t *testing.T) {
		a, m := newTestApp(t)
		m.manifests.EXPECT().Load(".").Return(domain.DefaultManifest(), nil)

		_, err := a.Resolve(context.Background(), app.Options{Policy: "ignore"})
		require.ErrorContains(t, err, domain.ErrInvalidPolicy.Error())
	})
}

func TestApp_Resolve_ManifestError(t *testing.T) {
	a, m := newTestApp(t)
	m.manifests.EXPECT().Load(".").Return(domain.Manifest{}, errors.New("bad manifest"))

	_, err := a.Resolve(context.Background(), app.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load manifest")
}

func TestApp_Resolve_Canceled(t *testing.T) {
	a, _ := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Resolve(ctx, app.Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestApp_Requirements(t *testing.T) {
	a, m := newTestApp(t)

	reqs := domain.Requirements{"requests>=2.0\n", "flask==1.1"}
	m.manifests.EXPECT().Load(".").Return(domain.DefaultManifest(), nil)
	m.requirements.EXPECT().Load(gomock.Any()).Return(reqs, nil)
	m.fingerprints.EXPECT().Fingerprint(reqs).Return("x")

	buf := &bytes.Buffer{}
	require.NoError(t, a.Requirements(context.Background(), app.Options{}, buf))
	assert.Equal(t, "requests>=2.0\nflask==1.1\n", buf.String())
}

func expectResolve(m *testMocks, reqs domain.Requirements) {
	m.manifests.EXPECT().Load(".").Return(domain.DefaultManifest(), nil)
	m.requirements.EXPECT().Load(gomock.Any()).Return(reqs, nil)
	m.fingerprints.EXPECT().Fingerprint(gomock.Any()).Return("0123456789abcdef")
}

func TestApp_Show(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		a, m := newTestApp(t)
		expectResolve(m, sampleReqs)

		buf := &bytes.Buffer{}
		require.NoError(t, a.Show(context.Background(), app.Options{}, app.FormatJSON, buf))

		var got map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "when_can_i_run", got["name"])
		assert.Equal(t, []any{"requests>=2.0", "flask==1.1"}, got["install_requires"])
		assert.Equal(t, "0123456789abcdef", got["fingerprint"])
	})

	t.Run("yaml", func(t *testing.T) {
		a, m := newTestApp(t)
		expectResolve(m, sampleReqs)

		buf := &bytes.Buffer{}
		require.NoError(t, a.Show(context.Background(), app.Options{}, app.FormatYAML, buf))
		assert.Contains(t, buf.String(), "name: when_can_i_run\n")
		assert.Contains(t, buf.String(), "install_requires:\n  - requests>=2.0\n  - flask==1.1\n")
	})

	t.Run("auto renders yaml outside a terminal", func(t *testing.T) {
		a, m := newTestApp(t)
		expectResolve(m, domain.Requirements{})

		buf := &bytes.Buffer{}
		require.NoError(t, a.Show(context.Background(), app.Options{}, "", buf))
		assert.Contains(t, buf.String(), "install_requires: []\n")
	})

	t.Run("auto renders a summary on a terminal", func(t *testing.T) {
		a, m := newTestApp(t)
		a.WithOutputMode(detector.ModeStyled)
		expectResolve(m, sampleReqs)

		buf := &bytes.Buffer{}
		require.NoError(t, a.Show(context.Background(), app.Options{}, app.FormatAuto, buf))
		assert.Contains(t, buf.String(), "when_can_i_run 0.0.1")
		assert.Contains(t, buf.String(), "install_requires (2):")
		assert.Contains(t, buf.String(), "requests>=2.0\n")
		assert.Contains(t, buf.String(), domain.DefaultScript)
	})

	t.Run("invalid format", func(t *testing.T) {
		a, _ := newTestApp(t)

		err := a.Show(context.Background(), app.Options{}, "toml", &bytes.Buffer{})
		require.ErrorContains(t, err, domain.ErrInvalidFormat.Error())
	})
}

func TestApp_Build(t *testing.T) {
	t.Run("writes descriptor", func(t *testing.T) {
		a, m := newTestApp(t)
		expectResolve(m, sampleReqs)

		want := filepath.Join(".", "dist", "when_can_i_run-0.0.1.json")
		m.writer.EXPECT().Write(".", gomock.Any()).DoAndReturn(func(_ string, d *domain.Distribution) (string, error) {
			assert.Equal(t, sampleReqs, d.InstallRequires)
			return want, nil
		})
		m.logger.EXPECT().Info("wrote " + want)

		got, err := a.Build(context.Background(), app.Options{})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("write failure", func(t *testing.T) {
		a, m := newTestApp(t)
		expectResolve(m, sampleReqs)
		m.writer.EXPECT().Write(".", gomock.Any()).Return("", errors.New("disk full"))

		_, err := a.Build(context.Background(), app.Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to build distribution")
	})
}
