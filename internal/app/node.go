package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/whencanirun/internal/adapters/config"       //nolint:depguard // Wired in app layer
	"go.trai.ch/whencanirun/internal/adapters/dist"         //nolint:depguard // Wired in app layer
	"go.trai.ch/whencanirun/internal/adapters/fs"           //nolint:depguard // Wired in app layer
	"go.trai.ch/whencanirun/internal/adapters/logger"       //nolint:depguard // Wired in app layer
	"go.trai.ch/whencanirun/internal/adapters/requirements" //nolint:depguard // Wired in app layer
	"go.trai.ch/whencanirun/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			requirements.NodeID,
			fs.HasherNodeID,
			dist.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(a, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	manifests, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}

	reqs, err := graft.Dep[ports.RequirementsLoader](ctx)
	if err != nil {
		return nil, err
	}

	fingerprints, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.DistributionWriter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(manifests, reqs, fingerprints, writer, log), nil
}
