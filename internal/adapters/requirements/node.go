package requirements

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/whencanirun/internal/adapters/logger"
	"go.trai.ch/whencanirun/internal/core/ports"
)

// NodeID is the unique identifier for the requirements loader Graft node.
const NodeID graft.ID = "adapter.requirements_loader"

func init() {
	graft.Register(graft.Node[ports.RequirementsLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RequirementsLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
