package dist

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/whencanirun/internal/core/ports"
)

// NodeID is the unique identifier for the distribution writer Graft node.
const NodeID graft.ID = "adapter.dist_writer"

func init() {
	graft.Register(graft.Node[ports.DistributionWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DistributionWriter, error) {
			return NewWriter(), nil
		},
	})
}
