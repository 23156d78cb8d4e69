package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/whencanirun/internal/core/ports"
)

// HasherNodeID is the unique identifier for the fingerprinter Graft node.
const HasherNodeID graft.ID = "adapter.fs.hasher"

func init() {
	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Fingerprinter, error) {
			return NewHasher(), nil
		},
	})
}
