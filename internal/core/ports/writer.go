package ports

import "go.trai.ch/whencanirun/internal/core/domain"

// DistributionWriter defines the interface for persisting a resolved distribution.
//
//go:generate mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type DistributionWriter interface {
	// Write stores the descriptor for d under root and returns its path.
	Write(root string, d *domain.Distribution) (string, error)
}
