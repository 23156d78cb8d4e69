package ports

import "go.trai.ch/whencanirun/internal/core/domain"

// Fingerprinter defines the interface for digesting a requirement sequence.
//
//go:generate mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns a stable digest of reqs. Order is significant.
	Fingerprint(reqs domain.Requirements) string
}
