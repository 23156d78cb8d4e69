package ports

import "go.trai.ch/whencanirun/internal/core/domain"

// RequirementsLoader defines the interface for reading a requirements file.
//
//go:generate mockgen -source=requirements_loader.go -destination=mocks/mock_requirements_loader.go -package=mocks
type RequirementsLoader interface {
	// Load returns the qualifying lines of the file at path in file order.
	// It returns domain.ErrRequirementsNotFound when the file does not exist
	// and domain.ErrRequirementsReadFailed for any other fault.
	Load(path string) (domain.Requirements, error)

	// LoadOrEmpty is the fail-soft form of Load. On any error it logs a
	// diagnostic naming path and returns an empty sequence.
	LoadOrEmpty(path string) domain.Requirements
}
