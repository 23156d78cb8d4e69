package domain

import "go.trai.ch/zerr"

var (
	// ErrRequirementsNotFound is returned when the requirements file does not exist.
	ErrRequirementsNotFound = zerr.New("requirements file not found")

	// ErrRequirementsReadFailed is returned when the requirements file exists but cannot be opened or read.
	ErrRequirementsReadFailed = zerr.New("failed to read requirements file")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest file")

	// ErrManifestParseFailed is returned when the manifest file cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest file")

	// ErrInvalidDistributionName is returned when a distribution name contains invalid characters.
	ErrInvalidDistributionName = zerr.New("distribution name can only contain alphanumeric characters, dots, hyphens and underscores")

	// ErrInvalidVersion is returned when a version contains whitespace.
	ErrInvalidVersion = zerr.New("version must not contain whitespace")

	// ErrInvalidPolicy is returned when an unknown requirements policy is requested.
	ErrInvalidPolicy = zerr.New("invalid requirements policy, expected 'soft', 'strict' or 'lenient'")

	// ErrInvalidFormat is returned when an unknown output format is requested.
	ErrInvalidFormat = zerr.New("invalid output format, expected 'auto', 'yaml' or 'json'")

	// ErrRenderFailed is returned when a distribution cannot be rendered.
	ErrRenderFailed = zerr.New("failed to render distribution")

	// ErrDescriptorMarshalFailed is returned when a distribution descriptor cannot be marshaled.
	ErrDescriptorMarshalFailed = zerr.New("failed to marshal distribution descriptor")

	// ErrDescriptorWriteFailed is returned when a distribution descriptor cannot be written.
	ErrDescriptorWriteFailed = zerr.New("failed to write distribution descriptor")

	// ErrDistDirCreateFailed is returned when the dist directory cannot be created.
	ErrDistDirCreateFailed = zerr.New("failed to create dist directory")
)
