package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

// RequirementsPolicy decides how an unavailable requirements file affects packaging.
type RequirementsPolicy string

const (
	// PolicySoft treats a missing file as an empty requirement list and any other fault as fatal.
	PolicySoft RequirementsPolicy = "soft"
	// PolicyStrict treats every fault, including a missing file, as fatal.
	PolicyStrict RequirementsPolicy = "strict"
	// PolicyLenient treats every fault as an empty requirement list.
	PolicyLenient RequirementsPolicy = "lenient"
)

// ParseRequirementsPolicy parses s, mapping the empty string to PolicySoft.
func ParseRequirementsPolicy(s string) (RequirementsPolicy, error) {
	switch p := RequirementsPolicy(s); p {
	case "":
		return PolicySoft, nil
	case PolicySoft, PolicyStrict, PolicyLenient:
		return p, nil
	default:
		return "", zerr.With(ErrInvalidPolicy, "policy", s)
	}
}

// UnavailableDiagnostic is the message reported when a requirements file is
// replaced by an empty list.
func UnavailableDiagnostic(path string) string {
	return fmt.Sprintf("Could not open requirements file %s", path)
}
