// Package detector provides environment detection for output mode selection.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents the rendering mode for the show command.
type OutputMode int

const (
	// ModeStyled renders a colored summary for interactive terminals.
	ModeStyled OutputMode = iota
	// ModePlain renders machine-readable YAML.
	ModePlain
)

// DetectEnvironment returns the recommended output mode based on the environment.
// It checks if stdout is a TTY and if CI environment variables are set.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	return detect(isTTY, os.Getenv("CI"))
}

func detect(isTTY bool, ci string) OutputMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return ModePlain
	}
	return ModeStyled
}
