package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRequirementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "requirements",
		Short: "List the install requirements in file order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Requirements(cmd.Context(), options(cmd), cmd.OutOrStdout())
		},
	}
}
