package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/whencanirun/internal/app"
)

func (c *CLI) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved distribution metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			return c.app.Show(cmd.Context(), options(cmd), format, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringP("format", "f", app.FormatAuto, "Output format: auto, yaml, or json")
	return cmd
}
