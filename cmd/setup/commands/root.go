// Package commands implements the CLI commands for the setup tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/whencanirun/internal/app"
	"go.trai.ch/whencanirun/internal/build"
)

// CLI represents the command line interface for setup.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Requirements(ctx context.Context, opts app.Options, w io.Writer) error
	Show(ctx context.Context, opts app.Options, format string, w io.Writer) error
	Build(ctx context.Context, opts app.Options) (string, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "setup",
		Short:         "Package the when_can_i_run script and its requirements",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	flags := rootCmd.PersistentFlags()
	flags.StringP("dir", "C", ".", "Project directory containing setup.yaml")
	flags.StringP("requirements", "r", "", "Requirements file (overrides setup.yaml)")
	flags.String("requirements-policy", "", "How an unavailable requirements file is handled: soft, strict or lenient")
	flags.Bool("json-log", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRequirementsCmd())
	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetJSONLogHook sets up a PersistentPreRun function that reads the json-log
// flag and passes its value to fn.
func (c *CLI) SetJSONLogHook(fn func(bool)) {
	c.rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		enabled, err := cmd.Flags().GetBool("json-log")
		if err != nil {
			return err
		}
		fn(enabled)
		return nil
	}
}

func options(cmd *cobra.Command) app.Options {
	dir, _ := cmd.Flags().GetString("dir")
	reqs, _ := cmd.Flags().GetString("requirements")
	policy, _ := cmd.Flags().GetString("requirements-policy")

	return app.Options{
		Dir:          dir,
		Requirements: reqs,
		Policy:       policy,
	}
}
