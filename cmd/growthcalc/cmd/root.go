package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	verbose bool
}

// NewRootCommand builds the growthcalc command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "growthcalc",
		Short: "Compound growth projector",
		Long: `growthcalc projects how an investment grows under periodic compounding
with optional recurring contributions.

Commands:
  project  - future value, year-by-year timeline, insights and reports
  rate     - annual rate required to reach a target amount
  example  - write an example projection request file
  formats  - list report formats`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose (debug) logging on stderr")

	root.AddCommand(
		newProjectCommand(opts),
		newRateCommand(),
		newExampleCommand(),
		newFormatsCommand(),
		newVersionCommand(),
	)
	return root
}

// Execute runs the CLI and prints any error to stderr.
func Execute() error {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

// printError writes "Error: " followed by the message text as is.
func printError(w io.Writer, err error) {
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
