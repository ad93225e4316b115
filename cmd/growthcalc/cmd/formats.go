package cmd

import (
	"fmt"
	"strings"

	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List report formats, aliases and frequency names",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Formats:     %s, all\n", strings.Join(output.AvailableFormatterNames(), ", "))
			fmt.Fprintf(w, "Aliases:     %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
			fmt.Fprintf(w, "Frequencies: %s\n", strings.Join(domain.FrequencyNames(), ", "))
		},
	}
}
