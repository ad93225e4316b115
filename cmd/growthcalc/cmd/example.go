package cmd

import (
	"fmt"

	"github.com/rpgo/growth-calculator/internal/config"
	"github.com/rpgo/growth-calculator/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "example [file]",
		Short: "Write an example projection request (stdout when no file is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := config.NewInputParser().CreateExampleConfiguration()
			if len(args) == 0 {
				data, err := yaml.Marshal(req)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := output.SaveConfiguration(req, args[0]); err != nil {
				return fmt.Errorf("failed to save example configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", args[0])
			return nil
		},
	}
}
