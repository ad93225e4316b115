package cmd

import (
	"fmt"

	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/internal/output"
	"github.com/spf13/cobra"
)

func newRateCommand() *cobra.Command {
	var (
		principal   string
		target      string
		years       int
		compounding string
	)
	c := &cobra.Command{
		Use:     "rate",
		Short:   "Annual rate required to grow a principal into a target amount",
		Example: "  growthcalc rate --principal 1000 --target 2000 --years 10 --compounding monthly",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseDecimalFlag("principal", principal)
			if err != nil {
				return err
			}
			t, err := parseDecimalFlag("target", target)
			if err != nil {
				return err
			}
			freq, err := domain.ParseFrequency(compounding)
			if err != nil {
				return fmt.Errorf("invalid --compounding: %w", err)
			}
			rate, err := calculation.CalculateRequiredRate(p, t, years, freq)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Required annual rate: %s (%s)\n", output.FormatRate(rate), rate.StringFixed(4))
			return nil
		},
	}
	c.Flags().StringVar(&principal, "principal", "", "Initial principal")
	c.Flags().StringVar(&target, "target", "", "Target amount")
	c.Flags().IntVar(&years, "years", 0, "Investment horizon in whole years")
	c.Flags().StringVar(&compounding, "compounding", "annually", "Compounding frequency (name or periods per year)")
	_ = c.MarkFlagRequired("principal")
	_ = c.MarkFlagRequired("target")
	_ = c.MarkFlagRequired("years")
	return c
}
