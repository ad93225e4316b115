package cmd

import (
	"fmt"

	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/config"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// projectOptions mirrors the project command's flags. Defaults match the
// calculator form: $1,000 at 5% for 10 years, compounded annually.
type projectOptions struct {
	configFile            string
	principal             string
	rate                  string
	years                 int
	compounding           string
	contribution          string
	contributionFrequency string
	age                   int
	target                string
	insights              bool
	format                string
	output                string
	seed                  int64
}

func newProjectCommand(root *rootOptions) *cobra.Command {
	opts := &projectOptions{}
	c := &cobra.Command{
		Use:   "project",
		Short: "Project future value, timeline and insights",
		Long: `Project how an investment grows. Inputs come from a YAML or TOML request
file (--config), from flags, or both; flags override file values.

Console formats print to stdout unless --output is given. Other formats are
written to --output, or to a timestamped growth_report_* file.`,
		Example: `  growthcalc project --principal 1000 --rate 0.05 --years 10 --compounding monthly
  growthcalc project --config request.yaml --insights --format html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(cmd, root, opts)
		},
	}

	f := c.Flags()
	f.StringVar(&opts.configFile, "config", "", "Projection request file (.yaml, .yml, .json or .toml)")
	f.StringVar(&opts.principal, "principal", "1000", "Initial principal")
	f.StringVar(&opts.rate, "rate", "0.05", "Annual interest rate as a decimal fraction (0.05 = 5%)")
	f.IntVar(&opts.years, "years", 10, "Investment horizon in whole years")
	f.StringVar(&opts.compounding, "compounding", "annually", "Compounding frequency (name or periods per year)")
	f.StringVar(&opts.contribution, "contribution", "0", "Recurring contribution amount")
	f.StringVar(&opts.contributionFrequency, "contribution-frequency", "monthly", "Contribution frequency (name or periods per year)")
	f.IntVar(&opts.age, "age", 0, "Investor age, used for recommendations")
	f.StringVar(&opts.target, "target", "", "Target amount; solves for the required annual rate")
	f.BoolVar(&opts.insights, "insights", false, "Include insights, recommendations and benchmark comparisons")
	f.StringVarP(&opts.format, "format", "f", "console", "Report format (see 'growthcalc formats', or 'all')")
	f.StringVarP(&opts.output, "output", "o", "", "Output file (or directory for --format all)")
	f.Int64Var(&opts.seed, "seed", 0, "Seed for the general tip picker (reproducible output)")
	return c
}

func runProject(cmd *cobra.Command, root *rootOptions, opts *projectOptions) error {
	req, err := buildRequest(cmd, opts)
	if err != nil {
		return err
	}

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(newLogger(cmd.ErrOrStderr(), root.verbose))
	if cmd.Flags().Changed("seed") {
		engine.SetSeed(opts.seed)
	}

	report, err := engine.RunProjection(req)
	if err != nil {
		return err
	}
	return writeReport(cmd, report, opts)
}

// buildRequest loads the request file when given and applies flag overrides.
// Without a file every flag applies, defaults included.
func buildRequest(cmd *cobra.Command, opts *projectOptions) (*domain.ProjectionRequest, error) {
	flags := cmd.Flags()
	useFlag := func(name string) bool { return opts.configFile == "" || flags.Changed(name) }

	req := &domain.ProjectionRequest{}
	if opts.configFile != "" {
		loaded, err := config.NewInputParser().LoadFromFile(opts.configFile)
		if err != nil {
			return nil, err
		}
		req = loaded
	}
	inv := &req.Investment

	if useFlag("principal") {
		v, err := parseDecimalFlag("principal", opts.principal)
		if err != nil {
			return nil, err
		}
		inv.Principal = v
	}
	if useFlag("rate") {
		v, err := parseDecimalFlag("rate", opts.rate)
		if err != nil {
			return nil, err
		}
		inv.AnnualRate = v
	}
	if useFlag("years") {
		inv.Years = opts.years
	}
	if useFlag("compounding") {
		freq, err := domain.ParseFrequency(opts.compounding)
		if err != nil {
			return nil, fmt.Errorf("invalid --compounding: %w", err)
		}
		inv.CompoundingFrequency = freq
	}
	if useFlag("contribution") {
		v, err := parseDecimalFlag("contribution", opts.contribution)
		if err != nil {
			return nil, err
		}
		inv.ContributionAmount = v
	}
	if useFlag("contribution-frequency") {
		freq, err := domain.ParseFrequency(opts.contributionFrequency)
		if err != nil {
			return nil, fmt.Errorf("invalid --contribution-frequency: %w", err)
		}
		inv.ContributionFrequency = freq
	}
	if flags.Changed("age") {
		age := opts.age
		req.Investor.Age = &age
	}
	if flags.Changed("target") {
		v, err := parseDecimalFlag("target", opts.target)
		if err != nil {
			return nil, err
		}
		req.TargetAmount = &v
	}
	if flags.Changed("insights") {
		req.IncludeInsights = opts.insights
	}
	return req, nil
}

func parseDecimalFlag(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: must be a number", name, value)
	}
	return d, nil
}

// writeReport prints console formats to stdout and writes everything else to files.
func writeReport(cmd *cobra.Command, report *domain.ProjectionReport, opts *projectOptions) error {
	if output.NormalizeFormatName(opts.format) == "all" {
		paths, err := output.GenerateReport(report, "all", opts.output)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", p)
		}
		return nil
	}

	f := output.GetFormatterByName(opts.format)
	if f == nil {
		_, err := output.GenerateReport(report, opts.format, "")
		return err
	}

	switch {
	case opts.output != "":
		if err := output.WriteFormattedTo(f, report, opts.output); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", opts.output)
	case output.ExtensionFor(f) == "txt":
		data, err := f.Format(report)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	default:
		path, err := output.WriteFormatted(f, report, "", output.ExtensionFor(f))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	}
	return nil
}
