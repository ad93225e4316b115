package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MaxInvestorAge bounds the optional investor age.
const MaxInvestorAge = 130

// requestFile mirrors domain.ProjectionRequest with optional fields so that
// absent values can be told apart from explicit zeros.
type requestFile struct {
	Investment      investmentFile         `yaml:"investment" toml:"investment"`
	Investor        domain.InvestorProfile `yaml:"investor" toml:"investor"`
	TargetAmount    *decimal.Decimal       `yaml:"target_amount" toml:"target_amount"`
	IncludeInsights bool                   `yaml:"include_insights" toml:"include_insights"`
}

type investmentFile struct {
	Principal             *decimal.Decimal  `yaml:"principal" toml:"principal"`
	AnnualRate            *decimal.Decimal  `yaml:"annual_rate" toml:"annual_rate"`
	Years                 *int              `yaml:"years" toml:"years"`
	CompoundingFrequency  *domain.Frequency `yaml:"compounding_frequency" toml:"compounding_frequency"`
	ContributionAmount    *decimal.Decimal  `yaml:"contribution_amount" toml:"contribution_amount"`
	ContributionFrequency *domain.Frequency `yaml:"contribution_frequency" toml:"contribution_frequency"`
}

// InputParser handles parsing of projection request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a projection request from a YAML (or JSON) file, or a TOML
// file when the extension is .toml.
func (ip *InputParser) LoadFromFile(filename string) (*domain.ProjectionRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		return ip.ParseTOML(data)
	}
	return ip.ParseYAML(data)
}

// ParseYAML decodes and validates a YAML projection request.
func (ip *InputParser) ParseYAML(data []byte) (*domain.ProjectionRequest, error) {
	var file requestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return ip.finish(&file)
}

// ParseTOML decodes and validates a TOML projection request.
func (ip *InputParser) ParseTOML(data []byte) (*domain.ProjectionRequest, error) {
	var file requestFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return ip.finish(&file)
}

func (ip *InputParser) finish(file *requestFile) (*domain.ProjectionRequest, error) {
	req, err := file.toRequest()
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := ip.ValidateConfiguration(req); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return req, nil
}

// toRequest applies defaults: compounding annually, no contributions, and
// contributions at the compounding frequency.
func (f *requestFile) toRequest() (*domain.ProjectionRequest, error) {
	inv := f.Investment
	if inv.Principal == nil {
		return nil, fmt.Errorf("investment.principal is required")
	}
	if inv.AnnualRate == nil {
		return nil, fmt.Errorf("investment.annual_rate is required")
	}
	if inv.Years == nil {
		return nil, fmt.Errorf("investment.years is required")
	}

	compounding := domain.Annually
	if inv.CompoundingFrequency != nil {
		compounding = *inv.CompoundingFrequency
	}
	params := domain.NewInvestmentParameters(*inv.Principal, *inv.AnnualRate, *inv.Years, compounding)
	if inv.ContributionAmount != nil {
		params.ContributionAmount = *inv.ContributionAmount
	}
	if inv.ContributionFrequency != nil {
		params.ContributionFrequency = *inv.ContributionFrequency
	}

	return &domain.ProjectionRequest{
		Investment:      params,
		Investor:        f.Investor,
		TargetAmount:    f.TargetAmount,
		IncludeInsights: f.IncludeInsights,
	}, nil
}

// ValidateConfiguration validates a projection request before it reaches the engine
func (ip *InputParser) ValidateConfiguration(req *domain.ProjectionRequest) error {
	if req == nil {
		return fmt.Errorf("no projection request provided")
	}
	if err := ip.validateInvestment(&req.Investment); err != nil {
		return fmt.Errorf("investment validation failed: %w", err)
	}
	if age := req.Investor.Age; age != nil && (*age < 0 || *age > MaxInvestorAge) {
		return fmt.Errorf("investor age must be between 0 and %d", MaxInvestorAge)
	}
	if req.TargetAmount != nil && req.TargetAmount.LessThanOrEqual(req.Investment.Principal) {
		return fmt.Errorf("target amount must be greater than principal")
	}
	return nil
}

// validateInvestment validates the investment parameters
func (ip *InputParser) validateInvestment(p *domain.InvestmentParameters) error {
	if p.Principal.LessThan(decimal.Zero) {
		return fmt.Errorf("principal cannot be negative")
	}
	if p.AnnualRate.LessThan(decimal.Zero) {
		return fmt.Errorf("annual rate cannot be negative")
	}
	if p.AnnualRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("annual rate must be a decimal fraction (0.05 for 5%%), got %s", p.AnnualRate)
	}
	if p.Years < 0 {
		return fmt.Errorf("years cannot be negative")
	}
	if p.CompoundingFrequency <= 0 {
		return fmt.Errorf("compounding frequency must be positive")
	}
	if p.ContributionAmount.LessThan(decimal.Zero) {
		return fmt.Errorf("contribution amount cannot be negative")
	}
	if p.ContributionFrequency <= 0 {
		return fmt.Errorf("contribution frequency must be positive")
	}
	return nil
}

// CreateExampleConfiguration creates an example projection request
func (ip *InputParser) CreateExampleConfiguration() *domain.ProjectionRequest {
	age := 35
	target := decimal.NewFromInt(25000)
	params := domain.NewInvestmentParameters(decimal.NewFromInt(10000), decimal.NewFromFloat(0.06), 15, domain.Monthly).
		WithContributions(decimal.NewFromInt(200), domain.Monthly)

	return &domain.ProjectionRequest{
		Investment:      params,
		Investor:        domain.InvestorProfile{Age: &age},
		TargetAmount:    &target,
		IncludeInsights: true,
	}
}
