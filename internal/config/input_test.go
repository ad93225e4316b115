package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_YAML(t *testing.T) {
	testConfig := "investment:\n" +
		"  principal: 1000\n" +
		"  annual_rate: 0.05\n" +
		"  years: 10\n" +
		"  compounding_frequency: monthly\n" +
		"  contribution_amount: 100\n" +
		"  contribution_frequency: 4\n" +
		"investor:\n" +
		"  age: 42\n" +
		"target_amount: 2500\n" +
		"include_insights: true\n"

	parser := NewInputParser()
	req, err := parser.LoadFromFile(writeTemp(t, "request.yaml", testConfig))
	require.NoError(t, err)

	p := req.Investment
	assert.True(t, p.Principal.Equal(decimal.NewFromInt(1000)))
	assert.True(t, p.AnnualRate.Equal(decimal.NewFromFloat(0.05)))
	assert.Equal(t, 10, p.Years)
	assert.Equal(t, domain.Monthly, p.CompoundingFrequency)
	assert.True(t, p.ContributionAmount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, domain.Quarterly, p.ContributionFrequency)
	require.NotNil(t, req.Investor.Age)
	assert.Equal(t, 42, *req.Investor.Age)
	require.NotNil(t, req.TargetAmount)
	assert.True(t, req.TargetAmount.Equal(decimal.NewFromInt(2500)))
	assert.True(t, req.IncludeInsights)
}

func TestLoadFromFile_TOML(t *testing.T) {
	testConfig := `include_insights = false

[investment]
principal = 5000
annual_rate = 0.07
years = 20
compounding_frequency = "quarterly"
contribution_amount = 250
contribution_frequency = 12
`
	parser := NewInputParser()
	req, err := parser.LoadFromFile(writeTemp(t, "request.toml", testConfig))
	require.NoError(t, err)

	p := req.Investment
	assert.True(t, p.Principal.Equal(decimal.NewFromInt(5000)))
	assert.True(t, p.AnnualRate.Equal(decimal.NewFromFloat(0.07)))
	assert.Equal(t, 20, p.Years)
	assert.Equal(t, domain.Quarterly, p.CompoundingFrequency)
	assert.Equal(t, domain.Monthly, p.ContributionFrequency)
	assert.Nil(t, req.Investor.Age)
	assert.Nil(t, req.TargetAmount)
	assert.False(t, req.IncludeInsights)
}

func TestLoadFromFile_Defaults(t *testing.T) {
	testConfig := "investment:\n" +
		"  principal: 1000\n" +
		"  annual_rate: 0.05\n" +
		"  years: 5\n"

	req, err := NewInputParser().LoadFromFile(writeTemp(t, "request.yml", testConfig))
	require.NoError(t, err)
	assert.Equal(t, domain.Annually, req.Investment.CompoundingFrequency)
	assert.Equal(t, domain.Annually, req.Investment.ContributionFrequency)
	assert.True(t, req.Investment.ContributionAmount.IsZero())

	testConfig += "  compounding_frequency: weekly\n"
	req, err = NewInputParser().LoadFromFile(writeTemp(t, "request.yml", testConfig))
	require.NoError(t, err)
	assert.Equal(t, domain.Weekly, req.Investment.ContributionFrequency)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	req, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, req)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	testConfig := `
investment:
	principal: 1000
		annual_rate: "not-a-number"
`
	req, err := NewInputParser().LoadFromFile(writeTemp(t, "bad.yaml", testConfig))
	assert.Error(t, err)
	assert.Nil(t, req)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_InvalidTOML(t *testing.T) {
	req, err := NewInputParser().LoadFromFile(writeTemp(t, "bad.toml", "[investment\nprincipal = "))
	assert.Error(t, err)
	assert.Nil(t, req)
	assert.Contains(t, err.Error(), "failed to parse TOML")
}

func TestLoadFromFile_UnknownFrequency(t *testing.T) {
	testConfig := "investment:\n" +
		"  principal: 1000\n" +
		"  annual_rate: 0.05\n" +
		"  years: 5\n" +
		"  compounding_frequency: hourly\n"
	_, err := NewInputParser().LoadFromFile(writeTemp(t, "request.yaml", testConfig))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown frequency")
}

func TestLoadFromFile_MissingRequiredFields(t *testing.T) {
	tests := map[string]string{
		"investment.principal":   "investment:\n  annual_rate: 0.05\n  years: 5\n",
		"investment.annual_rate": "investment:\n  principal: 1000\n  years: 5\n",
		"investment.years":       "investment:\n  principal: 1000\n  annual_rate: 0.05\n",
	}
	for field, content := range tests {
		t.Run(field, func(t *testing.T) {
			_, err := NewInputParser().ParseYAML([]byte(content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), field+" is required")
			assert.Contains(t, err.Error(), "configuration validation failed")
		})
	}
}

func TestLoadFromFile_ExplicitZeroContributionFrequency(t *testing.T) {
	testConfig := "investment:\n" +
		"  principal: 1000\n" +
		"  annual_rate: 0.05\n" +
		"  years: 5\n" +
		"  contribution_amount: 100\n" +
		"  contribution_frequency: 0\n"
	_, err := NewInputParser().ParseYAML([]byte(testConfig))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
	assert.Contains(t, err.Error(), "must be a positive number of periods per year")
}

func TestValidateConfiguration(t *testing.T) {
	valid := func() *domain.ProjectionRequest {
		return NewInputParser().CreateExampleConfiguration()
	}
	tests := []struct {
		name    string
		mutate  func(r *domain.ProjectionRequest)
		wantErr string
	}{
		{"valid", func(r *domain.ProjectionRequest) {}, ""},
		{"negative principal", func(r *domain.ProjectionRequest) { r.Investment.Principal = decimal.NewFromInt(-1) }, "principal cannot be negative"},
		{"negative rate", func(r *domain.ProjectionRequest) { r.Investment.AnnualRate = decimal.NewFromFloat(-0.01) }, "annual rate cannot be negative"},
		{"percent instead of fraction", func(r *domain.ProjectionRequest) { r.Investment.AnnualRate = decimal.NewFromInt(5) }, "decimal fraction"},
		{"negative years", func(r *domain.ProjectionRequest) { r.Investment.Years = -1 }, "years cannot be negative"},
		{"zero compounding", func(r *domain.ProjectionRequest) { r.Investment.CompoundingFrequency = 0 }, "compounding frequency must be positive"},
		{"negative contribution", func(r *domain.ProjectionRequest) { r.Investment.ContributionAmount = decimal.NewFromInt(-5) }, "contribution amount cannot be negative"},
		{"age out of range", func(r *domain.ProjectionRequest) { age := 200; r.Investor.Age = &age }, "investor age"},
		{"target below principal", func(r *domain.ProjectionRequest) { target := decimal.NewFromInt(10); r.TargetAmount = &target }, "target amount must be greater than principal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			err := NewInputParser().ValidateConfiguration(req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.Error(t, NewInputParser().ValidateConfiguration(nil))
}

func TestCreateExampleConfiguration_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleConfiguration()
	require.NoError(t, parser.ValidateConfiguration(example))

	data, err := yaml.Marshal(example)
	require.NoError(t, err)
	assert.Contains(t, string(data), "compounding_frequency: monthly")

	loaded, err := parser.ParseYAML(data)
	require.NoError(t, err)
	assert.True(t, loaded.Investment.Principal.Equal(example.Investment.Principal))
	assert.True(t, loaded.Investment.AnnualRate.Equal(example.Investment.AnnualRate))
	assert.Equal(t, example.Investment.ContributionFrequency, loaded.Investment.ContributionFrequency)
	assert.Equal(t, *example.Investor.Age, *loaded.Investor.Age)
	assert.True(t, loaded.TargetAmount.Equal(*example.TargetAmount))
}
