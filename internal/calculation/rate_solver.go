package calculation

import (
	"math"

	"github.com/rpgo/growth-calculator/internal/domain"
	money "github.com/rpgo/growth-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

const msgInvalidRateInput = "invalid input: principal and time must be positive, target amount must be greater than principal"

// CalculateRequiredRate returns the annual rate (four decimal places) that grows
// principal into targetAmount over years under the given compounding
// frequency, ignoring contributions:
//
//	rate = n * ((target/principal)^(1/(n*years)) - 1)
func CalculateRequiredRate(principal, targetAmount decimal.Decimal, years int, compounding domain.Frequency) (decimal.Decimal, error) {
	if !principal.IsPositive() || targetAmount.LessThanOrEqual(principal) || years <= 0 || compounding <= 0 {
		return decimal.Zero, domain.NewInvalidParameterError(msgInvalidRateInput)
	}

	n := float64(compounding)
	ratio := targetAmount.InexactFloat64() / principal.InexactFloat64()
	rate := n * (math.Pow(ratio, 1/(n*float64(years))) - 1)

	r, ok := money.RoundRate(rate)
	if !ok {
		return decimal.Zero, domain.NewInvalidParameterError(msgInvalidRateInput)
	}
	return r, nil
}
