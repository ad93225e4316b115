package main

import (
	"fmt"
	"strings"

	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Prints which compounding periods receive a deposit for a few
// contribution/compounding ratios, next to the resulting future value and the
// timeline's final balance, so the two schedules can be compared by eye.
func main() {
	principal := decimal.NewFromInt(1000)
	rate := decimal.NewFromFloat(0.05)

	scenarios := []struct {
		name         string
		compounding  domain.Frequency
		contribution domain.Frequency
	}{
		{"monthly/monthly", domain.Monthly, domain.Monthly},
		{"quarterly deposits, monthly compounding", domain.Monthly, domain.Quarterly},
		{"monthly deposits, quarterly compounding", domain.Quarterly, domain.Monthly},
		{"24 deposits, monthly compounding", domain.Monthly, domain.Frequency(24)},
		{"5 deposits, monthly compounding", domain.Monthly, domain.Frequency(5)},
	}

	for _, sc := range scenarios {
		p := domain.NewInvestmentParameters(principal, rate, 2, sc.compounding).
			WithContributions(decimal.NewFromInt(100), sc.contribution)

		indices, deposit, err := calculation.ContributionSchedule(p)
		if err != nil {
			fmt.Printf("%s: %v\n", sc.name, err)
			continue
		}
		fv, err := calculation.CalculateFutureValue(p)
		if err != nil {
			fmt.Printf("%s: %v\n", sc.name, err)
			continue
		}
		timeline, err := calculation.GenerateTimeline(p)
		if err != nil {
			fmt.Printf("%s: %v\n", sc.name, err)
			continue
		}

		marks := make([]string, p.Periods())
		for i := range marks {
			marks[i] = "."
		}
		for _, i := range indices {
			marks[i] = "+"
		}

		fmt.Println(sc.name)
		fmt.Printf("  deposit per contribution period: %s\n", deposit.StringFixed(2))
		fmt.Printf("  schedule (%d of %d periods): %s\n", len(indices), p.Periods(), strings.Join(marks, ""))
		fmt.Printf("  future value:           %s\n", fv.StringFixed(2))
		fmt.Printf("  timeline final balance: %s\n", timeline[len(timeline)-1].Balance.StringFixed(2))
	}
}
