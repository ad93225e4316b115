package calculation

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

// RandomSource picks an index in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// NewRandomSource returns a source seeded from the package seed provider.
// Each call returns an independent source, so concurrent callers never share one.
func NewRandomSource() RandomSource {
	return newSeededSource(seedFunc())
}

// narrativeRule pairs a predicate with the sentence it produces. Rules are
// evaluated in order and the first match wins.
type narrativeRule[T any] struct {
	Name    string
	Applies func(T) bool
	Render  func(T) string
}

func firstMatch[T any](rules []narrativeRule[T], in T) (string, bool) {
	for _, r := range rules {
		if r.Applies(in) {
			return r.Render(in), true
		}
	}
	return "", false
}

func always[T any](T) bool { return true }

func fixed[T any](s string) func(T) string {
	return func(T) string { return s }
}

var (
	decimalHundred = decimal.NewFromInt(100)
	decimalOne     = decimal.NewFromInt(1)
)

func newSeededSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}
