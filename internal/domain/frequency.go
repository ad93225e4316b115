package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Frequency is a number of periods per year (compounding or contribution).
type Frequency int

// Named frequencies offered by the calculator.
const (
	Annually     Frequency = 1
	SemiAnnually Frequency = 2
	Quarterly    Frequency = 4
	Monthly      Frequency = 12
	BiWeekly     Frequency = 26
	Weekly       Frequency = 52
	Daily        Frequency = 365
)

var frequencyNames = map[Frequency]string{
	Annually:     "annually",
	SemiAnnually: "semi-annually",
	Quarterly:    "quarterly",
	Monthly:      "monthly",
	BiWeekly:     "bi-weekly",
	Weekly:       "weekly",
	Daily:        "daily",
}

// frequencyAliases maps user-friendly spellings to canonical names.
var frequencyAliases = map[string]string{
	"annual":       "annually",
	"yearly":       "annually",
	"semiannually": "semi-annually",
	"semi-annual":  "semi-annually",
	"quarter":      "quarterly",
	"month":        "monthly",
	"biweekly":     "bi-weekly",
	"fortnightly":  "bi-weekly",
	"week":         "weekly",
	"day":          "daily",
}

// ParseFrequency accepts a frequency name (case-insensitive) or a positive integer.
func ParseFrequency(s string) (Frequency, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	if n == "" {
		return 0, fmt.Errorf("frequency is empty")
	}
	if mapped, ok := frequencyAliases[n]; ok {
		n = mapped
	}
	for f, name := range frequencyNames {
		if name == n {
			return f, nil
		}
	}
	i, err := strconv.Atoi(n)
	if err != nil {
		return 0, fmt.Errorf("unknown frequency %q (try one of: %s, or periods per year)", s, strings.Join(FrequencyNames(), ", "))
	}
	if i <= 0 {
		return 0, fmt.Errorf("frequency %q must be a positive number of periods per year", s)
	}
	return Frequency(i), nil
}

// FrequencyNames returns the canonical frequency names ordered by periods per year.
func FrequencyNames() []string {
	freqs := make([]Frequency, 0, len(frequencyNames))
	for f := range frequencyNames {
		freqs = append(freqs, f)
	}
	sort.Slice(freqs, func(i, j int) bool { return freqs[i] < freqs[j] })
	names := make([]string, len(freqs))
	for i, f := range freqs {
		names[i] = frequencyNames[f]
	}
	return names
}

// String returns the canonical name, or the bare number for unnamed frequencies.
func (f Frequency) String() string {
	if name, ok := frequencyNames[f]; ok {
		return name
	}
	return strconv.Itoa(int(f))
}

// MarshalText implements encoding.TextMarshaler.
func (f Frequency) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Both YAML and TOML route
// integer and string scalars through it.
func (f *Frequency) UnmarshalText(text []byte) error {
	parsed, err := ParseFrequency(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
