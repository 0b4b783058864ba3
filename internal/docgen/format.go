package docgen

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber converts edited cell text to a number. Thousand
// separators and currency symbols are tolerated; anything that still
// does not parse becomes 0 so a stray edit never breaks totals.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer(",", "", "₩", "", "$", "", " ", "").Replace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// FormatNumber renders f the way a locale-aware UI would: thousands
// grouped, fractional digits kept only when present (up to three).
func FormatNumber(f float64) string {
	if f == math.Trunc(f) {
		return groupThousands(strconv.FormatFloat(f, 'f', 0, 64))
	}
	s := strconv.FormatFloat(f, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return groupThousands(s)
}

// FormatFixed renders f with exactly prec fractional digits and
// grouped thousands, matching the USD money format on documents.
func FormatFixed(f float64, prec int) string {
	return groupThousands(strconv.FormatFloat(f, 'f', prec, 64))
}

// Fixed renders f with exactly prec fractional digits, ungrouped.
// Weights and volumes on the packing list use this form.
func Fixed(f float64, prec int) string {
	return strconv.FormatFloat(f, 'f', prec, 64)
}

func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
