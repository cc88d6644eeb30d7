// Package format holds pure helpers for displaying and sanitizing money
// amounts. Validation lives here, not in the store: callers validate input
// before asking the store to record it.
package format

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Validation errors shown inline next to the amount field.
var (
	// ErrAmountRequired means the amount field was left empty.
	ErrAmountRequired = errors.New("Vui lòng nhập số tiền")
	// ErrAmountNotPositive means the amount did not parse to a number
	// greater than zero.
	ErrAmountNotPositive = errors.New("Số tiền phải lớn hơn 0")
)

// ValidateAmount checks a raw amount string and returns the parsed value.
// A nil error means the amount is usable.
func ValidateAmount(amount string) (float64, error) {
	if strings.TrimSpace(amount) == "" {
		return 0, ErrAmountRequired
	}
	num, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil || math.IsNaN(num) || num <= 0 {
		return 0, ErrAmountNotPositive
	}
	return num, nil
}

// SanitizeAmountInput strips everything but digits and at most one decimal
// point from a raw input string, keeping the first point and collapsing
// the rest into the fractional part.
func SanitizeAmountInput(text string) string {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	parts := strings.Split(cleaned, ".")
	if len(parts) > 2 {
		return parts[0] + "." + strings.Join(parts[1:], "")
	}
	return cleaned
}

// Number renders a number with Vietnamese digit grouping: dots between
// thousands, comma before any fractional part.
func Number(amount float64) string {
	neg := amount < 0 || (amount == 0 && math.Signbit(amount))
	abs := math.Abs(amount)

	raw := strconv.FormatFloat(abs, 'f', -1, 64)
	intPart, fracPart, _ := strings.Cut(raw, ".")

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, ".")
	if fracPart != "" {
		out += "," + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}

// Currency renders an amount as Vietnamese Dong, e.g. "1.234.567 đ".
func Currency(amount float64) string {
	return Number(amount) + " đ"
}

// CurrencyWithSign renders an amount with an explicit plus for
// non-negative values.
func CurrencyWithSign(amount float64) string {
	if amount >= 0 {
		return "+" + Currency(amount)
	}
	return Currency(amount)
}
