// Package moneyfmt normalizes free-text amount input into a canonical
// grouped-thousands decimal representation.
//
// Input that is not decimal-style (letters, multiple points) passes
// through unchanged rather than erroring: every amount field re-formats
// on each keystroke and must never fight the user.
package moneyfmt

import (
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Formatter holds the separator and precision settings for one wallet's
// display locale.
type Formatter struct {
	// GroupSep separates thousands groups in formatted output.
	GroupSep string

	// DecimalSep separates the integer and fraction parts.
	DecimalSep string

	// MaxFractionDigits caps the fraction length of formatted output.
	MaxFractionDigits int
}

// Default returns the formatter used when the wallet carries no locale
// override.
func Default() Formatter {
	return Formatter{GroupSep: ",", DecimalSep: ".", MaxFractionDigits: 2}
}

// ForCurrency adapts the default formatter to a wallet's base currency.
// Zero-decimal currencies drop the fraction entirely.
func ForCurrency(code string) Formatter {
	f := Default()
	switch code {
	case "KRW", "JPY":
		f.MaxFractionDigits = 0
	}
	return f
}

// IsDecimalStyle reports whether s consists solely of digits and at most
// one decimal point, with at least one digit. Callers strip grouping
// separators before asking.
func IsDecimalStyle(s string) bool {
	if s == "" {
		return false
	}
	points, digits := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			points++
		default:
			return false
		}
	}
	return digits > 0 && points <= 1
}

// DecimalStyle fully normalizes a finalized amount: grouping separators
// inserted, fraction truncated to MaxFractionDigits, trailing zeros and a
// dangling point dropped. Non-decimal-style input is returned unchanged.
func (f Formatter) DecimalStyle(s string) string {
	if !IsDecimalStyle(s) {
		return s
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	d = d.Truncate(int32(f.MaxFractionDigits))
	intPart, fracPart, _ := strings.Cut(d.String(), ".")
	if fracPart == "" {
		return f.group(intPart)
	}
	return f.group(intPart) + f.DecimalSep + fracPart
}

// DecimalWithPoint applies the same grouping but preserves an in-progress
// fractional suffix: internal "22." renders as "22." and "22.00" as
// "22.00", capped at MaxFractionDigits. Like DecimalStyle it takes the
// internal point-decimal form (run typed text through Plain first) and
// renders with the display separators. Used while editing is live.
func (f Formatter) DecimalWithPoint(s string) string {
	if !IsDecimalStyle(s) {
		return s
	}
	intPart, fracPart, hasPoint := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	grouped := f.group(intPart)
	if !hasPoint {
		return grouped
	}
	if len(fracPart) > f.MaxFractionDigits {
		fracPart = fracPart[:f.MaxFractionDigits]
	}
	return grouped + f.DecimalSep + fracPart
}

// Plain maps display or typed text back to the internal decimal-string
// form arithmetic expects: grouping separators stripped, the display
// decimal separator replaced with the canonical point. Grouping is
// removed first, so a European "1.234,5" comes back as "1234.5". Plain
// is a display→internal mapping, not idempotent on internal form when
// GroupSep is itself the point.
func (f Formatter) Plain(s string) string {
	s = strings.ReplaceAll(s, f.GroupSep, "")
	if f.DecimalSep != "." {
		s = strings.ReplaceAll(s, f.DecimalSep, ".")
	}
	return s
}

// Amount parses a possibly-grouped amount string into a decimal.
func (f Formatter) Amount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(f.Plain(s))
}

func (f Formatter) group(digits string) string {
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return digits
	}
	out := humanize.BigComma(n)
	if f.GroupSep != "," {
		out = strings.ReplaceAll(out, ",", f.GroupSep)
	}
	return out
}
