package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ToNumber coerces a spreadsheet cell into a finite number.
// Everything except digits, '.' and '-' is stripped first, so "₹1,234.50" is 1234.5.
// Anything that still does not parse, or parses to NaN/Inf, yields 0.
func ToNumber(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return finiteOrZero(v)
	case float32:
		return finiteOrZero(float64(v))
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case decimal.Decimal:
		return finiteOrZero(v.InexactFloat64())
	case string:
		return parseNumericString(v)
	default:
		return parseNumericString(fmt.Sprint(v))
	}
}

func parseNumericString(s string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return 0
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(f)
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ToQuantity reads a quantity cell: whole units, at least 1.
func ToQuantity(value any) int {
	q := int(math.Floor(ToNumber(value)))
	if q < 1 {
		return 1
	}
	return q
}

// Money lifts a float amount into decimal arithmetic using its shortest
// decimal representation, so 409.99 is exactly 409.99.
func Money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// RoundMoney rounds half away from zero to paise.
func RoundMoney(v float64) float64 {
	return Money(v).Round(2).InexactFloat64()
}
