package series

import "github.com/shopspring/decimal"

// StepChange returns value[i] - value[i-1] for each element. The first
// delta has no predecessor and is invalid.
func StepChange(values []decimal.Decimal) []decimal.NullDecimal {
	return SeededStepChange(values, decimal.NullDecimal{})
}

// SeededStepChange is StepChange with an explicit predecessor for the first
// element. Daily forecast cards seed it with the last historical price.
func SeededStepChange(values []decimal.Decimal, seed decimal.NullDecimal) []decimal.NullDecimal {
	out := make([]decimal.NullDecimal, len(values))
	prev := seed
	for i, v := range values {
		if prev.Valid {
			out[i] = decimal.NewNullDecimal(v.Sub(prev.Decimal))
		}
		prev = decimal.NewNullDecimal(v)
	}
	return out
}

// CumulativeChange returns value[i] - baseline. Without a baseline every
// delta is invalid; a zero delta is still a valid comparison.
func CumulativeChange(values []decimal.Decimal, baseline decimal.NullDecimal) []decimal.NullDecimal {
	out := make([]decimal.NullDecimal, len(values))
	if !baseline.Valid {
		return out
	}
	for i, v := range values {
		out[i] = decimal.NewNullDecimal(v.Sub(baseline.Decimal))
	}
	return out
}

// LastPresent returns the last valid price in prices, scanning backwards.
func LastPresent(prices []decimal.NullDecimal) decimal.NullDecimal {
	for i := len(prices) - 1; i >= 0; i-- {
		if prices[i].Valid {
			return prices[i]
		}
	}
	return decimal.NullDecimal{}
}
