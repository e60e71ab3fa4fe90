package series

import (
	"fmt"
	"strings"
	"time"
)

// Unit is the period length of a series.
type Unit int

const (
	Day Unit = iota
	Month
)

func (u Unit) String() string {
	if u == Month {
		return "monthly"
	}
	return "daily"
}

const (
	// DailyLabelLayout formats daily observation and forecast labels.
	DailyLabelLayout = "2006-01-02"
	// MonthLabelLayout is the upstream "month year" label, e.g. "Jan 24".
	MonthLabelLayout = "Jan 06"
	// MonthForecastLayout drops the year from monthly forecast labels.
	MonthForecastLayout = "Jan"
)

// FormatError reports a historical label that cannot be read back as a date.
type FormatError struct {
	Label string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unparseable month label %q: %v", e.Label, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ParseMonthLabel parses a "Jan 24" style label into the first day of that month.
func ParseMonthLabel(label string) (time.Time, error) {
	t, err := time.Parse(MonthLabelLayout, strings.TrimSpace(label))
	if err != nil {
		return time.Time{}, &FormatError{Label: label, Err: err}
	}
	return t, nil
}

// Extrapolate returns count labels where label[i] is anchor plus i+1 units.
func Extrapolate(anchor time.Time, unit Unit, count int) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("extrapolate: negative count %d", count)
	}

	labels := make([]string, count)
	switch unit {
	case Day:
		base := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
		for i := range labels {
			labels[i] = base.AddDate(0, 0, i+1).Format(DailyLabelLayout)
		}
	case Month:
		// Day 1 keeps AddDate from normalising Jan 31 + 1 month into March.
		base := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		for i := range labels {
			labels[i] = base.AddDate(0, i+1, 0).Format(MonthForecastLayout)
		}
	default:
		return nil, fmt.Errorf("extrapolate: unknown unit %d", unit)
	}
	return labels, nil
}
