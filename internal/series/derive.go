package series

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lox/goldview/internal/diagnostics"
	"github.com/lox/goldview/internal/models"
)

// Observation is one historical point of either series.
type Observation struct {
	Label string
	Date  time.Time // daily only; monthly anchors are parsed from Label
	Price decimal.NullDecimal
}

// ChartPoint is a labelled price with a value present.
type ChartPoint struct {
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

// TableRow is one historical row, kept even when the price is absent.
type TableRow struct {
	Label   string              `json:"label"`
	Price   decimal.NullDecimal `json:"price"`
	Display string              `json:"display"`
}

// Bundle is the display-ready form of one observation series.
type Bundle struct {
	Unit             Unit                `json:"-"`
	Anchor           time.Time           `json:"anchor"`
	ChartPoints      []ChartPoint        `json:"chart_points"`
	TablePoints      []TableRow          `json:"table_points"`
	ForecastPoints   []ChartPoint        `json:"forecast_points"`
	Baseline         decimal.NullDecimal `json:"baseline"`
	InsufficientData bool                `json:"insufficient_data"`
}

// ForecastValues returns the forecast prices in order.
func (b *Bundle) ForecastValues() []decimal.Decimal {
	out := make([]decimal.Decimal, len(b.ForecastPoints))
	for i, p := range b.ForecastPoints {
		out[i] = p.Price
	}
	return out
}

// Deriver turns observation sequences into display bundles.
type Deriver struct {
	clock Clock
}

func NewDeriver(clock Clock) *Deriver {
	if clock == nil {
		clock = SystemClock
	}
	return &Deriver{clock: clock}
}

// DailyObservations adapts daily payload rows for Derive.
func DailyObservations(rows []models.DailyObservation) []Observation {
	out := make([]Observation, len(rows))
	for i, r := range rows {
		out[i] = Observation{
			Label: r.Date.Format(DailyLabelLayout),
			Date:  r.Date,
			Price: r.PricePerGram,
		}
	}
	return out
}

// MonthlyObservations adapts monthly payload rows for Derive, charting the
// monthly average.
func MonthlyObservations(rows []models.MonthlyObservation) []Observation {
	out := make([]Observation, len(rows))
	for i, r := range rows {
		out[i] = Observation{Label: r.Month, Price: r.AveragePerGram}
	}
	return out
}

func (d *Deriver) DeriveDaily(rows []models.DailyObservation, forecast []decimal.Decimal) (*Bundle, error) {
	return d.Derive(Day, DailyObservations(rows), forecast)
}

func (d *Deriver) DeriveMonthly(rows []models.MonthlyObservation, forecast []decimal.Decimal) (*Bundle, error) {
	return d.Derive(Month, MonthlyObservations(rows), forecast)
}

// Derive builds a bundle from history and its paired forecast. Forecast
// labels are anchored on the last element of the full history, not the
// last charted point, so index 0 always follows the final observation.
func (d *Deriver) Derive(unit Unit, history []Observation, forecast []decimal.Decimal) (*Bundle, error) {
	anchor, err := d.anchor(unit, history)
	if err != nil {
		return nil, err
	}

	labels, err := Extrapolate(anchor, unit, len(forecast))
	if err != nil {
		return nil, err
	}

	b := &Bundle{
		Unit:           unit,
		Anchor:         anchor,
		ChartPoints:    make([]ChartPoint, 0, len(history)),
		TablePoints:    make([]TableRow, 0, len(history)),
		ForecastPoints: make([]ChartPoint, len(forecast)),
	}

	prices := make([]decimal.NullDecimal, len(history))
	for i, obs := range history {
		prices[i] = obs.Price
		row := TableRow{Label: obs.Label, Price: obs.Price, Display: diagnostics.NotAvailable}
		if obs.Price.Valid {
			row.Display = diagnostics.Price(obs.Price.Decimal)
			b.ChartPoints = append(b.ChartPoints, ChartPoint{Label: obs.Label, Price: obs.Price.Decimal})
		}
		b.TablePoints = append(b.TablePoints, row)
	}

	for i, v := range forecast {
		b.ForecastPoints[i] = ChartPoint{Label: labels[i], Price: v}
	}

	b.Baseline = LastPresent(prices)
	b.InsufficientData = len(b.ChartPoints) == 0
	return b, nil
}

func (d *Deriver) anchor(unit Unit, history []Observation) (time.Time, error) {
	if len(history) == 0 {
		now := d.clock.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}

	last := history[len(history)-1]
	switch unit {
	case Day:
		return last.Date, nil
	case Month:
		return ParseMonthLabel(last.Label)
	default:
		return time.Time{}, fmt.Errorf("derive: unknown unit %d", unit)
	}
}
