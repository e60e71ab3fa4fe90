// Package diagnostics formats model metadata and prices for display. It is
// the only place display precision is decided.
package diagnostics

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/lox/goldview/internal/models"
)

const (
	NA                = "N/A"
	NotApplicableText = "Not Applicable"
	NotAvailable      = "not available"
	CurrencySymbol    = "₹"

	places = 2
)

// Field identifies a model diagnostic.
type Field int

const (
	ModelType Field = iota
	Alpha
	Beta
	Phi
	RMSE
	MAE
)

// Fields lists diagnostics in display order.
var Fields = []Field{ModelType, Alpha, Beta, Phi, RMSE, MAE}

func (f Field) Label() string {
	switch f {
	case ModelType:
		return "Type"
	case Alpha:
		return "Alpha"
	case Beta:
		return "Beta"
	case Phi:
		return "Phi"
	case RMSE:
		return "RMSE"
	case MAE:
		return "MAE"
	}
	return "Unknown"
}

// Value returns the diagnostic named by f.
func (f Field) Value(d models.ModelDiagnostics) models.Param {
	switch f {
	case ModelType:
		return d.ModelType
	case Alpha:
		return d.Alpha
	case Beta:
		return d.Beta
	case Phi:
		return d.Phi
	case RMSE:
		return d.RMSE
	case MAE:
		return d.MAE
	}
	return models.AbsentParam()
}

// Format renders a diagnostic value. Present values win: numbers get two
// decimals and strings pass through. A missing phi reads "Not Applicable"
// unless the model is damped, where phi was expected and so reads "N/A".
func Format(v models.Param, field Field, damped bool) string {
	switch v.Kind {
	case models.Numeric:
		return Fixed(v.Num)
	case models.Literal:
		return v.Text
	case models.NotApplicable:
		return NotApplicableText
	}
	if field == Phi && !damped {
		return NotApplicableText
	}
	return NA
}

// Row is one rendered diagnostic.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Rows renders every diagnostic of d in display order.
func Rows(d models.ModelDiagnostics) []Row {
	damped := d.IsDamped()
	rows := make([]Row, len(Fields))
	for i, f := range Fields {
		rows[i] = Row{Label: f.Label(), Value: Format(f.Value(d), f, damped)}
	}
	return rows
}

// Fixed formats v with two decimal places.
func Fixed(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}

// Price formats d with two decimal places and thousands separators.
func Price(d decimal.Decimal) string {
	d = d.Round(places)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	fixed := d.StringFixed(places)
	whole, frac, _ := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return sign + fixed
	}
	return sign + humanize.Comma(n) + "." + frac
}

// PriceOrNA formats an optional price, "N/A" when absent.
func PriceOrNA(d decimal.NullDecimal) string {
	if !d.Valid {
		return NA
	}
	return Price(d.Decimal)
}

// Currency prefixes Price with the rupee sign.
func Currency(d decimal.Decimal) string {
	return CurrencySymbol + Price(d)
}

// SignedCurrency renders a price difference as "+₹1.50" or "-₹1.50".
func SignedCurrency(d decimal.Decimal) string {
	d = d.Round(places)
	if d.IsNegative() {
		return "-" + Currency(d.Abs())
	}
	return "+" + Currency(d)
}

// Delta renders an optional difference with an explicit sign, "N/A" when no
// comparison was possible.
func Delta(d decimal.NullDecimal) string {
	if !d.Valid {
		return NA
	}
	r := d.Decimal.Round(places)
	if r.IsNegative() {
		return Price(r)
	}
	return "+" + Price(r)
}
