package forecastapi

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/lox/goldview/internal/models"
)

var dailyDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC1123,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

var diagnosticFields = []string{"modelType", "alpha", "beta", "phi", "rmse", "mae"}

// Decode validates body against the forecast schema and builds a Payload.
// Every problem found is collected into a single *ShapeError; nothing is
// decoded from a body that fails validation.
func Decode(body []byte, fetchedAt time.Time) (*models.Payload, error) {
	if !gjson.ValidBytes(body) {
		return nil, &ShapeError{Problems: []string{"body is not valid JSON"}}
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, &ShapeError{Problems: []string{"body is not a JSON object"}}
	}

	shape := &ShapeError{}
	validate(root, shape)
	if len(shape.Problems) > 0 {
		return nil, shape
	}

	p := &models.Payload{FetchedAt: fetchedAt}
	for _, row := range root.Get("daily_data").Array() {
		date, _ := parseDailyDate(row.Get("Date").String())
		p.Daily = append(p.Daily, models.DailyObservation{
			Date:         date,
			PricePerGram: nullDecimal(row.Get("Price_per_gram")),
		})
	}
	for _, row := range root.Get("monthly_data").Array() {
		p.Monthly = append(p.Monthly, models.MonthlyObservation{
			Month:          row.Get("Month").String(),
			StartPerGram:   nullDecimal(row.Get("Start_per_gram")),
			EndPerGram:     nullDecimal(row.Get("End_per_gram")),
			AveragePerGram: nullDecimal(row.Get("Average_per_gram")),
			ChangeRs:       row.Get("Change_Rs").String(),
			PercentChange:  row.Get("Percent_change").String(),
		})
	}
	p.DailyForecast = decimals(root.Get("daily_forecast"))
	p.MonthlyForecast = decimals(root.Get("monthly_forecast"))
	p.DailyModel = diagnostics(root, "daily_")
	p.MonthlyModel = diagnostics(root, "monthly_")
	return p, nil
}

func validate(root gjson.Result, shape *ShapeError) {
	daily := root.Get("daily_data")
	if !daily.IsArray() {
		shape.add("daily_data: expected array")
	} else {
		for i, row := range daily.Array() {
			if !row.IsObject() {
				shape.add("daily_data[%d]: expected object", i)
				continue
			}
			date := row.Get("Date")
			if date.Type != gjson.String {
				shape.add("daily_data[%d].Date: expected string", i)
			} else if _, ok := parseDailyDate(date.String()); !ok {
				shape.add("daily_data[%d].Date: unrecognised date %q", i, date.String())
			}
			checkNullableNumber(row, "Price_per_gram", "daily_data", i, shape)
		}
	}

	monthly := root.Get("monthly_data")
	if !monthly.IsArray() {
		shape.add("monthly_data: expected array")
	} else {
		for i, row := range monthly.Array() {
			if !row.IsObject() {
				shape.add("monthly_data[%d]: expected object", i)
				continue
			}
			if row.Get("Month").Type != gjson.String {
				shape.add("monthly_data[%d].Month: expected string", i)
			}
			for _, key := range []string{"Start_per_gram", "End_per_gram", "Average_per_gram"} {
				checkNullableNumber(row, key, "monthly_data", i, shape)
			}
			for _, key := range []string{"Change_Rs", "Percent_change"} {
				if v := row.Get(key); v.Exists() && v.Type != gjson.String && v.Type != gjson.Null {
					shape.add("monthly_data[%d].%s: expected string", i, key)
				} else if !v.Exists() {
					shape.add("monthly_data[%d].%s: missing", i, key)
				}
			}
		}
	}

	for _, key := range []string{"daily_forecast", "monthly_forecast"} {
		fc := root.Get(key)
		if !fc.IsArray() {
			shape.add("%s: expected array", key)
			continue
		}
		values := fc.Array()
		// An empty forecast means the upstream model could not be fitted.
		if len(values) != 0 && len(values) != models.Horizon {
			shape.add("%s: expected %d values, got %d", key, models.Horizon, len(values))
		}
		for i, v := range values {
			if v.Type != gjson.Number {
				shape.add("%s[%d]: expected number", key, i)
			}
		}
	}

	for _, prefix := range []string{"daily_", "monthly_"} {
		for _, field := range diagnosticFields {
			key := prefix + field
			v := root.Get(key)
			switch {
			case !v.Exists():
				shape.add("%s: missing", key)
			case field == "modelType" && v.Type != gjson.String && v.Type != gjson.Null:
				shape.add("%s: expected string or null", key)
			case v.Type != gjson.Number && v.Type != gjson.String && v.Type != gjson.Null:
				shape.add("%s: expected number, string or null", key)
			}
		}
	}
}

func checkNullableNumber(row gjson.Result, key, array string, i int, shape *ShapeError) {
	v := row.Get(key)
	if !v.Exists() {
		shape.add("%s[%d].%s: missing", array, i, key)
		return
	}
	if v.Type != gjson.Number && v.Type != gjson.Null {
		shape.add("%s[%d].%s: expected number or null", array, i, key)
	}
}

func parseDailyDate(s string) (time.Time, bool) {
	for _, layout := range dailyDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), true
		}
	}
	return time.Time{}, false
}

func nullDecimal(v gjson.Result) decimal.NullDecimal {
	if v.Type != gjson.Number {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(v.Raw)
	if err != nil {
		return decimal.NewNullDecimal(decimal.NewFromFloat(v.Float()))
	}
	return decimal.NewNullDecimal(d)
}

func decimals(v gjson.Result) []decimal.Decimal {
	values := v.Array()
	out := make([]decimal.Decimal, 0, len(values))
	for _, n := range values {
		out = append(out, nullDecimal(n).Decimal)
	}
	return out
}

func diagnostics(root gjson.Result, prefix string) models.ModelDiagnostics {
	param := func(field string) models.Param {
		v := root.Get(prefix + field)
		switch v.Type {
		case gjson.Number:
			return models.NumericParam(v.Float())
		case gjson.String:
			// The service writes "N/A" for phi on non-damped models and for
			// metrics it could not compute.
			if v.String() == "N/A" {
				if field == "phi" {
					return models.NotApplicableParam()
				}
				return models.AbsentParam()
			}
			return models.LiteralParam(v.String())
		}
		return models.AbsentParam()
	}
	return models.ModelDiagnostics{
		ModelType: param("modelType"),
		Alpha:     param("alpha"),
		Beta:      param("beta"),
		Phi:       param("phi"),
		RMSE:      param("rmse"),
		MAE:       param("mae"),
	}
}
