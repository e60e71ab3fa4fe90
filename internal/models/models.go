package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Horizon is the number of periods the forecaster predicts past the last observation.
const Horizon = 3

type DailyObservation struct {
	Date         time.Time
	PricePerGram decimal.NullDecimal
}

type MonthlyObservation struct {
	Month          string // "Jan 24"
	StartPerGram   decimal.NullDecimal
	EndPerGram     decimal.NullDecimal
	AveragePerGram decimal.NullDecimal
	ChangeRs       string // preformatted upstream
	PercentChange  string // preformatted upstream
}

// Payload is one validated response from the forecast service.
type Payload struct {
	Daily           []DailyObservation
	Monthly         []MonthlyObservation
	DailyForecast   []decimal.Decimal
	MonthlyForecast []decimal.Decimal
	DailyModel      ModelDiagnostics
	MonthlyModel    ModelDiagnostics
	FetchedAt       time.Time
}

type ModelDiagnostics struct {
	ModelType Param
	Alpha     Param
	Beta      Param
	Phi       Param
	RMSE      Param
	MAE       Param
}
