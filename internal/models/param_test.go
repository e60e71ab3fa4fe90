package models

import "testing"

func TestModelDiagnostics_IsDamped(t *testing.T) {
	tests := []struct {
		modelType Param
		want      bool
	}{
		{LiteralParam("Holt's Damped Trend"), true},
		{LiteralParam("damped"), true},
		{LiteralParam("Holt's Linear"), false},
		{AbsentParam(), false},
		{NumericParam(1), false},
	}

	for _, tt := range tests {
		d := ModelDiagnostics{ModelType: tt.modelType}
		if got := d.IsDamped(); got != tt.want {
			t.Errorf("IsDamped(%+v) = %v, want %v", tt.modelType, got, tt.want)
		}
	}
}

func TestParam_Present(t *testing.T) {
	if !NumericParam(0).Present() || !LiteralParam("").Present() {
		t.Error("numeric and literal params should be present")
	}
	if AbsentParam().Present() || NotApplicableParam().Present() {
		t.Error("absent and not-applicable params should not be present")
	}
	if NotApplicableParam().Kind.String() != "not_applicable" {
		t.Errorf("Kind.String() = %q", NotApplicableParam().Kind.String())
	}
}
