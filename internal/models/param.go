package models

import (
	"strings"
)

// ParamKind tags the state of a model diagnostic value.
type ParamKind int

const (
	Absent ParamKind = iota
	NotApplicable
	Numeric
	Literal
)

func (k ParamKind) String() string {
	switch k {
	case NotApplicable:
		return "not_applicable"
	case Numeric:
		return "numeric"
	case Literal:
		return "literal"
	default:
		return "absent"
	}
}

// Param is a model diagnostic field. The upstream service reports these as
// number, string or null; Absent and NotApplicable are kept distinct.
type Param struct {
	Kind ParamKind
	Num  float64
	Text string
}

func AbsentParam() Param { return Param{Kind: Absent} }
func NotApplicableParam() Param { return Param{Kind: NotApplicable} }
func NumericParam(v float64) Param { return Param{Kind: Numeric, Num: v} }
func LiteralParam(s string) Param { return Param{Kind: Literal, Text: s} }
func (p Param) Present() bool { return p.Kind == Numeric || p.Kind == Literal }
func (p Param) IsNotApplicable() bool { return p.Kind == NotApplicable }

// IsDamped reports whether a model type names the damped-trend Holt variant,
// the only variant for which phi is meaningful.
func (d ModelDiagnostics) IsDamped() bool {
	if d.ModelType.Kind != Literal {
		return false
	}
	return strings.Contains(strings.ToLower(d.ModelType.Text), "damped")
}
