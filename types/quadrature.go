package types

import (
	"fmt"
	"strings"
)

//go:generate stringer -type=RuleType

type RuleType uint8

const (
	GaussLegendre RuleType = iota
	GaussLobatto
	CompositeSimpson
	CompositeSimpson38
)

var RuleNameMap = map[string]RuleType{
	"legendre":  GaussLegendre,
	"gauss":     GaussLegendre,
	"lobatto":   GaussLobatto,
	"simpson":   CompositeSimpson,
	"simpson38": CompositeSimpson38,
}

// ParseRuleType resolves a user supplied family label, case insensitively,
// through RuleNameMap.
func ParseRuleType(label string) (rt RuleType, err error) {
	rt, ok := RuleNameMap[strings.ToLower(label)]
	if !ok {
		err = fmt.Errorf("unknown rule family %q, valid families are: legendre, lobatto, simpson, simpson38", label)
	}
	return
}

// ExactnessDegree returns the highest polynomial degree an n point rule of
// this family integrates exactly.
func (rt RuleType) ExactnessDegree(n int) int {
	switch rt {
	case GaussLegendre:
		return 2*n - 1
	case GaussLobatto:
		return 2*n - 3
	default:
		return 3
	}
}

// HasEndpoints reports whether the family pins both interval endpoints.
func (rt RuleType) HasEndpoints() bool {
	return rt != GaussLegendre
}

// MinPoints returns the smallest valid evaluation point count of the family.
func (rt RuleType) MinPoints() int {
	switch rt {
	case GaussLegendre:
		return 1
	case GaussLobatto:
		return 2
	case CompositeSimpson:
		return 3
	default:
		return 4
	}
}

//go:generate stringer -type=Precision

type Precision uint8

const (
	Double Precision = iota
	Single
)

var PrecisionNameMap = map[string]Precision{
	"double":  Double,
	"float64": Double,
	"single":  Single,
	"float32": Single,
}

// ParsePrecision resolves a user supplied precision label, case
// insensitively, through PrecisionNameMap.
func ParsePrecision(label string) (p Precision, err error) {
	p, ok := PrecisionNameMap[strings.ToLower(label)]
	if !ok {
		err = fmt.Errorf("unknown precision %q, valid precisions are: double, single", label)
	}
	return
}
