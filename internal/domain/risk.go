package domain

import "math"

// RiskCategory is one of the five ordered carburetor icing risk tiers.
type RiskCategory string

const (
	RiskSeriousAnyPower       RiskCategory = "serious_any_power"
	RiskSeriousDescentPower   RiskCategory = "serious_descent_power"
	RiskModerateCruiseSerious RiskCategory = "moderate_cruise_serious_descent"
	RiskLightCruiseOrDescent  RiskCategory = "light_cruise_descent"
	RiskNoIcing               RiskCategory = "no_icing"
)

// Label returns the chart legend text for the category.
func (c RiskCategory) Label() string {
	switch c {
	case RiskSeriousAnyPower:
		return "Serious icing – any power"
	case RiskSeriousDescentPower:
		return "Serious icing – descent power"
	case RiskModerateCruiseSerious:
		return "Moderate icing – cruise power, or serious icing – descent power"
	case RiskLightCruiseOrDescent:
		return "Light icing – cruise or descent power"
	case RiskNoIcing:
		return "No icing"
	default:
		return ""
	}
}

// Color returns the hex fill color used for the category on the reference charts.
func (c RiskCategory) Color() string {
	switch c {
	case RiskSeriousAnyPower:
		return "#d32f2f"
	case RiskSeriousDescentPower:
		return "#f57c00"
	case RiskModerateCruiseSerious:
		return "#fbc02d"
	case RiskLightCruiseOrDescent:
		return "#aed581"
	case RiskNoIcing:
		return "#81c784"
	default:
		return ""
	}
}

// riskRule is one row of the icing probability table: an inclusive
// temperature/depression envelope and the category it maps to.
type riskRule struct {
	maxTemp       float64 // °C, envelope is [0, maxTemp]
	maxDepression float64 // °C, envelope is [0, maxDepression]
	category      RiskCategory
}

// riskRules is the icing probability chart as an ordered table, evaluated top
// to bottom with first match winning. The rows are NOT mutually exclusive:
// each later row is a wider superset of the one above, so reordering them
// would change results. Do not sort or deduplicate.
var riskRules = []riskRule{
	{maxTemp: 20, maxDepression: 8, category: RiskSeriousAnyPower},
	{maxTemp: 20, maxDepression: 12, category: RiskSeriousDescentPower},
	{maxTemp: 30, maxDepression: 15, category: RiskModerateCruiseSerious},
	{maxTemp: 40, maxDepression: 25, category: RiskLightCruiseOrDescent},
}

// Classify maps a temperature/dew point pair (Celsius) to an icing risk
// category. A nil or non-finite input means "insufficient data to classify"
// and yields nil rather than an error; callers treat nil as unknown.
func Classify(tempC, dewPointC *float64) *RiskCategory {
	if tempC == nil || dewPointC == nil {
		return nil
	}
	if !isFinite(*tempC) || !isFinite(*dewPointC) {
		return nil
	}
	c := classify(*tempC, *dewPointC)
	return &c
}

// classify is the total classification over finite inputs: it always returns
// exactly one category, falling through to RiskNoIcing when no envelope
// matches (including negative depression, which no rule admits).
func classify(tempC, dewPointC float64) RiskCategory {
	depression := DewPointDepression(tempC, dewPointC)
	for _, rule := range riskRules {
		if tempC >= 0 && tempC <= rule.maxTemp && depression >= 0 && depression <= rule.maxDepression {
			return rule.category
		}
	}
	return RiskNoIcing
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
