package domain

import "math"

// Unit identifies a temperature scale at the input/display boundary.
// Classification always operates in Celsius regardless of the input unit.
type Unit string

const (
	UnitCelsius    Unit = "C"
	UnitFahrenheit Unit = "F"
)

// Valid reports whether u is a recognized temperature unit.
func (u Unit) Valid() bool {
	return u == UnitCelsius || u == UnitFahrenheit
}

// CelsiusToFahrenheit converts degrees Celsius to degrees Fahrenheit.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// FahrenheitToCelsius converts degrees Fahrenheit to degrees Celsius.
// Exact inverse of CelsiusToFahrenheit within floating-point rounding.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// ToCelsius normalizes a reading in the given unit to Celsius.
// Unrecognized units are treated as Celsius, the canonical scale.
func ToCelsius(value float64, unit Unit) float64 {
	if unit == UnitFahrenheit {
		return FahrenheitToCelsius(value)
	}
	return value
}

// Magnus approximation constants, valid for -40°C to +50°C.
const (
	magnusA = 17.625
	magnusB = 243.04 // °C
)

// DewPointDepression returns temperature minus dew point, in Celsius.
// Negative values indicate a physically impossible reading (dew point above
// ambient temperature) and are returned as-is; the classifier's rule table
// maps them to no icing.
func DewPointDepression(tempC, dewPointC float64) float64 {
	return tempC - dewPointC
}

// RelativeHumidity estimates relative humidity in percent from temperature
// and dew point using the Magnus approximation. Results are capped at 100
// for readings where the dew point meets or exceeds the temperature.
func RelativeHumidity(tempC, dewPointC float64) float64 {
	if dewPointC >= tempC {
		return 100
	}
	gamma := magnusA*dewPointC/(magnusB+dewPointC) - magnusA*tempC/(magnusB+tempC)
	return 100 * math.Exp(gamma)
}
