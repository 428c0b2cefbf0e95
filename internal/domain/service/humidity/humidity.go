// Package humidity derives relative humidity from air temperature and dew
// point with the Magnus-type approximation
//
//	e_s(T) = 6.11 * 10^((7.5*T) / (237.3+T))
//	RH     = 100 * e_s(dew) / e_s(air)
package humidity

import (
	"math"

	"github.com/shopspring/decimal"

	"raincast/internal/domain"
)

const (
	magnusBase        = 6.11
	magnusCoefficient = 7.5
	magnusOffset      = 237.3

	roundPlaces = 2
)

// SaturationVaporPressure returns e_s(T) in hPa for a temperature in °C.
func SaturationVaporPressure(temp float64) float64 {
	return magnusBase * math.Pow(10, (magnusCoefficient*temp)/(magnusOffset+temp)) //nolint:mnd
}

// Relative returns the unrounded relative humidity in percent. The value is
// not clamped to [0, 100]; dew points above the air temperature give more
// than 100.
//
// Temperatures at or next to -237.3 °C make e_s(air) collapse to zero or
// overflow; such inputs yield a TemperatureOutOfDomain error instead of ±Inf/NaN.
func Relative(airTemp, dewPoint float64) (float64, error) {
	rh := 100 * SaturationVaporPressure(dewPoint) / SaturationVaporPressure(airTemp) //nolint:mnd

	if math.IsNaN(rh) || math.IsInf(rh, 0) {
		return 0, domain.NewTemperatureOutOfDomainError(airTemp, dewPoint)
	}

	return rh, nil
}

// Round rounds to two decimal places, ties to even.
func Round(v float64) float64 {
	return decimal.NewFromFloat(v).RoundBank(roundPlaces).InexactFloat64()
}

// RelativeRounded is Relative followed by Round.
func RelativeRounded(airTemp, dewPoint float64) (float64, error) {
	rh, err := Relative(airTemp, dewPoint)
	if err != nil {
		return 0, err
	}

	return Round(rh), nil
}
