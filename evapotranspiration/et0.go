package evapotranspiration

import "math"

//--------------------------------------
// Penman-Monteith combination equation
//--------------------------------------

// Psychrometric constant gamma [kPa/°C] from atmospheric pressure [kPa]
func Gamma(pressure float64) float64 {
	return 0.000665 * pressure
}

// """Calculate evapotranspiration using the Penman-Monteith equation.
// Args:
//
//	T(float64): daily mean air temperature [°C]
//	delta(float64): slope of the saturation vapour pressure curve [kPa/°C]
//	wind_speed(float64): wind speed at 2 m height [m/s]
//	Rn(float64): net radiation at the crop surface [MJ/m2/day]
//	pressure(float64): atmospheric pressure [kPa]
//	gamma(float64): psychrometric constant [kPa/°C]
//	ea(float64): actual vapour pressure [kPa]
//	es(float64): mean saturation vapour pressure [kPa]
//
// Returns:
//
//	float64: reference evapotranspiration ET0 [mm/day], not yet rounded
//
// """
func PenmanMonteith(T float64, delta float64, wind_speed float64, Rn float64, pressure float64, gamma float64, ea float64, es float64) float64 {
	return ((0.408 * delta * Rn) + (gamma * (900 / (T + 273)) * wind_speed * (es - ea))) /
		(delta + gamma*(1+(0.34*wind_speed)))
}

// Round to one decimal place. NaN and Inf pass through unchanged.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
