package evapotranspiration

import "math"

//--------------------------------------
// Vapour pressure calculation
//--------------------------------------

// """Calculate vapour pressure curve
// return mean saturation vapour pressure (es) and actual vapour pressure (ea)
// Args:
//
//	Tmin(float64): daily minimum air temperature [°C]
//	Tmax(float64): daily maximum air temperature [°C]
//	RHmin(float64): daily minimum relative humidity [%]
//	RHmax(float64): daily maximum relative humidity [%]
//
// Returns:
//
//	es(float64): mean saturation vapour pressure [kPa]
//	ea(float64): actual vapour pressure [kPa]
//
// """
func VaporPressure(Tmin float64, Tmax float64, RHmin float64, RHmax float64) (es float64, ea float64) {
	e0Tmin := func_e0(Tmin)
	e0Tmax := func_e0(Tmax)

	es = (e0Tmin + e0Tmax) / 2
	ea = ((e0Tmin * RHmax) + (e0Tmax * RHmin)) / 200

	return es, ea
}

// Saturation vapour pressure e0 [kPa] at air temperature T [°C]
func func_e0(T float64) float64 {
	return 0.618 * math.Exp((17.27*T)/(T+237.3))
}
