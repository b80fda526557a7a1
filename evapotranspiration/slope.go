package evapotranspiration

import "math"

//--------------------------------------
// Slope of saturation vapour pressure curve
//--------------------------------------

// """Get vapour pressure slope from mean temperature
// return delta
// Args:
//
//	Tmean(float64): daily mean air temperature [°C]
//
// Returns:
//
//	float64: slope of the saturation vapour pressure curve at Tmean [kPa/°C]
//
// """
func Delta(Tmean float64) float64 {
	return 4098 * 0.6108 * math.Exp(17.27*Tmean/(Tmean+237.3)) / ((Tmean + 237.3) * (Tmean + 237.3))
}
