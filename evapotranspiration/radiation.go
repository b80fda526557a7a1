package evapotranspiration

import "math"

//--------------------------------------
// Net radiation calculation
//--------------------------------------

// """Calculate and return net solar radiation
// Args:
//
//	lat(float64): latitude of the observation site [°]
//	doy(float64): day of the year (1-365/366)
//	n(float64): actual duration of sunshine [hour]
//	ea(float64): actual vapour pressure [kPa]
//	Tmin(float64): daily minimum air temperature [°C]
//	Tmax(float64): daily maximum air temperature [°C]
//	altitude(float64): station elevation above sea level [m]
//	calib(Calibration): albedo and Angstrom coefficients
//
// Returns:
//
//	float64: net radiation at the crop surface Rn [MJ/m2/day]
//
// Note:
//
//	Near the poles -tan(lat)*tan(declination) can leave the domain of
//	acos (polar day or polar night). The sunset hour angle then becomes
//	NaN and the NaN flows through to the returned Rn.
//
// """
func NetRadiation(lat float64, doy float64, n float64, ea float64, Tmin float64, Tmax float64, altitude float64, calib Calibration) float64 {
	latitude := degreeToRad(lat)

	// Inverse relative distance Earth-Sun
	d_r := 1 + 0.033*math.Cos(2*math.Pi*doy/365)

	// Solar declination [rad]
	solar_declination := 0.409 * math.Sin(2*math.Pi*doy/365-1.39)

	// Sunset hour angle [rad]
	sunset_hour_angle := math.Acos(-math.Tan(latitude) * math.Tan(solar_declination))

	// Extraterrestrial radiation Ra [MJ/m2/day]
	Ra := 24 * 60 / math.Pi * 0.082 * d_r * (sunset_hour_angle*math.Sin(latitude)*math.Sin(solar_declination) +
		math.Cos(latitude)*math.Cos(solar_declination)*math.Sin(sunset_hour_angle))

	// Maximum possible duration of sunshine N [hour]
	N := (24 * sunset_hour_angle) / math.Pi

	// Solar radiation Rs (Angstrom formula) and clear-sky radiation Rs0 [MJ/m2/day]
	Rs := (calib.AngstromAs + (calib.AngstromBs*n)/N) * Ra
	Rs0 := (0.75 + (2e-5)*altitude) * Ra

	// Net shortwave radiation [MJ/m2/day]
	Rns := (1 - calib.Albedo) * Rs

	// Net longwave radiation [MJ/m2/day]
	// The 273.16/273 offsets differ on purpose, following the reference
	// formulation this tool reproduces.
	Rnl := 4.903e-09 * ((math.Pow(Tmin+273.16, 4) + math.Pow(Tmax+273, 4)) / 2) *
		(0.34 - 0.14*math.Sqrt(ea)) * (1.35*Rs/Rs0 - 0.35)

	return Rns - Rnl
}

func radToDegree(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

func degreeToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
