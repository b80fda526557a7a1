package evapotranspiration

import "math"

// One day of meteorological observations at one location.
type WeatherRecord struct {
	Lat      float64 //latitude of the observation site [°]
	Tmin     float64 //daily minimum air temperature [°C]
	Tmax     float64 //daily maximum air temperature [°C]
	Tmean    float64 //daily mean air temperature [°C]
	RHmin    float64 //daily minimum relative humidity [%]
	RHmax    float64 //daily maximum relative humidity [%]
	Uz       float64 //wind speed at 2 m height [m/s]
	N        float64 //actual duration of sunshine [hour]
	Pressure float64 //atmospheric pressure [kPa]
	Doy      float64 //day of the year (1-365/366)
	Z        float64 //station elevation above sea level [m]
}

// A loaded weather table. The original header and cells are kept verbatim
// so that saving reproduces every input column unchanged, including columns
// the calculation does not use.
type WeatherData struct {
	header []string        //column names as read from the input file
	raw    [][]string      //original cells, one slice per data row
	Rows   []WeatherRecord //parsed observations, same order as raw

	ET0 []float64 //reference evapotranspiration [mm/day], set by CalcET0
}

// """Calculate reference evapotranspiration for every record.
// For each row the vapour pressures, the slope of the saturation vapour
// pressure curve, the psychrometric constant and the net radiation are
// derived, combined with the Penman-Monteith equation and rounded to one
// decimal place. Rows are independent of each other.
//
// Returns a new table; the receiver is not modified. Degenerate inputs
// (polar sunset angle, temperatures at the formula singularities) yield
// NaN or Inf in the ET0 column instead of an error.
// """
func (df *WeatherData) CalcET0(calib Calibration) *WeatherData {
	out := &WeatherData{
		header: append([]string{}, df.header...),
		raw:    make([][]string, len(df.raw)),
		Rows:   append([]WeatherRecord{}, df.Rows...),
		ET0:    make([]float64, len(df.Rows)),
	}
	for i := range df.raw {
		out.raw[i] = append([]string{}, df.raw[i]...)
	}

	for i := range df.Rows {
		rec := &df.Rows[i]

		delta := Delta(rec.Tmean)

		gamma := Gamma(rec.Pressure)

		es, ea := VaporPressure(rec.Tmin, rec.Tmax, rec.RHmin, rec.RHmax)

		solar_radiation := NetRadiation(rec.Lat, rec.Doy, rec.N, ea, rec.Tmin, rec.Tmax, rec.Z, calib)

		ET0 := PenmanMonteith(rec.Tmean, delta, rec.Uz, solar_radiation, rec.Pressure, gamma, ea, es)

		out.ET0[i] = round1(ET0)
	}

	return out
}

// Indices (0-based) of rows whose ET0 came out NaN or Inf.
func (df *WeatherData) NonFiniteRows() []int {
	rows := []int{}
	for i, v := range df.ET0 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			rows = append(rows, i)
		}
	}
	return rows
}
