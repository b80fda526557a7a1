package evapotranspiration

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Run summary over the ET0 column.
type ET0Summary struct {
	Min  float64 //smallest finite ET0 [mm/day]
	Mean float64 //mean of the finite ET0 values [mm/day]
	Max  float64 //largest finite ET0 [mm/day]

	Finite    int //rows with a finite ET0
	NonFinite int //rows where degenerate inputs produced NaN or Inf
}

// Summarize the computed ET0 column. Non-finite rows are counted but
// excluded from min/mean/max. With no finite rows the statistics stay zero.
func (df *WeatherData) Summary() ET0Summary {
	finite := make([]float64, 0, len(df.ET0))
	for _, v := range df.ET0 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		finite = append(finite, v)
	}

	s := ET0Summary{
		Finite:    len(finite),
		NonFinite: len(df.ET0) - len(finite),
	}
	if len(finite) > 0 {
		s.Min = floats.Min(finite)
		s.Max = floats.Max(finite)
		s.Mean = stat.Mean(finite, nil)
	}
	return s
}
