package evapotranspiration

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Gamma(t *testing.T) {
	assert.True(t, math.Abs(Gamma(101.3)-0.067364500000) < 1.0e-9)
}

// Full combination for the reference scenario:
// lat=45, Tmin=12, Tmax=25, Tmean=18.5, RHmin=40, RHmax=80,
// uz=2.0, n=9, pressure=101.3, doy=180, z=100
func Test_PenmanMonteith(t *testing.T) {
	es, ea := VaporPressure(12, 25, 40, 80)
	delta := Delta(18.5)
	gamma := Gamma(101.3)
	Rn := NetRadiation(45, 180, 9, ea, 12, 25, 100, DefaultCalibration())

	ET0 := PenmanMonteith(18.5, delta, 2.0, Rn, 101.3, gamma, ea, es)

	assert.True(t, math.Abs(ET0-4.799190898028) < 1.0e-6)
	assert.Equal(t, 4.8, round1(ET0))
}

// A hot, dry and windy day; still within the plausible 0-15 mm/day band
func Test_PenmanMonteith_range(t *testing.T) {
	es, ea := VaporPressure(22, 38, 30, 70)
	delta := Delta(30)
	gamma := Gamma(100.0)

	ET0 := PenmanMonteith(30, delta, 3.5, 14.0, 100.0, gamma, ea, es)

	assert.True(t, math.Abs(ET0-8.456016309018) < 1.0e-6)
	assert.True(t, ET0 > 0 && ET0 < 15)
	assert.Equal(t, 8.5, round1(ET0))
}

func Test_round1(t *testing.T) {
	assert.Equal(t, 4.8, round1(4.75))
	assert.Equal(t, -1.2, round1(-1.24))
	assert.True(t, math.IsNaN(round1(math.NaN())))
	assert.True(t, math.IsInf(round1(math.Inf(1)), 1))
}
