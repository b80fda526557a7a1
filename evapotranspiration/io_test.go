package evapotranspiration

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Column order is free; unused columns are carried through
func Test_FromCSV_column_order(t *testing.T) {
	csv := "station,doy,z,lat,Tmin,Tmax,Tmean,RHmin,RHmax,uz,n,pressure\n" +
		"DeBilt,180,100,45,12,25,18.5,40,80,2.0,9,101.3\n"

	df, err := FromCSV(strings.NewReader(csv))
	assert.NoError(t, err)

	rec := df.Rows[0]
	assert.Equal(t, 45.0, rec.Lat)
	assert.Equal(t, 12.0, rec.Tmin)
	assert.Equal(t, 25.0, rec.Tmax)
	assert.Equal(t, 18.5, rec.Tmean)
	assert.Equal(t, 40.0, rec.RHmin)
	assert.Equal(t, 80.0, rec.RHmax)
	assert.Equal(t, 2.0, rec.Uz)
	assert.Equal(t, 9.0, rec.N)
	assert.Equal(t, 101.3, rec.Pressure)
	assert.Equal(t, 180.0, rec.Doy)
	assert.Equal(t, 100.0, rec.Z)

	// the extra column survives to the output, cells verbatim
	res := df.CalcET0(DefaultCalibration())
	var buf bytes.Buffer
	res.ToCSV(&buf)
	assert.Equal(t,
		"station,doy,z,lat,Tmin,Tmax,Tmean,RHmin,RHmax,uz,n,pressure,ET0\n"+
			"DeBilt,180,100,45,12,25,18.5,40,80,2.0,9,101.3,4.8\n",
		buf.String())
}

func Test_FromCSV_missing_column(t *testing.T) {
	csv := "lat,Tmin,Tmax,Tmean,RHmin,RHmax,uz,n,pressure,doy\n" +
		"45,12,25,18.5,40,80,2.0,9,101.3,180\n"

	df, err := FromCSV(strings.NewReader(csv))
	assert.Nil(t, df)
	assert.ErrorContains(t, err, `missing column "z"`)
}

// A bad cell aborts the load and names the offending row
func Test_FromCSV_bad_cell(t *testing.T) {
	csv := "lat,Tmin,Tmax,Tmean,RHmin,RHmax,uz,n,pressure,doy,z\n" +
		"45,12,25,18.5,40,80,2.0,9,101.3,180,100\n" +
		"45,twelve,25,18.5,40,80,2.0,9,101.3,181,100\n"

	df, err := FromCSV(strings.NewReader(csv))
	assert.Nil(t, df)
	assert.ErrorContains(t, err, "row 2")
	assert.ErrorContains(t, err, `column "Tmin"`)
}

func Test_FromCSV_empty_input(t *testing.T) {
	df, err := FromCSV(strings.NewReader(""))
	assert.Nil(t, df)
	assert.ErrorContains(t, err, "read header")
}

// Without a computed ET0 column the table round-trips unchanged
func Test_ToCSV_without_ET0(t *testing.T) {
	df, err := FromCSV(strings.NewReader(scenarioCSV))
	assert.NoError(t, err)

	var buf bytes.Buffer
	df.ToCSV(&buf)
	assert.Equal(t, scenarioCSV, buf.String())
}
