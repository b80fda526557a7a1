package evapotranspiration

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Columns the calculation needs. Column order in the input file is free and
// additional columns are carried through untouched.
var requiredColumns = []string{"lat", "Tmin", "Tmax", "Tmean", "RHmin", "RHmax", "uz", "n", "pressure", "doy", "z"}

// """Read file and create weather table
// Args:
//
//	r(io.Reader): CSV input with a header row
//
// Returns:
//
//	*WeatherData: the parsed table
//	error: missing required column, or an unparsable cell reported with
//	       its 1-based data row number. Any error means no table.
//
// """
func FromCSV(r io.Reader) (*WeatherData, error) {
	csvReader := csv.NewReader(r)
	csvReader.ReuseRecord = true

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := colIdx[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	df := &WeatherData{header: append([]string{}, header...)}

	for rowNum := 1; ; rowNum++ {
		row, cerr := csvReader.Read()
		if cerr == io.EOF {
			break
		}
		if cerr != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, cerr)
		}

		rec, rerr := parseRecord(row, colIdx)
		if rerr != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, rerr)
		}

		df.raw = append(df.raw, append([]string{}, row...))
		df.Rows = append(df.Rows, rec)
	}

	return df, nil
}

func parseRecord(row []string, colIdx map[string]int) (WeatherRecord, error) {
	var rec WeatherRecord
	fields := []struct {
		name string
		dst  *float64
	}{
		{"lat", &rec.Lat},
		{"Tmin", &rec.Tmin},
		{"Tmax", &rec.Tmax},
		{"Tmean", &rec.Tmean},
		{"RHmin", &rec.RHmin},
		{"RHmax", &rec.RHmax},
		{"uz", &rec.Uz},
		{"n", &rec.N},
		{"pressure", &rec.Pressure},
		{"doy", &rec.Doy},
		{"z", &rec.Z},
	}
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[colIdx[f.name]]), 64)
		if err != nil {
			return WeatherRecord{}, fmt.Errorf("column %q: %w", f.name, err)
		}
		*f.dst = v
	}
	return rec, nil
}

// CSV output: the original columns verbatim plus the appended ET0 column
// (one decimal place).
func (df *WeatherData) ToCSV(buf *bytes.Buffer) {
	for i, name := range df.header {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString(name)
	}
	if df.ET0 != nil {
		buf.WriteString(",ET0")
	}
	buf.WriteString("\n")

	for i := 0; i < len(df.raw); i++ {
		for j, cell := range df.raw[i] {
			if j > 0 {
				buf.WriteString(",")
			}
			buf.WriteString(cell)
		}
		if df.ET0 != nil {
			buf.WriteString(",")
			buf.WriteString(strconv.FormatFloat(df.ET0[i], 'f', 1, 64))
		}
		buf.WriteString("\n")
	}
}
