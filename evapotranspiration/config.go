package evapotranspiration

import (
	"os"
	"strconv"

	"github.com/hhkbp2/go-logging"
	"github.com/joho/godotenv"
)

// Calibration defaults (FAO-56). The Angstrom coefficients express the
// fraction of extraterrestrial radiation reaching the ground on overcast
// (a_s) and clear (a_s + b_s) days.
const (
	DefaultAlbedo     = 0.23
	DefaultAngstromAs = 0.25
	DefaultAngstromBs = 0.50
)

// Regional calibration of the radiation model. All runs use the FAO
// defaults unless overridden through the environment.
type Calibration struct {
	Albedo     float64 // canopy reflection coefficient of the reference crop
	AngstromAs float64 // Angstrom formula regression constant a_s
	AngstromBs float64 // Angstrom formula regression constant b_s
}

func DefaultCalibration() Calibration {
	return Calibration{
		Albedo:     DefaultAlbedo,
		AngstromAs: DefaultAngstromAs,
		AngstromBs: DefaultAngstromBs,
	}
}

// """Load the radiation calibration from the environment.
// Reads a .env file when present, then applies ET0_ALBEDO, ET0_ANGSTROM_AS
// and ET0_ANGSTROM_BS on top of the defaults. A missing or malformed value
// keeps the default.
// """
func LoadCalibration() Calibration {
	logger := logging.GetLogger("evapotranspiration")

	if err := godotenv.Load(); err == nil {
		logger.Debugf("calibration: .env file loaded")
	}

	calib := DefaultCalibration()
	calib.Albedo = envFloat("ET0_ALBEDO", calib.Albedo)
	calib.AngstromAs = envFloat("ET0_ANGSTROM_AS", calib.AngstromAs)
	calib.AngstromBs = envFloat("ET0_ANGSTROM_BS", calib.AngstromBs)
	return calib
}

func envFloat(key string, fallback float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		logger := logging.GetLogger("evapotranspiration")
		logger.Warnf("invalid %s=%q, using default %g", key, s, fallback)
		return fallback
	}
	return v
}
