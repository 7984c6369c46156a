package ai

import (
	"fmt"
	"math"

	agtmodels "gitlab.com/unnchai/agro.backend/src/production/AGT.Models"
)

// Predictor derives a flammability risk score from a single reading. The
// score is a local heuristic over the sensor fields: hot, dry, gassy
// conditions score high, wet and cool conditions score low.
type Predictor struct{}

func NewPredictor() *Predictor {
	return &Predictor{}
}

// Sensor ranges used for normalization. Analog channels on the station
// report 10-bit values.
const (
	maxAirTemp    = 50.0
	maxSoilTemp   = 50.0
	maxAnalogRead = 1023.0
)

// PredictFlammability returns a score in [0, 100].
func (p *Predictor) PredictFlammability(data agtmodels.SensorData) (float64, error) {
	fields := []float64{
		data.Temperature, data.Humidity, data.SoilMoisture, data.GasLevel,
		data.PHValue, data.SoilTemperature, data.LightIntensity,
	}
	for _, v := range fields {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("non-finite sensor value in payload")
		}
	}

	heat := clamp01(data.Temperature / maxAirTemp)
	soilHeat := clamp01(data.SoilTemperature / maxSoilTemp)
	dryAir := 1 - clamp01(data.Humidity/100)
	drySoil := 1 - clamp01(data.SoilMoisture/maxAnalogRead)
	gas := clamp01(data.GasLevel / maxAnalogRead)
	light := clamp01(data.LightIntensity / maxAnalogRead)

	score := 100 * (0.20*heat +
		0.10*soilHeat +
		0.25*dryAir +
		0.20*drySoil +
		0.20*gas +
		0.05*light)

	return score, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
