package ai

import (
	"math"
	"testing"

	agtmodels "gitlab.com/unnchai/agro.backend/src/production/AGT.Models"
)

func sampleReading() agtmodels.SensorData {
	return agtmodels.SensorData{
		Temperature:     26.4,
		Humidity:        61,
		SoilMoisture:    432,
		GasLevel:        230,
		PHValue:         6.7,
		SoilTemperature: 23.5,
		LightIntensity:  320,
	}
}

func TestPredictFlammabilityRange(t *testing.T) {
	p := NewPredictor()

	cases := map[string]agtmodels.SensorData{
		"typical": sampleReading(),
		"zeros":   {},
		"extreme": {
			Temperature:     80,
			Humidity:        0,
			SoilMoisture:    0,
			GasLevel:        2000,
			PHValue:         14,
			SoilTemperature: 80,
			LightIntensity:  2000,
		},
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			score, err := p.PredictFlammability(data)
			if err != nil {
				t.Fatalf("PredictFlammability: %v", err)
			}
			if math.IsNaN(score) || score < 0 || score > 100 {
				t.Fatalf("score out of range: %v", score)
			}
		})
	}
}

func TestPredictFlammabilityMonotoneInGasLevel(t *testing.T) {
	p := NewPredictor()

	low := sampleReading()
	high := sampleReading()
	high.GasLevel = 900

	lowScore, err := p.PredictFlammability(low)
	if err != nil {
		t.Fatalf("PredictFlammability(low): %v", err)
	}
	highScore, err := p.PredictFlammability(high)
	if err != nil {
		t.Fatalf("PredictFlammability(high): %v", err)
	}

	if highScore <= lowScore {
		t.Fatalf("expected higher gas level to raise the score: low=%v high=%v", lowScore, highScore)
	}
}

func TestPredictFlammabilityDryConditionsScoreHigher(t *testing.T) {
	p := NewPredictor()

	wet := sampleReading()
	wet.Humidity = 95
	wet.SoilMoisture = 1000

	dry := sampleReading()
	dry.Humidity = 10
	dry.SoilMoisture = 50

	wetScore, _ := p.PredictFlammability(wet)
	dryScore, _ := p.PredictFlammability(dry)

	if dryScore <= wetScore {
		t.Fatalf("expected dry conditions to score higher: wet=%v dry=%v", wetScore, dryScore)
	}
}

func TestPredictFlammabilityRejectsNonFinite(t *testing.T) {
	p := NewPredictor()

	data := sampleReading()
	data.Temperature = math.NaN()

	if _, err := p.PredictFlammability(data); err == nil {
		t.Fatal("expected error for NaN temperature")
	}

	data = sampleReading()
	data.GasLevel = math.Inf(1)

	if _, err := p.PredictFlammability(data); err == nil {
		t.Fatal("expected error for infinite gas level")
	}
}
