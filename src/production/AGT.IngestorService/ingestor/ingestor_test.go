package ingestor

import (
	"testing"
)

func TestParseReading(t *testing.T) {
	payload := []byte(`{"temperature":26.4,"humidity":61,"soil_moisture":432,"gas_level":230,"ph_value":6.7,"soil_temperature":23.5,"light_intensity":320}`)

	reading, err := parseReading("stations/station-01/readings", payload)
	if err != nil {
		t.Fatalf("parseReading: %v", err)
	}

	if reading.DeviceID != "station-01" {
		t.Errorf("unexpected device id: %s", reading.DeviceID)
	}
	if reading.Data.Temperature != 26.4 {
		t.Errorf("unexpected temperature: %v", reading.Data.Temperature)
	}
	if reading.Data.LightIntensity != 320 {
		t.Errorf("unexpected light intensity: %v", reading.Data.LightIntensity)
	}
}

func TestParseReadingBadTopic(t *testing.T) {
	payload := []byte(`{"temperature":1}`)

	cases := []string{
		"stations/station-01",
		"stations//readings",
		"other/station-01/readings",
		"stations/station-01/telemetry",
		"stations/station-01/readings/extra",
	}

	for _, topic := range cases {
		if _, err := parseReading(topic, payload); err == nil {
			t.Errorf("expected error for topic %q", topic)
		}
	}
}

func TestParseReadingBadPayload(t *testing.T) {
	if _, err := parseReading("stations/station-01/readings", []byte(`not json`)); err == nil {
		t.Error("expected error for non-JSON payload")
	}
	if _, err := parseReading("stations/station-01/readings", []byte(`{"temperature":"warm"}`)); err == nil {
		t.Error("expected error for non-numeric field")
	}
}
