package agtmodels

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SensorData is one Arduino reading as submitted by a station. All seven
// fields are stored exactly as received.
type SensorData struct {
	Temperature     float64 `bson:"temperature" json:"temperature"`
	Humidity        float64 `bson:"humidity" json:"humidity"`
	SoilMoisture    float64 `bson:"soil_moisture" json:"soil_moisture"`
	GasLevel        float64 `bson:"gas_level" json:"gas_level"`
	PHValue         float64 `bson:"ph_value" json:"ph_value"`
	SoilTemperature float64 `bson:"soil_temperature" json:"soil_temperature"`
	LightIntensity  float64 `bson:"light_intensity" json:"light_intensity"`
}

// SensorRecord is a stored reading plus the derived flammability prediction
// and the server-assigned creation timestamp. Records are immutable and never
// deleted; repeated device_id values produce independent records.
type SensorRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	DeviceID   string             `bson:"device_id" json:"device_id"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	Data       SensorData         `bson:"data" json:"data"`
	Prediction float64            `bson:"prediction" json:"prediction"`
}
