package interfaces

import (
	"context"

	agtmodels "gitlab.com/unnchai/agro.backend/src/production/AGT.Models"
)

// RecordRepository persists and reads sensor records.
type RecordRepository interface {
	// InsertOne stores a single record.
	InsertOne(ctx context.Context, rec agtmodels.SensorRecord) error

	// FindAll returns every stored record, newest first by timestamp.
	FindAll(ctx context.Context) ([]agtmodels.SensorRecord, error)

	// FindLatest returns the most recent record by timestamp, or nil when
	// the collection is empty.
	FindLatest(ctx context.Context) (*agtmodels.SensorRecord, error)
}
