package implementation

import (
	"context"
	"time"

	agtmodels "gitlab.com/unnchai/agro.backend/src/production/AGT.Models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRecordRepository struct {
	coll *mongo.Collection
}

func NewMongoRecordRepository(coll *mongo.Collection) *MongoRecordRepository {
	return &MongoRecordRepository{coll: coll}
}

func (r *MongoRecordRepository) InsertOne(ctx context.Context, rec agtmodels.SensorRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, rec)
	return err
}

func (r *MongoRecordRepository) FindAll(ctx context.Context) ([]agtmodels.SensorRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	// Non-nil so an empty collection serializes as [] rather than null
	records := make([]agtmodels.SensorRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *MongoRecordRepository) FindLatest(ctx context.Context) (*agtmodels.SensorRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	var rec agtmodels.SensorRecord
	err := r.coll.FindOne(ctx, bson.D{}, opts).Decode(&rec)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &rec, nil
}
