package implementation

import (
	"context"
	"time"

	agtmodels "gitlab.com/unnchai/agro.backend/src/production/AGT.Models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoChatRepository struct {
	coll *mongo.Collection
	seed agtmodels.ChatMessage
}

// NewMongoChatRepository returns a chat repository. New conversation
// documents are seeded with the given message (the fixed system prompt)
// before the first turn is appended.
func NewMongoChatRepository(coll *mongo.Collection, seed agtmodels.ChatMessage) *MongoChatRepository {
	return &MongoChatRepository{coll: coll, seed: seed}
}

func (r *MongoChatRepository) AppendMessage(ctx context.Context, conversationID string, msg agtmodels.ChatMessage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.D{{Key: "_id", Value: conversationID}}

	err := r.coll.FindOne(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		doc := agtmodels.Conversation{
			ID:           conversationID,
			Conversation: []agtmodels.ChatMessage{r.seed},
		}
		if _, err := r.coll.InsertOne(ctx, doc); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	update := bson.D{{Key: "$push", Value: bson.D{{Key: "conversation", Value: msg}}}}
	_, err = r.coll.UpdateOne(ctx, filter, update)
	return err
}
