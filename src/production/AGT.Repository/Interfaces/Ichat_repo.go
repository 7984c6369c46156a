package interfaces

import (
	"context"

	agtmodels "gitlab.com/unnchai/agro.backend/src/production/AGT.Models"
)

// ChatRepository appends chat turns to per-id conversation documents for
// audit. Conversations are write-only from the service's point of view.
type ChatRepository interface {
	AppendMessage(ctx context.Context, conversationID string, msg agtmodels.ChatMessage) error
}
