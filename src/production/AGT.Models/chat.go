package agtmodels

// ChatMessage is a single turn in a conversation. The role/content shape
// matches the OpenAI-compatible chat-completion wire format.
type ChatMessage struct {
	Role    string `bson:"role" json:"role"`
	Content string `bson:"content" json:"content"`
}

// Conversation is the audit document for one caller-supplied conversation id
// (typically a device IMEI). It is seeded with the system prompt on first
// touch and appended to on every chat call; it is never read back into the
// prompt and is not exposed over HTTP.
type Conversation struct {
	ID           string        `bson:"_id" json:"_id"`
	Conversation []ChatMessage `bson:"conversation" json:"conversation"`
}
