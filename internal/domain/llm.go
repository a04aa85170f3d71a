package domain

import "context"

// ChatTurn is one prior exchange message passed to the model as context.
type ChatTurn struct {
	Sender ChatSender
	Text   string
}

// ChatModel is the port to the generative-AI backend. Implementations must
// honor ctx cancellation; callers attach a timeout to every call.
type ChatModel interface {
	// Reply generates the assistant's next message given the recent history
	// and the new user message.
	Reply(ctx context.Context, history []ChatTurn, message string) (string, error)

	// Complete runs a single-shot prompt without conversation context.
	Complete(ctx context.Context, prompt string) (string, error)
}
