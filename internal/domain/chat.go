package domain

import "time"

// ChatSender identifies who produced a chat message.
type ChatSender string

const (
	SenderUser ChatSender = "user"
	SenderBot  ChatSender = "bot"
)

// ChatMessageType tags the payload so the frontend can render code blocks.
type ChatMessageType string

const (
	MessageText ChatMessageType = "text"
	MessageCode ChatMessageType = "code"
)

// ChatContextWindow is the number of most recent messages included when
// building LLM context. History beyond the window stays in storage.
const ChatContextWindow = 5

// ChatMessage is one entry of a user's chat log. History is keyed by user;
// no session state is shared between users.
type ChatMessage struct {
	ID        string
	UserID    string
	Sender    ChatSender
	Text      string
	Type      ChatMessageType
	Language  string
	CreatedAt time.Time
}
