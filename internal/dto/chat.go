package dto

import "time"

// ChatRequest is the body for POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatMessageView is one stored chat message.
type ChatMessageView struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Type      string    `json:"type"`
	Language  string    `json:"language,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatResponse returns the bot's reply.
type ChatResponse struct {
	Reply ChatMessageView `json:"reply"`
}

// ChatHistoryResponse is the caller's full message log.
type ChatHistoryResponse struct {
	Messages []ChatMessageView `json:"messages"`
}

// AnalyzeCodeRequest is the body for POST /code/analyze-code.
type AnalyzeCodeRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// AnalyzeCodeResponse carries the model's structured feedback.
type AnalyzeCodeResponse struct {
	Analysis string `json:"analysis"`
}
