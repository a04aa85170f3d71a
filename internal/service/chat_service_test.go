package service

import (
	"context"
	"errors"
	"testing"

	"easyway/internal/domain"
	"easyway/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestClassifyReply(t *testing.T) {
	cases := []struct {
		name     string
		reply    string
		wantType domain.ChatMessageType
		wantLang string
	}{
		{"plain text", "Pointers hold addresses.", domain.MessageText, ""},
		{"go block", "```go\nfmt.Println(\"hi\")\n```", domain.MessageCode, "go"},
		{"cpp block", "```c++\nint main() {}\n```", domain.MessageCode, "c++"},
		{"bare fence", "```\nsome output\n```", domain.MessageCode, ""},
		{"backticks inline", "use `var` here", domain.MessageText, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msgType, lang := classifyReply(tc.reply)
			assert.Equal(t, tc.wantType, msgType)
			assert.Equal(t, tc.wantLang, lang)
		})
	}
}

func TestSendMessage_UsesRecentHistoryAsContext(t *testing.T) {
	chatRepo := new(MockChatRepository)
	model := new(MockChatModel)
	userID := "01HUSER000000000000000001"

	history := []*domain.ChatMessage{
		{ID: "m1", UserID: userID, Sender: domain.SenderUser, Text: "What is a slice?"},
		{ID: "m2", UserID: userID, Sender: domain.SenderBot, Text: "A view over an array."},
	}

	chatRepo.On("LastMessages", mock.Anything, userID, domain.ChatContextWindow).Return(history, nil)
	chatRepo.On("AppendMessage", mock.Anything, mock.MatchedBy(func(m *domain.ChatMessage) bool {
		return m.Sender == domain.SenderUser && m.Text == "And a map?"
	})).Return(nil).Once()
	model.On("Reply", mock.Anything, mock.MatchedBy(func(turns []domain.ChatTurn) bool {
		return len(turns) == 2 && turns[0].Text == "What is a slice?"
	}), "And a map?").Return("A hash table.", nil)
	chatRepo.On("AppendMessage", mock.Anything, mock.MatchedBy(func(m *domain.ChatMessage) bool {
		return m.Sender == domain.SenderBot && m.Text == "A hash table."
	})).Return(nil).Once()

	svc := NewChatService(chatRepo, model)
	resp, err := svc.SendMessage(context.Background(), userID, &dto.ChatRequest{Message: "And a map?"})

	assert.NoError(t, err)
	assert.Equal(t, "A hash table.", resp.Reply.Text)
	assert.Equal(t, string(domain.MessageText), resp.Reply.Type)
	chatRepo.AssertExpectations(t)
	model.AssertExpectations(t)
}

func TestSendMessage_CodeReplyTagged(t *testing.T) {
	chatRepo := new(MockChatRepository)
	model := new(MockChatModel)
	userID := "01HUSER000000000000000001"

	chatRepo.On("LastMessages", mock.Anything, userID, domain.ChatContextWindow).Return([]*domain.ChatMessage{}, nil)
	chatRepo.On("AppendMessage", mock.Anything, mock.Anything).Return(nil)
	model.On("Reply", mock.Anything, mock.Anything, mock.Anything).Return("```python\nprint('hi')\n```", nil)

	svc := NewChatService(chatRepo, model)
	resp, err := svc.SendMessage(context.Background(), userID, &dto.ChatRequest{Message: "show me hello world"})

	assert.NoError(t, err)
	assert.Equal(t, string(domain.MessageCode), resp.Reply.Type)
	assert.Equal(t, "python", resp.Reply.Language)
}

func TestSendMessage_ModelFailure(t *testing.T) {
	chatRepo := new(MockChatRepository)
	model := new(MockChatModel)
	userID := "01HUSER000000000000000001"

	chatRepo.On("LastMessages", mock.Anything, userID, domain.ChatContextWindow).Return([]*domain.ChatMessage{}, nil)
	chatRepo.On("AppendMessage", mock.Anything, mock.Anything).Return(nil)
	model.On("Reply", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("upstream timeout"))

	svc := NewChatService(chatRepo, model)
	_, err := svc.SendMessage(context.Background(), userID, &dto.ChatRequest{Message: "hello"})

	assert.Error(t, err)
	var dErr *domain.DomainError
	assert.True(t, errors.As(err, &dErr))
	assert.Equal(t, domain.CodeLLMServiceError, dErr.Code)
}

func TestAnalyzeCode_StaysOutOfHistory(t *testing.T) {
	chatRepo := new(MockChatRepository)
	model := new(MockChatModel)

	model.On("Complete", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return len(prompt) > 0
	})).Return("1. Summary: prints a greeting.", nil)

	svc := NewChatService(chatRepo, model)
	resp, err := svc.AnalyzeCode(context.Background(), &dto.AnalyzeCodeRequest{
		Code:     "print('hi')",
		Language: "python",
	})

	assert.NoError(t, err)
	assert.Contains(t, resp.Analysis, "Summary")
	chatRepo.AssertNotCalled(t, "AppendMessage", mock.Anything, mock.Anything)
}

func TestClearHistory(t *testing.T) {
	chatRepo := new(MockChatRepository)
	chatRepo.On("ClearMessages", mock.Anything, "01HUSER000000000000000001").Return(nil)

	svc := NewChatService(chatRepo, new(MockChatModel))
	err := svc.ClearHistory(context.Background(), "01HUSER000000000000000001")

	assert.NoError(t, err)
	chatRepo.AssertExpectations(t)
}
