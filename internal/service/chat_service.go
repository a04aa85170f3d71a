package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"easyway/internal/domain"
	"easyway/internal/dto"
	"easyway/internal/logger"
	"easyway/internal/repository"
	"easyway/internal/util"

	"go.uber.org/zap"
)

var fencedCode = regexp.MustCompile("(?s)```([a-zA-Z0-9+#-]*)\n")

// ChatService runs the per-user study assistant and code analysis.
type ChatService interface {
	SendMessage(ctx context.Context, userID string, req *dto.ChatRequest) (*dto.ChatResponse, error)
	GetHistory(ctx context.Context, userID string) (*dto.ChatHistoryResponse, error)
	ClearHistory(ctx context.Context, userID string) error
	AnalyzeCode(ctx context.Context, req *dto.AnalyzeCodeRequest) (*dto.AnalyzeCodeResponse, error)
}

type chatServiceImpl struct {
	chatRepo repository.ChatRepository
	model    domain.ChatModel
}

// NewChatService creates a new instance of the chat service.
func NewChatService(chatRepo repository.ChatRepository, model domain.ChatModel) ChatService {
	return &chatServiceImpl{chatRepo: chatRepo, model: model}
}

func toChatMessageView(m *domain.ChatMessage) dto.ChatMessageView {
	return dto.ChatMessageView{
		ID:        m.ID,
		Sender:    string(m.Sender),
		Text:      m.Text,
		Type:      string(m.Type),
		Language:  m.Language,
		CreatedAt: m.CreatedAt,
	}
}

// classifyReply tags a reply as code when it leads with a fenced block, so
// the frontend can render it with highlighting.
func classifyReply(reply string) (domain.ChatMessageType, string) {
	match := fencedCode.FindStringSubmatch(reply)
	if match == nil {
		return domain.MessageText, ""
	}
	return domain.MessageCode, match[1]
}

// SendMessage stores the user's message, asks the model for a reply using
// the last few messages as context, and stores the reply. History is strictly
// per user.
func (s *chatServiceImpl) SendMessage(ctx context.Context, userID string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	history, err := s.chatRepo.LastMessages(ctx, userID, domain.ChatContextWindow)
	if err != nil {
		return nil, domain.NewInternalError("failed to load chat history", err)
	}

	userMsg := &domain.ChatMessage{
		ID:     util.NewULID(),
		UserID: userID,
		Sender: domain.SenderUser,
		Text:   req.Message,
		Type:   domain.MessageText,
	}
	if err := s.chatRepo.AppendMessage(ctx, userMsg); err != nil {
		return nil, domain.NewInternalError("failed to store message", err)
	}

	turns := make([]domain.ChatTurn, 0, len(history))
	for _, m := range history {
		turns = append(turns, domain.ChatTurn{Sender: m.Sender, Text: m.Text})
	}

	reply, err := s.model.Reply(ctx, turns, req.Message)
	if err != nil {
		logger.Get().Error("chat model call failed", zap.String("userID", userID), zap.Error(err))
		return nil, domain.NewLLMServiceError(err)
	}

	msgType, language := classifyReply(reply)
	botMsg := &domain.ChatMessage{
		ID:       util.NewULID(),
		UserID:   userID,
		Sender:   domain.SenderBot,
		Text:     reply,
		Type:     msgType,
		Language: language,
	}
	if err := s.chatRepo.AppendMessage(ctx, botMsg); err != nil {
		return nil, domain.NewInternalError("failed to store reply", err)
	}

	return &dto.ChatResponse{Reply: toChatMessageView(botMsg)}, nil
}

// GetHistory returns the caller's full chat log in order.
func (s *chatServiceImpl) GetHistory(ctx context.Context, userID string) (*dto.ChatHistoryResponse, error) {
	messages, err := s.chatRepo.ListMessages(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load chat history", err)
	}
	views := make([]dto.ChatMessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, toChatMessageView(m))
	}
	return &dto.ChatHistoryResponse{Messages: views}, nil
}

// ClearHistory wipes the caller's chat log.
func (s *chatServiceImpl) ClearHistory(ctx context.Context, userID string) error {
	if err := s.chatRepo.ClearMessages(ctx, userID); err != nil {
		return domain.NewInternalError("failed to clear chat history", err)
	}
	return nil
}

// AnalyzeCode asks the model for structured feedback on a code snippet. The
// exchange is stateless and never enters chat history.
func (s *chatServiceImpl) AnalyzeCode(ctx context.Context, req *dto.AnalyzeCodeRequest) (*dto.AnalyzeCodeResponse, error) {
	language := req.Language
	if strings.TrimSpace(language) == "" {
		language = "an unspecified language"
	}

	prompt := fmt.Sprintf(`You are a code reviewer for engineering students. Analyze the following %s code.

Respond with these sections:
1. Summary — what the code does, in one or two sentences.
2. Issues — bugs, edge cases, or style problems, as a numbered list.
3. Suggestions — concrete improvements, with short code examples where useful.

Code:
%s`, language, req.Code)

	analysis, err := s.model.Complete(ctx, prompt)
	if err != nil {
		logger.Get().Error("code analysis call failed", zap.Error(err))
		return nil, domain.NewLLMServiceError(err)
	}
	return &dto.AnalyzeCodeResponse{Analysis: analysis}, nil
}
