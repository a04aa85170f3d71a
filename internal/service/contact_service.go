package service

import (
	"context"

	"easyway/internal/domain"
	"easyway/internal/dto"
	"easyway/internal/logger"
	"easyway/internal/repository"
	"easyway/internal/util"

	"go.uber.org/zap"
)

// ContactService stores and lists contact-form submissions.
type ContactService interface {
	SubmitMessage(ctx context.Context, req *dto.ContactRequest) error
	ListMessages(ctx context.Context) ([]dto.ContactMessageView, error)
}

type contactServiceImpl struct {
	contactRepo repository.ContactRepository
}

// NewContactService creates a new instance of the contact service.
func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactServiceImpl{contactRepo: contactRepo}
}

// SubmitMessage stores one public contact-form submission.
func (s *contactServiceImpl) SubmitMessage(ctx context.Context, req *dto.ContactRequest) error {
	message := &domain.ContactMessage{
		ID:      util.NewULID(),
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := message.Validate(); err != nil {
		return err
	}
	if err := s.contactRepo.CreateContactMessage(ctx, message); err != nil {
		return domain.NewInternalError("failed to store contact message", err)
	}
	logger.Get().Info("Contact message received", zap.String("id", message.ID))
	return nil
}

// ListMessages returns all submissions for the admin view.
func (s *contactServiceImpl) ListMessages(ctx context.Context) ([]dto.ContactMessageView, error) {
	messages, err := s.contactRepo.ListContactMessages(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list contact messages", err)
	}
	views := make([]dto.ContactMessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, dto.ContactMessageView{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		})
	}
	return views, nil
}
