package service

import (
	"context"

	"easyway/internal/domain"
	"easyway/internal/dto"
	"easyway/internal/repository"
	"easyway/internal/util"
)

// ResumeService manages the one-per-user resume document.
type ResumeService interface {
	GetResume(ctx context.Context, userID string) (*dto.ResumeResponse, error)
	SaveResume(ctx context.Context, userID string, req *dto.ResumeRequest) (*dto.ResumeResponse, error)
	ResetResume(ctx context.Context, userID string) (*dto.ResumeResponse, error)
}

type resumeServiceImpl struct {
	resumeRepo repository.ResumeRepository
}

// NewResumeService creates a new instance of the resume service.
func NewResumeService(resumeRepo repository.ResumeRepository) ResumeService {
	return &resumeServiceImpl{resumeRepo: resumeRepo}
}

func toResumeResponse(resume *domain.Resume) *dto.ResumeResponse {
	return &dto.ResumeResponse{
		ID:             resume.ID,
		UserID:         resume.UserID,
		Personal:       resume.Personal,
		Education:      resume.Education,
		Experience:     resume.Experience,
		Skills:         resume.Skills,
		Projects:       resume.Projects,
		Certifications: resume.Certifications,
	}
}

// GetResume returns the caller's resume. A user who has never saved one gets
// the empty shape rather than a 404, so the editor always has a document to
// load.
func (s *resumeServiceImpl) GetResume(ctx context.Context, userID string) (*dto.ResumeResponse, error) {
	resume, err := s.resumeRepo.GetResumeByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get resume", err)
	}
	if resume == nil {
		return toResumeResponse(domain.EmptyResume(userID)), nil
	}
	return toResumeResponse(resume), nil
}

// SaveResume replaces the caller's resume with the submitted document.
func (s *resumeServiceImpl) SaveResume(ctx context.Context, userID string, req *dto.ResumeRequest) (*dto.ResumeResponse, error) {
	resume := &domain.Resume{
		ID:             util.NewULID(),
		UserID:         userID,
		Personal:       req.Personal,
		Education:      req.Education,
		Experience:     req.Experience,
		Skills:         req.Skills,
		Projects:       req.Projects,
		Certifications: req.Certifications,
	}
	if err := s.resumeRepo.UpsertResume(ctx, resume); err != nil {
		return nil, domain.NewInternalError("failed to save resume", err)
	}
	return toResumeResponse(resume), nil
}

// ResetResume wipes the caller's resume back to the fixed empty shape. The
// user linkage survives; everything else is cleared.
func (s *resumeServiceImpl) ResetResume(ctx context.Context, userID string) (*dto.ResumeResponse, error) {
	resume := domain.EmptyResume(userID)
	resume.ID = util.NewULID()
	if err := s.resumeRepo.UpsertResume(ctx, resume); err != nil {
		return nil, domain.NewInternalError("failed to reset resume", err)
	}
	return toResumeResponse(resume), nil
}
