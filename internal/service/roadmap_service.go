package service

import (
	"context"

	"easyway/internal/domain"
	"easyway/internal/dto"
	"easyway/internal/repository"
	"easyway/internal/util"
)

// RoadmapService manages curricula and per-user completion state.
type RoadmapService interface {
	CreateRoadmap(ctx context.Context, req *dto.CreateRoadmapRequest) (*dto.RoadmapResponse, error)
	ListRoadmaps(ctx context.Context) ([]dto.RoadmapSummary, error)
	GetRoadmap(ctx context.Context, userID, roadmapID string) (*dto.RoadmapResponse, error)
	ToggleStep(ctx context.Context, userID, roadmapID string, req *dto.ToggleStepRequest) (*dto.ToggleStepResponse, error)
}

type roadmapServiceImpl struct {
	roadmapRepo repository.RoadmapRepository
}

// NewRoadmapService creates a new instance of the roadmap service.
func NewRoadmapService(roadmapRepo repository.RoadmapRepository) RoadmapService {
	return &roadmapServiceImpl{roadmapRepo: roadmapRepo}
}

// CreateRoadmap validates and stores a new curriculum.
func (s *roadmapServiceImpl) CreateRoadmap(ctx context.Context, req *dto.CreateRoadmapRequest) (*dto.RoadmapResponse, error) {
	roadmap := &domain.Roadmap{
		ID:          util.NewULID(),
		Title:       req.Title,
		Description: req.Description,
		Months:      req.Months,
	}
	if err := roadmap.Validate(); err != nil {
		return nil, err
	}
	if err := s.roadmapRepo.CreateRoadmap(ctx, roadmap); err != nil {
		return nil, domain.NewInternalError("failed to create roadmap", err)
	}
	return &dto.RoadmapResponse{
		ID:          roadmap.ID,
		Title:       roadmap.Title,
		Description: roadmap.Description,
		Months:      roadmap.Months,
		Progress:    map[string]bool{},
	}, nil
}

// ListRoadmaps returns summaries of all curricula.
func (s *roadmapServiceImpl) ListRoadmaps(ctx context.Context) ([]dto.RoadmapSummary, error) {
	roadmaps, err := s.roadmapRepo.ListRoadmaps(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list roadmaps", err)
	}
	summaries := make([]dto.RoadmapSummary, 0, len(roadmaps))
	for _, r := range roadmaps {
		summaries = append(summaries, dto.RoadmapSummary{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			MonthCount:  len(r.Months),
		})
	}
	return summaries, nil
}

// GetRoadmap returns the curriculum merged with the caller's progress map.
// Users who toggled nothing yet get an empty map.
func (s *roadmapServiceImpl) GetRoadmap(ctx context.Context, userID, roadmapID string) (*dto.RoadmapResponse, error) {
	roadmap, err := s.roadmapRepo.GetRoadmapByID(ctx, roadmapID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get roadmap", err)
	}
	if roadmap == nil {
		return nil, domain.NewNotFoundError("roadmap not found")
	}

	completed := map[string]bool{}
	progress, err := s.roadmapRepo.GetProgress(ctx, userID, roadmapID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get progress", err)
	}
	if progress != nil && progress.Completed != nil {
		completed = progress.Completed
	}

	return &dto.RoadmapResponse{
		ID:          roadmap.ID,
		Title:       roadmap.Title,
		Description: roadmap.Description,
		Months:      roadmap.Months,
		Progress:    completed,
	}, nil
}

// ToggleStep flips one step's completion for the caller. Indices are checked
// against the roadmap's actual shape, so an out-of-range toggle is rejected
// instead of creating an orphan key.
func (s *roadmapServiceImpl) ToggleStep(ctx context.Context, userID, roadmapID string, req *dto.ToggleStepRequest) (*dto.ToggleStepResponse, error) {
	roadmap, err := s.roadmapRepo.GetRoadmapByID(ctx, roadmapID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get roadmap", err)
	}
	if roadmap == nil {
		return nil, domain.NewNotFoundError("roadmap not found")
	}
	if err := roadmap.CheckStepIndex(req.MonthIndex, req.StepIndex); err != nil {
		return nil, err
	}

	progress, err := s.roadmapRepo.GetProgress(ctx, userID, roadmapID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get progress", err)
	}
	if progress == nil {
		progress = &domain.RoadmapProgress{
			ID:        util.NewULID(),
			UserID:    userID,
			RoadmapID: roadmapID,
			Completed: map[string]bool{},
		}
	}
	if progress.Completed == nil {
		progress.Completed = map[string]bool{}
	}

	key := domain.ProgressKey(req.MonthIndex, req.StepIndex)
	if progress.Completed[key] {
		delete(progress.Completed, key)
	} else {
		progress.Completed[key] = true
	}

	if err := s.roadmapRepo.UpsertProgress(ctx, progress); err != nil {
		return nil, domain.NewInternalError("failed to save progress", err)
	}
	return &dto.ToggleStepResponse{Progress: progress.Completed}, nil
}
