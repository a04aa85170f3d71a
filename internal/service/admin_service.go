package service

import (
	"context"

	"easyway/internal/domain"
	"easyway/internal/dto"
	"easyway/internal/logger"
	"easyway/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AdminService covers user administration and portal-wide statistics.
type AdminService interface {
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
	UpdateUserRole(ctx context.Context, userID string, req *dto.UpdateRoleRequest) (*dto.UserResponse, error)
	GetStats(ctx context.Context) (*dto.AdminStatsResponse, error)
}

type adminServiceImpl struct {
	userRepo     repository.UserRepository
	quizRepo     repository.QuizRepository
	attemptRepo  repository.AttemptRepository
	resourceRepo repository.ResourceRepository
}

// NewAdminService creates a new instance of the admin service.
func NewAdminService(
	userRepo repository.UserRepository,
	quizRepo repository.QuizRepository,
	attemptRepo repository.AttemptRepository,
	resourceRepo repository.ResourceRepository,
) AdminService {
	return &adminServiceImpl{
		userRepo:     userRepo,
		quizRepo:     quizRepo,
		attemptRepo:  attemptRepo,
		resourceRepo: resourceRepo,
	}
}

// ListUsers returns every active account.
func (s *adminServiceImpl) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list users", err)
	}
	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, *toUserResponse(user))
	}
	return responses, nil
}

// UpdateUserRole changes an account's role.
func (s *adminServiceImpl) UpdateUserRole(ctx context.Context, userID string, req *dto.UpdateRoleRequest) (*dto.UserResponse, error) {
	if !domain.ValidRole(req.Role) {
		return nil, domain.NewInvalidInputError("unknown role: " + req.Role)
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user not found")
	}

	if err := s.userRepo.UpdateRole(ctx, userID, domain.Role(req.Role)); err != nil {
		return nil, domain.NewInternalError("failed to update role", err)
	}
	user.Role = domain.Role(req.Role)

	logger.Get().Info("User role updated",
		zap.String("userID", userID),
		zap.String("role", req.Role))
	return toUserResponse(user), nil
}

// GetStats gathers portal-wide counts. The five count queries run
// concurrently; any failure fails the whole call.
func (s *adminServiceImpl) GetStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	stats := &dto.AdminStatsResponse{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Users, err = s.userRepo.CountUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Quizzes, err = s.quizRepo.CountQuizzes(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Attempts, err = s.attemptRepo.CountAttempts(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Certificates, err = s.attemptRepo.CountCertificates(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Resources, err = s.resourceRepo.CountResources(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("failed to gather stats", err)
	}
	return stats, nil
}
