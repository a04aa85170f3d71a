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

func TestUpdateUserRole_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	user := testUser()

	userRepo.On("GetUserByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("UpdateRole", mock.Anything, user.ID, domain.RoleAdmin).Return(nil)

	svc := NewAdminService(userRepo, new(MockQuizRepository), new(MockAttemptRepository), new(MockResourceRepository))
	resp, err := svc.UpdateUserRole(context.Background(), user.ID, &dto.UpdateRoleRequest{Role: "admin"})

	assert.NoError(t, err)
	assert.Equal(t, "admin", resp.Role)
	userRepo.AssertExpectations(t)
}

func TestUpdateUserRole_UnknownRole(t *testing.T) {
	userRepo := new(MockUserRepository)

	svc := NewAdminService(userRepo, new(MockQuizRepository), new(MockAttemptRepository), new(MockResourceRepository))
	_, err := svc.UpdateUserRole(context.Background(), "01HUSER000000000000000001", &dto.UpdateRoleRequest{Role: "superuser"})

	assert.Error(t, err)
	var dErr *domain.DomainError
	assert.True(t, errors.As(err, &dErr))
	assert.Equal(t, domain.CodeInvalidInput, dErr.Code)
	userRepo.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateUserRole_UserNotFound(t *testing.T) {
	userRepo := new(MockUserRepository)

	userRepo.On("GetUserByID", mock.Anything, "missing").Return(nil, nil)

	svc := NewAdminService(userRepo, new(MockQuizRepository), new(MockAttemptRepository), new(MockResourceRepository))
	_, err := svc.UpdateUserRole(context.Background(), "missing", &dto.UpdateRoleRequest{Role: "admin"})

	assert.Error(t, err)
	var dErr *domain.DomainError
	assert.True(t, errors.As(err, &dErr))
	assert.Equal(t, domain.CodeNotFound, dErr.Code)
}

func TestGetStats_GathersAllCounts(t *testing.T) {
	userRepo := new(MockUserRepository)
	quizRepo := new(MockQuizRepository)
	attemptRepo := new(MockAttemptRepository)
	resourceRepo := new(MockResourceRepository)

	userRepo.On("CountUsers", mock.Anything).Return(int64(120), nil)
	quizRepo.On("CountQuizzes", mock.Anything).Return(int64(14), nil)
	attemptRepo.On("CountAttempts", mock.Anything).Return(int64(530), nil)
	attemptRepo.On("CountCertificates", mock.Anything).Return(int64(87), nil)
	resourceRepo.On("CountResources", mock.Anything).Return(int64(42), nil)

	svc := NewAdminService(userRepo, quizRepo, attemptRepo, resourceRepo)
	stats, err := svc.GetStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(120), stats.Users)
	assert.Equal(t, int64(14), stats.Quizzes)
	assert.Equal(t, int64(530), stats.Attempts)
	assert.Equal(t, int64(87), stats.Certificates)
	assert.Equal(t, int64(42), stats.Resources)
}

func TestGetStats_FailsOnAnyCountError(t *testing.T) {
	userRepo := new(MockUserRepository)
	quizRepo := new(MockQuizRepository)
	attemptRepo := new(MockAttemptRepository)
	resourceRepo := new(MockResourceRepository)

	userRepo.On("CountUsers", mock.Anything).Return(int64(0), errors.New("db down"))
	quizRepo.On("CountQuizzes", mock.Anything).Return(int64(14), nil)
	attemptRepo.On("CountAttempts", mock.Anything).Return(int64(530), nil)
	attemptRepo.On("CountCertificates", mock.Anything).Return(int64(87), nil)
	resourceRepo.On("CountResources", mock.Anything).Return(int64(42), nil)

	svc := NewAdminService(userRepo, quizRepo, attemptRepo, resourceRepo)
	_, err := svc.GetStats(context.Background())

	assert.Error(t, err)
	var dErr *domain.DomainError
	assert.True(t, errors.As(err, &dErr))
	assert.Equal(t, domain.CodeInternal, dErr.Code)
}
