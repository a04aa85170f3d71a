package service

import (
	"context"
	"testing"

	"easyway/internal/domain"
	"easyway/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetResume_NoDocumentReturnsEmptyShape(t *testing.T) {
	resumeRepo := new(MockResumeRepository)
	userID := "01HUSER000000000000000001"

	resumeRepo.On("GetResumeByUserID", mock.Anything, userID).Return(nil, nil)

	svc := NewResumeService(resumeRepo)
	resp, err := svc.GetResume(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, userID, resp.UserID)
	assert.NotNil(t, resp.Skills)
	assert.Empty(t, resp.Skills)
	assert.NotNil(t, resp.Education)
	assert.Empty(t, resp.Education)
}

func TestSaveResume_Upserts(t *testing.T) {
	resumeRepo := new(MockResumeRepository)
	userID := "01HUSER000000000000000001"

	resumeRepo.On("UpsertResume", mock.Anything, mock.MatchedBy(func(r *domain.Resume) bool {
		return r.UserID == userID && len(r.Skills) == 2
	})).Return(nil)

	svc := NewResumeService(resumeRepo)
	resp, err := svc.SaveResume(context.Background(), userID, &dto.ResumeRequest{
		Personal: domain.PersonalInfo{FullName: "Asha Verma", Email: "asha@example.com"},
		Skills:   []string{"Go", "SQL"},
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL"}, resp.Skills)
	resumeRepo.AssertExpectations(t)
}

func TestResetResume_WipesEverythingButUser(t *testing.T) {
	resumeRepo := new(MockResumeRepository)
	userID := "01HUSER000000000000000001"

	resumeRepo.On("UpsertResume", mock.Anything, mock.MatchedBy(func(r *domain.Resume) bool {
		return r.UserID == userID && r.ID != "" && len(r.Skills) == 0 && len(r.Projects) == 0
	})).Return(nil)

	svc := NewResumeService(resumeRepo)
	resp, err := svc.ResetResume(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, userID, resp.UserID)
	assert.Empty(t, resp.Experience)
	resumeRepo.AssertExpectations(t)
}
