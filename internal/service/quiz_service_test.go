package service

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"easyway/internal/cache"
	"easyway/internal/config"
	"easyway/internal/domain"
	"easyway/internal/dto"
	"easyway/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize("test", "info"); err != nil {
		panic(err)
	}
	defer logger.Sync()
	m.Run()
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			SecretKey: "test-secret-key",
			TokenTTL:  time.Hour,
		},
		Quiz: config.QuizConfig{
			CertificateThreshold: 60,
		},
	}
}

// gradedQuiz returns a quiz worth 10 marks: a 6-mark mcq and a 4-mark code
// question.
func gradedQuiz() *domain.Quiz {
	quiz := &domain.Quiz{
		ID:      "01HQUIZ0000000000000000001",
		Title:   "Go Basics",
		Subject: "Programming",
		Slug:    "go-basics",
		Questions: []domain.Question{
			{
				ID:   "q-mcq",
				Type: domain.QuestionMCQ,
				Text: "Which keyword declares a variable?",
				Options: []domain.Option{
					{Text: "var", IsCorrect: true},
					{Text: "let"},
				},
				Marks: 6,
			},
			{
				ID:         "q-code",
				Type:       domain.QuestionCode,
				Text:       "Print hello",
				AnswerHint: "fmt.Println",
				Marks:      4,
			},
		},
	}
	quiz.RecomputeTotalMarks()
	return quiz
}

func testUser() *domain.User {
	return &domain.User{
		ID:    "01HUSER000000000000000001",
		Name:  "Asha Verma",
		Email: "asha@example.com",
		Role:  domain.RoleStudent,
	}
}

func newQuizServiceForTest(
	quizRepo *MockQuizRepository,
	attemptRepo *MockAttemptRepository,
	userRepo *MockUserRepository,
	txManager *MockTransactionManager,
	cacheClient *MockCache,
) QuizService {
	return NewQuizService(quizRepo, attemptRepo, userRepo, txManager, cacheClient, testConfig())
}

func TestSubmitQuiz_CertificateIssuedAtThreshold(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	attemptRepo := new(MockAttemptRepository)
	userRepo := new(MockUserRepository)
	txManager := new(MockTransactionManager)

	quiz := gradedQuiz()
	user := testUser()

	quizRepo.On("GetQuizByID", mock.Anything, quiz.ID).Return(quiz, nil)
	userRepo.On("GetUserByID", mock.Anything, user.ID).Return(user, nil)
	txManager.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	attemptRepo.On("CreateAttempt", mock.Anything, mock.Anything).Return(nil)
	attemptRepo.On("GetCertificate", mock.Anything, user.ID, quiz.ID).Return(nil, nil)
	credentialShape := regexp.MustCompile(`^[0-9a-f]{16}$`)
	attemptRepo.On("CreateCertificate", mock.Anything, mock.MatchedBy(func(cert *domain.Certificate) bool {
		return cert.UserID == user.ID && cert.QuizID == quiz.ID && cert.Score == 10 &&
			credentialShape.MatchString(cert.CertificateID)
	})).Return(nil)
	attemptRepo.On("UpsertCompletedQuiz", mock.Anything, mock.MatchedBy(func(completed *domain.CompletedQuiz) bool {
		return completed.CertificateIssued && completed.Score == 10
	})).Return(nil)

	svc := newQuizServiceForTest(quizRepo, attemptRepo, userRepo, txManager, new(MockCache))
	resp, err := svc.SubmitQuiz(context.Background(), user.ID, &dto.SubmitQuizRequest{
		Quiz: quiz.ID,
		Answers: []dto.AnswerPair{
			{QuestionID: "q-mcq", Answer: "var"},
			{QuestionID: "q-code", Answer: "func main() { fmt.Println(\"hello\") }"},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, 10, resp.Score)
	assert.Equal(t, 10, resp.TotalMarks)
	assert.Equal(t, float64(100), resp.Percent)
	assert.NotNil(t, resp.Certificate)
	assert.Equal(t, quiz.Title, resp.Certificate.QuizTitle)
	assert.Equal(t, user.Name, resp.Certificate.UserName)
	attemptRepo.AssertExpectations(t)
	txManager.AssertExpectations(t)
}

func TestSubmitQuiz_NoCertificateBelowThreshold(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	attemptRepo := new(MockAttemptRepository)
	userRepo := new(MockUserRepository)
	txManager := new(MockTransactionManager)

	quiz := gradedQuiz()
	user := testUser()

	quizRepo.On("GetQuizByID", mock.Anything, quiz.ID).Return(quiz, nil)
	userRepo.On("GetUserByID", mock.Anything, user.ID).Return(user, nil)
	txManager.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	attemptRepo.On("CreateAttempt", mock.Anything, mock.Anything).Return(nil)
	attemptRepo.On("UpsertCompletedQuiz", mock.Anything, mock.MatchedBy(func(completed *domain.CompletedQuiz) bool {
		return !completed.CertificateIssued && completed.Score == 4
	})).Return(nil)

	svc := newQuizServiceForTest(quizRepo, attemptRepo, userRepo, txManager, new(MockCache))
	// 4 of 10 marks is 40%, below the 60% threshold
	resp, err := svc.SubmitQuiz(context.Background(), user.ID, &dto.SubmitQuizRequest{
		Quiz: quiz.ID,
		Answers: []dto.AnswerPair{
			{QuestionID: "q-mcq", Answer: "let"},
			{QuestionID: "q-code", Answer: "fmt.Println(\"hello\")"},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, 4, resp.Score)
	assert.Nil(t, resp.Certificate)
	attemptRepo.AssertNotCalled(t, "CreateCertificate", mock.Anything, mock.Anything)
	attemptRepo.AssertExpectations(t)
}

func TestSubmitQuiz_ReusesExistingCertificate(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	attemptRepo := new(MockAttemptRepository)
	userRepo := new(MockUserRepository)
	txManager := new(MockTransactionManager)

	quiz := gradedQuiz()
	user := testUser()
	existing := &domain.Certificate{
		ID:            "01HCERT000000000000000001",
		CertificateID: "a1b2c3d4e5f60718",
		UserID:        user.ID,
		QuizID:        quiz.ID,
		UserName:      user.Name,
		QuizTitle:     quiz.Title,
		Score:         10,
		IssuedAt:      time.Now().Add(-24 * time.Hour),
	}

	quizRepo.On("GetQuizByID", mock.Anything, quiz.ID).Return(quiz, nil)
	userRepo.On("GetUserByID", mock.Anything, user.ID).Return(user, nil)
	txManager.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
	attemptRepo.On("CreateAttempt", mock.Anything, mock.Anything).Return(nil)
	attemptRepo.On("GetCertificate", mock.Anything, user.ID, quiz.ID).Return(existing, nil)
	attemptRepo.On("UpsertCompletedQuiz", mock.Anything, mock.Anything).Return(nil)

	svc := newQuizServiceForTest(quizRepo, attemptRepo, userRepo, txManager, new(MockCache))
	resp, err := svc.SubmitQuiz(context.Background(), user.ID, &dto.SubmitQuizRequest{
		Quiz: quiz.ID,
		Answers: []dto.AnswerPair{
			{QuestionID: "q-mcq", Answer: "var"},
			{QuestionID: "q-code", Answer: "fmt.Println"},
		},
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp.Certificate)
	assert.Equal(t, existing.CertificateID, resp.Certificate.CertificateID)
	attemptRepo.AssertNotCalled(t, "CreateCertificate", mock.Anything, mock.Anything)
}

func TestSubmitQuiz_QuizNotFound(t *testing.T) {
	quizRepo := new(MockQuizRepository)

	quizRepo.On("GetQuizByID", mock.Anything, "missing").Return(nil, nil)
	quizRepo.On("GetQuizBySlug", mock.Anything, "missing").Return(nil, nil)

	svc := newQuizServiceForTest(quizRepo, new(MockAttemptRepository), new(MockUserRepository), new(MockTransactionManager), new(MockCache))
	_, err := svc.SubmitQuiz(context.Background(), "01HUSER000000000000000001", &dto.SubmitQuizRequest{
		Quiz:    "missing",
		Answers: []dto.AnswerPair{{QuestionID: "q-mcq", Answer: "var"}},
	})

	assert.Error(t, err)
	var dErr *domain.DomainError
	assert.True(t, errors.As(err, &dErr))
	assert.Equal(t, domain.CodeQuizNotFound, dErr.Code)
}

func TestResolveQuiz_CacheMissThenSet(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	cacheClient := new(MockCache)

	quiz := gradedQuiz()
	cacheKey := cache.GenerateCacheKey("quiz", "quiz", quiz.Slug)

	cacheClient.On("Get", mock.Anything, cacheKey).Return("", domain.ErrCacheMiss)
	quizRepo.On("GetQuizByID", mock.Anything, quiz.Slug).Return(nil, nil)
	quizRepo.On("GetQuizBySlug", mock.Anything, quiz.Slug).Return(quiz, nil)
	cacheClient.On("Set", mock.Anything, cacheKey, mock.Anything, quizCacheTTL).Return(nil)

	svc := newQuizServiceForTest(quizRepo, new(MockAttemptRepository), new(MockUserRepository), new(MockTransactionManager), cacheClient)
	resp, err := svc.ResolveQuiz(context.Background(), quiz.Slug)

	assert.NoError(t, err)
	assert.Equal(t, quiz.ID, resp.ID)
	assert.Len(t, resp.Questions, 2)
	cacheClient.AssertExpectations(t)
	quizRepo.AssertExpectations(t)
}

func TestResolveQuiz_CacheHitSkipsRepository(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	cacheClient := new(MockCache)

	cached := dto.QuizResponse{ID: "01HQUIZ0000000000000000001", Title: "Go Basics", Slug: "go-basics", TotalMarks: 10}
	data, err := json.Marshal(cached)
	assert.NoError(t, err)

	cacheKey := cache.GenerateCacheKey("quiz", "quiz", cached.Slug)
	cacheClient.On("Get", mock.Anything, cacheKey).Return(string(data), nil)

	svc := newQuizServiceForTest(quizRepo, new(MockAttemptRepository), new(MockUserRepository), new(MockTransactionManager), cacheClient)
	resp, err := svc.ResolveQuiz(context.Background(), cached.Slug)

	assert.NoError(t, err)
	assert.Equal(t, cached.ID, resp.ID)
	quizRepo.AssertNotCalled(t, "GetQuizByID", mock.Anything, mock.Anything)
	quizRepo.AssertNotCalled(t, "GetQuizBySlug", mock.Anything, mock.Anything)
}

func TestResolveQuiz_ResponseHidesAnswers(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	cacheClient := new(MockCache)

	quiz := gradedQuiz()
	cacheClient.On("Get", mock.Anything, mock.Anything).Return("", domain.ErrCacheMiss)
	cacheClient.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	quizRepo.On("GetQuizByID", mock.Anything, quiz.ID).Return(quiz, nil)

	svc := newQuizServiceForTest(quizRepo, new(MockAttemptRepository), new(MockUserRepository), new(MockTransactionManager), cacheClient)
	resp, err := svc.ResolveQuiz(context.Background(), quiz.ID)

	assert.NoError(t, err)
	data, err := json.Marshal(resp)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "is_correct")
	assert.NotContains(t, string(data), "fmt.Println")
}

func TestGetUserScore_NoAttempt(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	attemptRepo := new(MockAttemptRepository)

	quiz := gradedQuiz()
	quizRepo.On("GetQuizByID", mock.Anything, quiz.ID).Return(quiz, nil)
	attemptRepo.On("GetLatestAttempt", mock.Anything, "01HUSER000000000000000001", quiz.ID).Return(nil, nil)

	svc := newQuizServiceForTest(quizRepo, attemptRepo, new(MockUserRepository), new(MockTransactionManager), new(MockCache))
	_, err := svc.GetUserScore(context.Background(), "01HUSER000000000000000001", quiz.ID)

	assert.Error(t, err)
	var dErr *domain.DomainError
	assert.True(t, errors.As(err, &dErr))
	assert.Equal(t, domain.CodeNotFound, dErr.Code)
}

func TestGetUserScore_Success(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	attemptRepo := new(MockAttemptRepository)

	quiz := gradedQuiz()
	user := testUser()
	attempt := &domain.Attempt{
		ID:     "01HATTEMPT000000000000001",
		QuizID: quiz.ID,
		UserID: user.ID,
		Score:  8,
	}

	quizRepo.On("GetQuizByID", mock.Anything, quiz.ID).Return(quiz, nil)
	attemptRepo.On("GetLatestAttempt", mock.Anything, user.ID, quiz.ID).Return(attempt, nil)
	attemptRepo.On("GetCertificate", mock.Anything, user.ID, quiz.ID).Return(&domain.Certificate{CertificateID: "a1b2c3d4e5f60718"}, nil)

	svc := newQuizServiceForTest(quizRepo, attemptRepo, new(MockUserRepository), new(MockTransactionManager), new(MockCache))
	resp, err := svc.GetUserScore(context.Background(), user.ID, quiz.ID)

	assert.NoError(t, err)
	assert.Equal(t, 8, resp.Score)
	assert.Equal(t, 10, resp.TotalMarks)
	assert.True(t, resp.CertificateIssued)
}

func TestDeleteQuiz_InvalidatesCache(t *testing.T) {
	quizRepo := new(MockQuizRepository)
	cacheClient := new(MockCache)

	quiz := gradedQuiz()
	quizRepo.On("GetQuizByID", mock.Anything, quiz.ID).Return(quiz, nil)
	quizRepo.On("DeleteQuiz", mock.Anything, quiz.ID).Return(nil)
	cacheClient.On("Delete", mock.Anything, cache.GenerateCacheKey("quiz", "quiz", quiz.ID)).Return(nil)
	cacheClient.On("Delete", mock.Anything, cache.GenerateCacheKey("quiz", "quiz", quiz.Slug)).Return(nil)

	svc := newQuizServiceForTest(quizRepo, new(MockAttemptRepository), new(MockUserRepository), new(MockTransactionManager), cacheClient)
	err := svc.DeleteQuiz(context.Background(), quiz.ID)

	assert.NoError(t, err)
	cacheClient.AssertExpectations(t)
}

func TestCreateQuiz_SlugConflict(t *testing.T) {
	quizRepo := new(MockQuizRepository)

	quizRepo.On("GetQuizBySlug", mock.Anything, "go-basics").Return(gradedQuiz(), nil)

	svc := newQuizServiceForTest(quizRepo, new(MockAttemptRepository), new(MockUserRepository), new(MockTransactionManager), new(MockCache))
	_, err := svc.CreateQuiz(context.Background(), &dto.CreateQuizRequest{
		Title:   "Go Basics",
		Subject: "Programming",
		Questions: []dto.QuestionRequest{
			{
				Type:    "mcq",
				Text:    "Which keyword declares a variable?",
				Options: []dto.OptionRequest{{Text: "var", IsCorrect: true}, {Text: "let"}},
				Marks:   5,
			},
		},
	})

	assert.Error(t, err)
	var dErr *domain.DomainError
	assert.True(t, errors.As(err, &dErr))
	assert.Equal(t, domain.CodeConflict, dErr.Code)
}
