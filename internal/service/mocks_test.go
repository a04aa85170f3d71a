package service

import (
	"context"
	"time"

	"easyway/internal/domain"
	"easyway/internal/repository"

	"github.com/stretchr/testify/mock"
)

// --- MockUserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, userID string, role domain.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockUserRepository) SetResetToken(ctx context.Context, userID, token string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, token, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByResetToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ClearResetToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- MockQuizRepository ---

type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockQuizRepository) GetQuizByID(ctx context.Context, quizID string) (*domain.Quiz, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) GetQuizBySlug(ctx context.Context, slug string) (*domain.Quiz, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) ListQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) DeleteQuiz(ctx context.Context, quizID string) error {
	args := m.Called(ctx, quizID)
	return args.Error(0)
}

func (m *MockQuizRepository) CountQuizzes(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- MockAttemptRepository ---

type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.Attempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) GetLatestAttempt(ctx context.Context, userID, quizID string) (*domain.Attempt, error) {
	args := m.Called(ctx, userID, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attempt), args.Error(1)
}

func (m *MockAttemptRepository) CountAttempts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAttemptRepository) CreateCertificate(ctx context.Context, cert *domain.Certificate) error {
	args := m.Called(ctx, cert)
	return args.Error(0)
}

func (m *MockAttemptRepository) GetCertificateByCredential(ctx context.Context, certificateID string) (*domain.Certificate, error) {
	args := m.Called(ctx, certificateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certificate), args.Error(1)
}

func (m *MockAttemptRepository) GetCertificate(ctx context.Context, userID, quizID string) (*domain.Certificate, error) {
	args := m.Called(ctx, userID, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certificate), args.Error(1)
}

func (m *MockAttemptRepository) CountCertificates(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAttemptRepository) UpsertCompletedQuiz(ctx context.Context, completed *domain.CompletedQuiz) error {
	args := m.Called(ctx, completed)
	return args.Error(0)
}

func (m *MockAttemptRepository) ListCompletedQuizzes(ctx context.Context, userID string) ([]*domain.CompletedQuiz, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CompletedQuiz), args.Error(1)
}

// --- MockResumeRepository ---

type MockResumeRepository struct {
	mock.Mock
}

func (m *MockResumeRepository) GetResumeByUserID(ctx context.Context, userID string) (*domain.Resume, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeRepository) UpsertResume(ctx context.Context, resume *domain.Resume) error {
	args := m.Called(ctx, resume)
	return args.Error(0)
}

// --- MockRoadmapRepository ---

type MockRoadmapRepository struct {
	mock.Mock
}

func (m *MockRoadmapRepository) CreateRoadmap(ctx context.Context, roadmap *domain.Roadmap) error {
	args := m.Called(ctx, roadmap)
	return args.Error(0)
}

func (m *MockRoadmapRepository) GetRoadmapByID(ctx context.Context, roadmapID string) (*domain.Roadmap, error) {
	args := m.Called(ctx, roadmapID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Roadmap), args.Error(1)
}

func (m *MockRoadmapRepository) ListRoadmaps(ctx context.Context) ([]*domain.Roadmap, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Roadmap), args.Error(1)
}

func (m *MockRoadmapRepository) GetProgress(ctx context.Context, userID, roadmapID string) (*domain.RoadmapProgress, error) {
	args := m.Called(ctx, userID, roadmapID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoadmapProgress), args.Error(1)
}

func (m *MockRoadmapRepository) UpsertProgress(ctx context.Context, progress *domain.RoadmapProgress) error {
	args := m.Called(ctx, progress)
	return args.Error(0)
}

// --- MockChatRepository ---

type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) AppendMessage(ctx context.Context, message *domain.ChatMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockChatRepository) ListMessages(ctx context.Context, userID string) ([]*domain.ChatMessage, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ChatMessage), args.Error(1)
}

func (m *MockChatRepository) LastMessages(ctx context.Context, userID string, n int) ([]*domain.ChatMessage, error) {
	args := m.Called(ctx, userID, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ChatMessage), args.Error(1)
}

func (m *MockChatRepository) ClearMessages(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- MockResourceRepository ---

type MockResourceRepository struct {
	mock.Mock
}

func (m *MockResourceRepository) CreateResource(ctx context.Context, resource *domain.Resource) error {
	args := m.Called(ctx, resource)
	return args.Error(0)
}

func (m *MockResourceRepository) GetResourceByID(ctx context.Context, resourceID string) (*domain.Resource, error) {
	args := m.Called(ctx, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}

func (m *MockResourceRepository) ListResources(ctx context.Context, filter repository.ResourceFilter) ([]*domain.Resource, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Resource), args.Error(1)
}

func (m *MockResourceRepository) DeleteResource(ctx context.Context, resourceID string) error {
	args := m.Called(ctx, resourceID)
	return args.Error(0)
}

func (m *MockResourceRepository) CountResources(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- MockTaskRepository ---

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) CreateTask(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) GetTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepository) ListTasksByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdateTask(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

// --- MockContactRepository ---

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) CreateContactMessage(ctx context.Context, message *domain.ContactMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockContactRepository) ListContactMessages(ctx context.Context) ([]*domain.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ContactMessage), args.Error(1)
}

// --- MockDocRepository ---

type MockDocRepository struct {
	mock.Mock
}

func (m *MockDocRepository) CreateDoc(ctx context.Context, doc *domain.Doc) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocRepository) GetDocByID(ctx context.Context, docID string) (*domain.Doc, error) {
	args := m.Called(ctx, docID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Doc), args.Error(1)
}

func (m *MockDocRepository) ListDocs(ctx context.Context) ([]*domain.Doc, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Doc), args.Error(1)
}

func (m *MockDocRepository) UpdateDocHeader(ctx context.Context, doc *domain.Doc) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocRepository) DeleteDoc(ctx context.Context, docID string) error {
	args := m.Called(ctx, docID)
	return args.Error(0)
}

func (m *MockDocRepository) AddQuestion(ctx context.Context, docID string, question *domain.DocQuestion) error {
	args := m.Called(ctx, docID, question)
	return args.Error(0)
}

func (m *MockDocRepository) GetQuestion(ctx context.Context, docID, questionID string) (*domain.DocQuestion, error) {
	args := m.Called(ctx, docID, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocQuestion), args.Error(1)
}

func (m *MockDocRepository) UpdateQuestion(ctx context.Context, docID string, question *domain.DocQuestion) error {
	args := m.Called(ctx, docID, question)
	return args.Error(0)
}

func (m *MockDocRepository) DeleteQuestion(ctx context.Context, docID, questionID string) error {
	args := m.Called(ctx, docID, questionID)
	return args.Error(0)
}

// --- MockTransactionManager ---

// MockTransactionManager runs the callback directly; transactional behavior
// itself is covered by the repository tests.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

// --- MockCache ---

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockChatModel ---

type MockChatModel struct {
	mock.Mock
}

func (m *MockChatModel) Reply(ctx context.Context, history []domain.ChatTurn, message string) (string, error) {
	args := m.Called(ctx, history, message)
	return args.String(0), args.Error(1)
}

func (m *MockChatModel) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// --- MockObjectStorage ---

type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Put(ctx context.Context, objectKey, localPath, contentType string) (string, error) {
	args := m.Called(ctx, objectKey, localPath, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) Delete(ctx context.Context, objectKey string) error {
	args := m.Called(ctx, objectKey)
	return args.Error(0)
}
