package service

import (
	"context"
	"encoding/json"
	"time"

	"easyway/internal/cache"
	"easyway/internal/config"
	"easyway/internal/domain"
	"easyway/internal/dto"
	"easyway/internal/logger"
	"easyway/internal/repository"
	"easyway/internal/util"

	"go.uber.org/zap"
)

const quizCacheTTL = 10 * time.Minute

// QuizService defines the interface for quiz operations.
type QuizService interface {
	CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error)
	ListQuizzes(ctx context.Context) ([]dto.QuizSummary, error)
	ResolveQuiz(ctx context.Context, idOrSlug string) (*dto.QuizResponse, error)
	SubmitQuiz(ctx context.Context, userID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error)
	GetUserScore(ctx context.Context, userID, idOrSlug string) (*dto.UserScoreResponse, error)
	GetCertificate(ctx context.Context, certificateID string) (*dto.CertificateResponse, error)
	DeleteQuiz(ctx context.Context, quizID string) error
}

type quizServiceImpl struct {
	quizRepo    repository.QuizRepository
	attemptRepo repository.AttemptRepository
	userRepo    repository.UserRepository
	txManager   domain.TransactionManager
	cache       domain.Cache
	appConfig   *config.Config
}

// NewQuizService creates a new instance of the quiz service.
func NewQuizService(
	quizRepo repository.QuizRepository,
	attemptRepo repository.AttemptRepository,
	userRepo repository.UserRepository,
	txManager domain.TransactionManager,
	cacheClient domain.Cache,
	appConfig *config.Config,
) QuizService {
	return &quizServiceImpl{
		quizRepo:    quizRepo,
		attemptRepo: attemptRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		cache:       cacheClient,
		appConfig:   appConfig,
	}
}

func toQuizResponse(quiz *domain.Quiz) *dto.QuizResponse {
	questions := make([]dto.QuestionView, 0, len(quiz.Questions))
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		view := dto.QuestionView{
			ID:    q.ID,
			Type:  string(q.Type),
			Text:  q.Text,
			Marks: q.Marks,
		}
		// correct flags and hints never leave the server
		for _, opt := range q.Options {
			view.Options = append(view.Options, dto.OptionView{Text: opt.Text})
		}
		questions = append(questions, view)
	}
	return &dto.QuizResponse{
		ID:         quiz.ID,
		Title:      quiz.Title,
		Subject:    quiz.Subject,
		Slug:       quiz.Slug,
		TotalMarks: quiz.TotalMarks,
		Questions:  questions,
	}
}

// CreateQuiz validates and stores a new quiz. The slug defaults to a
// slugified title, and total marks are derived from the questions.
func (s *quizServiceImpl) CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizResponse, error) {
	quiz := &domain.Quiz{
		ID:      util.NewULID(),
		Title:   req.Title,
		Subject: req.Subject,
		Slug:    req.Slug,
	}
	if quiz.Slug == "" {
		quiz.Slug = slugify(req.Title)
	}

	for _, qr := range req.Questions {
		question := domain.Question{
			ID:         util.NewULID(),
			Type:       domain.QuestionType(qr.Type),
			Text:       qr.Text,
			AnswerHint: qr.AnswerHint,
			Marks:      qr.Marks,
		}
		for _, opt := range qr.Options {
			question.Options = append(question.Options, domain.Option{Text: opt.Text, IsCorrect: opt.IsCorrect})
		}
		quiz.Questions = append(quiz.Questions, question)
	}
	quiz.RecomputeTotalMarks()
	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.quizRepo.GetQuizBySlug(ctx, quiz.Slug); err != nil {
		return nil, domain.NewInternalError("failed to check slug", err)
	} else if existing != nil {
		return nil, domain.NewConflictError("a quiz with this slug already exists")
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.quizRepo.CreateQuiz(txCtx, quiz)
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to create quiz", err)
	}

	logger.Get().Info("Quiz created",
		zap.String("quizID", quiz.ID),
		zap.String("slug", quiz.Slug),
		zap.Int("questions", len(quiz.Questions)))
	return toQuizResponse(quiz), nil
}

// ListQuizzes returns summaries of all quizzes.
func (s *quizServiceImpl) ListQuizzes(ctx context.Context) ([]dto.QuizSummary, error) {
	quizzes, err := s.quizRepo.ListQuizzes(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list quizzes", err)
	}
	summaries := make([]dto.QuizSummary, 0, len(quizzes))
	for _, quiz := range quizzes {
		summaries = append(summaries, dto.QuizSummary{
			ID:         quiz.ID,
			Title:      quiz.Title,
			Subject:    quiz.Subject,
			Slug:       quiz.Slug,
			TotalMarks: quiz.TotalMarks,
		})
	}
	return summaries, nil
}

// ResolveQuiz returns a quiz by ID or slug through one lookup path. The
// sanitized response is cached; grading always reloads from the database.
func (s *quizServiceImpl) ResolveQuiz(ctx context.Context, idOrSlug string) (*dto.QuizResponse, error) {
	cacheKey := cache.GenerateCacheKey("quiz", "quiz", idOrSlug)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		var resp dto.QuizResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
		logger.Get().Warn("Failed to unmarshal cached quiz", zap.String("key", cacheKey))
	} else if err != domain.ErrCacheMiss {
		logger.Get().Warn("Quiz cache lookup failed", zap.Error(err))
	}

	quiz, err := s.resolveDomainQuiz(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	resp := toQuizResponse(quiz)
	if data, err := json.Marshal(resp); err == nil {
		if err := s.cache.Set(ctx, cacheKey, string(data), quizCacheTTL); err != nil {
			logger.Get().Warn("Failed to cache quiz", zap.Error(err), zap.String("key", cacheKey))
		}
	}
	return resp, nil
}

// resolveDomainQuiz loads the full quiz, treating the parameter as an ID
// first and a slug second.
func (s *quizServiceImpl) resolveDomainQuiz(ctx context.Context, idOrSlug string) (*domain.Quiz, error) {
	quiz, err := s.quizRepo.GetQuizByID(ctx, idOrSlug)
	if err != nil {
		return nil, domain.NewInternalError("failed to get quiz", err)
	}
	if quiz == nil {
		quiz, err = s.quizRepo.GetQuizBySlug(ctx, idOrSlug)
		if err != nil {
			return nil, domain.NewInternalError("failed to get quiz", err)
		}
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(idOrSlug)
	}
	return quiz, nil
}

// SubmitQuiz grades a submission and records its outcome. The attempt, any
// certificate, and the completion row are written in one transaction, so a
// failure leaves no partial record.
func (s *quizServiceImpl) SubmitQuiz(ctx context.Context, userID string, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	quiz, err := s.resolveDomainQuiz(ctx, req.Quiz)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get user", err)
	}
	if user == nil {
		return nil, domain.NewUnauthorizedError("user not found")
	}

	answers := make([]domain.SubmittedAnswer, 0, len(req.Answers))
	for _, pair := range req.Answers {
		answers = append(answers, domain.SubmittedAnswer{QuestionID: pair.QuestionID, Answer: pair.Answer})
	}

	score := quiz.Score(answers)
	percent := quiz.Percent(score)
	passed := percent >= s.appConfig.Quiz.CertificateThreshold

	attempt := &domain.Attempt{
		ID:          util.NewULID(),
		QuizID:      quiz.ID,
		UserID:      user.ID,
		Email:       user.Email,
		Answers:     answers,
		Score:       score,
		AttemptedAt: time.Now(),
	}

	var cert *domain.Certificate
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.attemptRepo.CreateAttempt(txCtx, attempt); err != nil {
			return err
		}

		if passed {
			// one certificate per (user, quiz); repeat passes keep the original
			existing, err := s.attemptRepo.GetCertificate(txCtx, user.ID, quiz.ID)
			if err != nil {
				return err
			}
			if existing != nil {
				cert = existing
			} else {
				credential, err := util.NewCertificateID()
				if err != nil {
					return err
				}
				cert = &domain.Certificate{
					ID:            util.NewULID(),
					CertificateID: credential,
					UserID:        user.ID,
					QuizID:        quiz.ID,
					UserName:      user.Name,
					QuizTitle:     quiz.Title,
					Score:         score,
					IssuedAt:      time.Now(),
				}
				if err := s.attemptRepo.CreateCertificate(txCtx, cert); err != nil {
					return err
				}
			}
		}

		return s.attemptRepo.UpsertCompletedQuiz(txCtx, &domain.CompletedQuiz{
			ID:                util.NewULID(),
			UserID:            user.ID,
			QuizID:            quiz.ID,
			Score:             score,
			CertificateIssued: cert != nil,
		})
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to record submission", err)
	}

	logger.Get().Info("Quiz submitted",
		zap.String("userID", user.ID),
		zap.String("quizID", quiz.ID),
		zap.Int("score", score),
		zap.Bool("certificate", cert != nil))

	resp := &dto.SubmitQuizResponse{
		Score:      score,
		TotalMarks: quiz.TotalMarks,
		Percent:    percent,
	}
	if cert != nil {
		resp.Certificate = toCertificateResponse(cert)
	}
	return resp, nil
}

func toCertificateResponse(cert *domain.Certificate) *dto.CertificateResponse {
	return &dto.CertificateResponse{
		CertificateID: cert.CertificateID,
		UserName:      cert.UserName,
		QuizTitle:     cert.QuizTitle,
		Score:         cert.Score,
		IssuedAt:      cert.IssuedAt,
	}
}

// GetUserScore returns the user's latest attempt for a quiz.
func (s *quizServiceImpl) GetUserScore(ctx context.Context, userID, idOrSlug string) (*dto.UserScoreResponse, error) {
	quiz, err := s.resolveDomainQuiz(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	attempt, err := s.attemptRepo.GetLatestAttempt(ctx, userID, quiz.ID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get attempt", err)
	}
	if attempt == nil {
		return nil, domain.NewNotFoundError("no attempt found for this quiz")
	}

	cert, err := s.attemptRepo.GetCertificate(ctx, userID, quiz.ID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get certificate", err)
	}

	return &dto.UserScoreResponse{
		QuizID:            quiz.ID,
		QuizTitle:         quiz.Title,
		Score:             attempt.Score,
		TotalMarks:        quiz.TotalMarks,
		CertificateIssued: cert != nil,
	}, nil
}

// GetCertificate verifies a certificate by its public credential.
func (s *quizServiceImpl) GetCertificate(ctx context.Context, certificateID string) (*dto.CertificateResponse, error) {
	cert, err := s.attemptRepo.GetCertificateByCredential(ctx, certificateID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get certificate", err)
	}
	if cert == nil {
		return nil, domain.NewNotFoundError("certificate not found")
	}
	return toCertificateResponse(cert), nil
}

// DeleteQuiz removes a quiz and drops its cached copies.
func (s *quizServiceImpl) DeleteQuiz(ctx context.Context, quizID string) error {
	quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		return domain.NewInternalError("failed to get quiz", err)
	}
	if quiz == nil {
		return domain.NewQuizNotFoundError(quizID)
	}

	if err := s.quizRepo.DeleteQuiz(ctx, quizID); err != nil {
		return domain.NewInternalError("failed to delete quiz", err)
	}

	for _, key := range []string{
		cache.GenerateCacheKey("quiz", "quiz", quiz.ID),
		cache.GenerateCacheKey("quiz", "quiz", quiz.Slug),
	} {
		if err := s.cache.Delete(ctx, key); err != nil {
			logger.Get().Warn("Failed to invalidate quiz cache", zap.Error(err), zap.String("key", key))
		}
	}
	return nil
}
