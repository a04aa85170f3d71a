package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"easyway/internal/config"
	"easyway/internal/domain"
	"easyway/internal/dto"
	"easyway/internal/logger"
	"easyway/internal/repository"
	"easyway/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = 30 * time.Minute

var ErrInvalidJWTToken = errors.New("invalid jwt token")

// AuthService defines the interface for authentication operations.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, string, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, string, error)
	GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	CreateJWT(user *domain.User) (string, error)
}

type authServiceImpl struct {
	userRepo  repository.UserRepository
	appConfig *config.Config
}

// NewAuthService creates a new instance of the authentication service.
func NewAuthService(userRepo repository.UserRepository, appConfig *config.Config) AuthService {
	return &authServiceImpl{userRepo: userRepo, appConfig: appConfig}
}

func toUserResponse(user *domain.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		College:  user.College,
		Course:   user.Course,
		Branch:   user.Branch,
		Year:     user.Year,
		PhotoURL: user.PhotoURL,
		Role:     string(user.Role),
	}
}

// Register creates a new student account and returns the user with a signed
// session token. Duplicate emails return a conflict.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, string, error) {
	appLogger := logger.Get()

	existing, err := s.userRepo.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, "", domain.NewInternalError("failed to check existing user", err)
	}
	if existing != nil {
		return nil, "", domain.NewConflictError("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", domain.NewInternalError("failed to hash password", err)
	}

	user := domain.NewUser(util.NewULID(), req.Name, req.Email, string(hash))
	user.College = req.College
	user.Course = req.Course
	user.Branch = req.Branch
	user.Year = req.Year
	if err := user.Validate(); err != nil {
		return nil, "", err
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", domain.NewInternalError("failed to create user", err)
	}

	token, err := s.CreateJWT(user)
	if err != nil {
		return nil, "", domain.NewInternalError("failed to create session token", err)
	}

	appLogger.Info("New user registered", zap.String("userID", user.ID), zap.String("email", user.Email))
	return toUserResponse(user), token, nil
}

// Login verifies credentials and returns the user with a signed session
// token. Unknown email and wrong password produce the same error so the
// response never reveals which one failed.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, "", domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return nil, "", domain.NewUnauthorizedError("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", domain.NewUnauthorizedError("invalid email or password")
	}

	token, err := s.CreateJWT(user)
	if err != nil {
		return nil, "", domain.NewInternalError("failed to create session token", err)
	}

	logger.Get().Info("User logged in", zap.String("userID", user.ID))
	return toUserResponse(user), token, nil
}

// GetProfile returns the authenticated user's profile.
func (s *authServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user not found")
	}
	return toUserResponse(user), nil
}

// UpdateProfile applies the non-zero fields of the request to the user's
// profile. Email and role are not updatable here.
func (s *authServiceImpl) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to get user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user not found")
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.College != "" {
		user.College = req.College
	}
	if req.Course != "" {
		user.Course = req.Course
	}
	if req.Branch != "" {
		user.Branch = req.Branch
	}
	if req.Year != 0 {
		user.Year = req.Year
	}
	if req.PhotoURL != "" {
		user.PhotoURL = req.PhotoURL
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, domain.NewInternalError("failed to update user", err)
	}
	return toUserResponse(user), nil
}

// ForgotPassword issues a short-lived reset token for the account. It
// returns the token so the delivery channel stays outside this service; an
// unknown email returns an empty token without error, so the endpoint cannot
// be used to probe for accounts.
func (s *authServiceImpl) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		logger.Get().Info("Password reset requested for unknown email")
		return "", nil
	}

	token, err := util.NewResetToken()
	if err != nil {
		return "", domain.NewInternalError("failed to generate reset token", err)
	}
	if err := s.userRepo.SetResetToken(ctx, user.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		return "", domain.NewInternalError("failed to store reset token", err)
	}

	logger.Get().Info("Password reset token issued", zap.String("userID", user.ID))
	return token, nil
}

// ResetPassword consumes a reset token and replaces the password. The token
// is single use; it is cleared on success.
func (s *authServiceImpl) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	user, err := s.userRepo.GetUserByResetToken(ctx, req.Token)
	if err != nil {
		return domain.NewInternalError("failed to look up reset token", err)
	}
	if user == nil {
		return domain.NewUnauthorizedError("invalid or expired reset token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.NewInternalError("failed to hash password", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return domain.NewInternalError("failed to update password", err)
	}
	if err := s.userRepo.ClearResetToken(ctx, user.ID); err != nil {
		return domain.NewInternalError("failed to clear reset token", err)
	}

	logger.Get().Info("Password reset completed", zap.String("userID", user.ID))
	return nil
}

// CreateJWT signs a session token carrying the user's ID and role.
func (s *authServiceImpl) CreateJWT(user *domain.User) (string, error) {
	now := time.Now()
	claims := dto.AuthClaims{
		UserID: user.ID,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.appConfig.JWT.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   user.ID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.appConfig.JWT.SecretKey))
}

// ValidateJWT parses and verifies a session token.
func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.appConfig.JWT.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Warn("JWT token expired", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	if claims, ok := token.Claims.(*dto.AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidJWTToken
}
