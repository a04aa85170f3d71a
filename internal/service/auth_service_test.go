package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"easyway/internal/domain"
	"easyway/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister_Success(t *testing.T) {
	userRepo := new(MockUserRepository)

	userRepo.On("GetUserByEmail", mock.Anything, "asha@example.com").Return(nil, nil)
	userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(user *domain.User) bool {
		return user.Email == "asha@example.com" && user.Role == domain.RoleStudent && user.PasswordHash != "secret123"
	})).Return(nil)

	svc := NewAuthService(userRepo, testConfig())
	resp, token, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Asha Verma",
		Email:    "Asha@Example.com",
		Password: "secret123",
		College:  "IIT Delhi",
		Year:     3,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "asha@example.com", resp.Email)
	assert.Equal(t, string(domain.RoleStudent), resp.Role)

	claims, err := svc.ValidateJWT(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, resp.ID, claims.UserID)
	assert.Equal(t, string(domain.RoleStudent), claims.Role)
	userRepo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)

	userRepo.On("GetUserByEmail", mock.Anything, "asha@example.com").Return(testUser(), nil)

	svc := NewAuthService(userRepo, testConfig())
	_, _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Asha Verma",
		Email:    "asha@example.com",
		Password: "secret123",
	})

	assert.Error(t, err)
	var dErr *domain.DomainError
	assert.True(t, errors.As(err, &dErr))
	assert.Equal(t, domain.CodeConflict, dErr.Code)
	userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(MockUserRepository)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)
	user := testUser()
	user.PasswordHash = string(hash)

	userRepo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)

	svc := NewAuthService(userRepo, testConfig())
	resp, token, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    user.Email,
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, resp.ID)
}

func TestLogin_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)
	user := testUser()
	user.PasswordHash = string(hash)

	unknownRepo := new(MockUserRepository)
	unknownRepo.On("GetUserByEmail", mock.Anything, mock.Anything).Return(nil, nil)
	_, _, unknownErr := NewAuthService(unknownRepo, testConfig()).Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})

	wrongRepo := new(MockUserRepository)
	wrongRepo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)
	_, _, wrongErr := NewAuthService(wrongRepo, testConfig()).Login(context.Background(), &dto.LoginRequest{
		Email:    user.Email,
		Password: "not-the-password",
	})

	assert.Error(t, unknownErr)
	assert.Error(t, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestForgotPassword_UnknownEmailReturnsEmptyToken(t *testing.T) {
	userRepo := new(MockUserRepository)

	userRepo.On("GetUserByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	svc := NewAuthService(userRepo, testConfig())
	token, err := svc.ForgotPassword(context.Background(), "nobody@example.com")

	assert.NoError(t, err)
	assert.Empty(t, token)
	userRepo.AssertNotCalled(t, "SetResetToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestForgotPassword_IssuesToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	user := testUser()

	userRepo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)
	userRepo.On("SetResetToken", mock.Anything, user.ID, mock.Anything, mock.Anything).Return(nil)

	svc := NewAuthService(userRepo, testConfig())
	token, err := svc.ForgotPassword(context.Background(), user.Email)

	assert.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f]{48}$`, token)
	userRepo.AssertExpectations(t)
}

func TestResetPassword_ClearsTokenAfterUse(t *testing.T) {
	userRepo := new(MockUserRepository)
	user := testUser()

	userRepo.On("GetUserByResetToken", mock.Anything, "valid-token").Return(user, nil)
	userRepo.On("UpdatePassword", mock.Anything, user.ID, mock.Anything).Return(nil)
	userRepo.On("ClearResetToken", mock.Anything, user.ID).Return(nil)

	svc := NewAuthService(userRepo, testConfig())
	err := svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Token:       "valid-token",
		NewPassword: "fresh-secret",
	})

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestResetPassword_InvalidToken(t *testing.T) {
	userRepo := new(MockUserRepository)

	userRepo.On("GetUserByResetToken", mock.Anything, "bogus").Return(nil, nil)

	svc := NewAuthService(userRepo, testConfig())
	err := svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		Token:       "bogus",
		NewPassword: "fresh-secret",
	})

	assert.Error(t, err)
	var dErr *domain.DomainError
	assert.True(t, errors.As(err, &dErr))
	assert.Equal(t, domain.CodeUnauthorized, dErr.Code)
	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestValidateJWT_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.TokenTTL = -time.Minute

	svc := NewAuthService(new(MockUserRepository), cfg)
	token, err := svc.CreateJWT(testUser())
	assert.NoError(t, err)

	_, err = svc.ValidateJWT(context.Background(), token)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidJWTToken)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	svc := NewAuthService(new(MockUserRepository), testConfig())
	token, err := svc.CreateJWT(testUser())
	assert.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.JWT.SecretKey = "a-different-secret"
	other := NewAuthService(new(MockUserRepository), otherCfg)

	_, err = other.ValidateJWT(context.Background(), token)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidJWTToken)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	userRepo := new(MockUserRepository)
	user := testUser()
	user.College = "IIT Delhi"

	userRepo.On("GetUserByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Name == "Asha V." && u.College == "IIT Delhi" && u.Year == 4
	})).Return(nil)

	svc := NewAuthService(userRepo, testConfig())
	resp, err := svc.UpdateProfile(context.Background(), user.ID, &dto.UpdateProfileRequest{
		Name: "Asha V.",
		Year: 4,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Asha V.", resp.Name)
	assert.Equal(t, "IIT Delhi", resp.College)
	userRepo.AssertExpectations(t)
}
