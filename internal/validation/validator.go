package validation

import (
	"regexp"
	"strings"

	"easyway/internal/domain"
	"easyway/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRegisterRequest validates the registration request
func (v *Validator) ValidateRegisterRequest(req *dto.RegisterRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
	} else if len(req.Name) > 100 {
		errors = append(errors, domain.NewOutOfRangeError("name", len(req.Name), 1, 100))
	}

	if strings.TrimSpace(req.Email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	} else if !isValidEmail(req.Email) {
		errors = append(errors, domain.NewInvalidFormatError("email", req.Email))
	}

	if req.Password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	} else if len(req.Password) < 6 || len(req.Password) > 72 {
		// bcrypt truncates past 72 bytes
		errors = append(errors, domain.NewOutOfRangeError("password", len(req.Password), 6, 72))
	}

	if req.Year < 0 || req.Year > 6 {
		errors = append(errors, domain.NewOutOfRangeError("year", req.Year, 0, 6))
	}

	return errors
}

// ValidateLoginRequest validates the login request
func (v *Validator) ValidateLoginRequest(req *dto.LoginRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	}
	if req.Password == "" {
		errors = append(errors, domain.NewMissingFieldError("password"))
	}

	return errors
}

// ValidateResetPasswordRequest validates the password reset request
func (v *Validator) ValidateResetPasswordRequest(req *dto.ResetPasswordRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Token) == "" {
		errors = append(errors, domain.NewMissingFieldError("token"))
	}
	if req.NewPassword == "" {
		errors = append(errors, domain.NewMissingFieldError("new_password"))
	} else if len(req.NewPassword) < 6 || len(req.NewPassword) > 72 {
		errors = append(errors, domain.NewOutOfRangeError("new_password", len(req.NewPassword), 6, 72))
	}

	return errors
}

// ValidateCreateQuizRequest validates the structural parts of a quiz creation
// request. Per-question semantics are enforced by the domain.
func (v *Validator) ValidateCreateQuizRequest(req *dto.CreateQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Title) == "" {
		errors = append(errors, domain.NewMissingFieldError("title"))
	}
	if strings.TrimSpace(req.Subject) == "" {
		errors = append(errors, domain.NewMissingFieldError("subject"))
	}
	if req.Slug != "" && !isValidSlug(req.Slug) {
		errors = append(errors, domain.NewInvalidFormatError("slug", req.Slug))
	}
	if len(req.Questions) == 0 {
		errors = append(errors, domain.NewMissingFieldError("questions"))
	} else if len(req.Questions) > 100 {
		errors = append(errors, domain.NewOutOfRangeError("questions", len(req.Questions), 1, 100))
	}

	return errors
}

// ValidateSubmitQuizRequest validates a quiz submission
func (v *Validator) ValidateSubmitQuizRequest(req *dto.SubmitQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Quiz) == "" {
		errors = append(errors, domain.NewMissingFieldError("quiz"))
	}
	if len(req.Answers) == 0 {
		errors = append(errors, domain.NewMissingFieldError("answers"))
	}
	for _, answer := range req.Answers {
		if strings.TrimSpace(answer.QuestionID) == "" {
			errors = append(errors, domain.NewMissingFieldError("answers.question_id"))
			break
		}
	}

	return errors
}

// ValidateChatMessage validates a chat message body
func (v *Validator) ValidateChatMessage(message string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(message) == "" {
		errors = append(errors, domain.NewMissingFieldError("message"))
	} else if len(message) > 4000 {
		errors = append(errors, domain.NewOutOfRangeError("message", len(message), 1, 4000))
	}

	return errors
}

// ValidateAnalyzeCodeRequest validates a code analysis request
func (v *Validator) ValidateAnalyzeCodeRequest(req *dto.AnalyzeCodeRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Code) == "" {
		errors = append(errors, domain.NewMissingFieldError("code"))
	} else if len(req.Code) > 20000 {
		errors = append(errors, domain.NewOutOfRangeError("code", len(req.Code), 1, 20000))
	}

	return errors
}

// ValidateContactRequest validates a contact form submission
func (v *Validator) ValidateContactRequest(req *dto.ContactRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
	}
	if strings.TrimSpace(req.Email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	} else if !isValidEmail(req.Email) {
		errors = append(errors, domain.NewInvalidFormatError("email", req.Email))
	}
	if strings.TrimSpace(req.Message) == "" {
		errors = append(errors, domain.NewMissingFieldError("message"))
	} else if len(req.Message) > 5000 {
		errors = append(errors, domain.NewOutOfRangeError("message", len(req.Message), 1, 5000))
	}

	return errors
}

// ValidateULID checks a path parameter that must be a ULID
func (v *Validator) ValidateULID(field, value string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(value) == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
	} else if !isValidULID(value) {
		errors = append(errors, domain.NewInvalidFormatError(field, value))
	}

	return errors
}

// Helper functions for validation

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, base32 encoded
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}

// isValidEmail checks for the minimal local@domain.tld shape
func isValidEmail(s string) bool {
	if len(s) > 254 {
		return false
	}
	validEmail := regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	return validEmail.MatchString(s)
}

// isValidSlug allows lowercase alphanumerics separated by hyphens
func isValidSlug(s string) bool {
	if len(s) == 0 || len(s) > 100 {
		return false
	}
	validSlug := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	return validSlug.MatchString(s)
}
