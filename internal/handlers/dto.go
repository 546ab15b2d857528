package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=driver passenger"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang" validate:"required,max=10"`
	TargetLang string `json:"target_lang" validate:"required,max=10"`
	SenderID   *uint  `json:"sender_id"`
	ReceiverID *uint  `json:"receiver_id"`
}

type UpdateProfileRequest struct {
	FullName     *string `json:"full_name" validate:"omitempty,max=100"`
	Email        *string `json:"email" validate:"omitempty,email,max=100"`
	LanguagePref *string `json:"language_pref" validate:"omitempty,max=50"`
}

type UpdateLanguageRequest struct {
	LanguagePref string `json:"language_pref" validate:"required,max=50"`
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required"`
}

// validationMessage renders the first failed rule of a validator error as a
// human-readable detail string.
func validationMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", fe.Field())
		case "email":
			return fmt.Sprintf("%s must be a valid email address", fe.Field())
		case "oneof":
			return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
		case "min":
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		case "max":
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
	return "invalid request body"
}
