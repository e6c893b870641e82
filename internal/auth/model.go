package auth

import "github.com/ovaphlow/pitchfork/service-finance-go/internal/common"

type RegisterUserRequest struct {
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	Password    string  `json:"password"`
	ServiceType *string `json:"service_type,omitempty"`
}

type LoginUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register (without token) and login.
type AuthResponse struct {
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	ServiceType *string `json:"service_type,omitempty"`
	Token       string  `json:"token,omitempty"`
}

var (
	registerSchema = common.Schema{
		"Email":       "required,email,max=100",
		"Name":        "required,min=1,max=100",
		"Password":    "required,min=1,max=72",
		"ServiceType": "omitempty,min=1,max=100",
	}
	loginSchema = common.Schema{
		"Email":    "required,min=1,max=100",
		"Password": "required,min=1,max=100",
	}
)
