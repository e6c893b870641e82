package user

import (
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/common"
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/user/entity"
)

// UpdateUserRequest is a merge-patch: nil fields are left untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}

type UserResponse struct {
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	ServiceType *string `json:"service_type,omitempty"`
}

var updateSchema = common.Schema{
	"Name":     "omitempty,min=1,max=100",
	"Password": "omitempty,min=1,max=72",
}

func toResponse(u *entity.User) *UserResponse {
	return &UserResponse{Email: u.Email, Name: u.Name, ServiceType: u.ServiceType}
}
