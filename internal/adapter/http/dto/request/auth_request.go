package request

import "furniture_warehouse/internal/usecase"

// RegisterRequest has no role field: public registration always creates a
// regular user.
type RegisterRequest struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"secret1"`
	FullName string `json:"full_name" example:"Alice Doe"`
}

func (r RegisterRequest) ToInput() usecase.RegisterInput {
	return usecase.RegisterInput{Username: r.Username, Email: r.Email, Password: r.Password, FullName: r.FullName}
}

// LoginRequest.Username may hold a username or an email.
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"secret1"`
}

type ProfileRequest struct {
	FullName *string `json:"full_name" example:"Alice B. Doe"`
	Email    *string `json:"email" example:"alice.b@example.com"`
}

func (r ProfileRequest) ToInput() usecase.ProfileInput {
	return usecase.ProfileInput{FullName: r.FullName, Email: r.Email}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" example:"secret1"`
	NewPassword     string `json:"newPassword" example:"secret2"`
}
