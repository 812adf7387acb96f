package response

import (
	"time"

	"furniture_warehouse/internal/domain/entities"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type AuthResponse struct {
	Message string       `json:"message" example:"login successful"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

type UserEnvelope struct {
	User UserResponse `json:"user"`
}

type UserUpdatedResponse struct {
	Message string       `json:"message" example:"profile updated successfully"`
	User    UserResponse `json:"user"`
}

type UsersEnvelope struct {
	Users []UserResponse `json:"users"`
}

func FromUsers(in []entities.User) UsersEnvelope {
	out := make([]UserResponse, 0, len(in))
	for _, u := range in {
		out = append(out, FromUser(u))
	}
	return UsersEnvelope{Users: out}
}
