// File: internal/dtos/user.go
package dtos

import (
	"time"

	"github.com/abudi-09/Chat-App/internal/domain"
)

// UserResponse is the public shape of a user. The password hash never
// leaves the domain layer.
type UserResponse struct {
	ID         uint      `json:"id"`
	FullName   string    `json:"fullname"`
	Email      string    `json:"email"`
	ProfilePic string    `json:"profilePic"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		FullName:   u.FullName,
		Email:      u.Email,
		ProfilePic: u.ProfilePic,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func NewUserResponseList(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
