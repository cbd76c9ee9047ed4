package response

import (
	"time"

	"jua-kazi/internal/data/entity"
)

// UserResponse is the public view of an account. The credential hash never
// leaves the server.
type UserResponse struct {
	ID          string          `json:"id"`
	FullName    string          `json:"full_name"`
	PhoneNumber string          `json:"phone_number"`
	Email       string          `json:"email"`
	Role        entity.UserRole `json:"role"`
	IsVerified  bool            `json:"is_verified"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SessionResponse is returned by sign-up and login; Token is the bearer
// token for subsequent requests.
type SessionResponse struct {
	Token     string       `json:"token,omitempty"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
	User      UserResponse `json:"user"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID.String(),
		FullName:    user.FullName,
		PhoneNumber: user.PhoneNumber,
		Email:       user.Email,
		Role:        user.Role,
		IsVerified:  user.IsVerified,
		CreatedAt:   user.CreatedAt,
	}
}

func UsersToResponse(users []*entity.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = UserToResponse(u)
	}
	return out
}
