package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type LoginForm struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type CreateUserRequest struct {
	Username string
	Password string
	Role     string
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      UserResponse
}

// SessionClaims is the payload of the signed session cookie; RegisteredClaims.ID is the jti.
type SessionClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Role:     u.Role,
	}
}
