package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id          uuid.UUID `json:"id"`
	Email       string    `json:"email,omitempty"`
	FullName    string    `json:"full_name"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	IsAnonymous bool      `json:"is_anonymous"`
	CreatedAt   time.Time `json:"created_at"`
}

// SignInResponse is returned by every sign-in path: anonymous, custom token
// and the OAuth callback.
type SignInResponse struct {
	AccessToken string              `json:"access_token"`
	User        UserProfileResponse `json:"user"`
}

// TokenSignInRequest carries an externally supplied custom token.
type TokenSignInRequest struct {
	Token string `json:"token" validate:"required"`
}
