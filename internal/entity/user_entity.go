package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

// User is an identity resolved by the auth service. Anonymous users carry no
// email or password; they exist so a fresh session can still sync its
// workspace to the document store.
type User struct {
	Id          uuid.UUID
	Email       *string
	FullName    string
	AvatarURL   *string
	Status      UserStatus
	IsAnonymous bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserProvider links a user to an external OAuth identity (e.g. Google).
type UserProvider struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	ProviderName   string
	ProviderUserId string
	AvatarURL      string
	CreatedAt      time.Time
}
