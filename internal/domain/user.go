package domain

import (
	"context"
	"time"
)

// User represents a society member account.
// swagger:model User
type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL string    `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NewUser returns a new User with the given fields.
func NewUser(id, email, firstName, lastName string, now time.Time) *User {
	return &User{
		ID:        id,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Credential is a demonstration account record used to verify logins.
// The password is held as a salted hash; see PasswordHasher.
type Credential struct {
	ID           string
	Email        string
	PasswordHash string
	Salt         string
	FirstName    string
	LastName     string
}

// CredentialProvider resolves login credentials by email.
// Implementations return ErrInvalidCredentials when the email is unknown.
type CredentialProvider interface {
	Lookup(email string) (*Credential, error)
	All() []*Credential
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// UserRepository defines the interface for user storage.
// GetByID returns (nil, nil) when the id is absent; absence is not an error.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	Upsert(ctx context.Context, user *User) (*User, error)
}

// AuthService defines the business logic for login, logout, and the
// per-request session guard.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*User, *Session, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentUser(ctx context.Context, sessionID string) (*User, error)
	SeedDemoUsers(ctx context.Context) error
}
