package domain

import (
	"context"
	"time"
)

// User represents a registered user. PasswordHash and Salt are never
// serialized in responses.
// swagger:model User
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser returns a new User with the given fields. ID is set by the
// repository on create.
func NewUser(username, email, fullName, passwordHash, salt string, createdAt, updatedAt time.Time) *User {
	return &User{
		Username:     username,
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
		Salt:         salt,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// UserPatch holds the optional fields of a profile update. Nil fields are
// left untouched.
type UserPatch struct {
	Username *string
	Email    *string
	FullName *string
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues signed access and refresh tokens for a user.
type TokenIssuer interface {
	IssueAccess(userID int64) (string, error)
	IssueRefresh(userID int64) (string, error)
}

// TokenVerifier verifies a token of the expected kind and returns the user ID
// it was issued for.
type TokenVerifier interface {
	VerifyAccess(token string) (userID int64, err error)
	VerifyRefresh(token string) (userID int64, err error)
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Update(ctx context.Context, id int64, patch UserPatch, passwordHash, salt *string) (*User, error)
}

// AuthService defines credential verification and token issuance.
type AuthService interface {
	Register(ctx context.Context, username, email, fullName, password string) (*User, error)
	Login(ctx context.Context, email, password string) (access, refresh string, user *User, err error)
	Refresh(ctx context.Context, refreshToken string) (access string, err error)
}

// UserService defines profile operations for the authenticated user.
type UserService interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	UpdateProfile(ctx context.Context, id int64, patch UserPatch, password *string) (*User, error)
}
