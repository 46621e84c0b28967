package interfaces

import (
	"context"
	"errors"
	"time"

	"mecanica_gestao/internal/domain/entities"
)

var (
	ErrAlreadyRegistered  = errors.New("user already registered")
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

// AuthStateListener receives every auth event published by the backend.
type AuthStateListener func(event entities.AuthEvent)

// NewUser is the admin/sign-up input for account creation.
type NewUser struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// IAuthBackend is the auth surface: sessions, password flows and admin user management.
type IAuthBackend interface {
	SignUp(ctx context.Context, input NewUser) (entities.User, error)
	SignIn(ctx context.Context, email string, password string) (entities.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	GetSession(ctx context.Context, accessToken string) (*entities.Session, error)
	OnAuthStateChange(listener AuthStateListener) func()
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, resetToken string, newPassword string) error
	UpdatePassword(ctx context.Context, accessToken string, newPassword string) error
	AdminCreateUser(ctx context.Context, input NewUser) (entities.User, error)
	AdminGetUser(ctx context.Context, id string) (entities.User, error)
	AdminUpdateUser(ctx context.Context, u entities.User) (entities.User, error)
	AdminDeleteUser(ctx context.Context, id string) error
	AdminListUsers(ctx context.Context) ([]entities.User, error)
}

// IPermissionRepository loads the module/action grid for a role.
type IPermissionRepository interface {
	GetByRole(ctx context.Context, role string) (entities.PermissionMap, error)
}

// IUserAccountRepository persists the local auth backend: users with their
// password hashes, issued sessions and single-use password reset tokens.
// Lookups that miss return a zero value with an empty ID.
type IUserAccountRepository interface {
	CreateUser(ctx context.Context, u entities.User, passwordHash string) (entities.User, error)
	GetUserByID(ctx context.Context, id string) (entities.User, error)
	GetCredentialsByEmail(ctx context.Context, email string) (entities.User, string, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	UpdateUser(ctx context.Context, u entities.User) (entities.User, error)
	UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error
	DeleteUser(ctx context.Context, id string) error
	CreateSession(ctx context.Context, s entities.AuthSessionRecord) error
	GetSessionRecord(ctx context.Context, id string) (entities.AuthSessionRecord, error)
	RevokeSession(ctx context.Context, id string, at time.Time) error
	RevokeUserSessions(ctx context.Context, userID string, at time.Time) error
	CreatePasswordReset(ctx context.Context, tokenHash string, userID string, expiresAt time.Time) error
	ConsumePasswordReset(ctx context.Context, tokenHash string, now time.Time) (string, error)
}
