package entities

import "time"

const (
	RoleAdmin     = "admin"
	RoleManager   = "gerente"
	RoleMechanic  = "mecanico"
	RoleAttendant = "atendente"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Session is an authenticated backend session.
type Session struct {
	ID          string    `json:"id"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        User      `json:"user"`
}

// AuthSessionRecord is the server side of an issued access token.
type AuthSessionRecord struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

func (r AuthSessionRecord) Active(now time.Time) bool {
	return r.ID != "" && r.RevokedAt == nil && now.Before(r.ExpiresAt)
}

type AuthEventType string

const (
	AuthEventSignedIn    AuthEventType = "SIGNED_IN"
	AuthEventSignedOut   AuthEventType = "SIGNED_OUT"
	AuthEventUserUpdated AuthEventType = "USER_UPDATED"
	AuthEventPasswordSet AuthEventType = "PASSWORD_RECOVERY"
)

// AuthEvent is broadcast by the auth backend whenever a session changes.
// Session is nil after a sign-out.
type AuthEvent struct {
	Type      AuthEventType
	SessionID string
	Session   *Session
}
