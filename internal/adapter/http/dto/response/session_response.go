package response

import (
	"time"

	"mecanica_gestao/internal/domain/entities"
)

type SessionResponse struct {
	AccessToken string                 `json:"access_token"`
	TokenType   string                 `json:"token_type"`
	ExpiresAt   time.Time              `json:"expires_at"`
	User        entities.User          `json:"user"`
	Permissions entities.PermissionMap `json:"permissions"`
}

func FromSession(s entities.Session, perms entities.PermissionMap) SessionResponse {
	if perms == nil {
		perms = entities.PermissionMap{}
	}
	return SessionResponse{
		AccessToken: s.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   s.ExpiresAt,
		User:        s.User,
		Permissions: perms,
	}
}
