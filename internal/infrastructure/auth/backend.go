// Package auth is the local auth backend: bcrypt credentials, HS256 access
// tokens bound to revocable sessions, and in-process auth-state events.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidAccount = errors.New("email, name and password are required")

type Config struct {
	ResetTTL   time.Duration
	BcryptCost int
}

type Backend struct {
	repo   interfaces.IUserAccountRepository
	tokens *TokenIssuer
	events *Broadcaster
	cfg    Config
	now    func() time.Time
}

var _ interfaces.IAuthBackend = (*Backend)(nil)

func NewBackend(repo interfaces.IUserAccountRepository, tokens *TokenIssuer, events *Broadcaster, cfg Config) *Backend {
	if cfg.ResetTTL <= 0 {
		cfg.ResetTTL = time.Hour
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if events == nil {
		events = NewBroadcaster()
	}
	return &Backend{repo: repo, tokens: tokens, events: events, cfg: cfg, now: time.Now}
}

// SignUp registers a self-service account. New accounts get the attendant role.
func (b *Backend) SignUp(ctx context.Context, input interfaces.NewUser) (entities.User, error) {
	input.Role = entities.RoleAttendant
	return b.createUser(ctx, input)
}

func (b *Backend) AdminCreateUser(ctx context.Context, input interfaces.NewUser) (entities.User, error) {
	if input.Role == "" {
		input.Role = entities.RoleAttendant
	}
	return b.createUser(ctx, input)
}

func (b *Backend) createUser(ctx context.Context, input interfaces.NewUser) (entities.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)
	if email == "" || name == "" || input.Password == "" {
		return entities.User{}, ErrInvalidAccount
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), b.cfg.BcryptCost)
	if err != nil {
		return entities.User{}, err
	}

	now := b.now().UTC()
	u := entities.User{ID: uuid.NewString(), Email: email, Name: name, Role: input.Role, CreatedAt: now, UpdatedAt: now}
	created, err := b.repo.CreateUser(ctx, u, string(hash))
	if errors.Is(err, interfaces.ErrDuplicate) {
		return entities.User{}, interfaces.ErrAlreadyRegistered
	}
	if err != nil {
		return entities.User{}, err
	}
	log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("[auth][backend] user created")
	return created, nil
}

func (b *Backend) SignIn(ctx context.Context, email string, password string) (entities.Session, error) {
	u, hash, err := b.repo.GetCredentialsByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return entities.Session{}, err
	}
	if u.ID == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return entities.Session{}, interfaces.ErrInvalidCredentials
	}

	now := b.now().UTC()
	rec := entities.AuthSessionRecord{ID: uuid.NewString(), UserID: u.ID, CreatedAt: now}
	token, exp, err := b.tokens.Issue(u.ID, rec.ID, u.Role, now)
	if err != nil {
		return entities.Session{}, err
	}
	rec.ExpiresAt = exp
	if err := b.repo.CreateSession(ctx, rec); err != nil {
		return entities.Session{}, err
	}

	sess := entities.Session{ID: rec.ID, AccessToken: token, ExpiresAt: exp, User: u}
	log.Info().Str("user_id", u.ID).Str("session_id", rec.ID).Msg("[auth][backend] signed in")
	b.events.Publish(entities.AuthEvent{Type: entities.AuthEventSignedIn, SessionID: rec.ID, Session: &sess})
	return sess, nil
}

func (b *Backend) SignOut(ctx context.Context, accessToken string) error {
	claims, err := b.tokens.Parse(accessToken)
	if err != nil {
		return interfaces.ErrSessionNotFound
	}
	if err := b.repo.RevokeSession(ctx, claims.SessionID, b.now().UTC()); err != nil {
		return err
	}
	log.Info().Str("session_id", claims.SessionID).Msg("[auth][backend] signed out")
	b.events.Publish(entities.AuthEvent{Type: entities.AuthEventSignedOut, SessionID: claims.SessionID})
	return nil
}

// GetSession returns ErrSessionNotFound for malformed, expired or revoked tokens.
func (b *Backend) GetSession(ctx context.Context, accessToken string) (*entities.Session, error) {
	claims, err := b.tokens.Parse(accessToken)
	if err != nil {
		return nil, interfaces.ErrSessionNotFound
	}
	rec, err := b.repo.GetSessionRecord(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if !rec.Active(b.now()) || rec.UserID != claims.Subject {
		return nil, interfaces.ErrSessionNotFound
	}
	u, err := b.repo.GetUserByID(ctx, rec.UserID)
	if err != nil {
		return nil, err
	}
	if u.ID == "" {
		return nil, interfaces.ErrSessionNotFound
	}
	return &entities.Session{ID: rec.ID, AccessToken: accessToken, ExpiresAt: rec.ExpiresAt, User: u}, nil
}

func (b *Backend) OnAuthStateChange(listener interfaces.AuthStateListener) func() {
	return b.events.Subscribe(listener)
}

// RequestPasswordReset returns the raw single-use token; only its hash is stored.
func (b *Backend) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	u, _, err := b.repo.GetCredentialsByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", err
	}
	if u.ID == "" {
		return "", interfaces.ErrUserNotFound
	}
	raw, hash, err := newResetToken()
	if err != nil {
		return "", err
	}
	if err := b.repo.CreatePasswordReset(ctx, hash, u.ID, b.now().UTC().Add(b.cfg.ResetTTL)); err != nil {
		return "", err
	}
	return raw, nil
}

// ResetPassword consumes the token, sets the password and revokes every
// session of the user.
func (b *Backend) ResetPassword(ctx context.Context, resetToken string, newPassword string) error {
	now := b.now().UTC()
	userID, err := b.repo.ConsumePasswordReset(ctx, hashResetToken(resetToken), now)
	if err != nil {
		return err
	}
	if userID == "" {
		return interfaces.ErrInvalidResetToken
	}
	if err := b.setPassword(ctx, userID, newPassword); err != nil {
		return err
	}
	if err := b.repo.RevokeUserSessions(ctx, userID, now); err != nil {
		return err
	}

	subject := &entities.Session{User: entities.User{ID: userID}}
	b.events.Publish(entities.AuthEvent{Type: entities.AuthEventPasswordSet, Session: subject})
	b.events.Publish(entities.AuthEvent{Type: entities.AuthEventUserUpdated, Session: subject})
	return nil
}

func (b *Backend) UpdatePassword(ctx context.Context, accessToken string, newPassword string) error {
	sess, err := b.GetSession(ctx, accessToken)
	if err != nil {
		return err
	}
	if err := b.setPassword(ctx, sess.User.ID, newPassword); err != nil {
		return err
	}
	b.events.Publish(entities.AuthEvent{Type: entities.AuthEventUserUpdated, SessionID: sess.ID, Session: sess})
	return nil
}

func (b *Backend) setPassword(ctx context.Context, userID string, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cfg.BcryptCost)
	if err != nil {
		return err
	}
	return b.repo.UpdatePasswordHash(ctx, userID, string(hash))
}

func (b *Backend) AdminGetUser(ctx context.Context, id string) (entities.User, error) {
	u, err := b.repo.GetUserByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if u.ID == "" {
		return entities.User{}, interfaces.ErrUserNotFound
	}
	return u, nil
}

// AdminUpdateUser notifies live sessions of the user so they reload role and permissions.
func (b *Backend) AdminUpdateUser(ctx context.Context, u entities.User) (entities.User, error) {
	u.UpdatedAt = b.now().UTC()
	updated, err := b.repo.UpdateUser(ctx, u)
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, interfaces.ErrUserNotFound
	}
	b.events.Publish(entities.AuthEvent{Type: entities.AuthEventUserUpdated, Session: &entities.Session{User: updated}})
	return updated, nil
}

func (b *Backend) AdminDeleteUser(ctx context.Context, id string) error {
	if err := b.repo.RevokeUserSessions(ctx, id, b.now().UTC()); err != nil {
		return err
	}
	if err := b.repo.DeleteUser(ctx, id); err != nil {
		return err
	}
	log.Info().Str("user_id", id).Msg("[auth][backend] user deleted")
	b.events.Publish(entities.AuthEvent{Type: entities.AuthEventUserUpdated, Session: &entities.Session{User: entities.User{ID: id}}})
	return nil
}

func (b *Backend) AdminListUsers(ctx context.Context) ([]entities.User, error) {
	return b.repo.ListUsers(ctx)
}
