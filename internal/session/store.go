package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var ErrNoSession = errors.New("session: no active session")

// SignInError is returned by Store.SignIn. A failed sign-in has no token to
// drain an inbox with, so its notifications travel with the error.
type SignInError struct {
	Err           error
	Notifications []Notification
}

func (e *SignInError) Error() string { return e.Err.Error() }

func (e *SignInError) Unwrap() error { return e.Err }

type entry struct {
	provider *Provider
	inbox    *Inbox
}

// Store keeps one Provider per access token for the HTTP layer.
type Store struct {
	backend interfaces.IAuthBackend
	perms   interfaces.IPermissionRepository
	now     func() time.Time

	mu      sync.Mutex
	entries map[string]entry
}

func NewStore(backend interfaces.IAuthBackend, perms interfaces.IPermissionRepository) *Store {
	return &Store{
		backend: backend,
		perms:   perms,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// Get returns the authenticated provider for token, creating and initializing
// it on first use. Anonymous or expired sessions are evicted.
func (s *Store) Get(ctx context.Context, token string) (*Provider, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	s.mu.Lock()
	e, ok := s.entries[token]
	s.mu.Unlock()

	if !ok {
		inbox := NewInbox(0)
		p := NewProvider(s.backend, s.perms, inbox, token)
		if err := p.Init(ctx); err != nil && !errors.Is(err, interfaces.ErrSessionNotFound) {
			p.Close()
			return nil, err
		}
		e = entry{provider: p, inbox: inbox}

		s.mu.Lock()
		if existing, raced := s.entries[token]; raced {
			s.mu.Unlock()
			p.Close()
			e = existing
		} else {
			s.entries[token] = e
			s.mu.Unlock()
		}
	}

	if !s.usable(e.provider) {
		s.evict(token)
		return nil, ErrNoSession
	}
	return e.provider, nil
}

func (s *Store) usable(p *Provider) bool {
	if p.State() != StateAuthenticated {
		return false
	}
	sess := p.Session()
	return sess != nil && (sess.ExpiresAt.IsZero() || s.now().Before(sess.ExpiresAt))
}

// SignIn authenticates and caches the resulting provider under the new access token.
func (s *Store) SignIn(ctx context.Context, email, password string) (*Provider, entities.Session, error) {
	inbox := NewInbox(0)
	p := NewProvider(s.backend, s.perms, inbox, "")
	sess, err := p.SignIn(ctx, email, password)
	if err != nil {
		p.Close()
		return nil, entities.Session{}, &SignInError{Err: err, Notifications: inbox.Drain()}
	}

	s.mu.Lock()
	if old, ok := s.entries[sess.AccessToken]; ok {
		old.provider.Close()
	}
	s.entries[sess.AccessToken] = entry{provider: p, inbox: inbox}
	s.mu.Unlock()
	log.Info().Str("user_id", sess.User.ID).Msg("[session][store] signed in")
	return p, sess, nil
}

func (s *Store) SignUp(ctx context.Context, input interfaces.NewUser) (SignUpResult, error) {
	p := NewProvider(s.backend, s.perms, nil, "")
	defer p.Close()
	return p.SignUp(ctx, input)
}

// SignOut ends the backend session and evicts the provider. The provider is
// kept when the backend call fails so the client can retry.
func (s *Store) SignOut(ctx context.Context, token string) error {
	p, err := s.Get(ctx, token)
	if err != nil {
		return err
	}
	if err := p.SignOut(ctx); err != nil {
		return err
	}
	s.evict(token)
	return nil
}

// Notifications drains the pending messages of the session behind token.
func (s *Store) Notifications(token string) []Notification {
	s.mu.Lock()
	e, ok := s.entries[token]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	return e.inbox.Drain()
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) evict(token string) {
	s.mu.Lock()
	e, ok := s.entries[token]
	delete(s.entries, token)
	s.mu.Unlock()
	if ok {
		e.provider.Close()
	}
}

// Close tears down every cached provider.
func (s *Store) Close() {
	s.mu.Lock()
	entries := s.entries
	s.entries = make(map[string]entry)
	s.mu.Unlock()

	for _, e := range entries {
		e.provider.Close()
	}
	log.Info().Int("sessions", len(entries)).Msg("[session][store] closed")
}
