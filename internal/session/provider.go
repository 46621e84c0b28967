// Package session holds the per-session auth state: the current session, the
// role's permission map and the subscription to auth-state changes.
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

type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

var (
	ErrAlreadyInitialized = errors.New("session: provider already initialized")
	ErrProviderClosed     = errors.New("session: provider closed")
)

const refreshTimeout = 10 * time.Second

// SignUpResult separates "already registered" from other sign-up failures.
type SignUpResult struct {
	User              entities.User
	AlreadyRegistered bool
}

// Provider tracks one session handle.
//
// State moves uninitialized -> loading -> authenticated|anonymous and every
// auth-state notification re-runs the loading transition. The permission map
// is fetched before the provider leaves loading.
type Provider struct {
	backend  interfaces.IAuthBackend
	perms    interfaces.IPermissionRepository
	notifier Notifier

	mu          sync.RWMutex
	state       State
	accessToken string
	session     *entities.Session
	permissions entities.PermissionMap
	unsubscribe func()
	closed      bool
}

func NewProvider(backend interfaces.IAuthBackend, perms interfaces.IPermissionRepository, notifier Notifier, accessToken string) *Provider {
	return &Provider{
		backend:     backend,
		perms:       perms,
		notifier:    notifier,
		state:       StateUninitialized,
		accessToken: accessToken,
	}
}

// Init loads the session and subscribes to auth-state changes. It can run once.
func (p *Provider) Init(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrProviderClosed
	}
	if p.state != StateUninitialized {
		p.mu.Unlock()
		return ErrAlreadyInitialized
	}
	p.state = StateLoading
	p.mu.Unlock()

	err := p.refresh(ctx)

	unsub := p.backend.OnAuthStateChange(p.onAuthEvent)
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		unsub()
		return ErrProviderClosed
	}
	p.unsubscribe = unsub
	p.mu.Unlock()
	return err
}

// refresh is the loading transition shared by Init, SignIn and auth events.
func (p *Provider) refresh(ctx context.Context) error {
	p.mu.Lock()
	token := p.accessToken
	p.state = StateLoading
	p.mu.Unlock()

	var sess *entities.Session
	var err error
	if token != "" {
		sess, err = p.backend.GetSession(ctx, token)
		if errors.Is(err, interfaces.ErrSessionNotFound) {
			sess, err = nil, nil
		}
	}
	if err != nil {
		log.Warn().Err(err).Msg("[session][provider] get session failed")
		p.setAnonymous()
		return err
	}
	if sess == nil {
		p.setAnonymous()
		return nil
	}

	perms, err := p.perms.GetByRole(ctx, sess.User.Role)
	if err != nil {
		log.Warn().Err(err).Str("role", sess.User.Role).Msg("[session][provider] permissions unavailable, using empty map")
		perms = entities.PermissionMap{}
	}

	p.mu.Lock()
	p.session = sess
	p.accessToken = sess.AccessToken
	p.permissions = perms
	p.state = StateAuthenticated
	p.mu.Unlock()
	return nil
}

func (p *Provider) setAnonymous() {
	p.mu.Lock()
	p.session = nil
	p.permissions = nil
	p.state = StateAnonymous
	p.mu.Unlock()
}

func (p *Provider) onAuthEvent(ev entities.AuthEvent) {
	p.mu.RLock()
	closed := p.closed
	current := p.session
	token := p.accessToken
	p.mu.RUnlock()
	if closed || !relevant(current, token, ev) {
		return
	}

	if ev.Type == entities.AuthEventSignedOut {
		p.mu.Lock()
		p.accessToken = ""
		p.mu.Unlock()
	}
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()
	if err := p.refresh(ctx); err != nil {
		log.Warn().Err(err).Str("event", string(ev.Type)).Msg("[session][provider] refresh after auth event failed")
	}
}

// relevant matches an anonymous handle by the access token it still holds.
func relevant(current *entities.Session, token string, ev entities.AuthEvent) bool {
	if current == nil {
		return token != "" && ev.Session != nil && ev.Session.AccessToken == token
	}
	if ev.SessionID != "" && ev.SessionID == current.ID {
		return true
	}
	return ev.Type == entities.AuthEventUserUpdated && ev.Session != nil && ev.Session.User.ID == current.User.ID
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (entities.Session, error) {
	sess, err := p.backend.SignIn(ctx, email, password)
	if err != nil {
		p.notify("error", "Falha no login", signInMessage(err))
		return entities.Session{}, err
	}

	p.mu.Lock()
	p.accessToken = sess.AccessToken
	uninitialized := p.state == StateUninitialized
	p.mu.Unlock()

	if uninitialized {
		err = p.Init(ctx)
	} else {
		err = p.refresh(ctx)
	}
	return sess, err
}

func (p *Provider) SignOut(ctx context.Context) error {
	p.mu.RLock()
	token := p.accessToken
	p.mu.RUnlock()

	if err := p.backend.SignOut(ctx, token); err != nil {
		p.notify("error", "Falha ao sair", "Não foi possível encerrar a sessão. Tente novamente.")
		return err
	}
	p.mu.Lock()
	p.accessToken = ""
	p.mu.Unlock()
	p.setAnonymous()
	return nil
}

// SignUp never notifies; an existing account comes back as AlreadyRegistered.
func (p *Provider) SignUp(ctx context.Context, input interfaces.NewUser) (SignUpResult, error) {
	u, err := p.backend.SignUp(ctx, input)
	if errors.Is(err, interfaces.ErrAlreadyRegistered) {
		return SignUpResult{AlreadyRegistered: true}, nil
	}
	if err != nil {
		return SignUpResult{}, err
	}
	return SignUpResult{User: u}, nil
}

func (p *Provider) Can(module entities.Module, action entities.Action) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state == StateAuthenticated && p.permissions.Can(module, action)
}

func (p *Provider) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

func (p *Provider) Session() *entities.Session {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.session == nil {
		return nil
	}
	cp := *p.session
	return &cp
}

func (p *Provider) User() (entities.User, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.session == nil {
		return entities.User{}, false
	}
	return p.session.User, true
}

func (p *Provider) Permissions() entities.PermissionMap {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(entities.PermissionMap, len(p.permissions))
	for k, v := range p.permissions {
		out[k] = v
	}
	return out
}

// Close removes the auth-state subscription. Safe to call more than once.
func (p *Provider) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	unsub := p.unsubscribe
	p.unsubscribe = nil
	p.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

func (p *Provider) notify(level, title, msg string) {
	if p.notifier == nil {
		return
	}
	p.notifier.Notify(Notification{Level: level, Title: title, Message: msg})
}

func signInMessage(err error) string {
	if errors.Is(err, interfaces.ErrInvalidCredentials) {
		return "E-mail ou senha inválidos."
	}
	return "Não foi possível entrar. Tente novamente."
}
