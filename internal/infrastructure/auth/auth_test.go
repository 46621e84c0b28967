package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/usecase/interfaces"
	mock_interfaces "mecanica_gestao/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestBackend(t *testing.T) (*Backend, *mock_interfaces.MockIUserAccountRepository, *[]entities.AuthEvent) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIUserAccountRepository(ctrl)
	tokens, err := NewTokenIssuer("secret", "mecanica-gestao", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := NewBackend(repo, tokens, NewBroadcaster(), Config{BcryptCost: bcrypt.MinCost})
	b.now = func() time.Time { return fixedNow }

	var events []entities.AuthEvent
	b.OnAuthStateChange(func(ev entities.AuthEvent) { events = append(events, ev) })
	return b, repo, &events
}

func mustHash(t *testing.T, pw string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(h)
}

func TestTokenIssuer(t *testing.T) {
	issuer, _ := NewTokenIssuer("secret", "mecanica-gestao", time.Hour)

	t.Run("round trip", func(t *testing.T) {
		tok, exp, err := issuer.Issue("u-1", "s-1", entities.RoleManager, time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if time.Until(exp) <= 0 {
			t.Fatalf("expected expiry in the future, got %v", exp)
		}
		claims, err := issuer.Parse(tok)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.Subject != "u-1" || claims.SessionID != "s-1" || claims.Role != entities.RoleManager {
			t.Fatalf("unexpected claims %+v", claims)
		}
	})

	t.Run("rejects other secret", func(t *testing.T) {
		other, _ := NewTokenIssuer("other", "mecanica-gestao", time.Hour)
		tok, _, _ := other.Issue("u-1", "s-1", "", time.Now())
		if _, err := issuer.Parse(tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("rejects expired token", func(t *testing.T) {
		tok, _, _ := issuer.Issue("u-1", "s-1", "", time.Now().Add(-2*time.Hour))
		if _, err := issuer.Parse(tok); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("empty secret", func(t *testing.T) {
		if _, err := NewTokenIssuer("", "x", time.Hour); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestBroadcaster(t *testing.T) {
	b := NewBroadcaster()
	var got []entities.AuthEventType
	unsub := b.Subscribe(func(ev entities.AuthEvent) { got = append(got, ev.Type) })

	// listeners may subscribe from inside a callback
	b.Subscribe(func(ev entities.AuthEvent) {
		if ev.Type == entities.AuthEventSignedIn {
			b.Subscribe(func(entities.AuthEvent) {})
		}
	})

	b.Publish(entities.AuthEvent{Type: entities.AuthEventSignedIn})
	unsub()
	unsub()
	b.Publish(entities.AuthEvent{Type: entities.AuthEventSignedOut})

	if len(got) != 1 || got[0] != entities.AuthEventSignedIn {
		t.Fatalf("unexpected events %v", got)
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 listeners, got %d", b.Len())
	}
}

func TestBackend_SignUp(t *testing.T) {
	t.Run("forces attendant role", func(t *testing.T) {
		b, repo, _ := newTestBackend(t)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u entities.User, hash string) (entities.User, error) {
				if u.Role != entities.RoleAttendant || u.Email != "ana@oficina.com" {
					t.Fatalf("unexpected user %+v", u)
				}
				if bcrypt.CompareHashAndPassword([]byte(hash), []byte("segredo123")) != nil {
					t.Fatalf("password not hashed with bcrypt")
				}
				return u, nil
			})

		u, err := b.SignUp(context.Background(), interfaces.NewUser{Email: " Ana@Oficina.com ", Name: "Ana", Password: "segredo123", Role: entities.RoleAdmin})
		if err != nil || u.ID == "" {
			t.Fatalf("unexpected result %+v %v", u, err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		b, repo, _ := newTestBackend(t)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.User{}, interfaces.ErrDuplicate)

		_, err := b.SignUp(context.Background(), interfaces.NewUser{Email: "ana@oficina.com", Name: "Ana", Password: "segredo123"})
		if !errors.Is(err, interfaces.ErrAlreadyRegistered) {
			t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		b, _, _ := newTestBackend(t)
		if _, err := b.SignUp(context.Background(), interfaces.NewUser{Email: "ana@oficina.com"}); !errors.Is(err, ErrInvalidAccount) {
			t.Fatalf("expected ErrInvalidAccount, got %v", err)
		}
	})
}

func TestBackend_SignInAndSession(t *testing.T) {
	user := entities.User{ID: "u-1", Email: "ana@oficina.com", Name: "Ana", Role: entities.RoleManager}

	t.Run("unknown email", func(t *testing.T) {
		b, repo, _ := newTestBackend(t)
		repo.EXPECT().GetCredentialsByEmail(gomock.Any(), "x@y.z").Return(entities.User{}, "", nil)
		if _, err := b.SignIn(context.Background(), "x@y.z", "pw"); !errors.Is(err, interfaces.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		b, repo, _ := newTestBackend(t)
		repo.EXPECT().GetCredentialsByEmail(gomock.Any(), "ana@oficina.com").Return(user, mustHash(t, "certa123"), nil)
		if _, err := b.SignIn(context.Background(), "ana@oficina.com", "errada123"); !errors.Is(err, interfaces.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("signs in, resolves and signs out", func(t *testing.T) {
		b, repo, events := newTestBackend(t)
		b.now = time.Now

		var stored entities.AuthSessionRecord
		repo.EXPECT().GetCredentialsByEmail(gomock.Any(), "ana@oficina.com").Return(user, mustHash(t, "certa123"), nil)
		repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rec entities.AuthSessionRecord) error {
			stored = rec
			return nil
		})

		sess, err := b.SignIn(context.Background(), "Ana@Oficina.com", "certa123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess.ID != stored.ID || stored.UserID != "u-1" || !sess.ExpiresAt.Equal(stored.ExpiresAt) {
			t.Fatalf("session %+v does not match record %+v", sess, stored)
		}
		if len(*events) != 1 || (*events)[0].Type != entities.AuthEventSignedIn || (*events)[0].SessionID != sess.ID {
			t.Fatalf("unexpected events %+v", *events)
		}

		repo.EXPECT().GetSessionRecord(gomock.Any(), sess.ID).Return(stored, nil)
		repo.EXPECT().GetUserByID(gomock.Any(), "u-1").Return(user, nil)
		got, err := b.GetSession(context.Background(), sess.AccessToken)
		if err != nil || got.User.Role != entities.RoleManager || got.ID != sess.ID {
			t.Fatalf("unexpected session %+v %v", got, err)
		}

		repo.EXPECT().RevokeSession(gomock.Any(), sess.ID, gomock.Any()).Return(nil)
		if err := b.SignOut(context.Background(), sess.AccessToken); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if last := (*events)[len(*events)-1]; last.Type != entities.AuthEventSignedOut || last.SessionID != sess.ID || last.Session != nil {
			t.Fatalf("unexpected sign out event %+v", last)
		}
	})

	t.Run("revoked session is not found", func(t *testing.T) {
		b, repo, _ := newTestBackend(t)
		b.now = time.Now
		tok, exp, _ := b.tokens.Issue("u-1", "s-1", "", time.Now())
		revoked := time.Now()
		repo.EXPECT().GetSessionRecord(gomock.Any(), "s-1").Return(entities.AuthSessionRecord{ID: "s-1", UserID: "u-1", ExpiresAt: exp, RevokedAt: &revoked}, nil)

		if _, err := b.GetSession(context.Background(), tok); !errors.Is(err, interfaces.ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		b, _, _ := newTestBackend(t)
		if _, err := b.GetSession(context.Background(), "not-a-jwt"); !errors.Is(err, interfaces.ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
		if err := b.SignOut(context.Background(), "not-a-jwt"); !errors.Is(err, interfaces.ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestBackend_PasswordReset(t *testing.T) {
	t.Run("stores only the token hash", func(t *testing.T) {
		b, repo, _ := newTestBackend(t)
		var storedHash string
		repo.EXPECT().GetCredentialsByEmail(gomock.Any(), "ana@oficina.com").Return(entities.User{ID: "u-1"}, "h", nil)
		repo.EXPECT().CreatePasswordReset(gomock.Any(), gomock.Any(), "u-1", fixedNow.Add(time.Hour)).
			DoAndReturn(func(_ context.Context, hash, _ string, _ time.Time) error {
				storedHash = hash
				return nil
			})

		raw, err := b.RequestPasswordReset(context.Background(), "ana@oficina.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if raw == storedHash || hashResetToken(raw) != storedHash {
			t.Fatalf("expected sha256 of the raw token to be stored")
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		b, repo, _ := newTestBackend(t)
		repo.EXPECT().GetCredentialsByEmail(gomock.Any(), "x@y.z").Return(entities.User{}, "", nil)
		if _, err := b.RequestPasswordReset(context.Background(), "x@y.z"); !errors.Is(err, interfaces.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		b, repo, _ := newTestBackend(t)
		repo.EXPECT().ConsumePasswordReset(gomock.Any(), hashResetToken("tok"), fixedNow).Return("", nil)
		if err := b.ResetPassword(context.Background(), "tok", "nova12345"); !errors.Is(err, interfaces.ErrInvalidResetToken) {
			t.Fatalf("expected ErrInvalidResetToken, got %v", err)
		}
	})

	t.Run("resets and revokes sessions", func(t *testing.T) {
		b, repo, events := newTestBackend(t)
		gomock.InOrder(
			repo.EXPECT().ConsumePasswordReset(gomock.Any(), hashResetToken("tok"), fixedNow).Return("u-1", nil),
			repo.EXPECT().UpdatePasswordHash(gomock.Any(), "u-1", gomock.Any()).Return(nil),
			repo.EXPECT().RevokeUserSessions(gomock.Any(), "u-1", fixedNow).Return(nil),
		)
		if err := b.ResetPassword(context.Background(), "tok", "nova12345"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(*events) != 2 || (*events)[0].Type != entities.AuthEventPasswordSet || (*events)[1].Session.User.ID != "u-1" {
			t.Fatalf("unexpected events %+v", *events)
		}
	})
}

func TestBackend_Admin(t *testing.T) {
	t.Run("get missing user", func(t *testing.T) {
		b, repo, _ := newTestBackend(t)
		repo.EXPECT().GetUserByID(gomock.Any(), "u-9").Return(entities.User{}, nil)
		if _, err := b.AdminGetUser(context.Background(), "u-9"); !errors.Is(err, interfaces.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("update notifies the user's sessions", func(t *testing.T) {
		b, repo, events := newTestBackend(t)
		repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.User) (entities.User, error) {
			if !u.UpdatedAt.Equal(fixedNow) {
				t.Fatalf("expected UpdatedAt to be stamped, got %v", u.UpdatedAt)
			}
			return u, nil
		})
		if _, err := b.AdminUpdateUser(context.Background(), entities.User{ID: "u-1", Name: "Ana", Role: entities.RoleMechanic}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(*events) != 1 || (*events)[0].Type != entities.AuthEventUserUpdated || (*events)[0].Session.User.Role != entities.RoleMechanic {
			t.Fatalf("unexpected events %+v", *events)
		}
	})

	t.Run("delete revokes first", func(t *testing.T) {
		b, repo, _ := newTestBackend(t)
		gomock.InOrder(
			repo.EXPECT().RevokeUserSessions(gomock.Any(), "u-1", fixedNow).Return(nil),
			repo.EXPECT().DeleteUser(gomock.Any(), "u-1").Return(nil),
		)
		if err := b.AdminDeleteUser(context.Background(), "u-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
