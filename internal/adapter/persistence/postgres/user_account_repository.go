package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, name, role, avatar_url, created_at, updated_at`

// UserAccountRepo backs the local auth backend (users, auth_sessions, password_resets).
type UserAccountRepo struct {
	q Querier
}

var _ interfaces.IUserAccountRepository = (*UserAccountRepo)(nil)

func NewUserAccountRepository(q Querier) *UserAccountRepo {
	return &UserAccountRepo{q: q}
}

func scanUser(row pgx.Row, extra ...any) (entities.User, error) {
	var u entities.User
	var avatar *string
	dest := append([]any{&u.ID, &u.Email, &u.Name, &u.Role, &avatar, &u.CreatedAt, &u.UpdatedAt}, extra...)
	err := row.Scan(dest...)
	u.AvatarURL = derefString(avatar)
	return u, err
}

func (r *UserAccountRepo) CreateUser(ctx context.Context, u entities.User, passwordHash string) (entities.User, error) {
	_, err := r.q.Exec(ctx, `
		INSERT INTO users (id, email, name, role, avatar_url, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.Email, u.Name, u.Role, nullString(u.AvatarURL), passwordHash, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entities.User{}, interfaces.ErrDuplicate
		}
		return entities.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *UserAccountRepo) GetUserByID(ctx context.Context, id string) (entities.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.User{}, nil
		}
		return entities.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *UserAccountRepo) GetCredentialsByEmail(ctx context.Context, email string) (entities.User, string, error) {
	var hash string
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+`, password_hash FROM users WHERE lower(email) = lower($1)`, email), &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.User{}, "", nil
		}
		return entities.User{}, "", fmt.Errorf("get credentials: %w", err)
	}
	return u, hash, nil
}

func (r *UserAccountRepo) ListUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []entities.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *UserAccountRepo) UpdateUser(ctx context.Context, u entities.User) (entities.User, error) {
	updated, err := scanUser(r.q.QueryRow(ctx, `
		UPDATE users SET name = $2, role = $3, avatar_url = $4, updated_at = $5
		WHERE id = $1
		RETURNING `+userColumns,
		u.ID, u.Name, u.Role, nullString(u.AvatarURL), u.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.User{}, nil
		}
		return entities.User{}, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

func (r *UserAccountRepo) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error {
	tag, err := r.q.Exec(ctx, `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`, userID, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrUserNotFound
	}
	return nil
}

func (r *UserAccountRepo) DeleteUser(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrUserNotFound
	}
	return nil
}

func (r *UserAccountRepo) CreateSession(ctx context.Context, s entities.AuthSessionRecord) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO auth_sessions (id, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)`,
		s.ID, s.UserID, s.CreatedAt, s.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *UserAccountRepo) GetSessionRecord(ctx context.Context, id string) (entities.AuthSessionRecord, error) {
	var s entities.AuthSessionRecord
	err := r.q.QueryRow(ctx, `
		SELECT id, user_id, created_at, expires_at, revoked_at FROM auth_sessions WHERE id = $1`, id,
	).Scan(&s.ID, &s.UserID, &s.CreatedAt, &s.ExpiresAt, &s.RevokedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.AuthSessionRecord{}, nil
		}
		return entities.AuthSessionRecord{}, fmt.Errorf("get session: %w", err)
	}
	return s, nil
}

func (r *UserAccountRepo) RevokeSession(ctx context.Context, id string, at time.Time) error {
	if _, err := r.q.Exec(ctx, `UPDATE auth_sessions SET revoked_at = $2 WHERE id = $1 AND revoked_at IS NULL`, id, at); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (r *UserAccountRepo) RevokeUserSessions(ctx context.Context, userID string, at time.Time) error {
	if _, err := r.q.Exec(ctx, `UPDATE auth_sessions SET revoked_at = $2 WHERE user_id = $1 AND revoked_at IS NULL`, userID, at); err != nil {
		return fmt.Errorf("revoke user sessions: %w", err)
	}
	return nil
}

func (r *UserAccountRepo) CreatePasswordReset(ctx context.Context, tokenHash string, userID string, expiresAt time.Time) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO password_resets (token_hash, user_id, expires_at)
		VALUES ($1, $2, $3)`,
		tokenHash, userID, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert password reset: %w", err)
	}
	return nil
}

// ConsumePasswordReset marks the token used and returns its user id, or ""
// when the token is unknown, expired or already used.
func (r *UserAccountRepo) ConsumePasswordReset(ctx context.Context, tokenHash string, now time.Time) (string, error) {
	var userID string
	err := r.q.QueryRow(ctx, `
		UPDATE password_resets SET used_at = $2
		WHERE token_hash = $1 AND used_at IS NULL AND expires_at > $2
		RETURNING user_id`, tokenHash, now,
	).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("consume password reset: %w", err)
	}
	return userID, nil
}
