package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidUser        = errors.New("invalid user")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidAvatar      = errors.New("invalid avatar file")
	ErrWeakPassword       = errors.New("password must have at least 8 characters")
	ErrInvalidAuditUserID = errors.New("invalid audit user id")
)

const minPasswordLength = 8

var validRoles = map[string]bool{
	entities.RoleAdmin:     true,
	entities.RoleManager:   true,
	entities.RoleMechanic:  true,
	entities.RoleAttendant: true,
}

var avatarContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// IUserUseCase wraps the privileged admin auth surface, avatar uploads,
// password flows and the audit trail read side.
type IUserUseCase interface {
	List(ctx context.Context) ([]entities.User, error)
	Get(ctx context.Context, id string) (entities.User, error)
	Create(ctx context.Context, actorID string, input interfaces.NewUser) (entities.User, error)
	Update(ctx context.Context, actorID string, u entities.User) (entities.User, error)
	Delete(ctx context.Context, actorID string, id string) error
	UploadAvatar(ctx context.Context, actorID string, userID string, contentType string, r io.Reader) (entities.User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken string, newPassword string) error
	ChangePassword(ctx context.Context, accessToken string, newPassword string) error
	AuditTrail(ctx context.Context, userID string, limit int) ([]entities.AuditLogEntry, error)
}

type UserUseCase struct {
	auth      interfaces.IAuthBackend
	storage   interfaces.IObjectStorage
	email     interfaces.IEmailSender
	auditRepo interfaces.IAuditLogRepository
	audit     interfaces.IAuditLogger
	resetURL  string
}

var _ IUserUseCase = (*UserUseCase)(nil)

// NewUserUseCase builds the use case. resetURL is the console page that
// receives the reset token as ?token=.
func NewUserUseCase(
	auth interfaces.IAuthBackend,
	storage interfaces.IObjectStorage,
	email interfaces.IEmailSender,
	auditRepo interfaces.IAuditLogRepository,
	audit interfaces.IAuditLogger,
	resetURL string,
) *UserUseCase {
	return &UserUseCase{auth: auth, storage: storage, email: email, auditRepo: auditRepo, audit: audit, resetURL: resetURL}
}

func (u *UserUseCase) List(ctx context.Context) ([]entities.User, error) {
	return u.auth.AdminListUsers(ctx)
}

func (u *UserUseCase) Get(ctx context.Context, id string) (entities.User, error) {
	return u.auth.AdminGetUser(ctx, strings.TrimSpace(id))
}

func (u *UserUseCase) Create(ctx context.Context, actorID string, input interfaces.NewUser) (entities.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)
	if input.Email == "" || input.Name == "" {
		return entities.User{}, ErrInvalidUser
	}
	if !validRoles[input.Role] {
		return entities.User{}, ErrInvalidRole
	}
	if len(input.Password) < minPasswordLength {
		return entities.User{}, ErrWeakPassword
	}

	created, err := u.auth.AdminCreateUser(ctx, input)
	if err != nil {
		return entities.User{}, err
	}
	u.audit.Log(actorID, "create_user", map[string]any{"user_id": created.ID, "email": created.Email, "role": created.Role})
	return created, nil
}

func (u *UserUseCase) Update(ctx context.Context, actorID string, usr entities.User) (entities.User, error) {
	usr.Name = strings.TrimSpace(usr.Name)
	if usr.ID == "" || usr.Name == "" {
		return entities.User{}, ErrInvalidUser
	}
	if !validRoles[usr.Role] {
		return entities.User{}, ErrInvalidRole
	}
	updated, err := u.auth.AdminUpdateUser(ctx, usr)
	if err != nil {
		return entities.User{}, err
	}
	u.audit.Log(actorID, "update_user", map[string]any{"user_id": usr.ID, "role": usr.Role})
	return updated, nil
}

func (u *UserUseCase) Delete(ctx context.Context, actorID string, id string) error {
	if err := u.auth.AdminDeleteUser(ctx, strings.TrimSpace(id)); err != nil {
		return err
	}
	u.audit.Log(actorID, "delete_user", map[string]any{"user_id": id})
	return nil
}

// UploadAvatar stores the image at avatars/<user id>/<random name> and points
// the user's avatar URL at its public address.
func (u *UserUseCase) UploadAvatar(ctx context.Context, actorID string, userID string, contentType string, r io.Reader) (entities.User, error) {
	ext, ok := avatarContentTypes[strings.ToLower(strings.TrimSpace(contentType))]
	if !ok || r == nil {
		return entities.User{}, ErrInvalidAvatar
	}
	usr, err := u.auth.AdminGetUser(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}

	objectPath := path.Join("avatars", usr.ID, uuid.NewString()+ext)
	if err := u.storage.Upload(ctx, objectPath, contentType, r); err != nil {
		log.Error().Err(err).Str("user_id", usr.ID).Msg("[user][usecase] avatar upload failed")
		return entities.User{}, err
	}
	usr.AvatarURL = u.storage.PublicURL(objectPath)

	updated, err := u.auth.AdminUpdateUser(ctx, usr)
	if err != nil {
		return entities.User{}, err
	}
	u.audit.Log(actorID, "upload_avatar", map[string]any{"user_id": usr.ID, "path": objectPath})
	return updated, nil
}

// RequestPasswordReset never reveals whether the email exists.
func (u *UserUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrInvalidUser
	}
	token, err := u.auth.RequestPasswordReset(ctx, email)
	if errors.Is(err, interfaces.ErrUserNotFound) {
		log.Info().Msg("[auth][usecase] password reset for unknown email")
		return nil
	}
	if err != nil {
		return err
	}
	body := fmt.Sprintf("Para redefinir sua senha acesse: %s?token=%s", u.resetURL, token)
	return u.email.Send(ctx, email, "Redefinição de senha", body)
}

func (u *UserUseCase) ResetPassword(ctx context.Context, resetToken string, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrWeakPassword
	}
	return u.auth.ResetPassword(ctx, strings.TrimSpace(resetToken), newPassword)
}

func (u *UserUseCase) ChangePassword(ctx context.Context, accessToken string, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrWeakPassword
	}
	return u.auth.UpdatePassword(ctx, accessToken, newPassword)
}

func (u *UserUseCase) AuditTrail(ctx context.Context, userID string, limit int) ([]entities.AuditLogEntry, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrInvalidAuditUserID
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return u.auditRepo.ListByUser(ctx, userID, limit)
}
