package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"mecanica_gestao/internal/adapter/http/handlers/mocks"
	"mecanica_gestao/internal/domain/entities"
	"mecanica_gestao/internal/usecase"
	"mecanica_gestao/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func avatarRequest(t *testing.T, contentType string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="avatar"; filename="me.png"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	_, _ = part.Write(content)
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/users/u-1/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUserHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIUserUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)
		r := gin.New()
		r.GET("/v1/users", h.ListUsers)
		r.POST("/v1/users", h.CreateUser)
		r.PUT("/v1/users/:id", h.UpdateUser)
		r.POST("/v1/users/:id/avatar", h.UploadAvatar)
		r.GET("/v1/users/:id/audit", h.AuditTrail)
		return r, uc
	}

	t.Run("list empty renders an array", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/users", nil))
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("create with unknown role", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.User{}, usecase.ErrInvalidRole)

		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString(`{"name":"Rui","email":"rui@oficina.com","password":"secreta123","role":"dono"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create existing email", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.User{}, interfaces.ErrAlreadyRegistered)

		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString(`{"name":"Rui","email":"rui@oficina.com","password":"secreta123","role":"mecanico"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("update takes the id from the path", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Update(gomock.Any(), gomock.Any(), entities.User{ID: "u-1", Name: "Rui", Role: entities.RoleManager}).
			Return(entities.User{ID: "u-1", Name: "Rui", Role: entities.RoleManager}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/users/u-1", bytes.NewBufferString(`{"name":"Rui","role":"gerente"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("avatar upload", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().UploadAvatar(gomock.Any(), gomock.Any(), "u-1", "image/png", gomock.Any()).
			DoAndReturn(func(_ any, _ string, _ string, _ string, body io.Reader) (entities.User, error) {
				b, _ := io.ReadAll(body)
				if string(b) != "png-bytes" {
					t.Fatalf("unexpected avatar content %q", b)
				}
				return entities.User{ID: "u-1", AvatarURL: "https://storage.googleapis.com/b/avatars/u-1/x.png"}, nil
			})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, avatarRequest(t, "image/png", []byte("png-bytes")))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("avatar missing file", func(t *testing.T) {
		r, _ := setup(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/users/u-1/avatar", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("audit trail limit", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().AuditTrail(gomock.Any(), "u-1", 20).Return(nil, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/users/u-1/audit?limit=20", nil))
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})
}
