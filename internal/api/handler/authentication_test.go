package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/subscription-reports-api/internal/domain"
	"github.com/vfg2006/subscription-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/subscription-reports-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/subscription-reports-api/pkg/apiErrors"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		setup  func(s *mocks.MockAuthenticator)
		status int
		code   string
	}{
		{
			name: "sucesso",
			body: `{"email":"ana@example.com","password":"Senha@123"}`,
			setup: func(s *mocks.MockAuthenticator) {
				s.EXPECT().LoginUser(gomock.Any(), "ana@example.com", "Senha@123").Return("jwt-token", nil)
			},
			status: http.StatusOK,
		},
		{
			name:   "json inválido",
			body:   `{"email":`,
			status: http.StatusBadRequest,
			code:   apiErrors.ErrInvalidRequest,
		},
		{
			name:   "email ausente",
			body:   `{"password":"Senha@123"}`,
			status: http.StatusBadRequest,
			code:   apiErrors.ErrMissingRequiredData,
		},
		{
			name: "senha incorreta",
			body: `{"email":"ana@example.com","password":"errada"}`,
			setup: func(s *mocks.MockAuthenticator) {
				s.EXPECT().LoginUser(gomock.Any(), "ana@example.com", "errada").Return("",
					authenticating.NewUserAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, 4, "Senha incorreta"))
			},
			status: http.StatusUnauthorized,
			code:   apiErrors.ErrInvalidCredentials,
		},
		{
			name: "usuário desativado",
			body: `{"email":"ana@example.com","password":"Senha@123"}`,
			setup: func(s *mocks.MockAuthenticator) {
				s.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).Return("",
					authenticating.NewUserAuthError(authenticating.ErrUserDisabled, apiErrors.ErrUserDisabled, 4, "Conta desativada"))
			},
			status: http.StatusForbidden,
			code:   apiErrors.ErrUserDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAuthenticator(ctrl)
			if tt.setup != nil {
				tt.setup(service)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			Login(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, decodeAPIError(t, rec).Code)
				return
			}

			var body map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, "jwt-token", body["token"])
		})
	}
}

func TestGetMe(t *testing.T) {
	t.Run("retorna o perfil sem a senha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)
		service.EXPECT().GetUserProfile(gomock.Any(), 7).Return(&domain.User{ID: 7, Name: "Ana", RoleID: domain.RoleAnalyst}, nil)

		rec := httptest.NewRecorder()
		GetMe(service).ServeHTTP(rec, withClaims(httptest.NewRequest(http.MethodGet, "/v1/me", nil), analyst))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("sem claims", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)

		rec := httptest.NewRecorder()
		GetMe(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("usuário removido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)
		service.EXPECT().GetUserProfile(gomock.Any(), 7).Return(nil,
			authenticating.NewUserAuthError(authenticating.ErrUserNotFound, apiErrors.ErrUserNotFound, 7, "Usuário não encontrado"))

		rec := httptest.NewRecorder()
		GetMe(service).ServeHTTP(rec, withClaims(httptest.NewRequest(http.MethodGet, "/v1/me", nil), analyst))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrUserNotFound, decodeAPIError(t, rec).Code)
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("cria leitor por padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)
		service.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, user *domain.User) (*domain.User, error) {
			assert.Equal(t, "Senha@123", user.PasswordHash)
			assert.Equal(t, 0, user.RoleID)
			assert.True(t, user.Active)
			return &domain.User{ID: 10, Name: user.Name, Email: user.Email, RoleID: domain.RoleViewer, Active: true}, nil
		})

		body := `{"name":"Bia","lastname":"Souza","email":"bia@example.com","password":"Senha@123"}`
		rec := httptest.NewRecorder()
		CreateUser(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/users", strings.NewReader(body)))

		require.Equal(t, http.StatusCreated, rec.Code)
		var created domain.User
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
		assert.Equal(t, 10, created.ID)
		assert.Equal(t, domain.RoleViewer, created.RoleID)
	})

	t.Run("perfil fora do intervalo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)

		body := `{"name":"Bia","lastname":"Souza","email":"bia@example.com","password":"Senha@123","role_id":9}`
		rec := httptest.NewRecorder()
		CreateUser(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/users", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "max=3", decodeAPIError(t, rec).Details.(map[string]any)["role_id"])
	})

	t.Run("email já cadastrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockAuthenticator(ctrl)
		service.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil,
			authenticating.NewAuthError(authenticating.ErrUserAlreadyExists, apiErrors.ErrInvalidRequest, "Email já cadastrado"))

		body := `{"name":"Bia","lastname":"Souza","email":"bia@example.com","password":"Senha@123"}`
		rec := httptest.NewRecorder()
		CreateUser(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/users", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeAPIError(t, rec).Message, "Email já cadastrado")
	})
}
