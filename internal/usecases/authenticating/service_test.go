package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/subscription-reports-api/infrastructure/repository/mocks"
	"github.com/vfg2006/subscription-reports-api/internal/config"
	"github.com/vfg2006/subscription-reports-api/internal/domain"
	"github.com/vfg2006/subscription-reports-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "Senha@123"

func newTestService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{SecretKey: "segredo-de-teste", Auth: config.Auth{TokenTTL: time.Hour}}
	return NewService(repo, cfg), repo
}

func hashedUser(t *testing.T, active bool, role int) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           7,
		Name:         "Ana",
		Lastname:     "Souza",
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Active:       active,
		RoleID:       role,
	}
}

func authCode(t *testing.T, err error) string {
	t.Helper()
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	return authErr.Code
}

func TestService_LoginUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(repo *mocks.MockUserRepository)
		wantCode string
		wantErr  error
	}{
		{
			name:     "dados obrigatórios ausentes",
			email:    "",
			password: testPassword,
			setup:    func(repo *mocks.MockUserRepository) {},
			wantCode: apiErrors.ErrMissingRequiredData,
			wantErr:  ErrMissingRequiredData,
		},
		{
			name:     "usuário inexistente",
			email:    "nao@existe.com",
			password: testPassword,
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "nao@existe.com").Return(nil, nil)
			},
			wantCode: apiErrors.ErrUserNotFound,
			wantErr:  ErrUserNotFound,
		},
		{
			name:     "usuário desativado",
			email:    "ana@example.com",
			password: testPassword,
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "ana@example.com").Return(hashedUser(t, false, domain.RoleAnalyst), nil)
			},
			wantCode: apiErrors.ErrUserDisabled,
			wantErr:  ErrUserDisabled,
		},
		{
			name:     "senha incorreta",
			email:    "ana@example.com",
			password: "outra",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "ana@example.com").Return(hashedUser(t, true, domain.RoleAnalyst), nil)
			},
			wantCode: apiErrors.ErrInvalidCredentials,
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "erro no banco",
			email:    "ana@example.com",
			password: testPassword,
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "ana@example.com").Return(nil, errors.New("conn refused"))
			},
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)
			tt.setup(repo)

			token, err := service.LoginUser(ctx, tt.email, tt.password)

			require.Error(t, err)
			assert.Empty(t, token)
			assert.Equal(t, tt.wantCode, authCode(t, err))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestService_LoginUser_TokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService(t)

	repo.EXPECT().GetUserByEmail(ctx, "ana@example.com").Return(hashedUser(t, true, domain.RoleAnalyst), nil)

	token, err := service.LoginUser(ctx, "  Ana@Example.com ", testPassword)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, domain.RoleAnalyst, claims.UserRoleID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestService_ValidateToken(t *testing.T) {
	service, _ := newTestService(t)

	t.Run("token expirado", func(t *testing.T) {
		service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		defer func() { service.now = time.Now }()

		token, err := service.generateJWT(hashedUser(t, true, domain.RoleAdmin))
		require.NoError(t, err)
		service.now = time.Now

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.Equal(t, apiErrors.ErrExpiredToken, authCode(t, err))
	})

	t.Run("assinatura com outra chave", func(t *testing.T) {
		claims := domain.Claims{UserID: 1, RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("outra-chave"))
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Equal(t, apiErrors.ErrInvalidToken, authCode(t, err))
	})

	t.Run("texto que não é jwt", func(t *testing.T) {
		_, err := service.ValidateToken("abc.def")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("perfil padrão é leitor e email normalizado", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().GetUserByEmail(ctx, "joao@example.com").Return(nil, nil)
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
			assert.Equal(t, domain.RoleViewer, u.RoleID)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(testPassword)))
			u.ID = 10
			return u, nil
		})

		user, err := service.CreateUser(ctx, &domain.User{Name: "João", Lastname: "Lima", Email: " JOAO@example.com", PasswordHash: testPassword})

		require.NoError(t, err)
		assert.Equal(t, 10, user.ID)
		assert.Equal(t, "joao@example.com", user.Email)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("email já cadastrado", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetUserByEmail(ctx, "ana@example.com").Return(hashedUser(t, true, domain.RoleAdmin), nil)

		_, err := service.CreateUser(ctx, &domain.User{Name: "Ana", Lastname: "S", Email: "ana@example.com", PasswordHash: testPassword})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("senha fraca", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateUser(ctx, &domain.User{Name: "Ana", Lastname: "S", Email: "ana@example.com", PasswordHash: "fraca"})

		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("perfil inexistente", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateUser(ctx, &domain.User{Name: "Ana", Lastname: "S", Email: "ana@example.com", PasswordHash: testPassword, RoleID: 9})

		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestService_GetUserProfile(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService(t)

	repo.EXPECT().GetUserByID(ctx, 7).Return(hashedUser(t, true, domain.RoleAdmin), nil)
	repo.EXPECT().GetUserByID(ctx, 8).Return(nil, nil)

	user, err := service.GetUserProfile(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)

	_, err = service.GetUserProfile(ctx, 8)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"senha forte", "Abcdef1!", true},
		{"curta", "Ab1!", false},
		{"sem maiúscula", "abcdef1!", false},
		{"sem minúscula", "ABCDEF1!", false},
		{"sem número", "Abcdefg!", false},
		{"sem especial", "Abcdefg1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
