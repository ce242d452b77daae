package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studyhub/internal/auth"
	apperrors "studyhub/internal/errors"
	"studyhub/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uuid.UUID, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uuid.UUID, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uuid.UUID), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func newAuthService(repo *MockUserRepository, store *MockTokenStore) (AuthService, *auth.JWTService) {
	jwtService := auth.NewJWTService("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(repo, NewUserService(repo, nil), jwtService, store), jwtService
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		userName  string
		email     string
		password  string
		setupMock func(*MockUserRepository, *MockTokenStore)
		wantErr   error
		wantValid bool
	}{
		{
			name:     "successful registration",
			userName: "Test User",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(repo *MockUserRepository, store *MockTokenStore) {
				repo.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
				store.On("StoreRefreshToken", mock.Anything, mock.Anything, mock.Anything, "test@example.com", 24*time.Hour).Return(nil)
			},
		},
		{
			name:     "email already in use",
			userName: "Test User",
			email:    "existing@example.com",
			password: "password123",
			setupMock: func(repo *MockUserRepository, store *MockTokenStore) {
				repo.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{ID: uuid.New(), Email: "existing@example.com"}, nil)
			},
			wantErr: apperrors.ErrEmailInUse,
		},
		{
			name:      "short password",
			userName:  "Test User",
			email:     "short@example.com",
			password:  "12345",
			setupMock: func(*MockUserRepository, *MockTokenStore) {},
			wantValid: true,
		},
		{
			name:      "missing name",
			userName:  "  ",
			email:     "noname@example.com",
			password:  "password123",
			setupMock: func(*MockUserRepository, *MockTokenStore) {},
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			store := new(MockTokenStore)
			tt.setupMock(repo, store)
			svc, jwtService := newAuthService(repo, store)

			session, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, session)
			case tt.wantValid:
				var invalid *apperrors.ValidationError
				assert.ErrorAs(t, err, &invalid)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.email, session.User.Email)
				assert.NotEqual(t, "password123", session.User.PasswordHash)
				claims, err := jwtService.ValidateToken(session.AccessToken)
				require.NoError(t, err)
				assert.Equal(t, session.User.ID, claims.UserID)
				assert.NotEmpty(t, session.RefreshToken)
			}
			repo.AssertExpectations(t)
			store.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	user := &model.User{ID: uuid.New(), Name: "Test", Email: "test@example.com", PasswordHash: hashed(t, "password123")}

	tests := []struct {
		name      string
		email     string
		password  string
		setupMock func(*MockUserRepository, *MockTokenStore)
		wantErr   error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(repo *MockUserRepository, store *MockTokenStore) {
				repo.On("FindByEmail", mock.Anything, "test@example.com").Return(user, nil)
				store.On("StoreRefreshToken", mock.Anything, mock.Anything, user.ID, user.Email, 24*time.Hour).Return(nil)
			},
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "wrong",
			setupMock: func(repo *MockUserRepository, store *MockTokenStore) {
				repo.On("FindByEmail", mock.Anything, "test@example.com").Return(user, nil)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "password123",
			setupMock: func(repo *MockUserRepository, store *MockTokenStore) {
				repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			store := new(MockTokenStore)
			tt.setupMock(repo, store)
			svc, _ := newAuthService(repo, store)

			session, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, session)
			} else {
				require.NoError(t, err)
				assert.Equal(t, user.ID, session.User.ID)
				assert.NotEmpty(t, session.AccessToken)
			}
			repo.AssertExpectations(t)
			store.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	repo := new(MockUserRepository)
	store := new(MockTokenStore)
	svc, jwtService := newAuthService(repo, store)

	userID := uuid.New()
	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(userID, "test@example.com")
	require.NoError(t, err)

	t.Run("stored token", func(t *testing.T) {
		store.On("GetRefreshToken", mock.Anything, tokenID).Return(userID, "test@example.com", nil).Once()

		accessToken, err := svc.RefreshToken(context.Background(), refreshToken)
		require.NoError(t, err)
		claims, err := jwtService.ValidateToken(accessToken)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
	})

	t.Run("revoked token", func(t *testing.T) {
		store.On("GetRefreshToken", mock.Anything, tokenID).Return(uuid.Nil, "", assert.AnError).Once()

		_, err := svc.RefreshToken(context.Background(), refreshToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.RefreshToken(context.Background(), "not-a-jwt")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("access token cannot refresh", func(t *testing.T) {
		accessToken, err := jwtService.GenerateAccessToken(userID, "test@example.com")
		require.NoError(t, err)

		_, err = svc.RefreshToken(context.Background(), accessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	repo := new(MockUserRepository)
	store := new(MockTokenStore)
	svc, jwtService := newAuthService(repo, store)

	userID := uuid.New()
	refreshID, refreshToken, err := jwtService.GenerateRefreshToken(userID, "test@example.com")
	require.NoError(t, err)
	accessToken, err := jwtService.GenerateAccessToken(userID, "test@example.com")
	require.NoError(t, err)
	claims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)

	store.On("DeleteRefreshToken", mock.Anything, refreshID).Return(nil)
	store.On("BlacklistAccessToken", mock.Anything, claims.ID, mock.AnythingOfType("time.Duration")).Return(nil)
	store.On("IsAccessTokenBlacklisted", mock.Anything, claims.ID).Return(true, nil)

	require.NoError(t, svc.Logout(context.Background(), claims, refreshToken))
	assert.True(t, svc.IsRevoked(context.Background(), claims))
	store.AssertExpectations(t)
}

func TestAuthService_Verify(t *testing.T) {
	repo := new(MockUserRepository)
	store := new(MockTokenStore)
	svc, _ := newAuthService(repo, store)

	known := &model.User{ID: uuid.New(), Email: "test@example.com"}
	repo.On("FindByID", mock.Anything, known.ID).Return(known, nil)
	missing := uuid.New()
	repo.On("FindByID", mock.Anything, missing).Return(nil, gorm.ErrRecordNotFound)

	user, err := svc.Verify(context.Background(), &auth.Claims{UserID: known.ID})
	require.NoError(t, err)
	assert.Equal(t, known.Email, user.Email)

	_, err = svc.Verify(context.Background(), &auth.Claims{UserID: missing})
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
