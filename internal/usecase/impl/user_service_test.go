package impl

import (
	"context"
	"testing"
	"time"

	"padpro/config"
	"padpro/internal/domain/entity"
	domainerrors "padpro/internal/domain/errors"
	"padpro/internal/domain/repository"
	"padpro/internal/domain/service"
	mockRepo "padpro/internal/mocks/repository"
	mockSvc "padpro/internal/mocks/service"
	"padpro/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for auth workflow tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	repoFactory  *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	authRepo     *mockRepo.MockAuthRepository
	tokenRepo    *mockRepo.MockRefreshTokenRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	tokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	svc := NewUserService(txManager, hasher, tokenService, &config.AuthConfig{MaxActiveSessions: 3}, newDiscardLogger())

	return userServiceFixtures{
		service:      svc,
		txManager:    txManager,
		repoFactory:  repoFactory,
		userRepo:     userRepo,
		authRepo:     authRepo,
		tokenRepo:    tokenRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// passThroughTx makes the mocked transaction manager invoke the callback with
// the mocked factory, mirroring the real commit path.
func (fx userServiceFixtures) passThroughTx(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
}

func TestUserService_RegisterUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:                "Jamie",
		Email:               "jamie@example.com",
		Password:            "correct horse battery",
		HomeWarehouseNumber: "1234",
	}

	fx.hasher.EXPECT().
		Hash("correct horse battery").
		Return("hashed-password", nil)

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.repoFactory.EXPECT().NewAuthRepository().Return(fx.authRepo)

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "jamie@example.com").
		Return(nil, repository.ErrAuthNotFound)

	userID := uuid.New()
	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = userID

			return nil
		})

	fx.userRepo.EXPECT().
		EnsureProfile(ctx, mock.AnythingOfType("*entity.UserProfile")).
		RunAndReturn(func(_ context.Context, profile *entity.UserProfile) error {
			assert.Equal(t, userID, profile.UserID)
			assert.Equal(t, "1234", profile.HomeWarehouseNumber)

			return nil
		})

	fx.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
		RunAndReturn(func(_ context.Context, auth *entity.Authentication) error {
			assert.Equal(t, userID, auth.UserID)
			assert.Equal(t, entity.ProviderTypeEmail, auth.Provider)
			assert.Equal(t, "jamie@example.com", auth.ProviderUserID)
			assert.Equal(t, "hashed-password", auth.PasswordHash)

			return nil
		})

	output, err := fx.service.RegisterUser(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output.User)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_RegisterUser_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().
		Hash(mock.AnythingOfType("string")).
		Return("hashed", nil)

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.repoFactory.EXPECT().NewAuthRepository().Return(fx.authRepo)

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "taken@example.com").
		Return(&entity.Authentication{}, nil)

	_, err := fx.service.RegisterUser(ctx, &usecase.RegisterUserInput{
		Email:    "taken@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	auth := &entity.Authentication{
		UserID:       userID,
		Provider:     entity.ProviderTypeEmail,
		PasswordHash: "stored-hash",
	}

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().NewAuthRepository().Return(fx.authRepo)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.repoFactory.EXPECT().NewRefreshTokenRepository().Return(fx.tokenRepo)

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "jamie@example.com").
		Return(auth, nil)

	fx.hasher.EXPECT().
		Check("correct horse battery", "stored-hash").
		Return(true)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "jamie@example.com"}, nil)

	fx.tokenRepo.EXPECT().
		CountActiveSessionsByUserID(ctx, userID).
		Return(1, nil)

	fx.tokenService.EXPECT().
		GenerateTokens(userID).
		Return("access-token", "refresh-token", nil)

	fx.tokenService.EXPECT().
		GetRefreshTokenDuration().
		Return(720 * time.Hour)

	fx.tokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		RunAndReturn(func(_ context.Context, token *entity.RefreshToken) error {
			assert.Equal(t, userID, token.UserID)
			assert.Equal(t, hashToken("refresh-token"), token.TokenHash)
			assert.True(t, token.ExpiresAt.After(time.Now()))

			return nil
		})

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "jamie@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().NewAuthRepository().Return(fx.authRepo)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.repoFactory.EXPECT().NewRefreshTokenRepository().Return(fx.tokenRepo)

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "jamie@example.com").
		Return(&entity.Authentication{PasswordHash: "stored-hash"}, nil)

	fx.hasher.EXPECT().
		Check("wrong", "stored-hash").
		Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "jamie@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_SessionLimit(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().NewAuthRepository().Return(fx.authRepo)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.repoFactory.EXPECT().NewRefreshTokenRepository().Return(fx.tokenRepo)

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "jamie@example.com").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "stored-hash"}, nil)

	fx.hasher.EXPECT().
		Check("pw", "stored-hash").
		Return(true)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	// The cap holds even after expired sessions are purged.
	fx.tokenRepo.EXPECT().
		CountActiveSessionsByUserID(ctx, userID).
		Return(3, nil).
		Times(2)

	fx.tokenRepo.EXPECT().
		DeleteExpiredRefreshTokens(ctx).
		Return(nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "jamie@example.com",
		Password: "pw",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSessionLimitExceeded)
}

func TestUserService_RefreshToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	oldHash := hashToken("old-refresh")

	fx.tokenService.EXPECT().
		ValidateToken("old-refresh").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.repoFactory.EXPECT().NewRefreshTokenRepository().Return(fx.tokenRepo)

	fx.tokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, oldHash).
		Return(&entity.RefreshToken{UserID: userID, TokenHash: oldHash, ExpiresAt: time.Now().Add(time.Hour)}, nil)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID}, nil)

	fx.tokenService.EXPECT().
		GenerateTokens(userID).
		Return("new-access", "new-refresh", nil)

	fx.tokenService.EXPECT().
		GetRefreshTokenDuration().
		Return(720 * time.Hour)

	fx.tokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	fx.tokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, oldHash).
		Return(nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh"})
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestUserService_RefreshToken_Expired(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	oldHash := hashToken("stale-refresh")

	fx.tokenService.EXPECT().
		ValidateToken("stale-refresh").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().NewUserRepository().Return(fx.userRepo)
	fx.repoFactory.EXPECT().NewRefreshTokenRepository().Return(fx.tokenRepo)

	fx.tokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, oldHash).
		Return(&entity.RefreshToken{UserID: userID, ExpiresAt: time.Now().Add(-time.Hour)}, nil)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "stale-refresh"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenExpired)
}

func TestUserService_Logout(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.Claims{UserID: uuid.New(), Type: "refresh"}, nil)

	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().NewRefreshTokenRepository().Return(fx.tokenRepo)

	fx.tokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, hashToken("refresh-token")).
		Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"})
	require.NoError(t, err)
}

func TestUserService_Logout_InvalidTokenStillDeletes(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("garbage").
		Return(nil, assert.AnError)

	// The session row is removed regardless, so a half-expired token cannot
	// linger in the database.
	fx.passThroughTx(ctx)
	fx.repoFactory.EXPECT().NewRefreshTokenRepository().Return(fx.tokenRepo)

	fx.tokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, hashToken("garbage")).
		Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "garbage"})
	require.NoError(t, err)
}
