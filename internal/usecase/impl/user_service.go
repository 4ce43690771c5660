package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"padpro/config"
	"padpro/internal/domain/entity"
	domainerrors "padpro/internal/domain/errors"
	"padpro/internal/domain/repository"
	"padpro/internal/domain/service"
	"padpro/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	maxActiveSessions int
	logger            *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	authCfg *config.AuthConfig,
	logger *slog.Logger,
) usecase.UserUsecase {
	maxActiveSessions := 0
	if authCfg != nil {
		maxActiveSessions = authCfg.MaxActiveSessions
	}

	return &userService{
		txManager:         txManager,
		hasher:            hasher,
		tokenService:      tokenService,
		maxActiveSessions: maxActiveSessions,
		logger:            logger,
	}
}

// RegisterUser orchestrates the complete user registration process.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting user registration", "email", input.Email)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", "error", err)

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User

	// Execute the entire creation process within a single database transaction
	// to ensure data consistency (atomicity).
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		// 1. Check if an authentication method with this email already exists.
		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if err == nil {
			// If no error, it means an auth record was found.
			return domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
		}
		// We expect a 'not found' error. If it's a different error, something went wrong.
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		// 2. Create the core User entity.
		newUser := &entity.User{
			Name:  input.Name,
			Email: input.Email,
		}
		if err := userRepo.CreateUser(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}

		// 3. Ensure the profile exists. This is an explicit step of the
		// registration workflow, not a persistence-layer side effect.
		if err := userRepo.EnsureProfile(ctx, &entity.UserProfile{
			UserID:              newUser.ID,
			HomeWarehouseNumber: input.HomeWarehouseNumber,
		}); err != nil {
			return errors.WithStack(err)
		}

		// 4. Create the Authentication entity (the email/password credential).
		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute user registration transaction", "error", err, "email", input.Email)

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}
	srv.logger.Debug("User registered successfully", "userID", registeredUser.ID)

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting user login", "email", input.Email)

	var loggedInUser *entity.User
	var accessToken, refreshTokenString string

	// Login involves multiple steps, so we use a transaction to ensure atomicity,
	// especially for creating the new refresh token.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.NewAuthRepository()
		userRepo := repoFactory.NewUserRepository()
		tokenRepo := repoFactory.NewRefreshTokenRepository()

		// 1. Find the authentication method.
		authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if err != nil {
			// This includes ErrAuthNotFound, which we can treat as an invalid credential case.
			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		// 2. Check the password.
		if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
			return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		// 3. Fetch the full user record.
		user, err := userRepo.FindUserByID(ctx, authRecord.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user by id")
		}

		// 4. Enforce the concurrent session cap.
		if err := srv.enforceSessionLimit(ctx, tokenRepo, user); err != nil {
			return err
		}

		// 5. Generate new tokens.
		accessToken, refreshTokenString, err = srv.tokenService.GenerateTokens(user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		// 6. Securely store the new refresh token.
		if err := srv.storeRefreshToken(ctx, tokenRepo, user, refreshTokenString); err != nil {
			return err
		}
		loggedInUser = user

		return nil
	})

	if err != nil {
		srv.logger.Warn("Login failed", "email", input.Email, "error", err.Error())

		return nil, errors.Wrap(err, "failed to execute user login transaction")
	}
	srv.logger.Debug("User logged in successfully", "userID", loggedInUser.ID)

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         loggedInUser,
	}, nil
}

// RefreshToken handles the process of issuing a new token pair using a refresh token.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.logger.Info("Attempting to refresh token")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("invalid refresh token")
	}

	var newAccessToken, newRefreshTokenString string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		tokenRepo := repoFactory.NewRefreshTokenRepository()

		// 1. Verify the refresh token exists in the database.
		tokenHash := hashToken(input.RefreshToken)
		storedToken, err := tokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if err != nil {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token not found")
		}
		if time.Now().After(storedToken.ExpiresAt) {
			return domainerrors.ErrRefreshTokenExpired.WrapMessage("refresh token expired")
		}

		// 2. Fetch the user.
		user, err := userRepo.FindUserByID(ctx, claims.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		// 3. Generate new tokens.
		newAccessToken, newRefreshTokenString, err = srv.tokenService.GenerateTokens(user.ID)
		if err != nil {
			return errors.Wrap(err, "failed to generate new tokens")
		}

		// 4. Store the new refresh token.
		if err := srv.storeRefreshToken(ctx, tokenRepo, user, newRefreshTokenString); err != nil {
			return err
		}

		// 5. Delete the old refresh token.
		if err := tokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
			// Log the error but don't fail the transaction, as the user has a new valid token.
			srv.logger.Warn("Failed to delete old refresh token", "error", err)
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute refresh token transaction", "error", err)

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &usecase.RefreshTokenOutput{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshTokenString,
	}, nil
}

// Logout handles the process of invalidating a user's session by deleting their refresh token.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.logger.Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, we can proceed to delete it from the database.
		srv.logger.Warn("Logout with invalid token", "error", err)
	}

	tokenHash := hashToken(input.RefreshToken)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewRefreshTokenRepository().DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
			return errors.Wrap(err, "failed to delete refresh token")
		}

		return nil
	})

	if err != nil {
		srv.logger.Error("Failed to execute logout transaction", "error", err)

		return errors.Wrap(err, "failed to execute logout transaction")
	}
	srv.logger.Info("Successfully logged out")

	return nil
}

// enforceSessionLimit rejects a login when the user already holds the maximum
// number of live sessions. Expired tokens are purged first so stale rows never
// lock a user out.
func (srv *userService) enforceSessionLimit(ctx context.Context, tokenRepo repository.RefreshTokenRepository, user *entity.User) error {
	if srv.maxActiveSessions <= 0 {
		return nil
	}

	count, err := tokenRepo.CountActiveSessionsByUserID(ctx, user.ID)
	if err != nil {
		return errors.Wrap(err, "failed to count active sessions")
	}
	if count < srv.maxActiveSessions {
		return nil
	}

	if err := tokenRepo.DeleteExpiredRefreshTokens(ctx); err != nil {
		return errors.Wrap(err, "failed to delete expired refresh tokens")
	}

	count, err = tokenRepo.CountActiveSessionsByUserID(ctx, user.ID)
	if err != nil {
		return errors.Wrap(err, "failed to re-count active sessions")
	}
	if count >= srv.maxActiveSessions {
		return domainerrors.ErrSessionLimitExceeded.WrapMessage("login failed")
	}

	return nil
}

// storeRefreshToken hashes and persists a freshly issued refresh token.
func (srv *userService) storeRefreshToken(ctx context.Context, tokenRepo repository.RefreshTokenRepository, user *entity.User, refreshTokenString string) error {
	newRefreshToken := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := tokenRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// hashToken derives the SHA-256 hex digest used to store refresh tokens.
func hashToken(token string) string {
	hasher := sha256.New()
	hasher.Write([]byte(token))

	return hex.EncodeToString(hasher.Sum(nil))
}
