package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"whalebyte.core/internal/domain/entities"
	domainerrors "whalebyte.core/internal/domain/errors"
	"whalebyte.core/internal/domain/repositories"
	"whalebyte.core/pkg/crypto"
	"whalebyte.core/pkg/jwt"
	"whalebyte.core/pkg/metrics"
)

// AuthUsecase verifies credentials and issues tokens. It is the auth
// collaborator behind the session store; it never touches session state itself.
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login authenticates a user and returns the identity with a token pair.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (u *AuthUsecase) Login(ctx context.Context, creds *entities.LoginCredentials) (*entities.AuthResult, error) {
	user, err := u.userRepo.GetByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			metrics.LoginAttempts.WithLabelValues("invalid_credentials").Inc()
			return nil, domainerrors.ErrInvalidCredentials
		}
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		return nil, err
	}

	if !user.IsActive {
		metrics.LoginAttempts.WithLabelValues("invalid_credentials").Inc()
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !crypto.CheckPassword(creds.Password, user.PasswordHash) {
		metrics.LoginAttempts.WithLabelValues("invalid_credentials").Inc()
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Username, string(user.Role))
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		return nil, err
	}

	if err := u.userRepo.RecordLogin(ctx, user.ID); err != nil {
		return nil, err
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	return &entities.AuthResult{
		User:         user,
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	}, nil
}

// ValidateToken checks an access token and resolves its user. An expired or
// malformed token maps onto the auth error taxonomy, not the jwt package's.
func (u *AuthUsecase) ValidateToken(ctx context.Context, token string) (*entities.User, error) {
	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, domainerrors.ErrTokenExpired
		}
		return nil, domainerrors.ErrTokenInvalid
	}
	return u.userRepo.GetByID(ctx, claims.UserID)
}

// RefreshToken exchanges a refresh token for a fresh pair
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, domainerrors.ErrTokenExpired
		}
		return nil, domainerrors.ErrTokenInvalid
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Username, string(user.Role))
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
