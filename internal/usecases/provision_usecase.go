package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"whalebyte.core/internal/domain/entities"
	domainerrors "whalebyte.core/internal/domain/errors"
	"whalebyte.core/internal/domain/repositories"
	"whalebyte.core/pkg/crypto"
	"whalebyte.core/pkg/jwt"
)

// ProvisionUsecase creates the User + Wallet pair at onboarding commit. The
// seed material proves passphrase acknowledgment; it is consumed once to
// derive the wallet address and never stored.
type ProvisionUsecase struct {
	userRepo   repositories.UserRepository
	walletRepo repositories.WalletRepository
	uow        repositories.UnitOfWork
	jwtService *jwt.JWTService
}

// NewProvisionUsecase creates a new provisioning usecase
func NewProvisionUsecase(
	userRepo repositories.UserRepository,
	walletRepo repositories.WalletRepository,
	uow repositories.UnitOfWork,
	jwtService *jwt.JWTService,
) *ProvisionUsecase {
	return &ProvisionUsecase{
		userRepo:   userRepo,
		walletRepo: walletRepo,
		uow:        uow,
		jwtService: jwtService,
	}
}

// CreateAccount validates the signup data, derives a wallet address from the
// seed material and persists the User + Wallet pair atomically. A user is
// never created without its wallet.
func (u *ProvisionUsecase) CreateAccount(ctx context.Context, signup *entities.SignupData, walletSeedMaterial []byte) (*entities.AuthResult, error) {
	if signup.Username == "" {
		return nil, domainerrors.NewError("username is required", domainerrors.ErrInvalidInput)
	}
	if len(signup.Password) < crypto.MinPasswordLength {
		return nil, domainerrors.ErrWeakPassword
	}
	if len(walletSeedMaterial) == 0 {
		return nil, domainerrors.NewError("wallet seed material is required", domainerrors.ErrInvalidInput)
	}

	_, err := u.userRepo.GetByUsername(ctx, signup.Username)
	if err == nil {
		return nil, domainerrors.ErrUsernameTaken
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.NewError("account lookup failed", domainerrors.ErrNetworkUnavailable)
	}

	passwordHash, err := crypto.HashPassword(signup.Password)
	if err != nil {
		return nil, err
	}

	address, err := crypto.DeriveWalletAddress(walletSeedMaterial)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entities.User{
		ID:                      uuid.New(),
		Username:                signup.Username,
		Email:                   signup.Email,
		PasswordHash:            passwordHash,
		WalletAddress:           address,
		Role:                    entities.UserRoleMember,
		NotificationPreferences: entities.DefaultNotificationPreferences(),
		IsActive:                true,
		CreatedAt:               now,
	}
	wallet := &entities.Wallet{
		Address:   address,
		UserID:    user.ID,
		Balance:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		return u.walletRepo.Create(txCtx, wallet)
	})
	if err != nil {
		return nil, domainerrors.NewError("account provisioning failed", domainerrors.ErrNetworkUnavailable)
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResult{
		User:         user,
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	}, nil
}
