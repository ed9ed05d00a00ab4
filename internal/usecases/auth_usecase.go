package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"

	"agro-chain.backend/internal/config"
	"agro-chain.backend/internal/domain/entities"
	domainerrors "agro-chain.backend/internal/domain/errors"
	"agro-chain.backend/internal/domain/repositories"
	"agro-chain.backend/internal/infrastructure/wallet"
	"agro-chain.backend/pkg/crypto"
	"agro-chain.backend/pkg/jwt"
	"agro-chain.backend/pkg/redis"
	"agro-chain.backend/pkg/utils"
)

// WalletResolver resolves the wallet identity attached to a new account
type WalletResolver interface {
	Resolve(address, networkID string) (wallet.Account, error)
}

// SessionCreator stores an encrypted server-side session
type SessionCreator interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
}

// AuthUsecase handles signup and login
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	wallets    WalletResolver
	jwtService *jwt.JWTService
	sessions   SessionCreator
	balances   config.BalanceConfig
}

// NewAuthUsecase creates a new auth usecase. sessions may be nil when the
// deployment runs without Redis; login then returns bare tokens.
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	wallets WalletResolver,
	jwtService *jwt.JWTService,
	sessions SessionCreator,
	balances config.BalanceConfig,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		wallets:    wallets,
		jwtService: jwtService,
		sessions:   sessions,
		balances:   balances,
	}
}

// Signup creates a marketplace account. The role decides the starting
// balance and which contact fields are kept. A wallet extension address may
// be supplied; absence degrades to a locally generated one.
func (u *AuthUsecase) Signup(ctx context.Context, input *entities.SignupInput) (*entities.AuthResponse, error) {
	role := entities.UserRole(input.Role)
	if !role.Valid() {
		return nil, domainerrors.BadRequest("unknown role")
	}
	if role == entities.UserRoleWarehouseManager {
		if input.CompanyName == "" {
			return nil, domainerrors.BadRequest("company name is required")
		}
	} else if input.Name == "" {
		return nil, domainerrors.BadRequest("name is required")
	}

	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.NewError("email already registered", domainerrors.ErrAlreadyExists)
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	acct, err := u.wallets.Resolve(input.WalletAddress, input.WalletNetworkID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entities.User{
		ID:              utils.GenerateUUIDv7(),
		Role:            role,
		Name:            input.Name,
		CompanyName:     null.NewString(input.CompanyName, input.CompanyName != ""),
		Email:           input.Email,
		PasswordHash:    passwordHash,
		Mobile:          null.NewString(input.Mobile, input.Mobile != ""),
		FarmAddress:     null.NewString(input.FarmAddress, input.FarmAddress != ""),
		Address:         null.NewString(input.Address, input.Address != ""),
		VehicleType:     null.NewString(input.VehicleType, input.VehicleType != ""),
		WalletAddress:   acct.Address,
		WalletNetworkID: acct.NetworkID,
		Balance:         u.startingBalance(role),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, nil
}

// Login authenticates by email and password. With UseSession set and a
// session store configured, the token pair is kept server-side and only an
// opaque session id is returned.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	if input.UseSession && u.sessions != nil {
		sessionID, err := crypto.GenerateRandomToken(SessionIDLength)
		if err != nil {
			return nil, err
		}
		data := &redis.SessionData{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
		}
		if err := u.sessions.CreateSession(ctx, SessionKeyPrefix+sessionID, data, SessionExpiry); err != nil {
			return nil, err
		}
		return &entities.AuthResponse{SessionID: sessionID, User: user}, nil
	}

	return &entities.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, nil
}

func (u *AuthUsecase) startingBalance(role entities.UserRole) float64 {
	switch role {
	case entities.UserRoleWarehouseManager:
		return u.balances.WarehouseManager
	case entities.UserRoleCustomer:
		return u.balances.Customer
	case entities.UserRoleTransporter:
		return u.balances.Transporter
	default:
		return u.balances.Farmer
	}
}
