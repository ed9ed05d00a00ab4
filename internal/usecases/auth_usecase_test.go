package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agro-chain.backend/internal/config"
	"agro-chain.backend/internal/domain/entities"
	domainerrors "agro-chain.backend/internal/domain/errors"
	"agro-chain.backend/internal/infrastructure/wallet"
	"agro-chain.backend/internal/usecases"
	pkgcrypto "agro-chain.backend/pkg/crypto"
	"agro-chain.backend/pkg/jwt"
)

var testBalances = config.BalanceConfig{
	Farmer:           0,
	Transporter:      0,
	WarehouseManager: 10000,
	Customer:         5000,
}

func newAuthFixture(sessions usecases.SessionCreator) (*usecases.AuthUsecase, *MockUserRepository, *MockWalletResolver) {
	userRepo := new(MockUserRepository)
	wallets := new(MockWalletResolver)
	jwtService := jwt.NewJWTService("test-secret", 15*time.Minute, 7*24*time.Hour)
	return usecases.NewAuthUsecase(userRepo, wallets, jwtService, sessions, testBalances), userRepo, wallets
}

func TestAuth_Signup(t *testing.T) {
	usecase, userRepo, wallets := newAuthFixture(nil)

	userRepo.On("GetByEmail", mock.Anything, "ravi@example.com").Return(nil, domainerrors.ErrNotFound)
	wallets.On("Resolve", "", "").Return(wallet.Account{Address: "0x00000000000000000000000000000000000000aa"}, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp, err := usecase.Signup(context.Background(), &entities.SignupInput{
		Role: "farmer", Name: "Ravi", Email: "ravi@example.com", Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, entities.UserRoleFarmer, resp.User.Role)
	assert.Equal(t, 0.0, resp.User.Balance)
	assert.Equal(t, "0x00000000000000000000000000000000000000aa", resp.User.WalletAddress)
}

func TestAuth_Signup_StartingBalances(t *testing.T) {
	cases := []struct {
		role    string
		balance float64
	}{
		{"farmer", 0},
		{"transporter", 0},
		{"warehouseManager", 10000},
		{"customer", 5000},
	}
	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			usecase, userRepo, wallets := newAuthFixture(nil)
			userRepo.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNotFound)
			wallets.On("Resolve", "", "").Return(wallet.Account{Address: "0x00000000000000000000000000000000000000aa"}, nil)
			userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

			input := &entities.SignupInput{
				Role: tc.role, Name: "User", Email: tc.role + "@example.com", Password: "password123",
			}
			if tc.role == "warehouseManager" {
				input.CompanyName = "AgriStore Ltd"
			}
			resp, err := usecase.Signup(context.Background(), input)
			require.NoError(t, err)
			assert.Equal(t, tc.balance, resp.User.Balance)
		})
	}
}

func TestAuth_Signup_UnknownRole(t *testing.T) {
	usecase, userRepo, _ := newAuthFixture(nil)

	_, err := usecase.Signup(context.Background(), &entities.SignupInput{
		Role: "admin", Name: "X", Email: "x@example.com", Password: "password123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuth_Signup_WarehouseRequiresCompanyName(t *testing.T) {
	usecase, _, _ := newAuthFixture(nil)

	_, err := usecase.Signup(context.Background(), &entities.SignupInput{
		Role: "warehouseManager", Name: "X", Email: "x@example.com", Password: "password123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestAuth_Signup_DuplicateEmail(t *testing.T) {
	usecase, userRepo, _ := newAuthFixture(nil)

	userRepo.On("GetByEmail", mock.Anything, "taken@example.com").Return(testUser(entities.UserRoleFarmer, 0), nil)

	_, err := usecase.Signup(context.Background(), &entities.SignupInput{
		Role: "farmer", Name: "X", Email: "taken@example.com", Password: "password123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
}

func TestAuth_Login(t *testing.T) {
	usecase, userRepo, _ := newAuthFixture(nil)

	hash, err := pkgcrypto.HashPassword("password123")
	require.NoError(t, err)
	user := testUser(entities.UserRoleCustomer, 5000)
	user.PasswordHash = hash
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	resp, err := usecase.Login(context.Background(), &entities.LoginInput{
		Email: user.Email, Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Empty(t, resp.SessionID)
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	usecase, userRepo, _ := newAuthFixture(nil)

	hash, err := pkgcrypto.HashPassword("password123")
	require.NoError(t, err)
	user := testUser(entities.UserRoleCustomer, 5000)
	user.PasswordHash = hash
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)

	_, err = usecase.Login(context.Background(), &entities.LoginInput{
		Email: user.Email, Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuth_Login_UnknownEmail(t *testing.T) {
	usecase, userRepo, _ := newAuthFixture(nil)

	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domainerrors.ErrNotFound)

	_, err := usecase.Login(context.Background(), &entities.LoginInput{
		Email: "nobody@example.com", Password: "password123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuth_Login_WithSession(t *testing.T) {
	sessions := new(MockSessionCreator)
	usecase, userRepo, _ := newAuthFixture(sessions)

	hash, err := pkgcrypto.HashPassword("password123")
	require.NoError(t, err)
	user := testUser(entities.UserRoleFarmer, 0)
	user.PasswordHash = hash
	userRepo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
	sessions.On("CreateSession", mock.Anything, mock.Anything, mock.Anything, usecases.SessionExpiry).Return(nil)

	resp, err := usecase.Login(context.Background(), &entities.LoginInput{
		Email: user.Email, Password: "password123", UseSession: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.SessionID)
	assert.Empty(t, resp.AccessToken)
	sessions.AssertExpectations(t)
}
