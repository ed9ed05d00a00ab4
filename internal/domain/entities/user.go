package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents the marketplace roles
type UserRole string

const (
	UserRoleFarmer           UserRole = "farmer"
	UserRoleTransporter      UserRole = "transporter"
	UserRoleWarehouseManager UserRole = "warehouseManager"
	UserRoleCustomer         UserRole = "customer"
)

// Valid reports whether the role is one of the four marketplace roles.
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleFarmer, UserRoleTransporter, UserRoleWarehouseManager, UserRoleCustomer:
		return true
	}
	return false
}

// User represents a marketplace account. Contact fields are role-dependent:
// farmers carry a farm address, transporters a vehicle type, warehouse
// managers a company name and address, customers a delivery address.
// Balance is a signed amount; warehouse balances may go negative.
type User struct {
	ID              uuid.UUID   `json:"id" gorm:"type:uuid;primary_key"`
	Role            UserRole    `json:"role"`
	Name            string      `json:"name"`
	CompanyName     null.String `json:"companyName,omitempty"`
	Email           string      `json:"email"`
	PasswordHash    string      `json:"-"`
	Mobile          null.String `json:"mobile,omitempty"`
	FarmAddress     null.String `json:"farmAddress,omitempty"`
	Address         null.String `json:"address,omitempty"`
	VehicleType     null.String `json:"vehicleType,omitempty"`
	WalletAddress   string      `json:"walletAddress"`
	WalletNetworkID null.String `json:"walletNetworkId,omitempty"`
	Balance         float64     `json:"balance"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// DisplayName returns the name shown in feeds and ledgers: company name for
// warehouse accounts, personal name otherwise.
func (u *User) DisplayName() string {
	if u.Role == UserRoleWarehouseManager && u.CompanyName.Valid && u.CompanyName.String != "" {
		return u.CompanyName.String
	}
	return u.Name
}

// SignupInput represents input for creating an account
type SignupInput struct {
	Role        string `json:"role" binding:"required"`
	Name        string `json:"name"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Mobile      string `json:"mobile"`
	FarmAddress string `json:"farmAddress"`
	Address     string `json:"address"`
	VehicleType string `json:"vehicleType"`

	// Optional externally controlled wallet (browser extension). When absent
	// a local placeholder address is generated.
	WalletAddress   string `json:"walletAddress"`
	WalletNetworkID string `json:"walletNetworkId"`
}

// LoginInput represents input for login
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	SessionID    string `json:"sessionId,omitempty"`
	User         *User  `json:"user"`
}
