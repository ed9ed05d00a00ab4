// Package wallet resolves the wallet address attached to a new account.
// Addresses are display identifiers only: no key is retained and no chain is
// contacted. The ledger in the database is the source of truth for balances.
package wallet

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/volatiletech/null/v8"

	domainerrors "agro-chain.backend/internal/domain/errors"
)

// Account is the resolved wallet identity stored on a user record
type Account struct {
	Address   string
	NetworkID null.String
}

// Provider resolves an account from an optional externally supplied address.
// An empty address means no external signer was offered and a local one is
// generated instead.
type Provider struct{}

// NewProvider creates a new wallet provider
func NewProvider() *Provider {
	return &Provider{}
}

// Resolve validates an externally supplied address or, when none is given,
// generates a fresh local one. The generated key is discarded immediately.
func (p *Provider) Resolve(address, networkID string) (Account, error) {
	if address != "" {
		if !common.IsHexAddress(address) {
			return Account{}, domainerrors.BadRequest("invalid wallet address")
		}
		return Account{
			Address:   common.HexToAddress(address).Hex(),
			NetworkID: null.NewString(networkID, networkID != ""),
		}, nil
	}

	key, err := crypto.GenerateKey()
	if err != nil {
		return Account{}, domainerrors.NewError("signer unavailable", domainerrors.ErrSignerUnavailable)
	}
	return Account{Address: crypto.PubkeyToAddress(key.PublicKey).Hex()}, nil
}
