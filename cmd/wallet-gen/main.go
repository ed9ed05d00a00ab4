package main

import (
	"flag"
	"fmt"
	"log"

	"agro-chain.backend/internal/infrastructure/wallet"
	"agro-chain.backend/pkg/placeholder"
)

func main() {
	count := flag.Int("count", 1, "number of identifier sets to generate")
	flag.Parse()

	if err := validateCount(*count); err != nil {
		log.Fatalf("invalid count: %v", err)
	}

	provider := wallet.NewProvider()
	for i := 0; i < *count; i++ {
		set, err := buildIdentifierSet(provider)
		if err != nil {
			log.Fatalf("failed to generate identifiers: %v", err)
		}
		fmt.Printf("WALLET_ADDRESS=%s\n", set.Address)
		fmt.Printf("QR_TAG=%s\n", set.QRTag)
		fmt.Printf("TX_REFERENCE=%s\n", set.TxReference)
	}
}

type identifierSet struct {
	Address     string
	QRTag       string
	TxReference string
}

func validateCount(n int) error {
	if n <= 0 || n > 1000 {
		return fmt.Errorf("%d (must be between 1 and 1000)", n)
	}
	return nil
}

func buildIdentifierSet(provider *wallet.Provider) (identifierSet, error) {
	acct, err := provider.Resolve("", "")
	if err != nil {
		return identifierSet{}, err
	}
	tag, err := placeholder.QRTag()
	if err != nil {
		return identifierSet{}, err
	}
	ref, err := placeholder.TxReference()
	if err != nil {
		return identifierSet{}, err
	}
	return identifierSet{Address: acct.Address, QRTag: tag, TxReference: ref}, nil
}
