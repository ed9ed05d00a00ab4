// Package placeholder generates display-only identifiers: transaction
// references, QR tags and fallback wallet addresses. None of these are
// cryptographic artifacts; they exist so ledger entries and listings have
// stable correlation ids a UI can show. Real signing, if it ever arrives,
// lives behind the wallet provider port, not here.
package placeholder

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const qrTagAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var randomRead = rand.Read

// TxReference returns a "0x" + 40 hex char reference shared by the ledger
// entries of a single settlement.
func TxReference() (string, error) {
	bytes := make([]byte, 20)
	if _, err := randomRead(bytes); err != nil {
		return "", fmt.Errorf("failed to generate tx reference: %w", err)
	}
	return "0x" + hex.EncodeToString(bytes), nil
}

// QRTag returns a "QR" + 8 char tag attached to a crop listing at creation.
func QRTag() (string, error) {
	bytes := make([]byte, 8)
	if _, err := randomRead(bytes); err != nil {
		return "", fmt.Errorf("failed to generate qr tag: %w", err)
	}
	tag := make([]byte, 8)
	for i, b := range bytes {
		tag[i] = qrTagAlphabet[int(b)%len(qrTagAlphabet)]
	}
	return "QR" + string(tag), nil
}
