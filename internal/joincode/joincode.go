// Package joincode mints the short codes members use to join a group.
package joincode

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLen  = 6
)

// Generate returns a 6-character code drawn uniformly from A-Z0-9.
// Codes are not checked for collisions against existing groups.
func Generate() (string, error) {
	buf := make([]byte, codeLen)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", fmt.Errorf("generate join code: %w", err)
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf), nil
}
