package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// ContentHash identifies a card by its text, ignoring case and surrounding
// whitespace. It is only used to spot duplicates, never as a card identity.
func ContentHash(question, answer string) string {
	hasher := sha256.New()
	hasher.Write([]byte(strings.ToLower(strings.TrimSpace(question))))
	hasher.Write([]byte{0})
	hasher.Write([]byte(strings.ToLower(strings.TrimSpace(answer))))
	return hex.EncodeToString(hasher.Sum(nil))
}
