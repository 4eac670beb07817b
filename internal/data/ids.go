package data

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// bookIDLength is the number of characters in a generated book id.
const bookIDLength = 16

// newBookID returns a random URL-safe token of bookIDLength characters.
// The first 12 bytes of a version 4 UUID encode to exactly 16 base64 characters.
func newBookID() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(u[:12]), nil
}
