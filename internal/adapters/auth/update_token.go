package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"eventrsvp/internal/domain"
)

// UpdateTokenBytes is the amount of randomness in each update token.
const UpdateTokenBytes = 32

type randomTokenIssuer struct {
	rand io.Reader
}

// NewUpdateTokenIssuer returns an UpdateTokenIssuer that encodes UpdateTokenBytes
// from crypto/rand as unpadded base64url, safe to place in a URL path.
func NewUpdateTokenIssuer() domain.UpdateTokenIssuer {
	return &randomTokenIssuer{rand: rand.Reader}
}

func (i *randomTokenIssuer) Issue() (string, error) {
	b := make([]byte, UpdateTokenBytes)
	if _, err := io.ReadFull(i.rand, b); err != nil {
		return "", fmt.Errorf("failed to generate update token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
