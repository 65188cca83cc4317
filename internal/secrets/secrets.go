// Package secrets encrypts sensitive column values (vendor tax IDs) at rest
// using fernet tokens. A Codec built without a key passes values through
// unchanged, so encryption stays optional in development.
package secrets

import (
	"fmt"

	"github.com/fernet/fernet-go"

	apperrors "github.com/mdejong/Flip-Budget-Backend/internal/errors"
)

// Codec encrypts and decrypts short string values with a fernet key.
type Codec struct {
	key *fernet.Key
}

// NewCodec parses the base64 fernet key. An empty key yields a pass-through
// codec.
func NewCodec(encodedKey string) (*Codec, error) {
	if encodedKey == "" {
		return &Codec{}, nil
	}

	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode fernet key: %w", err)
	}

	return &Codec{key: key}, nil
}

// Enabled reports whether a key is configured.
func (c *Codec) Enabled() bool {
	return c.key != nil
}

// Encrypt returns the fernet token for value, or value unchanged when no key
// is configured. Empty values are never encrypted.
func (c *Codec) Encrypt(value string) (string, error) {
	if c.key == nil || value == "" {
		return value, nil
	}

	token, err := fernet.EncryptAndSign([]byte(value), c.key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrEncryptionFailed, err)
	}

	return string(token), nil
}

// Decrypt reverses Encrypt. Values that do not verify as fernet tokens are
// returned unchanged: rows written before encryption was enabled stay
// readable.
func (c *Codec) Decrypt(value string) string {
	if c.key == nil || value == "" {
		return value
	}

	plain := fernet.VerifyAndDecrypt([]byte(value), 0, []*fernet.Key{c.key})
	if plain == nil {
		return value
	}

	return string(plain)
}
