package credentials

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// Codec turns plaintext passwords into one-way digests and checks
// plaintexts against stored digests.
type Codec interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// BcryptCodec implements Codec with bcrypt. Each Hash call salts
// independently, so equal plaintexts never produce equal digests.
type BcryptCodec struct {
	cost int
}

// NewBcryptCodec returns a codec at the default cost.
func NewBcryptCodec() *BcryptCodec {
	return &BcryptCodec{cost: bcryptCost}
}

// Hash produces a salted, self-describing digest of plaintext.
func (c *BcryptCodec) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), c.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify recomputes the digest from the salt embedded in digest and
// compares in constant time. Malformed digests fail closed.
func (c *BcryptCodec) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

// DummyDigest is a digest of no meaningful password. Callers that want
// lookup failures to cost the same as a mismatched password can verify
// against it before reporting failure.
const DummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
