package hashing

import "golang.org/x/crypto/bcrypt"

// Hasher turns plaintext passwords into salted one-way hashes.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

// maxPasswordBytes is the most input bcrypt uses. Longer passwords are
// truncated, so any string can be hashed.
const maxPasswordBytes = 72

type Bcrypt struct {
	Cost int
}

// NewBcrypt returns a bcrypt hasher. Costs outside bcrypt's range fall back to
// bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{Cost: cost}
}

// Hash hashes the plain text password using bcrypt
func (b *Bcrypt) Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword(truncate(plain), b.Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compares a bcrypt hash with a plain password
func (b *Bcrypt) Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(plain)) == nil
}

func truncate(plain string) []byte {
	if len(plain) > maxPasswordBytes {
		return []byte(plain[:maxPasswordBytes])
	}
	return []byte(plain)
}
