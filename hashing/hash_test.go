package hashing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHashIsSaltedAndVerifiable(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	first, err := h.Hash("s3cret")
	require.NoError(t, err)
	second, err := h.Hash("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", first)
	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify(first, "s3cret"))
	assert.True(t, h.Verify(second, "s3cret"))
	assert.False(t, h.Verify(first, "wrong"))
}

func TestNewBcryptClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(0).Cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(bcrypt.MaxCost+1).Cost)
	assert.Equal(t, 5, NewBcrypt(5).Cost)
}

func TestBcryptAcceptsLongPasswords(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)
	long := strings.Repeat("p", 100)

	hash, err := h.Hash(long)
	require.NoError(t, err)
	assert.True(t, h.Verify(hash, long))
	// only the first 72 bytes count
	assert.True(t, h.Verify(hash, long[:72]))
	assert.False(t, h.Verify(hash, long[:71]))

	empty, err := h.Hash("")
	require.NoError(t, err)
	assert.True(t, h.Verify(empty, ""))
}
