package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/DaveCybr/ar-backend/internal/auth/service"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := service.NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("Password1")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Password1", hash)

	assert.True(t, h.Verify("Password1", hash))
	assert.False(t, h.Verify("Password2", hash))
}

func TestBcryptHasher_SaltedOutput(t *testing.T) {
	h := service.NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("Password1")
	require.NoError(t, err)
	second, err := h.Hash("Password1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("Password1", first))
	assert.True(t, h.Verify("Password1", second))
}

// A malformed stored hash must read as a mismatch, never as a success.
func TestBcryptHasher_VerifyFailsClosed(t *testing.T) {
	h := service.NewBcryptHasher(bcrypt.MinCost)

	assert.False(t, h.Verify("Password1", ""))
	assert.False(t, h.Verify("Password1", "not-a-bcrypt-hash"))
}

func TestNewBcryptHasher_CostOutOfRange(t *testing.T) {
	// An out-of-range cost falls back to the bcrypt default rather than
	// producing a hasher that errors on every call.
	h := service.NewBcryptHasher(100)

	hash, err := h.Hash("Password1")
	require.NoError(t, err)
	assert.True(t, h.Verify("Password1", hash))
}
