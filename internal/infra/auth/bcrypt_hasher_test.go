package auth

import (
	"strings"
	"testing"

	domainerrors "credcheck/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("correct-secret")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotContains(t, hash, "correct-secret")

	assert.True(t, hasher.Check("correct-secret", hash))
	assert.False(t, hasher.Check("wrong-secret", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("correct-secret", "invalid_hash"))
}

func TestBcryptHasher_CheckRejectsSecretsPastInputLimit(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	stored := strings.Repeat("a", 72)

	hash, err := hasher.Hash(stored)
	require.NoError(t, err)

	assert.True(t, hasher.Check(stored, hash))
	assert.False(t, hasher.Check(stored+"-different-suffix", hash))
	assert.False(t, hasher.Check(stored+"a", hash))
}

func TestBcryptHasher_SaltsEachHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("correct-secret")
	require.NoError(t, err)
	second, err := hasher.Hash("correct-secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("correct-secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_CostBelowMinimumUsesDefault(t *testing.T) {
	hasher := NewBcryptHasherWithCost(0).(*bcryptHasher)

	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasher_TooLongSecret(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("x", 73))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}
