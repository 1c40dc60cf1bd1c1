package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	ok, err := h.Compare(hash, "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.Compare("not-a-hash", "secret")
	assert.Error(t, err)
}

func TestHasherPasswordTooLong(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", 73))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	_, err = h.Hash(strings.Repeat("a", 72))
	assert.NoError(t, err)
}

func TestHasherCost(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, NewHasher(10).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(100).cost)

	hash, err := NewHasher(10).Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestJWTManager(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.Generate("user-1")
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.WithinDuration(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestJWTManagerRejects(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("test-secret", time.Hour)

	_, err := m.Generate("")
	assert.ErrorIs(t, err, ErrInvalidToken)

	token, err := m.Generate("user-1")
	require.NoError(t, err)

	_, err = NewJWTManager("other-secret", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Parse("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := NewJWTManager("test-secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err = expired.Generate("user-1")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
