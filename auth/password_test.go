package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := hashPassword("pw12345")
	require.NoError(t, err)
	require.NotEqual(t, "pw12345", hash)

	require.True(t, checkPassword("pw12345", hash))
	require.False(t, checkPassword("wrong", hash))
	require.False(t, checkPassword("pw12345", "not-a-hash"))
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	// Same input, different salts: the credentials differ but both verify.
	h1, err := hashPassword("pw12345")
	require.NoError(t, err)
	h2, err := hashPassword("pw12345")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2)
	require.True(t, checkPassword("pw12345", h1))
	require.True(t, checkPassword("pw12345", h2))
}
