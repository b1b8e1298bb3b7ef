package credential

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	t.Parallel()

	first, err := GenerateSalt()
	require.NoError(t, err)
	second, err := GenerateSalt()
	require.NoError(t, err)

	require.Len(t, first, SaltBytes*2)
	require.NotEqual(t, first, second)

	decoded, err := hex.DecodeString(first)
	require.NoError(t, err)
	require.Len(t, decoded, SaltBytes)
}

func TestHashPassword(t *testing.T) {
	t.Parallel()

	salt := strings.Repeat("ab", SaltBytes)

	t.Run("is deterministic", func(t *testing.T) {
		require.Equal(t, HashPassword("password1", salt), HashPassword("password1", salt))
	})

	t.Run("has fixed hex length", func(t *testing.T) {
		hash := HashPassword("password1", salt)
		require.Len(t, hash, KeyLength*2)
		_, err := hex.DecodeString(hash)
		require.NoError(t, err)
	})

	t.Run("differs across salts", func(t *testing.T) {
		otherSalt, err := GenerateSalt()
		require.NoError(t, err)
		require.NotEqual(t, HashPassword("password1", salt), HashPassword("password1", otherSalt))
	})

	t.Run("differs across passwords", func(t *testing.T) {
		require.NotEqual(t, HashPassword("password1", salt), HashPassword("password2", salt))
	})

	t.Run("does not contain the plaintext", func(t *testing.T) {
		require.NotContains(t, HashPassword("password1", salt), "password1")
	})
}

func TestVerify(t *testing.T) {
	t.Parallel()

	salt, err := GenerateSalt()
	require.NoError(t, err)
	hash := HashPassword("correct horse", salt)

	require.True(t, Verify("correct horse", salt, hash))
	require.False(t, Verify("correct horsf", salt, hash))
	require.False(t, Verify("correct horse", strings.Repeat("0", SaltBytes*2), hash))
	require.False(t, Verify("correct horse", salt, ""))
}
