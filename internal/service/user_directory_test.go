package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"delivery-api/internal/credential"
	"delivery-api/internal/model"
	"delivery-api/internal/repository/memory"
)

func TestUserDirectoryCreateAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	directory := NewUserDirectory(memory.NewUserStore())

	require.NoError(t, directory.CreateUser(ctx, "alice", "password1"))

	user, found, err := directory.GetUser(ctx, "alice")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "alice", user.Username)
	require.Len(t, user.Salt, credential.SaltBytes*2)
	require.Equal(t, credential.HashPassword("password1", user.Salt), user.PasswordHash)
	require.NotContains(t, user.PasswordHash, "password1")

	_, found, err = directory.GetUser(ctx, "Alice")
	require.NoError(t, err)
	require.False(t, found)
}

func TestUserDirectoryDistinctSalts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	directory := NewUserDirectory(memory.NewUserStore())

	require.NoError(t, directory.CreateUser(ctx, "alice", "password1"))
	require.NoError(t, directory.CreateUser(ctx, "bob", "password1"))

	alice, _, err := directory.GetUser(ctx, "alice")
	require.NoError(t, err)
	bob, _, err := directory.GetUser(ctx, "bob")
	require.NoError(t, err)

	require.NotEqual(t, alice.Salt, bob.Salt)
	require.NotEqual(t, alice.PasswordHash, bob.PasswordHash)
}

func TestUserDirectoryDuplicate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	directory := NewUserDirectory(memory.NewUserStore())

	require.NoError(t, directory.CreateUser(ctx, "alice", "password1"))
	err := directory.CreateUser(ctx, "alice", "password2")
	require.ErrorIs(t, err, model.ErrUserAlreadyExists)
}

func TestUserDirectoryStoreFailure(t *testing.T) {
	t.Parallel()

	store := memory.NewUserStore()
	store.Err = errors.New("connection refused")
	directory := NewUserDirectory(store)

	_, found, err := directory.GetUser(context.Background(), "alice")
	require.Error(t, err)
	require.False(t, found)

	require.Error(t, directory.CreateUser(context.Background(), "alice", "password1"))
}
