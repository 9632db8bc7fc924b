package services

import (
	"context"
	"testing"

	"github.com/netra/gallery/internal/models"
	"github.com/netra/gallery/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	models.PasswordCost = 4
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repository.NewMemoryStore(nil).Users)

	user, err := svc.Register(ctx, models.CreateUserRequest{Username: "  curator ", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "curator", user.Username)
	assert.NotEqual(t, "s3cret-pass", user.Password)
	assert.True(t, user.VerifyPassword("s3cret-pass"))

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.Register(ctx, models.CreateUserRequest{Username: "curator", Password: "another-pass"})
		assert.ErrorIs(t, err, models.ErrUsernameTaken)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := svc.Register(ctx, models.CreateUserRequest{Username: "newbie", Password: "short"})
		assert.Equal(t, []string{"password"}, fieldNames(err))
	})
}

func TestUserService_Lookup(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repository.NewMemoryStore(nil).Users)

	created, err := svc.Register(ctx, models.CreateUserRequest{Username: "admin", Password: "admin-pass"})
	require.NoError(t, err)

	byID, err := svc.repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, byID)

	byName, err := svc.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, created, byName)

	wrongCase, err := svc.GetUserByUsername(ctx, "ADMIN")
	require.NoError(t, err)
	assert.Nil(t, wrongCase)

	t.Run("authenticate", func(t *testing.T) {
		ok, err := svc.Authenticate(ctx, "admin", "admin-pass")
		require.NoError(t, err)
		assert.NotNil(t, ok)

		bad, err := svc.Authenticate(ctx, "admin", "wrong-pass")
		require.NoError(t, err)
		assert.Nil(t, bad)

		unknown, err := svc.Authenticate(ctx, "ghost", "admin-pass")
		require.NoError(t, err)
		assert.Nil(t, unknown)
	})
}

func TestUserService_BootstrapAdmin(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repository.NewMemoryStore(nil).Users)

	none, err := svc.BootstrapAdmin(ctx, "", "ignored")
	require.NoError(t, err)
	assert.Nil(t, none)

	first, err := svc.BootstrapAdmin(ctx, "admin", "admin-pass")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := svc.BootstrapAdmin(ctx, "admin", "admin-pass")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	changed, err := svc.BootstrapAdmin(ctx, "admin", "another-pass")
	require.NoError(t, err)
	assert.Equal(t, first.ID, changed.ID)

	stillOld, err := svc.Authenticate(ctx, "admin", "admin-pass")
	require.NoError(t, err)
	assert.NotNil(t, stillOld)

	_, err = svc.BootstrapAdmin(ctx, "other", "short")
	assert.Error(t, err)
}
