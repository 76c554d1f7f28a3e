package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Forfeit-15/INF2003/internal/model"
	"github.com/Forfeit-15/INF2003/internal/testutil"
)

func TestUserCreateAndLookup(t *testing.T) {
	repo := NewUserRepository(testutil.NewCatalogDB(t))
	ctx := context.Background()

	user, err := repo.Create(ctx, "alice", "alice@example.com", "s3cret", "Alice")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsAdmin)
	assert.NotEqual(t, "s3cret", user.PasswordHash)

	byName, err := repo.FindByIdentifier(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := repo.FindByIdentifier(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)

	assert.True(t, repo.CheckPassword(byName, "s3cret"))
	assert.False(t, repo.CheckPassword(byName, "wrong"))

	exists, err := repo.ExistsByUsernameOrEmail(ctx, "someone", "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUsernameOrEmail(ctx, "bob", "bob@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	unknown, err := repo.FindByIdentifier(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, unknown)
}

func TestUserUpdate(t *testing.T) {
	repo := NewUserRepository(testutil.NewCatalogDB(t))
	ctx := context.Background()

	user, err := repo.Create(ctx, "alice", "alice@example.com", "s3cret", "Alice")
	require.NoError(t, err)

	empty := ""
	name := "Alice A."
	password := "n3w-pass"
	admin := true
	require.NoError(t, repo.Update(ctx, user.ID, model.UserUpdate{
		DisplayName: &name,
		Bio:         &empty,
		Password:    &password,
		IsAdmin:     &admin,
	}))

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Alice A.", got.DisplayName)
	require.NotNil(t, got.Bio)
	assert.Equal(t, "", *got.Bio)
	assert.True(t, got.IsAdmin)
	assert.True(t, got.IsActive)
	assert.True(t, repo.CheckPassword(got, "n3w-pass"))
	assert.False(t, repo.CheckPassword(got, "s3cret"))
}

func TestUserListAndDelete(t *testing.T) {
	repo := NewUserRepository(testutil.NewCatalogDB(t))
	ctx := context.Background()

	first, err := repo.Create(ctx, "alice", "alice@example.com", "pw", "alice")
	require.NoError(t, err)
	second, err := repo.Create(ctx, "bob", "bob@example.com", "pw", "bob")
	require.NoError(t, err)

	users, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, first.ID, users[0].ID)
	assert.Equal(t, second.ID, users[1].ID)

	require.NoError(t, repo.Delete(ctx, first.ID))
	require.NoError(t, repo.Delete(ctx, first.ID))

	gone, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
