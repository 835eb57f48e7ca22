package data

import (
	"errors"
	"testing"

	"cinetalk/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepoCreateAndGet(t *testing.T) {
	d := newTestData(t)
	repo := NewUserRepo(d, log.DefaultLogger)
	u := seedUser(t, d, "alice")
	require.NotZero(t, u.ID)

	got, err := repo.GetUser(t.Context(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, biz.DefaultTokenBalance, got.Token)
	assert.Equal(t, biz.DefaultProfilePicture, got.ProfilePicture)

	byName, err := repo.GetUserByUsername(t.Context(), "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	_, err = repo.GetUser(t.Context(), 999)
	assert.True(t, errors.Is(err, biz.ErrUserNotFound))
}

func TestUserRepoDuplicateUsername(t *testing.T) {
	d := newTestData(t)
	repo := NewUserRepo(d, log.DefaultLogger)
	seedUser(t, d, "alice")

	err := repo.CreateUser(t.Context(), &biz.User{Username: "alice", PasswordHash: "x"})
	assert.True(t, errors.Is(err, biz.ErrUsernameTaken))
}

func TestUserRepoUpdateProfileKeepsJoinDateAndTokens(t *testing.T) {
	d := newTestData(t)
	repo := NewUserRepo(d, log.DefaultLogger)
	u := seedUser(t, d, "alice")

	stored, err := repo.GetUser(t.Context(), u.ID)
	require.NoError(t, err)

	bio := "cinephile"
	stored.Bio = &bio
	stored.FirstName = "Alice"
	stored.Token = 5
	stored.JoinDate = stored.JoinDate.AddDate(1, 0, 0)
	require.NoError(t, repo.UpdateProfile(t.Context(), stored))

	got, err := repo.GetUser(t.Context(), u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Bio)
	assert.Equal(t, "cinephile", *got.Bio)
	assert.Equal(t, "Alice", got.FirstName)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, biz.DefaultTokenBalance, got.Token)
	assert.Equal(t, 2024, got.JoinDate.Year())
}

func TestUserRepoUpdateMissingUser(t *testing.T) {
	d := newTestData(t)
	repo := NewUserRepo(d, log.DefaultLogger)

	err := repo.UpdateProfile(t.Context(), &biz.User{ID: 42, Username: "ghost"})
	assert.True(t, errors.Is(err, biz.ErrUserNotFound))
}

func TestUserRepoRenameToTakenUsername(t *testing.T) {
	d := newTestData(t)
	repo := NewUserRepo(d, log.DefaultLogger)
	seedUser(t, d, "alice")
	bob := seedUser(t, d, "bob")

	stored, err := repo.GetUser(t.Context(), bob.ID)
	require.NoError(t, err)
	stored.Username = "alice"
	err = repo.UpdateProfile(t.Context(), stored)
	assert.True(t, errors.Is(err, biz.ErrUsernameTaken))
}
