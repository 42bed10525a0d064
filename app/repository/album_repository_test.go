package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/foxalbum/foxalbum/app/models"
	"github.com/foxalbum/foxalbum/internal/pkg/database/dbtest"
)

func TestAlbumRepositoryListByUserID(t *testing.T) {
	db := dbtest.Open(t)
	repos := NewRepositories(db)
	ctx := context.Background()

	alice := dbtest.CreateUser(t, db, "alice", "alice@example.com")
	bob := dbtest.CreateUser(t, db, "bobby", "bob@example.com")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	older := &models.Album{UserID: alice.ID, Title: "Older", Description: "first", CreatedAt: base}
	newer := &models.Album{UserID: alice.ID, Title: "Newer", Description: "second", CreatedAt: base.Add(time.Hour)}
	foreign := &models.Album{UserID: bob.ID, Title: "Bob", Description: "not yours", CreatedAt: base.Add(2 * time.Hour)}
	for _, a := range []*models.Album{older, newer, foreign} {
		require.NoError(t, repos.Album.Create(ctx, a))
	}

	for _, key := range []string{"a.png", "b.jpg"} {
		require.NoError(t, repos.Image.Create(ctx, &models.Image{Key: key, AlbumID: older.ID, UserID: alice.ID}))
	}

	albums, err := repos.Album.ListByUserID(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, albums, 2)

	assert.Equal(t, newer.ID, albums[0].ID)
	assert.Equal(t, int64(0), albums[0].ImageCount)
	assert.Equal(t, older.ID, albums[1].ID)
	assert.Equal(t, int64(2), albums[1].ImageCount)
}

func TestAlbumRepositoryListByUserIDEmpty(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewAlbumRepository(db)

	albums, err := repo.ListByUserID(context.Background(), 4711)
	require.NoError(t, err)
	assert.NotNil(t, albums)
	assert.Empty(t, albums)
}

func TestAlbumRepositoryGetByIDAndUserID(t *testing.T) {
	db := dbtest.Open(t)
	repos := NewRepositories(db)
	ctx := context.Background()

	alice := dbtest.CreateUser(t, db, "alice", "alice@example.com")
	bob := dbtest.CreateUser(t, db, "bobby", "bob@example.com")

	album := &models.Album{UserID: alice.ID, Title: "Trip", Description: "mountains"}
	require.NoError(t, repos.Album.Create(ctx, album))
	require.NoError(t, repos.Image.Create(ctx, &models.Image{Key: "k1.png", AlbumID: album.ID, UserID: alice.ID}))

	t.Run("owner with images", func(t *testing.T) {
		got, err := repos.Album.GetByIDAndUserID(ctx, album.ID, alice.ID, true)
		require.NoError(t, err)
		assert.Equal(t, "Trip", got.Title)
		require.Len(t, got.Images, 1)
		assert.Equal(t, "k1.png", got.Images[0].Key)
		assert.Equal(t, int64(1), got.ImageCount)
	})

	t.Run("owner without images", func(t *testing.T) {
		got, err := repos.Album.GetByIDAndUserID(ctx, album.ID, alice.ID, false)
		require.NoError(t, err)
		assert.Nil(t, got.Images)
	})

	t.Run("other user", func(t *testing.T) {
		_, err := repos.Album.GetByIDAndUserID(ctx, album.ID, bob.ID, true)
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repos.Album.GetByIDAndUserID(ctx, album.ID+100, alice.ID, false)
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})
}
