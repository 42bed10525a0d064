package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foxalbum/foxalbum/internal/pkg/database/dbtest"
)

func TestFactoryReturnsSameRepositories(t *testing.T) {
	f := NewFactory(dbtest.Open(t))

	repos := f.GetRepositories()
	assert.Same(t, repos, f.GetRepositories())
	assert.Equal(t, repos.User, f.GetUserRepository())
	assert.Equal(t, repos.Album, f.GetAlbumRepository())
	assert.Equal(t, repos.Image, f.GetImageRepository())
}
