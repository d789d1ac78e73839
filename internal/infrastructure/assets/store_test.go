package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/skyflight/internal/domain/entity"
	"github.com/younwookim/skyflight/internal/infrastructure/config"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestStore_LoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"photos/enemy_plane.png": {Data: encodePNG(t, 120, 90)},
	}
	s := NewStore(fsys, nil)

	assert.Equal(t, entity.Sprite{Name: "enemy_plane", Width: 120, Height: 90}, s.Load("enemy_plane"))
}

func TestStore_PlaceholderFromCatalog(t *testing.T) {
	catalog := map[string]config.SpriteConfig{
		"bomb": {Width: 10, Height: 20, Color: []int{255, 200, 100}},
	}
	s := NewStore(fstest.MapFS{}, catalog)

	sp := s.Load("bomb")
	assert.Equal(t, 10.0, sp.Width)
	assert.Equal(t, 20.0, sp.Height)
	assert.Equal(t, "bomb", sp.Name)
	assert.Equal(t, color.RGBA{255, 200, 100, 255}, s.info("bomb").color)
}

func TestStore_FileWinsOverCatalog(t *testing.T) {
	fsys := fstest.MapFS{
		"photos/bomb.png": {Data: encodePNG(t, 12, 24)},
	}
	catalog := map[string]config.SpriteConfig{"bomb": {Width: 10, Height: 20}}
	s := NewStore(fsys, catalog)

	assert.Equal(t, 12.0, s.Load("bomb").Width)
}

func TestStore_UnknownName(t *testing.T) {
	s := NewStore(nil, nil)

	sp := s.Load("mystery")
	assert.Equal(t, entity.Sprite{Name: "mystery", Width: fallbackSize, Height: fallbackSize}, sp)
}

func TestStore_CorruptFileFallsBack(t *testing.T) {
	fsys := fstest.MapFS{
		"photos/lives.png": {Data: []byte("not a png")},
	}
	catalog := map[string]config.SpriteConfig{"lives": {Width: 40, Height: 40}}
	s := NewStore(fsys, catalog)

	assert.Equal(t, 40.0, s.Load("lives").Width)
}

func TestStore_Caches(t *testing.T) {
	fsys := fstest.MapFS{
		"photos/cursor.png": {Data: encodePNG(t, 40, 40)},
	}
	s := NewStore(fsys, nil)
	first := s.Load("cursor")

	delete(fsys, "photos/cursor.png")
	assert.Equal(t, first, s.Load("cursor"))
}

func TestToRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, toRGBA([]int{1, 2, 3}))
	assert.Equal(t, color.RGBA{1, 2, 3, 4}, toRGBA([]int{1, 2, 3, 4}))
	assert.Equal(t, fallbackColor, toRGBA(nil))
}
