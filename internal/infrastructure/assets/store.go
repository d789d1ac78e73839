// Package assets resolves sprite names to images. Images come from
// photos/<name>.png in the asset filesystem; anything missing is replaced
// by a flat placeholder from the sprite catalog so the game stays playable.
package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/skyflight/internal/domain/entity"
	"github.com/younwookim/skyflight/internal/infrastructure/config"
)

// Size used for names missing from both the filesystem and the catalog
const fallbackSize = 32

var fallbackColor = color.RGBA{255, 0, 255, 255}

type spriteInfo struct {
	sprite entity.Sprite
	path   string // empty for placeholders
	color  color.RGBA
}

// Store loads sprites on first use and caches them.
// Load only reads image headers; pixel data is decoded on the first draw.
type Store struct {
	fsys    fs.FS
	catalog map[string]config.SpriteConfig

	infos  map[string]spriteInfo
	images map[string]*ebiten.Image
}

// NewStore creates a store over fsys (may be nil for placeholders only)
func NewStore(fsys fs.FS, catalog map[string]config.SpriteConfig) *Store {
	return &Store{
		fsys:    fsys,
		catalog: catalog,
		infos:   make(map[string]spriteInfo),
		images:  make(map[string]*ebiten.Image),
	}
}

func spritePath(name string) string {
	return fmt.Sprintf("photos/%s.png", name)
}

// Load returns the sprite handle for name
func (s *Store) Load(name string) entity.Sprite {
	return s.info(name).sprite
}

func (s *Store) info(name string) spriteInfo {
	if info, ok := s.infos[name]; ok {
		return info
	}

	info, err := s.readHeader(name)
	if err != nil {
		info = s.placeholder(name)
		log.Printf("assets: %s not found, using placeholder (%v)", name, err)
	}
	s.infos[name] = info
	return info
}

func (s *Store) readHeader(name string) (spriteInfo, error) {
	if s.fsys == nil {
		return spriteInfo{}, fmt.Errorf("no asset directory")
	}
	path := spritePath(name)
	f, err := s.fsys.Open(path)
	if err != nil {
		return spriteInfo{}, err
	}
	defer func() { _ = f.Close() }()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return spriteInfo{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return spriteInfo{
		sprite: entity.Sprite{Name: name, Width: float64(cfg.Width), Height: float64(cfg.Height)},
		path:   path,
	}, nil
}

func (s *Store) placeholder(name string) spriteInfo {
	sc, ok := s.catalog[name]
	if !ok {
		return spriteInfo{
			sprite: entity.Sprite{Name: name, Width: fallbackSize, Height: fallbackSize},
			color:  fallbackColor,
		}
	}
	return spriteInfo{
		sprite: entity.Sprite{Name: name, Width: float64(sc.Width), Height: float64(sc.Height)},
		color:  toRGBA(sc.Color),
	}
}

func toRGBA(c []int) color.RGBA {
	if len(c) < 3 {
		return fallbackColor
	}
	rgba := color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255}
	if len(c) == 4 {
		rgba.A = uint8(c[3])
	}
	return rgba
}

// Image returns the drawable image for name. Must be called from the
// ebiten draw loop.
func (s *Store) Image(name string) *ebiten.Image {
	if img, ok := s.images[name]; ok {
		return img
	}

	info := s.info(name)
	var img *ebiten.Image
	if info.path != "" {
		loaded, _, err := ebitenutil.NewImageFromFileSystem(s.fsys, info.path)
		if err != nil {
			log.Printf("assets: failed to load %s: %v", info.path, err)
		} else {
			img = loaded
		}
	}
	if img == nil {
		img = ebiten.NewImage(int(info.sprite.Width), int(info.sprite.Height))
		if info.color == (color.RGBA{}) {
			info.color = s.placeholder(name).color
		}
		img.Fill(info.color)
	}

	s.images[name] = img
	return img
}
