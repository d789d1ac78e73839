// Package render draws scenes onto an ebiten screen.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/skyflight/internal/application/scene"
	"github.com/younwookim/skyflight/internal/domain/entity"
	"golang.org/x/image/font/basicfont"
)

// basicfont glyphs are 13px tall; a requested size maps to size/textDivisor scale
const textDivisor = 26

var textColor = color.White

// ImageSource provides drawable images by sprite name
type ImageSource interface {
	Image(name string) *ebiten.Image
}

// Renderer implements scene.Renderer on top of an ebiten image
type Renderer struct {
	images ImageSource
	face   *text.GoXFace
	screen *ebiten.Image
}

// New creates a renderer that resolves sprites through images
func New(images ImageSource) *Renderer {
	return &Renderer{
		images: images,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// Begin sets the target for the following draw calls
func (r *Renderer) Begin(screen *ebiten.Image) {
	r.screen = screen
}

// DrawSprite draws a sprite with its top-left corner at (x, y).
// The image is stretched to the sprite's size when they differ.
func (r *Renderer) DrawSprite(s entity.Sprite, x, y float64) {
	img := r.images.Image(s.Name)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	b := img.Bounds()
	if w, h := float64(b.Dx()), float64(b.Dy()); w > 0 && h > 0 && (w != s.Width || h != s.Height) {
		op.GeoM.Scale(s.Width/w, s.Height/h)
	}
	op.GeoM.Translate(x, y)
	r.screen.DrawImage(img, op)
}

// DrawText draws a line of text anchored at (x, y)
func (r *Renderer) DrawText(s string, size float64, x, y float64, anchor scene.Anchor) {
	scale := size / textDivisor
	if scale <= 0 {
		scale = 1
	}
	m := r.face.Metrics()
	w, h := text.Measure(s, r.face, m.HAscent+m.HDescent+m.HLineGap)
	ox, oy := Offset(anchor, w*scale, h*scale)

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x+ox, y+oy)
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(r.screen, s, r.face, op)
}

// Offset returns how far to shift a w x h block so that its anchor
// point lands on the requested position
func Offset(anchor scene.Anchor, w, h float64) (float64, float64) {
	switch anchor {
	case scene.TopRight:
		return -w, 0
	case scene.Center:
		return -w / 2, -h / 2
	default:
		return 0, 0
	}
}
