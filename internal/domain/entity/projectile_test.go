package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBomb(t *testing.T) {
	b := NewBomb(100, 200, Sprite{Name: "bomb", Width: 10, Height: 20}, 5)

	assert.Equal(t, 100.0, b.Rect.Left)
	assert.Equal(t, 180.0, b.Rect.Top)
	assert.Equal(t, Point{X: 105, Y: 190}, b.Center())
}

func TestBomb_Advance(t *testing.T) {
	b := NewBomb(0, 200, Sprite{Width: 10, Height: 20}, 5)
	b.Advance()

	assert.Equal(t, 175.0, b.Rect.Top, "bombs fly up")
}

func TestBomb_Gone(t *testing.T) {
	b := NewBomb(0, 10, Sprite{Width: 10, Height: 20}, 5)
	assert.False(t, b.Gone())

	b.Advance()
	b.Advance()
	assert.Equal(t, 0.0, b.Rect.Bottom())
	assert.False(t, b.Gone(), "bottom exactly at the edge is still on screen")

	b.Advance()
	assert.True(t, b.Gone())
}
