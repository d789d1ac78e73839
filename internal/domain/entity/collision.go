package entity

import (
	"fmt"
	"math"
)

// Point is a 2D point in screen pixels
type Point struct {
	X, Y float64
}

// Triangle is a triangle given by its three vertices
type Triangle struct {
	A, B, C Point
}

// HitTest decides whether a point lies inside a triangle
type HitTest func(t Triangle, p Point) bool

// areaEpsilon absorbs float rounding in the area comparison.
// Coordinates are whole or quarter pixels, so real misses are off by far more.
const areaEpsilon = 1e-6

// cross returns twice the signed area of triangle (o, a, b)
func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (b.X-o.X)*(a.Y-o.Y)
}

// AreaHitTest compares the triangle's area with the sum of the three
// sub-triangles formed with p. They match only when p is inside or on an edge.
func AreaHitTest(t Triangle, p Point) bool {
	whole := math.Abs(cross(t.A, t.B, t.C))
	parts := math.Abs(cross(p, t.A, t.B)) +
		math.Abs(cross(p, t.B, t.C)) +
		math.Abs(cross(p, t.C, t.A))
	return math.Abs(parts-whole) <= areaEpsilon*math.Max(1, whole)
}

// SignedHitTest checks that p is on the same side of all three edges.
// Points on an edge count as inside. Degenerate triangles never hit.
func SignedHitTest(t Triangle, p Point) bool {
	if cross(t.A, t.B, t.C) == 0 {
		return false
	}
	d1 := cross(t.A, t.B, p)
	d2 := cross(t.B, t.C, p)
	d3 := cross(t.C, t.A, p)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// Hit test modes accepted in configuration
const (
	HitModeArea   = "area"
	HitModeSigned = "signed"
)

// HitTestFor returns the hit test for a configured mode.
// An empty mode selects the area test.
func HitTestFor(mode string) (HitTest, error) {
	switch mode {
	case "", HitModeArea:
		return AreaHitTest, nil
	case HitModeSigned:
		return SignedHitTest, nil
	default:
		return nil, fmt.Errorf("unknown collision mode %q", mode)
	}
}

// BombHitsEnemy reports whether the bomb's center is inside the enemy's hit triangle
func BombHitsEnemy(test HitTest, b *Bomb, e *Enemy) bool {
	return test(e.HitTriangle(), b.Center())
}
