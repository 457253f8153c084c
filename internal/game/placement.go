package game

import "math/rand/v2"

// Rect is an axis-aligned box in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether the point lies inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// RandomPosition picks a top-left corner for an element of size w×h inside
// area, keeping padding/2 clear on every side. When the area is too small the
// range collapses and the element is pinned at the padding origin.
func RandomPosition(rng *rand.Rand, area Rect, w, h, padding float64) (float64, float64) {
	rangeX := max(area.W-w-padding, 0)
	rangeY := max(area.H-h-padding, 0)
	x := area.X + padding/2 + rng.Float64()*rangeX
	y := area.Y + padding/2 + rng.Float64()*rangeY
	return x, y
}

// between returns a uniform value in [lo, hi).
func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
