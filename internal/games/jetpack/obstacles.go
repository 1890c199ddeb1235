package jetpack

import "github.com/vovakirdan/jetpack-arcade/internal/core"

// Obstacle is a static block scrolling left with the world.
type Obstacle struct {
	Rect core.Rect
}

// Update scrolls the obstacle at world speed.
func (o *Obstacle) Update(dtMs, speed float64) {
	o.Rect.X -= speed * dtMs / refFrameMs
}

// Shape returns the obstacle's collision geometry.
func (o *Obstacle) Shape() core.Shape {
	return core.RectShape(o.Rect)
}

// Offscreen reports whether the obstacle has scrolled past the left edge.
func (o *Obstacle) Offscreen() bool {
	return o.Rect.Right() < 0
}
