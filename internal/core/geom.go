// Package core provides fundamental types and utilities for the jetpack game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the direction of v in radians.
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle builds a velocity of the given speed pointing at angle radians.
func FromAngle(angle, speed float64) Vec {
	return Vec{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
}

// Dist returns the distance between two points.
func Dist(a, b Vec) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point p is inside this rectangle.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Circle is a collision circle centered at C.
type Circle struct {
	C Vec
	R float64
}

// Bounds returns the circle's bounding box.
func (c Circle) Bounds() Rect {
	return Rect{X: c.C.X - c.R, Y: c.C.Y - c.R, W: c.R * 2, H: c.R * 2}
}

// IntersectsRect tests the circle against an axis-aligned rectangle using the
// closest point on the rectangle to the circle's center.
func (c Circle) IntersectsRect(r Rect) bool {
	nx := ClampF(c.C.X, r.X, r.Right())
	ny := ClampF(c.C.Y, r.Y, r.Bottom())
	dx, dy := c.C.X-nx, c.C.Y-ny
	return dx*dx+dy*dy < c.R*c.R
}

// IntersectsCircle tests two circles for overlap.
func (c Circle) IntersectsCircle(o Circle) bool {
	rr := c.R + o.R
	dx, dy := c.C.X-o.C.X, c.C.Y-o.C.Y
	return dx*dx+dy*dy < rr*rr
}

// ShapeKind tags which geometry a Shape carries.
type ShapeKind uint8

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// Shape is the explicit collision geometry of an entity: either a rectangle
// or a circle, selected by Kind.
type Shape struct {
	Kind   ShapeKind
	Rect   Rect
	Circle Circle
}

// RectShape wraps a rectangle.
func RectShape(r Rect) Shape {
	return Shape{Kind: ShapeRect, Rect: r}
}

// CircleShape wraps a circle.
func CircleShape(c Circle) Shape {
	return Shape{Kind: ShapeCircle, Circle: c}
}

// Bounds returns the shape's bounding box.
func (s Shape) Bounds() Rect {
	if s.Kind == ShapeCircle {
		return s.Circle.Bounds()
	}
	return s.Rect
}

// Overlaps dispatches the overlap test on both shapes' tags.
func (s Shape) Overlaps(o Shape) bool {
	switch {
	case s.Kind == ShapeRect && o.Kind == ShapeRect:
		return s.Rect.Intersects(o.Rect)
	case s.Kind == ShapeCircle && o.Kind == ShapeCircle:
		return s.Circle.IntersectsCircle(o.Circle)
	case s.Kind == ShapeCircle:
		return s.Circle.IntersectsRect(o.Rect)
	default:
		return o.Circle.IntersectsRect(s.Rect)
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp interpolates from a toward b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// MapRange linearly maps v from [inMin, inMax] onto [outMin, outMax].
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}
