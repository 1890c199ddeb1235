package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"non-overlapping vertical", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"touching edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"sub-unit overlap", NewRect(0, 0, 10, 10), NewRect(9.5, 9.5, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCircleIntersectsRect(t *testing.T) {
	r := NewRect(100, 100, 50, 20)

	tests := []struct {
		name     string
		c        Circle
		expected bool
	}{
		{"center inside", Circle{C: Vec{X: 120, Y: 110}, R: 3}, true},
		{"clear of left edge", Circle{C: Vec{X: 94, Y: 110}, R: 5}, false},
		{"overlapping left edge", Circle{C: Vec{X: 97, Y: 110}, R: 5}, true},
		{"near corner but outside", Circle{C: Vec{X: 96, Y: 96}, R: 5}, false},
		{"corner overlap", Circle{C: Vec{X: 97, Y: 97}, R: 5}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.IntersectsRect(r); got != tc.expected {
				t.Errorf("IntersectsRect() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestShapeOverlapsDispatch(t *testing.T) {
	rect := RectShape(NewRect(0, 0, 10, 10))
	near := CircleShape(Circle{C: Vec{X: 12, Y: 5}, R: 3})
	far := CircleShape(Circle{C: Vec{X: 30, Y: 5}, R: 3})

	if !rect.Overlaps(near) || !near.Overlaps(rect) {
		t.Error("rect and near circle should overlap in both directions")
	}
	if rect.Overlaps(far) || far.Overlaps(rect) {
		t.Error("rect and far circle should not overlap")
	}
	if near.Overlaps(far) {
		t.Error("circles 18 apart with radius 3 should not overlap")
	}
	if got := near.Bounds(); got != NewRect(9, 2, 6, 6) {
		t.Errorf("Bounds() = %+v", got)
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi/2, 4)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-4) > 1e-9 {
		t.Errorf("FromAngle(pi/2, 4) = %+v, expected (0, 4)", v)
	}
	if math.Abs(v.Len()-4) > 1e-9 {
		t.Errorf("Len() = %f, expected 4", v.Len())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMapRange(t *testing.T) {
	if got := MapRange(100, 0, 200, 5, 0.5); math.Abs(got-2.75) > 1e-9 {
		t.Errorf("MapRange midpoint = %f, expected 2.75", got)
	}
	if got := MapRange(1, 1, 1, 3, 9); got != 3 {
		t.Errorf("MapRange on empty input range = %f, expected 3", got)
	}
}

func TestColorDim(t *testing.T) {
	tests := []struct {
		in, want Color
	}{
		{ColorBrightRed, ColorRed},
		{ColorBrightWhite, ColorWhite},
		{ColorBrightCyan, ColorCyan},
		{ColorOrange, ColorGray},
		{ColorRed, ColorGray},
		{ColorGray, ColorGray},
		{ColorDefault, ColorDefault},
	}
	for _, tt := range tests {
		if got := tt.in.Dim(); got != tt.want {
			t.Errorf("Color(%d).Dim() = %d, want %d", tt.in, got, tt.want)
		}
	}
}
