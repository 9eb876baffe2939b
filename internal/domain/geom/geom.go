// Package geom provides the 2D vector and axis-aligned rectangle primitives
// shared by movement, perception and projectile code.
package geom

import "math"

// Vec2 is a 2D vector in pixel space
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns the unit vector for an angle in radians
func FromAngle(rad float64) Vec2 {
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the vector magnitude
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSq returns the squared magnitude
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector and true, or the zero vector and false
// when v has no direction.
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, false
	}
	return Vec2{v.X / l, v.Y / l}, true
}

// ClampLen scales v down to max if it is longer
func (v Vec2) ClampLen(max float64) Vec2 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// Dist returns the distance between two points
func Dist(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// Rect is an axis-aligned rectangle. X, Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// R is shorthand for Rect{x, y, w, h}
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt returns a w*h rect centered on c
func RectAt(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the rect center
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Translate returns r moved by d
func (r Rect) Translate(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Intersects reports whether the two rects share a positive area.
// Rects that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Contains reports whether p lies inside r (left/top edges inclusive)
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Overlap returns the horizontal and vertical penetration depths of two
// rects. Both are <= 0 when the rects do not intersect.
func (r Rect) Overlap(o Rect) (dx, dy float64) {
	dx = math.Min(r.Right(), o.Right()) - math.Max(r.Left(), o.Left())
	dy = math.Min(r.Bottom(), o.Bottom()) - math.Max(r.Top(), o.Top())
	return dx, dy
}

// OverlapsAny returns the first rect in rs that intersects r
func OverlapsAny(r Rect, rs []Rect) (Rect, bool) {
	for _, o := range rs {
		if r.Intersects(o) {
			return o, true
		}
	}
	return Rect{}, false
}

// OverlapBounds returns the bounding box of every rect in rs that
// intersects r. Adjacent tiles touched at once act as one solid block.
func OverlapBounds(r Rect, rs []Rect) (Rect, bool) {
	var (
		minX, minY = math.Inf(1), math.Inf(1)
		maxX, maxY = math.Inf(-1), math.Inf(-1)
		hit        bool
	)
	for _, o := range rs {
		if !r.Intersects(o) {
			continue
		}
		minX, minY = math.Min(minX, o.Left()), math.Min(minY, o.Top())
		maxX, maxY = math.Max(maxX, o.Right()), math.Max(maxY, o.Bottom())
		hit = true
	}
	if !hit {
		return Rect{}, false
	}
	return R(minX, minY, maxX-minX, maxY-minY), true
}

// ContainedByAny reports whether p lies inside any rect in rs
func ContainedByAny(p Vec2, rs []Rect) bool {
	for _, o := range rs {
		if o.Contains(p) {
			return true
		}
	}
	return false
}
