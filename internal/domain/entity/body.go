package entity

import "github.com/younwookim/abode/internal/domain/geom"

// FrameMs is the nominal frame length. Speeds are expressed in pixels per
// nominal frame and scaled by the real frame delta.
const FrameMs = 1000.0 / 60.0

// FrameScale converts a frame delta in milliseconds into nominal frames
func FrameScale(deltaMs float64) float64 {
	return deltaMs / FrameMs
}

// Body represents the physical body of an entity
type Body struct {
	Rect        geom.Rect
	FacingRight bool
}

// Center returns the body center
func (b *Body) Center() geom.Vec2 {
	return b.Rect.Center()
}

// Hitbox returns the collision rect in world coordinates
func (b *Body) Hitbox() geom.Rect {
	return b.Rect
}

// MoveAndCollide applies d one axis at a time. An axis whose move would
// leave the body overlapping an obstacle is reverted, so diagonal movement
// slides along walls instead of stopping.
func (b *Body) MoveAndCollide(d geom.Vec2, obstacles []geom.Rect) (blockedX, blockedY bool) {
	if d.X != 0 {
		moved := b.Rect
		moved.X += d.X
		if _, hit := geom.OverlapsAny(moved, obstacles); hit {
			blockedX = true
		} else {
			b.Rect = moved
		}
	}

	if d.Y != 0 {
		moved := b.Rect
		moved.Y += d.Y
		if _, hit := geom.OverlapsAny(moved, obstacles); hit {
			blockedY = true
		} else {
			b.Rect = moved
		}
	}

	return blockedX, blockedY
}

// StepToward moves the body center toward target by at most step pixels
// with axis-separated collision. Returns false if the body is already at
// target.
func (b *Body) StepToward(target geom.Vec2, step float64, obstacles []geom.Rect) bool {
	delta := target.Sub(b.Center())
	dist := delta.Len()
	dir, ok := delta.Normalize()
	if !ok {
		return false
	}
	if dir.X != 0 {
		b.FacingRight = dir.X > 0
	}
	b.MoveAndCollide(dir.Scale(min(step, dist)), obstacles)
	return true
}
