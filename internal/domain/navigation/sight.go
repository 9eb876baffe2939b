package navigation

import "github.com/younwookim/abode/internal/domain/geom"

// CanSee reports whether target is perceivable from observer.
//
// Targets beyond radius are rejected without casting. Otherwise a point is
// marched from observer toward target in unit pixel steps (step count is
// the integer distance) and any sample inside an obstacle blocks the view.
// Observer and target at the same point is not visible.
//
// The ray is sampled, not solved, so a target at a doorway corner may
// flicker between visible and hidden from frame to frame.
func CanSee(observer, target geom.Vec2, radius float64, obstacles []geom.Rect) bool {
	ray := target.Sub(observer)
	dist := ray.Len()
	if dist > radius {
		return false
	}

	dir, ok := ray.Normalize()
	if !ok {
		return false
	}

	p := observer
	steps := int(dist)
	for i := 0; i < steps; i++ {
		p = p.Add(dir)
		if geom.ContainedByAny(p, obstacles) {
			return false
		}
	}
	return true
}
