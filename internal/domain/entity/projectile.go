package entity

import (
	"math"

	"github.com/younwookim/abode/internal/domain/geom"
)

// Owner identifies which side fired a projectile
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// ProjectileConfig holds the tuning for one kind of projectile
type ProjectileConfig struct {
	Width    float64
	Height   float64
	Speed    float64 // pixels per nominal frame
	Damage   int
	Ricochet bool // may bounce off one wall before dying
}

// Projectile represents a bolt or bullet in flight
type Projectile struct {
	Owner   Owner
	Rect    geom.Rect
	Dir     geom.Vec2 // unit vector, zero if fired with no direction
	Speed   float64
	Damage  int
	Active  bool
	Bounced bool

	Ricochet bool
}

// NewProjectile spawns a projectile centered on origin. A zero direction is
// kept as-is and the projectile does not move.
func NewProjectile(owner Owner, origin, dir geom.Vec2, cfg ProjectileConfig) *Projectile {
	if n, ok := dir.Normalize(); ok {
		dir = n
	}
	damage := cfg.Damage
	if damage <= 0 {
		damage = 1
	}
	return &Projectile{
		Owner:    owner,
		Rect:     geom.RectAt(origin, cfg.Width, cfg.Height),
		Dir:      dir,
		Speed:    cfg.Speed,
		Damage:   damage,
		Active:   true,
		Ricochet: cfg.Ricochet,
	}
}

// Center returns the projectile center
func (p *Projectile) Center() geom.Vec2 {
	return p.Rect.Center()
}

// Advance moves the projectile by Dir*Speed scaled by the frame delta
func (p *Projectile) Advance(deltaMs float64) {
	if !p.Active {
		return
	}
	p.Rect = p.Rect.Translate(p.Dir.Scale(p.Speed * FrameScale(deltaMs)))
}

// Resolve checks the projectile against walls, then targets, then the arena
// bounds. A ricochet projectile reflects off its first wall and dies on the
// next; any other projectile dies on its first wall. On a target hit one
// hit's damage is applied and the projectile is spent.
// Returns the target that was hit (nil if none) and whether the hit was lethal.
func (p *Projectile) Resolve(stage *Stage, targets []Target) (Target, bool) {
	if !p.Active {
		return nil, false
	}

	if wall, hit := geom.OverlapBounds(p.Rect, stage.Obstacles); hit {
		if !p.Ricochet || p.Bounced {
			p.Deactivate()
			return nil, false
		}
		p.bounceOff(wall)
	}

	for _, t := range targets {
		if t == nil || !t.Alive() {
			continue
		}
		if p.Rect.Intersects(t.Hitbox()) {
			p.Deactivate()
			return t, t.TakeDamage(p.Damage)
		}
	}

	if stage.OutOfBounds(p.Rect) {
		p.Deactivate()
	}
	return nil, false
}

// bounceOff reflects the direction component along the axis of least
// penetration and pushes the projectile back out of the wall. wall is the
// combined bounds of every tile hit this tick. On equal penetration the
// axis the projectile travels along faster is reflected.
func (p *Projectile) bounceOff(wall geom.Rect) {
	dx, dy := p.Rect.Overlap(wall)
	c, wc := p.Rect.Center(), wall.Center()

	sideHit := dx < dy
	if dx == dy {
		sideHit = math.Abs(p.Dir.X) > math.Abs(p.Dir.Y)
	}
	if sideHit {
		// Side hit
		p.Dir.X = -p.Dir.X
		if c.X < wc.X {
			p.Rect.X -= dx
		} else {
			p.Rect.X += dx
		}
	} else {
		p.Dir.Y = -p.Dir.Y
		if c.Y < wc.Y {
			p.Rect.Y -= dy
		} else {
			p.Rect.Y += dy
		}
	}
	p.Bounced = true
}

// Deactivate marks the projectile as spent. It is removed on the next
// Compact.
func (p *Projectile) Deactivate() {
	p.Active = false
}

// Projectiles is the list of projectiles owned by one actor
type Projectiles []*Projectile

// Advance moves every active projectile
func (ps Projectiles) Advance(deltaMs float64) {
	for _, p := range ps {
		p.Advance(deltaMs)
	}
}

// Resolve resolves every active projectile against the same targets.
// Projectiles never interact with each other, so order does not matter.
// Returns the number of lethal hits.
func (ps Projectiles) Resolve(stage *Stage, targets []Target) (kills int) {
	for _, p := range ps {
		if _, killed := p.Resolve(stage, targets); killed {
			kills++
		}
	}
	return kills
}

// Compact drops spent projectiles, reusing the backing array
func (ps Projectiles) Compact() Projectiles {
	out := ps[:0]
	for _, p := range ps {
		if p.Active {
			out = append(out, p)
		}
	}
	for i := len(out); i < len(ps); i++ {
		ps[i] = nil
	}
	return out
}

// ActiveCount returns the number of projectiles still in flight
func (ps Projectiles) ActiveCount() int {
	n := 0
	for _, p := range ps {
		if p.Active {
			n++
		}
	}
	return n
}
