package entity

import "github.com/younwookim/abode/internal/domain/geom"

// PlayerConfig holds player tuning
type PlayerConfig struct {
	Width        float64
	Height       float64
	Speed        float64 // pixels per nominal frame
	Lives        int
	InvincibleMs float64 // i-frame window after a hit
	Bolt         ProjectileConfig
}

// DefaultPlayerConfig returns the default player tuning
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		Width:        25,
		Height:       31,
		Speed:        4,
		Lives:        5,
		InvincibleMs: 2000,
		Bolt: ProjectileConfig{
			Width:    10,
			Height:   10,
			Speed:    10,
			Damage:   1,
			Ricochet: true,
		},
	}
}

// Player represents the player entity
type Player struct {
	Body

	Speed float64
	Aim   geom.Vec2 // last movement direction, bolts fly this way

	Lives    int
	MaxLives int
	Dead     bool

	// Timers
	Invincible      bool
	InvincibleTimer float64
	InvincibleMs    float64

	Bolt    ProjectileConfig
	Bullets Projectiles
}

// NewPlayer creates a player with its top-left corner at pos
func NewPlayer(pos geom.Vec2, cfg PlayerConfig) *Player {
	def := DefaultPlayerConfig()
	if cfg.Width == 0 {
		cfg.Width = def.Width
	}
	if cfg.Height == 0 {
		cfg.Height = def.Height
	}
	if cfg.Speed == 0 {
		cfg.Speed = def.Speed
	}
	if cfg.Lives == 0 {
		cfg.Lives = def.Lives
	}
	if cfg.Bolt.Speed == 0 {
		cfg.Bolt = def.Bolt
	}

	return &Player{
		Body: Body{
			Rect:        geom.R(pos.X, pos.Y, cfg.Width, cfg.Height),
			FacingRight: true,
		},
		Speed:        cfg.Speed,
		Aim:          geom.V(0, -1),
		Lives:        cfg.Lives,
		MaxLives:     cfg.Lives,
		InvincibleMs: cfg.InvincibleMs,
		Bolt:         cfg.Bolt,
		Bullets:      make(Projectiles, 0, 16),
	}
}

// Update counts down the invincibility window
func (p *Player) Update(deltaMs float64) {
	if !p.Invincible {
		return
	}
	p.InvincibleTimer -= deltaMs
	if p.InvincibleTimer <= 0 {
		p.InvincibleTimer = 0
		p.Invincible = false
	}
}

// Move walks the player along dir (any length, normalized here) with
// axis-separated wall collision. A non-zero dir becomes the aim direction.
func (p *Player) Move(dir geom.Vec2, obstacles []geom.Rect, deltaMs float64) {
	if p.Dead {
		return
	}
	n, ok := dir.Normalize()
	if !ok {
		return
	}
	p.Aim = n
	if n.X != 0 {
		p.FacingRight = n.X > 0
	}
	p.MoveAndCollide(n.Scale(p.Speed*FrameScale(deltaMs)), obstacles)
}

// Shoot fires a bolt along the aim direction from just outside the body
func (p *Player) Shoot() *Projectile {
	if p.Dead {
		return nil
	}
	origin := p.Center().Add(p.Aim.Scale(p.Rect.W/2 + 5))
	bolt := NewProjectile(OwnerPlayer, origin, p.Aim, p.Bolt)
	p.Bullets = append(p.Bullets, bolt)
	return bolt
}

// Alive reports whether the player still has lives
func (p *Player) Alive() bool {
	return !p.Dead
}

// IsInvincible returns true while hits are ignored
func (p *Player) IsInvincible() bool {
	return p.Invincible
}

// TakeDamage removes lives unless the player is invincible, then opens the
// i-frame window. Returns true if the hit killed the player.
func (p *Player) TakeDamage(amount int) bool {
	if p.Dead || p.Invincible || amount <= 0 {
		return false
	}
	p.Lives -= amount
	if p.Lives <= 0 {
		p.Lives = 0
		p.Dead = true
		return true
	}
	p.Invincible = true
	p.InvincibleTimer = p.InvincibleMs
	return false
}
