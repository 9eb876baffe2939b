package entity

import (
	"math"
	"math/rand"

	"github.com/younwookim/abode/internal/domain/geom"
)

// BossPhase is the boss behavior phase. Phases only move forward.
type BossPhase int

const (
	PhaseNormal BossPhase = iota
	PhaseFinalBarrage
	PhaseFinalChaos
)

func (p BossPhase) String() string {
	switch p {
	case PhaseNormal:
		return "Normal"
	case PhaseFinalBarrage:
		return "FinalBarrage"
	case PhaseFinalChaos:
		return "FinalChaos"
	default:
		return "Unknown"
	}
}

// BossConfig holds boss tuning. Times are in milliseconds, speeds in
// pixels per nominal frame.
type BossConfig struct {
	Width         float64
	Height        float64
	Speed         float64
	Health        int
	Shots         int
	ContactDamage int

	ShootCooldownMs float64
	DetectRadius    float64
	DirChangeMs     float64

	// Dodge steering
	DodgeRadius    float64
	DodgeStrength  float64
	DodgeAmplify   float64
	MaxSpeedFactor float64

	// Final phases
	BarrageIntervalMs float64
	BarrageDurationMs float64
	CenterSpeed       float64
	ArrivalRadius     float64

	Aimed   ProjectileConfig
	Scatter ProjectileConfig
}

// DefaultBossConfig returns the default boss tuning
func DefaultBossConfig() BossConfig {
	return BossConfig{
		Width:             100,
		Height:            100,
		Speed:             2,
		Health:            14,
		Shots:             20,
		ContactDamage:     1,
		ShootCooldownMs:   1000,
		DetectRadius:      300,
		DirChangeMs:       3000,
		DodgeRadius:       100,
		DodgeStrength:     1,
		DodgeAmplify:      1.5,
		MaxSpeedFactor:    2.5,
		BarrageIntervalMs: 50,
		BarrageDurationMs: 5000,
		CenterSpeed:       4.5,
		ArrivalRadius:     5,
		Aimed:             ProjectileConfig{Width: 10, Height: 10, Speed: 7, Damage: 1},
		Scatter:           ProjectileConfig{Width: 10, Height: 10, Speed: 6, Damage: 1},
	}
}

// Boss is the three-phase stage boss
type Boss struct {
	ID EntityID
	Body

	MaxHealth int
	Health    int
	Defeated  bool

	Phase          BossPhase
	PhaseEnteredAt float64
	ShotsLeft      int
	Velocity       geom.Vec2

	// Timestamps of the last action, in clock milliseconds
	lastShotAt      float64
	lastBarrageAt   float64
	lastDirChangeAt float64

	Bullets Projectiles

	cfg BossConfig
	rng *rand.Rand
}

// NewBoss creates a boss with its top-left corner at pos. rng drives
// wander direction and scatter angles.
func NewBoss(id EntityID, pos geom.Vec2, cfg BossConfig, rng *rand.Rand) *Boss {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	b := &Boss{
		ID:            id,
		Body:          Body{Rect: geom.R(pos.X, pos.Y, cfg.Width, cfg.Height)},
		MaxHealth:     cfg.Health,
		Health:        cfg.Health,
		Phase:         PhaseNormal,
		ShotsLeft:     cfg.Shots,
		lastShotAt:    -cfg.ShootCooldownMs,
		lastBarrageAt: -cfg.BarrageIntervalMs,
		Bullets:       make(Projectiles, 0, 64),
		cfg:           cfg,
		rng:           rng,
	}
	b.randomizeVelocity()
	return b
}

// Update runs one tick. A defeated boss no longer moves or fires, but
// bullets already in flight keep flying and can still hit the player.
func (b *Boss) Update(player *Player, stage *Stage, deltaMs, nowMs float64) {
	if !b.Defeated {
		b.advancePhase(nowMs)

		switch b.Phase {
		case PhaseNormal:
			b.updateNormal(player, stage, deltaMs, nowMs)
		case PhaseFinalBarrage:
			b.updateBarrage(player, stage, deltaMs, nowMs)
		case PhaseFinalChaos:
			b.updateChaos(player, stage, deltaMs, nowMs)
		}
	}

	var targets []Target
	if player != nil {
		targets = []Target{player}
	}
	b.Bullets.Advance(deltaMs)
	b.Bullets.Resolve(stage, targets)
	b.Bullets = b.Bullets.Compact()
}

func (b *Boss) advancePhase(nowMs float64) {
	switch b.Phase {
	case PhaseNormal:
		if b.ShotsLeft <= 0 || b.Health <= b.MaxHealth/2 {
			b.enter(PhaseFinalBarrage, nowMs)
		}
	case PhaseFinalBarrage:
		if nowMs-b.PhaseEnteredAt > b.cfg.BarrageDurationMs {
			b.enter(PhaseFinalChaos, nowMs)
			b.randomizeVelocity()
			b.lastDirChangeAt = nowMs
		}
	}
}

func (b *Boss) enter(phase BossPhase, nowMs float64) {
	if phase <= b.Phase {
		return
	}
	b.Phase = phase
	b.PhaseEnteredAt = nowMs
}

func (b *Boss) updateNormal(player *Player, stage *Stage, deltaMs, nowMs float64) {
	if nowMs-b.lastDirChangeAt >= b.cfg.DirChangeMs {
		b.randomizeVelocity()
		b.lastDirChangeAt = nowMs
	}
	if player != nil {
		b.dodge(player.Bullets)
	}

	// Bounce off walls instead of stopping
	d := b.Velocity.Scale(FrameScale(deltaMs))
	blockedX, blockedY := b.MoveAndCollide(d, stage.Obstacles)
	if blockedX {
		b.Velocity.X = -b.Velocity.X
	}
	if blockedY {
		b.Velocity.Y = -b.Velocity.Y
	}

	if !canTarget(player) || b.ShotsLeft <= 0 {
		return
	}
	if geom.Dist(b.Center(), player.Center()) > b.cfg.DetectRadius {
		return
	}
	if nowMs-b.lastShotAt < b.cfg.ShootCooldownMs {
		return
	}
	aim := player.Center().Sub(b.Center())
	b.Bullets = append(b.Bullets, NewProjectile(OwnerEnemy, b.Center(), aim, b.cfg.Aimed))
	b.ShotsLeft--
	b.lastShotAt = nowMs
}

// dodge pushes the velocity away from nearby player bolts and caps the
// resulting speed
func (b *Boss) dodge(bolts Projectiles) {
	dodged := false
	c := b.Center()
	for _, p := range bolts {
		if !p.Active {
			continue
		}
		away := c.Sub(p.Center())
		if away.Len() >= b.cfg.DodgeRadius {
			continue
		}
		n, ok := away.Normalize()
		if !ok {
			continue
		}
		b.Velocity = b.Velocity.Add(n.Scale(b.cfg.DodgeStrength * b.cfg.DodgeAmplify))
		dodged = true
	}
	if dodged {
		b.Velocity = b.Velocity.ClampLen(b.cfg.Speed * b.cfg.MaxSpeedFactor)
	}
}

func (b *Boss) updateBarrage(player *Player, stage *Stage, deltaMs, nowMs float64) {
	to := stage.Center().Sub(b.Center())
	dist := to.Len()
	if dist > b.cfg.ArrivalRadius {
		// Straight line to the center, walls ignored
		dir, _ := to.Normalize()
		step := min(b.cfg.CenterSpeed*FrameScale(deltaMs), dist)
		b.Rect = b.Rect.Translate(dir.Scale(step))
		return
	}
	b.scatter(player, nowMs)
}

func (b *Boss) updateChaos(player *Player, stage *Stage, deltaMs, nowMs float64) {
	if nowMs-b.lastDirChangeAt >= b.cfg.DirChangeMs {
		b.randomizeVelocity()
		b.lastDirChangeAt = nowMs
	}

	b.Rect = b.Rect.Translate(b.Velocity.Scale(FrameScale(deltaMs)))

	// Walls are ignored, only the arena edge reflects
	if (b.Rect.Left() < 0 && b.Velocity.X < 0) || (b.Rect.Right() > stage.Width && b.Velocity.X > 0) {
		b.Velocity.X = -b.Velocity.X
	}
	if (b.Rect.Top() < 0 && b.Velocity.Y < 0) || (b.Rect.Bottom() > stage.Height && b.Velocity.Y > 0) {
		b.Velocity.Y = -b.Velocity.Y
	}

	b.scatter(player, nowMs)
}

// scatter fires one unaimed bullet if the barrage interval has elapsed
func (b *Boss) scatter(player *Player, nowMs float64) {
	if !canTarget(player) || nowMs-b.lastBarrageAt < b.cfg.BarrageIntervalMs {
		return
	}
	dir := geom.FromAngle(b.rng.Float64() * 2 * math.Pi)
	b.Bullets = append(b.Bullets, NewProjectile(OwnerEnemy, b.Center(), dir, b.cfg.Scatter))
	b.lastBarrageAt = nowMs
}

func (b *Boss) randomizeVelocity() {
	b.Velocity = geom.FromAngle(b.rng.Float64() * 2 * math.Pi).Scale(b.cfg.Speed)
}

func canTarget(p *Player) bool {
	return p != nil && p.Alive()
}

// TakeDamage reduces health. Returns true on the hit that defeats the boss.
func (b *Boss) TakeDamage(amount int) bool {
	if b.Defeated || amount <= 0 {
		return false
	}
	b.Health -= amount
	if b.Health <= 0 {
		b.Health = 0
		b.Defeated = true
		return true
	}
	return false
}

// Alive returns true until the boss is defeated
func (b *Boss) Alive() bool {
	return !b.Defeated
}

func (b *Boss) Kind() ActorKind { return KindBoss }

// Projectiles returns the boss bullets in flight
func (b *Boss) Projectiles() Projectiles { return b.Bullets }
