package entity

import (
	"github.com/younwookim/abode/internal/domain/geom"
	"github.com/younwookim/abode/internal/domain/navigation"
)

// EnemyState defines the behavior state of an enemy
type EnemyState int

const (
	StatePatrol EnemyState = iota
	StateChaseVisible
	StateChaseLastKnown
)

func (s EnemyState) String() string {
	switch s {
	case StatePatrol:
		return "Patrol"
	case StateChaseVisible:
		return "ChaseVisible"
	case StateChaseLastKnown:
		return "ChaseLastKnown"
	default:
		return "Unknown"
	}
}

// EnemyConfig holds enemy tuning
type EnemyConfig struct {
	Width         float64
	Height        float64
	Speed         float64 // pixels per nominal frame
	DetectRadius  float64
	ArrivalRadius float64
	Health        int
	ContactDamage int
}

// DefaultEnemyConfig returns the default enemy tuning
func DefaultEnemyConfig() EnemyConfig {
	return EnemyConfig{
		Width:         30,
		Height:        30,
		Speed:         4,
		DetectRadius:  250,
		ArrivalRadius: 5,
		Health:        1,
		ContactDamage: 1,
	}
}

// Enemy represents a pathfinding enemy
type Enemy struct {
	ID EntityID
	Body

	EnemyType     string
	MaxHealth     int
	Health        int
	ContactDamage int
	Active        bool

	Speed         float64
	DetectRadius  float64
	ArrivalRadius float64

	// AI
	State        EnemyState
	LastKnown    geom.Vec2
	HasLastKnown bool

	Patrol      []geom.Vec2
	PatrolIndex int

	Path      []geom.Vec2
	PathIndex int
	pathGoal  navigation.Cell
	hasGoal   bool
}

// NewEnemy creates an enemy centered on center
func NewEnemy(id EntityID, center geom.Vec2, enemyType string, cfg EnemyConfig) *Enemy {
	def := DefaultEnemyConfig()
	if cfg.Width == 0 {
		cfg.Width = def.Width
	}
	if cfg.Height == 0 {
		cfg.Height = def.Height
	}
	if cfg.ArrivalRadius == 0 {
		cfg.ArrivalRadius = def.ArrivalRadius
	}
	if cfg.Health == 0 {
		cfg.Health = def.Health
	}

	return &Enemy{
		ID:            id,
		Body:          Body{Rect: geom.RectAt(center, cfg.Width, cfg.Height)},
		EnemyType:     enemyType,
		MaxHealth:     cfg.Health,
		Health:        cfg.Health,
		ContactDamage: cfg.ContactDamage,
		Active:        true,
		Speed:         cfg.Speed,
		DetectRadius:  cfg.DetectRadius,
		ArrivalRadius: cfg.ArrivalRadius,
		State:         StatePatrol,
	}
}

// Update runs one tick of perception and movement.
// Priority: visible player, then last known position, then patrol.
func (e *Enemy) Update(player *Player, stage *Stage, deltaMs, nowMs float64) {
	if !e.Alive() {
		return
	}
	step := e.Speed * FrameScale(deltaMs)

	if player != nil && player.Alive() &&
		navigation.CanSee(e.Center(), player.Center(), e.DetectRadius, stage.Obstacles) {
		e.State = StateChaseVisible
		e.LastKnown = player.Center()
		e.HasLastKnown = true
		// Unreachable: hold position until the player moves
		e.goTo(e.LastKnown, stage, step)
		return
	}

	if e.HasLastKnown {
		e.State = StateChaseLastKnown
		if !e.goTo(e.LastKnown, stage, step) ||
			geom.Dist(e.Center(), e.LastKnown) < e.ArrivalRadius {
			e.forget()
		}
		return
	}

	e.State = StatePatrol
	e.patrol(stage, step)
}

// goTo moves one step toward target, following a grid path when target is
// in another cell. Returns false if no path exists.
func (e *Enemy) goTo(target geom.Vec2, stage *Stage, step float64) bool {
	grid := stage.Grid
	if grid == nil || grid.SameCell(e.Center(), target) {
		e.clearPath()
		e.StepToward(target, step, stage.Obstacles)
		return true
	}

	goal := grid.CellAt(target)
	if e.PathIndex >= len(e.Path) || !e.hasGoal || goal != e.pathGoal {
		path := grid.FindPath(e.Center(), target)
		if len(path) == 0 {
			e.clearPath()
			return false
		}
		e.Path = path
		e.PathIndex = 0
		if len(path) > 1 {
			// First node is the center of the cell we are standing in
			e.PathIndex = 1
		}
		e.pathGoal = goal
		e.hasGoal = true
	}

	waypoint := e.Path[e.PathIndex]
	if geom.Dist(e.Center(), waypoint) < e.ArrivalRadius {
		e.PathIndex++
		if e.PathIndex >= len(e.Path) {
			waypoint = target
		} else {
			waypoint = e.Path[e.PathIndex]
		}
	}
	e.StepToward(waypoint, step, stage.Obstacles)
	return true
}

func (e *Enemy) patrol(stage *Stage, step float64) {
	if len(e.Patrol) == 0 {
		return
	}
	if e.PatrolIndex >= len(e.Patrol) {
		e.PatrolIndex = 0
	}

	waypoint := e.Patrol[e.PatrolIndex]
	if geom.Dist(e.Center(), waypoint) < e.ArrivalRadius {
		e.PatrolIndex = (e.PatrolIndex + 1) % len(e.Patrol)
		waypoint = e.Patrol[e.PatrolIndex]
	}
	e.StepToward(waypoint, step, stage.Obstacles)
}

func (e *Enemy) forget() {
	e.HasLastKnown = false
	e.clearPath()
}

func (e *Enemy) clearPath() {
	e.Path = e.Path[:0]
	e.PathIndex = 0
	e.hasGoal = false
}

// TakeDamage applies damage to the enemy
func (e *Enemy) TakeDamage(damage int) bool {
	if !e.Alive() || damage <= 0 {
		return false
	}
	e.Health -= damage
	if e.Health <= 0 {
		e.Health = 0
		e.Active = false
		return true
	}
	return false
}

// Alive returns true if enemy is still alive
func (e *Enemy) Alive() bool {
	return e.Active && e.Health > 0
}

// Kill removes the enemy regardless of health
func (e *Enemy) Kill() {
	e.Health = 0
	e.Active = false
}

func (e *Enemy) Kind() ActorKind { return KindEnemy }

// Projectiles returns nil, enemies do not shoot
func (e *Enemy) Projectiles() Projectiles { return nil }
