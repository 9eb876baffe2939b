package entity

import (
	"github.com/younwookim/abode/internal/domain/geom"
	"github.com/younwookim/abode/internal/domain/navigation"
)

// EntityID is a unique identifier for an entity
type EntityID uint32

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
	TileWater
	TileTrap
	TileBonus
	TileFinish
)

// Stage is the static geometry of one level. It is built once per level
// load and never mutated during play.
type Stage struct {
	ID       string
	Width    float64
	Height   float64
	TileSize float64

	Obstacles []geom.Rect
	Grid      *navigation.Grid

	// Points of interest
	Spawn     geom.Vec2
	Finish    geom.Rect
	HasFinish bool
	Water     []geom.Rect
	Traps     []geom.Rect
	Bonuses   []geom.Rect

	// Projectiles further than this outside the arena are culled
	CullMargin float64
}

// NewStage creates a stage and precomputes its navigation grid
func NewStage(id string, width, height, tileSize float64, obstacles []geom.Rect) *Stage {
	return &Stage{
		ID:         id,
		Width:      width,
		Height:     height,
		TileSize:   tileSize,
		Obstacles:  obstacles,
		Grid:       navigation.NewGrid(obstacles, tileSize, width, height),
		CullMargin: 50,
	}
}

// Center returns the geometric center of the arena
func (s *Stage) Center() geom.Vec2 {
	return geom.Vec2{X: s.Width / 2, Y: s.Height / 2}
}

// OutOfBounds reports whether r has left the arena plus the cull margin
func (s *Stage) OutOfBounds(r geom.Rect) bool {
	m := s.CullMargin
	return r.X < -m || r.X > s.Width+m || r.Y < -m || r.Y > s.Height+m
}

//go:generate go tool mockgen -destination=./mocks/target_mock.go -package=mocks . Target

// Target is anything a projectile can damage
type Target interface {
	Hitbox() geom.Rect
	Alive() bool
	// TakeDamage applies damage and returns true if the hit was lethal
	TakeDamage(amount int) bool
}

// ActorKind tags the concrete variant behind an Actor
type ActorKind int

const (
	KindEnemy ActorKind = iota
	KindBoss
)

// Actor is a hostile entity updated once per tick
type Actor interface {
	Target
	Kind() ActorKind
	Update(player *Player, stage *Stage, deltaMs, nowMs float64)
	// Projectiles returns the in-flight projectiles owned by the actor
	Projectiles() Projectiles
}
