package system

import (
	"errors"
	"fmt"
	"math/rand"
	"unicode/utf8"

	"github.com/younwookim/abode/internal/domain/entity"
	"github.com/younwookim/abode/internal/domain/geom"
	"github.com/younwookim/abode/internal/domain/navigation"
	"github.com/younwookim/abode/internal/infrastructure/config"
)

// ErrNoSpawn is returned for a stage without a player spawn tile
var ErrNoSpawn = errors.New("stage has no player spawn")

const defaultTileSize = 50

// Level is a loaded stage with its initial actors
type Level struct {
	Stage  *entity.Stage
	Actors []entity.Actor
	Name   string
	Next   string // empty for the last stage
}

// LoadStage converts a StageConfig into a Stage and spawns its actors.
// Unknown tile characters are empty floor and unknown enemy types are
// skipped. rng seeds every boss on the stage.
func LoadStage(cfg *config.StageConfig, game *config.GameConfig, rng *rand.Rand) (*Level, error) {
	tileSize := cfg.TileSize
	if tileSize <= 0 && game != nil && game.Physics != nil {
		tileSize = game.Physics.Navigation.TileSize
	}
	if tileSize <= 0 {
		tileSize = defaultTileSize
	}
	ts := float64(tileSize)

	cols := 0
	for _, row := range cfg.Layers.Collision {
		cols = max(cols, utf8.RuneCountInString(row))
	}
	width := float64(cols) * ts
	height := float64(len(cfg.Layers.Collision)) * ts

	var (
		obstacles           []geom.Rect
		water, traps, bonus []geom.Rect
		spawn               geom.Vec2
		hasSpawn            bool
		finish              geom.Rect
		hasFinish           bool
		enemySpawns         []enemySpawn
		bossSpawns          []geom.Vec2
	)

	for y, row := range cfg.Layers.Collision {
		for x, char := range []rune(row) {
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				continue
			}

			tile := geom.R(float64(x)*ts, float64(y)*ts, ts, ts)
			switch mapping.Type {
			case "wall":
				if mapping.Solid {
					obstacles = append(obstacles, tile)
				}
			case "water":
				water = append(water, tile)
			case "trap":
				traps = append(traps, tile)
			case "bonus":
				bonus = append(bonus, tile)
			case "finish":
				finish, hasFinish = tile, true
			case "spawn":
				spawn, hasSpawn = geom.V(tile.X, tile.Y), true
			case "enemy":
				enemySpawns = append(enemySpawns, enemySpawn{center: tile.Center(), typ: mapping.Enemy})
			case "boss":
				bossSpawns = append(bossSpawns, geom.V(tile.X, tile.Y))
			}
		}
	}

	if !hasSpawn {
		return nil, fmt.Errorf("load stage %s: %w", cfg.ID, ErrNoSpawn)
	}

	stage := entity.NewStage(cfg.ID, width, height, ts, obstacles)
	stage.Spawn = spawn
	stage.Finish, stage.HasFinish = finish, hasFinish
	stage.Water = water
	stage.Traps = traps
	stage.Bonuses = bonus
	if game != nil && game.Physics != nil && game.Physics.Projectile.CullMargin > 0 {
		stage.CullMargin = game.Physics.Projectile.CullMargin
	}

	patrols := make(map[int][]geom.Vec2, len(cfg.Patrols))
	for _, p := range cfg.Patrols {
		for _, pt := range p.Points {
			patrols[p.Enemy] = append(patrols[p.Enemy], stage.Grid.CenterOf(navigation.Cell{X: pt.X, Y: pt.Y}))
		}
	}

	var actors []entity.Actor
	nextID := entity.EntityID(1)
	for i, s := range enemySpawns {
		tuning, ok := EnemyTuning(game, s.typ)
		if !ok {
			continue
		}
		enemy := entity.NewEnemy(nextID, s.center, s.typ, tuning)
		enemy.Patrol = patrols[i]
		actors = append(actors, enemy)
		nextID++
	}

	if len(bossSpawns) > 0 {
		if rng == nil {
			rng = rand.New(rand.NewSource(1))
		}
		tuning := BossTuning(game)
		for _, pos := range bossSpawns {
			actors = append(actors, entity.NewBoss(nextID, pos, tuning, rng))
			nextID++
		}
	}

	return &Level{
		Stage:  stage,
		Actors: actors,
		Name:   cfg.Name,
		Next:   cfg.Next,
	}, nil
}

type enemySpawn struct {
	center geom.Vec2
	typ    string
}
