package system

import (
	"log/slog"

	"github.com/younwookim/abode/internal/domain/entity"
	"github.com/younwookim/abode/internal/infrastructure/config"
)

// World owns the simulation of one stage and advances it one tick at a
// time. The clock is supplied by the caller through Step, so a run is
// reproducible from its recorded deltas.
type World struct {
	Stage  *entity.Stage
	Player *entity.Player
	Actors []entity.Actor
	Next   string

	NowMs   float64
	Frame   int
	Kills   int
	Cleared bool

	combat *CombatSystem
	logger *slog.Logger

	phases    map[entity.EntityID]entity.BossPhase
	deathSeen bool
}

// NewWorld creates a world from a loaded level. logger may be nil.
func NewWorld(level *Level, cfg *config.GameConfig, logger *slog.Logger) *World {
	if logger == nil {
		logger = slog.Default()
	}
	var physics *config.PhysicsConfig
	if cfg != nil {
		physics = cfg.Physics
	}

	w := &World{
		Stage:  level.Stage,
		Player: entity.NewPlayer(level.Stage.Spawn, PlayerTuning(cfg)),
		Actors: level.Actors,
		Next:   level.Next,
		combat: NewCombatSystem(physics),
		logger: logger.With("stage", level.Stage.ID),
		phases: make(map[entity.EntityID]entity.BossPhase),
	}
	w.combat.OnKill = func(a entity.Actor) {
		w.Kills++
		if a.Kind() == entity.KindBoss {
			w.logger.Info("boss defeated", "t", w.NowMs)
			return
		}
		w.logger.Debug("actor destroyed", "kind", kindName(a.Kind()), "t", w.NowMs)
	}
	for _, a := range w.Actors {
		if b, ok := a.(*entity.Boss); ok {
			w.phases[b.ID] = b.Phase
		}
	}
	return w
}

// OnScreenShake registers the screen shake callback fired when the player
// loses a life
func (w *World) OnScreenShake(fn func(intensity float64)) {
	w.combat.OnScreenShake = fn
}

// Step advances the simulation by deltaMs. Order: player, contacts and
// terrain, actors (each resolving its own bullets against the player),
// player bolts, then compaction of removed actors.
func (w *World) Step(input InputState, deltaMs float64) {
	if w.Cleared {
		return
	}
	w.NowMs += deltaMs
	w.Frame++

	p := w.Player
	if p.Alive() {
		p.Update(deltaMs)
		ApplyIntents(p, input.Intents(), w.Stage, deltaMs)
	}

	w.combat.ResolveContacts(p, w.Actors)
	w.combat.ResolveTraps(p, w.Stage)

	if p.Alive() && w.Stage.HasFinish && p.Hitbox().Intersects(w.Stage.Finish) {
		w.Cleared = true
		w.logger.Info("stage cleared", "t", w.NowMs, "kills", w.Kills, "lives", p.Lives)
		return
	}

	for _, a := range w.Actors {
		a.Update(p, w.Stage, deltaMs, w.NowMs)
	}
	w.observePhases()

	if p.Alive() {
		w.combat.ResolvePlayerBolts(p, w.Stage, w.Actors, deltaMs)
	}

	w.compactActors()

	if !p.Alive() && !w.deathSeen {
		w.deathSeen = true
		w.logger.Info("player died", "t", w.NowMs, "frame", w.Frame)
	}
}

// GameOver reports whether the player has no lives left
func (w *World) GameOver() bool {
	return !w.Player.Alive()
}

// Boss returns the first boss on the stage, or nil
func (w *World) Boss() *entity.Boss {
	for _, a := range w.Actors {
		if b, ok := a.(*entity.Boss); ok {
			return b
		}
	}
	return nil
}

func (w *World) observePhases() {
	for _, a := range w.Actors {
		b, ok := a.(*entity.Boss)
		if !ok {
			continue
		}
		if prev := w.phases[b.ID]; prev != b.Phase {
			w.phases[b.ID] = b.Phase
			w.logger.Info("boss phase changed",
				"from", prev.String(),
				"to", b.Phase.String(),
				"t", b.PhaseEnteredAt,
				"health", b.Health,
				"shots", b.ShotsLeft)
		}
	}
}

// compactActors drops dead actors once they have no bullets in flight
func (w *World) compactActors() {
	out := w.Actors[:0]
	for _, a := range w.Actors {
		if a.Alive() || len(a.Projectiles()) > 0 {
			out = append(out, a)
			continue
		}
		if b, ok := a.(*entity.Boss); ok {
			delete(w.phases, b.ID)
		}
	}
	for i := len(out); i < len(w.Actors); i++ {
		w.Actors[i] = nil
	}
	w.Actors = out
}

func kindName(k entity.ActorKind) string {
	switch k {
	case entity.KindEnemy:
		return "enemy"
	case entity.KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}
