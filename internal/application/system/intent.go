package system

import (
	"github.com/younwookim/abode/internal/domain/entity"
	"github.com/younwookim/abode/internal/domain/geom"
)

// Intent represents an action that the player wants to perform
type Intent interface {
	isIntent()
}

// MoveIntent represents a movement intention
type MoveIntent struct {
	Dir geom.Vec2 // not normalized
}

func (MoveIntent) isIntent() {}

// FireIntent represents a shot along the current aim
type FireIntent struct{}

func (FireIntent) isIntent() {}

// Intents translates one frame of input into player intents. Movement is
// applied before firing so a bolt flies along the new direction.
func (in InputState) Intents() []Intent {
	var out []Intent
	if d := in.Direction(); d != (geom.Vec2{}) {
		out = append(out, MoveIntent{Dir: d})
	}
	if in.Shoot {
		out = append(out, FireIntent{})
	}
	return out
}

// ApplyIntents executes intents on the player
func ApplyIntents(player *entity.Player, intents []Intent, stage *entity.Stage, deltaMs float64) {
	for _, it := range intents {
		switch it := it.(type) {
		case MoveIntent:
			player.Move(it.Dir, stage.Obstacles, deltaMs)
		case FireIntent:
			player.Shoot()
		}
	}
}
