package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/abode/internal/domain/entity"
	"github.com/younwookim/abode/internal/domain/geom"
)

func TestInputState_Intents(t *testing.T) {
	assert.Empty(t, InputState{}.Intents())
	assert.Empty(t, InputState{Left: true, Right: true}.Intents(), "cancelled movement is no intent")

	intents := InputState{Right: true, Shoot: true}.Intents()
	require.Len(t, intents, 2)
	assert.Equal(t, MoveIntent{Dir: geom.V(1, 0)}, intents[0])
	assert.Equal(t, FireIntent{}, intents[1])
}

func TestApplyIntents(t *testing.T) {
	stage := entity.NewStage("open", 500, 500, 50, nil)
	player := entity.NewPlayer(geom.V(100, 100), entity.DefaultPlayerConfig())

	ApplyIntents(player, InputState{Right: true, Shoot: true}.Intents(), stage, entity.FrameMs)

	assert.InDelta(t, 104.0, player.Rect.X, 1e-9)
	require.Len(t, player.Bullets, 1)
	assert.Equal(t, geom.V(1, 0), player.Bullets[0].Dir, "fires along the new direction")
}
