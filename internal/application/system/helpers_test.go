package system

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/younwookim/abode/internal/domain/entity"
	"github.com/younwookim/abode/internal/infrastructure/config"
)

const configDir = "../../../cmd/game/configs"

func loadTestConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.NewLoader(configDir).LoadAll()
	require.NoError(t, err)
	return cfg
}

// stageFromRows builds a stage config using the shipped tile mapping
func stageFromRows(rows ...string) *config.StageConfig {
	return &config.StageConfig{
		ID:       "test",
		TileSize: 50,
		Layers:   config.LayersConfig{Collision: rows},
		TileMapping: map[string]config.TileMappingConfig{
			"1": {Type: "wall", Solid: true},
			"W": {Type: "water"},
			"T": {Type: "trap", Damage: 1},
			"S": {Type: "bonus"},
			"F": {Type: "finish"},
			"P": {Type: "spawn"},
			"E": {Type: "enemy", Enemy: "ghoul"},
			"X": {Type: "enemy", Enemy: "nosuchenemy"},
			"B": {Type: "boss"},
		},
	}
}

func enemiesOf(actors []entity.Actor) []*entity.Enemy {
	var out []*entity.Enemy
	for _, a := range actors {
		if e, ok := a.(*entity.Enemy); ok {
			out = append(out, e)
		}
	}
	return out
}
