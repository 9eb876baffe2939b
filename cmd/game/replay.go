package main

import (
	"log/slog"
	"math/rand"

	"github.com/younwookim/abode/internal/application/replay"
	"github.com/younwookim/abode/internal/application/system"
	"github.com/younwookim/abode/internal/infrastructure/config"
)

// replaySummary is the end state of a re-simulated run
type replaySummary struct {
	RunID    string
	Stage    string
	Frames   int
	NowMs    float64
	Lives    int
	Kills    int
	Actors   int
	Cleared  bool
	GameOver bool
}

func (s replaySummary) log(logger *slog.Logger) {
	logger.Info("replay finished",
		"recorded_run", s.RunID,
		"stage", s.Stage,
		"frames", s.Frames,
		"t", s.NowMs,
		"lives", s.Lives,
		"kills", s.Kills,
		"actors", s.Actors,
		"cleared", s.Cleared,
		"game_over", s.GameOver)
}

// verifyReplay loads a replay file and re-simulates it
func verifyReplay(loader *config.Loader, cfg *config.GameConfig, filename string, logger *slog.Logger) (replaySummary, error) {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return replaySummary{}, err
	}
	w, err := runReplay(loader, cfg, data, logger)
	if err != nil {
		return replaySummary{}, err
	}
	s := summarize(w)
	s.RunID = data.RunID
	return s, nil
}

// runReplay steps a fresh world through the recorded frames. The same
// seed, inputs and deltas always produce the same world.
func runReplay(loader *config.Loader, cfg *config.GameConfig, data *replay.ReplayData, logger *slog.Logger) (*system.World, error) {
	stageCfg, err := loader.LoadStage(data.Stage)
	if err != nil {
		return nil, err
	}
	level, err := system.LoadStage(stageCfg, cfg, rand.New(rand.NewSource(data.Seed)))
	if err != nil {
		return nil, err
	}

	w := system.NewWorld(level, cfg, logger)
	r := replay.NewReplayer(*data)
	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		w.Step(toInputState(in), in.DeltaMs)
	}
	return w, nil
}

func toInputState(in replay.ReplayInput) system.InputState {
	return system.InputState{
		Left:  in.Left,
		Right: in.Right,
		Up:    in.Up,
		Down:  in.Down,
		Shoot: in.Shoot,
	}
}

func summarize(w *system.World) replaySummary {
	return replaySummary{
		Stage:    w.Stage.ID,
		Frames:   w.Frame,
		NowMs:    w.NowMs,
		Lives:    w.Player.Lives,
		Kills:    w.Kills,
		Actors:   len(w.Actors),
		Cleared:  w.Cleared,
		GameOver: w.GameOver(),
	}
}
