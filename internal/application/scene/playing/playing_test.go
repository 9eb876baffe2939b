package playing

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/abode/internal/application/replay"
	"github.com/younwookim/abode/internal/application/scene"
	"github.com/younwookim/abode/internal/application/state"
	"github.com/younwookim/abode/internal/application/system"
	"github.com/younwookim/abode/internal/infrastructure/config"
)

const configDir = "../../../../cmd/game/configs"

// corridor is a stage where walking right for a few frames reaches the
// finish tile
func corridor(id, next string) string {
	s := "id: " + id + "\ntileSize: 50\n"
	if next != "" {
		s += "next: " + next + "\n"
	}
	return s + `layers:
  collision:
    - "11111"
    - "1PF 1"
    - "11111"
tileMapping:
  "1": { type: wall, solid: true }
  "P": { type: spawn }
  "F": { type: finish }
`
}

// testOptions builds options over the shipped configs plus two chained
// corridor stages
func testOptions(t *testing.T) Options {
	t.Helper()

	physics, err := os.ReadFile(filepath.Join(configDir, "physics.json"))
	require.NoError(t, err)
	entities, err := os.ReadFile(filepath.Join(configDir, "entities.json"))
	require.NoError(t, err)

	fsys := fstest.MapFS{
		"physics.json":      {Data: physics},
		"entities.json":     {Data: entities},
		"stages/first.yaml": {Data: []byte(corridor("first", "last"))},
		"stages/last.yaml":  {Data: []byte(corridor("last", ""))},
	}
	loader := config.NewFSLoader(fsys, ".")
	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	return Options{
		Loader: loader,
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		RunID:  "test-run",
		Seed:   7,
	}
}

func newTestPlaying(t *testing.T, opts Options, stage string) *Playing {
	t.Helper()
	p, err := New(opts, stage)
	require.NoError(t, err)
	p.readControls = func() Controls { return Controls{} }
	return p
}

// feed makes the next Update calls read the given controls, then idle
func feed(p *Playing, frames ...Controls) {
	p.readControls = func() Controls {
		if len(frames) == 0 {
			return Controls{}
		}
		c := frames[0]
		frames = frames[1:]
		return c
	}
}

func right() Controls {
	return Controls{InputState: system.InputState{Right: true}}
}

func TestPlaying_ImplementsScene(t *testing.T) {
	// Compile-time check that Playing implements scene.Scene
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	opts := testOptions(t)
	p := newTestPlaying(t, opts, "first")

	require.NotNil(t, p.World())
	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, "first", p.World().Stage.ID)
	assert.Equal(t, "last", p.World().Next)
	assert.Equal(t, 5, p.World().Player.Lives)
	assert.Nil(t, p.recorder, "recording is off without a directory")
}

func TestNewPlaying_UnknownStage(t *testing.T) {
	_, err := New(testOptions(t), "nowhere")
	assert.Error(t, err)
}

func TestNewPlaying_ShippedStages(t *testing.T) {
	loader := config.NewLoader(configDir)
	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	opts := Options{Loader: loader, Config: cfg, Logger: slog.New(slog.DiscardHandler), Seed: 1}

	for _, name := range []string{"level1", "level2", "level3"} {
		t.Run(name, func(t *testing.T) {
			p, err := New(opts, name)
			require.NoError(t, err)
			assert.NotEmpty(t, p.World().Actors)
		})
	}
}

func TestPlaying_Update_ReturnsNilWhenPlaying(t *testing.T) {
	p := newTestPlaying(t, testOptions(t), "first")

	next, err := p.Update(1.0 / 60.0)

	assert.NoError(t, err)
	assert.Nil(t, next, "Should return nil when continuing to play")
	assert.Equal(t, 1, p.World().Frame)
	assert.InDelta(t, 1000.0/60.0, p.World().NowMs, 1e-9)
}

func TestPlaying_PauseFreezesWorld(t *testing.T) {
	p := newTestPlaying(t, testOptions(t), "first")
	pause := Controls{InputState: system.InputState{Pause: true}}

	feed(p, pause, right(), right(), pause, right())

	_, _ = p.Update(1.0 / 60.0)
	assert.Equal(t, state.StatePaused, p.State())

	_, _ = p.Update(1.0 / 60.0)
	_, _ = p.Update(1.0 / 60.0)
	assert.Equal(t, 0, p.World().Frame)

	_, _ = p.Update(1.0 / 60.0)
	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, 0, p.World().Frame, "the unpausing frame does not step")

	_, _ = p.Update(1.0 / 60.0)
	assert.Equal(t, 1, p.World().Frame)
}

func TestPlaying_GameOverAndRestart(t *testing.T) {
	p := newTestPlaying(t, testOptions(t), "first")
	p.World().Player.TakeDamage(5)

	_, err := p.Update(1.0 / 60.0)
	require.NoError(t, err)
	assert.Equal(t, state.StateGameOver, p.State())

	old := p.World()
	feed(p, Controls{InputState: system.InputState{Restart: true}})
	_, err = p.Update(1.0 / 60.0)
	require.NoError(t, err)

	assert.Equal(t, state.StatePlaying, p.State())
	assert.NotSame(t, old, p.World())
	assert.Equal(t, 5, p.World().Player.Lives)
}

func TestPlaying_ClearingChainsStagesThenWins(t *testing.T) {
	p := newTestPlaying(t, testOptions(t), "first")

	var next scene.Scene
	sawBanner := false
	for range 200 {
		feed(p, right())
		var err error
		next, err = p.Update(1.0 / 60.0)
		require.NoError(t, err)
		if next != nil {
			break
		}
		if p.State() == state.StateStageClear {
			sawBanner = true
		}
	}
	assert.True(t, sawBanner, "the clear banner shows before the next stage")
	require.NotNil(t, next, "the next stage loads once the banner ends")

	last, ok := next.(*Playing)
	require.True(t, ok)
	assert.Equal(t, "last", last.World().Stage.ID)

	for range 200 {
		feed(last, right())
		n, err := last.Update(1.0 / 60.0)
		require.NoError(t, err)
		require.Nil(t, n, "no stage after the last one")
		if last.State() == state.StateVictory {
			break
		}
	}
	assert.Equal(t, state.StateVictory, last.State())
	assert.True(t, last.World().Cleared)
}

func TestPlaying_StageClearBannerFreezesWorld(t *testing.T) {
	p := newTestPlaying(t, testOptions(t), "first")
	p.World().Cleared = true

	_, err := p.Update(1.0 / 60.0)
	require.NoError(t, err)
	require.Equal(t, state.StateStageClear, p.State())
	frame := p.World().Frame

	next, err := p.Update(stageClearMs / 2000)
	require.NoError(t, err)
	assert.Nil(t, next, "banner still showing")
	assert.Equal(t, frame, p.World().Frame, "the world does not step during the banner")

	next, err = p.Update(stageClearMs / 1000)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "last", next.(*Playing).World().Stage.ID)
}

func TestPlaying_RecordsAndSaves(t *testing.T) {
	opts := testOptions(t)
	opts.RecordDir = t.TempDir()
	p := newTestPlaying(t, opts, "first")
	require.NotNil(t, p.recorder)

	feed(p, right(), Controls{InputState: system.InputState{Shoot: true}})
	_, _ = p.Update(1.0 / 60.0)
	_, _ = p.Update(1.0 / 60.0)
	assert.Equal(t, 2, p.recorder.FrameCount())

	data := p.recorder.Data()
	assert.Equal(t, "test-run", data.RunID)
	assert.Equal(t, int64(7), data.Seed)
	assert.True(t, data.Frames[0].R)
	assert.True(t, data.Frames[1].S)

	// Game over saves automatically
	p.World().Player.TakeDamage(5)
	_, _ = p.Update(1.0 / 60.0)

	files, err := filepath.Glob(filepath.Join(opts.RecordDir, "replay_first_*.json"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	saved, err := replay.LoadReplay(files[0])
	require.NoError(t, err)
	assert.Len(t, saved.Frames, 3)
	assert.Equal(t, "first", saved.Stage)
}

func TestPlaying_OnExitStopsRecorder(t *testing.T) {
	opts := testOptions(t)
	opts.RecordDir = t.TempDir()
	p := newTestPlaying(t, opts, "first")

	assert.NotPanics(t, func() {
		p.OnEnter()
		p.OnExit()
	})
	assert.False(t, p.recorder.IsRecording())
}

func TestRecorder_StopAndIsRecording(t *testing.T) {
	r := NewRecorder("run", 12345, "test")

	assert.True(t, r.IsRecording())

	r.Stop()

	assert.False(t, r.IsRecording())
}

func TestRecorder_DoesNotRecordWhenStopped(t *testing.T) {
	r := NewRecorder("run", 12345, "test")
	r.Stop()

	r.RecordFrame(system.InputState{Left: true}, 16)

	assert.Equal(t, 0, r.FrameCount())
}

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder("run", 1, "test")

	r.RecordFrame(system.InputState{Left: true, Up: true, Pause: true}, 16)
	r.RecordFrame(system.InputState{Down: true, Shoot: true}, 20)

	frames := r.Data().Frames
	require.Len(t, frames, 2)
	assert.Equal(t, replay.FrameInput{F: 0, L: true, U: true, DT: 16}, frames[0])
	assert.Equal(t, replay.FrameInput{F: 1, D: true, S: true, DT: 20}, frames[1])
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder("run", 1, "test")
	err := r.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.ErrorIs(t, err, replay.ErrNoFrames)
}
