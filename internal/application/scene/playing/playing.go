// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log/slog"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/abode/internal/application/scene"
	"github.com/younwookim/abode/internal/application/state"
	"github.com/younwookim/abode/internal/application/system"
	"github.com/younwookim/abode/internal/domain/entity"
	"github.com/younwookim/abode/internal/domain/geom"
	"github.com/younwookim/abode/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorWall       = color.RGBA{80, 80, 100, 255}
	colorWater      = color.RGBA{40, 90, 180, 255}
	colorTrap       = color.RGBA{200, 50, 50, 255}
	colorBonus      = color.RGBA{255, 215, 0, 255}
	colorFinish     = color.RGBA{120, 220, 160, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorBolt       = color.RGBA{255, 200, 100, 255}
	colorEnemy      = color.RGBA{200, 100, 100, 255}
	colorEnemyAlert = color.RGBA{255, 60, 60, 255}
	colorEnemyHunt  = color.RGBA{230, 140, 60, 255}
	colorBoss       = color.RGBA{150, 60, 180, 255}
	colorBossRage   = color.RGBA{220, 40, 120, 255}
	colorEnemyBolt  = color.RGBA{255, 100, 100, 255}
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = color.RGBA{100, 200, 100, 255}
	colorHeart      = color.RGBA{230, 50, 80, 255}
)

// stageClearMs is how long the stage clear banner shows
const stageClearMs = 1500.0

// Options configures a run of the game
type Options struct {
	Loader *config.Loader
	Config *config.GameConfig
	Logger *slog.Logger

	RunID string
	// Seed drives boss randomness. Zero picks a new time-based seed for
	// every stage attempt.
	Seed int64
	// RecordDir enables input recording when not empty. One file is
	// written per stage attempt.
	RecordDir string
}

// Controls is one frame of scene input
type Controls struct {
	system.InputState
	Save bool // F5, save the recording so far
}

// Playing is the main gameplay scene. It owns one World and only reads it
// when drawing.
type Playing struct {
	opts      Options
	stageName string
	stageCfg  *config.StageConfig
	world     *system.World
	state     state.GameState
	logger    *slog.Logger

	inputSystem  *system.InputSystem
	readControls func() Controls

	screenW int
	screenH int

	// Feedback
	screenShakeX float64
	screenShakeY float64
	shakeDecay   float64
	shakeRng     *rand.Rand

	seed       int64
	clearTimer float64

	// Input recording
	recorder *Recorder
}

// New creates a Playing scene for the named stage
func New(opts Options, stageName string) (*Playing, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	stageCfg, err := opts.Loader.LoadStage(stageName)
	if err != nil {
		return nil, err
	}

	display := opts.Config.Physics.Display
	p := &Playing{
		opts:        opts,
		stageName:   stageName,
		stageCfg:    stageCfg,
		logger:      opts.Logger,
		inputSystem: system.NewInputSystem(),
		screenW:     display.ScreenWidth,
		screenH:     display.ScreenHeight,
		shakeDecay:  opts.Config.Physics.Feedback.ScreenShake.Decay,
		shakeRng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	p.readControls = p.keyboardControls

	if err := p.startAttempt(); err != nil {
		return nil, err
	}
	return p, nil
}

// startAttempt builds a fresh world for the stage
func (p *Playing) startAttempt() error {
	p.seed = p.opts.Seed
	if p.seed == 0 {
		p.seed = time.Now().UnixNano()
	}

	level, err := system.LoadStage(p.stageCfg, p.opts.Config, rand.New(rand.NewSource(p.seed)))
	if err != nil {
		return err
	}
	p.world = system.NewWorld(level, p.opts.Config, p.logger)
	p.world.OnScreenShake(func(intensity float64) {
		p.screenShakeX = intensity
		p.screenShakeY = intensity
	})
	p.state = state.StatePlaying
	p.screenShakeX, p.screenShakeY = 0, 0

	if p.opts.RecordDir != "" {
		p.recorder = NewRecorder(p.opts.RunID, p.seed, p.stageName)
		p.logger.Info("recording enabled", "stage", p.stageName, "seed", p.seed)
	}
	return nil
}

func (p *Playing) keyboardControls() Controls {
	return Controls{
		InputState: p.inputSystem.GetInput(),
		Save:       inpututil.IsKeyJustPressed(ebiten.KeyF5),
	}
}

// Update proceeds the game state (implements scene.Scene). dt is in seconds.
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	in := p.readControls()

	switch p.state {
	case state.StatePlaying:
		if in.Pause {
			p.state = state.StatePaused
			return nil, nil
		}
		if in.Save {
			p.saveRecording()
		}
		return p.updatePlaying(in.InputState, dt*1000)
	case state.StatePaused:
		if in.Pause {
			p.state = state.StatePlaying
		}
	case state.StateGameOver:
		if in.Restart {
			return nil, p.startAttempt()
		}
	case state.StateStageClear:
		p.clearTimer -= dt * 1000
		if p.clearTimer <= 0 {
			return p.advance()
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying(in system.InputState, deltaMs float64) (scene.Scene, error) {
	if p.recorder != nil {
		p.recorder.RecordFrame(in, deltaMs)
	}

	p.world.Step(in, deltaMs)

	// Decay screen shake
	p.screenShakeX *= p.shakeDecay
	p.screenShakeY *= p.shakeDecay

	switch {
	case p.world.GameOver():
		p.state = state.StateGameOver
		// Auto-save recording on game over
		p.saveRecording()
	case p.world.Cleared:
		p.saveRecording()
		p.state = state.StateStageClear
		p.clearTimer = stageClearMs
	}
	return nil, nil
}

// advance moves to the next stage, or ends the run after the last one
func (p *Playing) advance() (scene.Scene, error) {
	if p.world.Next == "" {
		p.state = state.StateVictory
		p.logger.Info("run complete", "stage", p.stageName, "lives", p.world.Player.Lives)
		return nil, nil
	}
	next, err := New(p.opts, p.world.Next)
	if err != nil {
		return nil, fmt.Errorf("failed to load next stage %s: %w", p.world.Next, err)
	}
	return next, nil
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := filepath.Join(p.opts.RecordDir, GenerateFilename(p.stageName))
	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "file", filename, "err", err)
		return
	}
	p.logger.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
}

// World returns the simulation owned by the scene
func (p *Playing) World() *system.World {
	return p.world
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {
	p.logger.Info("stage started", "stage", p.stageName, "seed", p.seed)
}

// OnExit implements scene.Scene
func (p *Playing) OnExit() {
	if p.recorder != nil {
		p.recorder.Stop()
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	cam := p.camera()

	p.drawTiles(screen, cam)
	p.drawActors(screen, cam)
	p.drawPlayer(screen, cam)
	p.drawProjectiles(screen, cam)

	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case state.StateGameOver:
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 180},
			fmt.Sprintf("GAME OVER\n\nKills: %d\n\nPress Z to restart", p.world.Kills))
	case state.StateStageClear:
		p.drawOverlay(screen, color.RGBA{0, 40, 80, 160},
			fmt.Sprintf("STAGE CLEAR\n\nKills: %d\n\nNext: %s", p.world.Kills, nextLabel(p.world.Next)))
	case state.StateVictory:
		p.drawOverlay(screen, color.RGBA{0, 80, 40, 180}, "VICTORY\n\nAll stages cleared")
	}
}

func nextLabel(next string) string {
	if next == "" {
		return "final stage done"
	}
	return next
}

// camera returns the top-left world position of the view: centered on the
// player, clamped to the stage, plus screen shake
func (p *Playing) camera() geom.Vec2 {
	c := p.world.Player.Center()
	x := c.X - float64(p.screenW)/2
	y := c.Y - float64(p.screenH)/2

	x = max(0, min(x, p.world.Stage.Width-float64(p.screenW)))
	y = max(0, min(y, p.world.Stage.Height-float64(p.screenH)))

	x += p.screenShakeX * (2*p.shakeRng.Float64() - 1)
	y += p.screenShakeY * (2*p.shakeRng.Float64() - 1)
	return geom.V(x, y)
}

func drawRect(screen *ebiten.Image, r geom.Rect, cam geom.Vec2, c color.Color) {
	ebitenutil.DrawRect(screen, r.X-cam.X, r.Y-cam.Y, r.W, r.H, c)
}

func (p *Playing) drawTiles(screen *ebiten.Image, cam geom.Vec2) {
	s := p.world.Stage
	for _, r := range s.Water {
		drawRect(screen, r, cam, colorWater)
	}
	for _, r := range s.Traps {
		drawRect(screen, r, cam, colorTrap)
	}
	for _, r := range s.Bonuses {
		drawRect(screen, r, cam, colorBonus)
	}
	if s.HasFinish {
		drawRect(screen, s.Finish, cam, colorFinish)
	}
	for _, r := range s.Obstacles {
		drawRect(screen, r, cam, colorWall)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, cam geom.Vec2) {
	pl := p.world.Player
	if pl.Dead {
		return
	}
	// Blink while invincible
	if pl.IsInvincible() && int(pl.InvincibleTimer/100)%2 == 0 {
		return
	}
	drawRect(screen, pl.Hitbox(), cam, colorPlayer)
}

func (p *Playing) drawActors(screen *ebiten.Image, cam geom.Vec2) {
	for _, a := range p.world.Actors {
		if !a.Alive() {
			continue
		}
		switch v := a.(type) {
		case *entity.Enemy:
			drawRect(screen, v.Hitbox(), cam, enemyColor(v.State))
		case *entity.Boss:
			c := color.Color(colorBoss)
			if v.Phase != entity.PhaseNormal {
				c = colorBossRage
			}
			drawRect(screen, v.Hitbox(), cam, c)
			p.drawBossHealth(screen, v, cam)
		}
	}
}

func enemyColor(s entity.EnemyState) color.Color {
	switch s {
	case entity.StateChaseVisible:
		return colorEnemyAlert
	case entity.StateChaseLastKnown:
		return colorEnemyHunt
	default:
		return colorEnemy
	}
}

// drawBossHealth draws the health bar just above the boss
func (p *Playing) drawBossHealth(screen *ebiten.Image, b *entity.Boss, cam geom.Vec2) {
	r := b.Hitbox()
	bar := geom.R(r.X, r.Y-12, r.W, 6)
	drawRect(screen, bar, cam, colorHealthBG)

	if b.MaxHealth <= 0 {
		return
	}
	ratio := float64(b.Health) / float64(b.MaxHealth)
	bar.W *= max(0, ratio)
	drawRect(screen, bar, cam, colorHealthFG)
}

func (p *Playing) drawProjectiles(screen *ebiten.Image, cam geom.Vec2) {
	for _, b := range p.world.Player.Bullets {
		if b.Active {
			drawRect(screen, b.Rect, cam, colorBolt)
		}
	}
	for _, a := range p.world.Actors {
		for _, b := range a.Projectiles() {
			if b.Active {
				drawRect(screen, b.Rect, cam, colorEnemyBolt)
			}
		}
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	// Lives as hearts, top-right
	const heart, gap = 15.0, 5.0
	for i := range p.world.Player.Lives {
		x := float64(p.screenW) - float64(i+1)*(heart+gap)
		ebitenutil.DrawRect(screen, x, gap, heart, heart, colorHeart)
	}

	status := fmt.Sprintf("%s | Kills: %d", p.stageName, p.world.Kills)
	if b := p.world.Boss(); b != nil && b.Alive() {
		status += fmt.Sprintf(" | Boss: %s", b.Phase)
	}
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-20)

	ebitenutil.DebugPrint(screen, "WASD/Arrows: Move | Space: Shoot | ESC: Pause | F5: Save replay")
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.Color, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}
