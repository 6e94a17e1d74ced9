package snake

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

const (
	hudHeight = 2 // Status line plus separator
	cellWidth = 2 // Terminal cells are roughly twice as tall as wide
)

func init() {
	for _, v := range config.Variants() {
		registry.Register(registry.GameInfo{
			ID:          v.ID,
			Title:       v.Title,
			Description: v.Description,
		}, factory(v))
	}
}

func factory(v config.Variant) registry.Factory {
	return func(opts registry.Options) (registry.Game, error) {
		logger := opts.Logger
		if logger == nil {
			logger = log.Default()
		}

		cfg, source, err := config.Load(v.ID, opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg, err = opts.Overrides.Apply(cfg)
		if err != nil {
			return nil, err
		}
		ec, err := EngineConfig(cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("config loaded", "variant", v.ID, "source", source,
			"grid", ec.GridSize, "tick", ec.TickInterval, "points", ec.PointsPerFood)
		return NewGame(v, ec, logger), nil
	}
}

// EngineConfig converts a YAML configuration into engine settings.
func EngineConfig(c config.Config) (Config, error) {
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	dir, err := ParseDirection(c.Snake.InitialDirection)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	ec := Config{
		GridSize:         c.Board.Size,
		InitialLength:    c.Snake.InitialLength,
		Start:            Position{X: c.Snake.StartX, Y: c.Snake.StartY},
		InitialDirection: dir,
		TickInterval:     c.TickInterval(),
		PointsPerFood:    c.Scoring.PointsPerFood,
	}
	if err := ec.Validate(); err != nil {
		return Config{}, err
	}
	return ec, nil
}

// Game adapts a Session to the platform's registry.Game interface and
// draws it into a core.Screen.
type Game struct {
	variant config.Variant
	cfg     Config
	logger  *log.Logger
	session *Session
	pilot   Autopilot
	demo    bool
	best    int // High score carried across Reset calls

	tooSmall bool
}

// NewGame creates a game for a validated engine config. Reset must be
// called before the game is stepped.
func NewGame(v config.Variant, cfg Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		variant: v,
		cfg:     cfg,
		logger:  logger,
		pilot:   Autopilot{GridSize: cfg.GridSize},
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// TickInterval returns the period between Steps.
func (g *Game) TickInterval() time.Duration {
	return g.cfg.TickInterval
}

// Reset starts a brand new session seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine, err := NewEngine(g.cfg, NewRandom(seed))
	if err != nil {
		return err
	}
	if g.session != nil {
		g.best = max(g.best, g.session.HighScore())
	}
	session, err := NewSession(engine, g.logger)
	if err != nil {
		return err
	}
	g.session = session
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	return nil
}

// Resize records the screen size and whether the board still fits.
func (g *Game) Resize(w, h int) {
	reqW, reqH := g.RequiredSize()
	tooSmall := w < reqW || h < reqH
	if tooSmall != g.tooSmall {
		g.logger.Debug("window fit changed", "width", w, "height", h, "too_small", tooSmall)
	}
	g.tooSmall = tooSmall
}

// RequiredSize returns the smallest screen that fits the board and HUD.
func (g *Game) RequiredSize() (w, h int) {
	return g.cfg.GridSize*cellWidth + 2, g.cfg.GridSize + 2 + hudHeight
}

// HandleInput applies a platform action to the session.
func (g *Game) HandleInput(a core.Action) {
	if g.session == nil {
		return
	}

	var intent Intent
	switch a {
	case core.ActionUp:
		intent = IntentUp
	case core.ActionDown:
		intent = IntentDown
	case core.ActionLeft:
		intent = IntentLeft
	case core.ActionRight:
		intent = IntentRight
	case core.ActionPause:
		intent = IntentPause
	case core.ActionRestart:
		// Restart is only offered on the game over screen
		if !g.session.Snapshot().IsGameOver {
			return
		}
		intent = IntentReset
	case core.ActionDemo:
		g.demo = !g.demo
		g.logger.Debug("autopilot toggled", "demo", g.demo)
		return
	default:
		return
	}

	// Steering by hand takes control back from the autopilot
	if a.IsDirectional() {
		g.demo = false
	}
	if _, err := g.session.SubmitInput(intent); err != nil {
		g.logger.Warn("input rejected", "intent", intent, "error", err)
	}
}

// SetDemo turns the autopilot on or off.
func (g *Game) SetDemo(on bool) {
	g.demo = on
}

// Demo reports whether the autopilot is steering.
func (g *Game) Demo() bool {
	return g.demo
}

// Step advances the game by one tick.
func (g *Game) Step() core.StepResult {
	if g.session == nil {
		return core.StepResult{}
	}
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	before := g.session.Snapshot()
	if g.demo && before.Status() == StatusPlaying {
		_, _ = g.session.SubmitInput(IntentFor(g.pilot.Next(before)))
	}
	after := g.session.Tick()

	return core.StepResult{
		State: g.State(),
		Moved: after.Moves != before.Moves,
	}
}

// Snapshot returns the current engine state.
func (g *Game) Snapshot() GameState {
	if g.session == nil {
		return GameState{}
	}
	return g.session.Snapshot()
}

// State returns the current game summary.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{HighScore: g.best}
	}
	s := g.session.Snapshot()
	return core.GameState{
		Score:     s.Score,
		HighScore: max(g.best, g.session.HighScore()),
		GameOver:  s.IsGameOver,
		Paused:    s.IsPaused,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	s := g.session.Snapshot()

	g.renderHUD(dst, s)

	if g.tooSmall {
		w, h := g.RequiredSize()
		g.renderOverlay(dst, core.ColorYellow, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	board := g.boardRect(dst)
	dst.DrawBox(board, core.ColorGray)
	g.renderBoard(dst, board, s)

	switch s.Status() {
	case StatusGameOver:
		g.renderOverlay(dst, core.ColorBrightRed,
			"Game Over",
			causeText(s.Cause),
			fmt.Sprintf("Final Score: %d", s.Score),
			"Press R to restart",
		)
	case StatusPaused:
		g.renderOverlay(dst, core.ColorBrightYellow, "Paused", "P or Space to resume")
	}
}

func causeText(c Cause) string {
	switch c {
	case CauseWall:
		return "You hit the wall"
	case CauseSelf:
		return "You ran into yourself"
	case CauseBoardFull:
		return "Board full, you win!"
	default:
		return ""
	}
}

// boardRect returns the bordered board area, centered below the HUD.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	w, h := g.RequiredSize()
	h -= hudHeight
	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	return area.Centered(w, h)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, s GameState) {
	hud := fmt.Sprintf(" %s — Score: %d  High: %d  Length: %d",
		g.Title(), s.Score, g.State().HighScore, s.Len())
	if g.demo {
		hud += "  [DEMO]"
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderBoard draws the grid, food and snake inside the border.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect, s GameState) {
	ox, oy := board.X+1, board.Y+1
	put := func(p Position, r rune, c core.Color) {
		dst.SetColored(ox+p.X*cellWidth, oy+p.Y, r, c)
	}

	for y := range g.cfg.GridSize {
		for x := range g.cfg.GridSize {
			put(Position{X: x, Y: y}, '·', core.ColorGray)
		}
	}

	if s.Cause != CauseBoardFull && InBounds(s.Food, g.cfg.GridSize) {
		put(s.Food, '*', core.ColorBrightRed)
	}

	// Body first so the head wins if they overlap after a collision
	for i := len(s.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			put(s.Snake[i], '@', core.ColorBrightGreen)
		} else {
			put(s.Snake[i], 'o', core.ColorGreen)
		}
	}
}

// renderOverlay draws a centered box with one message per line.
func (g *Game) renderOverlay(dst *core.Screen, c core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	box := dst.Bounds().Centered(maxLen+4, len(lines)+2)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	for i, line := range lines {
		if i == 0 {
			dst.DrawTextCentered(box.Y+1+i, line, c)
			continue
		}
		dst.DrawTextCentered(box.Y+1+i, line, core.ColorWhite)
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Moves: %d, Score: %d, Status: %s\n", s.Moves, s.Score, s.Status())
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Pending: %s\n", s.Len(), s.Direction, s.PendingDirection)
	fmt.Fprintf(&b, "Head: %s, Food: %s\n", s.Head(), s.Food)
	b.WriteString(s.Board(g.cfg.GridSize))
	return b.String()
}
