// Package game contains the core: the frame loop, the state machine,
// the per-state update/render dispatch and the collision evaluator.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zurustar/gemcross/pkg/assets"
	"github.com/zurustar/gemcross/pkg/config"
	"github.com/zurustar/gemcross/pkg/entity"
	"github.com/zurustar/gemcross/pkg/geom"
	"github.com/zurustar/gemcross/pkg/input"
	"github.com/zurustar/gemcross/pkg/logger"
)

// World is the explicit context object owned by the game loop. It
// gathers everything the update/render dispatch and the state machine
// touch, so the core is testable without process-wide variables.
type World struct {
	cfg       *config.Config
	grid      geom.Grid
	store     *assets.Store
	machine   *Machine
	listeners *input.Registry
	rng       *rand.Rand

	player  *entity.Player
	enemies []*entity.Enemy
	gems    []*entity.Gem
	menu    []*entity.MenuOption
	mascot  *entity.Mascot

	selection      Selection
	startRequested bool
	quitPending    bool
	restartPending bool
}

// NewWorld creates a world with a time-seeded RNG.
func NewWorld(cfg *config.Config, store *assets.Store) *World {
	seed := uint64(time.Now().UnixNano())
	return NewWorldSeeded(cfg, store, seed)
}

// NewWorldSeeded creates a world with a deterministic RNG, used by
// tests and replays.
func NewWorldSeeded(cfg *config.Config, store *assets.Store, seed uint64) *World {
	return &World{
		cfg:       cfg,
		grid:      geom.Grid{Cols: cfg.Board.Cols, Rows: cfg.Board.Rows, TileW: cfg.Board.TileWidth, TileH: cfg.Board.TileHeight},
		store:     store,
		machine:   NewMachine(),
		listeners: input.NewRegistry(),
		rng:       rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
}

// State returns the current game state.
func (w *World) State() State {
	return w.machine.Current()
}

// Grid returns the board geometry.
func (w *World) Grid() geom.Grid {
	return w.grid
}

// Player returns the player entity, nil before the first level build.
func (w *World) Player() *entity.Player { return w.player }

// Enemies returns the live enemy collection.
func (w *World) Enemies() []*entity.Enemy { return w.enemies }

// Gems returns the level's gems, collected ones included.
func (w *World) Gems() []*entity.Gem { return w.gems }

// Menu returns the menu options shown in StateSafe.
func (w *World) Menu() []*entity.MenuOption { return w.menu }

// Listeners returns the listener registry.
func (w *World) Listeners() *input.Registry { return w.listeners }

// sprite fetches an asset image, degrading to nil (skip drawing) when
// the loader has not served it. Asking early must not crash a frame.
func (w *World) sprite(id string) *ebiten.Image {
	img, err := w.store.Get(id)
	if err != nil {
		logger.L().Debug("sprite unavailable", "id", id, "err", err)
		return nil
	}
	return img
}

// BuildLevel creates the per-level entity collections. The player is
// created only if absent, so a rebuilt level after a continue keeps
// lives and score; a full restart clears the player first.
func (w *World) BuildLevel() {
	if w.player == nil {
		w.player = entity.NewPlayer(w.grid, w.cfg.Player.StartCol, w.cfg.Player.StartRow, w.cfg.Player.Lives, w.sprite(assets.IDPlayer))
	}

	w.enemies = w.enemies[:0]
	for _, lane := range w.cfg.Enemies.Lanes {
		speed := w.cfg.Enemies.MinSpeed + w.rng.Float64()*(w.cfg.Enemies.MaxSpeed-w.cfg.Enemies.MinSpeed)
		x := -w.grid.TileW * (1 + 2*w.rng.Float64())
		w.enemies = append(w.enemies, entity.NewEnemy(w.grid, x, lane, speed, w.sprite(assets.IDEnemy)))
	}

	w.gems = w.gems[:0]
	taken := make(map[[2]int]bool)
	lanes := w.cfg.Enemies.Lanes
	for len(w.gems) < w.cfg.Gems.Count && len(taken) < w.cfg.Board.Cols*len(lanes) {
		col := w.rng.IntN(w.cfg.Board.Cols)
		row := lanes[w.rng.IntN(len(lanes))]
		key := [2]int{col, row}
		if taken[key] {
			continue
		}
		taken[key] = true
		w.gems = append(w.gems, entity.NewGem(w.grid, col, row, w.cfg.Gems.Value, w.sprite(assets.IDGem)))
	}

	w.menu = w.buildMenu()
	w.mascot = entity.NewMascot(
		w.grid.Width()/2-w.grid.TileW/2,
		w.grid.Height()/2-w.grid.TileH,
		w.grid.TileW, w.grid.TileH,
		w.sprite(assets.IDPlayer),
	)

	logger.L().Info("level built", "enemies", len(w.enemies), "gems", len(w.gems))
}

func (w *World) buildMenu() []*entity.MenuOption {
	const optW, optH, gap = 220, 48, 14
	cx := w.grid.Width() / 2
	top := w.grid.Height()/2 - optH

	entries := []struct {
		label  string
		choice Selection
	}{
		{"Continue", SelectionContinue},
		{"Restart", SelectionRestart},
		{"Quit", SelectionQuit},
	}

	opts := make([]*entity.MenuOption, 0, len(entries))
	for i, e := range entries {
		r := geom.Rect{X: cx - optW/2, Y: top + float64(i)*(optH+gap), W: optW, H: optH}
		opts = append(opts, entity.NewMenuOption(e.label, r, int(e.choice), w.sprite(assets.IDSelector)))
	}
	return opts
}

// HardReset drops the player and all collections for a full restart.
func (w *World) HardReset() {
	w.player = nil
	w.enemies = nil
	w.gems = nil
	w.menu = nil
	w.mascot = nil
	w.selection = SelectionNone
	w.startRequested = false
	w.quitPending = false
	w.restartPending = false
}

// HandleInput polls src on behalf of the attached listeners. Listeners
// only set flags and the pending selection; entity collections are
// never touched here.
func (w *World) HandleInput(src input.Source) {
	if w.listeners.Attached(input.KindStartKey) && src.StartPressed() {
		w.startRequested = true
	}
	if w.listeners.Attached(input.KindKeyboardMove) && w.player != nil {
		if d := src.Direction(); d != input.DirNone {
			w.player.QueueMove(d)
		}
	}
	if w.listeners.Attached(input.KindClickSelect) {
		if x, y, ok := src.Click(); ok {
			for _, opt := range w.menu {
				if opt.Contains(x, y) {
					w.selection = Selection(opt.Choice())
					logger.L().Debug("menu selection", "choice", w.selection.String())
					break
				}
			}
		}
	}
}

// Update routes the frame's update pass to the entity set of the
// current state, then lets the evaluator request transitions.
func (w *World) Update(dt float64) {
	switch w.machine.Current() {
	case StateTitle:
		if w.mascot != nil {
			w.mascot.Update(dt)
		}
		if w.startRequested {
			w.startRequested = false
			w.machine.StartGame(w)
		}
	case StateActive:
		// Enemies move first so the collision pass sees final positions.
		for _, e := range w.enemies {
			e.Update(dt)
		}
		if w.player == nil {
			return
		}
		w.player.Update(dt)
		w.applyOutcome(Evaluate(w.player, w.enemies, w.gems, GoalRow))
	case StateSafe:
		sel := w.selection
		w.selection = SelectionNone
		if err := w.machine.Apply(w, sel); err != nil {
			logger.L().Warn("selection rejected", "err", err)
		}
	case StateGameOver:
		// No entity updates; the start key offers a restart after a
		// lives-exhausted game over.
		if w.startRequested {
			w.startRequested = false
			w.restartPending = true
		}
	}
}

func (w *World) applyOutcome(out Outcome) {
	for _, i := range out.GemsCollected {
		if v := w.gems[i].Collect(); v > 0 {
			w.player.AddScore(v)
			logger.L().Debug("gem collected", "value", v, "score", w.player.Score())
		}
	}
	// Standing on the goal row is safe even with an enemy on the
	// same tile.
	if out.ReachedGoal {
		w.machine.ReachGoal(w)
		return
	}
	if out.EnemyHit {
		if w.player.LoseLife() == 0 {
			w.machine.LivesExhausted(w)
			return
		}
		logger.L().Debug("player hit", "lives", w.player.Lives())
		w.player.ResetPosition()
	}
}

// ConsumeQuit reports a pending quit exactly once.
func (w *World) ConsumeQuit() bool {
	q := w.quitPending
	w.quitPending = false
	return q
}

// ConsumeRestart reports a pending full restart exactly once.
func (w *World) ConsumeRestart() bool {
	r := w.restartPending
	w.restartPending = false
	return r
}
