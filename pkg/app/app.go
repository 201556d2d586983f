// Package app wires configuration, assets, the world and the loop into
// a runnable application.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zurustar/gemcross/pkg/assets"
	"github.com/zurustar/gemcross/pkg/cli"
	"github.com/zurustar/gemcross/pkg/config"
	"github.com/zurustar/gemcross/pkg/game"
	"github.com/zurustar/gemcross/pkg/input"
	"github.com/zurustar/gemcross/pkg/logger"
	"github.com/zurustar/gemcross/pkg/surface"
)

// Application manages the startup sequence and the run mode.
type Application struct {
	config  *cli.Config
	gameCfg *config.Config
	log     *slog.Logger
}

// New creates an application.
func New() *Application {
	return &Application{}
}

// Run executes the application with the given command line arguments.
func (app *Application) Run(args []string) error {
	parsed, err := cli.ParseArgs(args)
	if err != nil {
		return fmt.Errorf("failed to parse args: %w", err)
	}
	app.config = parsed

	if app.config.ShowHelp {
		cli.PrintHelp()
		return nil
	}

	if err := logger.Init(app.config.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.log = logger.L()
	app.log.Info("application started", "headless", app.config.Headless)

	gameCfg, err := config.Load(app.config.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.gameCfg = gameCfg

	store := app.buildStore()
	world := game.NewWorld(gameCfg, store)

	var src input.Source = input.EbitenSource{}
	if app.config.Headless {
		src = &input.Fake{}
	}

	loop := game.NewLoop(world, src)
	ini := game.NewInitializer(world, store, loop)
	if err := ini.Start(); err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	if app.config.Headless {
		return app.runHeadless(loop)
	}
	return app.runWindowed(loop)
}

// buildStore picks the asset source: the configured directory when one
// is given, generated placeholder sprites otherwise. A directory
// source degrades per-asset to the generated sprites.
func (app *Application) buildStore() *assets.Store {
	gen := assets.NewGeneratedSource(int(app.gameCfg.Board.TileWidth), int(app.gameCfg.Board.TileHeight))

	if app.config.AssetDir == "" {
		app.log.Info("no asset directory given, using generated sprites")
		return assets.NewStore(gen, nil)
	}

	app.log.Info("loading assets", "dir", app.config.AssetDir)
	return assets.NewStore(assets.NewFSSource(os.DirFS(app.config.AssetDir), nil), gen)
}

func (app *Application) runWindowed(loop *game.Loop) error {
	w := int(app.gameCfg.Board.TileWidth) * app.gameCfg.Board.Cols
	h := int(app.gameCfg.Board.TileHeight) * app.gameCfg.Board.Rows

	scale := app.gameCfg.Window.Scale
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	ebiten.SetWindowTitle(app.gameCfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game.NewEbitenGame(loop, w, h)); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	app.log.Info("application terminated normally")
	return nil
}

// runHeadless drives the loop at the display cadence without a window,
// rendering onto a recording surface. Used for soak runs and CI.
func (app *Application) runHeadless(loop *game.Loop) error {
	grid := app.gameCfg.Board
	rec := surface.NewRecorder(grid.TileWidth*float64(grid.Cols), grid.TileHeight*float64(grid.Rows))

	const frame = time.Second / 60
	deadline := time.Time{}
	if app.config.Timeout > 0 {
		deadline = time.Now().Add(app.config.Timeout)
	}

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for now := range ticker.C {
		rec.Reset()
		if err := loop.Step(now, rec); err != nil {
			break
		}
		if loop.Done() {
			break
		}
		if !deadline.IsZero() && now.After(deadline) {
			app.log.Info("headless timeout reached")
			break
		}
	}
	app.log.Info("application terminated normally")
	return nil
}
