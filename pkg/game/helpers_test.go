package game

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zurustar/gemcross/pkg/assets"
	"github.com/zurustar/gemcross/pkg/config"
	"github.com/zurustar/gemcross/pkg/entity"
	"github.com/zurustar/gemcross/pkg/input"
)

// nilSource serves nil images so tests never touch the graphics stack.
type nilSource struct{}

func (nilSource) Load(string) (*ebiten.Image, error) { return nil, nil }

func testStore(t *testing.T) *assets.Store {
	t.Helper()
	store := assets.NewStore(nilSource{}, nil)
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	return store
}

// testWorld builds a booted world in StateTitle with deterministic
// level layout.
func testWorld(t *testing.T) *World {
	t.Helper()
	w := NewWorldSeeded(config.Default(), testStore(t), 7)
	w.BuildLevel()
	w.machine.Boot(w)
	return w
}

// activeWorld is a testWorld advanced into StateActive with the enemy
// and gem collections cleared for deterministic scenarios.
func activeWorld(t *testing.T) *World {
	t.Helper()
	w := testWorld(t)
	w.machine.StartGame(w)
	w.enemies = nil
	w.gems = nil
	return w
}

// movePlayer queues one move and runs an Active-state frame.
func movePlayer(w *World, d input.Direction) {
	w.player.QueueMove(d)
	w.Update(0.016)
}

// placeEnemyOnPlayer puts an enemy exactly on the player's tile.
func placeEnemyOnPlayer(w *World) {
	col, row := w.player.Tile()
	w.enemies = append(w.enemies, entity.NewEnemy(w.Grid(), w.Grid().PixelX(col), row, 0, nil))
}

// steppedLoop runs world through a fresh armed loop.
func steppedLoop(w *World, src input.Source) *Loop {
	l := NewLoop(w, src)
	l.Arm(time.Unix(0, 0))
	return l
}
