package game

import (
	"slices"
	"testing"

	"github.com/zurustar/gemcross/pkg/config"
	"github.com/zurustar/gemcross/pkg/entity"
	"github.com/zurustar/gemcross/pkg/input"
	"github.com/zurustar/gemcross/pkg/surface"
)

// clickOption arms a click on the center of the named menu option.
func clickOption(t *testing.T, w *World, f *input.Fake, label string) {
	t.Helper()
	for _, opt := range w.Menu() {
		if opt.Label() == label {
			r := opt.Rect()
			f.ClickAt(r.X+r.W/2, r.Y+r.H/2)
			return
		}
	}
	t.Fatalf("no menu option labeled %q", label)
}

func TestBuildLevel(t *testing.T) {
	w := testWorld(t)
	cfg := config.Default()

	if got := len(w.Enemies()); got != len(cfg.Enemies.Lanes) {
		t.Errorf("enemy count = %d, want one per lane (%d)", got, len(cfg.Enemies.Lanes))
	}
	for _, e := range w.Enemies() {
		if !slices.Contains(cfg.Enemies.Lanes, e.Row()) {
			t.Errorf("enemy on row %d, outside the configured lanes", e.Row())
		}
	}

	if got := len(w.Gems()); got != cfg.Gems.Count {
		t.Errorf("gem count = %d, want %d", got, cfg.Gems.Count)
	}
	seen := map[[2]int]bool{}
	for _, g := range w.Gems() {
		col, row := g.Tile()
		if !slices.Contains(cfg.Enemies.Lanes, row) {
			t.Errorf("gem on row %d, outside the lanes", row)
		}
		key := [2]int{col, row}
		if seen[key] {
			t.Errorf("two gems on tile (%d, %d)", col, row)
		}
		seen[key] = true
	}

	if len(w.Menu()) != 3 {
		t.Errorf("menu has %d options, want 3", len(w.Menu()))
	}
}

func TestBuildLevelKeepsExistingPlayer(t *testing.T) {
	w := testWorld(t)
	w.player.AddScore(150)
	w.player.LoseLife()

	w.BuildLevel()
	if w.player.Score() != 150 || w.player.Lives() != 2 {
		t.Errorf("rebuild reset the player: score=%d lives=%d", w.player.Score(), w.player.Lives())
	}
}

func TestHardResetThenBuildIsFresh(t *testing.T) {
	w := testWorld(t)
	w.player.AddScore(150)
	w.player.LoseLife()

	w.HardReset()
	w.BuildLevel()
	if w.player.Score() != 0 || w.player.Lives() != 3 {
		t.Errorf("fresh build: score=%d lives=%d, want 0 and 3", w.player.Score(), w.player.Lives())
	}
}

func TestSeededWorldsAgree(t *testing.T) {
	a := NewWorldSeeded(config.Default(), testStore(t), 42)
	a.BuildLevel()
	b := NewWorldSeeded(config.Default(), testStore(t), 42)
	b.BuildLevel()

	for i := range a.Gems() {
		ac, ar := a.Gems()[i].Tile()
		bc, br := b.Gems()[i].Tile()
		if ac != bc || ar != br {
			t.Fatalf("gem %d differs across equal seeds: (%d,%d) vs (%d,%d)", i, ac, ar, bc, br)
		}
	}
}

func TestStartKeyOnTitle(t *testing.T) {
	w := testWorld(t)
	f := &input.Fake{}
	f.PressStart()

	w.HandleInput(f)
	w.Update(0.016)
	if w.State() != StateActive {
		t.Errorf("state = %v, want active after the start key", w.State())
	}
}

func TestStartKeyIgnoredInPlay(t *testing.T) {
	w := activeWorld(t)
	f := &input.Fake{}
	f.PressStart()

	w.HandleInput(f)
	w.Update(0.016)
	if w.State() != StateActive {
		t.Errorf("state = %v; the start key has no listener in play", w.State())
	}
}

func TestKeyboardIgnoredOnTitle(t *testing.T) {
	w := testWorld(t)
	f := &input.Fake{}
	f.Press(input.DirUp)

	w.HandleInput(f)
	w.Update(0.016)
	if _, row := w.player.Tile(); row != 5 {
		t.Errorf("player row = %d; keyboard has no listener on the title", row)
	}
}

func TestKeyboardMovesPlayerInPlay(t *testing.T) {
	w := activeWorld(t)
	f := &input.Fake{}
	f.Press(input.DirUp)

	w.HandleInput(f)
	w.Update(0.016)
	if col, row := w.player.Tile(); col != 2 || row != 4 {
		t.Errorf("player at (%d, %d), want (2, 4)", col, row)
	}
}

func TestKeyboardStillWiredInMenu(t *testing.T) {
	w := activeWorld(t)
	w.machine.ReachGoal(w)
	f := &input.Fake{}
	f.Press(input.DirDown)

	// The listener stays attached; the move is queued but the menu
	// state never runs the player's update, so nothing happens until
	// Continue resumes play (which resets position anyway).
	w.HandleInput(f)
	w.Update(0.016)
	if w.State() != StateSafe {
		t.Errorf("state = %v, want safe", w.State())
	}
	if _, row := w.player.Tile(); row != 5 {
		t.Errorf("player moved in the menu state, row = %d", row)
	}
}

func TestClickQuitInMenu(t *testing.T) {
	w := activeWorld(t)
	w.machine.ReachGoal(w)
	f := &input.Fake{}
	clickOption(t, w, f, "Quit")

	w.HandleInput(f)
	w.Update(0.016)
	if w.State() != StateGameOver {
		t.Fatalf("state = %v, want game-over", w.State())
	}
	if !w.ConsumeQuit() {
		t.Error("quit should be pending after the Quit option")
	}
}

func TestClickRestartInMenu(t *testing.T) {
	w := activeWorld(t)
	w.machine.ReachGoal(w)
	f := &input.Fake{}
	clickOption(t, w, f, "Restart")

	w.HandleInput(f)
	w.Update(0.016)
	if w.State() != StateTitle {
		t.Fatalf("state = %v, want title", w.State())
	}
	if !w.ConsumeRestart() {
		t.Error("restart should be pending after the Restart option")
	}
}

func TestClickOutsideMenuOptions(t *testing.T) {
	w := activeWorld(t)
	w.machine.ReachGoal(w)
	f := &input.Fake{}
	f.ClickAt(1, 1)

	w.HandleInput(f)
	w.Update(0.016)
	if w.State() != StateSafe {
		t.Errorf("state = %v; a miss is not a selection", w.State())
	}
}

func TestClickIgnoredInPlay(t *testing.T) {
	w := activeWorld(t)
	f := &input.Fake{}
	clickOption(t, w, f, "Quit")

	w.HandleInput(f)
	w.Update(0.016)
	if w.State() != StateActive {
		t.Errorf("state = %v; clicks have no listener in play", w.State())
	}
	if w.ConsumeQuit() {
		t.Error("no quit may be raised outside the menu")
	}
}

func TestStartKeyRestartsAfterGameOver(t *testing.T) {
	w := activeWorld(t)
	w.player.LoseLife()
	w.player.LoseLife()
	placeEnemyOnPlayer(w)
	w.Update(0.016)
	if w.State() != StateGameOver {
		t.Fatal("setup: expected game over")
	}

	f := &input.Fake{}
	f.PressStart()
	w.HandleInput(f)
	w.Update(0.016)
	if !w.ConsumeRestart() {
		t.Error("start key after game over should request a restart")
	}
}

func TestGemCollectionScoresOnce(t *testing.T) {
	w := activeWorld(t)
	cfg := config.Default()
	col, row := w.player.Tile()
	w.gems = append(w.gems, entity.NewGem(w.Grid(), col, row, cfg.Gems.Value, nil))

	w.Update(0.016)
	if w.player.Score() != cfg.Gems.Value {
		t.Fatalf("score = %d, want %d", w.player.Score(), cfg.Gems.Value)
	}
	w.Update(0.016)
	if w.player.Score() != cfg.Gems.Value {
		t.Errorf("score = %d after a second frame; gems pay out once", w.player.Score())
	}
}

func TestRenderDispatch(t *testing.T) {
	w := testWorld(t)
	rec := surface.NewRecorder(w.Grid().Width(), w.Grid().Height())

	w.Render(rec)
	if !slices.Contains(rec.Texts(), "GEMCROSS") {
		t.Errorf("title frame texts = %v, want the game title", rec.Texts())
	}

	w.machine.StartGame(w)
	rec.Reset()
	w.Render(rec)
	if !slices.Contains(rec.Texts(), "Score: 0") {
		t.Errorf("active frame texts = %v, want the score line", rec.Texts())
	}

	w.machine.ReachGoal(w)
	rec.Reset()
	w.Render(rec)
	texts := rec.Texts()
	for _, want := range []string{"You made it across!", "Continue", "Restart", "Quit"} {
		if !slices.Contains(texts, want) {
			t.Errorf("menu frame texts = %v, missing %q", texts, want)
		}
	}

	if err := w.machine.Apply(w, SelectionQuit); err != nil {
		t.Fatal(err)
	}
	rec.Reset()
	w.Render(rec)
	if !slices.Contains(rec.Texts(), "GAME OVER") {
		t.Errorf("game-over frame texts = %v, want GAME OVER", rec.Texts())
	}
}

func TestRenderHeartsTrackLives(t *testing.T) {
	w := activeWorld(t)
	rec := surface.NewRecorder(w.Grid().Width(), w.Grid().Height())

	w.Render(rec)
	base := rec.Count(surface.OpImage)

	w.player.LoseLife()
	rec.Reset()
	w.Render(rec)
	if got := rec.Count(surface.OpImage); got != base-1 {
		t.Errorf("image ops = %d after losing a life, want %d", got, base-1)
	}
}

func TestRenderIsPure(t *testing.T) {
	w := testWorld(t)
	rec := surface.NewRecorder(w.Grid().Width(), w.Grid().Height())

	w.Render(rec)
	first := len(rec.Ops)
	rec.Reset()
	w.Render(rec)
	if len(rec.Ops) != first {
		t.Errorf("frame op count changed across identical renders: %d vs %d", first, len(rec.Ops))
	}
	if w.State() != StateTitle {
		t.Errorf("render changed state to %v", w.State())
	}
}
