package game

import (
	"time"

	"github.com/zurustar/gemcross/pkg/assets"
	"github.com/zurustar/gemcross/pkg/logger"
)

// Initializer gates the loop behind asset readiness and owns the full
// restart sequence.
type Initializer struct {
	world *World
	store *assets.Store
	loop  *Loop
	now   func() time.Time
}

// NewInitializer wires the restart callback into the loop.
func NewInitializer(world *World, store *assets.Store, loop *Loop) *Initializer {
	ini := &Initializer{world: world, store: store, loop: loop, now: time.Now}
	loop.SetRestartFunc(ini.Restart)
	return ini
}

// Start requests the asset load and arms the loop from the single
// ready callback. The loop stays dormant until then.
func (ini *Initializer) Start() error {
	if err := ini.store.OnReady(ini.boot); err != nil {
		return err
	}
	return ini.store.Load()
}

// Restart performs a full soft reboot: every listener is detached, the
// player and collections are recreated, and the machine returns to the
// title. Resident assets are not re-requested.
func (ini *Initializer) Restart() {
	logger.L().Info("restarting game")
	ini.world.listeners.DetachAll()
	ini.world.HardReset()

	if ini.store.Ready() {
		ini.boot()
		return
	}
	// Assets were never resident (degenerate case); Load fires the
	// ready callback, which boots.
	if err := ini.store.Load(); err != nil {
		logger.L().Error("asset load failed during restart", "err", err)
	}
}

func (ini *Initializer) boot() {
	ini.world.BuildLevel()
	ini.world.machine.Boot(ini.world)
	ini.loop.Arm(ini.now())
	logger.L().Info("game initialized", "state", ini.world.State().String())
}
