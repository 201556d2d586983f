package input

import "github.com/zurustar/gemcross/pkg/logger"

// Kind identifies a logical listener.
type Kind int

const (
	// KindStartKey is active on the title and game-over screens.
	KindStartKey Kind = iota
	// KindKeyboardMove is active during play.
	KindKeyboardMove
	// KindClickSelect is active while the menu is shown.
	KindClickSelect
)

func (k Kind) String() string {
	switch k {
	case KindStartKey:
		return "start-key"
	case KindKeyboardMove:
		return "keyboard-move"
	case KindClickSelect:
		return "click-select"
	default:
		return "unknown"
	}
}

// Registry tracks which listener kinds are attached. At most one
// instance of each kind exists; Attach and Detach are idempotent so
// state transitions can declare the listener set they need without
// caring what was attached before.
type Registry struct {
	attached map[Kind]bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{attached: make(map[Kind]bool)}
}

// Attach marks k attached. Attaching an attached kind is a no-op.
func (r *Registry) Attach(k Kind) {
	if r.attached[k] {
		logger.L().Debug("listener already attached", "kind", k.String())
		return
	}
	r.attached[k] = true
	logger.L().Debug("listener attached", "kind", k.String())
}

// Detach marks k detached. Detaching a detached kind is a no-op.
func (r *Registry) Detach(k Kind) {
	if !r.attached[k] {
		return
	}
	delete(r.attached, k)
	logger.L().Debug("listener detached", "kind", k.String())
}

// DetachAll clears every registration.
func (r *Registry) DetachAll() {
	for k := range r.attached {
		delete(r.attached, k)
	}
}

// Attached reports whether k is attached.
func (r *Registry) Attached(k Kind) bool {
	return r.attached[k]
}

// Count returns the number of attached listeners.
func (r *Registry) Count() int {
	return len(r.attached)
}
