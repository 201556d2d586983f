// Package assets loads the fixed set of sprite images the game needs
// and gates the game loop behind a single ready notification.
package assets

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"

	"github.com/zurustar/gemcross/pkg/logger"
)

// Asset identifiers. The manifest is fixed; there is no dynamic
// asset discovery.
const (
	IDPlayer   = "player"
	IDEnemy    = "enemy"
	IDGem      = "gem"
	IDGrass    = "grass"
	IDStone    = "stone"
	IDWater    = "water"
	IDHeart    = "heart"
	IDSelector = "selector"
	IDStar     = "star"
	IDRock     = "rock"
)

// Manifest returns the identifiers of every image the game loads.
func Manifest() []string {
	return []string{
		IDPlayer, IDEnemy, IDGem, IDGrass, IDStone,
		IDWater, IDHeart, IDSelector, IDStar, IDRock,
	}
}

// ErrNotLoaded is returned by Get before the ready notification fired,
// or for an identifier outside the manifest.
var ErrNotLoaded = errors.New("asset not loaded")

// Source produces the image for a single manifest entry.
type Source interface {
	Load(id string) (*ebiten.Image, error)
}

// Store holds the loaded images. Load decodes every manifest entry and
// fires the registered ready callback exactly once; Get serves images
// after that.
type Store struct {
	mu       sync.Mutex
	source   Source
	fallback Source
	images   map[string]*ebiten.Image
	manifest []string
	ready    bool
	loading  bool
	readyFn  func()
}

// NewStore creates a store reading from src. A nil fallback disables
// per-asset degradation; otherwise an entry src fails to produce is
// taken from the fallback instead of failing the whole load.
func NewStore(src Source, fallback Source) *Store {
	return &Store{
		source:   src,
		fallback: fallback,
		images:   make(map[string]*ebiten.Image),
		manifest: Manifest(),
	}
}

// OnReady registers the ready callback. At most one callback may ever
// be registered; it is invoked exactly once, after every manifest entry
// has loaded.
func (s *Store) OnReady(fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readyFn != nil {
		return errors.New("ready callback already registered")
	}
	s.readyFn = fn
	return nil
}

// Load decodes every manifest entry and fires the ready callback.
// Calling Load again while loading or after readiness is a no-op, so a
// game restart never re-requests resident assets.
func (s *Store) Load() error {
	s.mu.Lock()
	if s.ready || s.loading {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	s.mu.Unlock()

	loaded := make(map[string]*ebiten.Image, len(s.manifest))
	var lmu sync.Mutex

	var g errgroup.Group
	for _, id := range s.manifest {
		g.Go(func() error {
			img, err := s.loadOne(id)
			if err != nil {
				return err
			}
			lmu.Lock()
			loaded[id] = img
			lmu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		return fmt.Errorf("failed to load assets: %w", err)
	}

	s.mu.Lock()
	s.images = loaded
	s.ready = true
	s.loading = false
	fn := s.readyFn
	s.mu.Unlock()

	logger.L().Info("assets loaded", "count", len(loaded))
	if fn != nil {
		fn()
	}
	return nil
}

func (s *Store) loadOne(id string) (*ebiten.Image, error) {
	img, err := s.source.Load(id)
	if err == nil {
		return img, nil
	}
	if s.fallback == nil {
		return nil, fmt.Errorf("asset %s: %w", id, err)
	}
	logger.L().Warn("asset unavailable, using fallback", "id", id, "err", err)
	img, ferr := s.fallback.Load(id)
	if ferr != nil {
		return nil, fmt.Errorf("asset %s: %w (fallback: %v)", id, err, ferr)
	}
	return img, nil
}

// Get returns the image for id, or ErrNotLoaded before readiness or for
// an unknown identifier.
func (s *Store) Get(id string) (*ebiten.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, fmt.Errorf("%w: %s", ErrNotLoaded, id)
	}
	img, ok := s.images[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotLoaded, id)
	}
	return img, nil
}

// Ready reports whether every manifest entry is resident.
func (s *Store) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}
