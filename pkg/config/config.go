// Package config provides YAML-based game configuration with built-in
// defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config contains all tunable game parameters.
type Config struct {
	Board   Board   `yaml:"board"`
	Player  Player  `yaml:"player"`
	Enemies Enemies `yaml:"enemies"`
	Gems    Gems    `yaml:"gems"`
	Window  Window  `yaml:"window"`
}

// Board defines the tile grid. Row 0 is the goal row at the top.
type Board struct {
	Cols       int     `yaml:"cols"`
	Rows       int     `yaml:"rows"`
	TileWidth  float64 `yaml:"tile_width"`
	TileHeight float64 `yaml:"tile_height"`
}

// Player defines the starting position and lives.
type Player struct {
	StartCol int `yaml:"start_col"`
	StartRow int `yaml:"start_row"`
	Lives    int `yaml:"lives"`
}

// Enemies defines the lanes enemies sweep across and their speed range
// in pixels per second.
type Enemies struct {
	Lanes    []int   `yaml:"lanes"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// Gems defines how many gems a level holds and their score value.
type Gems struct {
	Count int `yaml:"count"`
	Value int `yaml:"value"`
}

// Window defines presentation parameters.
type Window struct {
	Title string  `yaml:"title"`
	Scale float64 `yaml:"scale"`
}

// Default returns the built-in configuration: the classic five-column,
// six-row board with three enemy lanes.
func Default() *Config {
	return &Config{
		Board: Board{
			Cols:       5,
			Rows:       6,
			TileWidth:  101,
			TileHeight: 83,
		},
		Player: Player{
			StartCol: 2,
			StartRow: 5,
			Lives:    3,
		},
		Enemies: Enemies{
			Lanes:    []int{1, 2, 3},
			MinSpeed: 80,
			MaxSpeed: 300,
		},
		Gems: Gems{
			Count: 3,
			Value: 50,
		},
		Window: Window{
			Title: "gemcross",
			Scale: 1,
		},
	}
}

// Load reads a config file, filling unset fields from Default.
// An empty path returns Default directly.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks structural constraints the game relies on.
func (c *Config) Validate() error {
	if c.Board.Cols < 3 || c.Board.Rows < 3 {
		return fmt.Errorf("board must be at least 3x3, got %dx%d", c.Board.Cols, c.Board.Rows)
	}
	if c.Board.TileWidth <= 0 || c.Board.TileHeight <= 0 {
		return fmt.Errorf("tile size must be positive, got %gx%g", c.Board.TileWidth, c.Board.TileHeight)
	}
	if c.Player.StartCol < 0 || c.Player.StartCol >= c.Board.Cols {
		return fmt.Errorf("player start column %d outside board", c.Player.StartCol)
	}
	if c.Player.StartRow <= 0 || c.Player.StartRow >= c.Board.Rows {
		return fmt.Errorf("player start row %d must be below the goal row and on the board", c.Player.StartRow)
	}
	if c.Player.Lives < 1 {
		return fmt.Errorf("lives must be at least 1, got %d", c.Player.Lives)
	}
	if len(c.Enemies.Lanes) == 0 {
		return fmt.Errorf("at least one enemy lane is required")
	}
	for _, lane := range c.Enemies.Lanes {
		if lane <= 0 || lane >= c.Board.Rows-1 {
			return fmt.Errorf("enemy lane %d must be strictly between goal and start rows", lane)
		}
	}
	if c.Enemies.MinSpeed <= 0 || c.Enemies.MaxSpeed < c.Enemies.MinSpeed {
		return fmt.Errorf("enemy speed range [%g, %g] is invalid", c.Enemies.MinSpeed, c.Enemies.MaxSpeed)
	}
	if c.Gems.Count < 0 {
		return fmt.Errorf("gem count must not be negative, got %d", c.Gems.Count)
	}
	if c.Gems.Value <= 0 {
		return fmt.Errorf("gem value must be positive, got %d", c.Gems.Value)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window scale must be positive, got %g", c.Window.Scale)
	}
	return nil
}
