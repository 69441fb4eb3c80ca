// Package config provides YAML-based level and cadence configuration
// for the bakery game. Things are written as strings ("water",
// "flour:sugar", "flavouring:chilli") and parsed by the game layer,
// keeping this package free of game dependencies.
package config

// BakeryConfig contains all configuration for the bakery game.
type BakeryConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Spawner SpawnerConfig `yaml:"spawner"`
	Fill    FillConfig    `yaml:"fill"`
	Cadence CadenceConfig `yaml:"cadence"`
}

// BoardConfig defines the play-field dimensions. The wall perimeter,
// spawner row and collector row are derived from these.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnerConfig defines what the spawner row may produce.
type SpawnerConfig struct {
	Contents []string `yaml:"contents"`
}

// FillConfig defines the weighted list used to deal a fresh board:
// repeat an entry to make it proportionally more likely.
type FillConfig struct {
	Weights []string `yaml:"weights"`
}

// CadenceConfig defines the scheduling policy in simulation ticks:
// how often gravity runs, how long after a changed gravity pass the
// collectors sweep, and how long after a successful move a spawn is
// attempted.
type CadenceConfig struct {
	FallTicks    int `yaml:"fall_ticks"`
	CollectDelay int `yaml:"collect_delay"`
	SpawnDelay   int `yaml:"spawn_delay"`
}

// Normalize fills zero or negative fields from the defaults so a
// partial YAML file still yields a playable configuration.
func (c *BakeryConfig) Normalize() {
	def := DefaultBakeryConfig()
	if c.Board.Width <= 0 {
		c.Board.Width = def.Board.Width
	}
	if c.Board.Height <= 0 {
		c.Board.Height = def.Board.Height
	}
	if len(c.Spawner.Contents) == 0 {
		c.Spawner.Contents = def.Spawner.Contents
	}
	if len(c.Fill.Weights) == 0 {
		c.Fill.Weights = def.Fill.Weights
	}
	if c.Cadence.FallTicks <= 0 {
		c.Cadence.FallTicks = def.Cadence.FallTicks
	}
	if c.Cadence.CollectDelay <= 0 {
		c.Cadence.CollectDelay = def.Cadence.CollectDelay
	}
	if c.Cadence.SpawnDelay <= 0 {
		c.Cadence.SpawnDelay = def.Cadence.SpawnDelay
	}
}
