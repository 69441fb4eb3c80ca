package config

import (
	_ "embed"
)

//go:embed defaults/bakery.yaml
var defaultBakeryYAML []byte

// DefaultBakeryConfig returns the built-in level: a 6x6 play field,
// the full ingredient set on the spawner row, plain water and flour
// weighted double in the fresh-board deal.
func DefaultBakeryConfig() BakeryConfig {
	return BakeryConfig{
		Board: BoardConfig{
			Width:  6,
			Height: 6,
		},
		Spawner: SpawnerConfig{
			Contents: []string{
				"water",
				"flour",
				"flavouring:sugar",
				"flavouring:chocolate",
				"flavouring:chilli",
			},
		},
		Fill: FillConfig{
			Weights: []string{
				"water", "water",
				"flour", "flour",
				"flavouring:sugar", "flavouring:chocolate", "flavouring:chilli",
			},
		},
		Cadence: CadenceConfig{
			FallTicks:    30,
			CollectDelay: 15,
			SpawnDelay:   20,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for tooling that
// wants to show or write out the stock configuration.
func DefaultYAML() []byte {
	return defaultBakeryYAML
}
