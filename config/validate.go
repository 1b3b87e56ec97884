package config

import (
	"fmt"

	"github.com/lixenwraith/antigen/core"
)

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Engine.ArenaWidth <= 0 || c.Engine.ArenaHeight <= 0 {
		return fmt.Errorf("arena must be positive, got %.0fx%.0f", c.Engine.ArenaWidth, c.Engine.ArenaHeight)
	}
	if c.Engine.MaxFrameDelta <= 0 {
		return fmt.Errorf("max_frame_delta must be positive, got %v", c.Engine.MaxFrameDelta)
	}
	if c.Engine.VictoryDuration < 0 {
		return fmt.Errorf("victory_duration must be non-negative, got %v", c.Engine.VictoryDuration)
	}

	if c.Cancer.Size <= 0 {
		return fmt.Errorf("cancer.size must be positive, got %f", c.Cancer.Size)
	}
	if c.Cancer.MaxCells < 0 {
		return fmt.Errorf("cancer.max_cells must be non-negative, got %d", c.Cancer.MaxCells)
	}
	if c.Cancer.ProliferationChance < 0 || c.Cancer.ProliferationChance > 1 {
		return fmt.Errorf("cancer.proliferation_chance must be between 0 and 1, got %f", c.Cancer.ProliferationChance)
	}
	if c.Cancer.ProliferationVariance < 0 || c.Cancer.ProliferationVariance >= 1 {
		return fmt.Errorf("cancer.proliferation_variance must be in [0, 1), got %f", c.Cancer.ProliferationVariance)
	}

	if c.TCell.Size <= 0 {
		return fmt.Errorf("tcell.size must be positive, got %f", c.TCell.Size)
	}
	if c.TCell.Lifetime <= 0 {
		return fmt.Errorf("tcell.lifetime must be positive, got %v", c.TCell.Lifetime)
	}
	if c.TCell.BindingDuration <= 0 {
		return fmt.Errorf("tcell.binding_duration must be positive, got %v", c.TCell.BindingDuration)
	}

	if c.Upgrade.SpawnChance < 0 || c.Upgrade.SpawnChance > 1 {
		return fmt.Errorf("upgrade.spawn_chance must be between 0 and 1, got %f", c.Upgrade.SpawnChance)
	}

	if c.Spawn.TCellInterval <= 0 {
		return fmt.Errorf("spawn.tcell_interval must be positive, got %v", c.Spawn.TCellInterval)
	}
	if c.Spawn.ClusterCountMin < 1 || c.Spawn.ClusterCountMax < c.Spawn.ClusterCountMin {
		return fmt.Errorf("invalid cluster count range [%d, %d]", c.Spawn.ClusterCountMin, c.Spawn.ClusterCountMax)
	}
	if _, err := core.ParseMarker(c.Spawn.Marker); err != nil {
		return fmt.Errorf("spawn.marker: %w", err)
	}

	if c.Chain.Count < 0 {
		return fmt.Errorf("chain.count must be non-negative, got %d", c.Chain.Count)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be between 0 and 1, got %f", c.Audio.Volume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}

	if c.Stream.Interval <= 0 {
		return fmt.Errorf("stream.interval must be positive, got %v", c.Stream.Interval)
	}
	return nil
}

// SpawnMarker returns the parsed spawn marker, MarkerNone when invalid
func (c *Config) SpawnMarker() core.Marker {
	m, err := core.ParseMarker(c.Spawn.Marker)
	if err != nil {
		return core.MarkerNone
	}
	return m
}
