// Package config provides YAML configuration for the simulation.
// Defaults come from the parameter package; a file overrides any subset.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/antigen/parameter"
)

// Config contains all tunables of a simulation session
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Cancer  CancerConfig  `yaml:"cancer"`
	TCell   TCellConfig   `yaml:"tcell"`
	Upgrade UpgradeConfig `yaml:"upgrade"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Gesture GestureConfig `yaml:"gesture"`
	Chain   ChainConfig   `yaml:"chain"`
	Audio   AudioConfig   `yaml:"audio"`
	Stream  StreamConfig  `yaml:"stream"`
	Logging LoggingConfig `yaml:"logging"`
}

// EngineConfig controls the frame step and arena
type EngineConfig struct {
	// Seed for the simulation PRNG; 0 picks a time-based seed
	Seed uint64 `yaml:"seed"`

	// Debug fixes the cluster count and enables verbose logging
	Debug bool `yaml:"debug"`

	ArenaWidth  float64 `yaml:"arena_width"`
	ArenaHeight float64 `yaml:"arena_height"`

	MaxFrameDelta time.Duration `yaml:"max_frame_delta"`

	// VictoryDuration is the hold between a cleared board and the next round
	VictoryDuration time.Duration `yaml:"victory_duration"`
}

// CancerConfig configures cancer cell size and proliferation
type CancerConfig struct {
	Size          float64       `yaml:"size"`
	ClusterRadius float64       `yaml:"cluster_radius"`
	ClusterNoise  float64       `yaml:"cluster_noise"`
	DeathDuration time.Duration `yaml:"death_duration"`

	ProliferationRadius   float64       `yaml:"proliferation_radius"`
	ProliferationTime     time.Duration `yaml:"proliferation_time"`
	ProliferationVariance float64       `yaml:"proliferation_variance"`
	ProliferationChance   float64       `yaml:"proliferation_chance"`
	MaxCells              int           `yaml:"max_cells"`
}

// TCellConfig configures T-cell movement, lifetime and binding
type TCellConfig struct {
	Size            float64       `yaml:"size"`
	BaseSpeed       float64       `yaml:"base_speed"`
	ChaseSpeedMult  float64       `yaml:"chase_speed_mult"`
	Lifetime        time.Duration `yaml:"lifetime"`
	DeathDuration   time.Duration `yaml:"death_duration"`
	DetectionRadius float64       `yaml:"detection_radius"`
	BindingDuration time.Duration `yaml:"binding_duration"`

	SpeedUpgradeMult    float64 `yaml:"speed_upgrade_mult"`
	LifetimeUpgradeMult float64 `yaml:"lifetime_upgrade_mult"`
}

// UpgradeConfig configures collectible spawning
type UpgradeConfig struct {
	Size          float64       `yaml:"size"`
	Lifetime      time.Duration `yaml:"lifetime"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	SpawnChance   float64       `yaml:"spawn_chance"`
	MaxCount      int           `yaml:"max_count"`
	SpawnMargin   float64       `yaml:"spawn_margin"`
}

// SpawnConfig configures periodic T-cell spawning and cluster layout
type SpawnConfig struct {
	TCellInterval     time.Duration `yaml:"tcell_interval"`
	BorderPadding     float64       `yaml:"border_padding"`
	BorderBand        float64       `yaml:"border_band"`
	ClusterCountMin   int           `yaml:"cluster_count_min"`
	ClusterCountMax   int           `yaml:"cluster_count_max"`
	ClusterSeparation float64       `yaml:"cluster_separation"`

	// Marker assigned to newly spawned T-cells
	Marker string `yaml:"marker"`
}

// GestureConfig configures swipe and drag-drop handling
type GestureConfig struct {
	SwipeMinDistance   float64       `yaml:"swipe_min_distance"`
	SwipeRadius        float64       `yaml:"swipe_radius"`
	SwipeImpulseFactor float64       `yaml:"swipe_impulse_factor"`
	SwipeCooldown      time.Duration `yaml:"swipe_cooldown"`
	DropRadiusFactor   float64       `yaml:"drop_radius_factor"`
}

// ChainConfig configures the cascade kill
type ChainConfig struct {
	Count     int           `yaml:"count"`
	DelayStep time.Duration `yaml:"delay_step"`
}

// AudioConfig configures synthesized cues
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
}

// StreamConfig configures the websocket snapshot stream
type StreamConfig struct {
	Addr     string        `yaml:"addr"`
	Interval time.Duration `yaml:"interval"`
}

// LoggingConfig configures the debug log file
type LoggingConfig struct {
	Path string `yaml:"path"`
}

// Default returns a Config populated from parameter defaults
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			ArenaWidth:      parameter.DefaultArenaWidth,
			ArenaHeight:     parameter.DefaultArenaHeight,
			MaxFrameDelta:   parameter.MaxFrameDelta,
			VictoryDuration: parameter.VictoryDuration,
		},
		Cancer: CancerConfig{
			Size:                  parameter.CancerSize,
			ClusterRadius:         parameter.CancerClusterRadius,
			ClusterNoise:          parameter.CancerClusterNoise,
			DeathDuration:         parameter.CancerDeathDuration,
			ProliferationRadius:   parameter.ProliferationRadius,
			ProliferationTime:     parameter.ProliferationTime,
			ProliferationVariance: parameter.ProliferationVariance,
			ProliferationChance:   parameter.ProliferationChance,
			MaxCells:              parameter.MaxCancerCells,
		},
		TCell: TCellConfig{
			Size:                parameter.TCellSize,
			BaseSpeed:           parameter.TCellBaseSpeed,
			ChaseSpeedMult:      parameter.TCellChaseSpeedMult,
			Lifetime:            parameter.TCellLifetime,
			DeathDuration:       parameter.TCellDeathDuration,
			DetectionRadius:     parameter.DetectionRadius,
			BindingDuration:     parameter.BindingDuration,
			SpeedUpgradeMult:    parameter.UpgradeSpeedMult,
			LifetimeUpgradeMult: parameter.UpgradeLifetimeMult,
		},
		Upgrade: UpgradeConfig{
			Size:          parameter.UpgradeSize,
			Lifetime:      parameter.UpgradeLifetime,
			SpawnInterval: parameter.UpgradeSpawnInterval,
			SpawnChance:   parameter.UpgradeSpawnChance,
			MaxCount:      parameter.UpgradeMaxCount,
			SpawnMargin:   parameter.UpgradeSpawnMargin,
		},
		Spawn: SpawnConfig{
			TCellInterval:     parameter.TCellSpawnInterval,
			BorderPadding:     parameter.SpawnBorderPadding,
			BorderBand:        parameter.SpawnBorderBand,
			ClusterCountMin:   parameter.ClusterCountMin,
			ClusterCountMax:   parameter.ClusterCountMax,
			ClusterSeparation: parameter.ClusterMinSeparation,
			Marker:            "NONE",
		},
		Gesture: GestureConfig{
			SwipeMinDistance:   parameter.SwipeMinDistance,
			SwipeRadius:        parameter.SwipeRadius,
			SwipeImpulseFactor: parameter.SwipeImpulseFactor,
			SwipeCooldown:      parameter.SwipeCooldown,
			DropRadiusFactor:   parameter.DropRadiusFactor,
		},
		Chain: ChainConfig{
			Count:     parameter.ChainCount,
			DelayStep: parameter.ChainDelayStep,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
		Stream: StreamConfig{
			Addr:     "127.0.0.1:8420",
			Interval: parameter.SnapshotInterval,
		},
		Logging: LoggingConfig{
			Path: "logs/antigen.log",
		},
	}
}

// Load reads path if it exists, falling back to defaults, then applies environment overrides
// Order: defaults -> file -> ANTIGEN_* environment variables
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			fileCfg, err := LoadFromFile(path)
			if err != nil {
				return nil, fmt.Errorf("loading config file: %w", err)
			}
			cfg = fileCfg
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file over defaults
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// applyEnvOverrides applies ANTIGEN_SEED and ANTIGEN_DEBUG
func applyEnvOverrides(c *Config) error {
	if v := os.Getenv("ANTIGEN_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("ANTIGEN_SEED: %w", err)
		}
		c.Engine.Seed = seed
	}
	if v := os.Getenv("ANTIGEN_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ANTIGEN_DEBUG: %w", err)
		}
		c.Engine.Debug = debug
	}
	return nil
}
