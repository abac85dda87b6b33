package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/osse101/WheelOfFortune_Go/internal/domain"
	"github.com/osse101/WheelOfFortune_Go/internal/validation"
)

// GameConfig holds the tuning of the zone ladder, the wheel and spin timing
type GameConfig struct {
	Zones ZoneSettings  `yaml:"zones"`
	Wheel WheelSettings `yaml:"wheel"`
	Spin  SpinSettings  `yaml:"spin"`
}

// ZoneSettings configures zone numbering and classification
type ZoneSettings struct {
	StartingZone  int `yaml:"starting_zone" validate:"gte=1,ltefield=MaxZone"`
	MaxZone       int `yaml:"max_zone" validate:"gte=1"`
	SafeInterval  int `yaml:"safe_interval" validate:"gte=1"`
	SuperInterval int `yaml:"super_interval" validate:"gte=1"`
}

// WheelSettings configures generated wheels
type WheelSettings struct {
	SliceCount int             `yaml:"slice_count" validate:"gte=1"`
	BombCount  int             `yaml:"bomb_count" validate:"gte=0,ltfield=SliceCount"`
	BombTest   bool            `yaml:"bomb_test"`
	CashCurve  MultiplierCurve `yaml:"cash_curve"`
	GoldCurve  MultiplierCurve `yaml:"gold_curve"`
	CacheSize  int             `yaml:"cache_size" validate:"gte=1"`
	CacheTTL   time.Duration   `yaml:"cache_ttl" validate:"gte=0"`
}

// MultiplierCurve is a linear per-zone multiplier: Base + zone*Step
type MultiplierCurve struct {
	Base float64 `yaml:"base" validate:"gte=0"`
	Step float64 `yaml:"step" validate:"gte=0"`
}

// At returns the curve value for a zone
func (c MultiplierCurve) At(zone int) float64 {
	return c.Base + float64(zone)*c.Step
}

// SpinSettings configures spin timing and auto-continue
type SpinSettings struct {
	MinDuration    time.Duration `yaml:"min_duration" validate:"gt=0"`
	MaxDuration    time.Duration `yaml:"max_duration" validate:"gtefield=MinDuration"`
	AutoSpinDelay  time.Duration `yaml:"auto_spin_delay" validate:"gte=0"`
	ReviveAutoSpin bool          `yaml:"revive_auto_spin"`
}

// DefaultGameConfig returns the built-in tuning
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Zones: ZoneSettings{
			StartingZone:  DefaultStartingZone,
			MaxZone:       DefaultMaxZone,
			SafeInterval:  DefaultSafeInterval,
			SuperInterval: DefaultSuperInterval,
		},
		Wheel: WheelSettings{
			SliceCount: DefaultSliceCount,
			BombCount:  DefaultBombCount,
			CashCurve:  MultiplierCurve{Base: DefaultCashBase, Step: DefaultCashStep},
			GoldCurve:  MultiplierCurve{Base: DefaultGoldBase, Step: DefaultGoldStep},
			CacheSize:  DefaultZoneCacheSize,
		},
		Spin: SpinSettings{
			MinDuration:    2 * time.Second,
			MaxDuration:    4 * time.Second,
			AutoSpinDelay:  500 * time.Millisecond,
			ReviveAutoSpin: DefaultReviveAutoSpin,
		},
	}
}

// Validate checks the tuning for internal consistency
func (c GameConfig) Validate() error {
	if err := validation.NewStructValidator().ValidateStruct(c); err != nil {
		return fmt.Errorf("%w: %s: %s", domain.ErrInvalidConfig, ErrMsgInvalidGameConfig, validation.Summarize(err))
	}
	return nil
}

// ParseGameConfig overlays YAML onto the defaults and validates the result
func ParseGameConfig(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return GameConfig{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidConfig, ErrMsgParseGameConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// LoadGameConfig reads a YAML tuning file. An empty path yields the defaults.
func LoadGameConfig(path string) (GameConfig, error) {
	if path == "" {
		return DefaultGameConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, fmt.Errorf("%s %s: %w", ErrMsgReadGameConfig, path, err)
	}
	return ParseGameConfig(data)
}
