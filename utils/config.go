package utils

import (
	"encoding/json"
	"github.com/pkg/errors"
	"os"
	"time"
)

// Config holds the configuration for the game
type Config struct {
	ViewMinX      int64         `json:"view_min_x"`
	ViewMinY      int64         `json:"view_min_y"`
	ViewMaxX      int64         `json:"view_max_x"`
	ViewMaxY      int64         `json:"view_max_y"`
	MaxIterations uint64        `json:"max_iterations"`
	FrameRate     time.Duration `json:"frame_rate"`
	ClearScreen   bool          `json:"clear_screen"`
	LiveMarker    string        `json:"live_marker"`
	DeadMarker    string        `json:"dead_marker"`
	RandomDensity float64       `json:"random_density"`
	Seed          uint64        `json:"seed"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		ViewMinX:      0,
		ViewMinY:      0,
		ViewMaxX:      80,
		ViewMaxY:      20,
		MaxIterations: 60,
		FrameRate:     0,
		ClearScreen:   false,
		LiveMarker:    "*",
		DeadMarker:    "-",
		RandomDensity: 0.15,
		Seed:          1,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values a run cannot work with
func (c Config) Validate() error {
	if c.MaxIterations == 0 {
		return errors.New("max_iterations must be positive")
	}
	if c.FrameRate < 0 {
		return errors.Errorf("frame_rate must not be negative, got %v", c.FrameRate)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("random_density must be within [0, 1], got %v", c.RandomDensity)
	}
	if len([]rune(c.LiveMarker)) > 1 || len([]rune(c.DeadMarker)) > 1 {
		return errors.New("live_marker and dead_marker must be a single character")
	}
	return nil
}
