// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrInvalidSettings is returned when a settings file decodes but holds out-of-range values.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds runtime options that do not change gameplay rules.
type Settings struct {
	// 0 — сид от текущего времени
	Seed  int64 `toml:"seed"`
	Sound bool  `toml:"sound"`
	// пусто — профайлер выключен
	PprofAddr      string  `toml:"pprof_addr"`
	StartInMenu    bool    `toml:"start_in_menu"`
	WindowScale    float64 `toml:"window_scale"`
	MaxSpentArrows int     `toml:"max_spent_arrows"`
	// максимальный шаг семплирования полёта, секунды
	FlightSampleStep float64 `toml:"flight_sample_step"`
	// для терминальной версии, stdout занят tcell
	LogFile string `toml:"log_file"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	return Settings{
		Seed:             0,
		Sound:            true,
		PprofAddr:        "",
		StartInMenu:      true,
		WindowScale:      1.0,
		MaxSpentArrows:   MaxSpentArrows,
		FlightSampleStep: FlightSampleStep,
		LogFile:          "archery.log",
	}
}

// LoadSettings reads a TOML settings file on top of DefaultSettings.
// A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), fmt.Errorf("failed to decode settings file %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}

// Validate checks value ranges.
func (s Settings) Validate() error {
	if s.WindowScale <= 0 || s.WindowScale > 4 {
		return fmt.Errorf("%w: window_scale must be in (0, 4], got %v", ErrInvalidSettings, s.WindowScale)
	}
	if s.MaxSpentArrows < 0 {
		return fmt.Errorf("%w: max_spent_arrows must not be negative, got %d", ErrInvalidSettings, s.MaxSpentArrows)
	}
	if s.FlightSampleStep <= 0 || s.FlightSampleStep > MaxFlightSampleStep {
		return fmt.Errorf("%w: flight_sample_step must be in (0, %v], got %v", ErrInvalidSettings, MaxFlightSampleStep, s.FlightSampleStep)
	}
	return nil
}

// SaveSettings writes s as TOML, creating parent directories.
func SaveSettings(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return nil
}
