package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("got %+v, want defaults %+v", s, DefaultSettings())
	}
}

func TestLoadSettingsEmptyPath(t *testing.T) {
	s, err := LoadSettings("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("got %+v, want defaults", s)
	}
}

func TestLoadSettingsOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archery.toml")
	data := "seed = 42\nsound = false\nwindow_scale = 1.5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Seed != 42 || s.Sound || s.WindowScale != 1.5 {
		t.Errorf("overrides not applied: %+v", s)
	}
	// Не указанные в файле поля остаются по умолчанию
	if s.MaxSpentArrows != MaxSpentArrows || !s.StartInMenu {
		t.Errorf("defaults lost: %+v", s)
	}
}

func TestLoadSettingsRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archery.toml")
	if err := os.WriteFile(path, []byte("window_scale = -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadSettings(path)
	if !errors.Is(err, ErrInvalidSettings) {
		t.Fatalf("expected ErrInvalidSettings, got %v", err)
	}
}

func TestLoadSettingsSampleStep(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    float64
		invalid bool
	}{
		{"default", "seed = 1\n", FlightSampleStep, false},
		{"finer", "flight_sample_step = 0.005\n", 0.005, false},
		{"zero", "flight_sample_step = 0.0\n", 0, true},
		{"too coarse", "flight_sample_step = 0.2\n", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "archery.toml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			s, err := LoadSettings(path)
			if tt.invalid {
				if !errors.Is(err, ErrInvalidSettings) {
					t.Fatalf("expected ErrInvalidSettings, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.FlightSampleStep != tt.want {
				t.Errorf("FlightSampleStep = %v, want %v", s.FlightSampleStep, tt.want)
			}
		})
	}
}

func TestLoadSettingsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archery.toml")
	if err := os.WriteFile(path, []byte("seed = = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSettings(path); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "archery.toml")
	want := DefaultSettings()
	want.Seed = 7
	want.PprofAddr = "localhost:6060"

	if err := SaveSettings(path, want); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
