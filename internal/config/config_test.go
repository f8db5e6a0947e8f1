package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alfredjeanlab/discovery/internal/model"
)

func clearAllEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DISCOVERY_CONFIG", "DISCOVERY_LOG_LEVEL", "DISCOVERY_COLOR"} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	for _, tc := range []struct {
		name         string
		file         string
		env          map[string]string
		wantErr      bool
		wantLevel    slog.Level
		wantColor    string
		wantDefaults int
	}{
		{
			name:      "MissingFile",
			wantLevel: slog.LevelInfo,
			wantColor: ColorAuto,
		},
		{
			name: "FileValues",
			file: `
log_level = "debug"
color = "never"

[defaults]
per_page = "20"
staff_picks = "true"
`,
			wantLevel:    slog.LevelDebug,
			wantColor:    ColorNever,
			wantDefaults: 2,
		},
		{
			name:      "EnvOverridesFile",
			file:      `log_level = "debug"`,
			env:       map[string]string{"DISCOVERY_LOG_LEVEL": "warn", "DISCOVERY_COLOR": "always"},
			wantLevel: slog.LevelWarn,
			wantColor: ColorAlways,
		},
		{
			name:    "BadLevel",
			env:     map[string]string{"DISCOVERY_LOG_LEVEL": "chatty"},
			wantErr: true,
		},
		{
			name:    "BadColor",
			file:    `color = "sometimes"`,
			wantErr: true,
		},
		{
			name:    "BadDefaults",
			file:    "[defaults]\nbacked = \"maybe\"\n",
			wantErr: true,
		},
		{
			name:    "MalformedTOML",
			file:    "log_level = ",
			wantErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			clearAllEnv(t)
			path := filepath.Join(t.TempDir(), "absent.toml")
			if tc.file != "" {
				path = writeConfig(t, tc.file)
			}
			t.Setenv("DISCOVERY_CONFIG", path)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Path != path {
				t.Errorf("Path = %q, want %q", cfg.Path, path)
			}
			lvl, err := cfg.Level()
			if err != nil {
				t.Fatalf("Level() error: %v", err)
			}
			if lvl != tc.wantLevel {
				t.Errorf("Level() = %v, want %v", lvl, tc.wantLevel)
			}
			if cfg.Color != tc.wantColor {
				t.Errorf("Color = %q, want %q", cfg.Color, tc.wantColor)
			}
			if len(cfg.Defaults) != tc.wantDefaults {
				t.Errorf("len(Defaults) = %d, want %d", len(cfg.Defaults), tc.wantDefaults)
			}
		})
	}
}

func TestBaseParams(t *testing.T) {
	clearAllEnv(t)
	cfg, err := LoadFile(writeConfig(t, "[defaults]\nper_page = \"20\"\nstaff_picks = \"true\"\nsort = \"newest\"\n"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	got, err := cfg.BaseParams()
	if err != nil {
		t.Fatalf("BaseParams: %v", err)
	}
	want := model.Defaults().WithPerPage(20).WithStaffPicks(true).WithSort(model.SortNewest)
	if !got.Equal(want) {
		t.Errorf("BaseParams() = %#v, want %#v", got, want)
	}
}

func TestBaseParams_DecodeError(t *testing.T) {
	cfg := &Config{Defaults: map[string]string{"page": "one"}}
	_, err := cfg.BaseParams()
	var de *model.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("BaseParams() error = %v, want *model.DecodeError", err)
	}
	if de.Field != model.FieldPage {
		t.Errorf("Field = %q, want %q", de.Field, model.FieldPage)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("HOME", "/tmp/discovery-home")
	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if want := filepath.Join("/tmp/discovery-home", ".config", "discovery", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}
