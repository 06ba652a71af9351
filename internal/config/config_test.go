package config

import (
	"testing"
)

// pointConfigAt redirects the platform config dir to a temp dir so tests
// never touch the real user config.
func pointConfigAt(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("APPDATA", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
}

func TestLoadDefaults(t *testing.T) {
	pointConfigAt(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("default log level = %q, want %q", cfg.LogLevel, "info")
	}
	if len(cfg.Bindings) == 0 {
		t.Fatal("default config has no bindings")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	pointConfigAt(t, t.TempDir())

	cfg := &Config{
		LogLevel: "debug",
		Bindings: []Binding{
			{Combo: "Ctrl+Shift+F5", ExtraKeys: []string{"LShift"}, Action: ActionNotify, Message: "hi"},
		},
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("log level = %q, want %q", loaded.LogLevel, "debug")
	}
	if len(loaded.Bindings) != 1 {
		t.Fatalf("got %d bindings, want 1", len(loaded.Bindings))
	}
	b := loaded.Bindings[0]
	if b.Combo != "Ctrl+Shift+F5" || b.Action != ActionNotify || b.Message != "hi" {
		t.Errorf("binding did not roundtrip: %+v", b)
	}
	if len(b.ExtraKeys) != 1 || b.ExtraKeys[0] != "LShift" {
		t.Errorf("extra keys did not roundtrip: %v", b.ExtraKeys)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		binding Binding
		wantErr bool
	}{
		{
			name:    "valid notify binding",
			binding: Binding{Combo: "Ctrl+Alt+N", Action: ActionNotify},
		},
		{
			name:    "valid clipboard binding with extra key",
			binding: Binding{Combo: "Win+C", ExtraKeys: []string{"LShift"}, Action: ActionClipboard},
		},
		{
			name:    "bad combo",
			binding: Binding{Combo: "Ctrl+Nope", Action: ActionNotify},
			wantErr: true,
		},
		{
			name:    "bad extra key",
			binding: Binding{Combo: "Ctrl+Alt+N", ExtraKeys: []string{"nope"}, Action: ActionNotify},
			wantErr: true,
		},
		{
			name:    "unknown action",
			binding: Binding{Combo: "Ctrl+Alt+N", Action: "launch-missiles"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{LogLevel: "info", Bindings: []Binding{tt.binding}}
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate should have failed")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate failed: %v", err)
			}
		})
	}
}
