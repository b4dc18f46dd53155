package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maskedit", "config.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Editor.DefaultAlpha != "50" {
		t.Fatalf("DefaultAlpha = %q, want 50", cfg.Editor.DefaultAlpha)
	}
	if got := cfg.Hotkeys.Undo.String(); got != "ctrl+z" {
		t.Fatalf("undo hotkey = %q, want ctrl+z", got)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config was not written: %v", err)
	}
}

func TestValidateRepairsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"hotkeys": {"open": {"modifiers": ["hyper"], "key": "o"}, "save": {"modifiers": ["Ctrl", "Shift"], "key": "S"}},
		"storage": {"directory": "../escape", "format": "gif", "keepDays": -3},
		"editor": {"defaultAlpha": "abc"},
		"log": {"level": "LOUD"}
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	defaults := DefaultConfig()

	if cfg.Storage.Format != "png" || cfg.Storage.Directory != defaults.Storage.Directory || cfg.Storage.KeepDays != 0 {
		t.Fatalf("storage not repaired: %+v", cfg.Storage)
	}
	if cfg.Editor.DefaultAlpha != "50" {
		t.Fatalf("editor not repaired: %+v", cfg.Editor)
	}
	if got := cfg.Hotkeys.Open.String(); got != "ctrl+o" {
		t.Fatalf("open hotkey = %q, want default ctrl+o", got)
	}
	if got := cfg.Hotkeys.Save.String(); got != "ctrl+shift+s" {
		t.Fatalf("save hotkey = %q, want ctrl+shift+s", got)
	}
	if got := cfg.Hotkeys.Undo.String(); got != "ctrl+z" {
		t.Fatalf("missing undo hotkey = %q, want default", got)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("log level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadFromInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	cfg, err := LoadFrom(path)
	if err == nil {
		t.Fatalf("LoadFrom should report the parse error")
	}
	if cfg == nil || cfg.Path() != path {
		t.Fatalf("LoadFrom should still return defaults bound to the path")
	}
}

func TestParseBinding(t *testing.T) {
	b, ok := ParseBinding("Ctrl + Shift + S")
	if !ok {
		t.Fatalf("ParseBinding failed")
	}
	if got := b.String(); got != "ctrl+shift+s" {
		t.Fatalf("String() = %q", got)
	}
	if _, ok := ParseBinding("s"); ok {
		t.Fatalf("binding without modifier should be rejected")
	}
}

func TestSetBinding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, _ := LoadFrom(path)

	if err := cfg.SetBinding("save", Binding{Modifiers: []string{"alt"}, Key: "e"}); err != nil {
		t.Fatalf("SetBinding failed: %v", err)
	}
	reloaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if got := reloaded.Hotkeys.Save.String(); got != "alt+e" {
		t.Fatalf("saved binding = %q, want alt+e", got)
	}

	if err := cfg.SetBinding("rotate", Binding{}); err == nil {
		t.Fatalf("unknown action should fail")
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if _, err := LoadFrom(path); err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	changed := make(chan struct{}, 1)
	w, err := NewWatcher(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	if err := os.WriteFile(path, []byte(`{"editor": {"defaultAlpha": "7"}}`), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatalf("watcher did not report the change")
	}
}
