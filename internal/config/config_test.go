package config

import (
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/employee-menu/internal/keys"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.EscapeTimeout != keys.DefaultEscapeTimeout {
		t.Fatalf("expected default escape timeout %v, got %v", keys.DefaultEscapeTimeout, cfg.App.EscapeTimeout)
	}
	if cfg.App.Capacity != 0 || cfg.App.NoColor {
		t.Fatalf("unexpected defaults %#v", cfg.App)
	}
	if cfg.App.Pause != time.Second {
		t.Fatalf("expected 1s pause, got %v", cfg.App.Pause)
	}
	if cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("unexpected logging defaults %#v", cfg.Logging)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsFlags(t *testing.T) {
	args := []string{"-esc-timeout", "0", "-capacity", "5", "-pause", "250ms", "-no-color", "-trace", "-log-file", "/tmp/menu.log"}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.EscapeTimeout != 0 {
		t.Fatalf("expected blocking escape mode, got %v", cfg.App.EscapeTimeout)
	}
	if cfg.App.Capacity != 5 || cfg.App.Pause != 250*time.Millisecond || !cfg.App.NoColor {
		t.Fatalf("unexpected app config %#v", cfg.App)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/menu.log" {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
	if cfg.Flags["capacity"] != "5" || cfg.Flags["esc-timeout"] != "0s" {
		t.Fatalf("unexpected flags map %#v", cfg.Flags)
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected args preserved, got %v", cfg.Args)
	}
}

func TestLoadArgsEnvironmentFallback(t *testing.T) {
	env := []string{
		envEscapeTimeout + "=100ms",
		envCapacity + "=3",
		envNoColor + "=true",
		envTrace + "=1",
		envLogFile + "=trace.log",
		"malformed",
		"",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.EscapeTimeout != 100*time.Millisecond || cfg.App.Capacity != 3 || !cfg.App.NoColor {
		t.Fatalf("expected env values, got %#v", cfg.App)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "trace.log" {
		t.Fatalf("expected env logging, got %#v", cfg.Logging)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"-capacity", "9"}, []string{envCapacity + "=3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Capacity != 9 {
		t.Fatalf("expected flag to win, got %d", cfg.App.Capacity)
	}
}

func TestLoadArgsIgnoresMalformedEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envEscapeTimeout + "=soon", envCapacity + "=many", envTrace + "=maybe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.EscapeTimeout != keys.DefaultEscapeTimeout || cfg.App.Capacity != 0 || cfg.Logging.Trace {
		t.Fatalf("expected fallbacks for malformed env, got %#v %#v", cfg.App, cfg.Logging)
	}
}

func TestLoadArgsRejectsBadInput(t *testing.T) {
	if _, err := LoadArgs([]string{"-capacity", "lots"}, nil); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := LoadArgs([]string{"-unknown"}, nil); err == nil {
		t.Fatalf("expected unknown flag error")
	}
	_, err := LoadArgs([]string{"extra"}, nil)
	if err == nil || !strings.Contains(err.Error(), "unexpected arguments") {
		t.Fatalf("expected positional argument error, got %v", err)
	}
}

func TestValidateRejectsNegatives(t *testing.T) {
	for _, args := range [][]string{
		{"-esc-timeout", "-1ms"},
		{"-capacity", "-1"},
		{"-pause", "-2s"},
	} {
		cfg, err := LoadArgs(args, nil)
		if err != nil {
			t.Fatalf("%v: unexpected parse error: %v", args, err)
		}
		if err := Validate(cfg); err == nil {
			t.Fatalf("%v: expected validation error", args)
		}
	}
}
