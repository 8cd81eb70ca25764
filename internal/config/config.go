package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/employee-menu/internal/app"
	"github.com/atomicstack/employee-menu/internal/keys"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envEscapeTimeout = "EMPLOYEE_MENU_ESC_TIMEOUT"
	envCapacity      = "EMPLOYEE_MENU_CAPACITY"
	envPause         = "EMPLOYEE_MENU_PAUSE"
	envNoColor       = "EMPLOYEE_MENU_NO_COLOR"
	envTrace         = "EMPLOYEE_MENU_TRACE"
	envLogFile       = "EMPLOYEE_MENU_LOG_FILE"

	defaultPause = time.Second
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("employee-menu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	escTimeout := fs.Duration("esc-timeout", envOrDuration(env, envEscapeTimeout, keys.DefaultEscapeTimeout), "how long a lone Escape waits for a key sequence (0 always blocks for the bytes after Escape)")
	capacity := fs.Int("capacity", envOrInt(env, envCapacity, 0), "maximum number of employee records (0 is unbounded)")
	pause := fs.Duration("pause", envOrDuration(env, envPause, defaultPause), "how long entry result messages stay on screen")
	noColor := fs.Bool("no-color", envOrBool(env, envNoColor, false), "disable colours and emphasis")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := Config{
		App: app.Config{
			EscapeTimeout: *escTimeout,
			Capacity:      *capacity,
			Pause:         *pause,
			NoColor:       *noColor,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"esc-timeout": escTimeout.String(),
			"capacity":    strconv.Itoa(*capacity),
			"pause":       pause.String(),
			"no-color":    strconv.FormatBool(*noColor),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects values the application cannot run with.
func Validate(cfg Config) error {
	if cfg.App.EscapeTimeout < 0 {
		return fmt.Errorf("esc-timeout must be >= 0 (got %s)", cfg.App.EscapeTimeout)
	}
	if cfg.App.Capacity < 0 {
		return fmt.Errorf("capacity must be >= 0 (got %d)", cfg.App.Capacity)
	}
	if cfg.App.Pause < 0 {
		return fmt.Errorf("pause must be >= 0 (got %s)", cfg.App.Pause)
	}
	return nil
}
