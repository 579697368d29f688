package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/selectbox/internal/app"
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
	envOptions     = "SELECTBOX_OPTIONS"
	envWidth       = "SELECTBOX_WIDTH"
	envShowFooter  = "SELECTBOX_FOOTER"
	envTrace       = "SELECTBOX_TRACE"
	envLogFile     = "SELECTBOX_LOG_FILE"
	envPlaceholder = "SELECTBOX_PLACEHOLDER"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("selectbox", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	optionsFile := fs.String("options", envOrDefault(env, envOptions, ""), "path to a TOML option file (defaults to five built-in options)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "widget width in cells (0 follows the terminal)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key help footer")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	placeholder := fs.String("placeholder", envOrDefault(env, envPlaceholder, ""), "text shown while nothing is selected")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}

	cfg := Config{
		App: app.Config{
			OptionsFile: strings.TrimSpace(*optionsFile),
			Width:       *width,
			ShowFooter:  *footer,
			Placeholder: *placeholder,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"options":     *optionsFile,
			"width":       strconv.Itoa(*width),
			"footer":      strconv.FormatBool(*footer),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
			"placeholder": *placeholder,
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

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks values that parse cleanly but cannot be used.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if path := cfg.App.OptionsFile; path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("options file: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("options file %s: %w", path, errIsDirectory)
		}
	}
	return nil
}

var errIsDirectory = errors.New("is a directory")
