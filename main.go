package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/selectbox/internal/app"
	"github.com/atomicstack/selectbox/internal/config"
	"github.com/atomicstack/selectbox/internal/logging"
	"github.com/atomicstack/selectbox/internal/logging/events"
	"github.com/atomicstack/selectbox/internal/options"
	"github.com/atomicstack/selectbox/internal/selection"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	opts, err := options.Load(runtimeCfg.App.OptionsFile)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	summary := summarizeOptions(runtimeCfg.App.OptionsFile, opts)
	events.App.Options(summary.Source, summary.Count)
	events.App.Start(startupTracePayload(runtimeCfg, summary, probeTerminal(int(os.Stdout.Fd()))))

	if err := app.Run(runtimeCfg.App, opts); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type optionSummary struct {
	Source string   `json:"source"`
	Count  int      `json:"count"`
	Values []string `json:"values"`
}

func summarizeOptions(path string, opts []selection.Option) optionSummary {
	source := path
	if source == "" {
		source = "default"
	}
	values := make([]string, len(opts))
	for i, opt := range opts {
		values[i] = opt.Value.String()
	}
	return optionSummary{Source: source, Count: len(opts), Values: values}
}

// terminalInfo describes the descriptor the widget is drawn on.
type terminalInfo struct {
	Interactive bool   `json:"interactive"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	Error       string `json:"error,omitempty"`
}

func probeTerminal(fd int) terminalInfo {
	if fd < 0 || !term.IsTerminal(fd) {
		return terminalInfo{}
	}
	info := terminalInfo{Interactive: true}
	width, height, err := term.GetSize(fd)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	info.Width, info.Height = width, height
	return info
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config, opts optionSummary, tty terminalInfo) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"options":  opts,
		"terminal": tty,
	}
	// the configured width does not fit the terminal
	if tty.Interactive && tty.Width > 0 && cfg.App.Width > tty.Width {
		payload["widthOverflow"] = cfg.App.Width - tty.Width
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}
