package main

import (
	"os"
	"testing"

	"github.com/atomicstack/selectbox/internal/app"
	"github.com/atomicstack/selectbox/internal/config"
	"github.com/atomicstack/selectbox/internal/options"
	"github.com/atomicstack/selectbox/internal/selection"
)

func TestSummarizeOptionsDefaultSource(t *testing.T) {
	summary := summarizeOptions("", options.Default())
	if summary.Source != "default" {
		t.Fatalf("expected default source, got %q", summary.Source)
	}
	if summary.Count != 5 {
		t.Fatalf("expected 5 options, got %d", summary.Count)
	}
	want := []string{"1", "2", "3", "4", "5"}
	for i, v := range want {
		if summary.Values[i] != v {
			t.Fatalf("expected value %d to be %q, got %q", i, v, summary.Values[i])
		}
	}
}

func TestSummarizeOptionsFileSource(t *testing.T) {
	opts := []selection.Option{
		{Label: "half", Value: selection.Number(0.5)},
		{Label: "text", Value: selection.Text("x")},
	}
	summary := summarizeOptions("opts.toml", opts)
	if summary.Source != "opts.toml" || summary.Count != 2 {
		t.Fatalf("unexpected summary %#v", summary)
	}
	if summary.Values[0] != "0.5" || summary.Values[1] != "x" {
		t.Fatalf("unexpected values %v", summary.Values)
	}
}

func TestProbeTerminalOnPipeIsNotInteractive(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	info := probeTerminal(int(w.Fd()))
	if info.Interactive || info.Width != 0 || info.Height != 0 {
		t.Fatalf("expected non-interactive probe, got %#v", info)
	}
	if got := probeTerminal(-1); got.Interactive {
		t.Fatalf("expected invalid descriptor to be non-interactive")
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			OptionsFile: "opts.toml",
			Width:       40,
			ShowFooter:  true,
			Placeholder: "pick",
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"options":     "opts.toml",
			"width":       "40",
			"footer":      "true",
			"placeholder": "pick",
		},
		Args: []string{"--options", "opts.toml"},
	}
	summary := optionSummary{Source: "opts.toml", Count: 2, Values: []string{"1", "2"}}

	payload := startupTracePayload(cfg, summary, terminalInfo{})

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["options"] != "opts.toml" {
		t.Fatalf("expected options flag %q, got %v", "opts.toml", flagsValue["options"])
	}
	if flagsValue["width"] != "40" {
		t.Fatalf("expected width 40, got %v", flagsValue["width"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	optsValue, ok := payload["options"].(optionSummary)
	if !ok {
		t.Fatalf("expected option summary in payload")
	}
	if optsValue.Source != "opts.toml" || optsValue.Count != 2 {
		t.Fatalf("unexpected option summary %#v", optsValue)
	}
	if _, ok := payload["terminal"].(terminalInfo); !ok {
		t.Fatalf("expected terminal info in payload")
	}
	if _, ok := payload["widthOverflow"]; ok {
		t.Fatalf("did not expect width overflow without a terminal")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestStartupTracePayloadFlagsWidthOverflow(t *testing.T) {
	cfg := config.Config{App: app.Config{Width: 100}}
	tty := terminalInfo{Interactive: true, Width: 80, Height: 24}

	payload := startupTracePayload(cfg, summarizeOptions("", options.Default()), tty)

	if payload["widthOverflow"] != 20 {
		t.Fatalf("expected width overflow of 20, got %v", payload["widthOverflow"])
	}
}
