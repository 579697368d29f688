// Package options supplies the option list the demo host offers: the built-in
// defaults or entries decoded from a TOML file.
package options

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/atomicstack/selectbox/internal/selection"
	"github.com/pelletier/go-toml/v2"
)

var (
	ErrDuplicateValue = errors.New("duplicate option value")
	ErrEmptyLabel     = errors.New("option label is empty")
	ErrValueType      = errors.New("option value must be a number or a string")
)

type fileEntry struct {
	Label string `toml:"label"`
	Value any    `toml:"value"`
}

type file struct {
	Options []fileEntry `toml:"options"`
}

// Default returns first..fifth with values 1..5.
func Default() []selection.Option {
	labels := []string{"first", "second", "third", "fourth", "fifth"}
	out := make([]selection.Option, len(labels))
	for i, label := range labels {
		out[i] = selection.Option{Label: label, Value: selection.Number(float64(i + 1))}
	}
	return out
}

// Load reads an option file. An empty path yields the defaults.
func Load(path string) ([]selection.Option, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read options %s: %w", path, err)
	}
	opts, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("options %s: %w", path, err)
	}
	return opts, nil
}

// Parse decodes [[options]] tables. Integer and finite float values become
// numeric option values and strings become text values; anything else,
// including nan and inf, is rejected.
func Parse(data []byte) ([]selection.Option, error) {
	var f file
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	out := make([]selection.Option, 0, len(f.Options))
	seen := make(map[selection.Value]string, len(f.Options))
	for i, entry := range f.Options {
		if strings.TrimSpace(entry.Label) == "" {
			return nil, fmt.Errorf("entry %d: %w", i+1, ErrEmptyLabel)
		}
		value, err := toValue(entry.Value)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i+1, entry.Label, err)
		}
		if prev, dup := seen[value]; dup {
			return nil, fmt.Errorf("entry %d (%s) repeats value %s of %q: %w", i+1, entry.Label, value, prev, ErrDuplicateValue)
		}
		seen[value] = entry.Label
		out = append(out, selection.Option{Label: entry.Label, Value: value})
	}
	return out, nil
}

func toValue(raw any) (selection.Value, error) {
	switch v := raw.(type) {
	case int64:
		return selection.Number(float64(v)), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return selection.Value{}, fmt.Errorf("%v is not a finite number: %w", v, ErrValueType)
		}
		return selection.Number(v), nil
	case string:
		return selection.Text(v), nil
	case nil:
		return selection.Value{}, fmt.Errorf("missing value: %w", ErrValueType)
	default:
		return selection.Value{}, fmt.Errorf("%T: %w", raw, ErrValueType)
	}
}
