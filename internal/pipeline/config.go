package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"rastervector/internal/morph"
)

// SVGConfig styles the segment overlay output.
type SVGConfig struct {
	Stroke      string `toml:"stroke"`
	StrokeWidth int    `toml:"stroke_width"`
}

// Config describes one vectorization run. A zero Threshold selects the
// automatic Otsu cut.
type Config struct {
	Threshold  uint8     `toml:"threshold"`
	Invert     bool      `toml:"invert"`
	MaxPasses  int       `toml:"max_passes"`
	Operations []string  `toml:"operations"`
	SVG        SVGConfig `toml:"svg"`
}

// DefaultConfig is the thin-then-clean chain the map digitizer uses.
// Pruning gets a single pass: run to its fixed point it would keep
// eating line ends, one pixel per pass.
func DefaultConfig() Config {
	return Config{
		Operations: []string{"rosenfeld", "pruning:1"},
		SVG: SVGConfig{
			Stroke:      "black",
			StrokeWidth: 2,
		},
	}
}

// LoadConfig reads a TOML run description, applying defaults for
// anything left unset.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects unknown operation names and nonsense budgets.
func (c *Config) Validate() error {
	if c.MaxPasses < 0 {
		return fmt.Errorf("max_passes must not be negative, got %d", c.MaxPasses)
	}
	for _, spec := range c.Operations {
		if _, _, err := parseOp(spec, c.MaxPasses); err != nil {
			return err
		}
	}
	return nil
}

// parseOp resolves an operation spec of the form "name" or "name:passes".
// An explicit pass count overrides the run-wide budget.
func parseOp(spec string, budget int) (morph.Op, int, error) {
	name := spec
	passes := budget
	if i := strings.IndexByte(spec, ':'); i >= 0 {
		name = spec[:i]
		n, err := strconv.Atoi(spec[i+1:])
		if err != nil || n < 1 {
			return nil, 0, fmt.Errorf("operation %q: pass count must be a positive integer", spec)
		}
		passes = n
	}
	op, err := morph.Lookup(name)
	if err != nil {
		return nil, 0, err
	}
	return op, passes, nil
}
