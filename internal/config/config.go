package config

import (
	"fmt"

	"github.com/Mavwarf/mkicon/internal/paths"
)

// DefaultSizes returns the icon sizes rendered on every run, in order.
// Each value is used as both width and height.
func DefaultSizes() []int {
	return []int{16, 48, 128}
}

// Config describes one conversion: where the SVG lives, where the PNGs go
// and which square sizes to produce.
type Config struct {
	Source string
	OutDir string
	Sizes  []int
}

// Default returns the fixed configuration: icons/icon.svg rendered into
// icons/ at DefaultSizes.
func Default() Config {
	return Config{
		Source: paths.SourcePath(),
		OutDir: paths.OutputDir,
		Sizes:  DefaultSizes(),
	}
}

// Validate checks that there is at least one size and every size is positive.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("no icon sizes configured")
	}
	for _, s := range c.Sizes {
		if s <= 0 {
			return fmt.Errorf("invalid icon size %d (must be positive)", s)
		}
	}
	return nil
}
