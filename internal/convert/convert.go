package convert

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/Mavwarf/mkicon/internal/config"
	"github.com/Mavwarf/mkicon/internal/paths"
	"github.com/Mavwarf/mkicon/internal/raster"
)

// Converter renders one SVG into a set of square PNG icons.
type Converter struct {
	Config config.Config
	// Log receives one line per written icon. Nil means silent.
	Log io.Writer
}

// New returns a Converter for cfg that writes progress to log.
func New(cfg config.Config, log io.Writer) *Converter {
	return &Converter{Config: cfg, Log: log}
}

// EnsureOutputDir creates the output directory if it is missing.
func (c *Converter) EnsureOutputDir() error {
	if err := paths.EnsureDir(c.Config.OutDir); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

// IconPath returns where the icon for size is written.
func (c *Converter) IconPath(size int) string {
	return filepath.Join(c.Config.OutDir, paths.IconFileName(size))
}

// RenderSize rasterizes the source into a size×size PNG in the output
// directory, replacing any earlier file of the same name.
func (c *Converter) RenderSize(size int) error {
	dst := c.IconPath(size)
	if err := raster.ConvertFile(c.Config.Source, dst, size, size); err != nil {
		return fmt.Errorf("icon %dx%d: %w", size, size, err)
	}
	if c.Log != nil {
		fmt.Fprintf(c.Log, "wrote %s (%dx%d)\n", dst, size, size)
	}
	return nil
}

// Run creates the output directory, then renders every configured size in
// order. The first failure stops the run; icons already written are kept.
func (c *Converter) Run() error {
	if err := c.Config.Validate(); err != nil {
		return err
	}
	if err := c.EnsureOutputDir(); err != nil {
		return err
	}
	for _, size := range c.Config.Sizes {
		if err := c.RenderSize(size); err != nil {
			return err
		}
	}
	return nil
}
