package app

import (
	"flag"

	"mandelview/pkg/fractal"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Width         int
	Height        int
	MaxIterations int
	Region        string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:         800,
		Height:        600,
		MaxIterations: fractal.DefaultMaxIterations,
		Region:        "home",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "initial window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height in pixels")
	fs.IntVar(&c.MaxIterations, "iterations", c.MaxIterations, "escape-time iteration cap")
	fs.StringVar(&c.Region, "region", c.Region, "starting landmark (see pkg/fractal Regions)")
}
