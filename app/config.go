package app

import "flag"

// Config describes the demo window.
type Config struct {
	Title  string
	Width  int
	Height int

	Resizable  bool
	VSync      bool
	CPUProfile string
	Verbose    bool
}

// RegisterFlags binds the window flags to config.
// Values already in config are used as defaults.
func (config *Config) RegisterFlags(flags *flag.FlagSet) {
	if config.Width == 0 {
		config.Width = 800
	}
	if config.Height == 0 {
		config.Height = 600
	}
	flags.IntVar(&config.Width, "width", config.Width, "window width")
	flags.IntVar(&config.Height, "height", config.Height, "window height")
	flags.BoolVar(&config.VSync, "vsync", config.VSync, "wait for vertical sync")
	flags.StringVar(&config.CPUProfile, "cpuprofile", config.CPUProfile, "write cpu profile to file")
	flags.BoolVar(&config.Verbose, "v", config.Verbose, "log shader diagnostics")
}
