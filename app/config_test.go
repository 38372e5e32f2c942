package app

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFlagsKeepsDefaults(t *testing.T) {
	config := Config{Title: "Test", VSync: true, CPUProfile: "cpu.prof", Verbose: true}
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	config.RegisterFlags(flags)
	require.NoError(t, flags.Parse(nil))

	assert.Equal(t, 800, config.Width)
	assert.Equal(t, 600, config.Height)
	assert.True(t, config.VSync)
	assert.Equal(t, "cpu.prof", config.CPUProfile)
	assert.True(t, config.Verbose)
}

func TestRegisterFlagsOverride(t *testing.T) {
	config := Config{VSync: true}
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	config.RegisterFlags(flags)
	require.NoError(t, flags.Parse([]string{"-vsync=false", "-width", "1024", "-v"}))

	assert.False(t, config.VSync)
	assert.Equal(t, 1024, config.Width)
	assert.True(t, config.Verbose)
}
