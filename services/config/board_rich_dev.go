//go:build pico_rich_dev

package config

// BuildDevice is the board selected by build tags.
const BuildDevice = "pico_rich_dev"
