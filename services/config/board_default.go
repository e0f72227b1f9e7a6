//go:build !pico_rich_dev && !pico_bb_proto_1

package config

// BuildDevice is empty without a board tag; Load then uses DefaultDevice.
const BuildDevice = ""
