//go:build pico_bb_proto_1

package config

const BuildDevice = "pico_bb_proto_1"
