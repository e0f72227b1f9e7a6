// Package config resolves the per-board settings compiled into the firmware.
package config

import (
	"bytes"
	"encoding/json"

	"buzzer-go/errcode"
	"buzzer-go/x/strx"
)

const (
	LinkSPI  = "spi"
	LinkUART = "uart"

	DefaultDevice     = "pico_rich_dev"
	DefaultBootMelody = "T240 L8 MS O5 cegc>c"
	DefaultSPIHz      = 2_000_000

	maxPin = 29 // RP2040 GPIO0..GPIO29
)

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(device string) ([]byte, bool) {
	b, ok := embeddedConfigs[device]
	return b, ok
}

type Buzzer struct {
	Pin        int    `json:"pin"`
	Volume     uint8  `json:"volume"`
	BootMelody string `json:"boot_melody"`
}

type Pixy struct {
	Link  string `json:"link"`
	UART  string `json:"uart"`
	Baud  uint32 `json:"baud"`
	TX    int    `json:"tx"`
	RX    int    `json:"rx"`
	SPIHz uint32 `json:"spi_hz"`
}

type Board struct {
	Device string `json:"device"`
	Buzzer Buzzer `json:"buzzer"`
	Pixy   Pixy   `json:"pixy"`
}

// Defaults is the board used when a field is absent from the JSON. Device
// is left empty; Load fills it from the lookup key.
func Defaults() Board {
	return Board{
		Buzzer: Buzzer{Pin: 16, Volume: 15, BootMelody: DefaultBootMelody},
		Pixy:   Pixy{Link: LinkSPI, UART: "uart0", Baud: 115200, TX: 0, RX: 1, SPIHz: DefaultSPIHz},
	}
}

// Load resolves the embedded config for device ("" selects DefaultDevice).
func Load(device string) (Board, error) {
	device = strx.Coalesce(device, DefaultDevice)
	raw, ok := EmbeddedConfigLookup(device)
	if !ok || len(raw) == 0 {
		return Board{}, &errcode.E{C: errcode.InvalidParams, Op: "config", Msg: "no embedded config for device: " + device}
	}
	b, err := Decode(raw)
	if err != nil {
		return Board{}, err
	}
	b.Device = strx.Coalesce(b.Device, device)
	return b, nil
}

// Decode overlays raw JSON on Defaults and validates the result.
func Decode(raw []byte) (Board, error) {
	b := Defaults()
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&b); err != nil {
		return Board{}, &errcode.E{C: errcode.InvalidParams, Op: "config", Msg: "decode", Err: err}
	}
	d := Defaults()
	b.Buzzer.BootMelody = strx.Coalesce(b.Buzzer.BootMelody, d.Buzzer.BootMelody)
	b.Pixy.Link = strx.Coalesce(b.Pixy.Link, d.Pixy.Link)
	b.Pixy.UART = strx.Coalesce(b.Pixy.UART, d.Pixy.UART)
	if b.Pixy.Baud == 0 {
		b.Pixy.Baud = d.Pixy.Baud
	}
	if b.Pixy.SPIHz == 0 {
		b.Pixy.SPIHz = d.Pixy.SPIHz
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

func (b Board) Validate() error {
	bad := func(msg string) error {
		return &errcode.E{C: errcode.InvalidParams, Op: "config", Msg: msg}
	}
	switch {
	case !validPin(b.Buzzer.Pin):
		return bad("buzzer.pin out of range")
	case b.Buzzer.Volume > 15:
		return bad("buzzer.volume above 15")
	}
	switch b.Pixy.Link {
	case LinkSPI:
	case LinkUART:
		if b.Pixy.UART != "uart0" && b.Pixy.UART != "uart1" {
			return bad("pixy.uart must be uart0 or uart1")
		}
		if !validPin(b.Pixy.TX) || !validPin(b.Pixy.RX) || b.Pixy.TX == b.Pixy.RX {
			return bad("pixy tx/rx pins invalid")
		}
	default:
		return bad("pixy.link must be spi or uart")
	}
	return nil
}

func validPin(p int) bool { return p >= 0 && p <= maxPin }
