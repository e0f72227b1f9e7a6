// Package miditone sends buzzer tones to a MIDI output as note on/off
// pairs, one sounding key at a time.
package miditone

import (
	"math"
	"sync"

	"buzzer-go/drivers/buzzer"
	"buzzer-go/errcode"
	"buzzer-go/x/mathx"

	"gitlab.com/gomidi/midi/v2"
)

// Sender delivers one message, e.g. the func returned by midi.SendTo.
type Sender func(msg midi.Message) error

type Tone struct {
	mu      sync.Mutex
	send    Sender
	ch      uint8
	key     uint8
	on      bool
	lastErr error
}

var _ buzzer.ToneDriver = (*Tone)(nil)

func New(send Sender, channel uint8) *Tone {
	return &Tone{send: send, ch: channel & 0x0F}
}

// KeyForHz returns the nearest equal-tempered MIDI key (A4 = 69).
func KeyForHz(hz uint16) uint8 {
	if hz == 0 {
		return 0
	}
	k := math.Round(12*math.Log2(float64(hz)/440) + 69)
	return uint8(mathx.Clamp(k, 0, 127))
}

// Velocity maps buzzer volume 0..15 onto 0..127.
func Velocity(volume uint8) uint8 {
	return uint8(uint16(mathx.Min(volume, buzzer.MaxVolume)) * 127 / uint16(buzzer.MaxVolume))
}

func (t *Tone) SetTone(freqHz uint16, volume uint8) {
	vel := Velocity(volume)
	key := KeyForHz(mathx.Clamp(freqHz, buzzer.MinFrequencyHz, buzzer.MaxFrequencyHz))

	t.mu.Lock()
	defer t.mu.Unlock()
	t.releaseLocked()
	if vel == 0 {
		return
	}
	if t.deliverLocked(midi.NoteOn(t.ch, key, vel)) {
		t.key, t.on = key, true
	}
}

func (t *Tone) Stop() {
	t.mu.Lock()
	t.releaseLocked()
	t.mu.Unlock()
}

// Err returns the last send error, if any.
func (t *Tone) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastErr
}

// caller holds lock
func (t *Tone) releaseLocked() {
	if !t.on {
		return
	}
	t.on = false
	t.deliverLocked(midi.NoteOff(t.ch, t.key))
}

// caller holds lock
func (t *Tone) deliverLocked(msg midi.Message) bool {
	if err := t.send(msg); err != nil {
		t.lastErr = errcode.Wrap(errcode.MapDriverErr(err), "midi_send", err)
		return false
	}
	return true
}
