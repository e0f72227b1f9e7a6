// Package buzzer plays melodies written in a compact text notation on a
// single-channel tone output, one note per expiry of a one-shot timer.
//
// The notation (case-insensitive, spaces ignored):
//
//	a-g      note; follow with +/# (sharp) or - (flat), a length 1..64 and dots
//	r        rest, takes a length and dots like a note
//	> <      raise/lower the octave of the next note only
//	o<n>     set the octave
//	l<n>     set the default length (4 = quarter note)
//	t<n>     set the tempo in quarter notes per minute
//	v<n>     set the volume, 0..15
//	ms / ml  staccato / legato
//	!        restore default settings
//
// Any other character ends the melody.
package buzzer

// ToneDriver produces a square wave on one output. Frequencies outside the
// supported band are clamped by the driver, never rejected.
type ToneDriver interface {
	SetTone(freqHz uint16, volume uint8)
	Stop()
}

// DurationTimer calls onExpire once, durationMs after Arm. Re-arming or
// Cancel drops a pending expiry; no callback may run after Cancel returns.
type DurationTimer interface {
	Arm(durationMs uint32, onExpire func())
	Cancel()
}

// PlayMode selects whether Advance moves through a melody on its own.
type PlayMode uint8

const (
	PlayAutomatic PlayMode = iota
	PlayManual
)
