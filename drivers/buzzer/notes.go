package buzzer

import "buzzer-go/x/mathx"

// Note is a semitone index: 12*octave + pitch class, C = 0.
// E1 (16) is the lowest pitch the table can produce.
type Note uint8

// Pitch classes within octave 0.
const (
	pitchC      Note = 0
	pitchCSharp Note = 1
	pitchD      Note = 2
	pitchDSharp Note = 3
	pitchE      Note = 4
	pitchF      Note = 5
	pitchFSharp Note = 6
	pitchG      Note = 7
	pitchGSharp Note = 8
	pitchA      Note = 9
	pitchASharp Note = 10
	pitchB      Note = 11
)

func NoteC(octave uint8) Note      { return pitchC + Note(octave)*12 }
func NoteCSharp(octave uint8) Note { return pitchCSharp + Note(octave)*12 }
func NoteD(octave uint8) Note      { return pitchD + Note(octave)*12 }
func NoteDSharp(octave uint8) Note { return pitchDSharp + Note(octave)*12 }
func NoteE(octave uint8) Note      { return pitchE + Note(octave)*12 }
func NoteF(octave uint8) Note      { return pitchF + Note(octave)*12 }
func NoteFSharp(octave uint8) Note { return pitchFSharp + Note(octave)*12 }
func NoteG(octave uint8) Note      { return pitchG + Note(octave)*12 }
func NoteGSharp(octave uint8) Note { return pitchGSharp + Note(octave)*12 }
func NoteA(octave uint8) Note      { return pitchA + Note(octave)*12 }
func NoteASharp(octave uint8) Note { return pitchASharp + Note(octave)*12 }
func NoteB(octave uint8) Note      { return pitchB + Note(octave)*12 }

const (
	// SilentNote plays as a timed rest regardless of volume.
	SilentNote Note = 0xFF

	// DivBy10 flags a raw frequency expressed in tenths of Hz.
	DivBy10 uint16 = 1 << 15

	MinFrequencyHz uint16 = 40
	MaxFrequencyHz uint16 = 10000

	MaxVolume uint8 = 15

	lowestNote  Note  = 16 // E1
	highestStep uint8 = 95
)

// baseTenths holds E1..D#2 in tenths of Hz.
var baseTenths = [12]uint16{
	412, // E1
	437, // F1
	463, // F#1
	490, // G1
	519, // G#1
	550, // A1
	583, // A#1
	617, // B1
	654, // C2
	693, // C#2
	734, // D2
	778, // D#2
}

// Frequency returns the raw frequency for n. Notes below ~160 Hz carry
// the DivBy10 flag and tenth-of-Hz precision; higher notes are whole Hz.
// Out-of-range notes clamp to E1 / the top of the table.
func (n Note) Frequency() uint16 {
	var step uint8
	if n > lowestNote {
		step = mathx.Min(uint8(n-lowestNote), highestStep)
	}
	exp := step / 12
	f := baseTenths[step-exp*12]
	switch {
	case exp < 2:
		return f<<exp | DivBy10
	case exp < 7:
		return mathx.RoundDiv(f<<exp, 10)
	default:
		// f * 2^7 / 10 without overflowing 16 bits.
		return (f*64 + 2) / 5
	}
}

// NormalizeFrequency decodes a raw frequency (Hz, or tenths of Hz when
// DivBy10 is set) into whole Hz clamped to the tone band.
func NormalizeFrequency(raw uint16) uint16 {
	if raw&DivBy10 != 0 {
		f := mathx.Max(raw&^DivBy10, MinFrequencyHz*10)
		return mathx.Clamp(mathx.RoundDiv(f, 10), MinFrequencyHz, MaxFrequencyHz)
	}
	return mathx.Clamp(raw, MinFrequencyHz, MaxFrequencyHz)
}
