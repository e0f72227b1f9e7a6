package buzzer

import "testing"

func TestNoteFrequencyTable(t *testing.T) {
	cases := []struct {
		name string
		note Note
		want uint16
	}{
		{"E1 keeps tenths", NoteE(1), 412 | DivBy10},
		{"F#2 keeps tenths", NoteFSharp(2), 926 | DivBy10},
		{"C4", NoteC(4), 262},
		{"A4", NoteA(4), 440},
		{"C6", NoteC(6), 1046},
		{"below table clamps to E1", NoteC(0), 412 | DivBy10},
		{"top of table", Note(16 + 95), 9958},
		{"above table clamps", Note(250), 9958},
	}
	for _, c := range cases {
		if got := c.note.Frequency(); got != c.want {
			t.Fatalf("%s: Frequency()=%#x want %#x", c.name, got, c.want)
		}
	}
}

func TestOctaveDoublesFrequency(t *testing.T) {
	c4 := int(NoteC(4).Frequency())
	c6 := int(NoteC(6).Frequency())
	if d := c6 - 4*c4; d < -4 || d > 4 {
		t.Fatalf("C6=%d not ~4x C4=%d", c6, c4)
	}
}

func TestNormalizeFrequency(t *testing.T) {
	cases := []struct {
		raw, want uint16
	}{
		{412 | DivBy10, 41},
		{30 | DivBy10, 40},
		{10, 40},
		{440, 440},
		{20000, 10000},
	}
	for _, c := range cases {
		if got := NormalizeFrequency(c.raw); got != c.want {
			t.Fatalf("NormalizeFrequency(%#x)=%d want %d", c.raw, got, c.want)
		}
	}
}
