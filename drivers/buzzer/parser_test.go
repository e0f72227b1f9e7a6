package buzzer

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func parseAll(melody string) ([]Event, Settings) {
	st := DefaultSettings
	s := newSession(stringSource(melody))
	var out []Event
	for {
		ev, ok := s.next(&st)
		if !ok {
			return out, st
		}
		out = append(out, ev)
	}
}

func note(n Note, ms uint32) Event { return Event{Note: n, DurationMs: ms, Volume: 15} }
func rest(ms uint32, vol uint8) Event {
	return Event{Note: SilentNote, Rest: true, DurationMs: ms, Volume: vol}
}

func TestParserEvents(t *testing.T) {
	cases := []struct {
		melody string
		want   []Event
	}{
		{"c", []Event{note(NoteC(4), 500)}},
		{"C", []Event{note(NoteC(4), 500)}},
		{"l8 c", []Event{note(NoteC(4), 250)}},
		{"c4.", []Event{note(NoteC(4), 750)}},
		{"c4..", []Event{note(NoteC(4), 875)}},
		{"c16", []Event{note(NoteC(4), 125)}},
		{"o6 c", []Event{note(NoteC(6), 500)}},
		{">c c", []Event{note(NoteC(5), 500), note(NoteC(4), 500)}},
		{"c# c+ d- c++", []Event{
			note(NoteCSharp(4), 500), note(NoteCSharp(4), 500),
			note(NoteCSharp(4), 500), note(NoteD(4), 500),
		}},
		{"t240 c", []Event{note(NoteC(4), 250)}},
		{"v20 c", []Event{note(NoteC(4), 500)}},
		{"r8", []Event{rest(250, 15)}},
		{"v0 r", []Event{rest(500, 0)}},
		{"ms c d", []Event{
			note(NoteC(4), 250), rest(250, 0),
			note(NoteD(4), 250), rest(250, 0),
		}},
		// The rest owed by c is played before ml is even read.
		{"ms c ml d", []Event{note(NoteC(4), 250), rest(250, 0), note(NoteD(4), 500)}},
		{"o6 l8 v3 ! c", []Event{note(NoteC(4), 500)}},
		{"l0 c", []Event{note(NoteC(4), 500)}},
		{"c x d", []Event{note(NoteC(4), 500)}},
		// 9 cannot open a length, so it ends the melody.
		{"c9 d", []Event{note(NoteC(4), 500)}},
		{"", nil},
		// 2^32 wraps to a zero divisor; the default length is kept.
		{"c4294967296 d", []Event{note(NoteC(4), 500), note(NoteD(4), 500)}},
		{"r8589934592", []Event{rest(500, 15)}},
	}
	for _, c := range cases {
		got, _ := parseAll(c.melody)
		if !reflect.DeepEqual(got, c.want) {
			t.Fatalf("%q:\n got %s\nwant %s", c.melody, spew.Sdump(got), spew.Sdump(c.want))
		}
	}
}

func TestParserVolumeClampedAtDispatchOnly(t *testing.T) {
	evs, st := parseAll("v20 c")
	if st.Volume != 20 {
		t.Fatalf("stored volume=%d, want 20 (unclamped)", st.Volume)
	}
	if evs[0].Volume != 15 {
		t.Fatalf("event volume=%d, want 15", evs[0].Volume)
	}
}

func TestParserSettingsCarry(t *testing.T) {
	_, st := parseAll("o5 l8 t60 ms c")
	want := Settings{Octave: 5, WholeNoteMs: 4000, NoteType: 8, DurationMs: 500, Volume: 15, Staccato: true}
	if st != want {
		t.Fatalf("settings %+v want %+v", st, want)
	}
}

// The octave is an 8-bit unsigned value. Unbalanced '<' wraps it rather
// than clamping; the resulting note is then clamped by Frequency.
func TestParserOctaveWraps(t *testing.T) {
	evs, _ := parseAll("<<<<<c")
	if len(evs) != 1 {
		t.Fatalf("want 1 event, got %d", len(evs))
	}
	// octave 4-5 = 255; 255*12 mod 256 = 244.
	if evs[0].Note != Note(244) {
		t.Fatalf("wrapped note=%d want 244", evs[0].Note)
	}
	if evs[0].Note.Frequency() != Note(250).Frequency() {
		t.Fatal("wrapped note should clamp to the top of the table")
	}

	_, st := parseAll("o0 <c")
	if st.Octave != 0 {
		t.Fatalf("'<' must not change the stored octave, got %d", st.Octave)
	}
}

func TestParserTrailingStaccatoMarker(t *testing.T) {
	evs, st := parseAll("c m")
	if len(evs) != 1 || !st.Staccato {
		t.Fatalf("events=%v staccato=%v", evs, st.Staccato)
	}
}
