//go:build !rp2040

// melody plays or measures a buzzer melody on the host.
//
//	melody [flags] "!T240 L8 MS cdefgab>c"
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"buzzer-go/drivers/buzzer"
	"buzzer-go/drivers/buzzer/miditone"
	"buzzer-go/drivers/buzzer/speaker"
	"buzzer-go/errcode"
	"buzzer-go/x/fmtx"

	"github.com/hako/durafmt"
	"github.com/spf13/pflag"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

const pollInterval = time.Millisecond

func main() {
	var (
		backend     string
		midiPort    string
		channel     uint8
		file        string
		measureOnly bool
		manual      bool
	)
	pflag.StringVarP(&backend, "backend", "b", "speaker", "tone output: speaker, midi or log")
	pflag.StringVar(&midiPort, "midi-port", "", "MIDI output port name (midi backend)")
	pflag.Uint8VarP(&channel, "channel", "c", 0, "MIDI channel 0-15 (midi backend)")
	pflag.StringVarP(&file, "file", "f", "", "read the melody from a file instead of the arguments")
	pflag.BoolVarP(&measureOnly, "measure", "m", false, "print the melody length and exit")
	pflag.BoolVar(&manual, "step", false, "manual mode: press enter for each note")
	pflag.Parse()

	if err := run(backend, midiPort, channel, file, measureOnly, manual); err != nil {
		fmtx.Logf("melody", "%v", err)
		os.Exit(1)
	}
}

func run(backend, midiPort string, channel uint8, file string, measureOnly, manual bool) error {
	text := strings.Join(pflag.Args(), " ")
	var src *os.File
	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		text = string(raw)
		if src, err = os.Open(file); err != nil {
			return err
		}
		defer src.Close()
	}
	if text == "" {
		pflag.Usage()
		return nil
	}

	total, notes := buzzer.Measure(text)
	fmtx.Logf("melody", "%d notes, %s", notes, durafmt.Parse(total).LimitFirstN(2).String())
	if measureOnly {
		return nil
	}

	tone, closeTone, err := openTone(backend, midiPort, channel)
	if err != nil {
		return err
	}
	defer closeTone()

	seq := buzzer.New(tone, buzzer.NewOneShot())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var steps chan bool
	if manual {
		seq.SetPlayMode(buzzer.PlayManual)
		steps = make(chan bool)
		done := make(chan struct{})
		defer close(done)
		go readSteps(os.Stdin, steps, done)
	}
	if src != nil {
		seq.PlayFromStorage(src)
	} else {
		seq.Play(text)
	}

	start := time.Now()
	for seq.Advance() || seq.IsPlaying() {
		select {
		case <-ctx.Done():
			seq.Stop()
			fmtx.Logf("melody", "interrupted")
			return nil
		case more, ok := <-steps:
			switch {
			case !ok:
				steps = nil
			case more:
				seq.Step()
			default:
				seq.SetPlayMode(buzzer.PlayAutomatic)
			}
		case <-time.After(pollInterval):
		}
	}
	fmtx.Logf("melody", "done in %s", durafmt.Parse(time.Since(start)).LimitFirstN(2).String())
	return nil
}

// readSteps sends true for each line read from r, then false and closes at EOF.
// It gives up once done is closed. The sequencer is only touched from the
// main loop.
func readSteps(r io.Reader, steps chan<- bool, done <-chan struct{}) {
	defer close(steps)
	buf := make([]byte, 1)
	for {
		_, err := io.ReadFull(r, buf)
		if err == nil && buf[0] != '\n' {
			continue
		}
		select {
		case steps <- err == nil:
		case <-done:
			return
		}
		if err != nil {
			return
		}
	}
}

func openTone(backend, midiPort string, channel uint8) (buzzer.ToneDriver, func(), error) {
	switch backend {
	case "speaker":
		spk, err := speaker.Open(speaker.DefaultSampleRate)
		if err != nil {
			return nil, nil, err
		}
		return spk, func() { _ = spk.Close() }, nil
	case "midi":
		out, err := midi.FindOutPort(midiPort)
		if err != nil {
			return nil, nil, err
		}
		send, err := midi.SendTo(out)
		if err != nil {
			return nil, nil, err
		}
		t := miditone.New(send, channel)
		return t, func() {
			t.Stop()
			if err := t.Err(); err != nil {
				fmtx.Logf("midi", "%v", err)
			}
			midi.CloseDriver()
		}, nil
	case "log":
		return logTone{}, func() {}, nil
	default:
		return nil, nil, &errcode.E{C: errcode.InvalidParams, Op: "backend", Msg: backend}
	}
}

// logTone prints every tone change instead of sounding it.
type logTone struct{}

func (logTone) SetTone(freqHz uint16, volume uint8) {
	fmtx.Logf("tone", "%d Hz vol %d", freqHz, volume)
}

func (logTone) Stop() { fmtx.Logf("tone", "off") }
