//go:build !rp2040

// Package speaker plays the buzzer's square wave through the host's audio
// output, so melodies can be auditioned without a board.
package speaker

import (
	"sync"
	"time"

	"buzzer-go/drivers/buzzer"

	"github.com/ebitengine/oto/v3"
)

const DefaultSampleRate = 44100

// Speaker is a buzzer.ToneDriver backed by an oto player.
type Speaker struct {
	*buzzer.SquareWave

	mu     sync.Mutex
	ctx    *oto.Context
	player *oto.Player
}

// Open starts the audio device and a player that stays running, silent
// between notes. sampleRate <= 0 selects DefaultSampleRate.
func Open(sampleRate int) (*Speaker, error) {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   20 * time.Millisecond,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	s := &Speaker{
		SquareWave: buzzer.NewSquareWave(sampleRate),
		ctx:        ctx,
	}
	s.player = ctx.NewPlayer(s.SquareWave)
	s.player.Play()
	return s, nil
}

// Close silences the output and releases the player.
func (s *Speaker) Close() error {
	s.Stop()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player == nil {
		return nil
	}
	err := s.player.Close()
	s.player = nil
	return err
}
