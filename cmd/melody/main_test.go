//go:build !rp2040

package main

import (
	"strings"
	"testing"
	"time"
)

func TestReadStepsLinesThenEOF(t *testing.T) {
	steps := make(chan bool)
	done := make(chan struct{})
	defer close(done)
	go readSteps(strings.NewReader("\nx\n"), steps, done)

	var got []bool
	for v := range steps {
		got = append(got, v)
	}
	if len(got) != 3 || !got[0] || !got[1] || got[2] {
		t.Fatalf("steps=%v, want [true true false]", got)
	}
}

// Playback can finish while stdin is still open; the reader must not be
// left blocked on a send nobody receives.
func TestReadStepsStopsWhenDone(t *testing.T) {
	steps := make(chan bool)
	done := make(chan struct{})
	close(done)

	exited := make(chan struct{})
	go func() {
		readSteps(strings.NewReader("\n\n"), steps, done)
		close(exited)
	}()

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("reader blocked after done")
	}
	if _, ok := <-steps; ok {
		t.Fatal("steps should be closed")
	}
}
