//go:build rp2040

package main

import (
	"machine"
	"strconv"
	"time"

	"buzzer-go/drivers/buzzer"
	"buzzer-go/services/config"
)

var tunes = []string{
	"O4 T100 L8 ML c d e f g4 g4 a a a a g2",
	"T180 L16 MS O5 e e r e r c e r g4 r <g4",
	"L4 O4 V8 c e g >c <g e c2",
}

const pause = 1500 * time.Millisecond

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(1500 * time.Millisecond)
	println("[buzzer] boot …")

	cfg, err := config.Load(config.BuildDevice)
	if err != nil {
		println("[buzzer] config:", err.Error())
		return
	}
	pwm, err := buzzer.NewRP2PWM(machine.Pin(cfg.Buzzer.Pin))
	if err != nil {
		println("[buzzer] pwm:", err.Error())
		return
	}
	tone := buzzer.NewPWMTone(pwm)
	seq := buzzer.New(tone, buzzer.NewOneShot())

	// Reset and set the board volume ahead of each melody.
	prefix := "! V" + strconv.Itoa(int(cfg.Buzzer.Volume)) + " "

	println("[buzzer]", cfg.Device, "pin", cfg.Buzzer.Pin)
	seq.Play(prefix + cfg.Buzzer.BootMelody)

	next := 0
	var idleSince time.Time
	for {
		if seq.Advance() || seq.IsPlaying() {
			idleSince = time.Time{}
		} else if idleSince.IsZero() {
			idleSince = time.Now()
			if err := tone.Err(); err != nil {
				println("[buzzer] tone:", err.Error())
			}
		} else if time.Since(idleSince) >= pause {
			total, notes := seq.Measure(tunes[next])
			println("[buzzer] tune", next, "notes", notes, "ms", total.Milliseconds())
			seq.Play(prefix + tunes[next])
			next = (next + 1) % len(tunes)
		}
		time.Sleep(time.Millisecond)
	}
}
