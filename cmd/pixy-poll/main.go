//go:build rp2040

package main

import (
	"context"
	"machine"
	"time"

	"buzzer-go/drivers/buzzer"
	"buzzer-go/drivers/pixy2"
	"buzzer-go/errcode"
	"buzzer-go/services/config"
	"buzzer-go/x/fmtx"
)

const (
	pollPeriod     = 50 * time.Millisecond
	requestTimeout = 40 * time.Millisecond
	chirpMs        = 60
)

func main() {
	time.Sleep(1500 * time.Millisecond)
	println("[pixy] boot …")

	cfg, err := config.Load(config.BuildDevice)
	if err != nil {
		println("[pixy] config:", err.Error())
		return
	}
	link, err := openLink(cfg.Pixy)
	if err != nil {
		println("[pixy] link:", err.Error())
		return
	}
	cli := pixy2.NewClient(link)

	seq := newBuzzer(cfg.Buzzer)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	v, err := cli.GetVersion(ctx)
	cancel()
	if err != nil {
		println("[pixy] version:", err.Error())
	} else {
		fmtx.Logf("pixy", "hw %x fw %d.%d.%d %s", v.Hardware, v.FirmwareMajor, v.FirmwareMinor, v.FirmwareBuild, v.FirmwareType)
	}

	var seen uint8 // signature bitmap of the previous frame
	tick := time.NewTicker(pollPeriod)
	defer tick.Stop()
	for range tick.C {
		if seq != nil {
			seq.Advance()
		}

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		blocks, err := cli.GetBlocks(ctx, pixy2.SigAll, 4)
		cancel()
		switch errcode.Of(err) {
		case errcode.OK:
		case errcode.Busy:
			continue // no new frame yet
		default:
			println("[pixy] blocks:", err.Error())
			continue
		}

		var now uint8
		for _, b := range blocks {
			if b.Signature >= 1 && b.Signature <= 7 {
				now |= 1 << b.Signature
			}
		}
		if fresh := now &^ seen; fresh != 0 {
			for _, b := range blocks {
				if fresh&(1<<b.Signature) == 0 {
					continue
				}
				fmtx.Logf("pixy", "sig %d at %d,%d size %dx%d", b.Signature, b.X, b.Y, b.Width, b.Height)
				if seq != nil {
					seq.PlayNote(buzzer.NoteC(5)+buzzer.Note(2*b.Signature), chirpMs, cfg.Buzzer.Volume)
				}
				fresh &^= 1 << b.Signature
			}
		}
		seen = now
	}
}

func openLink(c config.Pixy) (pixy2.Link, error) {
	if c.Link == config.LinkUART {
		return pixy2.OpenRP2UART(c.UART, c.TX, c.RX, c.Baud)
	}
	if err := machine.SPI0.Configure(machine.SPIConfig{
		Frequency: c.SPIHz,
		Mode:      machine.Mode3,
	}); err != nil {
		return nil, errcode.Wrap(errcode.MapDriverErr(err), "spi_open", err)
	}
	return pixy2.NewSPILink(machine.SPI0), nil
}

// newBuzzer returns nil when the board has no usable buzzer pin.
func newBuzzer(c config.Buzzer) *buzzer.Sequencer {
	pwm, err := buzzer.NewRP2PWM(machine.Pin(c.Pin))
	if err != nil {
		println("[pixy] buzzer disabled:", err.Error())
		return nil
	}
	return buzzer.New(buzzer.NewPWMTone(pwm), buzzer.NewOneShot())
}
