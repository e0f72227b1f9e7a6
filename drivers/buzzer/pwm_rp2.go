//go:build rp2040

package buzzer

import (
	"machine"

	"buzzer-go/errcode"
)

// pwmCtrl is the subset of a machine.PWMx slice the buzzer needs. The
// slice types are unexported, so they are held through this interface.
type pwmCtrl interface {
	Configure(cfg machine.PWMConfig) error
	SetPeriod(period uint64) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// rp2Slices is indexed by the number machine.PWMPeripheral reports.
var rp2Slices = [...]pwmCtrl{
	machine.PWM0, machine.PWM1, machine.PWM2, machine.PWM3,
	machine.PWM4, machine.PWM5, machine.PWM6, machine.PWM7,
}

// rp2PWM is a PWM channel bound to one pin. The slice is owned
// exclusively by the buzzer: retuning changes both channels.
type rp2PWM struct {
	pin        machine.Pin
	ctrl       pwmCtrl
	ch         uint8
	configured bool
}

// NewRP2PWM resolves the PWM slice for pin.
func NewRP2PWM(pin machine.Pin) (PWM, error) {
	slice, err := machine.PWMPeripheral(pin)
	if err != nil || int(slice) >= len(rp2Slices) {
		return nil, errcode.Unsupported
	}
	return &rp2PWM{pin: pin, ctrl: rp2Slices[slice]}, nil
}

func (p *rp2PWM) Configure(periodNs uint64) error {
	if p.configured {
		return p.ctrl.SetPeriod(periodNs)
	}
	if err := p.ctrl.Configure(machine.PWMConfig{Period: periodNs}); err != nil {
		return err
	}
	ch, err := p.ctrl.Channel(p.pin)
	if err != nil {
		return err
	}
	p.ch, p.configured = ch, true
	return nil
}

func (p *rp2PWM) Top() uint32 { return p.ctrl.Top() }

func (p *rp2PWM) Set(value uint32) {
	if !p.configured {
		return
	}
	p.ctrl.Set(p.ch, value)
}
