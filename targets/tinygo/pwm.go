//go:build tinygo

package tinygo

import (
	"errors"
	"sync"

	"machine"

	"github.com/Coolman4128/EduFirmware/core"
)

// pwmDutyMax is the LEDC duty resolution this board runs: 10-bit (0-1023)
// at a fixed 5 kHz frequency.
const pwmDutyMax = 1023

// pwmPeripheral narrows machine's PWM group down to the calls this driver
// needs.
type pwmPeripheral interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// PWMDriver implements core.PWMDriver, mapping each pin to one LEDC-style
// hardware channel at a fixed 5 kHz / 10-bit configuration.
type PWMDriver struct {
	mu       sync.Mutex
	group    pwmPeripheral
	channels map[core.Pin]uint8
}

// NewPWMDriver wraps a board's PWM peripheral group (e.g. machine.PWM0).
func NewPWMDriver(group pwmPeripheral) *PWMDriver {
	return &PWMDriver{group: group, channels: make(map[core.Pin]uint8)}
}

func (d *PWMDriver) ConfigurePWM(pin core.Pin) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.channels[pin]; ok {
		return nil
	}

	if err := d.group.Configure(machine.PWMConfig{Period: 200000}); err != nil { // 5kHz
		return err
	}
	ch, err := d.group.Channel(machine.Pin(pin))
	if err != nil {
		return err
	}
	d.channels[pin] = ch
	return nil
}

func (d *PWMDriver) SetDuty(pin core.Pin, duty uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	ch, ok := d.channels[pin]
	if !ok {
		return errors.New("tinygo: PWM pin not configured")
	}
	if duty > pwmDutyMax {
		duty = pwmDutyMax
	}
	top := d.group.Top()
	d.group.Set(ch, top*duty/pwmDutyMax)
	return nil
}

func (d *PWMDriver) DutyMax() uint32 { return pwmDutyMax }

func (d *PWMDriver) Stop(pin core.Pin) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	ch, ok := d.channels[pin]
	if !ok {
		return nil
	}
	d.group.Set(ch, 0)
	delete(d.channels, pin)
	return nil
}
