//go:build !tinygo

package sim

import (
	"sync"

	"github.com/Coolman4128/EduFirmware/core"
)

const dutyMax = 1023

// PWMDriver is an in-memory core.PWMDriver recording duty cycles per pin.
type PWMDriver struct {
	mu   sync.Mutex
	duty map[core.Pin]uint32
}

// NewPWMDriver returns an empty PWMDriver.
func NewPWMDriver() *PWMDriver { return &PWMDriver{duty: make(map[core.Pin]uint32)} }

func (d *PWMDriver) ConfigurePWM(pin core.Pin) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.duty[pin] = 0
	return nil
}

func (d *PWMDriver) SetDuty(pin core.Pin, duty uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if duty > dutyMax {
		duty = dutyMax
	}
	d.duty[pin] = duty
	return nil
}

func (d *PWMDriver) DutyMax() uint32 { return dutyMax }

func (d *PWMDriver) Stop(pin core.Pin) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.duty, pin)
	return nil
}

// Duty returns the last duty cycle set for pin, for use in tests and
// simulation front ends.
func (d *PWMDriver) Duty(pin core.Pin) uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.duty[pin]
}
