//go:build !tinygo

// Package sim provides in-memory GPIO/PWM/ADC/I2C drivers that satisfy
// core's HAL interfaces without real hardware, for running the firmware's
// supervisory logic on a development machine.
package sim

import (
	"sync"

	"github.com/Coolman4128/EduFirmware/core"
)

// GPIODriver is an in-memory core.GPIODriver backed by a map of pin states.
type GPIODriver struct {
	mu     sync.Mutex
	levels map[core.Pin]bool
}

// NewGPIODriver returns a GPIODriver with every pin initially low.
func NewGPIODriver() *GPIODriver {
	return &GPIODriver{levels: make(map[core.Pin]bool)}
}

func (d *GPIODriver) ConfigureOutput(pin core.Pin) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.levels[pin] = false
	return nil
}

func (d *GPIODriver) ConfigureInput(pin core.Pin, pullup, pulldown bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	// A pulled-up input floats high, a pulled-down input floats low, and a
	// floating input with neither defaults low.
	d.levels[pin] = pullup
	return nil
}

func (d *GPIODriver) Reset(pin core.Pin) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.levels, pin)
}

func (d *GPIODriver) SetPin(pin core.Pin, value bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.levels[pin] = value
	return nil
}

func (d *GPIODriver) GetPin(pin core.Pin) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.levels[pin], nil
}

// Drive sets a pin's level directly, bypassing the digital-output mode
// check — for simulating an external signal into a digital input.
func (d *GPIODriver) Drive(pin core.Pin, value bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.levels[pin] = value
}
