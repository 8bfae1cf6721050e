//go:build tinygo

// Package tinygo provides the on-device HAL implementations: real
// GPIO/PWM/ADC/I2C drivers wired against TinyGo's machine package and
// tinygo.org/x/drivers, installed into core's global singletons at boot.
package tinygo

import (
	"machine"

	"github.com/Coolman4128/EduFirmware/core"
)

// GPIODriver implements core.GPIODriver directly against machine.Pin.
type GPIODriver struct{}

// NewGPIODriver returns a GPIODriver. It claims no pins up front; every pin
// is configured lazily by ConfigureOutput/ConfigureInput.
func NewGPIODriver() *GPIODriver { return &GPIODriver{} }

func (d *GPIODriver) ConfigureOutput(pin core.Pin) error {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinOutput})
	return nil
}

func (d *GPIODriver) ConfigureInput(pin core.Pin, pullup, pulldown bool) error {
	mode := machine.PinInputFloating
	switch {
	case pullup:
		mode = machine.PinInputPullup
	case pulldown:
		mode = machine.PinInputPulldown
	}
	machine.Pin(pin).Configure(machine.PinConfig{Mode: mode})
	return nil
}

// Reset returns pin to a floating input, undoing whatever mode it held.
func (d *GPIODriver) Reset(pin core.Pin) {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinInputFloating})
}

func (d *GPIODriver) SetPin(pin core.Pin, value bool) error {
	machine.Pin(pin).Set(value)
	return nil
}

func (d *GPIODriver) GetPin(pin core.Pin) (bool, error) {
	return machine.Pin(pin).Get(), nil
}
