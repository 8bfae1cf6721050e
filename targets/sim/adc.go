//go:build !tinygo

package sim

import (
	"sync"

	"github.com/Coolman4128/EduFirmware/core"
)

// ADCDriver is an in-memory core.ADCDriver returning an adjustable value
// per channel, and reporting the one calibration scheme given to
// NewADCDriver for every channel.
type ADCDriver struct {
	mu      sync.Mutex
	values  map[core.Pin]int32
	scheme  core.CalibrationScheme
	opened  map[core.Pin]bool
}

// NewADCDriver returns an ADCDriver reporting scheme for every channel it
// configures.
func NewADCDriver(scheme core.CalibrationScheme) *ADCDriver {
	return &ADCDriver{
		values: make(map[core.Pin]int32),
		scheme: scheme,
		opened: make(map[core.Pin]bool),
	}
}

func (d *ADCDriver) ConfigureChannel(pin core.Pin) (core.CalibrationScheme, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.opened[pin] = true
	return d.scheme, nil
}

func (d *ADCDriver) ReadRaw(pin core.Pin) (int32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.values[pin], nil
}

func (d *ADCDriver) Release(pin core.Pin) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.opened, pin)
	delete(d.values, pin)
}

// SetValue sets the value ReadRaw returns for pin, for simulating an
// external analog input.
func (d *ADCDriver) SetValue(pin core.Pin, value int32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.values[pin] = value
}
