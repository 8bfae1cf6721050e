//go:build tinygo

package tinygo

import (
	"sync"

	"machine"

	"github.com/Coolman4128/EduFirmware/core"
)

// ADCDriver implements core.ADCDriver over machine.ADC, attempting a
// calibration scheme cascade: prefer line-fitting calibration, fall back to
// curve-fitting, and fall back further to uncalibrated raw counts if neither
// calibration scheme is available on this chip revision. TinyGo's
// machine.ADC exposes no calibration API, so both calibrated paths here are
// supplied by the caller as optional probe functions; a board with neither
// wired simply always falls through to CalibrationNone.
type ADCDriver struct {
	mu       sync.Mutex
	channels map[core.Pin]*machine.ADC

	probeLineFitting  func(pin core.Pin) bool
	probeCurveFitting func(pin core.Pin) bool
}

// NewADCDriver returns an ADCDriver. probeLineFitting/probeCurveFitting may
// be nil, in which case that scheme is never selected.
func NewADCDriver(probeLineFitting, probeCurveFitting func(pin core.Pin) bool) *ADCDriver {
	return &ADCDriver{
		channels:          make(map[core.Pin]*machine.ADC),
		probeLineFitting:  probeLineFitting,
		probeCurveFitting: probeCurveFitting,
	}
}

func (d *ADCDriver) ConfigureChannel(pin core.Pin) (core.CalibrationScheme, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.channels[pin]; !ok {
		adc := machine.ADC{Pin: machine.Pin(pin)}
		adc.Configure(machine.ADCConfig{})
		d.channels[pin] = &adc
	}

	switch {
	case d.probeLineFitting != nil && d.probeLineFitting(pin):
		return core.CalibrationLineFitting, nil
	case d.probeCurveFitting != nil && d.probeCurveFitting(pin):
		return core.CalibrationCurveFitting, nil
	default:
		return core.CalibrationNone, nil
	}
}

// ReadRaw samples the channel and scales TinyGo's 16-bit-normalised value
// down to 12-bit counts (0-4095).
func (d *ADCDriver) ReadRaw(pin core.Pin) (int32, error) {
	d.mu.Lock()
	adc, ok := d.channels[pin]
	d.mu.Unlock()
	if !ok {
		return -1, nil
	}
	return int32(adc.Get() >> 4), nil
}

func (d *ADCDriver) Release(pin core.Pin) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.channels, pin)
}
