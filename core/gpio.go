package core

import "errors"

// GpioPin is a board pin whose mode can be reassigned at runtime, backed by
// the GPIODriver/PWMDriver/ADCDriver capability interfaces depending on
// which mode is currently active.
type GpioPin struct {
	hwID uint32
	pin  Pin
	mode GpioMode

	initialized bool
	calibration CalibrationScheme // set while mode == AnalogRead
}

// newGpioPin constructs and initialises a GpioPin for the given mode. On
// failure the returned pin is nil and the caller must not store it — no
// hardware resources are left claimed.
func newGpioPin(hwID uint32, pin Pin, mode GpioMode) (*GpioPin, error) {
	g := &GpioPin{hwID: hwID, pin: pin}
	if err := g.initializeAs(mode); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *GpioPin) initializeAs(mode GpioMode) error {
	var err error
	switch mode {
	case DigitalInput:
		err = MustGPIO().ConfigureInput(g.pin, false, false)
	case InputPullup:
		err = MustGPIO().ConfigureInput(g.pin, true, false)
	case InputPulldown:
		err = MustGPIO().ConfigureInput(g.pin, false, true)
	case DigitalOutput:
		err = MustGPIO().ConfigureOutput(g.pin)
	case Pwm:
		err = MustPWM().ConfigurePWM(g.pin)
	case AnalogRead:
		g.calibration, err = MustADC().ConfigureChannel(g.pin)
	default:
		return errUnsupportedMode
	}
	if err != nil {
		return err
	}
	g.mode = mode
	g.initialized = true
	return nil
}

// HardwareID implements Peripheral.
func (g *GpioPin) HardwareID() uint32 { return g.hwID }

// Kind implements Peripheral.
func (g *GpioPin) Kind() PeripheralKind { return KindGPIO }

// Mode returns the pin's current mode.
func (g *GpioPin) Mode() GpioMode { return g.mode }

// Reconfigure changes the pin's mode, releasing any PWM/ADC resource held
// for the old mode before acquiring resources for the new one: PWM stopped
// first, then ADC released, then the pin is reset and re-initialised. If
// mode equals the current mode this is a no-op success. If
// reinitialisation fails, the pin is left uninitialised and Reconfigure
// returns false. Reconfigure requires an initialised pin, so a pin whose
// reinitialisation failed rejects every later Reconfigure call as well.
func (g *GpioPin) Reconfigure(mode GpioMode) bool {
	if !g.initialized {
		return false
	}
	if mode == g.mode {
		return true
	}

	g.releaseModeResources()
	MustGPIO().Reset(g.pin)
	g.initialized = false

	if err := g.initializeAs(mode); err != nil {
		return false
	}
	return true
}

func (g *GpioPin) releaseModeResources() {
	switch g.mode {
	case Pwm:
		_ = MustPWM().Stop(g.pin)
	case AnalogRead:
		MustADC().Release(g.pin)
		g.calibration = CalibrationNone
	}
}

// Release implements Peripheral. Called by the Registry when the pin is
// removed or replaced.
func (g *GpioPin) Release() {
	g.releaseModeResources()
	MustGPIO().Reset(g.pin)
	g.initialized = false
}

var (
	errUnsupportedMode = errors.New("core: unsupported GPIO mode")
	errModeMismatch    = errors.New("core: GPIO not in required mode")
	errNotInitialized  = errors.New("core: GPIO not initialized")
)

// DigitalRead returns the pin's current digital level. Requires the pin to
// be initialised in one of the three digital-input modes.
func (g *GpioPin) DigitalRead() (bool, error) {
	if !g.initialized {
		return false, errNotInitialized
	}
	if !g.mode.IsInput() || g.mode == AnalogRead {
		return false, errModeMismatch
	}
	return MustGPIO().GetPin(g.pin)
}

// DigitalWrite drives the pin's output level. Requires DigitalOutput mode.
func (g *GpioPin) DigitalWrite(value bool) error {
	if !g.initialized {
		return errNotInitialized
	}
	if g.mode != DigitalOutput {
		return errModeMismatch
	}
	return MustGPIO().SetPin(g.pin, value)
}

// AnalogRead samples the channel. Requires AnalogRead mode. The returned
// value is raw 12-bit counts or calibrated millivolts depending on which
// calibration scheme (if any) ConfigureChannel settled on.
func (g *GpioPin) AnalogRead() (int32, error) {
	if !g.initialized {
		return -1, errNotInitialized
	}
	if g.mode != AnalogRead {
		return -1, errModeMismatch
	}
	return MustADC().ReadRaw(g.pin)
}

// WritePWM sets the duty cycle, clamped to the driver's 10-bit resolution.
// Requires Pwm mode.
func (g *GpioPin) WritePWM(duty uint32) error {
	if !g.initialized {
		return errNotInitialized
	}
	if g.mode != Pwm {
		return errModeMismatch
	}
	max := MustPWM().DutyMax()
	if duty > max {
		duty = max
	}
	return MustPWM().SetDuty(g.pin, duty)
}
