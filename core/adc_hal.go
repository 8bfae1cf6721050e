package core

// CalibrationScheme identifies which ADC calibration scheme, if any, a
// channel ended up with after initialisation. GpioPin records it while in
// AnalogRead mode; READ_HW_CONFIG does not report it, so the host has no
// way to query it over the wire.
type CalibrationScheme uint8

const (
	// CalibrationNone means no calibration scheme is available; ReadRaw
	// returns raw 12-bit ADC counts.
	CalibrationNone CalibrationScheme = iota
	// CalibrationLineFitting means the line-fitting scheme initialised
	// successfully; ReadRaw returns calibrated millivolts.
	CalibrationLineFitting
	// CalibrationCurveFitting means curve-fitting initialised successfully
	// (line-fitting was unavailable); ReadRaw returns calibrated
	// millivolts.
	CalibrationCurveFitting
)

// ADCDriver is the abstract one-shot ADC interface. A channel is configured
// once; thereafter ReadRaw performs a single conversion and returns either
// raw 12-bit counts or calibrated millivolts, reporting which via the
// CalibrationScheme return so callers can make an informed choice about
// units. Attenuation is fixed at 0-3.3V and bit width at 12; a driver has no
// knob to vary either.
type ADCDriver interface {
	// ConfigureChannel prepares pin for analog sampling. It attempts
	// line-fitting calibration first, then curve-fitting, and finally
	// falls back to no calibration.
	ConfigureChannel(pin Pin) (CalibrationScheme, error)

	// ReadRaw performs one conversion on pin. value is raw 12-bit counts
	// when scheme is CalibrationNone, or calibrated millivolts otherwise.
	ReadRaw(pin Pin) (value int32, err error)

	// Release tears down any calibration handle and the ADC unit bound to
	// pin, in that order (calibration handle first, then unit) — so a
	// subsequent ConfigureChannel can reinitialise cleanly.
	Release(pin Pin)
}

var adcDriver ADCDriver

// SetADCDriver installs the platform's ADC driver.
func SetADCDriver(d ADCDriver) { adcDriver = d }

// MustADC returns the configured ADC driver or panics if none was wired.
func MustADC() ADCDriver {
	if adcDriver == nil {
		panic("core: ADC driver not configured")
	}
	return adcDriver
}
