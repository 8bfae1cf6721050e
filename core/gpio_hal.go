package core

// Pin identifies a hardware GPIO pin number.
type Pin uint32

// GPIODriver is the abstract digital-GPIO interface core code uses. A
// platform wires a concrete implementation in via SetGPIODriver during
// startup; core code never imports a board package directly.
type GPIODriver interface {
	// ConfigureOutput configures pin as a digital output.
	ConfigureOutput(pin Pin) error

	// ConfigureInput configures pin as a digital input, optionally with a
	// pull-up or pull-down resistor enabled.
	ConfigureInput(pin Pin, pullup, pulldown bool) error

	// Reset returns pin to an unconfigured, floating state. Called before a
	// pin is reconfigured into a different mode.
	Reset(pin Pin)

	// SetPin drives pin high (true) or low (false). Valid only after
	// ConfigureOutput.
	SetPin(pin Pin, value bool) error

	// GetPin reads the current logic level of pin. Valid only after
	// ConfigureInput.
	GetPin(pin Pin) (bool, error)
}

// PWMDriver is the abstract hardware-PWM interface. It mirrors an LEDC-style
// peripheral: a fixed-resolution duty cycle at a fixed frequency per pin.
type PWMDriver interface {
	// ConfigurePWM claims pin for PWM output at the driver's native
	// resolution and frequency.
	ConfigurePWM(pin Pin) error

	// SetDuty sets the duty cycle for pin. duty is 0..DutyMax(); values
	// outside that range are the caller's responsibility to clamp.
	SetDuty(pin Pin, duty uint32) error

	// DutyMax returns the maximum duty value the driver accepts (1023 for
	// 10-bit resolution).
	DutyMax() uint32

	// Stop releases the PWM channel/timer bound to pin and returns it to an
	// unconfigured state.
	Stop(pin Pin) error
}

// Global singletons used by core code, set once by platform wiring at
// startup.
var (
	gpioDriver GPIODriver
	pwmDriver  PWMDriver
)

// SetGPIODriver installs the platform's GPIO driver.
func SetGPIODriver(d GPIODriver) { gpioDriver = d }

// SetPWMDriver installs the platform's PWM driver.
func SetPWMDriver(d PWMDriver) { pwmDriver = d }

// MustGPIO returns the configured GPIO driver or panics if none was wired.
func MustGPIO() GPIODriver {
	if gpioDriver == nil {
		panic("core: GPIO driver not configured")
	}
	return gpioDriver
}

// MustPWM returns the configured PWM driver or panics if none was wired.
func MustPWM() PWMDriver {
	if pwmDriver == nil {
		panic("core: PWM driver not configured")
	}
	return pwmDriver
}
