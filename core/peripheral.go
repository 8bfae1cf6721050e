package core

// GpioMode is the runtime-reconfigurable mode of a GpioPin.
type GpioMode uint8

const (
	// DigitalInput reads a floating digital level.
	DigitalInput GpioMode = iota + 1
	// InputPullup reads a digital level with an internal pull-up enabled.
	InputPullup
	// InputPulldown reads a digital level with an internal pull-down
	// enabled.
	InputPulldown
	// DigitalOutput drives a digital level.
	DigitalOutput
	// Pwm drives a 10-bit, 5 kHz hardware PWM duty cycle.
	Pwm
	// AnalogRead samples a 12-bit ADC channel, optionally calibrated to
	// millivolts.
	AnalogRead
)

// ConfigByte returns the wire encoding for mode used by CONFIGURE_HW and
// READ_HW_CONFIG, or 0 if mode is not one of the six valid modes.
func (m GpioMode) ConfigByte() uint8 {
	switch m {
	case DigitalInput, InputPullup, InputPulldown, DigitalOutput, Pwm, AnalogRead:
		return uint8(m)
	default:
		return 0
	}
}

// GpioModeFromConfigByte decodes a CONFIGURE_HW config byte into a mode. ok
// is false for any byte outside 0x01..0x06.
func GpioModeFromConfigByte(b uint8) (mode GpioMode, ok bool) {
	switch b {
	case uint8(DigitalInput), uint8(InputPullup), uint8(InputPulldown),
		uint8(DigitalOutput), uint8(Pwm), uint8(AnalogRead):
		return GpioMode(b), true
	default:
		return 0, false
	}
}

// IsInput reports whether mode is one of the four input modes. GPIO modes
// not in this set are outputs; the distinction drives the Linker's derived
// is_input flag.
func (m GpioMode) IsInput() bool {
	switch m {
	case DigitalInput, InputPullup, InputPulldown, AnalogRead:
		return true
	default:
		return false
	}
}

// PeripheralKind identifies the variant stored under a hardware ID, letting
// callers dispatch by type without a full interface type-switch.
type PeripheralKind uint8

const (
	// KindGPIO marks a *GpioPin entry.
	KindGPIO PeripheralKind = iota + 1
	// KindDAC marks a *Dac entry.
	KindDAC
)

// Peripheral is the sum type stored in the Registry. Only GpioPin and Dac
// implement it; the interface exists so the Registry can hold either kind
// behind one accessor family while still exposing typed getters.
type Peripheral interface {
	// HardwareID returns the ID this peripheral was registered under.
	HardwareID() uint32
	// Kind returns KindGPIO or KindDAC.
	Kind() PeripheralKind
	// Release tears down any hardware resources held by this peripheral,
	// deterministically, so a subsequent peripheral can reinitialise the
	// same pins/bus.
	Release()
}
