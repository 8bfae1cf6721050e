//go:build tinygo && esp32

package tinygo

import (
	"errors"

	"machine"

	"github.com/Coolman4128/EduFirmware/core"
)

// Install wires the concrete ESP32 drivers into core's global singletons.
// Call once at boot, before constructing any GpioPin or Dac.
func Install() {
	core.SetGPIODriver(NewGPIODriver())
	core.SetPWMDriver(NewPWMDriver(machine.PWM0))
	core.SetADCDriver(NewADCDriver(nil, nil))
	core.SetI2CDriver(NewI2CDriver(resolveBus))
}

func resolveBus(bus core.I2CBus) (*machine.I2C, error) {
	switch bus {
	case 0:
		return machine.I2C0, nil
	case 1:
		return machine.I2C1, nil
	default:
		return nil, errors.New("tinygo: unsupported I2C bus")
	}
}

// uartLink adapts machine.UART to protocol.ByteLink, which needs a Close
// method the bare UART type doesn't expose on every target.
type uartLink struct{ uart *machine.UART }

func (u uartLink) Read(p []byte) (int, error)  { return u.uart.Read(p) }
func (u uartLink) Write(p []byte) (int, error) { return u.uart.Write(p) }
func (u uartLink) Close() error                { return nil }

// Console returns the UART used for the host-facing command/response link
// as a protocol.ByteLink.
func Console() interface {
	Read([]byte) (int, error)
	Write([]byte) (int, error)
	Close() error
} {
	return uartLink{uart: machine.Serial}
}
