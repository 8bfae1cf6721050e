//go:build tinygo && esp32

package tinygo

import (
	"log"

	"machine"

	"github.com/Coolman4128/EduFirmware/core"
	"github.com/Coolman4128/EduFirmware/transport"
)

// startupHwID0 and startupHwID1 are brought up as GPIO peripherals at boot
// so the board has something link-able before the host sends its first
// CONFIGURE_HW request.
const (
	startupHwID0 uint32 = 1
	startupHwID1 uint32 = 2
)

func main() {
	machine.Serial.Configure(machine.UARTConfig{BaudRate: 115200})

	Install()

	sup := transport.NewSupervisor(log.New(consoleLogWriter{}, "", log.LstdFlags))

	sup.Registry.AddGPIO(startupHwID0, core.Pin(machine.LED), core.DigitalOutput)
	sup.Registry.AddGPIO(startupHwID1, 0, core.DigitalInput)

	stop := make(chan struct{})
	go sup.RunLinker(stop)

	for {
		if err := sup.Serve(Console()); err != nil {
			// A closed or broken link: wait for the host to reconnect and
			// keep serving rather than halting the firmware.
			continue
		}
	}
}

// consoleLogWriter sends log output over the same UART as the protocol
// link carries commands on, since there is no separate debug channel on
// this board.
type consoleLogWriter struct{}

func (consoleLogWriter) Write(p []byte) (int, error) {
	return machine.Serial.Write(p)
}
