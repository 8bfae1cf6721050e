// Command simulator runs the supervisory controller against in-memory
// peripheral drivers, reachable over TCP instead of a real serial port, so
// the command/response and linker logic can be exercised from any TCP
// client speaking the 8-byte packet protocol without hardware. (eduhost
// opens serial devices only and does not connect over TCP.)
package main

import (
	"flag"
	"log"
	"net"

	"github.com/Coolman4128/EduFirmware/core"
	"github.com/Coolman4128/EduFirmware/targets/sim"
	"github.com/Coolman4128/EduFirmware/transport"
)

var listenAddr = flag.String("listen", "127.0.0.1:9000", "TCP address to accept protocol connections on")

func main() {
	flag.Parse()

	core.SetGPIODriver(sim.NewGPIODriver())
	core.SetPWMDriver(sim.NewPWMDriver())
	core.SetADCDriver(sim.NewADCDriver(core.CalibrationNone))
	core.SetI2CDriver(sim.NewI2CDriver())

	logger := log.Default()
	sup := transport.NewSupervisor(logger)

	// Seed the same two-peripheral starting set the board firmware brings
	// up at boot, so a fresh simulator session behaves like a fresh board.
	sup.Registry.AddGPIO(1, 2, core.DigitalOutput)
	sup.Registry.AddGPIO(2, 3, core.DigitalInput)

	stop := make(chan struct{})
	go sup.RunLinker(stop)
	defer close(stop)

	ln, err := net.Listen("tcp", *listenAddr)
	if err != nil {
		logger.Fatalf("simulator: listen: %v", err)
	}
	logger.Printf("simulator: listening on %s", *listenAddr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			logger.Printf("simulator: accept: %v", err)
			continue
		}
		go func() {
			defer conn.Close()
			if err := sup.Serve(conn); err != nil {
				logger.Printf("simulator: connection closed: %v", err)
			}
		}()
	}
}
