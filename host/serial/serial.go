// Package serial provides the host side of the serial link: opening a real
// serial port as a protocol.ByteLink.
package serial

import "io"

// Port is a serial port abstraction, just wide enough to satisfy
// protocol.ByteLink while still naming the one extra knob a host tool wants
// over a bare io.ReadWriteCloser.
type Port interface {
	io.ReadWriteCloser

	// Flush discards any buffered but unsent data.
	Flush() error
}

// Config holds the parameters needed to open a Port.
type Config struct {
	// Device is the OS device path (e.g. "/dev/ttyUSB0", "COM3").
	Device string

	// Baud is the link's baud rate.
	Baud int

	// ReadTimeout bounds a single Read call in milliseconds. 0 means
	// block forever; the request/response loop wants a read to give up
	// periodically so it can also service shutdown.
	ReadTimeout int
}

// DefaultConfig returns a Config matching the firmware's fixed UART
// settings: 115200 baud, a one-second read timeout.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 1000,
	}
}
