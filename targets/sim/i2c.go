//go:build !tinygo

package sim

import (
	"sync"

	"github.com/Coolman4128/EduFirmware/core"
)

type i2cKey struct {
	bus  core.I2CBus
	addr core.I2CAddress
}

// I2CDriver is an in-memory core.I2CDriver recording the last code written
// to each (bus, address) pair.
type I2CDriver struct {
	mu      sync.Mutex
	configured map[core.I2CBus]bool
	writes  map[i2cKey]uint16
}

// NewI2CDriver returns an empty I2CDriver.
func NewI2CDriver() *I2CDriver {
	return &I2CDriver{
		configured: make(map[core.I2CBus]bool),
		writes:     make(map[i2cKey]uint16),
	}
}

func (d *I2CDriver) ConfigureBus(bus core.I2CBus, frequencyHz uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.configured[bus] = true
	return nil
}

func (d *I2CDriver) WriteDAC(bus core.I2CBus, addr core.I2CAddress, code uint16) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.writes[i2cKey{bus, addr}] = code
	return nil
}

func (d *I2CDriver) Release(bus core.I2CBus, addr core.I2CAddress) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.writes, i2cKey{bus, addr})
}

// LastWrite returns the last code written to (bus, addr), for tests and
// simulation front ends.
func (d *I2CDriver) LastWrite(bus core.I2CBus, addr core.I2CAddress) uint16 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writes[i2cKey{bus, addr}]
}
