//go:build tinygo

package tinygo

import (
	"errors"
	"sync"

	"machine"

	"tinygo.org/x/drivers/mcp4725"

	"github.com/Coolman4128/EduFirmware/core"
)

// I2CDriver implements core.I2CDriver, backing every DAC write with
// tinygo.org/x/drivers/mcp4725: one I2C bus per machine.I2C instance, one
// driver device per (bus, address) pair.
type I2CDriver struct {
	mu      sync.Mutex
	buses   map[core.I2CBus]*machine.I2C
	dacs    map[dacKey]mcp4725.Device
	resolve func(core.I2CBus) (*machine.I2C, error)
}

type dacKey struct {
	bus  core.I2CBus
	addr core.I2CAddress
}

// NewI2CDriver returns an I2CDriver. busForID maps the logical I2CBus IDs
// this firmware uses to the board's concrete machine.I2C peripherals.
func NewI2CDriver(busForID func(core.I2CBus) (*machine.I2C, error)) *I2CDriver {
	return &I2CDriver{
		buses:   make(map[core.I2CBus]*machine.I2C),
		dacs:    make(map[dacKey]mcp4725.Device),
		resolve: busForID,
	}
}

func (d *I2CDriver) ConfigureBus(bus core.I2CBus, frequencyHz uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.buses[bus]; ok {
		return nil
	}

	i2c, err := d.resolve(bus)
	if err != nil {
		return err
	}
	if err := i2c.Configure(machine.I2CConfig{Frequency: frequencyHz}); err != nil {
		return err
	}
	d.buses[bus] = i2c
	return nil
}

func (d *I2CDriver) WriteDAC(bus core.I2CBus, addr core.I2CAddress, code uint16) error {
	d.mu.Lock()
	i2c, ok := d.buses[bus]
	if !ok {
		d.mu.Unlock()
		return errors.New("tinygo: I2C bus not configured")
	}

	key := dacKey{bus, addr}
	dev, ok := d.dacs[key]
	if !ok {
		dev = mcp4725.New(i2c, uint8(addr))
		dev.Configure()
		d.dacs[key] = dev
	}
	d.mu.Unlock()

	dev.Write(code)
	return nil
}

func (d *I2CDriver) Release(bus core.I2CBus, addr core.I2CAddress) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.dacs, dacKey{bus, addr})
}
