package core

import "sync"

// Registry is the Peripheral Registry: a table from 32-bit hardware IDs to
// typed peripheral instances, held in a single map of the Peripheral
// interface — Go's type assertions make separate per-kind maps and a type
// index unnecessary.
//
// The Registry exclusively owns every peripheral it holds; other components
// (the Linker, the Command Processor) look peripherals up by hardware ID on
// every access rather than caching a pointer, so a lookup never outlives the
// next mutation of the Registry.
type Registry struct {
	mu          sync.Mutex
	peripherals map[uint32]Peripheral
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{peripherals: make(map[uint32]Peripheral)}
}

// AddGPIO constructs and initialises a GpioPin under hwID, replacing any
// existing peripheral at that ID first. On initialisation failure the
// Registry is left unchanged and AddGPIO returns false.
func (r *Registry) AddGPIO(hwID uint32, pin Pin, mode GpioMode) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, err := newGpioPin(hwID, pin, mode)
	if err != nil {
		return false
	}

	r.removeLocked(hwID)
	r.peripherals[hwID] = g
	return true
}

// AddDAC constructs and initialises a Dac under hwID, replacing any existing
// peripheral at that ID first. On initialisation failure the Registry is
// left unchanged and AddDAC returns false.
func (r *Registry) AddDAC(hwID uint32, bus I2CBus, addr I2CAddress, maxVoltage float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, err := newDac(hwID, bus, addr, maxVoltage)
	if err != nil {
		return false
	}

	r.removeLocked(hwID)
	r.peripherals[hwID] = d
	return true
}

// Remove drops the peripheral at hwID, releasing its hardware resources
// before the record disappears. Reports whether a peripheral existed.
func (r *Registry) Remove(hwID uint32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.removeLocked(hwID)
}

func (r *Registry) removeLocked(hwID uint32) bool {
	p, ok := r.peripherals[hwID]
	if !ok {
		return false
	}
	p.Release()
	delete(r.peripherals, hwID)
	return true
}

// Exists reports whether hwID is registered.
func (r *Registry) Exists(hwID uint32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.peripherals[hwID]
	return ok
}

// Kind reports the PeripheralKind at hwID, or 0 if hwID is not registered.
func (r *Registry) Kind(hwID uint32) PeripheralKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.peripherals[hwID]
	if !ok {
		return 0
	}
	return p.Kind()
}

// GetGPIO returns the GpioPin at hwID, or nil if hwID is not registered or
// is not a GPIO.
func (r *Registry) GetGPIO(hwID uint32) *GpioPin {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.peripherals[hwID]
	if !ok {
		return nil
	}
	g, _ := p.(*GpioPin)
	return g
}

// GetDAC returns the Dac at hwID, or nil if hwID is not registered or is not
// a DAC.
func (r *Registry) GetDAC(hwID uint32) *Dac {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.peripherals[hwID]
	if !ok {
		return nil
	}
	d, _ := p.(*Dac)
	return d
}

// Count returns the number of registered peripherals.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.peripherals)
}

// ReadDigital reads a digital GPIO input. ok is false unless hwID names a
// GPIO currently in one of the three digital-input modes.
func (r *Registry) ReadDigital(hwID uint32) (value bool, ok bool) {
	g := r.GetGPIO(hwID)
	if g == nil {
		return false, false
	}
	v, err := g.DigitalRead()
	if err != nil {
		return false, false
	}
	return v, true
}

// ReadAnalog samples a GPIO analog input. ok is false unless hwID names a
// GPIO currently in AnalogRead mode.
func (r *Registry) ReadAnalog(hwID uint32) (value int32, ok bool) {
	g := r.GetGPIO(hwID)
	if g == nil {
		return 0, false
	}
	v, err := g.AnalogRead()
	if err != nil {
		return 0, false
	}
	return v, true
}

// WriteDigital drives a GPIO digital output. Reports whether the write
// applied (false if hwID is not a GPIO in DigitalOutput mode).
func (r *Registry) WriteDigital(hwID uint32, value bool) bool {
	g := r.GetGPIO(hwID)
	if g == nil {
		return false
	}
	return g.DigitalWrite(value) == nil
}

// WritePWM sets a GPIO PWM duty cycle, clamped to the driver's resolution.
// Reports whether the write applied.
func (r *Registry) WritePWM(hwID uint32, duty uint32) bool {
	g := r.GetGPIO(hwID)
	if g == nil {
		return false
	}
	return g.WritePWM(duty) == nil
}

// WriteDACRaw writes a 12-bit code to a DAC. Reports whether the write
// applied (false if hwID is not a DAC, or code exceeds DacMaxCode).
func (r *Registry) WriteDACRaw(hwID uint32, code uint16) bool {
	d := r.GetDAC(hwID)
	if d == nil {
		return false
	}
	return d.WriteRaw(code) == nil
}
