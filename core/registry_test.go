package core

import "testing"

type fakeGPIO struct{ levels map[Pin]bool }

func newFakeGPIO() *fakeGPIO { return &fakeGPIO{levels: make(map[Pin]bool)} }

func (f *fakeGPIO) ConfigureOutput(pin Pin) error { return nil }
func (f *fakeGPIO) ConfigureInput(pin Pin, pullup, pulldown bool) error {
	return nil
}
func (f *fakeGPIO) Reset(pin Pin) { delete(f.levels, pin) }
func (f *fakeGPIO) SetPin(pin Pin, value bool) error {
	f.levels[pin] = value
	return nil
}
func (f *fakeGPIO) GetPin(pin Pin) (bool, error) { return f.levels[pin], nil }

type fakePWM struct{ duty map[Pin]uint32 }

func newFakePWM() *fakePWM { return &fakePWM{duty: make(map[Pin]uint32)} }

func (f *fakePWM) ConfigurePWM(pin Pin) error { return nil }
func (f *fakePWM) SetDuty(pin Pin, duty uint32) error {
	f.duty[pin] = duty
	return nil
}
func (f *fakePWM) DutyMax() uint32 { return 1023 }
func (f *fakePWM) Stop(pin Pin) error {
	delete(f.duty, pin)
	return nil
}

type fakeADC struct{}

func (f *fakeADC) ConfigureChannel(pin Pin) (CalibrationScheme, error) {
	return CalibrationNone, nil
}
func (f *fakeADC) ReadRaw(pin Pin) (int32, error) { return 2048, nil }
func (f *fakeADC) Release(pin Pin)                {}

type fakeI2C struct{ writes map[I2CAddress]uint16 }

func newFakeI2C() *fakeI2C { return &fakeI2C{writes: make(map[I2CAddress]uint16)} }

func (f *fakeI2C) ConfigureBus(bus I2CBus, frequencyHz uint32) error { return nil }
func (f *fakeI2C) WriteDAC(bus I2CBus, addr I2CAddress, code uint16) error {
	f.writes[addr] = code
	return nil
}
func (f *fakeI2C) Release(bus I2CBus, addr I2CAddress) { delete(f.writes, addr) }

func setupFakeDrivers() {
	SetGPIODriver(newFakeGPIO())
	SetPWMDriver(newFakePWM())
	SetADCDriver(&fakeADC{})
	SetI2CDriver(newFakeI2C())
}

func TestRegistryAddGPIOReplacesExisting(t *testing.T) {
	setupFakeDrivers()
	r := NewRegistry()

	if !r.AddGPIO(1, 5, DigitalOutput) {
		t.Fatal("first AddGPIO failed")
	}
	if !r.AddGPIO(1, 5, DigitalInput) {
		t.Fatal("replacing AddGPIO failed")
	}
	if r.Count() != 1 {
		t.Fatalf("expected 1 peripheral after replace, got %d", r.Count())
	}
	if r.GetGPIO(1).Mode() != DigitalInput {
		t.Fatal("replacement did not take effect")
	}
}

func TestRegistryRemove(t *testing.T) {
	setupFakeDrivers()
	r := NewRegistry()
	r.AddGPIO(1, 5, DigitalOutput)

	if !r.Remove(1) {
		t.Fatal("Remove on existing ID returned false")
	}
	if r.Remove(1) {
		t.Fatal("Remove on missing ID returned true")
	}
	if r.Exists(1) {
		t.Fatal("peripheral still exists after Remove")
	}
}

func TestRegistryKindAndGetters(t *testing.T) {
	setupFakeDrivers()
	r := NewRegistry()
	r.AddGPIO(1, 5, DigitalOutput)
	r.AddDAC(2, 0, 0x60, 3.3)

	if r.Kind(1) != KindGPIO {
		t.Fatal("expected KindGPIO")
	}
	if r.Kind(2) != KindDAC {
		t.Fatal("expected KindDAC")
	}
	if r.GetDAC(1) != nil {
		t.Fatal("GetDAC on a GPIO ID should be nil")
	}
	if r.GetGPIO(2) != nil {
		t.Fatal("GetGPIO on a DAC ID should be nil")
	}
}

func TestRegistryDirectIO(t *testing.T) {
	setupFakeDrivers()
	r := NewRegistry()
	r.AddGPIO(1, 5, DigitalOutput)
	r.AddGPIO(2, 6, Pwm)
	r.AddDAC(3, 0, 0x60, 3.3)
	r.AddGPIO(4, 7, DigitalInput)

	if !r.WriteDigital(1, true) {
		t.Fatal("WriteDigital failed")
	}
	if !r.WritePWM(2, 2000) {
		t.Fatal("WritePWM failed")
	}
	if !r.WriteDACRaw(3, 100) {
		t.Fatal("WriteDACRaw failed")
	}
	if r.WriteDACRaw(3, 5000) {
		t.Fatal("WriteDACRaw should reject out-of-range code")
	}
	if r.WriteDigital(2, true) {
		t.Fatal("WriteDigital on a PWM pin should fail")
	}

	gpioDriver.(*fakeGPIO).levels[7] = true
	if v, ok := r.ReadDigital(4); !ok || !v {
		t.Fatal("ReadDigital did not reflect driven input level")
	}
	if _, ok := r.ReadDigital(1); ok {
		t.Fatal("ReadDigital on a DigitalOutput pin should fail")
	}
}

func TestRegistryMissingIDReturnsFalse(t *testing.T) {
	setupFakeDrivers()
	r := NewRegistry()

	if _, ok := r.ReadDigital(99); ok {
		t.Fatal("ReadDigital on missing ID should report not-ok")
	}
	if r.WriteDigital(99, true) {
		t.Fatal("WriteDigital on missing ID should fail")
	}
}
