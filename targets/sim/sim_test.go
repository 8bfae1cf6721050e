//go:build !tinygo

package sim

import (
	"testing"

	"github.com/Coolman4128/EduFirmware/core"
)

// Compile-time assertions that the sim drivers satisfy core's HAL
// interfaces.
var (
	_ core.GPIODriver = (*GPIODriver)(nil)
	_ core.PWMDriver  = (*PWMDriver)(nil)
	_ core.ADCDriver  = (*ADCDriver)(nil)
	_ core.I2CDriver  = (*I2CDriver)(nil)
)

func TestGPIODriverDriveAndRead(t *testing.T) {
	d := NewGPIODriver()
	d.ConfigureInput(5, false, false)
	d.Drive(5, true)

	v, err := d.GetPin(5)
	if err != nil || !v {
		t.Fatal("expected driven pin to read true")
	}
}

func TestPWMDriverClampsDuty(t *testing.T) {
	d := NewPWMDriver()
	d.ConfigurePWM(6)
	d.SetDuty(6, 5000)

	if d.Duty(6) != dutyMax {
		t.Fatalf("expected duty clamped to %d, got %d", dutyMax, d.Duty(6))
	}
}

func TestADCDriverReportsConfiguredScheme(t *testing.T) {
	d := NewADCDriver(core.CalibrationLineFitting)
	scheme, err := d.ConfigureChannel(3)
	if err != nil {
		t.Fatalf("ConfigureChannel failed: %v", err)
	}
	if scheme != core.CalibrationLineFitting {
		t.Fatalf("expected CalibrationLineFitting, got %v", scheme)
	}

	d.SetValue(3, 2048)
	v, _ := d.ReadRaw(3)
	if v != 2048 {
		t.Fatalf("expected 2048, got %d", v)
	}
}

func TestI2CDriverRecordsLastWrite(t *testing.T) {
	d := NewI2CDriver()
	d.ConfigureBus(0, 100000)
	d.WriteDAC(0, 0x60, 1500)

	if d.LastWrite(0, 0x60) != 1500 {
		t.Fatal("expected last write to be recorded")
	}
}
