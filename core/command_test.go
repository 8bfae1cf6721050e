package core

import (
	"testing"

	"github.com/Coolman4128/EduFirmware/protocol"
)

func newTestProcessor() (*Processor, *Registry, *Linker, *RegisterFile) {
	setupFakeDrivers()
	regs := NewRegisterFile()
	reg := NewRegistry()
	linker := NewLinker(reg, regs)
	return NewProcessor(regs, reg, linker), reg, linker, regs
}

func TestProcessReadWriteRegister(t *testing.T) {
	p, _, _, regs := newTestProcessor()

	resp := p.Process(protocol.Packet{Command: protocol.WriteRegister, Address: 4, Data: 99})
	if resp.Data != 0 {
		t.Fatalf("expected success (0), got %d", resp.Data)
	}
	if regs.Read(4) != 99 {
		t.Fatal("write did not take effect")
	}

	resp = p.Process(protocol.Packet{Command: protocol.ReadRegister, Address: 4})
	if resp.Data != 99 {
		t.Fatalf("expected 99, got %d", resp.Data)
	}
}

func TestProcessWriteRegisterOutOfRange(t *testing.T) {
	p, _, _, _ := newTestProcessor()
	resp := p.Process(protocol.Packet{Command: protocol.WriteRegister, Address: RegisterCount})
	if resp.Data != protocol.StatusFailure {
		t.Fatalf("expected failure sentinel, got %d", resp.Data)
	}
}

func TestProcessReadHwConfigDeviceCount(t *testing.T) {
	p, reg, _, _ := newTestProcessor()
	reg.AddGPIO(1, 5, DigitalOutput)
	reg.AddDAC(2, 0, 0x60, 3.3)

	resp := p.Process(protocol.Packet{Command: protocol.ReadHwConfig, Address: 0})
	if resp.Data != 2 {
		t.Fatalf("expected device count 2, got %d", resp.Data)
	}
}

func TestProcessReadHwConfigUnknownHardware(t *testing.T) {
	p, _, _, _ := newTestProcessor()
	resp := p.Process(protocol.Packet{Command: protocol.ReadHwConfig, Address: 42})
	if resp.Data != protocol.StatusFailure {
		t.Fatal("expected failure for unknown hardware")
	}
}

func TestProcessReadHwConfigGPIOPacksTypeAndMode(t *testing.T) {
	p, reg, _, _ := newTestProcessor()
	reg.AddGPIO(7, 5, Pwm)

	resp := p.Process(protocol.Packet{Command: protocol.ReadHwConfig, Address: 7})
	want := (hardwareTypeGPIO << 8) | uint16(Pwm.ConfigByte())
	if resp.Data != want {
		t.Fatalf("expected %#04x, got %#04x", want, resp.Data)
	}
}

func TestProcessConfigureHwReconfiguresGPIO(t *testing.T) {
	p, reg, _, _ := newTestProcessor()
	reg.AddGPIO(1, 5, DigitalInput)

	resp := p.Process(protocol.Packet{
		Command: protocol.ConfigureHw,
		Address: 1,
		Data:    uint16(DigitalOutput.ConfigByte()),
	})
	if resp.Data != protocol.StatusSuccess {
		t.Fatalf("expected success, got %#04x", resp.Data)
	}
	if reg.GetGPIO(1).Mode() != DigitalOutput {
		t.Fatal("mode did not change")
	}
}

func TestProcessConfigureHwOnDACAlwaysSucceeds(t *testing.T) {
	p, reg, _, _ := newTestProcessor()
	reg.AddDAC(1, 0, 0x60, 3.3)

	resp := p.Process(protocol.Packet{Command: protocol.ConfigureHw, Address: 1, Data: 1})
	if resp.Data != protocol.StatusSuccess {
		t.Fatal("CONFIGURE_HW on a DAC should always succeed")
	}
}

func TestProcessConfigureHwInvalidConfigByte(t *testing.T) {
	p, reg, _, _ := newTestProcessor()
	reg.AddGPIO(1, 5, DigitalInput)

	resp := p.Process(protocol.Packet{Command: protocol.ConfigureHw, Address: 1, Data: 0xFF})
	if resp.Data != protocol.StatusFailure {
		t.Fatal("expected failure for invalid config byte")
	}
}

func TestProcessLinkHwDerivesDirectionFromMode(t *testing.T) {
	p, reg, linker, _ := newTestProcessor()
	reg.AddGPIO(1, 5, DigitalInput)
	reg.AddGPIO(2, 6, DigitalOutput)

	p.Process(protocol.Packet{Command: protocol.LinkHw, Address: 1, Data: 10})
	p.Process(protocol.Packet{Command: protocol.LinkHw, Address: 2, Data: 20})

	if !linker.IsInput(1) {
		t.Fatal("input-mode GPIO should link as input")
	}
	if linker.IsInput(2) {
		t.Fatal("output-mode GPIO should link as output")
	}
}

func TestProcessLinkHwUnknownHardwareFails(t *testing.T) {
	p, _, _, _ := newTestProcessor()
	resp := p.Process(protocol.Packet{Command: protocol.LinkHw, Address: 99, Data: 10})
	if resp.Data != protocol.StatusFailure {
		t.Fatal("expected failure for unknown hardware")
	}
}

func TestProcessRemoveLinkHw(t *testing.T) {
	p, reg, linker, _ := newTestProcessor()
	reg.AddGPIO(1, 5, DigitalInput)
	linker.CreateLink(1, 10, true)

	resp := p.Process(protocol.Packet{Command: protocol.RemoveLinkHw, Address: 1})
	if resp.Data != protocol.StatusSuccess {
		t.Fatal("expected success removing an existing link")
	}

	resp = p.Process(protocol.Packet{Command: protocol.RemoveLinkHw, Address: 1})
	if resp.Data != protocol.StatusSuccess {
		t.Fatal("expected success removing a link that no longer exists (remove is idempotent)")
	}
}

func TestProcessUnknownCommand(t *testing.T) {
	p, _, _, _ := newTestProcessor()
	resp := p.Process(protocol.Packet{Command: protocol.Command(0xFF), Address: 1})
	if resp.Data != protocol.StatusFailure {
		t.Fatal("expected failure for unknown command")
	}
}
