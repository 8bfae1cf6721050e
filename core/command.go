package core

import "github.com/Coolman4128/EduFirmware/protocol"

// hardwareTypeGPIO and hardwareTypeDAC are the wire encodings for a
// peripheral's type byte in a READ_HW_CONFIG response, packed into the
// upper byte of Data alongside the config byte in the lower byte.
const (
	hardwareTypeGPIO uint16 = 0x01
	hardwareTypeDAC  uint16 = 0x02
)

// Processor dispatches decoded command packets against a RegisterFile,
// Registry, and Linker, producing the matching response packet: one method
// per command, each returning a filled-in response rather than mutating in
// place.
type Processor struct {
	Registers *RegisterFile
	Registry  *Registry
	Linker    *Linker
}

// NewProcessor returns a Processor wired to the given components.
func NewProcessor(registers *RegisterFile, registry *Registry, linker *Linker) *Processor {
	return &Processor{Registers: registers, Registry: registry, Linker: linker}
}

// Process dispatches cmd to its handler and returns the response packet.
// An unrecognised Command yields a failure response rather than an error,
// since every request on this wire gets exactly one response.
func (p *Processor) Process(cmd protocol.Packet) protocol.Packet {
	switch cmd.Command {
	case protocol.ReadRegister:
		return p.processReadRegister(cmd)
	case protocol.WriteRegister:
		return p.processWriteRegister(cmd)
	case protocol.ReadHwConfig:
		return p.processReadHwConfig(cmd)
	case protocol.ConfigureHw:
		return p.processConfigureHw(cmd)
	case protocol.LinkHw:
		return p.processLinkHw(cmd)
	case protocol.RemoveLinkHw:
		return p.processRemoveLinkHw(cmd)
	default:
		return protocol.Response(cmd.Command, cmd.Address, cmd.DeviceId, protocol.StatusFailure)
	}
}

func (p *Processor) processReadRegister(cmd protocol.Packet) protocol.Packet {
	value := p.Registers.Read(cmd.Address)
	return protocol.Response(cmd.Command, cmd.Address, cmd.DeviceId, value)
}

func (p *Processor) processWriteRegister(cmd protocol.Packet) protocol.Packet {
	if !p.Registers.Write(cmd.Address, cmd.Data) {
		return protocol.Response(cmd.Command, cmd.Address, cmd.DeviceId, protocol.StatusFailure)
	}
	return protocol.Response(cmd.Command, cmd.Address, cmd.DeviceId, 0)
}

// processReadHwConfig reports a peripheral's type and current mode, packed
// as (type<<8 | configByte). Address 0x0000 is a special case returning the
// total number of registered peripherals instead of a single config.
func (p *Processor) processReadHwConfig(cmd protocol.Packet) protocol.Packet {
	if cmd.Address == 0 {
		count := uint16(p.Registry.Count())
		return protocol.Response(cmd.Command, cmd.Address, cmd.DeviceId, count)
	}

	hwID := uint32(cmd.Address)
	if !p.Registry.Exists(hwID) {
		return protocol.Response(cmd.Command, cmd.Address, cmd.DeviceId, protocol.StatusFailure)
	}

	var typeByte, configByte uint16
	switch p.Registry.Kind(hwID) {
	case KindGPIO:
		typeByte = hardwareTypeGPIO
		if g := p.Registry.GetGPIO(hwID); g != nil {
			configByte = uint16(g.Mode().ConfigByte())
		}
	case KindDAC:
		typeByte = hardwareTypeDAC
	default:
		return protocol.Response(cmd.Command, cmd.Address, cmd.DeviceId, protocol.StatusFailure)
	}

	data := (typeByte << 8) | configByte
	return protocol.Response(cmd.Command, cmd.Address, cmd.DeviceId, data)
}

// processConfigureHw reassigns a GPIO's mode. DAC hardware has no
// reconfigurable mode and reports success unconditionally.
func (p *Processor) processConfigureHw(cmd protocol.Packet) protocol.Packet {
	hwID := uint32(cmd.Address)
	if !p.Registry.Exists(hwID) {
		return protocol.Response(cmd.Command, cmd.Address, cmd.DeviceId, protocol.StatusFailure)
	}

	if p.Registry.Kind(hwID) == KindDAC {
		return protocol.Response(cmd.Command, cmd.Address, cmd.DeviceId, protocol.StatusSuccess)
	}

	mode, ok := GpioModeFromConfigByte(uint8(cmd.Data))
	if !ok {
		return protocol.Response(cmd.Command, cmd.Address, cmd.DeviceId, protocol.StatusFailure)
	}

	g := p.Registry.GetGPIO(hwID)
	if g == nil || !g.Reconfigure(mode) {
		return protocol.Response(cmd.Command, cmd.Address, cmd.DeviceId, protocol.StatusFailure)
	}
	return protocol.Response(cmd.Command, cmd.Address, cmd.DeviceId, protocol.StatusSuccess)
}

// processLinkHw binds a peripheral to a register, deriving the link
// direction from the peripheral's current state: a GPIO's direction
// follows its mode, a DAC is always an output.
func (p *Processor) processLinkHw(cmd protocol.Packet) protocol.Packet {
	hwID := uint32(cmd.Address)
	if !p.Registry.Exists(hwID) {
		return protocol.Response(cmd.Command, cmd.Address, cmd.DeviceId, protocol.StatusFailure)
	}

	isInput := false
	if p.Registry.Kind(hwID) == KindGPIO {
		if g := p.Registry.GetGPIO(hwID); g != nil {
			isInput = g.Mode().IsInput()
		}
	}

	if !p.Linker.CreateLink(hwID, cmd.Data, isInput) {
		return protocol.Response(cmd.Command, cmd.Address, cmd.DeviceId, protocol.StatusFailure)
	}
	return protocol.Response(cmd.Command, cmd.Address, cmd.DeviceId, protocol.StatusSuccess)
}

// processRemoveLinkHw removes a peripheral's link and reports success
// whether or not a link existed: remove is idempotent, so asking to remove
// an already-absent link is not an error.
func (p *Processor) processRemoveLinkHw(cmd protocol.Packet) protocol.Packet {
	hwID := uint32(cmd.Address)
	p.Linker.RemoveLink(hwID)
	return protocol.Response(cmd.Command, cmd.Address, cmd.DeviceId, protocol.StatusSuccess)
}
