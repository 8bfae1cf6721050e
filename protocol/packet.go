package protocol

import "errors"

// Size is the fixed wire length of a Packet in bytes.
const Size = 8

// Command identifies a request or response operation.
type Command uint8

// The six operations the command processor understands. Any other value is
// rejected as unknown.
const (
	ReadRegister  Command = 0x01
	WriteRegister Command = 0x02
	ReadHwConfig  Command = 0x03
	ConfigureHw   Command = 0x04
	LinkHw        Command = 0x05
	RemoveLinkHw  Command = 0x06
)

// Status sentinels carried in a response packet's Data field.
const (
	StatusSuccess uint16 = 0xAA
	StatusFailure uint16 = 0xBB
)

// Packet is the 8-byte little-endian frame exchanged in both directions:
// Command, Address, Data, DeviceId, then a trailing CRC-8 computed over the
// first seven bytes.
type Packet struct {
	Command  Command
	Address  uint16
	Data     uint16
	DeviceId uint16
}

// ErrCRCMismatch is returned by Decode when the trailing CRC byte does not
// match the computed checksum of the preceding seven bytes.
var ErrCRCMismatch = errors.New("protocol: CRC mismatch")

// ErrShortBuffer is returned by Encode/Decode when given a buffer shorter
// than Size.
var ErrShortBuffer = errors.New("protocol: buffer shorter than packet size")

// Encode writes p's wire representation, including its CRC, into buf[:Size].
// buf must be at least Size bytes.
func (p Packet) Encode(buf []byte) error {
	if len(buf) < Size {
		return ErrShortBuffer
	}
	buf[0] = uint8(p.Command)
	buf[1] = uint8(p.Address)
	buf[2] = uint8(p.Address >> 8)
	buf[3] = uint8(p.Data)
	buf[4] = uint8(p.Data >> 8)
	buf[5] = uint8(p.DeviceId)
	buf[6] = uint8(p.DeviceId >> 8)
	buf[7] = CRC8(buf[:7])
	return nil
}

// Bytes returns p's Size-byte wire encoding.
func (p Packet) Bytes() []byte {
	buf := make([]byte, Size)
	_ = p.Encode(buf)
	return buf
}

// Decode parses a Size-byte wire frame into a Packet, validating its CRC.
// Returns ErrCRCMismatch if the checksum does not match; the caller is
// expected to discard the frame (the wire protocol has no retransmit
// request).
func Decode(buf []byte) (Packet, error) {
	if len(buf) < Size {
		return Packet{}, ErrShortBuffer
	}
	p := Packet{
		Command:  Command(buf[0]),
		Address:  uint16(buf[1]) | uint16(buf[2])<<8,
		Data:     uint16(buf[3]) | uint16(buf[4])<<8,
		DeviceId: uint16(buf[5]) | uint16(buf[6])<<8,
	}
	if CRC8(buf[:7]) != buf[7] {
		return Packet{}, ErrCRCMismatch
	}
	return p, nil
}

// Response builds a response packet carrying status in Data — either a
// StatusSuccess/StatusFailure sentinel or a data value such as a register
// read — echoing Command/Address/DeviceId from the request.
func Response(command Command, address uint16, deviceId uint16, status uint16) Packet {
	return Packet{Command: command, Address: address, Data: status, DeviceId: deviceId}
}
