// Package protocol implements the 8-byte command/response wire format
// exchanged between host and firmware over a serial link.
package protocol

// CRC8 computes the CRC-8 checksum (polynomial 0x07, initial value 0, no
// final XOR) over data, processing one byte at a time. This matches the
// per-byte CRC-8 used by Packet's CRC field, computed over the packet's
// first seven bytes.
func CRC8(data []byte) uint8 {
	const polynomial = 0x07
	var crc uint8
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = (crc << 1) ^ polynomial
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
