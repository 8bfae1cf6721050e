package protocol

import (
	"io"
)

// ByteLink is the minimal transport a Transceiver needs: a blocking,
// timeout-bounded byte stream, exactly an io.ReadWriteCloser. The host
// package's Port interface is this plus Flush; the two are kept separate so
// protocol does not import host (and pull in tarm/serial) just to talk
// about bytes.
type ByteLink interface {
	io.ReadWriteCloser
}

// Transceiver reads and writes whole Packets over a ByteLink, one frame at
// a time. It owns no buffering beyond a single Size-byte scratch area.
type Transceiver struct {
	link ByteLink
	buf  [Size]byte
}

// NewTransceiver wraps link for packet-oriented I/O.
func NewTransceiver(link ByteLink) *Transceiver {
	return &Transceiver{link: link}
}

// ReadPacket blocks until a full Size-byte frame has been read, then
// decodes it. By way of io.ReadFull, a short read (the link ending with a
// partial frame buffered) returns io.ErrUnexpectedEOF, and a link that ends
// before any byte arrives returns io.EOF; any other link error is returned
// as is. A frame with a bad checksum returns ErrCRCMismatch.
func (tc *Transceiver) ReadPacket() (Packet, error) {
	if _, err := io.ReadFull(tc.link, tc.buf[:]); err != nil {
		return Packet{}, err
	}
	return Decode(tc.buf[:])
}

// WritePacket encodes p and writes it to the link in full.
func (tc *Transceiver) WritePacket(p Packet) error {
	if err := p.Encode(tc.buf[:]); err != nil {
		return err
	}
	_, err := tc.link.Write(tc.buf[:])
	return err
}
