package protocol

import (
	"bytes"
	"io"
	"testing"
)

// memLink is an in-memory ByteLink backed by a buffer, enough to exercise
// Transceiver without a real serial port.
type memLink struct {
	r *bytes.Buffer
	w bytes.Buffer
}

func newMemLink(initial []byte) *memLink {
	return &memLink{r: bytes.NewBuffer(initial)}
}

func (m *memLink) Read(p []byte) (int, error)  { return m.r.Read(p) }
func (m *memLink) Write(p []byte) (int, error) { return m.w.Write(p) }
func (m *memLink) Close() error                { return nil }

func TestTransceiverRoundTrip(t *testing.T) {
	link := newMemLink(nil)
	tc := NewTransceiver(link)

	p := Packet{Command: ConfigureHw, Address: 1, Data: 2, DeviceId: 3}
	if err := tc.WritePacket(p); err != nil {
		t.Fatalf("WritePacket failed: %v", err)
	}

	link.r = bytes.NewBuffer(link.w.Bytes())
	got, err := tc.ReadPacket()
	if err != nil {
		t.Fatalf("ReadPacket failed: %v", err)
	}
	if got != p {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, p)
	}
}

func TestTransceiverReadPacketShortReadErrors(t *testing.T) {
	link := newMemLink([]byte{0x01, 0x02, 0x03})
	tc := NewTransceiver(link)

	if _, err := tc.ReadPacket(); err != io.ErrUnexpectedEOF {
		t.Fatalf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}
