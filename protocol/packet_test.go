package protocol

import "testing"

func TestPacketRoundTrip(t *testing.T) {
	p := Packet{Command: WriteRegister, Address: 42, Data: 1234, DeviceId: 7}
	buf := p.Bytes()

	got, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != p {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, p)
	}
}

func TestDecodeRejectsCorruptedCRC(t *testing.T) {
	p := Packet{Command: ReadRegister, Address: 1, Data: 2, DeviceId: 3}
	buf := p.Bytes()
	buf[3] ^= 0xFF // corrupt Data without updating CRC

	if _, err := Decode(buf); err != ErrCRCMismatch {
		t.Fatalf("expected ErrCRCMismatch, got %v", err)
	}
}

func TestEncodeRejectsShortBuffer(t *testing.T) {
	p := Packet{Command: ReadRegister}
	if err := p.Encode(make([]byte, 4)); err != ErrShortBuffer {
		t.Fatalf("expected ErrShortBuffer, got %v", err)
	}
}

func TestResponseStatusSentinels(t *testing.T) {
	ok := Response(WriteRegister, 5, 1, StatusSuccess)
	if ok.Data != 0xAA {
		t.Fatal("success sentinel should encode as 0xAA")
	}
	bad := Response(WriteRegister, 5, 1, StatusFailure)
	if bad.Data != 0xBB {
		t.Fatal("failure sentinel should encode as 0xBB")
	}
}
