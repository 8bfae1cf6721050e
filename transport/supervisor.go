// Package transport runs the two cooperating tasks that make up the
// firmware's runtime: a request/response loop servicing the serial link,
// and a fixed-rate linker tick loop. Both tasks share one lock over the
// register file, registry, and linker, since every request and every tick
// touches the same state.
package transport

import (
	"io"
	"log"
	"sync"
	"time"

	"github.com/Coolman4128/EduFirmware/core"
	"github.com/Coolman4128/EduFirmware/protocol"
)

// TickInterval is the linker's fixed tick period: 100 Hz.
const TickInterval = 10 * time.Millisecond

// Supervisor owns the shared lock guarding a RegisterFile, Registry, and
// Linker, and runs the two tasks that access them: Serve (request/response)
// and RunLinker (periodic tick).
type Supervisor struct {
	mu sync.Mutex

	Registers *core.RegisterFile
	Registry  *core.Registry
	Linker    *core.Linker
	Processor *core.Processor

	Logger *log.Logger
}

// NewSupervisor wires a fresh RegisterFile, Registry, Linker, and Processor
// together behind one lock.
func NewSupervisor(logger *log.Logger) *Supervisor {
	regs := core.NewRegisterFile()
	registry := core.NewRegistry()
	linker := core.NewLinker(registry, regs)
	return &Supervisor{
		Registers: regs,
		Registry:  registry,
		Linker:    linker,
		Processor: core.NewProcessor(regs, registry, linker),
		Logger:    logger,
	}
}

// Serve runs the request/response task: read one packet, process it under
// the shared lock, write the response. A partial frame
// (io.ErrUnexpectedEOF) is treated as recoverable and simply retried; any
// other read error, including io.EOF from a closed link, ends Serve and is
// returned — callers run it in its own goroutine and stop it by closing
// link.
//
// A decode/CRC failure drops the malformed frame and waits for the next
// one; the wire protocol has no negative-acknowledgement channel.
func (s *Supervisor) Serve(link protocol.ByteLink) error {
	tc := protocol.NewTransceiver(link)

	for {
		cmd, err := tc.ReadPacket()
		if err != nil {
			if isRecoverableReadError(err) {
				continue
			}
			return err
		}

		resp := s.handle(cmd)

		if err := tc.WritePacket(resp); err != nil {
			if s.Logger != nil {
				s.Logger.Printf("transport: write failed: %v", err)
			}
		}
	}
}

func (s *Supervisor) handle(cmd protocol.Packet) protocol.Packet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Processor.Process(cmd)
}

// RunLinker runs the tick task every TickInterval until stop is closed.
func (s *Supervisor) RunLinker(stop <-chan struct{}) {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Supervisor) tick() {
	defer func() {
		if r := recover(); r != nil && s.Logger != nil {
			s.Logger.Printf("transport: recovered panic in linker tick: %v", r)
		}
	}()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Linker.Tick()
}

func isRecoverableReadError(err error) bool {
	// A bad CRC, a short buffer, or a partial frame (e.g. a link timeout
	// mid-frame) just means this round produced nothing usable; the next
	// read attempt tries again rather than tearing down the link. Every
	// other error, including io.EOF from a closed link, propagates out of
	// Serve instead.
	switch err {
	case protocol.ErrCRCMismatch, protocol.ErrShortBuffer, io.ErrUnexpectedEOF:
		return true
	default:
		return false
	}
}
