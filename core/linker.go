package core

// Linker binds hardware IDs to register addresses and moves data between
// them on every tick: a hardware-id→register map, a register→hardware-ids
// reverse index, and a per-hardware is_input flag, with Tick split into an
// inputs phase (hardware to registers) followed by an outputs phase
// (registers to hardware).
type Linker struct {
	hwToRegister map[uint32]uint16
	registerToHw map[uint16]map[uint32]struct{}
	isInput      map[uint32]bool

	registry *Registry
	regs     *RegisterFile
}

// NewLinker returns a Linker with no links, reading from and writing to the
// given Registry and RegisterFile on every Tick.
func NewLinker(registry *Registry, regs *RegisterFile) *Linker {
	return &Linker{
		hwToRegister: make(map[uint32]uint16),
		registerToHw: make(map[uint16]map[uint32]struct{}),
		isInput:      make(map[uint32]bool),
		registry:     registry,
		regs:         regs,
	}
}

// CreateLink binds hwID to registerAddr. hwID must already exist in the
// Registry and registerAddr must be in range; otherwise CreateLink returns
// false and nothing changes. An existing link for hwID is replaced.
func (l *Linker) CreateLink(hwID uint32, registerAddr uint16, isInput bool) bool {
	if !l.registry.Exists(hwID) || registerAddr >= RegisterCount {
		return false
	}

	if l.LinkExists(hwID) {
		l.RemoveLink(hwID)
	}

	l.hwToRegister[hwID] = registerAddr
	if l.registerToHw[registerAddr] == nil {
		l.registerToHw[registerAddr] = make(map[uint32]struct{})
	}
	l.registerToHw[registerAddr][hwID] = struct{}{}
	l.isInput[hwID] = isInput
	return true
}

// RemoveLink breaks the link for hwID. Reports whether a link existed.
func (l *Linker) RemoveLink(hwID uint32) bool {
	addr, ok := l.hwToRegister[hwID]
	if !ok {
		return false
	}

	delete(l.hwToRegister, hwID)
	delete(l.isInput, hwID)

	set := l.registerToHw[addr]
	delete(set, hwID)
	if len(set) == 0 {
		delete(l.registerToHw, addr)
	}
	return true
}

// LinkExists reports whether hwID currently has a link.
func (l *Linker) LinkExists(hwID uint32) bool {
	_, ok := l.hwToRegister[hwID]
	return ok
}

// LinkedRegister returns the register address hwID is linked to, or 0 if no
// link exists — callers must check LinkExists first if 0 is a meaningful
// register address in their context.
func (l *Linker) LinkedRegister(hwID uint32) uint16 {
	return l.hwToRegister[hwID]
}

// IsInput reports whether hwID is linked as an input. Defaults to false
// (output) if hwID has no link.
func (l *Linker) IsInput(hwID uint32) bool {
	return l.isInput[hwID]
}

// LinkCount returns the number of active links.
func (l *Linker) LinkCount() int {
	return len(l.hwToRegister)
}

// ClearAllLinks removes every link without touching the Registry or
// RegisterFile contents.
func (l *Linker) ClearAllLinks() {
	l.hwToRegister = make(map[uint32]uint16)
	l.registerToHw = make(map[uint16]map[uint32]struct{})
	l.isInput = make(map[uint32]bool)
}

// Tick runs one inputs-then-outputs pass over every link. Idempotent: a Tick
// with no hardware state change leaves register contents unchanged.
func (l *Linker) Tick() {
	l.processInputs()
	l.processOutputs()
}

func (l *Linker) processInputs() {
	for hwID, addr := range l.hwToRegister {
		if !l.isInput[hwID] {
			continue
		}

		switch l.registry.Kind(hwID) {
		case KindGPIO:
			g := l.registry.GetGPIO(hwID)
			if g == nil {
				continue
			}
			switch g.Mode() {
			case DigitalInput, InputPullup, InputPulldown:
				v, err := g.DigitalRead()
				if err != nil {
					continue
				}
				if v {
					l.regs.Write(addr, 1)
				} else {
					l.regs.Write(addr, 0)
				}
			case AnalogRead:
				v, err := g.AnalogRead()
				if err != nil {
					v = -1
				}
				l.regs.Write(addr, clampToRegister(v))
			}
		case KindDAC:
			// DACs are output-only in this system; an input-linked DAC ID
			// contributes nothing on the inputs phase.
		}
	}
}

func (l *Linker) processOutputs() {
	for hwID, addr := range l.hwToRegister {
		if l.isInput[hwID] {
			continue
		}

		value := l.regs.Read(addr)

		switch l.registry.Kind(hwID) {
		case KindGPIO:
			g := l.registry.GetGPIO(hwID)
			if g == nil {
				continue
			}
			switch g.Mode() {
			case DigitalOutput:
				_ = g.DigitalWrite(value != 0)
			case Pwm:
				pwm := value
				if pwm > 1023 {
					pwm = 1023
				}
				_ = g.WritePWM(uint32(pwm))
			}
		case KindDAC:
			d := l.registry.GetDAC(hwID)
			if d == nil {
				continue
			}
			_ = d.WriteRaw(value)
		}
	}
}

func clampToRegister(v int32) uint16 {
	if v < 0 {
		return 0
	}
	if v > 65535 {
		return 65535
	}
	return uint16(v)
}
