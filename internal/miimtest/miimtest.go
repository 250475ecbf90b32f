// Package miimtest provides in-memory MII management bus doubles for
// driver tests. The Bus records every register access in order so tests can
// assert on exact protocol sequences, not just end state.
package miimtest

// Access is one recorded bus operation.
type Access struct {
	// Write is true for a write operation, false for a read.
	Write bool
	// Phy is the station address the operation targeted.
	Phy uint8
	// Reg is the register address the operation targeted.
	Reg uint8
	// Value is the value written, or the value returned by the read.
	Value uint16
}

// Bus is an in-memory Miim implementation backed by a 32x32 register file.
// The zero value is ready to use with all registers zero.
type Bus struct {
	regs   [32][32]uint16
	absent [32]bool
	trace  []Access
	onRead func(phy, reg uint8, current uint16) uint16
}

// Set stores a register value without recording an access. Use it to stage
// the PHY state a test starts from.
func (b *Bus) Set(phy, reg uint8, value uint16) {
	b.regs[phy&31][reg&31] = value
}

// Get returns a register value without recording an access.
func (b *Bus) Get(phy, reg uint8) uint16 {
	return b.regs[phy&31][reg&31]
}

// SetAbsent marks a station address as having no PHY attached. Reads of an
// absent address return 0xFFFF, the undriven-line value.
func (b *Bus) SetAbsent(phy uint8, absent bool) {
	b.absent[phy&31] = absent
}

// OnRead installs a hook consulted on every read. The hook receives the
// stored register value and its return value is both stored back and
// returned to the reader, which lets tests model self-clearing bits.
func (b *Bus) OnRead(f func(phy, reg uint8, current uint16) uint16) {
	b.onRead = f
}

// Read implements miim.Miim.
func (b *Bus) Read(phy, reg uint8) uint16 {
	value := b.regs[phy&31][reg&31]
	if b.absent[phy&31] {
		value = 0xFFFF
	} else if b.onRead != nil {
		value = b.onRead(phy, reg, value)
		b.regs[phy&31][reg&31] = value
	}
	b.trace = append(b.trace, Access{Write: false, Phy: phy, Reg: reg, Value: value})
	return value
}

// Write implements miim.Miim.
func (b *Bus) Write(phy, reg uint8, value uint16) {
	b.regs[phy&31][reg&31] = value
	b.trace = append(b.trace, Access{Write: true, Phy: phy, Reg: reg, Value: value})
}

// Trace returns all recorded accesses in order.
func (b *Bus) Trace() []Access {
	return b.trace
}

// Writes returns only the recorded write accesses, in order.
func (b *Bus) Writes() []Access {
	var w []Access
	for _, a := range b.trace {
		if a.Write {
			w = append(w, a)
		}
	}
	return w
}

// ClearTrace discards the recorded accesses, keeping register contents.
func (b *Bus) ClearTrace() {
	b.trace = b.trace[:0]
}
