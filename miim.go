// Package miim provides management access to IEEE 802.3 Ethernet PHYs
// (physical layer transceivers) over the two-wire MII management interface,
// also known as MDIO or SMI. It models the standard Clause 22 register set
// as typed 16-bit register views, translates autonegotiation advertisements
// between their wire encoding and a structured description, and implements
// the Clause 45-over-Clause 22 indirect (MMD) register access protocol.
//
// The package performs no bus I/O itself. All register traffic goes through
// a Miim implementation supplied by the platform: a MAC peripheral's MDIO
// engine, a bit-banged pin pair (see BitBang), or an operating system
// facility (see the miimlinux package).
package miim

// Add more stringers in linecomment mode by adding them to type flag (comma separated).
//go:generate stringer -type=LinkSpeed,LinkMode,SelectorField,Pause,errReg -linecomment -output miim_stringers.go

// Miim is a HAL for MII management (MDIO) bus access to Clause 22 PHYs.
// Read and Write move a single 16-bit register addressed by the 5-bit PHY
// station address and 5-bit register address.
//
// Implementations perform no interpretation of register contents. Transport
// faults (no PHY at the address, bus timeout) are the implementation's
// concern; Read must always return a value, and 0xFFFF is what a real bus
// returns when nothing drives the data line. Retries, if any, belong in the
// implementation, never in callers.
//
// The bus is a shared resource. Multi-step sequences performed by this
// package (indirect MMD access, read-modify-write of a register) assume
// exclusive access to the bus for their duration; concurrent callers must
// serialize externally.
type Miim interface {
	// Read reads a 16-bit register from the PHY at phyAddr.
	Read(phyAddr, regAddr uint8) uint16
	// Write writes a 16-bit value to a register of the PHY at phyAddr.
	Write(phyAddr, regAddr uint8, data uint16)
}

// FindPHYs probes every station address on the bus and appends the
// addresses that answer to dst. The probe reads the BSR: the standard
// fixes some of its bits as zero and others follow from mandatory
// capabilities, so an all-zero or all-one pattern means nothing is there.
func FindPHYs(bus Miim, dst []uint8) []uint8 {
	for addr := uint8(0); addr <= 31; addr++ {
		bsr := bus.Read(addr, AddrBSR)
		if bsr != 0x0000 && bsr != 0xFFFF {
			dst = append(dst, addr)
		}
	}
	return dst
}

// Registers 0..15 as defined by IEEE 802.3 Clause 22.2.4.
const (
	AddrBCR      = 0x00 // Basic Control Register.
	AddrBSR      = 0x01 // Basic Status Register.
	AddrPHYID1   = 0x02 // PHY Identifier 1 (OUI bits 3-18).
	AddrPHYID2   = 0x03 // PHY Identifier 2 (OUI bits 19-24, model, revision).
	AddrANAR     = 0x04 // Auto-Negotiation Advertisement Register.
	AddrANLPAR   = 0x05 // Auto-Negotiation Link Partner Ability Register.
	AddrANER     = 0x06 // Auto-Negotiation Expansion Register.
	AddrNextPage = 0x07 // Auto-Negotiation Next Page Transmit Register.
	AddrESR      = 0x0F // Extended Status Register.
)
