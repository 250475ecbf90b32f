package miim

// MMD (MDIO Manageable Device) indirect register access, reaching the
// Clause 45 register space (5-bit device address, 16-bit register address)
// through the two Clause 22 registers 13 and 14.
// Reference: IEEE 802.3 Clause 22.2.4.3

const (
	AddrMMDControl = 0x0D // MMD access control register.
	AddrMMDData    = 0x0E // MMD access address/data register.
)

// MMD control register function codes, occupying the top two bits. Only the
// address and no-post-increment data functions are used here; the
// post-increment variants exist for burst access, which this package never
// performs.
const (
	mmdFnAddress       uint16 = 0b00 << 14
	mmdFnData          uint16 = 0b01 << 14
	mmdFnDataPostIncRW uint16 = 0b10 << 14
	mmdFnDataPostIncW  uint16 = 0b11 << 14

	mmdDevAddrMask uint16 = 0x1F
)

// mmdControlWord combines a function code with a device address. The device
// address is masked to 5 bits, matching the width of the field in hardware;
// out-of-range input wraps rather than erroring.
func mmdControlWord(fn uint16, devAddr uint8) uint16 {
	return fn | uint16(devAddr)&mmdDevAddrMask
}

// MMDRead reads register regAddr of the MMD at devAddr.
//
// The access is the standard four-step indirect sequence: set the address
// function and device address, write the target register address, switch to
// the data function, then exchange the data. The steps must run back to back
// in this order against the same device; the device's current-address state
// is global per device, so interleaved access from another caller corrupts
// the sequence (serialize externally).
func (d *Device) MMDRead(devAddr uint8, regAddr uint16) uint16 {
	d.Write(AddrMMDControl, mmdControlWord(mmdFnAddress, devAddr))
	d.Write(AddrMMDData, regAddr)
	d.Write(AddrMMDControl, mmdControlWord(mmdFnData, devAddr))
	return d.Read(AddrMMDData)
}

// MMDWrite writes value to register regAddr of the MMD at devAddr.
// Same sequencing contract as MMDRead.
func (d *Device) MMDWrite(devAddr uint8, regAddr uint16, value uint16) {
	d.Write(AddrMMDControl, mmdControlWord(mmdFnAddress, devAddr))
	d.Write(AddrMMDData, regAddr)
	d.Write(AddrMMDControl, mmdControlWord(mmdFnData, devAddr))
	d.Write(AddrMMDData, value)
}
