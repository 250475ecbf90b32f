package miim

var _ Miim = (*BitBang)(nil) // compile time guarantee of interface implementation.

const (
	bbOpWrite = 0b01
	bbOpRead  = 0b10
)

// BitBang is a software defined MDIO/MDC management interface for PHY
// register access as the management station. Extended registers are reached
// through the MMD indirect protocol (Device.MMDRead/MMDWrite), so only
// Clause 22 framing is produced here.
// Inspired by linux/v3.13.1/source/drivers/net/phy/mdio-bitbang.c
//
// The three callbacks drive the two wires. MDC is the clock line, MDIO the
// data line. A TinyGo oriented HAL example:
//
//	const mdioDelay = 340 * time.Nanosecond // MDIO spec max turnaround time
//	pinMDC.Configure(machine.PinConfig{Mode: machine.PinOutput})
//	pinMDC.Low()
//	var bus miim.BitBang
//	bus.Configure(func(outBit bool) {
//		// sendBit: set data, clock high, clock low
//		if outBit {
//			pinMDIO.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
//		} else {
//			pinMDIO.Low()
//			pinMDIO.Configure(machine.PinConfig{Mode: machine.PinOutput})
//		}
//		time.Sleep(mdioDelay)
//		pinMDC.High()
//		time.Sleep(mdioDelay)
//		pinMDC.Low()
//	}, func() (inBit bool) {
//		// getBit: clock high, read, clock low
//		time.Sleep(mdioDelay)
//		pinMDC.High()
//		time.Sleep(mdioDelay)
//		pinMDC.Low()
//		return pinMDIO.Get()
//	}, func(setOut bool) {
//		// setDir: configure data pin direction
//		if setOut {
//			pinMDIO.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
//		} else {
//			pinMDIO.Configure(machine.PinConfig{Mode: machine.PinInput})
//		}
//	})
type BitBang struct {
	_sendBit func(bit bool)
	_getBit  func() (inputBit bool)
	_setDir  func(output bool)
}

// Configure initializes the bit-bang interface with the given pin control
// callbacks.
func (m *BitBang) Configure(sendBit func(bit bool), getBit func() bool, setDir func(setOut bool)) {
	if sendBit == nil || getBit == nil || setDir == nil {
		panic("nil callback")
	}
	m._sendBit = sendBit
	m._getBit = getBit
	m._setDir = setDir
	// setting direction to output releases the bus.
	m.setDir(true)
}

// Read reads a PHY register using Clause 22 framing. If the PHY does not
// drive the turnaround bit low (nothing present at phyAddr), the read
// returns 0xFFFF, which is what the undriven line yields on real hardware.
func (m *BitBang) Read(phyAddr, regAddr uint8) uint16 {
	m.cmd(bbOpRead, phyAddr, regAddr)
	m.setDir(false)
	// Turnaround: PHY drives the first cycle low.
	if m.getBit() {
		// No PHY answered. Flush the frame so the bus returns to idle.
		for i := 0; i < 32; i++ {
			m.getBit()
		}
		return 0xFFFF
	}
	value := m.getNum(16)
	m.getBit()
	return value
}

// Write writes a value to a PHY register using Clause 22 framing.
func (m *BitBang) Write(phyAddr, regAddr uint8, value uint16) {
	m.cmd(bbOpWrite, phyAddr, regAddr)
	// Turnaround: station drives 10.
	m.sendBit(true)
	m.sendBit(false)
	m.sendNum(value, 16)
	m.setDir(false)
	m.getBit()
}

// cmd sends the frame header: preamble, start of frame, opcode, PHY address
// and register address.
func (m *BitBang) cmd(op uint8, phy, reg uint8) {
	m.setDir(true)
	// Preamble, 32 bits of 1.
	for i := 0; i < 32; i++ {
		m.sendBit(true)
	}
	// Start of frame: 01.
	m.sendBit(false)
	m.sendBit(true)
	m.sendBit((op>>1)&1 != 0)
	m.sendBit(op&1 != 0)
	m.sendNum(uint16(phy), 5)
	m.sendNum(uint16(reg), 5)
}

func (m *BitBang) sendNum(val uint16, bits int) {
	for i := bits - 1; i >= 0; i-- {
		m.sendBit((val>>i)&1 != 0)
	}
}

func (m *BitBang) getNum(bits int) (ret uint16) {
	for i := 0; i < bits; i++ {
		ret <<= 1
		if m.getBit() {
			ret |= 1
		}
	}
	return ret
}

func (m *BitBang) setDir(outWrite bool) { m._setDir(outWrite) }
func (m *BitBang) sendBit(b bool)       { m._sendBit(b) }
func (m *BitBang) getBit() bool         { return m._getBit() }
