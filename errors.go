package miim

type errReg uint8

// Errors returned when decoding register contents. These indicate malformed
// register values read off the bus, not programmer mistakes: a wiring fault
// or absent PHY produces patterns that must surface to the caller instead of
// being coerced to a default.
const (
	_                   errReg = iota // non-initialized err
	ErrInvalidSelector                // unrecognized selector field
	ErrIllegalLinkSpeed               // reserved speed selector combination
	ErrInvalidPHYAddr                 // PHY address exceeds 5 bits
	ErrInvalidConfig                  // invalid device configuration
)

func (err errReg) Error() string {
	return err.String()
}
