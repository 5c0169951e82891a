package base

// Field kinds, used when decoding a payload
const (
	Flag int = iota // Single bit toggle
	UInt            // Raw unsigned value
	Enum            // Enumerated value with named codes
	Volume          // dB step table
	Blank           // Not used by the chip
)

const (
	AddressBits = 7
	PayloadBits = 9
	AddressMask = 0b1111111
	PayloadMask = 0b111111111
)

type Field struct {
	Name   string
	Offset uint // Bit position of the LSB within the payload
	Len    uint // Length of field (in bits)
	Kind   int
}

// Bits returns a mask of the lower Len bits.
func (f Field) Bits() uint16 {
	return uint16(1)<<f.Len - 1
}

// Mask returns the field mask already shifted into position.
func (f Field) Mask() uint16 {
	return f.Bits() << f.Offset
}

// Extract returns the field value from a payload (or a whole frame).
func (f Field) Extract(payload uint16) uint16 {
	return (payload >> f.Offset) & f.Bits()
}

type Register struct {
	Name    string
	Address uint8  // 7 bits
	Reset   uint16 // Power-on payload (9 bits)
	Fields  []Field
}

// Word returns the packed 16-bit frame for the register reset state.
func (r Register) Word() uint16 {
	return uint16(r.Address&AddressMask)<<PayloadBits | r.Reset&PayloadMask
}
