package command

import "github.com/handegar/wm8731/base"

type Format uint8

const (
	RightJustified Format = iota // (00b)
	LeftJustified                // (01b)
	I2S                          // (10b)
	DSP                          // (11b)
)

type WordLength uint8

const (
	WordLength16 WordLength = iota // (00b)
	WordLength20                   // (01b)
	WordLength24                   // (10b)
	WordLength32                   // (11b)
)

// Bits returns the sample width in bits.
func (w WordLength) Bits() int {
	return [...]int{16, 20, 24, 32}[w&0b11]
}

type MasterSlave uint8

const (
	Slave  MasterSlave = iota // (0b)
	Master                    // (1b)
)

type DigitalAudioInterface struct {
	data uint16
}

func NewDigitalAudioInterface() DigitalAudioInterface {
	return DigitalAudioInterface{}
}

func (c DigitalAudioInterface) Format() FormatField[DigitalAudioInterface] {
	return FormatField[DigitalAudioInterface]{fieldOf(c, base.Format)}
}

func (c DigitalAudioInterface) WordLength() WordLengthField[DigitalAudioInterface] {
	return WordLengthField[DigitalAudioInterface]{fieldOf(c, base.WordLength)}
}

func (c DigitalAudioInterface) LRPhase() Flag[DigitalAudioInterface] {
	return flagOf(c, base.LRPhase)
}

func (c DigitalAudioInterface) LRSwap() Flag[DigitalAudioInterface] {
	return flagOf(c, base.LRSwap)
}

func (c DigitalAudioInterface) MasterSlave() MasterSlaveField[DigitalAudioInterface] {
	return MasterSlaveField[DigitalAudioInterface]{flagOf(c, base.MasterMode)}
}

func (c DigitalAudioInterface) BCLKInvert() Flag[DigitalAudioInterface] {
	return flagOf(c, base.BCLKInvert)
}

func (DigitalAudioInterface) register() base.RegisterID { return base.DigitalAudioInterface }

func (c DigitalAudioInterface) Frame() Frame {
	return frameOf(c)
}

type FormatField[R word] struct {
	Field[R]
}

func (f FormatField[R]) RightJustified() R {
	return f.Variant(RightJustified)
}

func (f FormatField[R]) LeftJustified() R {
	return f.Variant(LeftJustified)
}

func (f FormatField[R]) I2S() R {
	return f.Variant(I2S)
}

func (f FormatField[R]) DSP() R {
	return f.Variant(DSP)
}

func (f FormatField[R]) Variant(v Format) R {
	return f.Bits(uint16(v))
}

type WordLengthField[R word] struct {
	Field[R]
}

func (f WordLengthField[R]) Bits16() R {
	return f.Variant(WordLength16)
}

func (f WordLengthField[R]) Bits20() R {
	return f.Variant(WordLength20)
}

func (f WordLengthField[R]) Bits24() R {
	return f.Variant(WordLength24)
}

func (f WordLengthField[R]) Bits32() R {
	return f.Variant(WordLength32)
}

func (f WordLengthField[R]) Variant(v WordLength) R {
	return f.Bits(uint16(v))
}

type MasterSlaveField[R word] struct {
	Flag[R]
}

func (f MasterSlaveField[R]) Master() R {
	return f.SetBit()
}

func (f MasterSlaveField[R]) Slave() R {
	return f.ClearBit()
}

func (f MasterSlaveField[R]) Variant(v MasterSlave) R {
	return f.Bit(v == Master)
}
