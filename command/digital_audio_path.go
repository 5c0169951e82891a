package command

import "github.com/handegar/wm8731/base"

type DeEmphasis uint8

const (
	DeEmphasisOff  DeEmphasis = iota // (00b)
	DeEmphasis32k                    // (01b)
	DeEmphasis44k1                   // (10b)
	DeEmphasis48k                    // (11b)
)

type HPFilterOffset uint8

const (
	ClearOffset HPFilterOffset = iota // (0b)
	StoreOffset                       // (1b)
)

type DigitalAudioPath struct {
	data uint16
}

func NewDigitalAudioPath() DigitalAudioPath {
	return DigitalAudioPath{}
}

func (c DigitalAudioPath) ADCHighPassDisable() Flag[DigitalAudioPath] {
	return flagOf(c, base.ADCHighPassDisable)
}

func (c DigitalAudioPath) DeEmphasis() DeEmphasisField[DigitalAudioPath] {
	return DeEmphasisField[DigitalAudioPath]{fieldOf(c, base.DeEmphasis)}
}

// DACMute is a soft mute of the DAC output.
func (c DigitalAudioPath) DACMute() Flag[DigitalAudioPath] {
	return flagOf(c, base.DACMute)
}

func (c DigitalAudioPath) HPFilterOffset() HPFilterOffsetField[DigitalAudioPath] {
	return HPFilterOffsetField[DigitalAudioPath]{flagOf(c, base.HPFilterOffset)}
}

func (DigitalAudioPath) register() base.RegisterID { return base.DigitalAudioPath }

func (c DigitalAudioPath) Frame() Frame {
	return frameOf(c)
}

type DeEmphasisField[R word] struct {
	Field[R]
}

func (f DeEmphasisField[R]) Off() R {
	return f.Variant(DeEmphasisOff)
}

func (f DeEmphasisField[R]) At32k() R {
	return f.Variant(DeEmphasis32k)
}

func (f DeEmphasisField[R]) At44k1() R {
	return f.Variant(DeEmphasis44k1)
}

func (f DeEmphasisField[R]) At48k() R {
	return f.Variant(DeEmphasis48k)
}

func (f DeEmphasisField[R]) Variant(v DeEmphasis) R {
	return f.Bits(uint16(v))
}

type HPFilterOffsetField[R word] struct {
	Flag[R]
}

func (f HPFilterOffsetField[R]) Clear() R {
	return f.ClearBit()
}

func (f HPFilterOffsetField[R]) Store() R {
	return f.SetBit()
}

func (f HPFilterOffsetField[R]) Variant(v HPFilterOffset) R {
	return f.Bit(v == StoreOffset)
}
