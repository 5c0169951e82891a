package command

import "github.com/handegar/wm8731/base"

type InputSelect uint8

const (
	LineInput       InputSelect = iota // (0b)
	MicrophoneInput                    // (1b)
)

type DacSelect uint8

const (
	DacDeselect DacSelect = iota // (0b)
	DacSelected                  // (1b)
)

type AnalogueAudioPath struct {
	data uint16
}

func NewAnalogueAudioPath() AnalogueAudioPath {
	return AnalogueAudioPath{}
}

func (c AnalogueAudioPath) MicBoost() Flag[AnalogueAudioPath] {
	return flagOf(c, base.MicBoost)
}

func (c AnalogueAudioPath) MuteMic() Flag[AnalogueAudioPath] {
	return flagOf(c, base.MuteMic)
}

func (c AnalogueAudioPath) InputSelect() InputSelectField[AnalogueAudioPath] {
	return InputSelectField[AnalogueAudioPath]{flagOf(c, base.InSel)}
}

func (c AnalogueAudioPath) Bypass() Flag[AnalogueAudioPath] {
	return flagOf(c, base.Bypass)
}

func (c AnalogueAudioPath) DacSelect() DacSelectField[AnalogueAudioPath] {
	return DacSelectField[AnalogueAudioPath]{flagOf(c, base.DacSel)}
}

func (c AnalogueAudioPath) SideTone() Flag[AnalogueAudioPath] {
	return flagOf(c, base.SideTone)
}

func (c AnalogueAudioPath) SideToneAttenuation() SideToneAttenuationField[AnalogueAudioPath] {
	return SideToneAttenuationField[AnalogueAudioPath]{fieldOf(c, base.SideAtt)}
}

func (AnalogueAudioPath) register() base.RegisterID { return base.AnalogueAudioPath }

func (c AnalogueAudioPath) Frame() Frame {
	return frameOf(c)
}

type InputSelectField[R word] struct {
	Flag[R]
}

func (f InputSelectField[R]) Line() R {
	return f.ClearBit()
}

func (f InputSelectField[R]) Microphone() R {
	return f.SetBit()
}

func (f InputSelectField[R]) Variant(v InputSelect) R {
	return f.Bit(v == MicrophoneInput)
}

type DacSelectField[R word] struct {
	Flag[R]
}

func (f DacSelectField[R]) Select() R {
	return f.SetBit()
}

func (f DacSelectField[R]) Deselect() R {
	return f.ClearBit()
}

func (f DacSelectField[R]) Variant(v DacSelect) R {
	return f.Bit(v == DacSelected)
}
