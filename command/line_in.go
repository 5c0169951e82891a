package command

import "github.com/handegar/wm8731/base"

// Channel tags for the paired left/right registers
type Left struct{}
type Right struct{}

type Channel interface {
	Left | Right
}

// LineIn is the line input volume register of one channel (R0/R1).
type LineIn[C Channel] struct {
	data uint16
}

func NewLeftLineIn() LineIn[Left] {
	return LineIn[Left]{}
}

func NewRightLineIn() LineIn[Right] {
	return LineIn[Right]{}
}

func (c LineIn[C]) Volume() LineInVolumeField[LineIn[C]] {
	return LineInVolumeField[LineIn[C]]{fieldOf(c, base.LineInVolume)}
}

func (c LineIn[C]) Mute() Flag[LineIn[C]] {
	return flagOf(c, base.LineInMute)
}

// Both loads this channel's volume and mute into the other channel too.
func (c LineIn[C]) Both() Flag[LineIn[C]] {
	return flagOf(c, base.LineInBoth)
}

func (LineIn[C]) register() base.RegisterID {
	return pick[C](base.LeftLineIn, base.RightLineIn)
}

func (c LineIn[C]) Frame() Frame {
	return frameOf(c)
}
