package command

import "github.com/handegar/wm8731/base"

// HeadphoneOut is the headphone output volume register of one channel
// (R2/R3).
type HeadphoneOut[C Channel] struct {
	data uint16
}

func NewLeftHeadphoneOut() HeadphoneOut[Left] {
	return HeadphoneOut[Left]{}
}

func NewRightHeadphoneOut() HeadphoneOut[Right] {
	return HeadphoneOut[Right]{}
}

func (c HeadphoneOut[C]) Volume() HeadphoneVolumeField[HeadphoneOut[C]] {
	return HeadphoneVolumeField[HeadphoneOut[C]]{fieldOf(c, base.HeadphoneVolume)}
}

// ZeroCross delays volume changes until the signal crosses zero.
func (c HeadphoneOut[C]) ZeroCross() Flag[HeadphoneOut[C]] {
	return flagOf(c, base.HeadphoneZeroCross)
}

func (c HeadphoneOut[C]) Both() Flag[HeadphoneOut[C]] {
	return flagOf(c, base.HeadphoneBoth)
}

func (HeadphoneOut[C]) register() base.RegisterID {
	return pick[C](base.LeftHeadphoneOut, base.RightHeadphoneOut)
}

func (c HeadphoneOut[C]) Frame() Frame {
	return frameOf(c)
}
