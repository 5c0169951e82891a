package command

import "github.com/handegar/wm8731/base"

// ActiveControl starts and stops the digital audio interface.
type ActiveControl struct {
	data uint16
}

func NewActiveControl() ActiveControl {
	return ActiveControl{}
}

func (c ActiveControl) ActiveBit() Flag[ActiveControl] {
	return flagOf(c, base.Active)
}

func (c ActiveControl) Active() ActiveControl {
	return c.ActiveBit().SetBit()
}

func (c ActiveControl) Inactive() ActiveControl {
	return c.ActiveBit().ClearBit()
}

func (ActiveControl) register() base.RegisterID { return base.ActiveControl }

func (c ActiveControl) Frame() Frame {
	return frameOf(c)
}
