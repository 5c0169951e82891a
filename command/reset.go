package command

import "github.com/handegar/wm8731/base"

// Reset writes the reset trigger. It has no fields.
type Reset struct {
	data uint16
}

func NewReset() Reset {
	return Reset{}
}

func (Reset) register() base.RegisterID { return base.Reset }

func (c Reset) Frame() Frame {
	return frameOf(c)
}
