package command

import "github.com/handegar/wm8731/base"

// PowerDown gates the codec blocks. A set bit powers the block down.
type PowerDown struct {
	data uint16
}

func NewPowerDown() PowerDown {
	return PowerDown{}
}

func (c PowerDown) LineInPD() Flag[PowerDown] {
	return flagOf(c, base.LineInPD)
}

func (c PowerDown) MicPD() Flag[PowerDown] {
	return flagOf(c, base.MicPD)
}

func (c PowerDown) ADCPD() Flag[PowerDown] {
	return flagOf(c, base.ADCPD)
}

func (c PowerDown) DACPD() Flag[PowerDown] {
	return flagOf(c, base.DACPD)
}

func (c PowerDown) OutPD() Flag[PowerDown] {
	return flagOf(c, base.OutPD)
}

func (c PowerDown) OscPD() Flag[PowerDown] {
	return flagOf(c, base.OscPD)
}

func (c PowerDown) ClkOutPD() Flag[PowerDown] {
	return flagOf(c, base.ClkOutPD)
}

func (c PowerDown) PowerOff() Flag[PowerDown] {
	return flagOf(c, base.PowerOff)
}

func (PowerDown) register() base.RegisterID { return base.PowerDown }

func (c PowerDown) Frame() Frame {
	return frameOf(c)
}
