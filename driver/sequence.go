package driver

import (
	"github.com/handegar/wm8731/command"
)

// Sequence returns the frames that bring the codec from reset to an active
// interface: everything but the output stage is powered first and the
// outputs come up last to avoid pops.
func Sequence(cfg Config) ([]command.Frame, error) {
	rate, err := cfg.rate()
	if err != nil {
		return nil, err
	}

	mic := cfg.Input == command.MicrophoneInput || cfg.SideTone
	lineMuted := mic && !cfg.Bypass

	power := command.NewPowerDown().
		LineInPD().Bit(lineMuted).
		MicPD().Bit(!mic).
		ADCPD().ClearBit().
		DACPD().ClearBit().
		OutPD().SetBit().
		OscPD().ClearBit().
		ClkOutPD().ClearBit().
		PowerOff().ClearBit()

	frames := []command.Frame{
		command.NewReset().Frame(),
		power.Frame(),
		command.NewLeftLineIn().Volume().DB(cfg.LineIn).Mute().Bit(lineMuted).Frame(),
		command.NewRightLineIn().Volume().DB(cfg.LineIn).Mute().Bit(lineMuted).Frame(),
		command.NewLeftHeadphoneOut().Volume().DB(cfg.Headphone).Frame(),
		command.NewRightHeadphoneOut().Volume().DB(cfg.Headphone).Frame(),
		command.NewAnalogueAudioPath().
			InputSelect().Variant(cfg.Input).
			MuteMic().Bit(!mic).
			MicBoost().Bit(cfg.MicBoost).
			Bypass().Bit(cfg.Bypass).
			SideTone().Bit(cfg.SideTone).
			DacSelect().Select().
			Frame(),
		command.NewDigitalAudioPath().
			ADCHighPassDisable().Bit(!cfg.HighPass).
			DeEmphasis().Variant(cfg.DeEmphasis).
			DACMute().ClearBit().
			Frame(),
		command.NewDigitalAudioInterface().
			Format().Variant(cfg.Format).
			WordLength().Variant(cfg.WordLength).
			MasterSlave().Bit(cfg.Master).
			Frame(),
		rate.frame,
		command.NewActiveControl().Active().Frame(),
		power.OutPD().ClearBit().Frame(),
	}
	return frames, nil
}

// ShutdownSequence stops the interface and powers the device off, outputs
// first.
func ShutdownSequence() []command.Frame {
	outputsOff := command.NewPowerDown().
		LineInPD().ClearBit().
		MicPD().ClearBit().
		ADCPD().ClearBit().
		DACPD().ClearBit().
		OutPD().SetBit().
		PowerOff().ClearBit()
	allOff := outputsOff.
		LineInPD().SetBit().
		MicPD().SetBit().
		ADCPD().SetBit().
		DACPD().SetBit().
		OscPD().SetBit().
		ClkOutPD().SetBit().
		PowerOff().SetBit()

	return []command.Frame{
		command.NewDigitalAudioPath().DACMute().SetBit().Frame(),
		outputsOff.Frame(),
		command.NewActiveControl().Inactive().Frame(),
		allOff.Frame(),
	}
}
