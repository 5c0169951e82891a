package command

import "testing"

type toggle struct {
	bit   uint
	reset Frame
	set   func() Frame
	clear func() Frame
}

func toggles() map[string]toggle {
	lin, rin := NewLeftLineIn(), NewRightLineIn()
	lhp, rhp := NewLeftHeadphoneOut(), NewRightHeadphoneOut()
	aap := NewAnalogueAudioPath()
	dap := NewDigitalAudioPath()
	pd := NewPowerDown()
	dai := NewDigitalAudioInterface()
	act := NewActiveControl()

	return map[string]toggle{
		"LeftLineIn.Mute":       {7, lin.Frame(), func() Frame { return lin.Mute().SetBit().Frame() }, func() Frame { return lin.Mute().ClearBit().Frame() }},
		"LeftLineIn.Both":       {8, lin.Frame(), func() Frame { return lin.Both().SetBit().Frame() }, func() Frame { return lin.Both().ClearBit().Frame() }},
		"RightLineIn.Mute":      {7, rin.Frame(), func() Frame { return rin.Mute().SetBit().Frame() }, func() Frame { return rin.Mute().ClearBit().Frame() }},
		"RightLineIn.Both":      {8, rin.Frame(), func() Frame { return rin.Both().SetBit().Frame() }, func() Frame { return rin.Both().ClearBit().Frame() }},
		"LeftHp.ZeroCross":      {7, lhp.Frame(), func() Frame { return lhp.ZeroCross().SetBit().Frame() }, func() Frame { return lhp.ZeroCross().ClearBit().Frame() }},
		"LeftHp.Both":           {8, lhp.Frame(), func() Frame { return lhp.Both().SetBit().Frame() }, func() Frame { return lhp.Both().ClearBit().Frame() }},
		"RightHp.ZeroCross":     {7, rhp.Frame(), func() Frame { return rhp.ZeroCross().SetBit().Frame() }, func() Frame { return rhp.ZeroCross().ClearBit().Frame() }},
		"RightHp.Both":          {8, rhp.Frame(), func() Frame { return rhp.Both().SetBit().Frame() }, func() Frame { return rhp.Both().ClearBit().Frame() }},
		"Analogue.MicBoost":     {0, aap.Frame(), func() Frame { return aap.MicBoost().SetBit().Frame() }, func() Frame { return aap.MicBoost().ClearBit().Frame() }},
		"Analogue.MuteMic":      {1, aap.Frame(), func() Frame { return aap.MuteMic().SetBit().Frame() }, func() Frame { return aap.MuteMic().ClearBit().Frame() }},
		"Analogue.InputSelect":  {2, aap.Frame(), func() Frame { return aap.InputSelect().Microphone().Frame() }, func() Frame { return aap.InputSelect().Line().Frame() }},
		"Analogue.Bypass":       {3, aap.Frame(), func() Frame { return aap.Bypass().SetBit().Frame() }, func() Frame { return aap.Bypass().ClearBit().Frame() }},
		"Analogue.DacSelect":    {4, aap.Frame(), func() Frame { return aap.DacSelect().Select().Frame() }, func() Frame { return aap.DacSelect().Deselect().Frame() }},
		"Analogue.SideTone":     {5, aap.Frame(), func() Frame { return aap.SideTone().SetBit().Frame() }, func() Frame { return aap.SideTone().ClearBit().Frame() }},
		"Digital.ADCHPD":        {0, dap.Frame(), func() Frame { return dap.ADCHighPassDisable().SetBit().Frame() }, func() Frame { return dap.ADCHighPassDisable().ClearBit().Frame() }},
		"Digital.DACMute":       {3, dap.Frame(), func() Frame { return dap.DACMute().SetBit().Frame() }, func() Frame { return dap.DACMute().ClearBit().Frame() }},
		"Digital.HPFilter":      {4, dap.Frame(), func() Frame { return dap.HPFilterOffset().Store().Frame() }, func() Frame { return dap.HPFilterOffset().Clear().Frame() }},
		"PowerDown.LineInPD":    {0, pd.Frame(), func() Frame { return pd.LineInPD().SetBit().Frame() }, func() Frame { return pd.LineInPD().ClearBit().Frame() }},
		"PowerDown.MicPD":       {1, pd.Frame(), func() Frame { return pd.MicPD().SetBit().Frame() }, func() Frame { return pd.MicPD().ClearBit().Frame() }},
		"PowerDown.ADCPD":       {2, pd.Frame(), func() Frame { return pd.ADCPD().SetBit().Frame() }, func() Frame { return pd.ADCPD().ClearBit().Frame() }},
		"PowerDown.DACPD":       {3, pd.Frame(), func() Frame { return pd.DACPD().SetBit().Frame() }, func() Frame { return pd.DACPD().ClearBit().Frame() }},
		"PowerDown.OutPD":       {4, pd.Frame(), func() Frame { return pd.OutPD().SetBit().Frame() }, func() Frame { return pd.OutPD().ClearBit().Frame() }},
		"PowerDown.OscPD":       {5, pd.Frame(), func() Frame { return pd.OscPD().SetBit().Frame() }, func() Frame { return pd.OscPD().ClearBit().Frame() }},
		"PowerDown.ClkOutPD":    {6, pd.Frame(), func() Frame { return pd.ClkOutPD().SetBit().Frame() }, func() Frame { return pd.ClkOutPD().ClearBit().Frame() }},
		"PowerDown.PowerOff":    {7, pd.Frame(), func() Frame { return pd.PowerOff().SetBit().Frame() }, func() Frame { return pd.PowerOff().ClearBit().Frame() }},
		"Interface.LRPhase":     {4, dai.Frame(), func() Frame { return dai.LRPhase().SetBit().Frame() }, func() Frame { return dai.LRPhase().ClearBit().Frame() }},
		"Interface.LRSwap":      {5, dai.Frame(), func() Frame { return dai.LRSwap().SetBit().Frame() }, func() Frame { return dai.LRSwap().ClearBit().Frame() }},
		"Interface.MasterSlave": {6, dai.Frame(), func() Frame { return dai.MasterSlave().Master().Frame() }, func() Frame { return dai.MasterSlave().Slave().Frame() }},
		"Interface.BCLKInvert":  {7, dai.Frame(), func() Frame { return dai.BCLKInvert().SetBit().Frame() }, func() Frame { return dai.BCLKInvert().ClearBit().Frame() }},
		"Active.Active":         {0, act.Frame(), func() Frame { return act.Active().Frame() }, func() Frame { return act.Inactive().Frame() }},
	}
}

func Test_TogglesOnlyTouchTheirBit(t *testing.T) {
	for name, tg := range toggles() {
		t.Run(name, func(t *testing.T) {
			mask := Frame(1) << tg.bit

			set := tg.set()
			if set&mask == 0 {
				t.Errorf("Bit %d not set. Got 0b%016b", tg.bit, set)
			}
			if set&^mask != tg.reset&^mask {
				t.Errorf("Other bits changed: 0b%016b -> 0b%016b", tg.reset, set)
			}

			cleared := tg.clear()
			if cleared&mask != 0 {
				t.Errorf("Bit %d not cleared. Got 0b%016b", tg.bit, cleared)
			}
			if cleared&^mask != tg.reset&^mask {
				t.Errorf("Other bits changed: 0b%016b -> 0b%016b", tg.reset, cleared)
			}
		})
	}
}

func Test_FlagAliases(t *testing.T) {
	pd := NewPowerDown()

	if pd.OutPD().Enable() != pd.OutPD().SetBit() {
		t.Errorf("Enable != SetBit")
	}
	if pd.OscPD().Disable() != pd.OscPD().ClearBit() {
		t.Errorf("Disable != ClearBit")
	}
	if pd.DACPD().Bit(true) != pd.DACPD().SetBit() {
		t.Errorf("Bit(true) != SetBit")
	}
	if pd.LineInPD().Bit(false) != pd.LineInPD().ClearBit() {
		t.Errorf("Bit(false) != ClearBit")
	}
}

func Test_Idempotence(t *testing.T) {
	once := NewPowerDown().MicPD().ClearBit()
	twice := once.MicPD().ClearBit()
	if once != twice {
		t.Errorf("ClearBit twice: 0b%b != 0b%b", once.Frame(), twice.Frame())
	}

	vol := NewLeftHeadphoneOut().Volume().Bits(0x55)
	again := vol.Volume().Bits(0x55)
	if vol != again {
		t.Errorf("Bits twice: 0b%b != 0b%b", vol.Frame(), again.Frame())
	}

	att := NewAnalogueAudioPath().SideToneAttenuation().DB(SideAttMinus12dB)
	if att.SideToneAttenuation().DB(SideAttMinus12dB) != att {
		t.Errorf("DB twice changed the frame")
	}
}

func Test_BitsMasks(t *testing.T) {
	t.Run("LineInRegression", func(t *testing.T) {
		in := NewRightLineIn()
		if in.Frame().Uint16() != 0b10_1001_0111 {
			t.Fatalf("Unexpected reset 0b%b", in.Frame())
		}
		got := in.Volume().Bits(0b1111_1111).Frame().Uint16()
		if got != 0b10_1001_1111 {
			t.Errorf("Expected 0b1010011111. Got 0b%b", got)
		}
	})

	t.Run("GenericFormula", func(t *testing.T) {
		old := NewDigitalAudioInterface()
		for _, v := range []uint16{0, 1, 2, 3, 4, 0xFF, 0xFFFF} {
			got := old.WordLength().Bits(v).Frame().Uint16()
			mask := uint16(0b11)
			expected := old.Frame().Uint16()&^(mask<<2) | (v&mask)<<2
			if got != expected {
				t.Errorf("Bits(%d): expected 0b%b. Got 0b%b", v, expected, got)
			}
		}
	})

	t.Run("NoSpill", func(t *testing.T) {
		got := NewAnalogueAudioPath().SideToneAttenuation().Bits(0xFFFF).Frame()
		// SIDEATT is bits 6..7; bit 8 is unused and must stay clear
		if got != 0x4<<9|0b0_1100_1010 {
			t.Errorf("Got 0b%b", got)
		}
	})
}

func Test_EnumeratedFields(t *testing.T) {
	frames := map[string]struct {
		got      Frame
		expected Frame
	}{
		"Format.DSP":           {NewDigitalAudioInterface().Format().DSP().Frame(), 0x0E0B},
		"Format.Right":         {NewDigitalAudioInterface().Format().RightJustified().Frame(), 0x0E08},
		"Format.Left":          {NewDigitalAudioInterface().Format().LeftJustified().Frame(), 0x0E09},
		"Format.I2S":           {NewDigitalAudioInterface().Format().Variant(I2S).Frame(), 0x0E0A},
		"WordLength.16":        {NewDigitalAudioInterface().WordLength().Bits16().Frame(), 0x0E02},
		"WordLength.20":        {NewDigitalAudioInterface().WordLength().Bits20().Frame(), 0x0E06},
		"WordLength.32":        {NewDigitalAudioInterface().WordLength().Variant(WordLength32).Frame(), 0x0E0E},
		"MasterSlave.Master":   {NewDigitalAudioInterface().MasterSlave().Variant(Master).Frame(), 0x0E4A},
		"DeEmphasis.48k":       {NewDigitalAudioPath().DeEmphasis().At48k().Frame(), 0x0A0E},
		"DeEmphasis.44k1":      {NewDigitalAudioPath().DeEmphasis().At44k1().Frame(), 0x0A0C},
		"DeEmphasis.32k":       {NewDigitalAudioPath().DeEmphasis().At32k().Frame(), 0x0A0A},
		"DeEmphasis.Off":       {NewDigitalAudioPath().DeEmphasis().At48k().DeEmphasis().Off().Frame(), 0x0A08},
		"InputSelect.Mic":      {NewAnalogueAudioPath().InputSelect().Variant(MicrophoneInput).Frame(), 0x080E},
		"DacSelect.Selected":   {NewAnalogueAudioPath().DacSelect().Variant(DacSelected).Frame(), 0x081A},
		"HPFilterOffset.Store": {NewDigitalAudioPath().HPFilterOffset().Variant(StoreOffset).Frame(), 0x0A18},
	}

	for name, f := range frames {
		t.Run(name, func(t *testing.T) {
			if f.got != f.expected {
				t.Errorf("Expected 0x%04X. Got 0x%04X", uint16(f.expected), uint16(f.got))
			}
		})
	}
}

func Test_WordLengthBits(t *testing.T) {
	for wl, bits := range map[WordLength]int{WordLength16: 16, WordLength20: 20, WordLength24: 24, WordLength32: 32} {
		if wl.Bits() != bits {
			t.Errorf("%d: expected %d bits. Got %d", wl, bits, wl.Bits())
		}
	}
}
