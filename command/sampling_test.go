package command

import "testing"

func Test_SamplingNormalMode(t *testing.T) {
	s := SelectMode(NewSampling()).Normal()
	got := Finalize(NormalSR(s).SR1000())
	if got != 0x8<<9|0b10_0000 {
		t.Errorf("Expected 0b%b. Got 0b%b", 0x8<<9|0b10_0000, got)
	}

	// BOSR does not gate the normal mode codes
	bosr := SelectBOSR(s).SetBit()
	got = Finalize(NormalSR(bosr).SR0111())
	if got != 0x8<<9|0b01_1110 {
		t.Errorf("Expected 0b%b. Got 0b%b", 0x8<<9|0b01_1110, got)
	}
}

func Test_SamplingUSBMode(t *testing.T) {
	t.Run("BOSRClear", func(t *testing.T) {
		s := SelectBOSR(SelectMode(NewSampling()).USB()).ClearBit()
		got := Finalize(USBSR(s).SR0000())
		if got != 0x8<<9|0b00_0001 {
			t.Errorf("Got 0b%b", got)
		}
	})

	t.Run("BOSRSet", func(t *testing.T) {
		s := SelectBOSR(SelectMode(NewSampling()).USB()).SetBit()
		got := Finalize(OversampledUSBSR(s).SR1111())
		if got != 0x8<<9|0b11_1111 {
			t.Errorf("Got 0b%b", got)
		}
	})

	t.Run("BOSRBeforeMode", func(t *testing.T) {
		s := SelectMode(SelectBOSR(NewSampling()).SetBit()).SetBit()
		got := Finalize(OversampledUSBSR(s).SR1000())
		if got != 0x8<<9|0b10_0011 {
			t.Errorf("Got 0b%b", got)
		}
	})
}

func Test_SamplingRateCodes(t *testing.T) {
	normal := NormalSR(SelectMode(NewSampling()).ClearBit())
	usb := USBSR(SelectBOSR(SelectMode(NewSampling()).USB()).ClearBit())
	over := OversampledUSBSR(SelectBOSR(SelectMode(NewSampling()).USB()).SetBit())

	sr := func(f Frame) uint16 {
		return f.Payload() >> 2 & 0b1111
	}

	normalCodes := map[uint16]Frame{
		0b0000: Finalize(normal.SR0000()), 0b0001: Finalize(normal.SR0001()),
		0b0010: Finalize(normal.SR0010()), 0b0011: Finalize(normal.SR0011()),
		0b0110: Finalize(normal.SR0110()), 0b0111: Finalize(normal.SR0111()),
		0b1000: Finalize(normal.SR1000()), 0b1001: Finalize(normal.SR1001()),
		0b1010: Finalize(normal.SR1010()), 0b1011: Finalize(normal.SR1011()),
		0b1111: Finalize(normal.SR1111()),
	}
	for code, f := range normalCodes {
		if sr(f) != code || f.Payload()&0b11 != 0b00 {
			t.Errorf("Normal SR %04b: got 0b%09b", code, f.Payload())
		}
	}

	usbCodes := map[uint16]Frame{
		0b0000: Finalize(usb.SR0000()), 0b0001: Finalize(usb.SR0001()),
		0b0010: Finalize(usb.SR0010()), 0b0011: Finalize(usb.SR0011()),
		0b0110: Finalize(usb.SR0110()), 0b0111: Finalize(usb.SR0111()),
	}
	for code, f := range usbCodes {
		if sr(f) != code || f.Payload()&0b11 != 0b01 {
			t.Errorf("USB SR %04b: got 0b%09b", code, f.Payload())
		}
	}

	overCodes := map[uint16]Frame{
		0b1000: Finalize(over.SR1000()), 0b1001: Finalize(over.SR1001()),
		0b1010: Finalize(over.SR1010()), 0b1011: Finalize(over.SR1011()),
		0b1111: Finalize(over.SR1111()),
	}
	for code, f := range overCodes {
		if sr(f) != code || f.Payload()&0b11 != 0b11 {
			t.Errorf("USB/BOSR SR %04b: got 0b%09b", code, f.Payload())
		}
	}
}

func Test_SamplingRateRewrite(t *testing.T) {
	s := NormalSR(SelectMode(NewSampling()).Normal()).SR1111()
	s = NormalSR(s).SR0000()
	if got := Finalize(s); got != 0x8<<9 {
		t.Errorf("Rewritten SR: got 0b%b", got)
	}
}

func Test_SamplingUnsafeBitsMasks(t *testing.T) {
	s := SelectMode(NewSampling()).Normal()
	got := Finalize(NormalSR(s).UnsafeBits(0xFF))
	if got != 0x8<<9|0b11_1100 {
		t.Errorf("Expected SR only. Got 0b%b", got)
	}
}

func Test_SamplingClockDividers(t *testing.T) {
	s := NewSampling().ClkIDiv2().SetBit()
	m := SelectMode(s).Normal().ClkODiv2().SetBit()
	v := NormalSR(m).SR0000()
	v = v.ClkIDiv2().ClearBit()

	if got := Finalize(v); got != 0x8<<9|0b1000_0000 {
		t.Errorf("Got 0b%b", got)
	}
}
