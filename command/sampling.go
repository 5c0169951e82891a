package command

import (
	"fmt"

	"github.com/handegar/wm8731/base"
)

// Sampling control state tags. ExampleFinalize shows the transitions the
// compiler rejects. The meaning of the SR bits depends on the
// mode and BOSR bits, so SR can only be written once both are known and
// neither can change afterwards.
type ModeUnset struct{}
type Normal struct{}
type USB struct{}

type ModeState interface {
	ModeUnset | Normal | USB
}

type BOSRUnset struct{}
type BOSRClear struct{}
type BOSRSet struct{}

type BOSRState interface {
	BOSRUnset | BOSRClear | BOSRSet
}

type SRUnset struct{}
type SRValid struct{}

type SRState interface {
	SRUnset | SRValid
}

// Sampling is the sampling control register (R8) in raw form.
type Sampling[M ModeState, B BOSRState, S SRState] struct {
	data uint16
}

func NewSampling() Sampling[ModeUnset, BOSRUnset, SRUnset] {
	return Sampling[ModeUnset, BOSRUnset, SRUnset]{}
}

func (Sampling[M, B, S]) register() base.RegisterID { return base.Sampling }

// ClkIDiv2 halves the core clock. Legal in every state.
func (s Sampling[M, B, S]) ClkIDiv2() Flag[Sampling[M, B, S]] {
	return flagOf(s, base.ClkIDiv2)
}

// ClkODiv2 halves CLKOUT. Legal in every state.
func (s Sampling[M, B, S]) ClkODiv2() Flag[Sampling[M, B, S]] {
	return flagOf(s, base.ClkODiv2)
}

// Finalize is only defined once a sample rate has been written. A zero
// value declared with tags its bits do not carry panics.
func Finalize[M ModeState, B BOSRState](s Sampling[M, B, SRValid]) Frame {
	f := frameOf(s)
	if !tagsMatch[M, B](f.Payload()) {
		panic(fmt.Sprintf("command: sampling bits 0b%09b do not match their state, use NewSampling", f.Payload()))
	}
	return f
}

// tagsMatch checks the mode and BOSR bits against the state tags. Every
// path through the writers agrees with them. USB mode always has BOSR
// chosen before SR can be written.
func tagsMatch[M ModeState, B BOSRState](payload uint16) bool {
	usb := base.UsbNormal.Extract(payload) == 1
	bosr := base.BOSR.Extract(payload) == 1

	switch any(*new(M)).(type) {
	case Normal:
		if usb {
			return false
		}
	case USB:
		if !usb {
			return false
		}
	default:
		return false
	}

	switch any(*new(B)).(type) {
	case BOSRSet:
		return bosr
	case BOSRClear:
		return !bosr
	default:
		return !bosr && !usb
	}
}

type ModeField[B BOSRState] struct {
	data uint16
}

// SelectMode picks USB or normal mode. It is offered once, before any sample
// rate is written.
func SelectMode[B BOSRState](s Sampling[ModeUnset, B, SRUnset]) ModeField[B] {
	return ModeField[B]{load(s)}
}

func (m ModeField[B]) Normal() Sampling[Normal, B, SRUnset] {
	return store[Sampling[Normal, B, SRUnset]](m.data &^ base.UsbNormal.Mask())
}

func (m ModeField[B]) USB() Sampling[USB, B, SRUnset] {
	return store[Sampling[USB, B, SRUnset]](m.data | base.UsbNormal.Mask())
}

func (m ModeField[B]) ClearBit() Sampling[Normal, B, SRUnset] {
	return m.Normal()
}

func (m ModeField[B]) SetBit() Sampling[USB, B, SRUnset] {
	return m.USB()
}

type BOSRField[M ModeState] struct {
	data uint16
}

// SelectBOSR sets the base oversampling rate bit. Like the mode it is
// offered once, before any sample rate is written.
func SelectBOSR[M ModeState](s Sampling[M, BOSRUnset, SRUnset]) BOSRField[M] {
	return BOSRField[M]{load(s)}
}

func (b BOSRField[M]) ClearBit() Sampling[M, BOSRClear, SRUnset] {
	return store[Sampling[M, BOSRClear, SRUnset]](b.data &^ base.BOSR.Mask())
}

func (b BOSRField[M]) SetBit() Sampling[M, BOSRSet, SRUnset] {
	return store[Sampling[M, BOSRSet, SRUnset]](b.data | base.BOSR.Mask())
}

func writeSR(data uint16, v uint8) uint16 {
	f := base.SampleRate
	return data&^f.Mask() | (uint16(v)<<f.Offset)&f.Mask()
}

// NormalRate writes SR in normal mode. The BOSR bit picks 256fs or 384fs
// but does not change which codes are legal.
type NormalRate[B BOSRState] struct {
	data uint16
}

func NormalSR[B BOSRState, S SRState](s Sampling[Normal, B, S]) NormalRate[B] {
	return NormalRate[B]{load(s)}
}

// UnsafeBits writes any 4-bit SR code. Codes missing from the datasheet
// table are not rejected.
func (r NormalRate[B]) UnsafeBits(v uint8) Sampling[Normal, B, SRValid] {
	return store[Sampling[Normal, B, SRValid]](writeSR(r.data, v))
}

func (r NormalRate[B]) SR0000() Sampling[Normal, B, SRValid] { return r.UnsafeBits(0b0000) }
func (r NormalRate[B]) SR0001() Sampling[Normal, B, SRValid] { return r.UnsafeBits(0b0001) }
func (r NormalRate[B]) SR0010() Sampling[Normal, B, SRValid] { return r.UnsafeBits(0b0010) }
func (r NormalRate[B]) SR0011() Sampling[Normal, B, SRValid] { return r.UnsafeBits(0b0011) }
func (r NormalRate[B]) SR0110() Sampling[Normal, B, SRValid] { return r.UnsafeBits(0b0110) }
func (r NormalRate[B]) SR0111() Sampling[Normal, B, SRValid] { return r.UnsafeBits(0b0111) }
func (r NormalRate[B]) SR1000() Sampling[Normal, B, SRValid] { return r.UnsafeBits(0b1000) }
func (r NormalRate[B]) SR1001() Sampling[Normal, B, SRValid] { return r.UnsafeBits(0b1001) }
func (r NormalRate[B]) SR1010() Sampling[Normal, B, SRValid] { return r.UnsafeBits(0b1010) }
func (r NormalRate[B]) SR1011() Sampling[Normal, B, SRValid] { return r.UnsafeBits(0b1011) }
func (r NormalRate[B]) SR1111() Sampling[Normal, B, SRValid] { return r.UnsafeBits(0b1111) }

// USBRate writes SR in USB mode with BOSR clear (250fs).
type USBRate struct {
	data uint16
}

func USBSR[S SRState](s Sampling[USB, BOSRClear, S]) USBRate {
	return USBRate{load(s)}
}

func (r USBRate) UnsafeBits(v uint8) Sampling[USB, BOSRClear, SRValid] {
	return store[Sampling[USB, BOSRClear, SRValid]](writeSR(r.data, v))
}

func (r USBRate) SR0000() Sampling[USB, BOSRClear, SRValid] { return r.UnsafeBits(0b0000) }
func (r USBRate) SR0001() Sampling[USB, BOSRClear, SRValid] { return r.UnsafeBits(0b0001) }
func (r USBRate) SR0010() Sampling[USB, BOSRClear, SRValid] { return r.UnsafeBits(0b0010) }
func (r USBRate) SR0011() Sampling[USB, BOSRClear, SRValid] { return r.UnsafeBits(0b0011) }
func (r USBRate) SR0110() Sampling[USB, BOSRClear, SRValid] { return r.UnsafeBits(0b0110) }
func (r USBRate) SR0111() Sampling[USB, BOSRClear, SRValid] { return r.UnsafeBits(0b0111) }

// OversampledUSBRate writes SR in USB mode with BOSR set (272fs).
type OversampledUSBRate struct {
	data uint16
}

func OversampledUSBSR[S SRState](s Sampling[USB, BOSRSet, S]) OversampledUSBRate {
	return OversampledUSBRate{load(s)}
}

func (r OversampledUSBRate) UnsafeBits(v uint8) Sampling[USB, BOSRSet, SRValid] {
	return store[Sampling[USB, BOSRSet, SRValid]](writeSR(r.data, v))
}

func (r OversampledUSBRate) SR1000() Sampling[USB, BOSRSet, SRValid] { return r.UnsafeBits(0b1000) }
func (r OversampledUSBRate) SR1001() Sampling[USB, BOSRSet, SRValid] { return r.UnsafeBits(0b1001) }
func (r OversampledUSBRate) SR1010() Sampling[USB, BOSRSet, SRValid] { return r.UnsafeBits(0b1010) }
func (r OversampledUSBRate) SR1011() Sampling[USB, BOSRSet, SRValid] { return r.UnsafeBits(0b1011) }
func (r OversampledUSBRate) SR1111() Sampling[USB, BOSRSet, SRValid] { return r.UnsafeBits(0b1111) }
