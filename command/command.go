package command

import (
	"fmt"

	"github.com/handegar/wm8731/base"
)

// A Frame is the 16-bit value sent to the codec: register address in bits
// 15..9, payload in bits 8..0.
type Frame uint16

func (f Frame) Uint16() uint16 {
	return uint16(f)
}

// Bytes returns the frame MSB first, as it goes out on a byte-oriented bus.
func (f Frame) Bytes() [2]byte {
	return [2]byte{byte(f >> 8), byte(f)}
}

func (f Frame) Words() [1]uint16 {
	return [1]uint16{uint16(f)}
}

func (f Frame) Address() uint8 {
	return uint8(f>>base.PayloadBits) & base.AddressMask
}

func (f Frame) Payload() uint16 {
	return uint16(f) & base.PayloadMask
}

func (f Frame) String() string {
	return fmt.Sprintf("R%d 0b%09b", f.Address(), f.Payload())
}

// Every register builder is a struct holding nothing but the packed word,
// XORed with the reset word of its register. The zero value of a builder is
// therefore the reset state, address included. Writers go through load and
// store to reach the real bits.
type raw struct {
	data uint16
}

type word interface {
	~struct{ data uint16 }
	register() base.RegisterID
}

func resetWord[R word]() uint16 {
	var r R
	return base.Registers[r.register()].Word()
}

func load[R word](r R) uint16 {
	return raw(r).data ^ resetWord[R]()
}

func store[R word](w uint16) R {
	return R(raw{w ^ resetWord[R]()})
}

func frameOf[R word](r R) Frame {
	return Frame(load(r))
}

// pick returns the register of the channel C.
func pick[C Channel](left, right base.RegisterID) base.RegisterID {
	if _, ok := any(*new(C)).(Right); ok {
		return right
	}
	return left
}
