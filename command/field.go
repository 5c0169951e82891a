package command

import (
	"github.com/handegar/wm8731/base"
)

// Flag writes a single payload bit. Every call returns a new value with the
// same type as the one it was taken from.
type Flag[R word] struct {
	cmd R
	bit uint
}

func flagOf[R word](cmd R, f base.Field) Flag[R] {
	return Flag[R]{cmd: cmd, bit: f.Offset}
}

func (f Flag[R]) SetBit() R {
	return store[R](load(f.cmd) | 1<<f.bit)
}

func (f Flag[R]) ClearBit() R {
	return store[R](load(f.cmd) &^ (1 << f.bit))
}

func (f Flag[R]) Enable() R {
	return f.SetBit()
}

func (f Flag[R]) Disable() R {
	return f.ClearBit()
}

func (f Flag[R]) Bit(on bool) R {
	if on {
		return f.SetBit()
	}
	return f.ClearBit()
}

// Field writes a bit range of the payload. Values wider than the field are
// truncated to it.
type Field[R word] struct {
	cmd    R
	offset uint
	length uint
}

func fieldOf[R word](cmd R, f base.Field) Field[R] {
	return Field[R]{cmd: cmd, offset: f.Offset, length: f.Len}
}

func (f Field[R]) Bits(v uint16) R {
	mask := uint16(1)<<f.length - 1
	return store[R](load(f.cmd)&^(mask<<f.offset) | (v&mask)<<f.offset)
}
