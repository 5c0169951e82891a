package debugger

import (
	"github.com/handegar/wm8731/base"
	"github.com/handegar/wm8731/command"
)

// State shadows the codec registers as they look after Pos frames of a
// sequence have been written.
type State struct {
	Pos      int
	Payloads map[base.RegisterID]uint16
	Changed  []base.RegisterID // Registers touched by the last frame
}

func NewState() *State {
	s := &State{Payloads: make(map[base.RegisterID]uint16)}
	s.reset()
	return s
}

func (s *State) reset() {
	for id := base.LeftLineIn; id < base.Reset; id++ {
		s.Payloads[id] = base.Registers[id].Reset
	}
}

func (s *State) Duplicate() *State {
	d := &State{
		Pos:      s.Pos,
		Payloads: make(map[base.RegisterID]uint16, len(s.Payloads)),
		Changed:  append([]base.RegisterID(nil), s.Changed...),
	}
	for id, v := range s.Payloads {
		d.Payloads[id] = v
	}
	return d
}

// Apply writes one frame into the shadow registers. Frames to unknown
// addresses are counted but change nothing; ok is false for those.
func (s *State) Apply(f command.Frame) (ok bool) {
	s.Pos++
	s.Changed = s.Changed[:0]

	id, _, ok := base.ByAddress(f.Address())
	if !ok {
		return false
	}

	payload := f.Payload()
	s.write(id, payload)

	// The *BOTH bits load the same value into the other channel
	switch id {
	case base.LeftLineIn, base.RightLineIn:
		if base.LineInBoth.Extract(payload) == 1 {
			s.write(otherChannel(id), payload)
		}
	case base.LeftHeadphoneOut, base.RightHeadphoneOut:
		if base.HeadphoneBoth.Extract(payload) == 1 {
			s.write(otherChannel(id), payload)
		}
	}
	return true
}

func (s *State) write(id base.RegisterID, payload uint16) {
	s.Payloads[id] = payload
	s.Changed = append(s.Changed, id)
}

func (s *State) IsChanged(id base.RegisterID) bool {
	for _, c := range s.Changed {
		if c == id {
			return true
		}
	}
	return false
}

// Frame returns the frame that would rewrite a register with its
// current shadow value.
func (s *State) Frame(id base.RegisterID) command.Frame {
	r := base.Registers[id]
	return command.Frame(uint16(r.Address&base.AddressMask)<<base.PayloadBits |
		s.Payloads[id]&base.PayloadMask)
}

func otherChannel(id base.RegisterID) base.RegisterID {
	switch id {
	case base.LeftLineIn:
		return base.RightLineIn
	case base.RightLineIn:
		return base.LeftLineIn
	case base.LeftHeadphoneOut:
		return base.RightHeadphoneOut
	case base.RightHeadphoneOut:
		return base.LeftHeadphoneOut
	}
	return id
}
