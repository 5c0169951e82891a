// Package transport sends command frames to the codec.
package transport

import (
	"sync"

	"github.com/handegar/wm8731/command"
)

// Default 2-wire addresses, selected by the CSB pin.
const (
	AddrCSBLow  = 0x1a
	AddrCSBHigh = 0x1b
)

type FrameWriter interface {
	WriteFrame(f command.Frame) error
}

// Recorder keeps every frame it is given. Used for dry runs.
type Recorder struct {
	sync.Mutex
	Frames []command.Frame
}

func (r *Recorder) WriteFrame(f command.Frame) error {
	r.Lock()
	defer r.Unlock()
	r.Frames = append(r.Frames, f)
	return nil
}

func (r *Recorder) Reset() {
	r.Lock()
	defer r.Unlock()
	r.Frames = nil
}
