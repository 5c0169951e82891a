// Package driver forwards built frames to the codec.
package driver

import (
	"github.com/platinasystems/log"

	"github.com/handegar/wm8731/command"
	"github.com/handegar/wm8731/transport"
)

type Codec struct {
	w transport.FrameWriter
}

func New(w transport.FrameWriter) *Codec {
	return &Codec{w: w}
}

// Send forwards one frame. Failures are logged and returned.
func (c *Codec) Send(f command.Frame) error {
	err := c.w.WriteFrame(f)
	if err != nil {
		log.Print("err", "wm8731: ", f, ": ", err)
	}
	return err
}

// SendAll stops at the first frame that fails.
func (c *Codec) SendAll(frames []command.Frame) error {
	for _, f := range frames {
		if err := c.Send(f); err != nil {
			return err
		}
	}
	return nil
}

func (c *Codec) Configure(cfg Config) error {
	frames, err := Sequence(cfg)
	if err != nil {
		log.Print("err", err)
		return err
	}
	return c.SendAll(frames)
}

func (c *Codec) Reset() error {
	return c.Send(command.NewReset().Frame())
}

func (c *Codec) Activate() error {
	return c.Send(command.NewActiveControl().Active().Frame())
}

func (c *Codec) Deactivate() error {
	return c.Send(command.NewActiveControl().Inactive().Frame())
}

func (c *Codec) Shutdown() error {
	return c.SendAll(ShutdownSequence())
}
