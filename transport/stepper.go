package transport

import (
	"fmt"
	"io"
	"os"

	"github.com/eiannone/keyboard"
	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/handegar/wm8731/command"
	"github.com/handegar/wm8731/disasm"
)

var ErrAborted = errors.New("wm8731: aborted")

type KeySource interface {
	GetKey() (rune, keyboard.Key, error)
}

type terminalKeys struct{}

func (terminalKeys) GetKey() (rune, keyboard.Key, error) {
	return keyboard.GetKey()
}

// Stepper prints each frame and waits for a key before passing it on.
// 'q' or ESC aborts, 's' skips the frame.
type Stepper struct {
	W    FrameWriter
	Keys KeySource
	Out  io.Writer

	count int
}

// NewStepper reads keys from the terminal. Close restores it.
func NewStepper(w FrameWriter) (*Stepper, error) {
	if err := keyboard.Open(); err != nil {
		return nil, errors.Wrap(err, "wm8731: keyboard")
	}
	return &Stepper{W: w, Keys: terminalKeys{}, Out: os.Stdout}, nil
}

func (s *Stepper) Close() error {
	if _, ok := s.Keys.(terminalKeys); ok {
		return keyboard.Close()
	}
	return nil
}

func (s *Stepper) WriteFrame(f command.Frame) error {
	fmt.Fprint(s.Out, color.YellowString("%3d:", s.count))
	fmt.Fprint(s.Out, color.CyanString("%s", disasm.FrameToString(f, true)))
	fmt.Fprint(s.Out, color.BlueString("  [enter/space: send | s: skip | q: quit] "))
	s.count++

	for {
		ch, key, err := s.Keys.GetKey()
		if err != nil {
			return errors.Wrap(err, "wm8731: keyboard")
		}

		switch {
		case ch == 'q' || key == keyboard.KeyEsc || key == keyboard.KeyCtrlC:
			fmt.Fprintln(s.Out, color.RedString("quit"))
			return ErrAborted
		case ch == 's':
			fmt.Fprintln(s.Out, color.YellowString("skipped"))
			return nil
		case key == keyboard.KeyEnter || key == keyboard.KeySpace:
			if err := s.W.WriteFrame(f); err != nil {
				fmt.Fprintln(s.Out, color.RedString("failed"))
				return err
			}
			fmt.Fprintln(s.Out, color.GreenString("sent"))
			return nil
		}
	}
}
