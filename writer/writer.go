package writer

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"

	"github.com/handegar/wm8731/command"
	"github.com/handegar/wm8731/settings"
)

func SaveFrames(filename string, frames []command.Frame) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := EncodeBin(file, frames); err != nil {
		return errors.Wrapf(err, "writing %s", filename)
	}
	return file.Close()
}

// EncodeBin writes two bytes per frame, MSB first.
func EncodeBin(w io.Writer, frames []command.Frame) error {
	buf := bufio.NewWriter(w)
	for _, f := range frames {
		b := f.Bytes()
		if _, err := buf.Write(b[:]); err != nil {
			return err
		}
	}
	return buf.Flush()
}

// FormatFor returns the WAV format matching what the codec puts on the
// interface. beep encodes at most 24 bits, so 32 bit words are written as 24.
func FormatFor(dacHz uint32, wl command.WordLength) beep.Format {
	precision := wl.Bits() / 8
	if wl.Bits()%8 != 0 {
		precision++
	}
	if precision > 3 {
		precision = 3
	}
	return beep.Format{
		SampleRate:  beep.SampleRate(dacHz),
		NumChannels: 2,
		Precision:   precision,
	}
}

// Tone is a finite stereo sine streamer.
type Tone struct {
	Frequency float64
	Amplitude float64
	Format    beep.Format
	Samples   int

	pos int
}

func NewTone(format beep.Format, hz float64, seconds float64) *Tone {
	return &Tone{
		Frequency: hz,
		Amplitude: 0.5,
		Format:    format,
		Samples:   format.SampleRate.N(time.Duration(seconds * float64(time.Second))),
	}
}

func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.Samples {
			return i, i > 0
		}
		v := t.Amplitude * math.Sin(2*math.Pi*t.Frequency*float64(t.pos)/float64(t.Format.SampleRate))
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *Tone) Err() error {
	return nil
}

func SaveAsWAV(filename string, wavFormat beep.Format, s beep.Streamer) error {
	if settings.PrintDebug {
		fmt.Printf("* Writing to '%s' (%dHz, %d bits)\n",
			filename, wavFormat.SampleRate, wavFormat.Precision*8)
	}
	outWAVFile, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	defer outWAVFile.Close()

	err = wav.Encode(outWAVFile, s, wavFormat)
	if err != nil {
		return errors.Wrap(err, "writing samples")
	}

	return nil
}
