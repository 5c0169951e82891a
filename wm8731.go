package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/pkg/errors"

	"github.com/handegar/wm8731/command"
	"github.com/handegar/wm8731/debugger"
	"github.com/handegar/wm8731/disasm"
	"github.com/handegar/wm8731/driver"
	"github.com/handegar/wm8731/reader"
	"github.com/handegar/wm8731/settings"
	"github.com/handegar/wm8731/transport"
	"github.com/handegar/wm8731/utils"
	"github.com/handegar/wm8731/writer"
)

func parseCommandLineParameters() {
	flag.StringVar(&settings.ClockMHz, "clock", settings.ClockMHz, "Master clock in MHz (12.288, 18.432, 11.2896, 16.9344, 12)")
	flag.StringVar(&settings.MatchWav, "match-wav", settings.MatchWav, "Take the rate and word length from a wav-file")
	flag.StringVar(&settings.RatePair, "rate", settings.RatePair, "ADC/DAC rate pair, e.g. 48k/48k or 44.1k/8k")
	flag.StringVar(&settings.Format, "format", settings.Format, "Interface format (right, left, i2s, dsp)")
	flag.IntVar(&settings.WordLength, "iwl", settings.WordLength, "Input word length in bits (16, 20, 24, 32)")
	flag.BoolVar(&settings.Master, "master", settings.Master, "Codec drives BCLK and LRC")
	flag.IntVar(&settings.HeadphoneVolume, "hp-vol", settings.HeadphoneVolume, "Headphone gain in dB (-73 .. +6)")
	flag.Float64Var(&settings.LineInVolume, "in-vol", settings.LineInVolume, "Line input gain in dB (-34.5 .. +12)")
	flag.BoolVar(&settings.Microphone, "mic", settings.Microphone, "Record from the microphone input")
	flag.BoolVar(&settings.Bypass, "bypass", settings.Bypass, "Route the line input to the outputs")
	flag.IntVar(&settings.Bus, "bus", settings.Bus, "I2C bus number")
	flag.IntVar(&settings.Address, "addr", settings.Address, "I2C slave address")
	flag.BoolVar(&settings.DryRun, "dry-run", settings.DryRun, "Do not write to the bus")
	flag.BoolVar(&settings.Step, "step", settings.Step, "Wait for a key before each frame")
	flag.StringVar(&settings.InFilename, "decode", settings.InFilename, "Decode a frame file (.bin or .hex)")
	flag.StringVar(&settings.OutFilename, "out", settings.OutFilename, "Save the frames to a binary file")
	flag.StringVar(&settings.OutputWav, "tone", settings.OutputWav, "Write a test tone wav-file in the configured format")
	flag.Float64Var(&settings.ToneFrequency, "tone-hz", settings.ToneFrequency, "Test tone frequency")
	flag.BoolVar(&settings.Viewer, "view", settings.Viewer, "Open the register viewer")
	flag.BoolVar(&settings.PrintCode, "print-code", settings.PrintCode, "Print the frame listing")
	flag.BoolVar(&settings.PrintDebug, "debug", settings.PrintDebug, "Print debug info")
	flag.Parse()
}

func exitOnError(err error, what string) {
	if err != nil {
		utils.Errorf("%s failed: %s", what, err)
		syscall.Exit(-1)
	}
}

func buildConfig() (driver.Config, error) {
	cfg := driver.Default()

	clock, err := driver.ParseClock(settings.ClockMHz)
	if err != nil {
		return cfg, err
	}
	cfg.Clock = clock

	rate, ok := command.ParseRatePair(settings.RatePair)
	if !ok {
		return cfg, errors.Errorf("unknown rate pair %q", settings.RatePair)
	}
	cfg.Rate = rate

	if cfg.Format, err = driver.ParseFormat(settings.Format); err != nil {
		return cfg, err
	}
	if cfg.WordLength, err = driver.ParseWordLength(settings.WordLength); err != nil {
		return cfg, err
	}

	if settings.MatchWav != "" {
		wavFormat, err := reader.ReadWAVFormat(settings.MatchWav)
		if err != nil {
			return cfg, err
		}
		if cfg.Rate, err = cfg.MatchRate(uint32(wavFormat.SampleRate)); err != nil {
			return cfg, err
		}
		if cfg.WordLength, err = driver.ParseWordLength(wavFormat.Precision * 8); err != nil {
			return cfg, err
		}
		utils.Debugf("Matched %s: %s, %d bits", settings.MatchWav, cfg.Rate, cfg.WordLength.Bits())
	}
	if cfg.Headphone, err = driver.HeadphoneDB(settings.HeadphoneVolume); err != nil {
		return cfg, err
	}
	if cfg.LineIn, err = driver.LineInDB(settings.LineInVolume); err != nil {
		return cfg, err
	}

	cfg.Master = settings.Master
	cfg.Bypass = settings.Bypass
	if settings.Microphone {
		cfg.Input = command.MicrophoneInput
	}
	return cfg, nil
}

func readFrames(filename string) ([]command.Frame, error) {
	if strings.ToLower(filepath.Ext(filename)) == ".hex" {
		return reader.ReadHex(filename)
	}
	return reader.ReadBin(filename)
}

func send(frames []command.Frame) error {
	var w transport.FrameWriter = &transport.I2C{Bus: settings.Bus, Addr: settings.Address}
	if settings.DryRun {
		w = &transport.Recorder{}
	}

	if settings.Step {
		stepper, err := transport.NewStepper(w)
		if err != nil {
			return err
		}
		defer stepper.Close()
		w = stepper
	}

	return driver.New(w).SendAll(frames)
}

func main() {
	fmt.Printf("* WM8731 configurator v%s\n", settings.Version)
	parseCommandLineParameters()

	var frames []command.Frame
	var err error

	if settings.InFilename != "" {
		frames, err = readFrames(settings.InFilename)
		exitOnError(err, "Reading "+settings.InFilename)
		utils.Debugf("Read %d frames from %s", len(frames), settings.InFilename)
	} else {
		cfg, err := buildConfig()
		exitOnError(err, "Configuration")

		frames, err = driver.Sequence(cfg)
		exitOnError(err, "Building sequence")

		if settings.OutputWav != "" {
			_, dacHz, _ := cfg.SampleRates()
			format := writer.FormatFor(dacHz, cfg.WordLength)
			tone := writer.NewTone(format, settings.ToneFrequency, settings.ToneSeconds)
			exitOnError(writer.SaveAsWAV(settings.OutputWav, format, tone), "Writing "+settings.OutputWav)
			utils.Debugf("Wrote %.0fHz tone at %dHz to %s", settings.ToneFrequency, dacHz, settings.OutputWav)
		}
	}

	if settings.PrintCode {
		disasm.PrintFrameListing(frames)
	}

	if settings.OutFilename != "" {
		exitOnError(writer.SaveFrames(settings.OutFilename, frames), "Writing "+settings.OutFilename)
	}

	if settings.Viewer {
		exitOnError(debugger.Run(frames), "Register viewer")
		return
	}

	// Decoded files are only listed
	if settings.InFilename != "" {
		return
	}

	exitOnError(send(frames), "Sending frames")
	if settings.DryRun {
		utils.Warnf("Dry run: %d frames not written", len(frames))
	}
}
