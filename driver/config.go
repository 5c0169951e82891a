package driver

import (
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/handegar/wm8731/command"
)

type Config struct {
	Clock      uint32 // MCLK in Hz
	Rate       command.RatePair
	Format     command.Format
	WordLength command.WordLength
	Master     bool

	Headphone  command.HeadphoneVolume
	LineIn     command.LineInVolume
	Input      command.InputSelect
	MicBoost   bool
	Bypass     bool
	SideTone   bool
	DeEmphasis command.DeEmphasis
	HighPass   bool // ADC high pass filter
}

// Default is a 48kHz I2S slave on a 12.288MHz clock with both paths at 0dB.
func Default() Config {
	return Config{
		Clock:      command.Mclk12M288{}.Hz(),
		Rate:       command.ADC48kDAC48k,
		Format:     command.I2S,
		WordLength: command.WordLength24,
		Master:     false,
		Headphone:  command.HpVol0dB,
		LineIn:     command.InVol0dB,
		Input:      command.LineInput,
		DeEmphasis: command.DeEmphasisOff,
		HighPass:   true,
	}
}

var clocks = map[string]uint32{
	"12.288":  command.Mclk12M288{}.Hz(),
	"18.432":  command.Mclk18M432{}.Hz(),
	"11.2896": command.Mclk11M2896{}.Hz(),
	"16.9344": command.Mclk16M9344{}.Hz(),
	"12":      command.Mclk12M{}.Hz(),
}

// ParseClock takes the master clock in MHz as printed on the crystal.
func ParseClock(mhz string) (uint32, error) {
	if hz, ok := clocks[mhz]; ok {
		return hz, nil
	}
	return 0, errors.Errorf("wm8731: unsupported master clock %sMHz", mhz)
}

type rateInfo struct {
	frame command.Frame
	adcHz uint32
	dacHz uint32
}

func lookup[C command.Clock](clk C, p command.RatePair) (rateInfo, error) {
	r, ok := command.LookupRate(clk, p)
	if !ok {
		return rateInfo{}, errors.Errorf("wm8731: %s is not available with a %dHz clock",
			p, clk.Hz())
	}
	f := command.NewSamplingWithClock(clk).SampleRate(r).Frame()
	return rateInfo{f, r.ADCHz(), r.DACHz()}, nil
}

func (cfg Config) rate() (rateInfo, error) {
	switch cfg.Clock {
	case command.Mclk12M288{}.Hz():
		return lookup(command.Mclk12M288{}, cfg.Rate)
	case command.Mclk18M432{}.Hz():
		return lookup(command.Mclk18M432{}, cfg.Rate)
	case command.Mclk11M2896{}.Hz():
		return lookup(command.Mclk11M2896{}, cfg.Rate)
	case command.Mclk16M9344{}.Hz():
		return lookup(command.Mclk16M9344{}, cfg.Rate)
	case command.Mclk12M{}.Hz():
		return lookup(command.Mclk12M{}, cfg.Rate)
	}
	return rateInfo{}, errors.Errorf("wm8731: unsupported master clock %dHz", cfg.Clock)
}

// SampleRates returns the actual ADC and DAC rates of the configuration.
func (cfg Config) SampleRates() (adcHz, dacHz uint32, err error) {
	r, err := cfg.rate()
	if err != nil {
		return 0, 0, err
	}
	return r.adcHz, r.dacHz, nil
}

var formats = map[string]command.Format{
	"right": command.RightJustified,
	"left":  command.LeftJustified,
	"i2s":   command.I2S,
	"dsp":   command.DSP,
}

func ParseFormat(s string) (command.Format, error) {
	if f, ok := formats[strings.ToLower(s)]; ok {
		return f, nil
	}
	return 0, errors.Errorf("wm8731: unknown interface format %q", s)
}

func ParseWordLength(bits int) (command.WordLength, error) {
	for wl := command.WordLength16; wl <= command.WordLength32; wl++ {
		if wl.Bits() == bits {
			return wl, nil
		}
	}
	return 0, errors.Errorf("wm8731: unsupported word length %d", bits)
}

// HeadphoneDB maps a gain in whole dB to a volume code. Gains below -73dB
// mute the output.
func HeadphoneDB(db int) (command.HeadphoneVolume, error) {
	if db > 6 {
		return 0, errors.Errorf("wm8731: headphone gain %+ddB above +6dB", db)
	}
	if db < -73 {
		return command.HpVolMute, nil
	}
	return command.HeadphoneVolume(int(command.HpVol0dB) + db), nil
}

// LineInDB maps a gain to the nearest 1.5dB line input step.
func LineInDB(db float64) (command.LineInVolume, error) {
	if db > 12 || db < -34.5 {
		return 0, errors.Errorf("wm8731: line input gain %+.1fdB out of range", db)
	}
	return command.LineInVolume(int(command.InVol0dB) + int(math.Round(db/1.5))), nil
}

// MatchRate finds the rate pair of the configured clock that runs both
// converters at hz. USB clock rates within 0.1% of hz count as a match.
func (cfg Config) MatchRate(hz uint32) (command.RatePair, error) {
	for p := command.ADC48kDAC48k; p <= command.ADC8kDAC8kAlt; p++ {
		cfg.Rate = p
		adcHz, dacHz, err := cfg.SampleRates()
		if err != nil {
			continue
		}
		if adcHz == dacHz && math.Abs(float64(dacHz)-float64(hz)) <= float64(hz)/1000 {
			return p, nil
		}
	}
	return 0, errors.Errorf("wm8731: no %dHz rate with a %dHz clock", hz, cfg.Clock)
}
