package command

import (
	"fmt"

	"github.com/handegar/wm8731/base"
)

// Master clock tags. With a known MCLK the mode and BOSR bits follow from
// the rate, so the clocked builder writes all of them at once.
type Mclk12M288 struct{}
type Mclk18M432 struct{}
type Mclk11M2896 struct{}
type Mclk16M9344 struct{}
type Mclk12M struct{} // USB

func (Mclk12M288) Hz() uint32  { return 12_288_000 }
func (Mclk18M432) Hz() uint32  { return 18_432_000 }
func (Mclk11M2896) Hz() uint32 { return 11_289_600 }
func (Mclk16M9344) Hz() uint32 { return 16_934_400 }
func (Mclk12M) Hz() uint32     { return 12_000_000 }

type Clock interface {
	Mclk12M288 | Mclk18M432 | Mclk11M2896 | Mclk16M9344 | Mclk12M
	Hz() uint32
}

// RatePair names an ADC/DAC sample rate combination.
type RatePair uint8

const (
	ADC48kDAC48k RatePair = iota + 1
	ADC48kDAC8k
	ADC8kDAC48k
	ADC8kDAC8k
	ADC32kDAC32k
	ADC96kDAC96k
	ADC44k1DAC44k1
	ADC44k1DAC8k
	ADC8kDAC44k1
	ADC88k2DAC88k2
	ADC8kDAC8kAlt // 12MHz only, 8.021kHz
)

var ratePairNames = map[RatePair]string{
	ADC48kDAC48k:   "48k/48k",
	ADC48kDAC8k:    "48k/8k",
	ADC8kDAC48k:    "8k/48k",
	ADC8kDAC8k:     "8k/8k",
	ADC32kDAC32k:   "32k/32k",
	ADC96kDAC96k:   "96k/96k",
	ADC44k1DAC44k1: "44.1k/44.1k",
	ADC44k1DAC8k:   "44.1k/8k",
	ADC8kDAC44k1:   "8k/44.1k",
	ADC88k2DAC88k2: "88.2k/88.2k",
	ADC8kDAC8kAlt:  "8k/8k-alt",
}

func (p RatePair) String() string {
	if s, ok := ratePairNames[p]; ok {
		return s
	}
	return fmt.Sprintf("RatePair(%d)", uint8(p))
}

// ParseRatePair accepts the names printed by RatePair.String.
func ParseRatePair(s string) (RatePair, bool) {
	for p, name := range ratePairNames {
		if name == s {
			return p, true
		}
	}
	return 0, false
}

type rateEntry struct {
	code  uint8 // SR[3:0] BOSR USB/NORMAL
	adcHz uint32
	dacHz uint32
}

// Sample rate codes per master clock, from the datasheet rate tables.
var rateTable = map[uint32]map[RatePair]rateEntry{
	12_288_000: {
		ADC48kDAC48k: {0b000000, 48000, 48000},
		ADC48kDAC8k:  {0b000100, 48000, 8000},
		ADC8kDAC48k:  {0b001000, 8000, 48000},
		ADC8kDAC8k:   {0b001100, 8000, 8000},
		ADC32kDAC32k: {0b011000, 32000, 32000},
		ADC96kDAC96k: {0b011100, 96000, 96000},
	},
	18_432_000: {
		ADC48kDAC48k: {0b000010, 48000, 48000},
		ADC48kDAC8k:  {0b000110, 48000, 8000},
		ADC8kDAC48k:  {0b001010, 8000, 48000},
		ADC8kDAC8k:   {0b001110, 8000, 8000},
		ADC32kDAC32k: {0b011010, 32000, 32000},
		ADC96kDAC96k: {0b011110, 96000, 96000},
	},
	11_289_600: {
		ADC44k1DAC44k1: {0b100000, 44100, 44100},
		ADC44k1DAC8k:   {0b100100, 44100, 8018},
		ADC8kDAC44k1:   {0b101000, 8018, 44100},
		ADC8kDAC8k:     {0b101100, 8018, 8018},
		ADC88k2DAC88k2: {0b111100, 88200, 88200},
	},
	16_934_400: {
		ADC44k1DAC44k1: {0b100010, 44100, 44100},
		ADC44k1DAC8k:   {0b100110, 44100, 8018},
		ADC8kDAC44k1:   {0b101010, 8018, 44100},
		ADC8kDAC8k:     {0b101110, 8018, 8018},
		ADC88k2DAC88k2: {0b111110, 88200, 88200},
	},
	12_000_000: {
		ADC48kDAC48k:   {0b000001, 48000, 48000},
		ADC44k1DAC44k1: {0b100011, 44118, 44118},
		ADC48kDAC8k:    {0b000101, 48000, 8000},
		ADC44k1DAC8k:   {0b100111, 44118, 8021},
		ADC8kDAC48k:    {0b001001, 8000, 48000},
		ADC8kDAC44k1:   {0b101011, 8021, 44118},
		ADC8kDAC8k:     {0b001101, 8000, 8000},
		ADC8kDAC8kAlt:  {0b101111, 8021, 8021},
		ADC32kDAC32k:   {0b011001, 32000, 32000},
		ADC96kDAC96k:   {0b011101, 96000, 96000},
		ADC88k2DAC88k2: {0b111111, 88235, 88235},
	},
}

// Rate is a sample rate code that is valid for the clock C.
// The zero Rate is not; SampleRate panics on it.
type Rate[C Clock] struct {
	entry rateEntry
	pair  RatePair
	valid bool
}

func (r Rate[C]) Code() uint8    { return r.entry.code }
func (r Rate[C]) Pair() RatePair { return r.pair }
func (r Rate[C]) ADCHz() uint32  { return r.entry.adcHz }
func (r Rate[C]) DACHz() uint32  { return r.entry.dacHz }

// LookupRate finds the code for a rate pair at run time. ok is false when
// the clock cannot produce the pair.
func LookupRate[C Clock](clk C, p RatePair) (r Rate[C], ok bool) {
	e, ok := rateTable[clk.Hz()][p]
	if !ok {
		return Rate[C]{}, false
	}
	return Rate[C]{entry: e, pair: p, valid: true}, true
}

// Rates lists the pairs a clock supports.
func Rates[C Clock](clk C) []RatePair {
	var pairs []RatePair
	for p := ADC48kDAC48k; p <= ADC8kDAC8kAlt; p++ {
		if _, ok := rateTable[clk.Hz()][p]; ok {
			pairs = append(pairs, p)
		}
	}
	return pairs
}

func mustRate[C Clock](p RatePair) Rate[C] {
	var clk C
	r, ok := LookupRate(clk, p)
	if !ok {
		panic(fmt.Sprintf("command: no %s rate for %dHz", p, clk.Hz()))
	}
	return r
}

func (Mclk12M288) ADC48kDAC48k() Rate[Mclk12M288] { return mustRate[Mclk12M288](ADC48kDAC48k) }
func (Mclk12M288) ADC48kDAC8k() Rate[Mclk12M288]  { return mustRate[Mclk12M288](ADC48kDAC8k) }
func (Mclk12M288) ADC8kDAC48k() Rate[Mclk12M288]  { return mustRate[Mclk12M288](ADC8kDAC48k) }
func (Mclk12M288) ADC8kDAC8k() Rate[Mclk12M288]   { return mustRate[Mclk12M288](ADC8kDAC8k) }
func (Mclk12M288) ADC32kDAC32k() Rate[Mclk12M288] { return mustRate[Mclk12M288](ADC32kDAC32k) }
func (Mclk12M288) ADC96kDAC96k() Rate[Mclk12M288] { return mustRate[Mclk12M288](ADC96kDAC96k) }

func (Mclk18M432) ADC48kDAC48k() Rate[Mclk18M432] { return mustRate[Mclk18M432](ADC48kDAC48k) }
func (Mclk18M432) ADC48kDAC8k() Rate[Mclk18M432]  { return mustRate[Mclk18M432](ADC48kDAC8k) }
func (Mclk18M432) ADC8kDAC48k() Rate[Mclk18M432]  { return mustRate[Mclk18M432](ADC8kDAC48k) }
func (Mclk18M432) ADC8kDAC8k() Rate[Mclk18M432]   { return mustRate[Mclk18M432](ADC8kDAC8k) }
func (Mclk18M432) ADC32kDAC32k() Rate[Mclk18M432] { return mustRate[Mclk18M432](ADC32kDAC32k) }
func (Mclk18M432) ADC96kDAC96k() Rate[Mclk18M432] { return mustRate[Mclk18M432](ADC96kDAC96k) }

func (Mclk11M2896) ADC44k1DAC44k1() Rate[Mclk11M2896] { return mustRate[Mclk11M2896](ADC44k1DAC44k1) }
func (Mclk11M2896) ADC44k1DAC8k() Rate[Mclk11M2896]   { return mustRate[Mclk11M2896](ADC44k1DAC8k) }
func (Mclk11M2896) ADC8kDAC44k1() Rate[Mclk11M2896]   { return mustRate[Mclk11M2896](ADC8kDAC44k1) }
func (Mclk11M2896) ADC8kDAC8k() Rate[Mclk11M2896]     { return mustRate[Mclk11M2896](ADC8kDAC8k) }
func (Mclk11M2896) ADC88k2DAC88k2() Rate[Mclk11M2896] { return mustRate[Mclk11M2896](ADC88k2DAC88k2) }

func (Mclk16M9344) ADC44k1DAC44k1() Rate[Mclk16M9344] { return mustRate[Mclk16M9344](ADC44k1DAC44k1) }
func (Mclk16M9344) ADC44k1DAC8k() Rate[Mclk16M9344]   { return mustRate[Mclk16M9344](ADC44k1DAC8k) }
func (Mclk16M9344) ADC8kDAC44k1() Rate[Mclk16M9344]   { return mustRate[Mclk16M9344](ADC8kDAC44k1) }
func (Mclk16M9344) ADC8kDAC8k() Rate[Mclk16M9344]     { return mustRate[Mclk16M9344](ADC8kDAC8k) }
func (Mclk16M9344) ADC88k2DAC88k2() Rate[Mclk16M9344] { return mustRate[Mclk16M9344](ADC88k2DAC88k2) }

func (Mclk12M) ADC48kDAC48k() Rate[Mclk12M]   { return mustRate[Mclk12M](ADC48kDAC48k) }
func (Mclk12M) ADC44k1DAC44k1() Rate[Mclk12M] { return mustRate[Mclk12M](ADC44k1DAC44k1) }
func (Mclk12M) ADC48kDAC8k() Rate[Mclk12M]    { return mustRate[Mclk12M](ADC48kDAC8k) }
func (Mclk12M) ADC44k1DAC8k() Rate[Mclk12M]   { return mustRate[Mclk12M](ADC44k1DAC8k) }
func (Mclk12M) ADC8kDAC48k() Rate[Mclk12M]    { return mustRate[Mclk12M](ADC8kDAC48k) }
func (Mclk12M) ADC8kDAC44k1() Rate[Mclk12M]   { return mustRate[Mclk12M](ADC8kDAC44k1) }
func (Mclk12M) ADC8kDAC8k() Rate[Mclk12M]     { return mustRate[Mclk12M](ADC8kDAC8k) }
func (Mclk12M) ADC8kDAC8kAlt() Rate[Mclk12M]  { return mustRate[Mclk12M](ADC8kDAC8kAlt) }
func (Mclk12M) ADC32kDAC32k() Rate[Mclk12M]   { return mustRate[Mclk12M](ADC32kDAC32k) }
func (Mclk12M) ADC96kDAC96k() Rate[Mclk12M]   { return mustRate[Mclk12M](ADC96kDAC96k) }
func (Mclk12M) ADC88k2DAC88k2() Rate[Mclk12M] { return mustRate[Mclk12M](ADC88k2DAC88k2) }

// ClockedSampling is the sampling control register for a known master clock,
// before a rate has been chosen.
type ClockedSampling[C Clock] struct {
	data uint16
}

func NewSamplingWithClock[C Clock](_ C) ClockedSampling[C] {
	return ClockedSampling[C]{}
}

func (ClockedSampling[C]) register() base.RegisterID { return base.Sampling }

func (s ClockedSampling[C]) SampleRate(r Rate[C]) RatedSampling[C] {
	return store[RatedSampling[C]](writeRate(load(s), r))
}

func (s ClockedSampling[C]) ClkIDiv2() Flag[ClockedSampling[C]] {
	return flagOf(s, base.ClkIDiv2)
}

func (s ClockedSampling[C]) ClkODiv2() Flag[ClockedSampling[C]] {
	return flagOf(s, base.ClkODiv2)
}

// RatedSampling has a rate and can be sent. Choosing another rate for the
// same clock keeps it finalizable.
type RatedSampling[C Clock] struct {
	data uint16
}

func (s RatedSampling[C]) SampleRate(r Rate[C]) RatedSampling[C] {
	return store[RatedSampling[C]](writeRate(load(s), r))
}

func (s RatedSampling[C]) ClkIDiv2() Flag[RatedSampling[C]] {
	return flagOf(s, base.ClkIDiv2)
}

func (s RatedSampling[C]) ClkODiv2() Flag[RatedSampling[C]] {
	return flagOf(s, base.ClkODiv2)
}

func (RatedSampling[C]) register() base.RegisterID { return base.Sampling }

// Frame panics when the rate code is not one of the clock's named rates.
// Only a zero value can get there, and only for clocks without a
// 000000 code.
func (s RatedSampling[C]) Frame() Frame {
	f := frameOf(s)
	code := uint8(base.SampleRateCode.Extract(f.Payload()))

	var clk C
	for _, e := range rateTable[clk.Hz()] {
		if e.code == code {
			return f
		}
	}
	panic(fmt.Sprintf("command: no rate with code 0b%06b for %dHz, use SampleRate", code, clk.Hz()))
}

func writeRate[C Clock](data uint16, r Rate[C]) uint16 {
	if !r.valid {
		panic("command: zero Rate, use a clock method or LookupRate")
	}
	f := base.SampleRateCode
	return data&^f.Mask() | uint16(r.entry.code)&f.Mask()
}
