package base

// Register IDs. Power down and Reset share an address so registers are
// indexed by ID and not by address.
type RegisterID int

const (
	LeftLineIn RegisterID = iota
	RightLineIn
	LeftHeadphoneOut
	RightHeadphoneOut
	AnalogueAudioPath
	DigitalAudioPath
	PowerDown
	DigitalAudioInterface
	Sampling
	ActiveControl
	Reset
)

// Line input (R0, R1)
var (
	LineInVolume = Field{"INVOL", 0, 5, Volume}
	LineInMute   = Field{"INMUTE", 7, 1, Flag}
	LineInBoth   = Field{"INBOTH", 8, 1, Flag}
)

// Headphone output (R2, R3)
var (
	HeadphoneVolume    = Field{"HPVOL", 0, 7, Volume}
	HeadphoneZeroCross = Field{"ZCEN", 7, 1, Flag}
	HeadphoneBoth      = Field{"HPBOTH", 8, 1, Flag}
)

// Analogue audio path (R4)
var (
	MicBoost = Field{"MICBOOST", 0, 1, Flag}
	MuteMic  = Field{"MUTEMIC", 1, 1, Flag}
	InSel    = Field{"INSEL", 2, 1, Enum}
	Bypass   = Field{"BYPASS", 3, 1, Flag}
	DacSel   = Field{"DACSEL", 4, 1, Enum}
	SideTone = Field{"SIDETONE", 5, 1, Flag}
	SideAtt  = Field{"SIDEATT", 6, 2, Volume}
)

// Digital audio path (R5)
var (
	ADCHighPassDisable = Field{"ADCHPD", 0, 1, Flag}
	DeEmphasis         = Field{"DEEMP", 1, 2, Enum}
	DACMute            = Field{"DACMU", 3, 1, Flag}
	HPFilterOffset     = Field{"HPOR", 4, 1, Enum}
)

// Power down (R6)
var (
	LineInPD = Field{"LINEINPD", 0, 1, Flag}
	MicPD    = Field{"MICPD", 1, 1, Flag}
	ADCPD    = Field{"ADCPD", 2, 1, Flag}
	DACPD    = Field{"DACPD", 3, 1, Flag}
	OutPD    = Field{"OUTPD", 4, 1, Flag}
	OscPD    = Field{"OSCPD", 5, 1, Flag}
	ClkOutPD = Field{"CLKOUTPD", 6, 1, Flag}
	PowerOff = Field{"POWEROFF", 7, 1, Flag}
)

// Digital audio interface (R7)
var (
	Format     = Field{"FORMAT", 0, 2, Enum}
	WordLength = Field{"IWL", 2, 2, Enum}
	LRPhase    = Field{"LRP", 4, 1, Flag}
	LRSwap     = Field{"LRSWAP", 5, 1, Flag}
	MasterMode = Field{"MS", 6, 1, Enum}
	BCLKInvert = Field{"BCLKINV", 7, 1, Flag}
)

// Sampling control (R8)
var (
	UsbNormal  = Field{"USB/NORMAL", 0, 1, Enum}
	BOSR       = Field{"BOSR", 1, 1, Flag}
	SampleRate = Field{"SR", 2, 4, UInt}
	ClkIDiv2   = Field{"CLKIDIV2", 6, 1, Flag}
	ClkODiv2   = Field{"CLKODIV2", 7, 1, Flag}

	// Mode, BOSR and SR together, as used by the named sample rates
	SampleRateCode = Field{"SRCODE", 0, 6, UInt}
)

// Active control (R9)
var (
	Active = Field{"ACTIVE", 0, 1, Flag}
)

var Registers = map[RegisterID]Register{
	LeftLineIn: {"Left Line In", 0x0, 0b0_1001_0111,
		[]Field{LineInVolume, {"", 5, 2, Blank}, LineInMute, LineInBoth}},
	RightLineIn: {"Right Line In", 0x1, 0b0_1001_0111,
		[]Field{LineInVolume, {"", 5, 2, Blank}, LineInMute, LineInBoth}},
	LeftHeadphoneOut: {"Left Headphone Out", 0x2, 0b0_0111_1001,
		[]Field{HeadphoneVolume, HeadphoneZeroCross, HeadphoneBoth}},
	RightHeadphoneOut: {"Right Headphone Out", 0x3, 0b0_0111_1001,
		[]Field{HeadphoneVolume, HeadphoneZeroCross, HeadphoneBoth}},
	AnalogueAudioPath: {"Analogue Audio Path", 0x4, 0b0_0000_1010,
		[]Field{MicBoost, MuteMic, InSel, Bypass, DacSel, SideTone, SideAtt, {"", 8, 1, Blank}}},
	DigitalAudioPath: {"Digital Audio Path", 0x5, 0b0_0000_1000,
		[]Field{ADCHighPassDisable, DeEmphasis, DACMute, HPFilterOffset, {"", 5, 4, Blank}}},
	PowerDown: {"Power Down", 0x6, 0b0_1001_1111,
		[]Field{LineInPD, MicPD, ADCPD, DACPD, OutPD, OscPD, ClkOutPD, PowerOff, {"", 8, 1, Blank}}},
	DigitalAudioInterface: {"Digital Audio Interface", 0x7, 0b0_0000_1010,
		[]Field{Format, WordLength, LRPhase, LRSwap, MasterMode, BCLKInvert, {"", 8, 1, Blank}}},
	Sampling: {"Sampling Control", 0x8, 0b0_0000_0000,
		[]Field{UsbNormal, BOSR, SampleRate, ClkIDiv2, ClkODiv2, {"", 8, 1, Blank}}},
	ActiveControl: {"Active Control", 0x9, 0b0,
		[]Field{Active, {"", 1, 8, Blank}}},
	// The reset trigger reuses the power down address and reset value
	Reset: {"Reset", 0x6, 0b0_1001_1111,
		[]Field{{"RESET", 0, 9, UInt}}},
}

// ByAddress returns the register decoded for a frame address. Reset is never
// returned since its address is shared with Power Down.
func ByAddress(address uint8) (RegisterID, Register, bool) {
	for id := LeftLineIn; id < Reset; id++ {
		r := Registers[id]
		if r.Address == address {
			return id, r, true
		}
	}
	return -1, Register{}, false
}
