package disasm

type FieldDoc struct {
	Short string
	Long  string
}

var FieldDocs = map[string]FieldDoc{
	"INVOL": {Short: "Line input volume",
		Long: "Line input gain from +12dB down to -34.5dB in 1.5dB steps. " +
			"0b10111 is 0dB.",
	},
	"INMUTE": {Short: "Line input mute",
		Long: "Mutes the line input to the ADC.",
	},
	"INBOTH": {Short: "Simultaneous load",
		Long: "Writes the volume and mute of this channel to the other " +
			"channel as well.",
	},
	"HPVOL": {Short: "Headphone output volume",
		Long: "Headphone gain from +6dB (0x7F) down to -73dB (0x30) in 1dB " +
			"steps. Anything below 0x30 mutes the output.",
	},
	"ZCEN": {Short: "Zero cross detect",
		Long: "Volume changes take effect when the signal crosses zero.",
	},
	"HPBOTH": {Short: "Simultaneous load",
		Long: "Writes the headphone volume and zero cross setting of this " +
			"channel to the other channel as well.",
	},
	"MICBOOST": {Short: "Microphone boost",
		Long: "Adds 20dB of gain to the microphone input.",
	},
	"MUTEMIC": {Short: "Microphone mute",
		Long: "Mutes the microphone input to the ADC.",
	},
	"INSEL": {Short: "ADC input select",
		Long: "Feeds either the line input or the microphone to the ADC.",
	},
	"BYPASS": {Short: "Bypass",
		Long: "Routes the line input straight to the outputs.",
	},
	"DACSEL": {Short: "DAC select",
		Long: "Routes the DAC to the outputs.",
	},
	"SIDETONE": {Short: "Side tone",
		Long: "Routes the microphone to the outputs.",
	},
	"SIDEATT": {Short: "Side tone attenuation",
		Long: "-6dB, -9dB, -12dB or -15dB of side tone attenuation.",
	},
	"ADCHPD": {Short: "ADC high pass filter",
		Long: "Disables the high pass filter in front of the ADC.",
	},
	"DEEMP": {Short: "De-emphasis",
		Long: "De-emphasis for 32kHz, 44.1kHz or 48kHz material.",
	},
	"DACMU": {Short: "DAC soft mute",
		Long: "Ramps the DAC output down to silence.",
	},
	"HPOR": {Short: "High pass filter offset",
		Long: "Stores the DC offset when the high pass filter is disabled " +
			"instead of clearing it.",
	},
	"LINEINPD": {Short: "Power down", Long: "Line input power down."},
	"MICPD":    {Short: "Power down", Long: "Microphone input and bias power down."},
	"ADCPD":    {Short: "Power down", Long: "ADC power down."},
	"DACPD":    {Short: "Power down", Long: "DAC power down."},
	"OUTPD":    {Short: "Power down", Long: "Output stage power down."},
	"OSCPD":    {Short: "Power down", Long: "Crystal oscillator power down."},
	"CLKOUTPD": {Short: "Power down", Long: "CLKOUT power down."},
	"POWEROFF": {Short: "Power down", Long: "Powers the whole device off."},
	"FORMAT": {Short: "Audio data format",
		Long: "Right justified, left justified, I2S or DSP mode.",
	},
	"IWL": {Short: "Input word length",
		Long: "16, 20, 24 or 32 bit samples on the digital interface.",
	},
	"LRP": {Short: "DACLRC phase",
		Long: "Swaps the LRC polarity, or selects mode B in DSP mode.",
	},
	"LRSWAP": {Short: "DAC left/right swap",
		Long: "Puts the right channel DAC data on the left and the other way around.",
	},
	"MS": {Short: "Master/slave mode",
		Long: "In master mode the codec drives BCLK and the LRC clocks.",
	},
	"BCLKINV": {Short: "Bit clock invert",
		Long: "Inverts BCLK.",
	},
	"USB/NORMAL": {Short: "Mode select",
		Long: "USB mode runs from a 12MHz MCLK. Normal mode uses 256fs or 384fs.",
	},
	"BOSR": {Short: "Base oversampling rate",
		Long: "Normal mode: 256fs when clear, 384fs when set. " +
			"USB mode: 250fs when clear, 272fs when set.",
	},
	"SR": {Short: "Sample rate",
		Long: "ADC and DAC rate code. The legal codes depend on the mode and BOSR bits.",
	},
	"CLKIDIV2": {Short: "Core clock divider",
		Long: "Divides MCLK by two before it reaches the core.",
	},
	"CLKODIV2": {Short: "CLKOUT divider",
		Long: "CLKOUT is the core clock divided by two.",
	},
	"ACTIVE": {Short: "Activate interface",
		Long: "Starts the digital audio interface.",
	},
}
