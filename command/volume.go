package command

// Headphone output volume. Codes below 0x30 mute the output.
type HeadphoneVolume uint8

const (
	HpVol6dB       HeadphoneVolume = 0x7F
	HpVol5dB       HeadphoneVolume = 0x7E
	HpVol4dB       HeadphoneVolume = 0x7D
	HpVol3dB       HeadphoneVolume = 0x7C
	HpVol2dB       HeadphoneVolume = 0x7B
	HpVol1dB       HeadphoneVolume = 0x7A
	HpVol0dB       HeadphoneVolume = 0x79
	HpVolMinus1dB  HeadphoneVolume = 0x78
	HpVolMinus2dB  HeadphoneVolume = 0x77
	HpVolMinus3dB  HeadphoneVolume = 0x76
	HpVolMinus4dB  HeadphoneVolume = 0x75
	HpVolMinus5dB  HeadphoneVolume = 0x74
	HpVolMinus6dB  HeadphoneVolume = 0x73
	HpVolMinus7dB  HeadphoneVolume = 0x72
	HpVolMinus8dB  HeadphoneVolume = 0x71
	HpVolMinus9dB  HeadphoneVolume = 0x70
	HpVolMinus10dB HeadphoneVolume = 0x6F
	HpVolMinus11dB HeadphoneVolume = 0x6E
	HpVolMinus12dB HeadphoneVolume = 0x6D
	HpVolMinus13dB HeadphoneVolume = 0x6C
	HpVolMinus14dB HeadphoneVolume = 0x6B
	HpVolMinus15dB HeadphoneVolume = 0x6A
	HpVolMinus16dB HeadphoneVolume = 0x69
	HpVolMinus17dB HeadphoneVolume = 0x68
	HpVolMinus18dB HeadphoneVolume = 0x67
	HpVolMinus19dB HeadphoneVolume = 0x66
	HpVolMinus20dB HeadphoneVolume = 0x65
	HpVolMinus21dB HeadphoneVolume = 0x64
	HpVolMinus22dB HeadphoneVolume = 0x63
	HpVolMinus23dB HeadphoneVolume = 0x62
	HpVolMinus24dB HeadphoneVolume = 0x61
	HpVolMinus25dB HeadphoneVolume = 0x60
	HpVolMinus26dB HeadphoneVolume = 0x5F
	HpVolMinus27dB HeadphoneVolume = 0x5E
	HpVolMinus28dB HeadphoneVolume = 0x5D
	HpVolMinus29dB HeadphoneVolume = 0x5C
	HpVolMinus30dB HeadphoneVolume = 0x5B
	HpVolMinus31dB HeadphoneVolume = 0x5A
	HpVolMinus32dB HeadphoneVolume = 0x59
	HpVolMinus33dB HeadphoneVolume = 0x58
	HpVolMinus34dB HeadphoneVolume = 0x57
	HpVolMinus35dB HeadphoneVolume = 0x56
	HpVolMinus36dB HeadphoneVolume = 0x55
	HpVolMinus37dB HeadphoneVolume = 0x54
	HpVolMinus38dB HeadphoneVolume = 0x53
	HpVolMinus39dB HeadphoneVolume = 0x52
	HpVolMinus40dB HeadphoneVolume = 0x51
	HpVolMinus41dB HeadphoneVolume = 0x50
	HpVolMinus42dB HeadphoneVolume = 0x4F
	HpVolMinus43dB HeadphoneVolume = 0x4E
	HpVolMinus44dB HeadphoneVolume = 0x4D
	HpVolMinus45dB HeadphoneVolume = 0x4C
	HpVolMinus46dB HeadphoneVolume = 0x4B
	HpVolMinus47dB HeadphoneVolume = 0x4A
	HpVolMinus48dB HeadphoneVolume = 0x49
	HpVolMinus49dB HeadphoneVolume = 0x48
	HpVolMinus50dB HeadphoneVolume = 0x47
	HpVolMinus51dB HeadphoneVolume = 0x46
	HpVolMinus52dB HeadphoneVolume = 0x45
	HpVolMinus53dB HeadphoneVolume = 0x44
	HpVolMinus54dB HeadphoneVolume = 0x43
	HpVolMinus55dB HeadphoneVolume = 0x42
	HpVolMinus56dB HeadphoneVolume = 0x41
	HpVolMinus57dB HeadphoneVolume = 0x40
	HpVolMinus58dB HeadphoneVolume = 0x3F
	HpVolMinus59dB HeadphoneVolume = 0x3E
	HpVolMinus60dB HeadphoneVolume = 0x3D
	HpVolMinus61dB HeadphoneVolume = 0x3C
	HpVolMinus62dB HeadphoneVolume = 0x3B
	HpVolMinus63dB HeadphoneVolume = 0x3A
	HpVolMinus64dB HeadphoneVolume = 0x39
	HpVolMinus65dB HeadphoneVolume = 0x38
	HpVolMinus66dB HeadphoneVolume = 0x37
	HpVolMinus67dB HeadphoneVolume = 0x36
	HpVolMinus68dB HeadphoneVolume = 0x35
	HpVolMinus69dB HeadphoneVolume = 0x34
	HpVolMinus70dB HeadphoneVolume = 0x33
	HpVolMinus71dB HeadphoneVolume = 0x32
	HpVolMinus72dB HeadphoneVolume = 0x31
	HpVolMinus73dB HeadphoneVolume = 0x30
	HpVolMute      HeadphoneVolume = 0x00
)

// Line input volume, 1.5dB steps.
type LineInVolume uint8

const (
	InVol12dB        LineInVolume = 0x1F
	InVol10p5dB      LineInVolume = 0x1E
	InVol9dB         LineInVolume = 0x1D
	InVol7p5dB       LineInVolume = 0x1C
	InVol6dB         LineInVolume = 0x1B
	InVol4p5dB       LineInVolume = 0x1A
	InVol3dB         LineInVolume = 0x19
	InVol1p5dB       LineInVolume = 0x18
	InVol0dB         LineInVolume = 0x17
	InVolMinus1p5dB  LineInVolume = 0x16
	InVolMinus3dB    LineInVolume = 0x15
	InVolMinus4p5dB  LineInVolume = 0x14
	InVolMinus6dB    LineInVolume = 0x13
	InVolMinus7p5dB  LineInVolume = 0x12
	InVolMinus9dB    LineInVolume = 0x11
	InVolMinus10p5dB LineInVolume = 0x10
	InVolMinus12dB   LineInVolume = 0x0F
	InVolMinus13p5dB LineInVolume = 0x0E
	InVolMinus15dB   LineInVolume = 0x0D
	InVolMinus16p5dB LineInVolume = 0x0C
	InVolMinus18dB   LineInVolume = 0x0B
	InVolMinus19p5dB LineInVolume = 0x0A
	InVolMinus21dB   LineInVolume = 0x09
	InVolMinus22p5dB LineInVolume = 0x08
	InVolMinus24dB   LineInVolume = 0x07
	InVolMinus25p5dB LineInVolume = 0x06
	InVolMinus27dB   LineInVolume = 0x05
	InVolMinus28p5dB LineInVolume = 0x04
	InVolMinus30dB   LineInVolume = 0x03
	InVolMinus31p5dB LineInVolume = 0x02
	InVolMinus33dB   LineInVolume = 0x01
	InVolMinus34p5dB LineInVolume = 0x00
)

// Side tone attenuation
type SideToneAttenuation uint8

const (
	SideAttMinus6dB SideToneAttenuation = iota // (00b)
	SideAttMinus9dB                            // (01b)
	SideAttMinus12dB                           // (10b)
	SideAttMinus15dB                           // (11b)
)

// Decibels returns the gain of a headphone volume code. Muted codes report
// ok as false.
func (v HeadphoneVolume) Decibels() (db float64, ok bool) {
	if v < HpVolMinus73dB {
		return 0, false
	}
	return float64(v) - float64(HpVol0dB), true
}

func (v LineInVolume) Decibels() float64 {
	return 1.5 * (float64(v&0x1F) - float64(InVol0dB))
}

func (a SideToneAttenuation) Decibels() float64 {
	return -6 - 3*float64(a&0b11)
}

type HeadphoneVolumeField[R word] struct {
	Field[R]
}

func (f HeadphoneVolumeField[R]) DB(v HeadphoneVolume) R {
	return f.Bits(uint16(v))
}

func (f HeadphoneVolumeField[R]) Mute() R {
	return f.Bits(uint16(HpVolMute))
}

type LineInVolumeField[R word] struct {
	Field[R]
}

func (f LineInVolumeField[R]) DB(v LineInVolume) R {
	return f.Bits(uint16(v))
}

type SideToneAttenuationField[R word] struct {
	Field[R]
}

func (f SideToneAttenuationField[R]) DB(a SideToneAttenuation) R {
	return f.Bits(uint16(a))
}
