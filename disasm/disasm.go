package disasm

import (
	"fmt"
	"strings"

	"github.com/handegar/wm8731/base"
	"github.com/handegar/wm8731/command"
	"github.com/handegar/wm8731/settings"
	"github.com/handegar/wm8731/utils"
)

type FieldValue struct {
	Field base.Field
	Value uint16
	Text  string // Human readable meaning of Value
}

type Decoded struct {
	Frame    command.Frame
	ID       base.RegisterID
	Register base.Register
	Fields   []FieldValue
}

// Decode splits a frame into its register fields. ok is false for addresses
// the codec does not have.
func Decode(f command.Frame) (d Decoded, ok bool) {
	id, reg, ok := base.ByAddress(f.Address())
	if !ok {
		return Decoded{Frame: f}, false
	}

	d = Decoded{Frame: f, ID: id, Register: reg}
	for _, field := range reg.Fields {
		if field.Kind == base.Blank {
			continue
		}
		v := field.Extract(f.Payload())
		d.Fields = append(d.Fields, FieldValue{field, v, describe(id, field, v)})
	}
	return d, true
}

func describe(id base.RegisterID, field base.Field, v uint16) string {
	switch field.Kind {
	case base.Flag:
		if v == 1 {
			return "on"
		}
		return "off"
	case base.Volume:
		return volumeToString(id, v)
	case base.Enum:
		if names, found := enumNames[field.Name]; found && int(v) < len(names) {
			return names[v]
		}
	}
	return fmt.Sprintf("0b%s", utils.BitString(v, int(field.Len)))
}

var enumNames = map[string][]string{
	base.InSel.Name:          {"line", "microphone"},
	base.DacSel.Name:         {"deselected", "selected"},
	base.DeEmphasis.Name:     {"off", "32kHz", "44.1kHz", "48kHz"},
	base.HPFilterOffset.Name: {"clear", "store"},
	base.Format.Name:         {"right justified", "left justified", "I2S", "DSP"},
	base.WordLength.Name:     {"16 bits", "20 bits", "24 bits", "32 bits"},
	base.MasterMode.Name:     {"slave", "master"},
	base.UsbNormal.Name:      {"normal", "USB"},
}

func volumeToString(id base.RegisterID, v uint16) string {
	switch id {
	case base.LeftHeadphoneOut, base.RightHeadphoneOut:
		db, ok := command.HeadphoneVolume(v).Decibels()
		if !ok {
			return "mute"
		}
		return fmt.Sprintf("%+.0fdB", db)
	case base.LeftLineIn, base.RightLineIn:
		return fmt.Sprintf("%+.1fdB", command.LineInVolume(v).Decibels())
	case base.AnalogueAudioPath:
		return fmt.Sprintf("%.0fdB", command.SideToneAttenuation(v).Decibels())
	}
	return fmt.Sprintf("%d", v)
}

func FrameToString(f command.Frame, showFieldData bool) string {
	d, ok := Decode(f)
	if !ok {
		return fmt.Sprintf("  <unknown 0x%04X>\n", f.Uint16())
	}

	ret := fmt.Sprintf("  %-24s", d.Register.Name)
	var parts []string
	for _, fv := range d.Fields {
		parts = append(parts, fmt.Sprintf("%s=%s", fv.Field.Name, fv.Text))
	}
	ret += strings.Join(parts, " ")

	if showFieldData {
		ret += fmt.Sprintf("\t;; [0x%04X R%d 0b%s]",
			f.Uint16(), f.Address(), utils.BitString(f.Payload(), base.PayloadBits))
	}
	return ret + "\n"
}

func PrintFrameListing(frames []command.Frame) {
	fmt.Printf("\n;;\n;; Frames (%d)\n;;\n", len(frames))
	for pos, f := range frames {
		fmt.Printf("%3d:", pos)
		fmt.Print(FrameToString(f, true))

		if pos+1 >= settings.MaxNumberOfFrames {
			fmt.Printf(";; Max number of frames reached (%d)\n",
				settings.MaxNumberOfFrames)
			break
		}
	}
	fmt.Println()
}
