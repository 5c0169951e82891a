package debugger

import (
	"fmt"
	"strings"

	termui "github.com/gizak/termui/v3"
	ui "github.com/gizak/termui/v3"
	widgets "github.com/gizak/termui/v3/widgets"

	"github.com/handegar/wm8731/base"
	"github.com/handegar/wm8731/disasm"
)

const CURSOR_COLOR = "(fg:black,bg:green)"
const CHANGED_COLOR = "(fg:red)"

func renderBitMap(state *State) {
	ui.Clear()
	width, height := uiState.terminalWidth, uiState.terminalHeight

	bitMap := widgets.NewParagraph()
	bitMap.Title = fmt.Sprintf("  Register bits after frame #%d  ", state.Pos)
	bitMap.TitleStyle = termui.NewStyle(termui.ColorYellow, termui.ColorBlue)
	bitMap.Text = buildBitMapText(state, uiState.registerCursor, uiState.bitCursor)
	bitMap.BorderStyle = termui.NewStyle(termui.ColorGreen)
	bitMap.SetRect(0, 0, width, int(base.Reset)+4)

	infoP := widgets.NewParagraph()
	infoP.Title = "  Field  "
	infoP.TitleStyle = boxTitleStyle
	infoP.Text = fieldInfo(state, uiState.registerCursor, uiState.bitCursor)
	infoP.SetRect(0, int(base.Reset)+4, width, height-1)

	updateHelpLineView()

	ui.Render(bitMap)
	ui.Render(infoP)
	ui.Render(uiState.helpLineView)
}

// One row per register, bit 8 first
func buildBitMapText(state *State, cursorReg base.RegisterID, cursorBit uint) string {
	var lines []string
	header := fmt.Sprintf("%-28s", "")
	for bit := base.PayloadBits - 1; bit >= 0; bit-- {
		header += fmt.Sprintf(" %d", bit)
	}
	lines = append(lines, header)

	for id := base.LeftLineIn; id < base.Reset; id++ {
		reg := base.Registers[id]
		row := fmt.Sprintf("R%d %-25s", reg.Address, reg.Name)

		for bit := uint(base.PayloadBits); bit > 0; bit-- {
			b := bit - 1
			v := (state.Payloads[id] >> b) & 1
			cell := fmt.Sprintf("%d", v)
			if _, found := fieldAtBit(reg, b); !found {
				cell = "-"
			}

			switch {
			case id == cursorReg && b == cursorBit:
				cell = "[" + cell + "]" + CURSOR_COLOR
			case state.IsChanged(id) && v == 1:
				cell = "[" + cell + "]" + CHANGED_COLOR
			}
			row += " " + cell
		}
		lines = append(lines, row)
	}

	return strings.Join(lines, "\n")
}

// fieldAtBit returns the named field covering a payload bit. Unused bits
// have no field.
func fieldAtBit(reg base.Register, bit uint) (base.Field, bool) {
	for _, f := range reg.Fields {
		if f.Kind == base.Blank {
			continue
		}
		if bit >= f.Offset && bit < f.Offset+f.Len {
			return f, true
		}
	}
	return base.Field{}, false
}

func fieldInfo(state *State, id base.RegisterID, bit uint) string {
	reg := base.Registers[id]
	field, found := fieldAtBit(reg, bit)
	if !found {
		return fmt.Sprintf("[%s](fg:red) bit %d: [unused](fg:cyan)", reg.Name, bit)
	}

	d, _ := disasm.Decode(state.Frame(id))
	text := ""
	for _, fv := range d.Fields {
		if fv.Field.Name == field.Name {
			text = fv.Text
		}
	}

	doc := disasm.FieldDocs[field.Name]
	return fmt.Sprintf("[%s](fg:red) bits %d..%d: [%s](fg:yellow) = %s\n[%s](fg:white)\n[%s](fg:cyan)",
		reg.Name, field.Offset+field.Len-1, field.Offset, field.Name, text,
		doc.Short, doc.Long)
}
