package debugger

import (
	"fmt"
	"strings"

	termui "github.com/gizak/termui/v3"
	ui "github.com/gizak/termui/v3"
	widgets "github.com/gizak/termui/v3/widgets"

	"github.com/handegar/wm8731/base"
	"github.com/handegar/wm8731/command"
	"github.com/handegar/wm8731/disasm"
	"github.com/handegar/wm8731/settings"
	"github.com/handegar/wm8731/utils"
)

const (
	MainScreen int = iota
	BitMapScreen
	HelpScreen
)

type UIState struct {
	terminalWidth  int
	terminalHeight int
	centerLine     int

	currentScreen  int
	registerCursor base.RegisterID
	bitCursor      uint

	frameView    *widgets.Paragraph
	registerView *widgets.Paragraph
	metaInfoView *widgets.Paragraph
	helpLineView *widgets.Paragraph
}

var uiState UIState

var boxTitleStyle = termui.NewStyle(termui.ColorRed, termui.ColorBlue)

func Init() {
	resize()
}

func resize() {
	width, height := termui.TerminalDimensions()
	uiState.terminalHeight = height
	uiState.terminalWidth = width
	uiState.centerLine = width / 2
	if uiState.centerLine < 48 {
		uiState.centerLine = 48
	}
}

/*
Returns the Event.ID string for events which is relevant for others
(quit, next frame etc.)
*/
func WaitForInput(state *State) string {
	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			if uiState.currentScreen != MainScreen {
				uiState.currentScreen = MainScreen
				UpdateScreen(lastFrames, lastState)
				continue
			}
			return "quit"
		case "n", "<Down>":
			return "next frame"
		case "p", "<Up>":
			if state.Pos > 0 {
				return "previous frame"
			}
		case "<Home>":
			return "first frame"
		case "<End>":
			return "last frame"
		case "6":
			moveBitCursor(-1)
		case "4":
			moveBitCursor(1)
		case "2":
			moveRegisterCursor(1)
		case "8":
			moveRegisterCursor(-1)
		case "h", "<F1>", "?":
			toggleScreen(HelpScreen)
		case "m", "<F2>":
			toggleScreen(BitMapScreen)
		case "<Resize>":
			resize()
			UpdateScreen(lastFrames, lastState)
		}
	}

	return ""
}

func toggleScreen(screen int) {
	if uiState.currentScreen == screen {
		uiState.currentScreen = MainScreen
	} else {
		uiState.currentScreen = screen
	}
	UpdateScreen(lastFrames, lastState)
}

// Bit 8 is leftmost on screen, so moving right lowers the bit index.
func moveBitCursor(delta int) {
	uiState.bitCursor = uint((int(uiState.bitCursor) + delta + base.PayloadBits) % base.PayloadBits)
	UpdateScreen(lastFrames, lastState)
}

func moveRegisterCursor(delta int) {
	n := int(base.Reset)
	uiState.registerCursor = base.RegisterID((int(uiState.registerCursor) + delta + n) % n)
	UpdateScreen(lastFrames, lastState)
}

func UpdateScreen(frames []command.Frame, state *State) {
	lastState = state
	lastFrames = frames

	switch uiState.currentScreen {
	case HelpScreen:
		renderHelpScreen()
	case BitMapScreen:
		renderBitMap(state)
	case MainScreen:
		renderMainScreen(frames, state)
	default:
		utils.Assert(false, "Unknown ui-screen: %d", uiState.currentScreen)
	}
}

func renderMainScreen(frames []command.Frame, state *State) {
	ui.Clear()
	updateFrameView(frames, state)
	updateRegisterView(state)
	updateMetaInfoView(state)
	updateHelpLineView()

	ui.Render(uiState.frameView, uiState.registerView,
		uiState.metaInfoView, uiState.helpLineView)
}

func updateHelpLineView() {
	helpLine := widgets.NewParagraph()
	helpLine.Text =
		"[ESC/q:](fg:black) Quit [|](fg:white,bg:black) " +
			"[F1/h/?:](fg:black) Help [|](fg:white,bg:black) " +
			"[m/F2:](fg:black) Bit map [|](fg:white,bg:black) " +
			"[n/Down:](fg:black) Next frame "

	helpLine.Border = false
	helpLine.TextStyle = boxTitleStyle
	helpLine.SetRect(0, uiState.terminalHeight-1,
		uiState.terminalWidth, uiState.terminalHeight)

	uiState.helpLineView = helpLine
}

// Lists the sequence with the next frame to be written highlighted
func updateFrameView(frames []command.Frame, state *State) {
	height := uiState.terminalHeight - 6 - 1

	code := widgets.NewParagraph()
	code.Title = fmt.Sprintf("  Frames (%d/%d)  ", state.Pos, len(frames))
	code.TitleStyle = boxTitleStyle
	code.Text = generateFrameListing(frames, state, height-2)
	code.SetRect(0, 0, uiState.centerLine, height)

	uiState.frameView = code
}

func generateFrameListing(frames []command.Frame, state *State, rows int) string {
	var lines []string

	first := 0
	if state.Pos > rows/2 {
		first = state.Pos - rows/2
	}

	for i := first; i < len(frames) && i < first+rows; i++ {
		frameColor := "fg:white"
		numColor := "fg:yellow"
		if i < state.Pos {
			frameColor = "fg:green"
		}
		if i == state.Pos { // Next frame to write
			frameColor = "fg:red,bg:white,mod:bold"
			numColor = "fg:black,bg:white,mod:bold"
		}

		name := "<unknown>"
		if d, ok := disasm.Decode(frames[i]); ok {
			name = d.Register.Name
		}
		lines = append(lines, fmt.Sprintf("[%3d](%s)[  0x%04X %-24s](%s)",
			i, numColor, frames[i].Uint16(), name, frameColor))
	}

	if state.Pos >= len(frames) {
		lines = append(lines, "[  <end of sequence>](fg:cyan)")
	}
	return strings.Join(lines, "\n")
}

// Prints the shadow register contents. Registers written by the last frame
// are highlighted.
func updateRegisterView(state *State) {
	var lines []string
	for id := base.LeftLineIn; id < base.Reset; id++ {
		d, _ := disasm.Decode(state.Frame(id))

		nameColor := "fg:cyan"
		if state.IsChanged(id) {
			nameColor = "fg:black,bg:yellow"
		}
		lines = append(lines, fmt.Sprintf(" [R%d %-23s](%s) 0b%s",
			d.Register.Address, d.Register.Name, nameColor,
			utils.BitString(state.Payloads[id], base.PayloadBits)))

		var parts []string
		for _, fv := range d.Fields {
			parts = append(parts, fmt.Sprintf("[%s](fg:yellow)=%s", fv.Field.Name, fv.Text))
		}
		lines = append(lines, "    "+strings.Join(parts, " "))
	}

	regP := widgets.NewParagraph()
	regP.Title = "  Registers  "
	regP.TitleStyle = boxTitleStyle
	regP.BorderStyle = termui.NewStyle(termui.ColorGreen)
	regP.Text = strings.Join(lines, "\n")
	regP.SetRect(uiState.centerLine-1, 0, uiState.terminalWidth, uiState.terminalHeight-6-1)

	uiState.registerView = regP
}

// Prints the docs for the fields changed by the last frame
func updateMetaInfoView(state *State) {
	infoStr := "[No register written yet](fg:cyan)"
	if len(state.Changed) > 0 {
		id := state.Changed[0]
		d, _ := disasm.Decode(state.Frame(id))

		var parts []string
		for _, fv := range d.Fields {
			doc := disasm.FieldDocs[fv.Field.Name]
			parts = append(parts, fmt.Sprintf("[%s](fg:yellow): %s", fv.Field.Name, doc.Short))
		}
		infoStr = fmt.Sprintf("[%s](fg:red): %s", d.Register.Name, strings.Join(parts, ", "))
	}

	infoP := widgets.NewParagraph()
	infoP.Title = "  Info  "
	infoP.TitleStyle = boxTitleStyle
	infoP.Text = infoStr
	infoP.SetRect(0, uiState.terminalHeight-7, uiState.terminalWidth, uiState.terminalHeight-1)

	uiState.metaInfoView = infoP
}

func renderHelpScreen() {
	ui.Clear()
	ypos := 0

	frame := widgets.NewParagraph()
	frame.Title = "  Help / Keys / Keywords  "
	frame.TitleStyle = boxTitleStyle
	frame.SetRect(0, 0, uiState.terminalWidth, uiState.terminalHeight)
	ypos += 1

	keys := widgets.NewList()
	keys.Border = false
	keys.TextStyle = termui.NewStyle(termui.ColorYellow)
	keys.SelectedRowStyle = termui.NewStyle(termui.ColorCyan)

	keys.Rows = append(keys.Rows, "Keys:")
	keys.Rows = append(keys.Rows, " h, F1, ?:          [This help-page](fg:white)")
	keys.Rows = append(keys.Rows, " ESC, q, CTRL-C:    [Quit viewer / exit help](fg:white)")
	keys.Rows = append(keys.Rows, " m, F2:             [Show register bit map](fg:white)")
	keys.Rows = append(keys.Rows, " 6 (Keypad right):  [Bit map: Next bit](fg:white)")
	keys.Rows = append(keys.Rows, " 4 (Keypad left):   [Bit map: Previous bit](fg:white)")
	keys.Rows = append(keys.Rows, " 8 (Keypad up):     [Bit map: Previous register](fg:white)")
	keys.Rows = append(keys.Rows, " 2 (Keypad down):   [Bit map: Next register](fg:white)")
	keys.Rows = append(keys.Rows, " n, DownKey:        [Write next frame](fg:white)")
	keys.Rows = append(keys.Rows, " p, UpKey:          [Step back one frame](fg:white)")
	keys.Rows = append(keys.Rows, " Home, End:         [First / last frame](fg:white)")

	keys.SetRect(1, ypos, uiState.terminalWidth-1, ypos+len(keys.Rows)+2)
	ypos += len(keys.Rows) + 1

	help := widgets.NewParagraph()
	help.Border = false
	help.Text = "[Keywords:](fg:cyan)\n" +
		" [Frame](fg:yellow):     16 bit word. Register address in bits 15..9, payload in 8..0.\n" +
		" [Payload](fg:yellow):   The 9 data bits of a register.\n" +
		" [*BOTH](fg:yellow):     Loads the same payload into the other channel.\n" +
		" [Sequence](fg:yellow):  The frames in the order they are written to the codec.\n" +
		fmt.Sprintf(" [Version](fg:yellow):   %s\n", settings.Version)

	help.SetRect(1, ypos, uiState.terminalWidth-1, uiState.terminalHeight-1)

	ui.Render(frame)
	ui.Render(keys)
	ui.Render(help)
}
