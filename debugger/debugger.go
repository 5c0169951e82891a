package debugger

import (
	termui "github.com/gizak/termui/v3"
	"github.com/pkg/errors"

	"github.com/handegar/wm8731/command"
)

var lastState *State
var lastFrames []command.Frame

var previousStates map[int]*State = make(map[int]*State)

func Reset() {
	previousStates = make(map[int]*State)
}

func RegisterState(state *State) {
	if previousStates[state.Pos] == nil {
		previousStates[state.Pos] = state.Duplicate()
	}
}

func GetRegisteredState(pos int) (*State, bool) {
	prevState, found := previousStates[pos]
	return prevState, found
}

// Step moves the state to position pos, replaying frames from the closest
// registered state.
func Step(frames []command.Frame, state *State, pos int) *State {
	if pos < 0 {
		pos = 0
	}
	if pos > len(frames) {
		pos = len(frames)
	}

	if prev, found := GetRegisteredState(pos); found {
		return prev.Duplicate()
	}

	if pos < state.Pos {
		state = NewState()
	} else {
		state = state.Duplicate()
	}
	for state.Pos < pos {
		state.Apply(frames[state.Pos])
		RegisterState(state)
	}
	return state
}

// Run opens the register viewer on a frame sequence and returns when the
// user quits.
func Run(frames []command.Frame) error {
	if err := termui.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize termui")
	}
	defer termui.Close()

	Init()
	Reset()

	state := NewState()
	RegisterState(state)
	UpdateScreen(frames, state)

	for {
		switch WaitForInput(state) {
		case "quit":
			return nil
		case "next frame":
			state = Step(frames, state, state.Pos+1)
		case "previous frame":
			state = Step(frames, state, state.Pos-1)
		case "first frame":
			state = Step(frames, state, 0)
		case "last frame":
			state = Step(frames, state, len(frames))
		}
		UpdateScreen(frames, state)
	}
}
