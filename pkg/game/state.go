package game

import "fmt"

// State is the phase of a run.
type State int

const (
	// StateWait is reserved for a pre-run screen and is never entered.
	StateWait State = iota
	StatePlay
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateWait:
		return "WAIT"
	case StatePlay:
		return "PLAY"
	case StateGameOver:
		return "GAME_OVER"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ParseState is the inverse of State.String.
func ParseState(s string) (State, error) {
	for _, st := range []State{StateWait, StatePlay, StateGameOver} {
		if st.String() == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("unknown game state %q", s)
}
