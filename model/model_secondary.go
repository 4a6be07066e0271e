package model

import "fmt"

func (s State) Name() string {
	switch s {
	case RUNNING:
		return "RUNNING"
	case GAME_OVER:
		return "GAME_OVER"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

func (l Lane) Name() string {
	switch l {
	case LaneLeft:
		return "left"
	case LaneRight:
		return "right"
	default:
		return fmt.Sprintf("n/a:%d", l)
	}
}

func (c Cue) Name() string {
	switch c {
	case CueSwitch:
		return "switch"
	case CueCoin:
		return "coin"
	case CueGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("n/a:%d", c)
	}
}
