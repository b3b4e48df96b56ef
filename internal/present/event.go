package present

// Event is a camera-control request produced by an interactive presenter.
type Event int

const (
	Nothing Event = iota
	Exit
	Go
	Back
	TurnLeft
	TurnRight
	Up
	Down
)

var eventNames = [...]string{
	Nothing:   "nothing",
	Exit:      "exit",
	Go:        "go",
	Back:      "back",
	TurnLeft:  "turn-left",
	TurnRight: "turn-right",
	Up:        "up",
	Down:      "down",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[e]
}
