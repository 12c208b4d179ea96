package app

// DragState tracks whether a pointer drag is in progress.
type DragState int

const (
	// Idle means no button is held; pointer movement is ignored.
	Idle DragState = iota
	// Dragging means the view follows the pointer until release.
	Dragging
)

// Interaction is the two-state pointer machine behind click-drag panning.
// PointerDown captures the start position, PointerMove while dragging
// reports pixel deltas, and PointerUp (or the cursor leaving the window)
// returns to Idle.
type Interaction struct {
	state DragState
	lastX int
	lastY int
}

// State reports the current drag state.
func (in *Interaction) State() DragState { return in.state }

// PointerDown begins a drag anchored at (x, y). Redundant calls while
// already dragging just move the anchor.
func (in *Interaction) PointerDown(x, y int) {
	in.state = Dragging
	in.lastX, in.lastY = x, y
}

// PointerMove reports the delta since the last position while dragging.
// Outside a drag it reports nothing.
func (in *Interaction) PointerMove(x, y int) (dx, dy int, dragging bool) {
	if in.state != Dragging {
		return 0, 0, false
	}
	dx, dy = x-in.lastX, y-in.lastY
	in.lastX, in.lastY = x, y
	return dx, dy, true
}

// PointerUp ends the drag.
func (in *Interaction) PointerUp() {
	in.state = Idle
}
