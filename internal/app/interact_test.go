package app

import "testing"

func TestInteractionStartsIdle(t *testing.T) {
	var in Interaction
	if in.State() != Idle {
		t.Fatalf("fresh interaction state = %v, want Idle", in.State())
	}
	if dx, dy, dragging := in.PointerMove(10, 10); dragging || dx != 0 || dy != 0 {
		t.Fatalf("move while idle reported (%d,%d,%v)", dx, dy, dragging)
	}
}

func TestInteractionDragCycle(t *testing.T) {
	var in Interaction
	in.PointerDown(100, 50)
	if in.State() != Dragging {
		t.Fatalf("state after PointerDown = %v, want Dragging", in.State())
	}

	dx, dy, dragging := in.PointerMove(110, 45)
	if !dragging || dx != 10 || dy != -5 {
		t.Fatalf("first move reported (%d,%d,%v), want (10,-5,true)", dx, dy, dragging)
	}

	// Deltas are relative to the previous position, not the anchor.
	dx, dy, dragging = in.PointerMove(110, 45)
	if !dragging || dx != 0 || dy != 0 {
		t.Fatalf("stationary move reported (%d,%d,%v), want (0,0,true)", dx, dy, dragging)
	}

	in.PointerUp()
	if in.State() != Idle {
		t.Fatalf("state after PointerUp = %v, want Idle", in.State())
	}
	if _, _, dragging := in.PointerMove(0, 0); dragging {
		t.Fatalf("move after release still dragging")
	}
}

func TestInteractionRepeatedDownMovesAnchor(t *testing.T) {
	var in Interaction
	in.PointerDown(0, 0)
	in.PointerDown(30, 30)
	dx, dy, _ := in.PointerMove(31, 30)
	if dx != 1 || dy != 0 {
		t.Fatalf("delta after re-anchor = (%d,%d), want (1,0)", dx, dy)
	}
}
