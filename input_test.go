package framesviewer

import "testing"

func TestInputButtons(t *testing.T) {
	in := &inputState{}

	in.setButton(buttonLeft, true)
	if !in.leftPressed || in.middlePressed {
		t.Errorf("after left press: left=%v middle=%v", in.leftPressed, in.middlePressed)
	}

	in.setButton(buttonMiddle, true)
	in.setButton(buttonLeft, false)
	if in.leftPressed || !in.middlePressed {
		t.Errorf("after left release, middle press: left=%v middle=%v", in.leftPressed, in.middlePressed)
	}
}

func TestInputMotionDeltas(t *testing.T) {
	in := &inputState{}

	// The first event anchors the cursor without reporting movement.
	if dx, dy := in.motion(100, 200); dx != 0 || dy != 0 {
		t.Errorf("first motion = (%v, %v), want (0, 0)", dx, dy)
	}

	if dx, dy := in.motion(110, 195); dx != 10 || dy != -5 {
		t.Errorf("second motion = (%v, %v), want (10, -5)", dx, dy)
	}

	if dx, dy := in.motion(110, 195); dx != 0 || dy != 0 {
		t.Errorf("stationary motion = (%v, %v), want (0, 0)", dx, dy)
	}
}
