package framesviewer

type mouseButton int

const (
	buttonLeft mouseButton = iota
	buttonMiddle
)

// inputState tracks the pressed/released flags of the orbit and pan buttons
// and turns absolute cursor positions into per-event deltas. It lives on the
// render thread; callbacks are its only callers.
type inputState struct {
	leftPressed   bool
	middlePressed bool

	lastX, lastY float64
	tracking     bool
}

func (in *inputState) setButton(button mouseButton, pressed bool) {
	switch button {
	case buttonLeft:
		in.leftPressed = pressed
	case buttonMiddle:
		in.middlePressed = pressed
	}
}

// motion records a cursor position and returns the delta since the previous
// one. The first event after creation anchors the cursor and reports no
// movement, so a drag can never start with a jump.
func (in *inputState) motion(x, y float64) (dx, dy float64) {
	if in.tracking {
		dx = x - in.lastX
		dy = y - in.lastY
	}
	in.lastX, in.lastY = x, y
	in.tracking = true
	return dx, dy
}
