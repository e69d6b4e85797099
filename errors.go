package framesviewer

import "errors"

// ErrAlreadyRunning is returned by Start when the viewer already owns a live
// render thread. Start must complete (or the viewer must be stopped) before
// it can be called again.
var ErrAlreadyRunning = errors.New("viewer already running")
