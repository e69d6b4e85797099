package framesviewer

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a 4x4 homogeneous transformation matrix describing a frame's
// position and orientation. Values are copied freely; the store never aliases
// a caller's matrix.
type Transform = mgl32.Mat4

// Frame is a named pose as seen by the renderer.
type Frame struct {
	Name      string
	Transform Transform
}

// FrameStore is the single point of contact between producer threads and the
// render thread. Any number of goroutines may Push and Clear concurrently;
// the render thread copies the current state out with Snapshot so the lock is
// never held across GL calls.
type FrameStore struct {
	mu     sync.RWMutex
	frames map[string]Transform
}

// NewFrameStore creates an empty frame store.
func NewFrameStore() *FrameStore {
	return &FrameStore{
		frames: make(map[string]Transform),
	}
}

// Push inserts or replaces the frame stored under name.
func (s *FrameStore) Push(name string, transform Transform) {
	s.mu.Lock()
	s.frames[name] = transform
	s.mu.Unlock()
}

// Clear removes all frames. A concurrent Snapshot observes either the full
// pre-clear set or the empty post-clear set.
func (s *FrameStore) Clear() {
	s.mu.Lock()
	s.frames = make(map[string]Transform)
	s.mu.Unlock()
}

// Len returns the number of stored frames.
func (s *FrameStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.frames)
}

// Snapshot materializes a consistent copy of all stored frames. Iteration
// order is unspecified. The returned slice is owned by the caller; later
// pushes do not affect it.
func (s *FrameStore) Snapshot() []Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()

	frames := make([]Frame, 0, len(s.frames))
	for name, transform := range s.frames {
		frames = append(frames, Frame{Name: name, Transform: transform})
	}
	return frames
}
