package engine

import (
	"math"
	"sync"
)

// ResizeMessage is one size report from an embedded explanation document.
// Messages carry no sequence numbers; delivery is best effort and
// unordered, so the host applies the latest size per element id and
// treats repeats as no-ops.
type ResizeMessage struct {
	Type   string  `json:"type" binding:"required"`
	Width  float64 `json:"width" binding:"required"`
	Height float64 `json:"height" binding:"required"`
	ID     string  `json:"id" binding:"required"`
}

type elementSize struct {
	width  float64
	height float64
}

// SizeTracker is the host-side half of the resize protocol: last known
// size per element id, idempotent under redelivery.
type SizeTracker struct {
	mu    sync.Mutex
	sizes map[string]elementSize
}

func NewSizeTracker() *SizeTracker {
	return &SizeTracker{sizes: make(map[string]elementSize)}
}

// Apply records a size report and returns whether the hosting element
// should be resized. Unknown discriminants and non-positive dimensions
// are ignored.
func (t *SizeTracker) Apply(msg ResizeMessage) bool {
	if msg.Type != ResizeMessageType || msg.ID == "" {
		return false
	}
	if msg.Width <= 0 || msg.Height <= 0 {
		return false
	}

	width := math.Ceil(msg.Width)
	height := math.Ceil(msg.Height)

	t.mu.Lock()
	defer t.mu.Unlock()

	if prev, ok := t.sizes[msg.ID]; ok && prev.width == width && prev.height == height {
		return false
	}
	t.sizes[msg.ID] = elementSize{width: width, height: height}
	return true
}

// Size returns the last known size for an element id.
func (t *SizeTracker) Size(id string) (width, height float64, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, found := t.sizes[id]
	return s.width, s.height, found
}
