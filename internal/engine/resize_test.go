package engine

import "testing"

func TestSizeTrackerApply(t *testing.T) {
	valid := ResizeMessage{Type: ResizeMessageType, Width: 700.3, Height: 512.8, ID: "card-1"}

	tests := []struct {
		name string
		msg  ResizeMessage
		want bool
	}{
		{"valid report", valid, true},
		{"wrong discriminant", ResizeMessage{Type: "something:else", Width: 10, Height: 10, ID: "x"}, false},
		{"empty id", ResizeMessage{Type: ResizeMessageType, Width: 10, Height: 10}, false},
		{"zero width", ResizeMessage{Type: ResizeMessageType, Height: 10, ID: "x"}, false},
		{"negative height", ResizeMessage{Type: ResizeMessageType, Width: 10, Height: -1, ID: "x"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewSizeTracker()
			if got := tracker.Apply(tt.msg); got != tt.want {
				t.Errorf("Apply(%+v) = %v, want %v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestSizeTrackerIdempotent(t *testing.T) {
	tracker := NewSizeTracker()
	msg := ResizeMessage{Type: ResizeMessageType, Width: 700.3, Height: 512.8, ID: "card-1"}

	if !tracker.Apply(msg) {
		t.Fatal("first report should request a resize")
	}
	if tracker.Apply(msg) {
		t.Error("repeat of the same report must be a no-op")
	}

	// Fractional variants that ceil to the same size are also repeats.
	if tracker.Apply(ResizeMessage{Type: ResizeMessageType, Width: 700.9, Height: 512.1, ID: "card-1"}) {
		t.Error("report ceiling to the same size must be a no-op")
	}

	if !tracker.Apply(ResizeMessage{Type: ResizeMessageType, Width: 720, Height: 530, ID: "card-1"}) {
		t.Error("changed size must request a resize")
	}
}

func TestSizeTrackerSize(t *testing.T) {
	tracker := NewSizeTracker()

	if _, _, ok := tracker.Size("missing"); ok {
		t.Error("unknown id should report not found")
	}

	tracker.Apply(ResizeMessage{Type: ResizeMessageType, Width: 700.3, Height: 512.8, ID: "card-1"})
	w, h, ok := tracker.Size("card-1")
	if !ok {
		t.Fatal("known id should be found")
	}
	if w != 701 || h != 513 {
		t.Errorf("Size() = %g x %g, want ceiled 701 x 513", w, h)
	}
}

func TestSizeTrackerTracksPerElement(t *testing.T) {
	tracker := NewSizeTracker()
	tracker.Apply(ResizeMessage{Type: ResizeMessageType, Width: 100, Height: 100, ID: "a"})

	if !tracker.Apply(ResizeMessage{Type: ResizeMessageType, Width: 100, Height: 100, ID: "b"}) {
		t.Error("same size on a different element is a fresh report")
	}
}
