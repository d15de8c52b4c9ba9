package ui

import (
	"testing"

	"recview/internal/recording"
)

func TestTransportShownForSingleFrameRecording(t *testing.T) {
	f, err := recording.Parse([]byte(`{"entities": [{"id": 1, "positions": [[0,0,0]]}]}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if f.EndFrame != 0 {
		t.Fatalf("endFrame = %d, want 0", f.EndFrame)
	}

	var tr Transport
	if !tr.active(recording.NewPlayer(f)) {
		t.Error("transport hidden for a one-frame recording")
	}
	if tr.active(nil) {
		t.Error("transport shown with nothing loaded")
	}
}
