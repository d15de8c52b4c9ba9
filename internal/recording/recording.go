// Package recording holds the on-disk recording format and the playback
// clock. A recording is a JSON file: a small header plus a list of
// entities, each carrying one position per captured frame starting at
// its spawn frame.
package recording

import (
	"encoding/json"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// File is the root JSON structure of a recording.
type File struct {
	Name         string   `json:"name"`
	World        string   `json:"world,omitempty"`
	CaptureDelay float32  `json:"captureDelay"` // seconds between frames
	EndFrame     int      `json:"endFrame"`
	Entities     []Entity `json:"entities"`
}

// Entity is one recorded object. It exists from StartFrame through
// StartFrame+len(Positions)-1 and is absent outside that window.
type Entity struct {
	ID         int          `json:"id"`
	Name       string       `json:"name,omitempty"`
	Kind       string       `json:"kind,omitempty"`
	StartFrame int          `json:"startFrame"`
	Positions  [][3]float32 `json:"positions"`
}

// State is an entity's resolved position at a particular frame.
type State struct {
	ID       int
	Name     string
	Position rl.Vector3
}

// Parse decodes and validates a recording. Invalid files are rejected
// rather than partially loaded.
func Parse(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse recording: %w", err)
	}

	if f.CaptureDelay <= 0 {
		f.CaptureDelay = 1
	}

	seen := make(map[int]bool, len(f.Entities))
	last := 0
	for _, e := range f.Entities {
		if seen[e.ID] {
			return nil, fmt.Errorf("parse recording: duplicate entity id %d", e.ID)
		}
		seen[e.ID] = true

		if e.StartFrame < 0 {
			return nil, fmt.Errorf("parse recording: entity %d has negative start frame", e.ID)
		}
		if end := e.StartFrame + len(e.Positions) - 1; end > last {
			last = end
		}
	}

	// EndFrame in the header is advisory; the positions are authoritative.
	if f.EndFrame < last {
		f.EndFrame = last
	}

	return &f, nil
}

// Marshal encodes the recording for export.
func (f *File) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal recording: %w", err)
	}
	return data, nil
}

// Frame returns the states of all entities present at the given frame.
// Entities not yet spawned or already ended are left out, which is what
// drives the scene's visibility diff.
func (f *File) Frame(frame int) []State {
	var states []State
	for _, e := range f.Entities {
		idx := frame - e.StartFrame
		if idx < 0 || idx >= len(e.Positions) {
			continue
		}
		p := e.Positions[idx]
		states = append(states, State{
			ID:       e.ID,
			Name:     e.Name,
			Position: rl.Vector3{X: p[0], Y: p[1], Z: p[2]},
		})
	}
	return states
}
