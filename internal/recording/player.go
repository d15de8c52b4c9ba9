package recording

// Player is the playback clock. It advances a fractional frame cursor
// from wall-clock delta time, honoring the recording's capture delay and
// a user-adjustable speed multiplier.
type Player struct {
	file    *File
	cursor  float32 // fractional frame
	Playing bool
	Speed   float32
}

func NewPlayer(f *File) *Player {
	return &Player{file: f, Speed: 1}
}

// Advance moves the cursor by dt seconds of wall time. Playback stops at
// the last frame.
func (p *Player) Advance(dt float32) {
	if !p.Playing || p.file == nil {
		return
	}
	p.cursor += dt * p.Speed / p.file.CaptureDelay
	if max := float32(p.file.EndFrame); p.cursor >= max {
		p.cursor = max
		p.Playing = false
	}
}

// Frame returns the current whole frame.
func (p *Player) Frame() int {
	return int(p.cursor)
}

// Seek jumps to a frame, clamped to the recording's range.
func (p *Player) Seek(frame int) {
	if p.file == nil {
		return
	}
	if frame < 0 {
		frame = 0
	}
	if frame > p.file.EndFrame {
		frame = p.file.EndFrame
	}
	p.cursor = float32(frame)
}

// TogglePlay flips play/pause. Toggling play at the end restarts.
func (p *Player) TogglePlay() {
	if p.file == nil {
		return
	}
	if !p.Playing && p.Frame() >= p.file.EndFrame {
		p.cursor = 0
	}
	p.Playing = !p.Playing
}

// States returns the entity states at the current frame.
func (p *Player) States() []State {
	if p.file == nil {
		return nil
	}
	return p.file.Frame(p.Frame())
}

// EndFrame exposes the recording length for the scrubber.
func (p *Player) EndFrame() int {
	if p.file == nil {
		return 0
	}
	return p.file.EndFrame
}
