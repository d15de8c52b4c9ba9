package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"recview/internal/recording"
)

// TransportHeight is the playback bar at the bottom of the window.
const TransportHeight = 48

// Transport draws play/pause, the frame scrubber, and the speed slider
// for the given player. No-op when nothing is loaded.
type Transport struct{}

// active reports whether the bar is shown. Any loaded recording counts,
// including a single-frame one, which still needs play/pause.
func (t *Transport) active(p *recording.Player) bool {
	return p != nil
}

func (t *Transport) Draw(p *recording.Player) {
	if !t.active(p) {
		return
	}

	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())
	y := screenH - TransportHeight

	rl.DrawRectangleRec(rl.Rectangle{X: 0, Y: y, Width: screenW, Height: TransportHeight}, colorBgDark)
	rl.DrawRectangleRec(rl.Rectangle{X: 0, Y: y, Width: screenW, Height: 1}, colorBorder)

	label := "Play"
	if p.Playing {
		label = "Pause"
	}
	if gui.Button(rl.Rectangle{X: 10, Y: y + 10, Width: 70, Height: 28}, label) {
		p.TogglePlay()
	}

	// A single-frame recording has nothing to scrub.
	if end := float32(p.EndFrame()); end > 0 {
		frame := gui.Slider(
			rl.Rectangle{X: 150, Y: y + 14, Width: screenW - 420, Height: 20},
			fmt.Sprintf("%d", p.Frame()),
			fmt.Sprintf("%d", p.EndFrame()),
			float32(p.Frame()), 0, end)
		if int(frame) != p.Frame() {
			p.Seek(int(frame))
		}
	}

	p.Speed = gui.Slider(
		rl.Rectangle{X: screenW - 200, Y: y + 14, Width: 120, Height: 20},
		"speed",
		fmt.Sprintf("%.2gx", p.Speed),
		p.Speed, 0.25, 8)
}

// MouseInside reports whether the pointer is over the transport bar.
func (t *Transport) MouseInside(p *recording.Player) bool {
	if !t.active(p) {
		return false
	}
	return rl.GetMousePosition().Y >= float32(rl.GetScreenHeight())-TransportHeight
}
