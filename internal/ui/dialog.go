package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ConfirmDialog is the modal shown before clearing loaded data: two
// buttons and a "don't ask again" checkbox. The answer is delivered
// through the callback given to Show.
type ConfirmDialog struct {
	visible  bool
	remember bool
	done     func(clear, remember bool)
}

// Show opens the dialog. done fires exactly once, on either button.
func (d *ConfirmDialog) Show(done func(clear, remember bool)) {
	d.visible = true
	d.remember = false
	d.done = done
}

func (d *ConfirmDialog) Visible() bool {
	return d.visible
}

// Draw renders the modal centered over a dimmed backdrop.
func (d *ConfirmDialog) Draw() {
	if !d.visible {
		return
	}

	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())
	rl.DrawRectangle(0, 0, int32(screenW), int32(screenH), rl.NewColor(0, 0, 0, 140))

	w, h := float32(380), float32(170)
	x := (screenW - w) / 2
	y := (screenH - h) / 2

	rl.DrawRectangleRec(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, colorBgPanel)
	rl.DrawRectangleLinesEx(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, 1, colorAccent)

	rl.DrawText("Clear recording", int32(x)+16, int32(y)+12, 20, colorTextPrimary)
	rl.DrawText("Remove the loaded recording data?", int32(x)+16, int32(y)+44, 16, colorTextSecondary)
	rl.DrawText("The file on disk is not touched.", int32(x)+16, int32(y)+66, 14, colorTextMuted)

	d.remember = gui.CheckBox(
		rl.Rectangle{X: x + 16, Y: y + 96, Width: 16, Height: 16},
		"Don't ask again", d.remember)

	if gui.Button(rl.Rectangle{X: x + w - 230, Y: y + h - 42, Width: 110, Height: 30}, "Remove data") {
		d.finish(true)
	}
	if gui.Button(rl.Rectangle{X: x + w - 110, Y: y + h - 42, Width: 94, Height: 30}, "Cancel") {
		d.finish(false)
	}
}

func (d *ConfirmDialog) finish(clear bool) {
	d.visible = false
	if d.done != nil {
		d.done(clear, d.remember)
		d.done = nil
	}
}
