package ui

import (
	"os"
	"path/filepath"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// FilePicker is a modal directory browser filtered to recording files.
type FilePicker struct {
	visible bool
	dir     string
	entries []pickEntry
	scroll  int
	done    func(path string, ok bool)
}

type pickEntry struct {
	Name     string
	Path     string
	IsFolder bool
}

const pickerRows = 10

// Show opens the picker at dir. done fires once with the chosen path, or
// ok=false on cancel.
func (p *FilePicker) Show(dir string, done func(path string, ok bool)) {
	if dir == "" {
		dir = "."
	}
	p.visible = true
	p.dir = dir
	p.scroll = 0
	p.done = done
	p.scan()
}

func (p *FilePicker) Visible() bool {
	return p.visible
}

// Dir returns the directory currently shown, so the caller can persist
// it as the last-used location.
func (p *FilePicker) Dir() string {
	return p.dir
}

// scan lists the current directory: folders first, then recording files,
// hidden entries skipped.
func (p *FilePicker) scan() {
	p.entries = p.entries[:0]

	if parent := filepath.Dir(p.dir); parent != p.dir {
		p.entries = append(p.entries, pickEntry{Name: "..", Path: parent, IsFolder: true})
	}

	dirEntries, err := os.ReadDir(p.dir)
	if err != nil {
		return
	}

	for _, entry := range dirEntries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			p.entries = append(p.entries, pickEntry{
				Name:     entry.Name(),
				Path:     filepath.Join(p.dir, entry.Name()),
				IsFolder: true,
			})
		}
	}
	for _, entry := range dirEntries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if strings.ToLower(filepath.Ext(name)) != ".json" {
			continue
		}
		p.entries = append(p.entries, pickEntry{
			Name: name,
			Path: filepath.Join(p.dir, name),
		})
	}
}

// Draw renders the picker and handles row clicks.
func (p *FilePicker) Draw() {
	if !p.visible {
		return
	}

	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())
	rl.DrawRectangle(0, 0, int32(screenW), int32(screenH), rl.NewColor(0, 0, 0, 140))

	w, h := float32(460), float32(80+pickerRows*menuItemH)
	x := (screenW - w) / 2
	y := (screenH - h) / 2

	rl.DrawRectangleRec(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, colorBgPanel)
	rl.DrawRectangleLinesEx(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, 1, colorAccent)

	rl.DrawText("Open recording", int32(x)+16, int32(y)+10, 20, colorTextPrimary)
	dir := p.dir
	if len(dir) > 48 {
		dir = "…" + dir[len(dir)-47:]
	}
	rl.DrawText(dir, int32(x)+16, int32(y)+34, 14, colorTextMuted)

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		p.scrollBy(-int(wheel))
	}

	listY := y + 54
	for row := 0; row < pickerRows; row++ {
		idx := p.scroll + row
		if idx >= len(p.entries) {
			break
		}
		entry := p.entries[idx]
		bounds := rl.Rectangle{X: x + 8, Y: listY + float32(row*menuItemH), Width: w - 16, Height: menuItemH}

		label := entry.Name
		color := colorTextSecondary
		if entry.IsFolder {
			label = label + "/"
			color = colorAccentLight
		}
		if textButton(bounds, label, color) {
			if entry.IsFolder {
				p.dir = entry.Path
				p.scroll = 0
				p.scan()
			} else {
				p.finish(entry.Path, true)
			}
		}
	}

	if gui.Button(rl.Rectangle{X: x + w - 110, Y: y + h - 38, Width: 94, Height: 28}, "Cancel") {
		p.finish("", false)
	}
}

// scrollBy moves the list offset, clamped so the top row never scrolls
// past the last page. Lists shorter than one page do not scroll at all.
func (p *FilePicker) scrollBy(delta int) {
	p.scroll += delta
	max := len(p.entries) - pickerRows
	if max < 0 {
		max = 0
	}
	if p.scroll > max {
		p.scroll = max
	}
	if p.scroll < 0 {
		p.scroll = 0
	}
}

func (p *FilePicker) finish(path string, ok bool) {
	p.visible = false
	if p.done != nil {
		p.done(path, ok)
		p.done = nil
	}
}
