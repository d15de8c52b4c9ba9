package ui

import (
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MenuAction identifies a clicked menu item.
type MenuAction int

const (
	MenuNone MenuAction = iota
	MenuOpen
	MenuExport
	MenuClear
	MenuRecent // path carried alongside
)

// MenuBar is the File menu across the top of the window. The Recent
// submenu is rebuilt from whatever Recent holds, so a RecentFiles
// notification only has to replace the slice.
type MenuBar struct {
	Recent []string

	open       bool
	recentOpen bool
}

const (
	MenuBarHeight = 36
	menuItemH     = 28
	menuW         = 180
)

// Draw renders the bar and any open dropdown. It returns the clicked
// action and, for MenuRecent, the chosen path.
func (m *MenuBar) Draw(title string) (MenuAction, string) {
	screenW := int32(rl.GetScreenWidth())

	rl.DrawRectangle(0, 0, screenW, MenuBarHeight, colorBgDark)
	rl.DrawRectangle(0, MenuBarHeight-1, screenW, 1, colorBorder)

	fileBtn := rl.Rectangle{X: 8, Y: 4, Width: 60, Height: MenuBarHeight - 8}
	if textButton(fileBtn, "File", colorTextSecondary) {
		m.open = !m.open
		m.recentOpen = false
	}

	if title != "" {
		tw := rl.MeasureText(title, 16)
		rl.DrawText(title, (screenW-tw)/2, 10, 16, colorTextMuted)
	}

	if !m.open {
		return MenuNone, ""
	}

	action, path := m.drawDropdown()

	// Click anywhere else closes the menu.
	if action == MenuNone && rl.IsMouseButtonPressed(rl.MouseLeftButton) &&
		!m.dropdownContains(rl.GetMousePosition()) && !mouseIn(fileBtn) {
		m.open = false
		m.recentOpen = false
	}
	if action != MenuNone {
		m.open = false
		m.recentOpen = false
	}
	return action, path
}

func (m *MenuBar) drawDropdown() (MenuAction, string) {
	items := []struct {
		label  string
		action MenuAction
	}{
		{"Open...", MenuOpen},
		{"Export", MenuExport},
		{"Recent Files", MenuRecent},
		{"Clear", MenuClear},
	}

	x := float32(8)
	y := float32(MenuBarHeight)
	h := float32(menuItemH * len(items))

	rl.DrawRectangleRec(rl.Rectangle{X: x, Y: y, Width: menuW, Height: h}, colorBgPanel)
	rl.DrawRectangleLinesEx(rl.Rectangle{X: x, Y: y, Width: menuW, Height: h}, 1, colorBorder)

	result := MenuNone
	resultPath := ""

	for i, item := range items {
		bounds := rl.Rectangle{X: x, Y: y + float32(i*menuItemH), Width: menuW, Height: menuItemH}

		if item.action == MenuRecent {
			rl.DrawText(">", int32(x)+menuW-18, int32(bounds.Y)+6, 16, colorTextMuted)
			hovered := mouseIn(bounds)
			if hovered {
				rl.DrawRectangleRec(bounds, colorBgHover)
				m.recentOpen = true
			}
			rl.DrawText(item.label, int32(x)+10, int32(bounds.Y)+6, 16, colorTextSecondary)
			continue
		}

		if textButton(bounds, item.label, colorTextSecondary) {
			result = item.action
		}
	}

	if m.recentOpen {
		if path, ok := m.drawRecentSubmenu(x+menuW, y+2*menuItemH); ok {
			result = MenuRecent
			resultPath = path
		}
	}

	return result, resultPath
}

func (m *MenuBar) drawRecentSubmenu(x, y float32) (string, bool) {
	if len(m.Recent) == 0 {
		bounds := rl.Rectangle{X: x, Y: y, Width: menuW, Height: menuItemH}
		rl.DrawRectangleRec(bounds, colorBgPanel)
		rl.DrawRectangleLinesEx(bounds, 1, colorBorder)
		rl.DrawText("(empty)", int32(x)+10, int32(y)+6, 16, colorTextMuted)
		return "", false
	}

	h := float32(menuItemH * len(m.Recent))
	rl.DrawRectangleRec(rl.Rectangle{X: x, Y: y, Width: menuW, Height: h}, colorBgPanel)
	rl.DrawRectangleLinesEx(rl.Rectangle{X: x, Y: y, Width: menuW, Height: h}, 1, colorBorder)

	for i, path := range m.Recent {
		bounds := rl.Rectangle{X: x, Y: y + float32(i*menuItemH), Width: menuW, Height: menuItemH}
		name := filepath.Base(path)
		if len(name) > 22 {
			name = name[:21] + "…"
		}
		if textButton(bounds, name, colorTextSecondary) {
			return path, true
		}
	}
	return "", false
}

func (m *MenuBar) dropdownContains(p rl.Vector2) bool {
	if !m.open {
		return false
	}
	drop := rl.Rectangle{X: 8, Y: MenuBarHeight, Width: menuW, Height: menuItemH * 4}
	if rl.CheckCollisionPointRec(p, drop) {
		return true
	}
	if m.recentOpen {
		n := len(m.Recent)
		if n == 0 {
			n = 1
		}
		sub := rl.Rectangle{X: 8 + menuW, Y: MenuBarHeight + 2*menuItemH, Width: menuW, Height: float32(menuItemH * n)}
		return rl.CheckCollisionPointRec(p, sub)
	}
	return false
}

// MouseInside reports whether the pointer is over the bar or an open
// dropdown, so the scene can skip picking.
func (m *MenuBar) MouseInside() bool {
	p := rl.GetMousePosition()
	return p.Y <= MenuBarHeight || m.dropdownContains(p)
}
