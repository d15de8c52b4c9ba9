// Package app wires the pieces together: the raylib window, the
// renderer loop, the host goroutine, and the bus between them.
package app

import (
	"fmt"
	"log"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"recview/internal/host"
	"recview/internal/protocol"
	"recview/internal/recording"
	"recview/internal/scene"
	"recview/internal/ui"
)

type App struct {
	bus     *protocol.Bus
	host    *host.Host
	dialogs *dialogBridge

	ctrl    *scene.Controller
	rec     *recording.File
	recPath string
	player  *recording.Player

	menu      ui.MenuBar
	confirm   ui.ConfirmDialog
	picker    ui.FilePicker
	transport ui.Transport

	watch   *watcher
	lastDir string
	title   string

	// Status message flash, teacher-style.
	statusMsg  string
	statusTime float64
}

func New() *App {
	bus := protocol.NewBus()
	dialogs := newDialogBridge()

	a := &App{
		bus:     bus,
		dialogs: dialogs,
		host:    host.New(bus, dialogs),
		ctrl:    scene.NewController(),
	}

	// Picking reports the entity id; making it the selection is our job.
	a.ctrl.OnEntitySelected = func(id int) {
		a.ctrl.MarkEntityAsSelected(id)
	}

	return a
}

func (a *App) Run() {
	width, height := 1280, 720
	prefs := host.LoadPrefs()
	if prefs != nil {
		if prefs.WindowWidth > 0 && prefs.WindowHeight > 0 {
			width, height = prefs.WindowWidth, prefs.WindowHeight
		}
		a.host.Files.SetRecent(prefs.RecentFiles)
		a.menu.Recent = prefs.RecentFiles
		a.lastDir = prefs.LastDir
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi)
	rl.InitWindow(int32(width), int32(height), "recview")
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)
	ui.InitStyle()

	if w, err := newWatcher(); err != nil {
		log.Printf("app: file watching disabled: %v", err)
	} else {
		a.watch = w
		defer w.Close()
	}

	go a.host.Run()
	defer a.bus.Close()

	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	a.savePrefs()
}

func (a *App) update() {
	// Host -> renderer messages first, so this frame reflects them.
	for {
		m, ok := a.bus.PollReply()
		if !ok {
			break
		}
		a.handleReply(m)
	}

	// A blocked host dialog request opens the matching modal.
	select {
	case req := <-a.dialogs.pick:
		a.picker.Show(a.lastDir, func(path string, ok bool) {
			if ok {
				a.lastDir = filepath.Dir(path)
			}
			req.resp <- pickAnswer{path: path, ok: ok}
		})
	default:
	}
	select {
	case req := <-a.dialogs.confirm:
		a.confirm.Show(func(clear, remember bool) {
			req.resp <- confirmAnswer{clear: clear, remember: remember}
		})
	default:
	}

	// Reload the watched file when it changes on disk. While a modal is
	// pending the host is blocked on its answer and cannot drain the bus,
	// so the event stays queued in the watcher until the modal closes. A
	// full bus drops the reload; the next write event retriggers it.
	if a.watch != nil && !a.modalOpen() {
		select {
		case path := <-a.watch.Changed():
			a.bus.TrySendRequest(protocol.NewLoad(path))
		default:
		}
	}

	if a.player != nil {
		a.player.Advance(rl.GetFrameTime())
		a.ctrl.BeginFrame()
		for _, s := range a.player.States() {
			a.ctrl.SetEntity(scene.Entity{ID: s.ID, Name: s.Name, Position: s.Position})
		}
		a.ctrl.EndFrame()
	}

	if a.modalOpen() {
		return
	}

	a.ctrl.Camera.Update()

	if a.mouseInUI() {
		return
	}

	cam := a.ctrl.Camera.Camera3D()
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), cam)

	if a.ctrl.HandlePointerMove(ray) {
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
	} else {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.ctrl.HandlePointerDown(ray)
	}
}

func (a *App) handleReply(m protocol.Message) {
	switch m.Type {
	case protocol.TypeOpenResult:
		res, err := m.OpenResult()
		if err != nil {
			log.Printf("app: bad open result: %v", err)
			return
		}
		f, err := recording.Parse(res.Content)
		if err != nil {
			a.status(err.Error())
			return
		}
		a.loadRecording(res.Path, f)

	case protocol.TypeClearResult:
		res, err := m.ClearResult()
		if err != nil {
			log.Printf("app: bad clear result: %v", err)
			return
		}
		if res.Clear {
			a.clear()
		}

	case protocol.TypeRequestSave:
		if a.rec == nil {
			a.status("Nothing to export")
			return
		}
		data, err := a.rec.Marshal()
		if err != nil {
			a.status(err.Error())
			return
		}
		a.bus.SendRequest(protocol.NewSave(data))
		a.status("Exported " + filepath.Base(a.recPath))

	case protocol.TypeRecentFiles:
		res, err := m.RecentFiles()
		if err != nil {
			log.Printf("app: bad recent files: %v", err)
			return
		}
		a.menu.Recent = res.Paths

	case protocol.TypeError:
		res, err := m.ErrorResult()
		if err != nil {
			log.Printf("app: bad error result: %v", err)
			return
		}
		a.status(res.Message)

	default:
		log.Printf("app: dropping message with unknown type %q", m.Type)
	}
}

func (a *App) loadRecording(path string, f *recording.File) {
	a.rec = f
	a.recPath = path
	a.player = recording.NewPlayer(f)
	a.ctrl.Clear()

	a.ctrl.BeginFrame()
	for _, s := range f.Frame(0) {
		a.ctrl.SetEntity(scene.Entity{ID: s.ID, Name: s.Name, Position: s.Position})
	}
	a.ctrl.EndFrame()

	a.title = f.Name
	if a.title == "" {
		a.title = filepath.Base(path)
	}

	if a.watch != nil {
		if err := a.watch.Watch(path); err != nil {
			log.Printf("app: watch %s: %v", path, err)
		}
	}

	a.status(fmt.Sprintf("Loaded %s (%d entities, %d frames)",
		filepath.Base(path), len(f.Entities), f.EndFrame+1))
}

func (a *App) clear() {
	a.rec = nil
	a.recPath = ""
	a.player = nil
	a.title = ""
	a.ctrl.Clear()
	if a.watch != nil {
		_ = a.watch.Watch("")
	}
	a.status("Recording cleared")
}

func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(a.ctrl.Camera.Camera3D())
	a.ctrl.Draw()
	rl.EndMode3D()

	a.drawUI()
	rl.EndDrawing()
}

func (a *App) drawUI() {
	// A modal owns the whole UI: nothing underneath may see the click.
	if a.modalOpen() {
		a.picker.Draw()
		a.confirm.Draw()
		return
	}

	action, path := a.menu.Draw(a.title)
	switch action {
	case ui.MenuOpen:
		a.bus.SendRequest(protocol.NewOpen())
	case ui.MenuExport:
		a.host.RequestSave()
	case ui.MenuClear:
		if a.rec != nil {
			a.bus.SendRequest(protocol.NewClear())
		}
	case ui.MenuRecent:
		a.bus.SendRequest(protocol.NewLoad(path))
	}

	a.transport.Draw(a.player)

	if id, ok := a.ctrl.SelectedID(); ok {
		if m, found := a.ctrl.Mesh(id); found {
			label := m.Label
			if label == "" {
				label = "entity " + m.StampID
			}
			rl.DrawText(label, 10, ui.MenuBarHeight+8, 18, rl.NewColor(255, 161, 0, 255))
		}
	}

	a.picker.Draw()
	a.confirm.Draw()

	if a.statusMsg != "" && rl.GetTime()-a.statusTime < 3.0 {
		rl.DrawText(a.statusMsg, 10, int32(rl.GetScreenHeight())-ui.TransportHeight-26, 16, rl.NewColor(200, 200, 208, 255))
	}
}

func (a *App) status(msg string) {
	a.statusMsg = msg
	a.statusTime = rl.GetTime()
}

func (a *App) modalOpen() bool {
	return a.picker.Visible() || a.confirm.Visible()
}

func (a *App) mouseInUI() bool {
	return a.menu.MouseInside() || a.transport.MouseInside(a.player)
}

func (a *App) savePrefs() {
	prefs := host.Prefs{
		WindowWidth:  rl.GetScreenWidth(),
		WindowHeight: rl.GetScreenHeight(),
		RecentFiles:  a.menu.Recent,
		LastDir:      a.lastDir,
	}
	prefs.Save()
}
