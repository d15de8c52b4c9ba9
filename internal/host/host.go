package host

import (
	"log"

	"recview/internal/protocol"
)

// SessionOptions live for the process lifetime only; they are never
// persisted.
type SessionOptions struct {
	// SkipClearConfirm suppresses the clear confirmation dialog once the
	// user has checked "don't ask again".
	SkipClearConfirm bool
}

// Host answers renderer requests: it owns the file manager, the dialogs,
// and the session options. It runs as its own event loop over the bus.
type Host struct {
	bus     *protocol.Bus
	dialogs Dialogs

	Files   *FileManager
	Options SessionOptions
}

func New(bus *protocol.Bus, dialogs Dialogs) *Host {
	h := &Host{
		bus:     bus,
		dialogs: dialogs,
		Files:   NewFileManager(),
	}
	h.Files.OnRecentChanged = func(paths []string) {
		bus.Reply(protocol.NewRecentFiles(paths))
	}
	return h
}

// Run drains the request channel until the bus is closed. Meant to be
// started as a goroutine.
func (h *Host) Run() {
	for m := range h.bus.Requests() {
		h.dispatch(m)
	}
}

// RequestSave tells the renderer to produce content to be saved. Bound
// to the menu's Export action.
func (h *Host) RequestSave() {
	h.bus.Reply(protocol.NewRequestSave())
}

func (h *Host) dispatch(m protocol.Message) {
	switch m.Type {
	case protocol.TypeOpen:
		path, ok := h.dialogs.PickFile()
		if !ok {
			return // canceled; a request gets at most one reply, not always one
		}
		h.replyLoaded(protocol.TypeOpen, path)

	case protocol.TypeLoad:
		req, err := m.LoadRequest()
		if err != nil {
			h.bus.Reply(protocol.NewError(protocol.TypeLoad, err))
			return
		}
		h.replyLoaded(protocol.TypeLoad, req.Path)

	case protocol.TypeSave:
		req, err := m.SaveRequest()
		if err != nil {
			h.bus.Reply(protocol.NewError(protocol.TypeSave, err))
			return
		}
		if err := h.Files.Save(req.Content); err != nil {
			h.bus.Reply(protocol.NewError(protocol.TypeSave, err))
			return
		}
		log.Printf("host: saved %s", h.Files.LastPath())

	case protocol.TypeClear:
		if h.Options.SkipClearConfirm {
			h.bus.Reply(protocol.NewClearResult(true, false))
			return
		}
		clear, remember := h.dialogs.ConfirmClear()
		if clear && remember {
			h.Options.SkipClearConfirm = true
		}
		h.bus.Reply(protocol.NewClearResult(clear, remember))

	default:
		log.Printf("host: dropping message with unknown type %q", m.Type)
	}
}

func (h *Host) replyLoaded(request protocol.Type, path string) {
	content, err := h.Files.Load(path)
	if err != nil {
		h.bus.Reply(protocol.NewError(request, err))
		return
	}
	h.bus.Reply(protocol.NewOpenResult(path, content))
}
