package host

import (
	"testing"

	"recview/internal/protocol"
)

type fakeDialogs struct {
	pickPath string
	pickOK   bool

	clear        bool
	remember     bool
	confirmCalls int
}

func (d *fakeDialogs) PickFile() (string, bool) {
	return d.pickPath, d.pickOK
}

func (d *fakeDialogs) ConfirmClear() (bool, bool) {
	d.confirmCalls++
	return d.clear, d.remember
}

func newTestHost(d *fakeDialogs) (*Host, *protocol.Bus) {
	bus := protocol.NewBus()
	return New(bus, d), bus
}

func TestLoadRequestRepliesOpenResult(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "rec.json", "<file contents>")

	h, bus := newTestHost(&fakeDialogs{})
	h.dispatch(protocol.NewLoad(path))

	// MRU notification first, then the result.
	m, ok := bus.PollReply()
	if !ok || m.Type != protocol.TypeRecentFiles {
		t.Fatalf("first reply = %q, %v; want recentFiles", m.Type, ok)
	}

	m, ok = bus.PollReply()
	if !ok || m.Type != protocol.TypeOpenResult {
		t.Fatalf("second reply = %q, %v; want openResult", m.Type, ok)
	}
	res, err := m.OpenResult()
	if err != nil {
		t.Fatal(err)
	}
	if res.Path != path || string(res.Content) != "<file contents>" {
		t.Errorf("got %+v", res)
	}

	if _, ok := bus.PollReply(); ok {
		t.Error("more than one reply to the load request")
	}
}

func TestLoadRequestMissingFileRepliesError(t *testing.T) {
	h, bus := newTestHost(&fakeDialogs{})
	h.dispatch(protocol.NewLoad("/does/not/exist.json"))

	m, ok := bus.PollReply()
	if !ok || m.Type != protocol.TypeError {
		t.Fatalf("reply = %q, %v; want error", m.Type, ok)
	}
	res, err := m.ErrorResult()
	if err != nil {
		t.Fatal(err)
	}
	if res.Request != protocol.TypeLoad {
		t.Errorf("error names request %q, want load", res.Request)
	}
}

func TestOpenRequestUsesDialog(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "rec.json", "data")

	h, bus := newTestHost(&fakeDialogs{pickPath: path, pickOK: true})
	h.dispatch(protocol.NewOpen())

	bus.PollReply() // recent files
	m, ok := bus.PollReply()
	if !ok || m.Type != protocol.TypeOpenResult {
		t.Fatalf("reply = %q, %v; want openResult", m.Type, ok)
	}
}

func TestOpenRequestCanceledHasNoReply(t *testing.T) {
	h, bus := newTestHost(&fakeDialogs{pickOK: false})
	h.dispatch(protocol.NewOpen())

	if m, ok := bus.PollReply(); ok {
		t.Errorf("canceled open produced a %q reply", m.Type)
	}
}

func TestSaveRequestWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "rec.json", "old")

	h, bus := newTestHost(&fakeDialogs{})
	h.dispatch(protocol.NewLoad(path))
	bus.PollReply() // recent files
	bus.PollReply() // open result

	h.dispatch(protocol.NewSave([]byte("updated")))

	if m, ok := bus.PollReply(); ok && m.Type == protocol.TypeError {
		res, _ := m.ErrorResult()
		t.Fatalf("save failed: %s", res.Message)
	}

	content, err := h.Files.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "updated" {
		t.Errorf("file content = %q", content)
	}
}

func TestSaveWithoutFileRepliesError(t *testing.T) {
	h, bus := newTestHost(&fakeDialogs{})
	h.dispatch(protocol.NewSave([]byte("x")))

	m, ok := bus.PollReply()
	if !ok || m.Type != protocol.TypeError {
		t.Fatalf("reply = %q, %v; want error", m.Type, ok)
	}
}

func TestClearConfirms(t *testing.T) {
	d := &fakeDialogs{clear: true}
	h, bus := newTestHost(d)

	h.dispatch(protocol.NewClear())

	m, ok := bus.PollReply()
	if !ok || m.Type != protocol.TypeClearResult {
		t.Fatalf("reply = %q, %v; want clearResult", m.Type, ok)
	}
	res, err := m.ClearResult()
	if err != nil {
		t.Fatal(err)
	}
	if !res.Clear || res.Remember {
		t.Errorf("got %+v", res)
	}
	if d.confirmCalls != 1 {
		t.Errorf("dialog shown %d times", d.confirmCalls)
	}
	if h.Options.SkipClearConfirm {
		t.Error("option set without the remember checkbox")
	}
}

func TestClearRememberSkipsFutureDialogs(t *testing.T) {
	d := &fakeDialogs{clear: true, remember: true}
	h, bus := newTestHost(d)

	h.dispatch(protocol.NewClear())
	bus.PollReply()

	if !h.Options.SkipClearConfirm {
		t.Fatal("remember checkbox did not set the session option")
	}

	h.dispatch(protocol.NewClear())
	m, ok := bus.PollReply()
	if !ok {
		t.Fatal("no reply to second clear")
	}
	res, _ := m.ClearResult()
	if !res.Clear {
		t.Error("second clear should succeed without asking")
	}
	if d.confirmCalls != 1 {
		t.Errorf("dialog shown %d times, want 1", d.confirmCalls)
	}
}

func TestClearCanceled(t *testing.T) {
	d := &fakeDialogs{clear: false, remember: true}
	h, bus := newTestHost(d)

	h.dispatch(protocol.NewClear())

	m, _ := bus.PollReply()
	res, err := m.ClearResult()
	if err != nil {
		t.Fatal(err)
	}
	if res.Clear {
		t.Error("canceled clear reported clear=true")
	}
	// Checking the box and then canceling must not disable the dialog.
	if h.Options.SkipClearConfirm {
		t.Error("canceled dialog set the session option")
	}
}

func TestUnknownTypeIsDropped(t *testing.T) {
	h, bus := newTestHost(&fakeDialogs{})
	h.dispatch(protocol.Message{Type: "bogus"})

	if m, ok := bus.PollReply(); ok {
		t.Errorf("unknown type produced a %q reply", m.Type)
	}
}

// blockingDialogs parks the host loop inside PickFile until released,
// the way the real bridge does while the user has the picker open.
type blockingDialogs struct {
	entered chan struct{}
	release chan struct{}
}

func (d *blockingDialogs) PickFile() (string, bool) {
	close(d.entered)
	<-d.release
	return "", false
}

func (d *blockingDialogs) ConfirmClear() (bool, bool) { return false, false }

func TestPendingDialogDoesNotWedgeSenders(t *testing.T) {
	d := &blockingDialogs{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	bus := protocol.NewBus()
	h := New(bus, d)

	done := make(chan struct{})
	go func() {
		h.Run()
		close(done)
	}()

	bus.SendRequest(protocol.NewOpen())
	<-d.entered

	// The host is parked in the dialog; stuff the buffer behind it.
	for bus.TrySendRequest(protocol.NewLoad("/does/not/exist.json")) {
	}

	// A sender that cannot block must see the full bus and move on
	// instead of hanging the render loop.
	if bus.TrySendRequest(protocol.NewLoad("/does/not/exist.json")) {
		t.Fatal("send accepted while the bus is full behind a pending dialog")
	}

	// Answering the dialog unwedges the loop and frees buffer slots.
	close(d.release)
	for !bus.TrySendRequest(protocol.NewLoad("/does/not/exist.json")) {
		bus.PollReply()
	}

	bus.Close()
	for {
		select {
		case <-done:
			return
		default:
			bus.PollReply()
		}
	}
}

func TestHostRunLoop(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "rec.json", "data")

	h, bus := newTestHost(&fakeDialogs{})
	done := make(chan struct{})
	go func() {
		h.Run()
		close(done)
	}()

	bus.SendRequest(protocol.NewLoad(path))

	// Two replies arrive in order on the reply channel.
	var types []protocol.Type
	for len(types) < 2 {
		if m, ok := bus.PollReply(); ok {
			types = append(types, m.Type)
		}
	}
	if types[0] != protocol.TypeRecentFiles || types[1] != protocol.TypeOpenResult {
		t.Errorf("reply order = %v", types)
	}

	bus.Close()
	<-done
}
