package app

// dialogBridge implements host.Dialogs for the real UI. The host
// goroutine blocks on a response channel while the render loop shows the
// modal; only that one request waits, the loops keep running.

type pickAnswer struct {
	path string
	ok   bool
}

type confirmAnswer struct {
	clear    bool
	remember bool
}

type pickRequest struct {
	resp chan pickAnswer
}

type confirmRequest struct {
	resp chan confirmAnswer
}

type dialogBridge struct {
	pick    chan *pickRequest
	confirm chan *confirmRequest
}

func newDialogBridge() *dialogBridge {
	return &dialogBridge{
		pick:    make(chan *pickRequest, 1),
		confirm: make(chan *confirmRequest, 1),
	}
}

func (b *dialogBridge) PickFile() (string, bool) {
	req := &pickRequest{resp: make(chan pickAnswer, 1)}
	b.pick <- req
	a := <-req.resp
	return a.path, a.ok
}

func (b *dialogBridge) ConfirmClear() (bool, bool) {
	req := &confirmRequest{resp: make(chan confirmAnswer, 1)}
	b.confirm <- req
	a := <-req.resp
	return a.clear, a.remember
}
