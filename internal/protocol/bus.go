package protocol

// Bus carries messages between the renderer loop and the host goroutine.
// Two buffered channels, one per direction, each with FIFO delivery and
// no ordering guarantee across them. There is no backpressure handling
// beyond the buffer: both loops are expected to drain their side.
type Bus struct {
	requests chan Message
	replies  chan Message
}

const defaultBuffer = 16

func NewBus() *Bus {
	return &Bus{
		requests: make(chan Message, defaultBuffer),
		replies:  make(chan Message, defaultBuffer),
	}
}

// SendRequest queues a renderer->host message.
func (b *Bus) SendRequest(m Message) {
	b.requests <- m
}

// Requests is the host's receive side. The host loop ranges over it and
// exits when the bus is closed.
func (b *Bus) Requests() <-chan Message {
	return b.requests
}

// TrySendRequest queues a renderer->host message if there is buffer
// room, reporting whether it was accepted. For paths that must never
// stall the render loop, such as file-watch reloads while the host is
// busy answering a dialog.
func (b *Bus) TrySendRequest(m Message) bool {
	select {
	case b.requests <- m:
		return true
	default:
		return false
	}
}

// Reply queues a host->renderer message (a reply or an unsolicited
// notification).
func (b *Bus) Reply(m Message) {
	b.replies <- m
}

// PollReply fetches one pending host->renderer message without blocking.
// The renderer calls this each frame until it returns false.
func (b *Bus) PollReply() (Message, bool) {
	select {
	case m := <-b.replies:
		return m, true
	default:
		return Message{}, false
	}
}

// Close shuts down the request channel, stopping the host loop. The
// renderer must not send after Close.
func (b *Bus) Close() {
	close(b.requests)
}
