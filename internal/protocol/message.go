// Package protocol defines the typed messages exchanged between the host
// side (file I/O, recent files, session options) and the renderer side
// (scene, playback, UI). Every message is a tagged envelope with one
// payload shape per tag; payloads are validated when decoded so a
// mismatched tag/payload pair never crosses the boundary.
package protocol

import (
	"encoding/json"
	"fmt"
)

// Type tags a message. The receiver switches on it to pick the payload shape.
type Type string

const (
	// Renderer -> host requests.
	TypeOpen  Type = "open"  // prompt a file picker, reply OpenResult
	TypeLoad  Type = "load"  // load a specific path, reply OpenResult
	TypeSave  Type = "save"  // write content to the last-used path
	TypeClear Type = "clear" // confirm and clear loaded data, reply ClearResult

	// Host -> renderer replies and notifications.
	TypeOpenResult  Type = "openResult"
	TypeClearResult Type = "clearResult"
	TypeRequestSave Type = "requestSave" // menu Export pressed; renderer should send Save
	TypeRecentFiles Type = "recentFiles" // recent-file list changed
	TypeError       Type = "error"       // a request failed
)

// Message is the envelope crossing the host/renderer boundary.
type Message struct {
	Type Type            `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// --- Payload shapes, one per tag that carries data ---

type LoadRequest struct {
	Path string `json:"path"`
}

type SaveRequest struct {
	Content []byte `json:"content"`
}

type OpenResult struct {
	Path    string `json:"path"`
	Content []byte `json:"content"`
}

type ClearResult struct {
	Clear    bool `json:"clear"`
	Remember bool `json:"remember"`
}

type RecentFiles struct {
	Paths []string `json:"paths"`
}

type ErrorResult struct {
	Request Type   `json:"request"` // the request tag that failed
	Message string `json:"message"`
}

// --- Constructors ---

func NewOpen() Message  { return Message{Type: TypeOpen} }
func NewClear() Message { return Message{Type: TypeClear} }

func NewRequestSave() Message { return Message{Type: TypeRequestSave} }

func NewLoad(path string) Message {
	return mustEncode(TypeLoad, LoadRequest{Path: path})
}

func NewSave(content []byte) Message {
	return mustEncode(TypeSave, SaveRequest{Content: content})
}

func NewOpenResult(path string, content []byte) Message {
	return mustEncode(TypeOpenResult, OpenResult{Path: path, Content: content})
}

func NewClearResult(clear, remember bool) Message {
	return mustEncode(TypeClearResult, ClearResult{Clear: clear, Remember: remember})
}

func NewRecentFiles(paths []string) Message {
	return mustEncode(TypeRecentFiles, RecentFiles{Paths: paths})
}

func NewError(request Type, err error) Message {
	return mustEncode(TypeError, ErrorResult{Request: request, Message: err.Error()})
}

func mustEncode(t Type, payload any) Message {
	data, err := json.Marshal(payload)
	if err != nil {
		// All payload shapes are plain structs; this cannot fail at runtime.
		panic(fmt.Sprintf("protocol: encode %s: %v", t, err))
	}
	return Message{Type: t, Data: data}
}

// --- Typed accessors. Each checks the tag before touching the payload. ---

func (m Message) LoadRequest() (LoadRequest, error) {
	var p LoadRequest
	return p, m.decode(TypeLoad, &p)
}

func (m Message) SaveRequest() (SaveRequest, error) {
	var p SaveRequest
	return p, m.decode(TypeSave, &p)
}

func (m Message) OpenResult() (OpenResult, error) {
	var p OpenResult
	return p, m.decode(TypeOpenResult, &p)
}

func (m Message) ClearResult() (ClearResult, error) {
	var p ClearResult
	return p, m.decode(TypeClearResult, &p)
}

func (m Message) RecentFiles() (RecentFiles, error) {
	var p RecentFiles
	return p, m.decode(TypeRecentFiles, &p)
}

func (m Message) ErrorResult() (ErrorResult, error) {
	var p ErrorResult
	return p, m.decode(TypeError, &p)
}

func (m Message) decode(want Type, v any) error {
	if m.Type != want {
		return fmt.Errorf("protocol: message is %q, not %q", m.Type, want)
	}
	if len(m.Data) == 0 {
		return fmt.Errorf("protocol: %q message has no payload", m.Type)
	}
	if err := json.Unmarshal(m.Data, v); err != nil {
		return fmt.Errorf("protocol: decode %q payload: %w", m.Type, err)
	}
	return nil
}
