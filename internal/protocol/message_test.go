package protocol

import (
	"encoding/json"
	"testing"
)

func TestLoadRoundTrip(t *testing.T) {
	m := NewLoad("/tmp/rec.json")
	if m.Type != TypeLoad {
		t.Fatalf("type = %q", m.Type)
	}
	req, err := m.LoadRequest()
	if err != nil {
		t.Fatalf("LoadRequest failed: %v", err)
	}
	if req.Path != "/tmp/rec.json" {
		t.Errorf("path = %q", req.Path)
	}
}

func TestOpenResultRoundTrip(t *testing.T) {
	m := NewOpenResult("/tmp/rec.json", []byte("content"))
	res, err := m.OpenResult()
	if err != nil {
		t.Fatalf("OpenResult failed: %v", err)
	}
	if res.Path != "/tmp/rec.json" || string(res.Content) != "content" {
		t.Errorf("got %+v", res)
	}
}

func TestClearResultRoundTrip(t *testing.T) {
	m := NewClearResult(true, true)
	res, err := m.ClearResult()
	if err != nil {
		t.Fatalf("ClearResult failed: %v", err)
	}
	if !res.Clear || !res.Remember {
		t.Errorf("got %+v", res)
	}
}

func TestRecentFilesRoundTrip(t *testing.T) {
	m := NewRecentFiles([]string{"a.json", "b.json"})
	res, err := m.RecentFiles()
	if err != nil {
		t.Fatalf("RecentFiles failed: %v", err)
	}
	if len(res.Paths) != 2 || res.Paths[0] != "a.json" {
		t.Errorf("paths = %v", res.Paths)
	}
}

func TestAccessorRejectsWrongTag(t *testing.T) {
	m := NewLoad("/tmp/rec.json")
	if _, err := m.OpenResult(); err == nil {
		t.Error("OpenResult accepted a load message")
	}
	if _, err := m.SaveRequest(); err == nil {
		t.Error("SaveRequest accepted a load message")
	}
}

func TestAccessorRejectsMissingPayload(t *testing.T) {
	m := Message{Type: TypeLoad}
	if _, err := m.LoadRequest(); err == nil {
		t.Error("accepted a load message with no payload")
	}
}

func TestAccessorRejectsMalformedPayload(t *testing.T) {
	m := Message{Type: TypeClearResult, Data: json.RawMessage(`{`)}
	if _, err := m.ClearResult(); err == nil {
		t.Error("accepted a truncated payload")
	}
}

func TestEnvelopeJSONShape(t *testing.T) {
	data, err := json.Marshal(NewLoad("x.json"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	req, err := m.LoadRequest()
	if err != nil {
		t.Fatalf("LoadRequest after wire round trip: %v", err)
	}
	if req.Path != "x.json" {
		t.Errorf("path = %q", req.Path)
	}
}

func TestNoPayloadMessages(t *testing.T) {
	for _, m := range []Message{NewOpen(), NewClear(), NewRequestSave()} {
		if len(m.Data) != 0 {
			t.Errorf("%q message should carry no payload", m.Type)
		}
	}
}
