// Package host is the file-owning side of the application: it loads and
// saves recordings, keeps the recent-files list, holds the session
// options, and answers the renderer's requests over the protocol bus.
package host

import (
	"fmt"
	"os"
)

// Dialogs is the user-facing surface the host needs. The real
// implementation renders on the renderer thread; tests use fakes. Both
// calls block until the user answers.
type Dialogs interface {
	// PickFile prompts for a recording file. ok is false on cancel.
	PickFile() (path string, ok bool)
	// ConfirmClear asks before destroying loaded data. remember reports
	// the "don't ask again" checkbox.
	ConfirmClear() (clear, remember bool)
}

const maxRecent = 8

// FileManager reads and writes recording files and maintains the
// most-recently-used list.
type FileManager struct {
	lastPath string
	recent   []string

	// OnRecentChanged fires after every MRU change with the new list.
	OnRecentChanged func(paths []string)
}

func NewFileManager() *FileManager {
	return &FileManager{}
}

// Load reads a recording file and records it as most recently used.
func (f *FileManager) Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load recording: %w", err)
	}
	f.lastPath = path
	f.touch(path)
	return data, nil
}

// Save writes content to the last loaded path.
func (f *FileManager) Save(content []byte) error {
	if f.lastPath == "" {
		return fmt.Errorf("save recording: no file loaded")
	}
	if err := os.WriteFile(f.lastPath, content, 0644); err != nil {
		return fmt.Errorf("save recording: %w", err)
	}
	return nil
}

// LastPath returns the most recently loaded file path.
func (f *FileManager) LastPath() string {
	return f.lastPath
}

// Recent returns the MRU list, most recent first.
func (f *FileManager) Recent() []string {
	out := make([]string, len(f.recent))
	copy(out, f.recent)
	return out
}

// SetRecent seeds the MRU list, used when restoring persisted prefs.
func (f *FileManager) SetRecent(paths []string) {
	if len(paths) > maxRecent {
		paths = paths[:maxRecent]
	}
	f.recent = append(f.recent[:0], paths...)
}

// touch moves path to the front of the MRU list, dropping duplicates and
// capping the length.
func (f *FileManager) touch(path string) {
	updated := make([]string, 0, len(f.recent)+1)
	updated = append(updated, path)
	for _, p := range f.recent {
		if p == path {
			continue
		}
		updated = append(updated, p)
	}
	if len(updated) > maxRecent {
		updated = updated[:maxRecent]
	}
	f.recent = updated

	if f.OnRecentChanged != nil {
		f.OnRecentChanged(f.Recent())
	}
}
