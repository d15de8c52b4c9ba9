package host

import (
	"encoding/json"
	"log"
	"os"
)

// Prefs holds state persisted between runs. Session options are
// deliberately not part of this.
type Prefs struct {
	WindowWidth  int      `json:"windowWidth"`
	WindowHeight int      `json:"windowHeight"`
	RecentFiles  []string `json:"recentFiles,omitempty"`
	LastDir      string   `json:"lastDir,omitempty"`
}

const prefsFile = ".recview_prefs.json"

// LoadPrefs loads preferences from disk. Returns nil if there are none.
func LoadPrefs() *Prefs {
	data, err := os.ReadFile(prefsFile)
	if err != nil {
		return nil
	}

	var prefs Prefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Printf("host: failed to parse prefs: %v", err)
		return nil
	}
	return &prefs
}

// Save writes the preferences to disk.
func (p *Prefs) Save() {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		log.Printf("host: failed to marshal prefs: %v", err)
		return
	}
	if err := os.WriteFile(prefsFile, data, 0644); err != nil {
		log.Printf("host: failed to save prefs: %v", err)
	}
}
