package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one rendered text in the output manifest.
type ManifestEntry struct {
	Index     int    `json:"index"`
	Text      string `json:"text"`
	Image     string `json:"image,omitempty"`
	Placed    int    `json:"placed"`
	Skipped   int    `json:"skipped"`
	Truncated bool   `json:"truncated"`
	Error     string `json:"error,omitempty"`
}

// WriteManifest writes the results as an indented JSON array to path.
// Failed jobs are listed with their error and no image.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Index:     r.Index,
			Text:      r.Text,
			Placed:    r.Placed,
			Skipped:   r.Skipped,
			Truncated: r.Truncated,
			Error:     r.Error,
		}
		if r.Success {
			entries[i].Image = r.Image
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
