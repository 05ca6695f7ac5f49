package data

import (
	"strings"
	"time"
)

// Entry represents a single diary entry loaded from the journal directory.
// Entries are immutable per render pass; edits go through the service and
// rewrite the backing file.
type Entry struct {
	ID           string    // uuid assigned at creation
	Title        string    // From frontmatter `title`, may be empty
	OriginalText string    // Markdown body as written
	PolishedText string    // Optional rewritten body (## polished section)
	CreatedAt    time.Time // From frontmatter `created`, filename date, or file mtime
	Images       []string  // Frontmatter images first, then body image links, deduplicated
	AudioPath    string    // Optional voice-note file
	AudioSeconds int       // Voice-note duration
	Language     string    // Optional language hint ("en", "zh", ...)
	Emotion      string    // Optional emotion tag (calm, joy, sad, ...)
	FilePath     string    // Absolute path to the backing file
}

// DisplayText returns the text shown on cards: polished when available,
// otherwise the original body.
func (e Entry) DisplayText() string {
	if strings.TrimSpace(e.PolishedText) != "" {
		return e.PolishedText
	}
	return e.OriginalText
}

// HasAudio reports whether the entry carries a voice note.
func (e Entry) HasAudio() bool {
	return e.AudioPath != ""
}
