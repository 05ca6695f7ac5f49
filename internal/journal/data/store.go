package data

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

var (
	mu          sync.RWMutex
	datePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
)

const polishedMarker = "## polished"

// Store reads and writes diary entries as markdown files with YAML
// frontmatter under a single journal directory.
type Store struct {
	Dir string
}

// NewStore creates a store rooted at dir, creating it if missing.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}
	return &Store{Dir: dir}, nil
}

type entryFrontmatter struct {
	ID           string   `yaml:"id,omitempty"`
	Title        string   `yaml:"title,omitempty"`
	Created      string   `yaml:"created,omitempty"`
	Images       []string `yaml:"images,omitempty"`
	Audio        string   `yaml:"audio,omitempty"`
	AudioSeconds int      `yaml:"audio_seconds,omitempty"`
	Language     string   `yaml:"language,omitempty"`
	Emotion      string   `yaml:"emotion,omitempty"`
}

// NewEntry stamps a draft entry with an ID and creation time.
func NewEntry(draft Entry) Entry {
	draft.ID = uuid.New().String()
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = time.Now()
	}
	return draft
}

// Load reads every .md file under the journal directory, newest first.
// Unreadable files are skipped rather than failing the whole load.
func (s *Store) Load() ([]Entry, error) {
	mu.RLock()
	defer mu.RUnlock()

	var entries []Entry
	err := filepath.WalkDir(s.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		entry, err := ParseEntryFile(path)
		if err != nil {
			return nil
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan journal dir: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

// ParseEntryFile reads a single entry file, parsing frontmatter, body, and
// body image links.
func ParseEntryFile(path string) (Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, err
	}

	entry := ParseEntry(content)
	entry.FilePath = path

	if entry.CreatedAt.IsZero() {
		// Fall back to a date in the filename, then file mtime
		if match := datePattern.FindString(filepath.Base(path)); match != "" {
			if parsed, err := time.Parse("2006-01-02", match); err == nil {
				entry.CreatedAt = parsed
			}
		}
	}
	if entry.CreatedAt.IsZero() {
		if info, err := os.Stat(path); err == nil {
			entry.CreatedAt = info.ModTime()
		}
	}
	return entry, nil
}

// ParseEntry parses entry file content: YAML frontmatter, an original body,
// an optional "## polished" section, and any image links in the body.
func ParseEntry(content []byte) Entry {
	fm, body := splitFrontmatter(content)

	var entry Entry
	entry.ID = fm.ID
	entry.Title = fm.Title
	entry.AudioPath = fm.Audio
	entry.AudioSeconds = fm.AudioSeconds
	entry.Language = fm.Language
	entry.Emotion = fm.Emotion

	if fm.Created != "" {
		if parsed, err := time.Parse(time.RFC3339, fm.Created); err == nil {
			entry.CreatedAt = parsed
		} else if parsed, err := time.Parse("2006-01-02", fm.Created); err == nil {
			entry.CreatedAt = parsed
		}
	}

	entry.OriginalText, entry.PolishedText = splitPolished(body)
	entry.Images = mergeImages(fm.Images, extractImageLinks(body))
	return entry
}

func splitFrontmatter(content []byte) (entryFrontmatter, string) {
	var fm entryFrontmatter

	lines := bytes.Split(content, []byte("\n"))
	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return fm, string(content)
	}

	var end int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			end = i
			break
		}
	}
	if end == 0 {
		return fm, string(content)
	}

	if err := yaml.Unmarshal(bytes.Join(lines[1:end], []byte("\n")), &fm); err != nil {
		return entryFrontmatter{}, string(content)
	}
	return fm, string(bytes.Join(lines[end+1:], []byte("\n")))
}

func splitPolished(body string) (original, polished string) {
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == polishedMarker {
			original = strings.TrimSpace(strings.Join(lines[:i], "\n"))
			polished = strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
			return original, polished
		}
	}
	return strings.TrimSpace(body), ""
}

// extractImageLinks walks the markdown AST and collects image destinations
// in document order.
func extractImageLinks(markdown string) []string {
	reader := text.NewReader([]byte(markdown))
	parser := goldmark.DefaultParser()
	doc := parser.Parse(reader)

	var links []string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindImage {
			img := n.(*ast.Image)
			if dest := string(img.Destination); dest != "" {
				links = append(links, dest)
			}
		}
		return ast.WalkContinue, nil
	})
	return links
}

func mergeImages(frontmatter, body []string) []string {
	seen := make(map[string]bool)
	var merged []string
	for _, src := range [][]string{frontmatter, body} {
		for _, img := range src {
			if img == "" || seen[img] {
				continue
			}
			seen[img] = true
			merged = append(merged, img)
		}
	}
	return merged
}

// Write persists an entry to its file, deriving a filename from the
// creation date and ID when the entry is new.
func (s *Store) Write(entry Entry) (Entry, error) {
	mu.Lock()
	defer mu.Unlock()

	if entry.FilePath == "" {
		entry.FilePath = filepath.Join(s.Dir, entryFilename(entry))
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")

	fm := entryFrontmatter{
		ID:           entry.ID,
		Title:        entry.Title,
		Created:      entry.CreatedAt.Format(time.RFC3339),
		Images:       frontmatterOnlyImages(entry),
		Audio:        entry.AudioPath,
		AudioSeconds: entry.AudioSeconds,
		Language:     entry.Language,
		Emotion:      entry.Emotion,
	}
	yamlBytes, err := yaml.Marshal(fm)
	if err != nil {
		return Entry{}, fmt.Errorf("marshal frontmatter: %w", err)
	}
	buf.Write(yamlBytes)
	buf.WriteString("---\n\n")

	buf.WriteString(entry.OriginalText)
	if strings.TrimSpace(entry.PolishedText) != "" {
		buf.WriteString("\n\n" + polishedMarker + "\n\n")
		buf.WriteString(entry.PolishedText)
	}
	buf.WriteString("\n")

	if err := os.WriteFile(entry.FilePath, buf.Bytes(), 0644); err != nil {
		return Entry{}, fmt.Errorf("write entry: %w", err)
	}
	return entry, nil
}

// frontmatterOnlyImages drops images already present as body links so a
// read-modify-write cycle does not duplicate them.
func frontmatterOnlyImages(entry Entry) []string {
	bodyLinks := make(map[string]bool)
	for _, img := range extractImageLinks(entry.OriginalText) {
		bodyLinks[img] = true
	}
	for _, img := range extractImageLinks(entry.PolishedText) {
		bodyLinks[img] = true
	}

	var kept []string
	for _, img := range entry.Images {
		if !bodyLinks[img] {
			kept = append(kept, img)
		}
	}
	return kept
}

// Delete removes an entry's backing file.
func (s *Store) Delete(entry Entry) error {
	mu.Lock()
	defer mu.Unlock()

	if entry.FilePath == "" {
		return fmt.Errorf("entry %s has no backing file", entry.ID)
	}
	if err := os.Remove(entry.FilePath); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

func entryFilename(entry Entry) string {
	id := entry.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s-%s.md", entry.CreatedAt.Format("2006-01-02"), id)
}
