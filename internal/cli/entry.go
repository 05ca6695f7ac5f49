package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"glim/internal/journal/data"
	"glim/internal/journal/service"
	"glim/internal/timefmt"
)

func runAdd(args []string, svc service.EntryService) int {
	fs := flag.NewFlagSet("entry add", flag.ContinueOnError)
	title := fs.String("title", "", "entry title")
	emotion := fs.String("emotion", "", "emotion tag")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: entry text required")
		return 1
	}

	entry, err := svc.Add(data.Entry{
		Title:        *title,
		OriginalText: strings.Join(fs.Args(), " "),
		Emotion:      *emotion,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("Added entry %s\n", shortID(entry.ID))
	return 0
}

func runList(args []string, svc service.EntryService, dateFormat string) int {
	fs := flag.NewFlagSet("entry list", flag.ContinueOnError)
	emotion := fs.String("emotion", "", "filter by emotion tag")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	var entries []data.Entry
	var err error
	if *emotion != "" {
		entries, err = svc.ListByEmotion(*emotion)
	} else {
		entries, err = svc.List()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if len(entries) == 0 {
		fmt.Println("No entries.")
		return 0
	}

	now := time.Now()
	for _, e := range entries {
		when := timefmt.Relative(now, e.CreatedAt, func(t time.Time) string {
			return t.Format(dateFormat)
		})
		line := fmt.Sprintf("%s  %-14s  %s", shortID(e.ID), when, summary(e))
		if e.Emotion != "" {
			line += "  [" + e.Emotion + "]"
		}
		fmt.Println(line)
	}
	return 0
}

func runShow(args []string, svc service.EntryService) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: entry id required")
		return 1
	}

	entry, err := svc.Get(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("id:      %s\n", entry.ID)
	fmt.Printf("created: %s\n", entry.CreatedAt.Format(time.RFC3339))
	if entry.Title != "" {
		fmt.Printf("title:   %s\n", entry.Title)
	}
	if entry.Emotion != "" {
		fmt.Printf("emotion: %s\n", entry.Emotion)
	}
	if len(entry.Images) > 0 {
		fmt.Printf("images:  %s\n", strings.Join(entry.Images, ", "))
	}
	if entry.HasAudio() {
		fmt.Printf("audio:   %s (%ds)\n", entry.AudioPath, entry.AudioSeconds)
	}
	fmt.Println()
	fmt.Println(entry.DisplayText())
	return 0
}

func runDelete(args []string, svc service.EntryService) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: entry id required")
		return 1
	}

	if err := svc.Delete(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Println("Deleted.")
	return 0
}

func summary(e data.Entry) string {
	if t := strings.TrimSpace(e.Title); t != "" {
		return t
	}
	text := strings.Join(strings.Fields(e.DisplayText()), " ")
	runes := []rune(text)
	if len(runes) > 48 {
		return string(runes[:47]) + "…"
	}
	if text == "" && len(e.Images) > 0 {
		return fmt.Sprintf("(%d images)", len(e.Images))
	}
	return text
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
