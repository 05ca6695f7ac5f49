package service

import (
	"testing"

	"glim/internal/journal/data"
)

func newTestService(t *testing.T) EntryService {
	t.Helper()
	svc, err := NewEntryService(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return svc
}

func TestAddAndList(t *testing.T) {
	svc := newTestService(t)

	added, err := svc.Add(data.Entry{OriginalText: "first entry", Emotion: "joy"})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if added.ID == "" {
		t.Fatal("expected assigned ID")
	}

	entries, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].OriginalText != "first entry" {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
}

func TestListByEmotion(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Add(data.Entry{OriginalText: "a", Emotion: "calm"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Add(data.Entry{OriginalText: "b", Emotion: "JOY"}); err != nil {
		t.Fatal(err)
	}

	entries, err := svc.ListByEmotion("joy")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 1 || entries[0].OriginalText != "b" {
		t.Errorf("emotion filter should be case-insensitive, got %v", entries)
	}
}

func TestGetByPrefix(t *testing.T) {
	svc := newTestService(t)
	added, err := svc.Add(data.Entry{OriginalText: "findable"})
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.Get(added.ID[:8])
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ID != added.ID {
		t.Errorf("expected %s, got %s", added.ID, got.ID)
	}

	if _, err := svc.Get("zzzzzz"); err == nil {
		t.Error("expected error for unknown prefix")
	}
}

func TestUpdatePersists(t *testing.T) {
	svc := newTestService(t)
	added, err := svc.Add(data.Entry{OriginalText: "before"})
	if err != nil {
		t.Fatal(err)
	}

	entry := *added
	entry.PolishedText = "after, but nicer"
	if err := svc.Update(entry); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if err := svc.Reload(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	got, err := svc.Get(added.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.PolishedText != "after, but nicer" {
		t.Errorf("update not persisted: %+v", got)
	}
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	added, err := svc.Add(data.Entry{OriginalText: "doomed"})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(added.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	entries, _ := svc.List()
	if len(entries) != 0 {
		t.Errorf("expected empty list after delete, got %d", len(entries))
	}

	if err := svc.Reload(); err != nil {
		t.Fatal(err)
	}
	entries, _ = svc.List()
	if len(entries) != 0 {
		t.Errorf("delete should remove the backing file, got %d entries", len(entries))
	}
}
