package service

import (
	"fmt"
	"strings"

	"glim/internal/journal/data"
	"glim/internal/logs"
)

// EntryService defines the interface for diary entry operations.
type EntryService interface {
	List() ([]data.Entry, error)
	ListByEmotion(emotion string) ([]data.Entry, error)
	Get(idPrefix string) (*data.Entry, error)
	Add(draft data.Entry) (*data.Entry, error)
	Update(entry data.Entry) error
	Delete(idPrefix string) error
	Reload() error
}

type entryServiceImpl struct {
	entries []data.Entry
	store   *data.Store
}

// NewEntryService creates an EntryService over a journal directory.
func NewEntryService(journalDir string) (EntryService, error) {
	store, err := data.NewStore(journalDir)
	if err != nil {
		return nil, err
	}
	svc := &entryServiceImpl{store: store}
	if err := svc.Reload(); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *entryServiceImpl) Reload() error {
	entries, err := s.store.Load()
	if err != nil {
		return err
	}
	s.entries = entries
	return nil
}

func (s *entryServiceImpl) List() ([]data.Entry, error) {
	return s.entries, nil
}

func (s *entryServiceImpl) ListByEmotion(emotion string) ([]data.Entry, error) {
	var filtered []data.Entry
	for _, e := range s.entries {
		if strings.EqualFold(e.Emotion, emotion) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// Get finds an entry by ID or unique ID prefix.
func (s *entryServiceImpl) Get(idPrefix string) (*data.Entry, error) {
	var found *data.Entry
	for i := range s.entries {
		if strings.HasPrefix(s.entries[i].ID, idPrefix) {
			if found != nil {
				return nil, fmt.Errorf("ambiguous id prefix %q", idPrefix)
			}
			found = &s.entries[i]
		}
	}
	if found == nil {
		return nil, fmt.Errorf("no entry with id %q", idPrefix)
	}
	return found, nil
}

func (s *entryServiceImpl) Add(draft data.Entry) (*data.Entry, error) {
	entry := data.NewEntry(draft)
	written, err := s.store.Write(entry)
	if err != nil {
		return nil, err
	}
	logs.Logger.Printf("added entry %s", written.ID)

	// Newest first: new entries go to the front
	s.entries = append([]data.Entry{written}, s.entries...)
	return &written, nil
}

func (s *entryServiceImpl) Update(entry data.Entry) error {
	written, err := s.store.Write(entry)
	if err != nil {
		return err
	}
	for i := range s.entries {
		if s.entries[i].ID == written.ID {
			s.entries[i] = written
			return nil
		}
	}
	s.entries = append(s.entries, written)
	return nil
}

func (s *entryServiceImpl) Delete(idPrefix string) error {
	entry, err := s.Get(idPrefix)
	if err != nil {
		return err
	}
	if err := s.store.Delete(*entry); err != nil {
		return err
	}
	for i := range s.entries {
		if s.entries[i].ID == entry.ID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	return nil
}
