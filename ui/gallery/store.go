package gallery

import (
	"vincit.fi/image-browser/api/apitype"
)

const NoSelection = -1

// Store is the ordered list of loaded thumbnails. It is confined to the
// UI thread and therefore not synchronized.
type Store struct {
	entries  []*apitype.ThumbnailEntry
	selected int
}

func NewStore() *Store {
	return &Store{
		selected: NoSelection,
	}
}

func (s *Store) Clear() {
	s.entries = nil
	s.selected = NoSelection
}

func (s *Store) Append(entry *apitype.ThumbnailEntry) {
	if entry != nil {
		s.entries = append(s.entries, entry)
	}
}

func (s *Store) Len() int {
	return len(s.entries)
}

func (s *Store) IsEmpty() bool {
	return len(s.entries) == 0
}

// Entries returns the entries in append order. The slice must not be
// modified by the caller.
func (s *Store) Entries() []*apitype.ThumbnailEntry {
	return s.entries
}

func (s *Store) At(index int) *apitype.ThumbnailEntry {
	if index < 0 || index >= len(s.entries) {
		return nil
	}
	return s.entries[index]
}

// Select selects the entry if it is in the store.
func (s *Store) Select(entry *apitype.ThumbnailEntry) bool {
	for i, stored := range s.entries {
		if stored == entry {
			s.selected = i
			return true
		}
	}
	return false
}

func (s *Store) SelectIndex(index int) bool {
	if index < 0 || index >= len(s.entries) {
		return false
	}
	s.selected = index
	return true
}

func (s *Store) Selected() *apitype.ThumbnailEntry {
	return s.At(s.selected)
}

func (s *Store) SelectedIndex() int {
	return s.selected
}

func (s *Store) HasSelection() bool {
	return s.selected != NoSelection
}
