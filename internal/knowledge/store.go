// Package knowledge holds the curated corpus the engine answers factual
// questions from, and the ranked retrieval over it. Everything is in memory;
// persistence is deliberately out of scope.
package knowledge

import (
	"sync"
	"time"
)

// Categories is the closed set of corpus categories.
var Categories = []string{
	"menu",
	"ingredients",
	"nutrition",
	"policies",
	"promotions",
	"faqs",
	"ordering",
	"delivery",
	"history",
	"fun_facts",
	"persona",
	"pizza_science",
	"debates",
}

// Entry is one retrievable document. IDs are monotonic and never reused;
// Version starts at 1 and increments on every update.
type Entry struct {
	ID        int       `json:"id"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EntryPatch is a partial update. Nil fields are left untouched.
type EntryPatch struct {
	Title   *string
	Content *string
	Tags    []string
}

// Store is the entry collection. Mutations are serialized against readers;
// reads among themselves share the lock in read mode. Entries leaving the
// store carry their own Tags slice so callers cannot mutate stored state.
type Store struct {
	mu     sync.RWMutex
	stored []Entry
	nextID int
}

func cloneEntry(e Entry) Entry {
	e.Tags = append([]string(nil), e.Tags...)
	return e
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends a new entry and returns it. Tags may be nil.
func (s *Store) Add(category, title, content string, tags []string) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	now := time.Now().UTC()
	entry := Entry{
		ID:        s.nextID,
		Category:  category,
		Title:     title,
		Content:   content,
		Tags:      append([]string(nil), tags...),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.stored = append(s.stored, entry)
	return cloneEntry(entry)
}

// Update applies a partial patch to the entry with the given id, bumping its
// version and refreshing its timestamp. The second return is false when no
// such entry exists.
func (s *Store) Update(id int, patch EntryPatch) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.stored {
		if s.stored[i].ID != id {
			continue
		}
		if patch.Title != nil {
			s.stored[i].Title = *patch.Title
		}
		if patch.Content != nil {
			s.stored[i].Content = *patch.Content
		}
		if patch.Tags != nil {
			s.stored[i].Tags = append([]string(nil), patch.Tags...)
		}
		s.stored[i].Version++
		s.stored[i].UpdatedAt = time.Now().UTC()
		return cloneEntry(s.stored[i]), true
	}
	return Entry{}, false
}

// Delete permanently removes the entry with the given id. IDs are never
// reused afterwards.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.stored {
		if s.stored[i].ID == id {
			s.stored = append(s.stored[:i], s.stored[i+1:]...)
			return true
		}
	}
	return false
}

// GetByID returns the entry with the given id.
func (s *Store) GetByID(id int) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.stored {
		if e.ID == id {
			return cloneEntry(e), true
		}
	}
	return Entry{}, false
}

// GetByCategory returns all entries in a category, in insertion order.
func (s *Store) GetByCategory(category string) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Entry
	for _, e := range s.stored {
		if e.Category == category {
			out = append(out, cloneEntry(e))
		}
	}
	return out
}

// All returns a copy of every entry, in insertion order.
func (s *Store) All() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, 0, len(s.stored))
	for _, e := range s.stored {
		out = append(out, cloneEntry(e))
	}
	return out
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stored)
}
