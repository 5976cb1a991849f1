package curriculum

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// ErrNotFound is returned when a curriculum id does not exist in the store.
var ErrNotFound = errors.New("curriculum not found")

// Store persists generated curricula.
type Store interface {
	Save(ctx context.Context, c Curriculum) error
	Get(ctx context.Context, id string) (Curriculum, error)
	ListByUser(ctx context.Context, userID string) ([]Curriculum, error)
	CompleteLesson(ctx context.Context, curriculumID, lessonID string) (Curriculum, error)
}

// MemoryStore is an in-memory Store. It is the fallback when no database is
// configured and the workhorse for tests.
type MemoryStore struct {
	mu        sync.RWMutex
	curricula map[string]Curriculum
}

// NewMemoryStore creates an empty in-memory curriculum store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{curricula: make(map[string]Curriculum)}
}

func (s *MemoryStore) Save(ctx context.Context, c Curriculum) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.curricula[c.ID] = c
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (Curriculum, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.curricula[id]
	if !ok {
		return Curriculum{}, ErrNotFound
	}
	return c, nil
}

func (s *MemoryStore) ListByUser(ctx context.Context, userID string) ([]Curriculum, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := []Curriculum{}
	for _, c := range s.curricula {
		if c.UserID == userID {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (s *MemoryStore) CompleteLesson(ctx context.Context, curriculumID, lessonID string) (Curriculum, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.curricula[curriculumID]
	if !ok {
		return Curriculum{}, ErrNotFound
	}
	if err := c.CompleteLesson(lessonID); err != nil {
		return Curriculum{}, err
	}
	s.curricula[curriculumID] = c
	return c, nil
}
