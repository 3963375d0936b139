// internal/app/symptom_service.go
package app

import (
	"fmt"
	"sync"

	"pinkguard_bot/internal/domain/symptom"
)

var ErrUnknownCategory = fmt.Errorf("unknown symptom category")
var ErrUnknownSymptom = fmt.Errorf("unknown symptom")

// Checklist is a category with the chat's current selection.
type Checklist struct {
	Category symptom.Category
	Selected []bool // parallel to Category.Symptoms
}

// Count returns how many symptoms are selected.
func (c Checklist) Count() int {
	n := 0
	for _, s := range c.Selected {
		if s {
			n++
		}
	}
	return n
}

// Assessment is the result of analyzing a checklist.
type Assessment struct {
	Category symptom.Category
	Count    int
	Tier     symptom.Tier
}

// SymptomService holds checkbox selections in memory. Nothing is persisted.
type SymptomService struct {
	mu         sync.Mutex
	selections map[int64]map[string][]bool
}

func NewSymptomService() *SymptomService {
	return &SymptomService{selections: make(map[int64]map[string][]bool)}
}

// Checklist returns the category with the chat's selection.
func (s *SymptomService) Checklist(ownerID int64, key string) (Checklist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := lookupCategory(key)
	if err != nil {
		return Checklist{}, err
	}
	return Checklist{Category: c, Selected: append([]bool(nil), s.selectionLocked(ownerID, c)...)}, nil
}

// Toggle flips the symptom at index.
func (s *SymptomService) Toggle(ownerID int64, key string, index int) (Checklist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := lookupCategory(key)
	if err != nil {
		return Checklist{}, err
	}
	if index < 0 || index >= len(c.Symptoms) {
		return Checklist{}, fmt.Errorf("%w: index %d in %s", ErrUnknownSymptom, index, key)
	}
	selected := s.selectionLocked(ownerID, c)
	selected[index] = !selected[index]
	return Checklist{Category: c, Selected: append([]bool(nil), selected...)}, nil
}

// Analyze classifies the current selection.
func (s *SymptomService) Analyze(ownerID int64, key string) (Assessment, error) {
	list, err := s.Checklist(ownerID, key)
	if err != nil {
		return Assessment{}, err
	}
	count := list.Count()
	return Assessment{
		Category: list.Category,
		Count:    count,
		Tier:     symptom.Classify(count),
	}, nil
}

// Reset clears every selection in the category.
func (s *SymptomService) Reset(ownerID int64, key string) (Checklist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := lookupCategory(key)
	if err != nil {
		return Checklist{}, err
	}
	if byCategory, ok := s.selections[ownerID]; ok {
		delete(byCategory, key)
	}
	return Checklist{Category: c, Selected: append([]bool(nil), s.selectionLocked(ownerID, c)...)}, nil
}

// selectionLocked returns the live selection slice, creating it if needed.
func (s *SymptomService) selectionLocked(ownerID int64, c symptom.Category) []bool {
	byCategory, ok := s.selections[ownerID]
	if !ok {
		byCategory = make(map[string][]bool)
		s.selections[ownerID] = byCategory
	}
	selected, ok := byCategory[c.Key]
	if !ok {
		selected = make([]bool, len(c.Symptoms))
		byCategory[c.Key] = selected
	}
	return selected
}

func lookupCategory(key string) (symptom.Category, error) {
	if key == "" {
		key = symptom.DefaultCategory
	}
	c, ok := symptom.Lookup(key)
	if !ok {
		return symptom.Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
	}
	return c, nil
}
