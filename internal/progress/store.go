package progress

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pops-math/popsmath-web/internal/kv"
)

const (
	// Key is the storage key the record lives under.
	Key = "popsmath_progress"
	// LegacyKey is the pre-rename key; Load migrates a record found
	// there exactly once.
	LegacyKey = "math_unit_progress"
)

// Store persists the Progress record through an injected backend.
// Mutators follow a load-mutate-save cycle with exactly one save per
// action; there is no caching of derived state.
type Store struct {
	backend   kv.Backend
	key       string
	legacyKey string
}

func NewStore(backend kv.Backend) *Store {
	return &Store{backend: backend, key: Key, legacyKey: LegacyKey}
}

// NewStoreKeys exists for tests that need their own key pair.
func NewStoreKeys(backend kv.Backend, key, legacyKey string) *Store {
	return &Store{backend: backend, key: key, legacyKey: legacyKey}
}

// Load returns the persisted record, or an empty one if nothing is
// stored. When only the legacy key holds a record it is copied to the
// current key and the legacy key erased; after that the migration is a
// no-op because the legacy key no longer exists. A record that does not
// parse is a fatal load error, never silently repaired.
func (s *Store) Load() (Progress, error) {
	raw, ok, err := s.backend.Get(s.key)
	if err != nil {
		return Progress{}, fmt.Errorf("load progress: %w", err)
	}
	if !ok {
		raw, ok, err = s.backend.Get(s.legacyKey)
		if err != nil {
			return Progress{}, fmt.Errorf("load progress (legacy): %w", err)
		}
		if !ok {
			return New(), nil
		}
		if _, err := decode(raw); err != nil {
			return Progress{}, err
		}
		if err := s.backend.Set(s.key, raw); err != nil {
			return Progress{}, fmt.Errorf("migrate progress: %w", err)
		}
		if err := s.backend.Delete(s.legacyKey); err != nil {
			return Progress{}, fmt.Errorf("erase legacy progress: %w", err)
		}
	}
	return decode(raw)
}

func decode(raw []byte) (Progress, error) {
	var p Progress
	if err := json.Unmarshal(raw, &p); err != nil {
		return Progress{}, fmt.Errorf("malformed progress record: %w", err)
	}
	if p.SectionsCompleted == nil {
		p.SectionsCompleted = []int{}
	}
	if p.PracticeScores == nil {
		p.PracticeScores = map[string]Score{}
	}
	if p.TestScores == nil {
		p.TestScores = map[string]int{}
	}
	return p, nil
}

// Save persists the whole record, overwriting any prior value. With the
// Noop backend this silently does nothing.
func (s *Store) Save(p Progress) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	return s.backend.Set(s.key, raw)
}

// Reset erases the record; the next Load returns a fresh empty one.
func (s *Store) Reset() error {
	return s.backend.Delete(s.key)
}

// MarkSectionComplete records an explicit section completion. Idempotent:
// marking a completed section again persists nothing.
func (s *Store) MarkSectionComplete(sectionID int) (Progress, error) {
	p, err := s.Load()
	if err != nil {
		return Progress{}, err
	}
	if !p.markComplete(sectionID) {
		return p, nil
	}
	return p, s.Save(p)
}

// SavePracticeScore stores the latest practice tally for a section.
func (s *Store) SavePracticeScore(sectionID, correct, total int) (Progress, error) {
	if correct < 0 || total < 0 || correct > total {
		return Progress{}, fmt.Errorf("invalid practice score %d/%d", correct, total)
	}
	p, err := s.Load()
	if err != nil {
		return Progress{}, err
	}
	p.PracticeScores[strconv.Itoa(sectionID)] = Score{Correct: correct, Total: total}
	return p, s.Save(p)
}

// DeletePracticeScore removes a section's practice entry entirely, the
// persistence half of a practice reset.
func (s *Store) DeletePracticeScore(sectionID int) (Progress, error) {
	p, err := s.Load()
	if err != nil {
		return Progress{}, err
	}
	key := strconv.Itoa(sectionID)
	if _, ok := p.PracticeScores[key]; !ok {
		return p, nil
	}
	delete(p.PracticeScores, key)
	return p, s.Save(p)
}

// SaveTestScoreIfBest persists score for a test only when it strictly
// beats the stored value, and reports the stored best afterwards. Stored
// test scores are therefore monotonically non-decreasing.
func (s *Store) SaveTestScoreIfBest(testID, score int) (best int, saved bool, err error) {
	p, err := s.Load()
	if err != nil {
		return 0, false, err
	}
	key := strconv.Itoa(testID)
	prev, had := p.TestScores[key]
	if had && score <= prev {
		return prev, false, nil
	}
	p.TestScores[key] = score
	if err := s.Save(p); err != nil {
		return 0, false, err
	}
	return score, true, nil
}
