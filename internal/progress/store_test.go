package progress

import (
	"testing"

	"github.com/pops-math/popsmath-web/internal/kv"
)

func TestLoadEmpty(t *testing.T) {
	s := NewStore(kv.NewMemory())
	p, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(p.SectionsCompleted) != 0 || len(p.PracticeScores) != 0 || len(p.TestScores) != 0 {
		t.Fatalf("fresh record not empty: %+v", p)
	}
	// maps must be usable without further allocation
	p.PracticeScores["1"] = Score{Correct: 1, Total: 1}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewStore(kv.NewMemory())
	p := New()
	p.SectionsCompleted = []int{2, 5}
	p.PracticeScores["2"] = Score{Correct: 3, Total: 5}
	p.TestScores["1"] = 14
	if err := s.Save(p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.SectionComplete(2) || !got.SectionComplete(5) || got.SectionComplete(3) {
		t.Fatalf("sectionsCompleted = %v", got.SectionsCompleted)
	}
	if got.PracticeScores["2"] != (Score{Correct: 3, Total: 5}) {
		t.Fatalf("practiceScores = %v", got.PracticeScores)
	}
	if got.TestScores["1"] != 14 {
		t.Fatalf("testScores = %v", got.TestScores)
	}
}

func TestLegacyKeyMigration(t *testing.T) {
	backend := kv.NewMemory()
	record := []byte(`{"sectionsCompleted":[1],"practiceScores":{"1":{"correct":5,"total":5}},"testScores":{"1":12}}`)
	if err := backend.Set(LegacyKey, record); err != nil {
		t.Fatal(err)
	}

	s := NewStore(backend)
	p, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !p.SectionComplete(1) || p.TestScores["1"] != 12 {
		t.Fatalf("migrated record wrong: %+v", p)
	}

	// current key now holds the record, legacy key is gone
	if _, ok, _ := backend.Get(Key); !ok {
		t.Fatal("current key absent after migration")
	}
	if _, ok, _ := backend.Get(LegacyKey); ok {
		t.Fatal("legacy key survived migration")
	}

	// idempotent: a second load returns the same record unchanged
	p2, err := s.Load()
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if !p2.SectionComplete(1) || p2.PracticeScores["1"] != (Score{Correct: 5, Total: 5}) {
		t.Fatalf("second load changed record: %+v", p2)
	}
}

func TestCurrentKeyWinsOverLegacy(t *testing.T) {
	backend := kv.NewMemory()
	_ = backend.Set(Key, []byte(`{"sectionsCompleted":[2],"practiceScores":{},"testScores":{}}`))
	_ = backend.Set(LegacyKey, []byte(`{"sectionsCompleted":[9],"practiceScores":{},"testScores":{}}`))

	s := NewStore(backend)
	p, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !p.SectionComplete(2) || p.SectionComplete(9) {
		t.Fatalf("legacy record overrode current: %+v", p)
	}
	// the stale legacy record is left alone; only the missing-current
	// case migrates
	if _, ok, _ := backend.Get(LegacyKey); !ok {
		t.Fatal("legacy key erased without migration")
	}
}

func TestMalformedRecordIsFatal(t *testing.T) {
	backend := kv.NewMemory()
	_ = backend.Set(Key, []byte(`{"sectionsCompleted":"oops"`))
	s := NewStore(backend)
	if _, err := s.Load(); err == nil {
		t.Fatal("Load accepted a malformed record")
	}
}

func TestMalformedLegacyRecordIsFatal(t *testing.T) {
	backend := kv.NewMemory()
	_ = backend.Set(LegacyKey, []byte(`not json`))
	s := NewStore(backend)
	if _, err := s.Load(); err == nil {
		t.Fatal("Load accepted a malformed legacy record")
	}
	// nothing was migrated
	if _, ok, _ := backend.Get(Key); ok {
		t.Fatal("malformed legacy record copied to current key")
	}
}

func TestReset(t *testing.T) {
	s := NewStore(kv.NewMemory())
	if _, err := s.MarkSectionComplete(3); err != nil {
		t.Fatal(err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	p, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(p.SectionsCompleted) != 0 {
		t.Fatalf("record survived reset: %+v", p)
	}
}

func TestMarkSectionCompleteIdempotent(t *testing.T) {
	s := NewStore(kv.NewMemory())
	for i := 0; i < 3; i++ {
		if _, err := s.MarkSectionComplete(4); err != nil {
			t.Fatal(err)
		}
	}
	p, _ := s.Load()
	if len(p.SectionsCompleted) != 1 || p.SectionsCompleted[0] != 4 {
		t.Fatalf("sectionsCompleted = %v, want [4]", p.SectionsCompleted)
	}
}

func TestSavePracticeScoreValidation(t *testing.T) {
	s := NewStore(kv.NewMemory())
	if _, err := s.SavePracticeScore(1, 3, 2); err == nil {
		t.Fatal("correct > total accepted")
	}
	if _, err := s.SavePracticeScore(1, -1, 2); err == nil {
		t.Fatal("negative correct accepted")
	}
	if _, err := s.SavePracticeScore(1, 2, 5); err != nil {
		t.Fatalf("valid score rejected: %v", err)
	}
}

func TestDeletePracticeScore(t *testing.T) {
	s := NewStore(kv.NewMemory())
	if _, err := s.SavePracticeScore(2, 4, 5); err != nil {
		t.Fatal(err)
	}
	p, err := s.DeletePracticeScore(2)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.PracticeScores["2"]; ok {
		t.Fatal("practice entry survived delete")
	}
	// deleting again is a no-op
	if _, err := s.DeletePracticeScore(2); err != nil {
		t.Fatal(err)
	}
}

func TestSaveTestScoreIfBest(t *testing.T) {
	s := NewStore(kv.NewMemory())

	best, saved, err := s.SaveTestScoreIfBest(1, 14)
	if err != nil || !saved || best != 14 {
		t.Fatalf("first save: best=%d saved=%v err=%v", best, saved, err)
	}

	// a lower score never overwrites
	best, saved, err = s.SaveTestScoreIfBest(1, 12)
	if err != nil || saved || best != 14 {
		t.Fatalf("lower score: best=%d saved=%v err=%v", best, saved, err)
	}

	// equal score is not an improvement
	best, saved, _ = s.SaveTestScoreIfBest(1, 14)
	if saved || best != 14 {
		t.Fatalf("equal score: best=%d saved=%v", best, saved)
	}

	best, saved, _ = s.SaveTestScoreIfBest(1, 17)
	if !saved || best != 17 {
		t.Fatalf("higher score: best=%d saved=%v", best, saved)
	}

	// test ids are independent
	best, saved, _ = s.SaveTestScoreIfBest(2, 5)
	if !saved || best != 5 {
		t.Fatalf("second test: best=%d saved=%v", best, saved)
	}
	p, _ := s.Load()
	if p.TestScores["1"] != 17 || p.TestScores["2"] != 5 {
		t.Fatalf("testScores = %v", p.TestScores)
	}
}

func TestNoopBackendSilentlyDropsWrites(t *testing.T) {
	s := NewStore(kv.Noop{})
	if _, err := s.MarkSectionComplete(1); err != nil {
		t.Fatalf("MarkSectionComplete on noop: %v", err)
	}
	if err := s.Save(New()); err != nil {
		t.Fatalf("Save on noop: %v", err)
	}
	p, err := s.Load()
	if err != nil {
		t.Fatalf("Load on noop: %v", err)
	}
	if len(p.SectionsCompleted) != 0 {
		t.Fatalf("noop backend retained state: %+v", p)
	}
}
