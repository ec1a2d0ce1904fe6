package gating

import (
	"strconv"
	"testing"
	"testing/fstest"

	"github.com/pops-math/popsmath-web/internal/content"
	"github.com/pops-math/popsmath-web/internal/progress"
)

func catalog(t *testing.T) *content.Store {
	t.Helper()
	c, err := content.Load()
	if err != nil {
		t.Fatalf("content.Load: %v", err)
	}
	return c
}

// perfectAll fills a progress record with a perfect practice entry for
// every section the catalog declares.
func perfectAll(c *content.Store) progress.Progress {
	p := progress.New()
	for _, sec := range c.Sections() {
		n := c.QuestionCount(sec.SectionID)
		p.PracticeScores[strconv.Itoa(sec.SectionID)] = progress.Score{Correct: n, Total: n}
	}
	return p
}

func TestSectionComplete(t *testing.T) {
	p := progress.New()
	if SectionComplete(p, 1) {
		t.Fatal("empty record reports section complete")
	}
	p.SectionsCompleted = []int{1, 3}
	if !SectionComplete(p, 1) || !SectionComplete(p, 3) || SectionComplete(p, 2) {
		t.Fatalf("membership wrong for %v", p.SectionsCompleted)
	}
}

func TestPracticePerfect(t *testing.T) {
	c := catalog(t)
	sec := c.Sections()[0].SectionID
	n := c.QuestionCount(sec)

	cases := []struct {
		name  string
		score *progress.Score
		want  bool
	}{
		{"no entry", nil, false},
		{"perfect", &progress.Score{Correct: n, Total: n}, true},
		{"all checked one wrong", &progress.Score{Correct: n - 1, Total: n}, false},
		{"partial but flawless", &progress.Score{Correct: n - 1, Total: n - 1}, false},
		{"zero", &progress.Score{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := progress.New()
			if tc.score != nil {
				p.PracticeScores[strconv.Itoa(sec)] = *tc.score
			}
			if got := PracticePerfect(p, c, sec); got != tc.want {
				t.Fatalf("PracticePerfect = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPracticePerfectUnknownSection(t *testing.T) {
	c := catalog(t)
	p := progress.New()
	p.PracticeScores["999"] = progress.Score{Correct: 5, Total: 5}
	if PracticePerfect(p, c, 999) {
		t.Fatal("unknown section reported perfect")
	}
}

func TestAllPracticeComplete(t *testing.T) {
	c := catalog(t)

	if AllPracticeComplete(progress.New(), c) {
		t.Fatal("empty record unlocked everything")
	}

	p := perfectAll(c)
	if !AllPracticeComplete(p, c) {
		t.Fatal("all-perfect record not recognized")
	}
	if !TestUnlocked(p, c) {
		t.Fatal("tests locked despite full mastery")
	}

	// flipping any single section's perfect status flips the aggregate
	for _, sec := range c.Sections() {
		key := strconv.Itoa(sec.SectionID)
		p := perfectAll(c)
		entry := p.PracticeScores[key]
		entry.Correct--
		p.PracticeScores[key] = entry
		if AllPracticeComplete(p, c) {
			t.Errorf("section %d imperfect but aggregate still true", sec.SectionID)
		}
	}

	// a missing entry is incomplete, not an error
	p = perfectAll(c)
	delete(p.PracticeScores, strconv.Itoa(c.Sections()[0].SectionID))
	if AllPracticeComplete(p, c) {
		t.Fatal("missing entry treated as complete")
	}
}

func TestZeroSectionsStaysLocked(t *testing.T) {
	empty, err := content.LoadFS(fstest.MapFS{
		"metadata.json":           &fstest.MapFile{Data: []byte(`{"unit_number":1,"unit_title":"Empty","total_sections":0,"sections":[]}`)},
		"lesson_plan.json":        &fstest.MapFile{Data: []byte(`{"sections":[]}`)},
		"practice_questions.json": &fstest.MapFile{Data: []byte(`{"sections":[]}`)},
	})
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if AllPracticeComplete(progress.New(), empty) {
		t.Fatal("zero-section catalog vacuously unlocked the tests")
	}
	if TestUnlocked(progress.New(), empty) {
		t.Fatal("TestUnlocked disagreed with AllPracticeComplete")
	}
}
