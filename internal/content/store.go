// Package content is the read-only catalog for one math unit: section
// metadata, lessons, practice question sets, and the fixed tests. It is
// loaded once at startup and never mutated.
package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
)

//go:embed data
var embeddedUnit embed.FS

type Store struct {
	meta      Metadata
	lessons   map[int]Lesson
	practice  map[int]PracticeSet
	tests     map[int]Test
	sectionBy map[int]SectionInfo
}

// Load returns the bundled default unit.
func Load() (*Store, error) {
	sub, err := fs.Sub(embeddedUnit, "data")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// LoadDir loads a unit from a directory on disk, for content overrides.
func LoadDir(dir string) (*Store, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS loads and validates a unit catalog from fsys. Every file is
// checked against its JSON Schema first; any failure aborts the load.
func LoadFS(fsys fs.FS) (*Store, error) {
	s := &Store{
		lessons:   map[int]Lesson{},
		practice:  map[int]PracticeSet{},
		tests:     map[int]Test{},
		sectionBy: map[int]SectionInfo{},
	}

	if err := readValidated(fsys, "metadata.json", metadataSchema, &s.meta); err != nil {
		return nil, err
	}
	sort.Slice(s.meta.Sections, func(i, j int) bool {
		return s.meta.Sections[i].SectionID < s.meta.Sections[j].SectionID
	})
	for _, sec := range s.meta.Sections {
		if _, dup := s.sectionBy[sec.SectionID]; dup {
			return nil, fmt.Errorf("metadata.json: duplicate section_id %d", sec.SectionID)
		}
		s.sectionBy[sec.SectionID] = sec
	}

	var lessonsFile struct {
		Sections []Lesson `json:"sections"`
	}
	if err := readValidated(fsys, "lesson_plan.json", lessonSchema, &lessonsFile); err != nil {
		return nil, err
	}
	for _, l := range lessonsFile.Sections {
		s.lessons[l.SectionID] = l
	}

	var practiceFile struct {
		Sections []PracticeSet `json:"sections"`
	}
	if err := readValidated(fsys, "practice_questions.json", practiceSchema, &practiceFile); err != nil {
		return nil, err
	}
	for _, ps := range practiceFile.Sections {
		s.practice[ps.SectionID] = ps
	}

	names, err := fs.Glob(fsys, "test_*.json")
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		var t Test
		if err := readValidated(fsys, name, testSchema, &t); err != nil {
			return nil, err
		}
		if err := checkTest(name, t); err != nil {
			return nil, err
		}
		s.tests[t.TestInfo.TestNumber] = t
	}

	return s, nil
}

func readValidated(fsys fs.FS, name string, schema map[string]any, dst any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := validateJSON(name, schema, raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// checkTest enforces the structural invariants the schema alone can't:
// question count matches test_info, and the printed answer key agrees
// with the per-question correct answers.
func checkTest(name string, t Test) error {
	n := t.TestInfo.TotalQuestions
	if len(t.Questions) != n {
		return fmt.Errorf("%s: %d questions, test_info says %d", name, len(t.Questions), n)
	}
	if len(t.AnswerKeySummary.Answers) != n {
		return fmt.Errorf("%s: answer key has %d entries, want %d", name, len(t.AnswerKeySummary.Answers), n)
	}
	for i, q := range t.Questions {
		if q.QuestionNumber != i+1 {
			return fmt.Errorf("%s: question %d numbered %d", name, i+1, q.QuestionNumber)
		}
		if key := t.AnswerKeySummary.Answers[i]; key != q.CorrectAnswer {
			return fmt.Errorf("%s: question %d answer key %q disagrees with correct_answer %q",
				name, q.QuestionNumber, key, q.CorrectAnswer)
		}
	}
	return nil
}

func (s *Store) Meta() Metadata { return s.meta }

// Sections returns the unit's section descriptors in section-id order.
func (s *Store) Sections() []SectionInfo { return s.meta.Sections }

func (s *Store) Section(id int) (SectionInfo, bool) {
	sec, ok := s.sectionBy[id]
	return sec, ok
}

func (s *Store) Lesson(id int) (Lesson, bool) {
	l, ok := s.lessons[id]
	return l, ok
}

// Questions returns the practice questions for a section, in catalog order.
func (s *Store) Questions(id int) ([]Question, bool) {
	ps, ok := s.practice[id]
	if !ok {
		return nil, false
	}
	return ps.Questions, true
}

// QuestionCount is 0 for unknown sections; gating treats that as
// never-perfect rather than an error.
func (s *Store) QuestionCount(id int) int {
	ps, ok := s.practice[id]
	if !ok {
		return 0
	}
	return len(ps.Questions)
}

func (s *Store) Test(id int) (Test, bool) {
	t, ok := s.tests[id]
	return t, ok
}

func (s *Store) TestIDs() []int {
	ids := make([]int, 0, len(s.tests))
	for id := range s.tests {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// ScoreMessage looks up the score-guide message for a score by parsing
// the band keys ("0-8", "9-11", ...) rather than hard-coding thresholds.
func (s *Store) ScoreMessage(testID, score int) (string, bool) {
	t, ok := s.tests[testID]
	if !ok {
		return "", false
	}
	for band, msg := range t.AnswerKeySummary.ScoreGuide {
		lo, hi, err := parseBand(band)
		if err != nil {
			continue
		}
		if score >= lo && score <= hi {
			return msg, true
		}
	}
	return "", false
}

func parseBand(band string) (lo, hi int, err error) {
	parts := strings.SplitN(band, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad band %q", band)
	}
	lo, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	hi, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}
