package http

import (
	"strconv"

	"github.com/pops-math/popsmath-web/internal/content"
	"github.com/pops-math/popsmath-web/internal/gating"
	"github.com/pops-math/popsmath-web/internal/progress"
)

// Student-safe content views: answer keys and explanations stripped, the
// same way the full catalog never leaves the server.

type publicQuestion struct {
	ID         string   `json:"id"`
	Difficulty string   `json:"difficulty"`
	Question   string   `json:"question"`
	Options    []string `json:"options"`
}

type publicTestQuestion struct {
	QuestionNumber int      `json:"question_number"`
	Difficulty     string   `json:"difficulty"`
	SectionCovered string   `json:"section_covered"`
	Question       string   `json:"question"`
	Options        []string `json:"options"`
}

type publicTest struct {
	TestInfo  content.TestInfo     `json:"test_info"`
	Questions []publicTestQuestion `json:"questions"`
}

func stripQuestions(qs []content.Question) []publicQuestion {
	out := make([]publicQuestion, len(qs))
	for i, q := range qs {
		out[i] = publicQuestion{
			ID:         q.ID,
			Difficulty: q.Difficulty,
			Question:   q.Question,
			Options:    q.Options,
		}
	}
	return out
}

func stripTest(t content.Test) publicTest {
	out := publicTest{TestInfo: t.TestInfo}
	out.Questions = make([]publicTestQuestion, len(t.Questions))
	for i, q := range t.Questions {
		out.Questions[i] = publicTestQuestion{
			QuestionNumber: q.QuestionNumber,
			Difficulty:     q.Difficulty,
			SectionCovered: q.SectionCovered,
			Question:       q.Question,
			Options:        q.Options,
		}
	}
	return out
}

// Derived progress snapshot: the raw record plus everything the home
// page needs, recomputed from the record and catalog on every call.

type sectionProgressView struct {
	SectionID       int             `json:"section_id"`
	Title           string          `json:"title"`
	Complete        bool            `json:"complete"`
	PracticeScore   *progress.Score `json:"practice_score,omitempty"`
	PracticePerfect bool            `json:"practice_perfect"`
	QuestionCount   int             `json:"question_count"`
}

type testProgressView struct {
	TestID    int  `json:"test_id"`
	BestScore *int `json:"best_score,omitempty"`
}

type progressView struct {
	Progress            progress.Progress     `json:"progress"`
	Sections            []sectionProgressView `json:"sections"`
	Tests               []testProgressView    `json:"tests"`
	AllPracticeComplete bool                  `json:"all_practice_complete"`
	TestsUnlocked       bool                  `json:"tests_unlocked"`
}

func buildProgressView(p progress.Progress, c *content.Store) progressView {
	v := progressView{
		Progress:            p,
		Sections:            []sectionProgressView{},
		Tests:               []testProgressView{},
		AllPracticeComplete: gating.AllPracticeComplete(p, c),
		TestsUnlocked:       gating.TestUnlocked(p, c),
	}
	for _, sec := range c.Sections() {
		sv := sectionProgressView{
			SectionID:       sec.SectionID,
			Title:           sec.Title,
			Complete:        gating.SectionComplete(p, sec.SectionID),
			PracticePerfect: gating.PracticePerfect(p, c, sec.SectionID),
			QuestionCount:   c.QuestionCount(sec.SectionID),
		}
		if score, ok := p.PracticeScores[strconv.Itoa(sec.SectionID)]; ok {
			s := score
			sv.PracticeScore = &s
		}
		v.Sections = append(v.Sections, sv)
	}
	for _, id := range c.TestIDs() {
		tv := testProgressView{TestID: id}
		if best, ok := p.TestScores[strconv.Itoa(id)]; ok {
			b := best
			tv.BestScore = &b
		}
		v.Tests = append(v.Tests, tv)
	}
	return v
}
