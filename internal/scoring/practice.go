package scoring

import (
	"strings"

	"github.com/pops-math/popsmath-web/internal/content"
	"github.com/pops-math/popsmath-web/internal/gating"
	"github.com/pops-math/popsmath-web/internal/progress"
)

// practiceSession is the transient per-section state: which questions
// have been checked and with what selection. It lives only in the
// engine's memory; the persisted summary is the {correct, total} tally.
type practiceSession struct {
	checked map[string]checkedAnswer
}

type checkedAnswer struct {
	selected string
	correct  bool
}

// QuestionResult is the revealed outcome for one checked question.
type QuestionResult struct {
	QuestionID    string `json:"question_id"`
	Selected      string `json:"selected"`
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

// PracticeState is the derived view of one section's practice, enough
// for the front-end to re-render after any practice action.
type PracticeState struct {
	SectionID       int              `json:"section_id"`
	Results         []QuestionResult `json:"results"`
	CheckedCount    int              `json:"checked_count"`
	CorrectCount    int              `json:"correct_count"`
	QuestionCount   int              `json:"question_count"`
	Perfect         bool             `json:"perfect"`
	SectionComplete bool             `json:"section_complete"`
}

// CheckAnswer records the learner's selection for a practice question
// and reveals the result. Checking is one-way per question: a second
// check of the same question is refused with no state change. The
// persisted tally counts questions checked so far, not the full set,
// and is recomputed over the catalog's question order.
func (e *Engine) CheckAnswer(sectionID int, questionID, selected string) (PracticeState, error) {
	questions, ok := e.content.Questions(sectionID)
	if !ok {
		return PracticeState{}, ErrUnknownSection
	}
	q, ok := findQuestion(questions, questionID)
	if !ok {
		return PracticeState{}, ErrUnknownQuestion
	}
	if !validSelection(q, selected) {
		return PracticeState{}, ErrInvalidSelection
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	sess := e.sessions[sectionID]
	if sess == nil {
		sess = &practiceSession{checked: map[string]checkedAnswer{}}
		e.sessions[sectionID] = sess
	}
	if _, done := sess.checked[questionID]; done {
		return PracticeState{}, ErrAlreadyChecked
	}
	sess.checked[questionID] = checkedAnswer{
		selected: selected,
		correct:  selected == q.CorrectAnswer,
	}

	correct, total := tally(questions, sess)
	p, err := e.progress.SavePracticeScore(sectionID, correct, total)
	if err != nil {
		return PracticeState{}, err
	}
	return e.practiceState(sectionID, questions, sess, p), nil
}

// ResetPractice returns the whole section to unanswered and deletes its
// stored practice entry.
func (e *Engine) ResetPractice(sectionID int) (PracticeState, error) {
	questions, ok := e.content.Questions(sectionID)
	if !ok {
		return PracticeState{}, ErrUnknownSection
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.sessions, sectionID)
	p, err := e.progress.DeletePracticeScore(sectionID)
	if err != nil {
		return PracticeState{}, err
	}
	return e.practiceState(sectionID, questions, nil, p), nil
}

// MarkSectionComplete records the explicit "I'm done with this section"
// action. Idempotent.
func (e *Engine) MarkSectionComplete(sectionID int) (PracticeState, error) {
	questions, ok := e.content.Questions(sectionID)
	if !ok {
		return PracticeState{}, ErrUnknownSection
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.progress.MarkSectionComplete(sectionID)
	if err != nil {
		return PracticeState{}, err
	}
	return e.practiceState(sectionID, questions, e.sessions[sectionID], p), nil
}

// PracticeStateFor returns the current derived practice view without
// mutating anything.
func (e *Engine) PracticeStateFor(sectionID int) (PracticeState, error) {
	questions, ok := e.content.Questions(sectionID)
	if !ok {
		return PracticeState{}, ErrUnknownSection
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.progress.Load()
	if err != nil {
		return PracticeState{}, err
	}
	return e.practiceState(sectionID, questions, e.sessions[sectionID], p), nil
}

// tally walks the catalog's question order, never the session map, so
// the counts are deterministic.
func tally(questions []content.Question, sess *practiceSession) (correct, total int) {
	for _, q := range questions {
		ans, done := sess.checked[q.ID]
		if !done {
			continue
		}
		total++
		if ans.correct {
			correct++
		}
	}
	return correct, total
}

func (e *Engine) practiceState(sectionID int, questions []content.Question, sess *practiceSession, p progress.Progress) PracticeState {
	st := PracticeState{
		SectionID:       sectionID,
		Results:         []QuestionResult{},
		QuestionCount:   len(questions),
		Perfect:         gating.PracticePerfect(p, e.content, sectionID),
		SectionComplete: gating.SectionComplete(p, sectionID),
	}
	if sess == nil {
		return st
	}
	for _, q := range questions {
		ans, done := sess.checked[q.ID]
		if !done {
			continue
		}
		st.CheckedCount++
		if ans.correct {
			st.CorrectCount++
		}
		st.Results = append(st.Results, QuestionResult{
			QuestionID:    q.ID,
			Selected:      ans.selected,
			Correct:       ans.correct,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}
	return st
}

func findQuestion(questions []content.Question, id string) (content.Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return content.Question{}, false
}

// validSelection checks the selected letter against the question's
// option prefixes ("A) ...").
func validSelection(q content.Question, selected string) bool {
	if selected == "" {
		return false
	}
	for _, opt := range q.Options {
		if strings.HasPrefix(opt, selected+")") {
			return true
		}
	}
	return false
}
