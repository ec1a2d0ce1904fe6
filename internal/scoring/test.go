package scoring

import (
	"github.com/google/uuid"

	"github.com/pops-math/popsmath-web/internal/content"
)

// testAttempt is the snapshot taken when phase 1 completes. The
// incorrect list is fixed here and never recomputed; the retry can only
// add points for questions on it.
type testAttempt struct {
	id        string
	testID    int
	score     int
	incorrect []int
	retried   bool
}

// TestResult is the outcome of a phase-1 submission or a retry.
type TestResult struct {
	AttemptID string `json:"attempt_id,omitempty"`
	TestID    int    `json:"test_id"`
	Phase     string `json:"phase"` // initial|retry
	Score     int    `json:"score"`
	Total     int    `json:"total"`
	Incorrect []int  `json:"incorrect"`
	Message   string `json:"message"`
	Best      int    `json:"best"`
	NewBest   bool   `json:"new_best"`
}

// SubmitTest scores a phase-1 submission. Every question must be
// answered; anything less is refused with nothing persisted. The score
// is stored only if it beats the recorded best. When any questions were
// missed, the returned AttemptID references the fixed incorrect-question
// snapshot an optional retry runs against.
func (e *Engine) SubmitTest(testID int, answers map[int]string) (TestResult, error) {
	t, ok := e.content.Test(testID)
	if !ok {
		return TestResult{}, ErrUnknownTest
	}
	for _, q := range t.Questions {
		if answers[q.QuestionNumber] == "" {
			return TestResult{}, ErrIncompleteSubmission
		}
	}

	score := 0
	incorrect := []int{}
	for _, q := range t.Questions {
		if answers[q.QuestionNumber] == q.CorrectAnswer {
			score++
		} else {
			incorrect = append(incorrect, q.QuestionNumber)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	best, saved, err := e.progress.SaveTestScoreIfBest(testID, score)
	if err != nil {
		return TestResult{}, err
	}

	res := TestResult{
		TestID:    testID,
		Phase:     "initial",
		Score:     score,
		Total:     len(t.Questions),
		Incorrect: incorrect,
		Best:      best,
		NewBest:   saved,
	}
	res.Message, _ = e.content.ScoreMessage(testID, score)

	if len(incorrect) > 0 {
		a := &testAttempt{
			id:        uuid.NewString(),
			testID:    testID,
			score:     score,
			incorrect: incorrect,
		}
		e.attempts[a.id] = a
		res.AttemptID = a.id
	}
	return res, nil
}

// SubmitRetry scores the second phase against an attempt snapshot.
// Phase-1 correct answers carry forward unconditionally; only the
// snapshotted incorrect questions can add points, each at most once.
// Every snapshotted question needs a retry selection, and an attempt
// accepts a single retry.
func (e *Engine) SubmitRetry(attemptID string, answers map[int]string) (TestResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.attempts[attemptID]
	if !ok {
		return TestResult{}, ErrAttemptNotFound
	}
	if a.retried {
		return TestResult{}, ErrAlreadyRetried
	}
	t, ok := e.content.Test(a.testID)
	if !ok {
		return TestResult{}, ErrUnknownTest
	}
	for _, num := range a.incorrect {
		if answers[num] == "" {
			return TestResult{}, ErrIncompleteSubmission
		}
	}

	byNumber := map[int]content.TestQuestion{}
	for _, q := range t.Questions {
		byNumber[q.QuestionNumber] = q
	}

	final := a.score
	stillIncorrect := []int{}
	for _, num := range a.incorrect {
		if answers[num] == byNumber[num].CorrectAnswer {
			final++
		} else {
			stillIncorrect = append(stillIncorrect, num)
		}
	}
	best, saved, err := e.progress.SaveTestScoreIfBest(a.testID, final)
	if err != nil {
		return TestResult{}, err
	}
	a.retried = true

	res := TestResult{
		AttemptID: a.id,
		TestID:    a.testID,
		Phase:     "retry",
		Score:     final,
		Total:     len(t.Questions),
		Incorrect: stillIncorrect,
		Best:      best,
		NewBest:   saved,
	}
	res.Message, _ = e.content.ScoreMessage(a.testID, final)
	return res, nil
}
