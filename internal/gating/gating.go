// Package gating computes the derived completion state: whether a
// section is complete, whether its practice is perfect, and whether the
// tests are unlocked. Everything here is a pure function of the progress
// record and the content catalog, recomputed on every read; no completion
// flag is ever cached or stored.
package gating

import (
	"strconv"

	"github.com/pops-math/popsmath-web/internal/content"
	"github.com/pops-math/popsmath-web/internal/progress"
)

func SectionComplete(p progress.Progress, sectionID int) bool {
	return p.SectionComplete(sectionID)
}

// PracticePerfect reports whether the stored practice tally for a
// section is a full score over the section's whole question set. No
// recorded attempt, or an unknown section, is simply not perfect.
func PracticePerfect(p progress.Progress, c *content.Store, sectionID int) bool {
	n := c.QuestionCount(sectionID)
	if n == 0 {
		return false
	}
	score, ok := p.PracticeScores[strconv.Itoa(sectionID)]
	if !ok {
		return false
	}
	return score.Correct == n && score.Total == n
}

// AllPracticeComplete is the global test-unlock gate: every section the
// catalog declares must be practice-perfect. Iteration follows the
// catalog's section order, never the progress record's key set. A
// catalog with no sections keeps the tests locked rather than vacuously
// unlocking them.
func AllPracticeComplete(p progress.Progress, c *content.Store) bool {
	sections := c.Sections()
	if len(sections) == 0 {
		return false
	}
	for _, sec := range sections {
		if !PracticePerfect(p, c, sec.SectionID) {
			return false
		}
	}
	return true
}

// TestUnlocked has no condition beyond full practice mastery. The
// password screen in front of a test is a UI deterrent, not a gate.
func TestUnlocked(p progress.Progress, c *content.Store) bool {
	return AllPracticeComplete(p, c)
}
