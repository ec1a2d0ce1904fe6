// Package progress owns the single persisted learner record: which
// sections are marked complete, the latest practice tally per section,
// and the best score per test. The JSON shape is the same record the
// original site kept in browser storage, so an export/import between the
// two stays possible.
package progress

import "sort"

// Score is one practice tally: correct answers out of questions checked
// so far. Total grows as questions are checked and only equals the full
// set size once every question has been checked.
type Score struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

type Progress struct {
	SectionsCompleted []int            `json:"sectionsCompleted"`
	PracticeScores    map[string]Score `json:"practiceScores"`
	TestScores        map[string]int   `json:"testScores"`
}

// New returns an empty record with all maps allocated.
func New() Progress {
	return Progress{
		SectionsCompleted: []int{},
		PracticeScores:    map[string]Score{},
		TestScores:        map[string]int{},
	}
}

func (p *Progress) SectionComplete(sectionID int) bool {
	for _, id := range p.SectionsCompleted {
		if id == sectionID {
			return true
		}
	}
	return false
}

// markComplete adds sectionID to the completed set. Reports whether the
// record changed.
func (p *Progress) markComplete(sectionID int) bool {
	if p.SectionComplete(sectionID) {
		return false
	}
	p.SectionsCompleted = append(p.SectionsCompleted, sectionID)
	sort.Ints(p.SectionsCompleted)
	return true
}
