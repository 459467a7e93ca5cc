// match.go resolves partial natural-language references ("remove my 6pm
// call") to a specific stored task via additive best-match scoring.
package main

import (
	"strings"
	"time"
)

// MatchCriteria is the partial description of a task the user referred to.
// All fields are optional; empty fields contribute nothing to the score.
type MatchCriteria struct {
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
	StartTime   string `json:"start_time,omitempty"`
}

// MatchWeights are the named scoring weights. With the defaults, a
// description hit is effectively mandatory: no combination of the other
// signals reaches the acceptance threshold on its own.
type MatchWeights struct {
	Description int // criteria is a case-insensitive substring of the stored description
	Date        int // exact date equality
	TimeExact   int // exact HH:MM equality
	TimeNear    int // start times within NearWindow of each other
}

// Matcher scores stored tasks against partial criteria. The zero value is
// not useful; construct with NewMatcher and override fields to tune policy.
type Matcher struct {
	Weights    MatchWeights
	Threshold  int           // minimum accepted score
	NearWindow time.Duration // how close counts as "near" for TimeNear
}

// NewMatcher returns a matcher with the stock scoring policy.
func NewMatcher() *Matcher {
	return &Matcher{
		Weights: MatchWeights{
			Description: 10,
			Date:        5,
			TimeExact:   3,
			TimeNear:    2,
		},
		Threshold:  10,
		NearWindow: 30 * time.Minute,
	}
}

// Score computes the additive match score of one task against the criteria.
// Unparseable times contribute nothing; nothing here ever errors.
func (m *Matcher) Score(criteria MatchCriteria, t Task) int {
	score := 0
	if criteria.Description != "" &&
		strings.Contains(strings.ToLower(t.Description), strings.ToLower(criteria.Description)) {
		score += m.Weights.Description
	}
	if criteria.Date != "" && criteria.Date == t.Date {
		score += m.Weights.Date
	}
	if criteria.StartTime != "" && t.StartTime != "" {
		if criteria.StartTime == t.StartTime {
			score += m.Weights.TimeExact
		} else if want, err := parseClock(criteria.StartTime); err == nil {
			if have, err := parseClock(t.StartTime); err == nil {
				diff := want.Sub(have)
				if diff < 0 {
					diff = -diff
				}
				if diff <= m.NearWindow {
					score += m.Weights.TimeNear
				}
			}
		}
	}
	return score
}

// BestMatch returns the index of the highest-scoring task and its score, or
// (-1, best) when no task clears the threshold. Ties keep the first-seen,
// i.e. earliest-inserted, task.
func (m *Matcher) BestMatch(criteria MatchCriteria, tasks []Task) (int, int) {
	bestIdx, bestScore := -1, 0
	for i, t := range tasks {
		if score := m.Score(criteria, t); score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	if bestScore < m.Threshold {
		return -1, bestScore
	}
	return bestIdx, bestScore
}
