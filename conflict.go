// conflict.go implements time-overlap detection for newly added tasks.
package main

import "time"

// findConflict reports the first existing task whose time range overlaps the
// candidate's, or nil when there is none.
//
// The check fails open: a candidate missing its date or either time, or
// carrying a time that doesn't parse as HH:MM, is declared conflict-free.
// Loosely specified tasks are never blocked, at the cost of missing some
// real conflicts. Existing tasks with missing or malformed times are skipped
// the same way.
//
// Intervals are half-open [start, end), so a task ending at 18:30 does not
// conflict with one starting at 18:30.
func findConflict(candidate Task, existing []Task) *Task {
	if candidate.Date == "" || candidate.StartTime == "" || candidate.EndTime == "" {
		return nil
	}
	cs, err := parseClock(candidate.StartTime)
	if err != nil {
		return nil
	}
	ce, err := parseClock(candidate.EndTime)
	if err != nil {
		return nil
	}
	for i := range existing {
		t := &existing[i]
		if t.Date != candidate.Date || t.StartTime == "" || t.EndTime == "" {
			continue
		}
		es, err := parseClock(t.StartTime)
		if err != nil {
			continue
		}
		ee, err := parseClock(t.EndTime)
		if err != nil {
			continue
		}
		if overlaps(cs, ce, es, ee) {
			return t
		}
	}
	return nil
}

// overlaps tests two half-open intervals for intersection.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
