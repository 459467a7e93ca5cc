// schedule.go implements the read-only schedule queries: what's on a given
// day, what occupies a given instant, and the bullet list handed to the
// summarizer.
package main

import (
	"fmt"
	"sort"
	"strings"
)

// tasksForDate filters to tasks on the given date and sorts them ascending
// by start time. Tasks with no start time sort as midnight. Sort is stable
// so equal start times keep store order.
func tasksForDate(tasks []Task, date string) []Task {
	var out []Task
	for _, t := range tasks {
		if t.Date == date {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return startOrMidnight(out[i]) < startOrMidnight(out[j])
	})
	return out
}

func startOrMidnight(t Task) string {
	if t.StartTime == "" {
		return "00:00"
	}
	return t.StartTime
}

// joinNaturally joins items with correct spoken-English list grammar:
// "X", "X and Y", "X, Y, and Z".
func joinNaturally(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

// scheduleForDay answers "what's on DATE" as one spoken sentence.
func scheduleForDay(tasks []Task, date string) string {
	if len(tasks) == 0 {
		return "You don't have any tasks saved yet."
	}
	dayTasks := tasksForDate(tasks, date)
	if len(dayTasks) == 0 {
		return fmt.Sprintf("You have nothing scheduled for %s.", date)
	}
	descs := make([]string, 0, len(dayTasks))
	for _, t := range dayTasks {
		desc := t.Label()
		if span := t.TimeSpan(); span != "" {
			desc += " " + span
		}
		descs = append(descs, desc)
	}
	if len(dayTasks) == 1 {
		return fmt.Sprintf("For %s, you have one task: %s.", date, descs[0])
	}
	return fmt.Sprintf("For %s, you have %d tasks: %s.", date, len(dayTasks), joinNaturally(descs))
}

// taskAt answers "am I free at TIME on DATE". The first task in store order
// whose [start, end) interval contains the instant wins; overlap ambiguity
// is not surfaced.
func taskAt(tasks []Task, date, clock string) string {
	if len(tasks) == 0 {
		return "You don't have any tasks saved yet."
	}
	query, err := parseClock(clock)
	if err != nil {
		return fmt.Sprintf("Sorry, I didn't understand the time %s.", clock)
	}
	for _, t := range tasks {
		if t.Date != date || t.StartTime == "" || t.EndTime == "" {
			continue
		}
		start, err := parseClock(t.StartTime)
		if err != nil {
			continue
		}
		end, err := parseClock(t.EndTime)
		if err != nil {
			continue
		}
		if !query.Before(start) && query.Before(end) {
			return fmt.Sprintf("Yes, at that time, you have '%s' scheduled from %s to %s.",
				t.Label(), start.Format("3:04 PM"), end.Format("3:04 PM"))
		}
	}
	return fmt.Sprintf("You appear to be free at %s on %s.", query.Format("3:04 PM"), date)
}

// scheduleBullets renders the day's tasks as a deterministic bullet list
// for the summarizer prompt. Returns "" when the day is empty.
func scheduleBullets(tasks []Task, date string) string {
	dayTasks := tasksForDate(tasks, date)
	if len(dayTasks) == 0 {
		return ""
	}
	lines := make([]string, 0, len(dayTasks))
	for _, t := range dayTasks {
		when := t.StartTime
		if when == "" {
			when = "all day"
		}
		lines = append(lines, fmt.Sprintf("- %s at %s", t.Label(), when))
	}
	return strings.Join(lines, "\n")
}
