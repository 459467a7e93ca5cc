// task.go defines the persisted task representation and the clock-string
// helpers the conflict and matching logic is built on.
package main

import (
	"encoding/json"
	"fmt"
	"time"
)

// Task is a single schedule entry. It is the only record PulseVox persists.
//
// Dates are plain "YYYY-MM-DD" strings and times are 24-hour "HH:MM"
// strings, exactly as the intent engine emits them. Both time fields are
// optional; anything that reasons about overlap skips tasks whose times are
// missing or unparseable rather than erroring.
type Task struct {
	ID          string `json:"id,omitempty"`
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	Category    string `json:"category,omitempty"`
	Timestamp   string `json:"timestamp,omitempty"` // RFC 3339 creation time, system-set
	Status      string `json:"status,omitempty"`    // always "pending" today
}

// taskAliases are the alternate description field names the intent engine
// (and older saved files) have used. Resolution happens once here, at the
// ingestion boundary, so every consumer sees a single canonical field.
var taskAliases = []string{"task_description", "task", "title"}

// UnmarshalJSON accepts any of the historical description field names and
// folds them into Description. The canonical field wins; otherwise the
// first populated alias in taskAliases order does.
func (t *Task) UnmarshalJSON(data []byte) error {
	type alias Task
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*t = Task(a)
	if t.Description != "" {
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, key := range taskAliases {
		v, ok := raw[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err == nil && s != "" {
			t.Description = s
			return nil
		}
	}
	return nil
}

// Label returns the display description, with a fallback so a task that
// somehow lost its description still renders as something.
func (t *Task) Label() string {
	if t.Description == "" {
		return "an unnamed task"
	}
	return t.Description
}

const clockLayout = "15:04"

// parseClock parses an "HH:MM" 24-hour time string.
func parseClock(s string) (time.Time, error) {
	return time.Parse(clockLayout, s)
}

// naturalClock renders an "HH:MM" string as spoken English ("17:00" ->
// "5:00 PM"). Unparseable input is returned verbatim so a malformed stored
// time still shows up in responses instead of vanishing.
func naturalClock(s string) string {
	t, err := parseClock(s)
	if err != nil {
		return s
	}
	return t.Format("3:04 PM")
}

// TimeSpan renders the task's time range for responses: "from 5:00 PM to
// 5:30 PM" for real intervals, "at 5:00 PM" for instants of a minute or
// less, and "" when either end is missing.
func (t *Task) TimeSpan() string {
	if t.StartTime == "" || t.EndTime == "" {
		return ""
	}
	start, errS := parseClock(t.StartTime)
	end, errE := parseClock(t.EndTime)
	if errS != nil || errE != nil {
		return fmt.Sprintf("at %s", t.StartTime)
	}
	if end.Sub(start) > time.Minute {
		return fmt.Sprintf("from %s to %s", start.Format("3:04 PM"), end.Format("3:04 PM"))
	}
	return fmt.Sprintf("at %s", start.Format("3:04 PM"))
}
