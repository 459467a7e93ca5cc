// check_schedule.go defines the read-only query tool types: the day view,
// the specific-instant check, and the LLM-phrased day summary.
package main

// CheckScheduleArgs is the input for the check_schedule tool.
type CheckScheduleArgs struct {
	Date string `json:"date" jsonschema:"Day to query, YYYY-MM-DD"`
}

// CheckScheduleOutput carries the spoken-English answer plus the raw tasks
// for clients that render their own view.
type CheckScheduleOutput struct {
	Message string `json:"message"`
	Tasks   []Task `json:"tasks,omitempty"`
}

// CheckTimeArgs is the input for the check_time tool.
type CheckTimeArgs struct {
	Date string `json:"date" jsonschema:"Day to query, YYYY-MM-DD"`
	Time string `json:"time" jsonschema:"Instant to query, 24-hour HH:MM"`
}

// CheckTimeOutput reports the occupying task or that the slot is free.
type CheckTimeOutput struct {
	Message string `json:"message"`
}

// SummarizeDayArgs is the input for the summarize_day tool.
type SummarizeDayArgs struct {
	Date string `json:"date" jsonschema:"Day to summarize, YYYY-MM-DD"`
}

// SummarizeDayOutput is the natural-language summary.
type SummarizeDayOutput struct {
	Summary string `json:"summary"`
}
