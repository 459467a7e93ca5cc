// intent.go defines the structured command envelope the intent engine
// returns and the decoding that turns raw model output into one.
package main

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Intent names the LLM can emit. Anything else is surfaced to the user as
// not understood; nothing is mutated for an unknown intent.
const (
	intentAddTask       = "add_task"
	intentRemoveTask    = "remove_task"
	intentUpdateTask    = "update_task"
	intentQuerySchedule = "query_schedule"
	intentQueryTime     = "query_specific_time"
	intentSummarize     = "summarize_schedule"
)

// IntentEnvelope is the decoded form of one intent-engine response. Which
// payload fields are populated depends on the intent.
type IntentEnvelope struct {
	Intent        string            `json:"intent"`
	Tasks         []Task            `json:"tasks,omitempty"`
	DateQuery     string            `json:"date_query,omitempty"`
	TimeQuery     string            `json:"time_query,omitempty"`
	TaskDetails   *MatchCriteria    `json:"task_details,omitempty"`
	FindDetails   *MatchCriteria    `json:"find_details,omitempty"`
	UpdateDetails map[string]string `json:"update_details,omitempty"`
}

// stripFences removes a surrounding markdown code fence, with or without a
// "json" language tag. Models wrap JSON that way no matter how firmly the
// system prompt forbids it.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// decodeIntent parses raw model output into an envelope. A bare JSON array
// (the older prompt variant) is accepted as an implicit add_task batch.
// Malformed JSON fails this one command only; callers translate the error
// into an apology.
func decodeIntent(raw string) (*IntentEnvelope, error) {
	cleaned := stripFences(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("empty intent response")
	}
	if strings.HasPrefix(cleaned, "[") {
		var tasks []Task
		if err := json.Unmarshal([]byte(cleaned), &tasks); err != nil {
			return nil, fmt.Errorf("decode intent task list: %w", err)
		}
		return &IntentEnvelope{Intent: intentAddTask, Tasks: tasks}, nil
	}
	var env IntentEnvelope
	if err := json.Unmarshal([]byte(cleaned), &env); err != nil {
		return nil, fmt.Errorf("decode intent: %w", err)
	}
	return &env, nil
}
