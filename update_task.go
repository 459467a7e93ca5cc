// update_task.go defines the update_task tool types: fuzzy locate, then
// field-merge.
package main

// UpdateTaskArgs is the input for the update_task tool. Find fields locate
// the task; Updates is merged into it field-by-field, last write wins.
type UpdateTaskArgs struct {
	Description string            `json:"description,omitempty" jsonschema:"Fragment of the task description to find"`
	Date        string            `json:"date,omitempty"        jsonschema:"Date of the task to find, YYYY-MM-DD"`
	StartTime   string            `json:"start_time,omitempty"  jsonschema:"Approximate start time of the task to find"`
	Updates     map[string]string `json:"updates"               jsonschema:"Fields to change, e.g. start_time, end_time, date, description"`
}

// UpdateTaskOutput reports what happened. The updated task is not re-checked
// for conflicts with the rest of the schedule.
type UpdateTaskOutput struct {
	Message string `json:"message"`
	Updated bool   `json:"updated"`
}
