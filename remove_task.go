// remove_task.go defines the remove_task tool types: fuzzy locate-and-delete.
package main

// RemoveTaskArgs is the input for the remove_task tool. All fields are
// optional, but a description fragment is needed in practice — nothing else
// reaches the match threshold on its own.
type RemoveTaskArgs struct {
	Description string `json:"description,omitempty" jsonschema:"Fragment of the task description"`
	Date        string `json:"date,omitempty"        jsonschema:"Task date, YYYY-MM-DD"`
	StartTime   string `json:"start_time,omitempty"  jsonschema:"Approximate start time, 24-hour HH:MM"`
}

// RemoveTaskOutput reports what happened.
type RemoveTaskOutput struct {
	Message string `json:"message"`
	Removed bool   `json:"removed"`
}
