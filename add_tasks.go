// add_tasks.go defines the add_tasks tool types: batch insertion with
// conflict checking.
package main

// AddTasksArgs is the input for the add_tasks tool.
type AddTasksArgs struct {
	// Tasks to add. Each needs a description; date and HH:MM times are
	// required for conflict checking, optional otherwise.
	Tasks []Task `json:"tasks" jsonschema:"Tasks to add to the schedule"`
}

// AddTasksOutput reports the outcome. A conflict rejects the whole batch
// and Added stays 0.
type AddTasksOutput struct {
	Message string `json:"message"`
	Added   int    `json:"added"`
}
