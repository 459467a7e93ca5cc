// handlers.go contains the mutation handlers behind the add, remove, and
// update intents. Each locates its target, applies the change through the
// store, and reports the outcome as a spoken-English sentence — outcome
// strings are the contract at the command boundary, not error values.
package main

import "fmt"

// addTasks appends a batch of new tasks after conflict-checking each one.
// Later tasks in the batch are checked against the store plus the tasks
// already accepted earlier in the same batch, so a batch cannot
// double-book itself. The first conflict rejects the whole command and
// names the task it collided with.
func addTasks(store *TaskStore, newTasks []Task) string {
	if len(newTasks) == 0 {
		return "I understood you wanted to add a task, but couldn't extract the details."
	}
	existing := store.Tasks()
	accepted := make([]Task, 0, len(newTasks))
	for _, t := range newTasks {
		if conflict := findConflict(t, append(existing, accepted...)); conflict != nil {
			return fmt.Sprintf("Sorry, I can't add '%s', it conflicts with '%s'.",
				t.Label(), conflict.Label())
		}
		accepted = append(accepted, t)
	}
	if err := store.Add(accepted); err != nil {
		logger.Error().Err(err).Msg("failed to save new tasks")
		return "Sorry, I couldn't save your updated task list."
	}
	labels := make([]string, 0, len(accepted))
	for _, t := range accepted {
		labels = append(labels, "'"+t.Label()+"'")
	}
	return fmt.Sprintf("Okay, adding %s to your list.", joinNaturally(labels))
}

// removeTask deletes the stored task best matching the criteria. A miss
// leaves the store untouched.
func removeTask(store *TaskStore, m *Matcher, criteria MatchCriteria) string {
	tasks := store.Tasks()
	idx, _ := m.BestMatch(criteria, tasks)
	if idx < 0 {
		return "Sorry, I couldn't find a task matching that description to remove."
	}
	removed, ok, err := store.RemoveByID(tasks[idx].ID)
	if err != nil {
		logger.Error().Err(err).Msg("failed to save after removal")
		return "Sorry, I couldn't save your updated task list."
	}
	if !ok {
		return "Sorry, I couldn't find a task matching that description to remove."
	}
	return fmt.Sprintf("Okay, I've removed '%s' from your schedule.", removed.Label())
}

// updateTask merges the given field updates into the stored task best
// matching the find criteria, last-write-wins per field.
//
// The updated task is NOT re-checked for conflicts against the rest of the
// store, so an update can silently double-book a slot. Known gap, kept
// until the stakeholders decide otherwise.
func updateTask(store *TaskStore, m *Matcher, find MatchCriteria, updates map[string]string) string {
	if len(updates) == 0 {
		return "I understood you wanted to change a task, but couldn't tell what to change."
	}
	tasks := store.Tasks()
	idx, _ := m.BestMatch(find, tasks)
	if idx < 0 {
		return "Sorry, I couldn't find a task matching that description to update."
	}
	updated, ok, err := store.Apply(tasks[idx].ID, updates)
	if err != nil {
		logger.Error().Err(err).Msg("failed to save after update")
		return "Sorry, I couldn't save your updated task list."
	}
	if !ok {
		return "Sorry, I couldn't find a task matching that description to update."
	}
	return fmt.Sprintf("Okay, I've updated '%s'.", updated.Label())
}
