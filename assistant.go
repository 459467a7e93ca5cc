// assistant.go is the command dispatcher: one natural-language command in,
// one spoken-English response out. All surfaces (REPL, HTTP, MCP) share it.
package main

import (
	"context"
	"fmt"
)

// Assistant wires the intent engine to the schedule. It holds no hidden
// state beyond the LLM sessions handed to it at construction.
type Assistant struct {
	store   *TaskStore
	matcher *Matcher
	llm     LLM
}

func NewAssistant(store *TaskStore, llm LLM) *Assistant {
	return &Assistant{
		store:   store,
		matcher: NewMatcher(),
		llm:     llm,
	}
}

// HandleCommand runs one command end to end: intent extraction, dispatch,
// response. The second return value is the raw intent JSON for surfaces
// that display it (the web UI shows the NLP output next to the reply).
// Failures are recovered here, at the command boundary: the returned
// response is always speakable and the session survives.
func (a *Assistant) HandleCommand(ctx context.Context, command string) (response, rawIntent string) {
	raw, err := a.llm.ParseCommand(ctx, command)
	if err != nil {
		logger.Error().Err(err).Msg("intent engine request failed")
		return "Sorry, I had a problem processing that.", ""
	}
	env, err := decodeIntent(raw)
	if err != nil {
		logger.Error().Err(err).Str("raw", raw).Msg("intent engine returned invalid JSON")
		return "Sorry, I had a problem processing that.", raw
	}
	return a.Dispatch(ctx, env), raw
}

// Dispatch routes a decoded envelope to the matching handler.
func (a *Assistant) Dispatch(ctx context.Context, env *IntentEnvelope) string {
	switch env.Intent {
	case intentAddTask:
		return addTasks(a.store, env.Tasks)

	case intentRemoveTask:
		if env.TaskDetails == nil {
			return "I understood you wanted to remove a task, but couldn't tell which one."
		}
		return removeTask(a.store, a.matcher, *env.TaskDetails)

	case intentUpdateTask:
		if env.FindDetails == nil {
			return "I understood you wanted to change a task, but couldn't tell which one."
		}
		return updateTask(a.store, a.matcher, *env.FindDetails, env.UpdateDetails)

	case intentQuerySchedule:
		if env.DateQuery == "" {
			return "I understood you were asking about your schedule, but I missed which day."
		}
		return scheduleForDay(a.store.Tasks(), env.DateQuery)

	case intentQueryTime:
		if env.DateQuery == "" || env.TimeQuery == "" {
			return "I understood you were asking about a time, but I missed the date or time."
		}
		return taskAt(a.store.Tasks(), env.DateQuery, env.TimeQuery)

	case intentSummarize:
		if env.DateQuery == "" {
			return "I understood you wanted a summary, but I missed which day."
		}
		return a.summarize(ctx, env.DateQuery)

	default:
		return fmt.Sprintf("I received data but couldn't understand the intent: '%s'.", env.Intent)
	}
}

// summarize assembles the deterministic bullet list and asks the summarizer
// session to phrase it. The list assembly is the core's responsibility; the
// prose is the model's.
func (a *Assistant) summarize(ctx context.Context, date string) string {
	tasks := a.store.Tasks()
	if len(tasks) == 0 {
		return "You don't have any tasks saved yet."
	}
	bullets := scheduleBullets(tasks, date)
	if bullets == "" {
		return fmt.Sprintf("You have nothing scheduled for %s.", date)
	}
	prompt := fmt.Sprintf(
		"Here is a list of my tasks for %s:\n%s\n\nPlease write a brief, natural language summary of my day (in one or two sentences).",
		date, bullets)
	summary, err := a.llm.Summarize(ctx, prompt)
	if err != nil {
		logger.Error().Err(err).Msg("summarizer request failed")
		return "I found your tasks but had trouble summarizing them."
	}
	return summary
}
