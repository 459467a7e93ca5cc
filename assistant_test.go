package main

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeLLM is a scripted intent engine: each ParseCommand call returns the
// next queued response. Summarize echoes its prompt for inspection.
type fakeLLM struct {
	responses []string
	summary   string
	err       error

	lastSummaryPrompt string
}

func (f *fakeLLM) ParseCommand(ctx context.Context, command string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", errors.New("fakeLLM: no scripted response")
	}
	next := f.responses[0]
	f.responses = f.responses[1:]
	return next, nil
}

func (f *fakeLLM) Summarize(ctx context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastSummaryPrompt = prompt
	return f.summary, nil
}

func newTestAssistant(t *testing.T, llm LLM) *Assistant {
	t.Helper()
	return NewAssistant(newTestStore(t), llm)
}

// ---------------------------------------------------------------------------
// End-to-end command handling
// ---------------------------------------------------------------------------

func TestHandleCommandAddThenQuery(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		`{"intent": "add_task", "tasks": [{"description": "Call Mom", "date": "2025-10-28", "start_time": "17:00", "end_time": "17:30"}]}`,
		`{"intent": "query_schedule", "date_query": "2025-10-28"}`,
	}}
	a := newTestAssistant(t, llm)

	response, raw := a.HandleCommand(context.Background(), "add call mom kal shaam ko")
	if response != "Okay, adding 'Call Mom' to your list." {
		t.Fatalf("unexpected add response: %q", response)
	}
	if raw == "" {
		t.Fatal("raw intent JSON should be surfaced")
	}

	response, _ = a.HandleCommand(context.Background(), "what's on the 28th")
	if !strings.Contains(response, "you have one task: Call Mom") {
		t.Fatalf("unexpected query response: %q", response)
	}
}

func TestHandleCommandLLMFailure(t *testing.T) {
	a := newTestAssistant(t, &fakeLLM{err: errors.New("connection refused")})
	response, _ := a.HandleCommand(context.Background(), "anything")
	if response != "Sorry, I had a problem processing that." {
		t.Fatalf("unexpected response: %q", response)
	}
}

func TestHandleCommandMalformedJSON(t *testing.T) {
	a := newTestAssistant(t, &fakeLLM{responses: []string{"I am not JSON, sorry"}})
	response, raw := a.HandleCommand(context.Background(), "anything")
	if response != "Sorry, I had a problem processing that." {
		t.Fatalf("unexpected response: %q", response)
	}
	if raw == "" {
		t.Fatal("raw text should still be surfaced for the UI")
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestDispatchUnknownIntent(t *testing.T) {
	a := newTestAssistant(t, &fakeLLM{})
	got := a.Dispatch(context.Background(), &IntentEnvelope{Intent: "order_pizza"})
	if got != "I received data but couldn't understand the intent: 'order_pizza'." {
		t.Fatalf("unexpected response: %q", got)
	}
}

func TestDispatchMissingPayloads(t *testing.T) {
	a := newTestAssistant(t, &fakeLLM{})
	cases := []struct {
		env  *IntentEnvelope
		want string
	}{
		{&IntentEnvelope{Intent: intentRemoveTask}, "which one"},
		{&IntentEnvelope{Intent: intentUpdateTask}, "which one"},
		{&IntentEnvelope{Intent: intentQuerySchedule}, "missed which day"},
		{&IntentEnvelope{Intent: intentQueryTime, DateQuery: "2025-10-28"}, "missed the date or time"},
		{&IntentEnvelope{Intent: intentSummarize}, "missed which day"},
	}
	for _, tc := range cases {
		got := a.Dispatch(context.Background(), tc.env)
		if !strings.Contains(got, tc.want) {
			t.Fatalf("%s: expected %q in %q", tc.env.Intent, tc.want, got)
		}
	}
}

func TestDispatchSpecificTime(t *testing.T) {
	a := newTestAssistant(t, &fakeLLM{})
	a.store.Add([]Task{makeTask("Call Mom", "2025-10-28", "17:00", "17:30")})

	got := a.Dispatch(context.Background(), &IntentEnvelope{
		Intent:    intentQueryTime,
		DateQuery: "2025-10-28",
		TimeQuery: "17:05",
	})
	if !strings.Contains(got, "'Call Mom' scheduled from 5:00 PM to 5:30 PM") {
		t.Fatalf("unexpected response: %q", got)
	}
}

// ---------------------------------------------------------------------------
// Summarization
// ---------------------------------------------------------------------------

func TestSummarizeBuildsBulletPrompt(t *testing.T) {
	llm := &fakeLLM{summary: "A light day with one call."}
	a := newTestAssistant(t, llm)
	a.store.Add([]Task{makeTask("Call Mom", "2025-10-28", "17:00", "17:30")})

	got := a.summarize(context.Background(), "2025-10-28")
	if got != "A light day with one call." {
		t.Fatalf("unexpected summary: %q", got)
	}
	if !strings.Contains(llm.lastSummaryPrompt, "- Call Mom at 17:00") {
		t.Fatalf("prompt missing bullet list: %q", llm.lastSummaryPrompt)
	}
	if !strings.Contains(llm.lastSummaryPrompt, "2025-10-28") {
		t.Fatalf("prompt missing date: %q", llm.lastSummaryPrompt)
	}
}

func TestSummarizeEmptyDay(t *testing.T) {
	a := newTestAssistant(t, &fakeLLM{})
	a.store.Add([]Task{makeTask("Call Mom", "2025-10-27", "17:00", "17:30")})

	got := a.summarize(context.Background(), "2025-10-28")
	if got != "You have nothing scheduled for 2025-10-28." {
		t.Fatalf("unexpected response: %q", got)
	}
}

func TestSummarizeLLMFailureStillAcknowledges(t *testing.T) {
	llm := &fakeLLM{}
	a := newTestAssistant(t, llm)
	a.store.Add([]Task{makeTask("Call Mom", "2025-10-28", "17:00", "17:30")})
	llm.err = errors.New("model offline")

	got := a.summarize(context.Background(), "2025-10-28")
	if got != "I found your tasks but had trouble summarizing them." {
		t.Fatalf("unexpected response: %q", got)
	}
}
