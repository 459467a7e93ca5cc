// llm.go wraps the Ollama chat API in explicit conversation sessions: one
// JSON-mode session for intent extraction and one plain-language session
// for schedule summaries. Sessions are passed to the assistant explicitly —
// no ambient model handles, no global chat history.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/ollama/ollama/api"
)

// intentSystemPrompt makes the model a pure JSON intent engine. The
// translation rules cover the Hindi/Hinglish time words the assistant's
// users actually speak.
const intentSystemPrompt = `You are the intent engine for a voice assistant named PulseVox.
The user may speak in English, Hindi, or Hinglish. Classify each command and
respond with a single JSON object. Do not output anything other than JSON.

CRITICAL RULE: translate common Hindi/Hinglish time and date words into
their English equivalents before filling in fields:
- "kal" means "tomorrow" for future tasks.
- "parson" means "the day after tomorrow".
- "shaam ko" means "in the evening".
- "subah" means "in the morning".
- "kal shaam ko" means "tomorrow evening".

The JSON object always has an "intent" field, one of: "add_task",
"remove_task", "update_task", "query_schedule", "query_specific_time",
"summarize_schedule".

For "add_task", include "tasks": a list of objects with "description",
"category" (one of 'To-do', 'Appointment', 'Call', 'Reminder', 'Shopping'),
"date" (YYYY-MM-DD), "start_time" and "end_time" (24-hour HH:MM).
For "remove_task", include "task_details" with any of "description",
"date", "start_time".
For "update_task", include "find_details" (same shape as "task_details")
and "update_details" with only the fields to change.
For "query_schedule" and "summarize_schedule", include "date_query".
For "query_specific_time", include "date_query" and "time_query" (HH:MM).`

const summarizerSystemPrompt = `You are a helpful assistant. You answer user requests in natural,
conversational language. You do NOT output JSON.`

// ChatSession is one ongoing conversation with an Ollama model. History
// accumulates across turns so follow-ups like "move it to 7" resolve
// against earlier commands.
type ChatSession struct {
	client   *api.Client
	model    string
	jsonMode bool
	history  []api.Message
}

// NewChatSession starts a conversation with the given model and system
// prompt. jsonMode constrains the model to emit valid JSON.
func NewChatSession(client *api.Client, model, system string, jsonMode bool) *ChatSession {
	return &ChatSession{
		client:   client,
		model:    model,
		jsonMode: jsonMode,
		history:  []api.Message{{Role: "system", Content: system}},
	}
}

// Send appends one user turn, requests a completion, records the reply in
// the session history, and returns the reply text.
func (cs *ChatSession) Send(ctx context.Context, text string) (string, error) {
	cs.history = append(cs.history, api.Message{Role: "user", Content: text})

	req := &api.ChatRequest{
		Model:    cs.model,
		Messages: cs.history,
		Stream:   new(bool), // single response, no streaming
	}
	if cs.jsonMode {
		req.Format = []byte(`"json"`)
	}

	var reply strings.Builder
	err := cs.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		reply.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		// Drop the unanswered turn so a transient failure doesn't skew
		// the next exchange.
		cs.history = cs.history[:len(cs.history)-1]
		return "", fmt.Errorf("ollama chat: %w", err)
	}
	cs.history = append(cs.history, api.Message{Role: "assistant", Content: reply.String()})
	return reply.String(), nil
}

// LLM is what the assistant needs from the language-model boundary. Tests
// substitute a scripted fake.
type LLM interface {
	// ParseCommand turns one natural-language command into raw intent JSON.
	ParseCommand(ctx context.Context, command string) (string, error)
	// Summarize turns a deterministic task list into conversational prose.
	Summarize(ctx context.Context, prompt string) (string, error)
}

// OllamaLLM implements LLM with two Ollama chat sessions.
type OllamaLLM struct {
	intents    *ChatSession
	summarizer *ChatSession
}

// NewOllamaLLM connects to the Ollama host from the environment
// (OLLAMA_HOST, default localhost) and prepares both sessions.
func NewOllamaLLM(cfg *Config) (*OllamaLLM, error) {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return nil, fmt.Errorf("ollama client: %w", err)
	}
	return &OllamaLLM{
		intents:    NewChatSession(client, cfg.IntentModel, intentSystemPrompt, true),
		summarizer: NewChatSession(client, cfg.SummaryModel, summarizerSystemPrompt, false),
	}, nil
}

func (o *OllamaLLM) ParseCommand(ctx context.Context, command string) (string, error) {
	return o.intents.Send(ctx, command)
}

func (o *OllamaLLM) Summarize(ctx context.Context, prompt string) (string, error) {
	return o.summarizer.Send(ctx, prompt)
}
