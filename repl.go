// repl.go is the interactive command-line surface: read a command, run it
// through the assistant, print and speak the reply, repeat.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// exit phrases recognized verbatim anywhere in a command, same as the
// voice UI always did.
var exitPhrases = []string{"exit program", "stop listening"}

// REPL is the blocking read-eval loop.
type REPL struct {
	assistant *Assistant
	tts       TTSProvider
	player    string // playback command; empty means print-only
	lang      string
	in        io.Reader
	out       io.Writer
}

func NewREPL(assistant *Assistant, tts TTSProvider, cfg *Config) *REPL {
	return &REPL{
		assistant: assistant,
		tts:       tts,
		player:    cfg.TTS.Player,
		lang:      cfg.Language,
		in:        os.Stdin,
		out:       os.Stdout,
	}
}

// Run blocks until the user asks to stop or input ends. One failed command
// never ends the session.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, "Welcome to PulseVox — your command-line planning assistant.")
	fmt.Fprintln(r.out, `Type a command ("add a dentist appointment tomorrow at 5pm"), or "exit program" to quit.`)

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, "\n> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		command := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if command == "" {
			continue
		}
		if isExitCommand(command) {
			fmt.Fprintln(r.out, "PulseVox signing off. Goodbye!")
			r.speak(ctx, "Goodbye!")
			return nil
		}

		response, _ := r.assistant.HandleCommand(ctx, command)
		fmt.Fprintln(r.out, response)
		r.speak(ctx, response)
	}
}

func isExitCommand(command string) bool {
	for _, phrase := range exitPhrases {
		if strings.Contains(command, phrase) {
			return true
		}
	}
	return false
}

// speak synthesizes the response and pipes it to the configured playback
// command. Any failure is logged and swallowed — audio is best-effort, the
// printed text is the reply of record.
func (r *REPL) speak(ctx context.Context, text string) {
	if r.player == "" {
		return
	}
	audio, err := r.tts.Synthesize(ctx, text, r.lang)
	if err != nil {
		logger.Warn().Err(err).Str("provider", r.tts.Name()).Msg("text-to-speech failed")
		return
	}
	defer audio.Close()

	cmd := exec.CommandContext(ctx, r.player, "-")
	cmd.Stdin = audio
	if err := cmd.Run(); err != nil {
		logger.Warn().Err(err).Str("player", r.player).Msg("audio playback failed")
	}
}
