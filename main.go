// Package main is the PulseVox entry point: a voice-driven personal task
// assistant. Spoken or typed commands are parsed into structured intents by
// a local LLM, applied to a JSON-file schedule, and answered in natural
// language.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "0.2.0"

func main() {
	var (
		cfgPath string
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:   "pulsevox",
		Short: "PulseVox - voice-driven personal task assistant",
		Long: `PulseVox captures natural-language commands, extracts structured
intents with a local Ollama model, and manages a personal schedule:
conflict-checked adds, fuzzy removal and updates, and spoken answers.

Interactive session:   pulsevox
Web UI backend:        pulsevox serve
MCP tool server:       pulsevox mcp
List local models:     pulsevox models`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, assistant, err := bootstrap(cfgPath)
			if err != nil {
				return err
			}
			repl := NewREPL(assistant, NewTTSProvider(cfg.TTS), cfg)
			return repl.Run(cmd.Context())
		},
	}
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.json", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API for the web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, assistant, err := bootstrap(cfgPath)
			if err != nil {
				return err
			}
			api := NewAPIServer(assistant, assistant.store, NewSTTProvider(cfg.STT))
			return api.Serve(cfg.ListenAddr)
		},
	}

	mcpCmd := &cobra.Command{
		Use:   "mcp",
		Short: "Expose the scheduler as MCP tools on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, assistant, err := bootstrap(cfgPath)
			if err != nil {
				return err
			}
			return runMCPServer(cmd.Context(), assistant)
		},
	}

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "List models available on the local Ollama instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := listModels(cmd.Context())
			if err != nil {
				return err
			}
			printModels(os.Stdout, models)
			return nil
		},
	}

	rootCmd.AddCommand(serveCmd, mcpCmd, modelsCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("fatal")
		os.Exit(1)
	}
}

// bootstrap loads config, opens the task store, and connects the LLM
// sessions. Failure here is the one fatal path; everything after startup is
// recovered at the command boundary.
func bootstrap(cfgPath string) (*Config, *Assistant, error) {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	store := NewTaskStore(cfg.TasksFile)
	if err := store.Load(); err != nil {
		return nil, nil, err
	}
	logger.Info().Str("file", cfg.TasksFile).Int("tasks", store.Count()).Msg("schedule loaded")

	llm, err := NewOllamaLLM(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, NewAssistant(store, llm), nil
}
