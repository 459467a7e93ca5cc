// model_info.go lists the models available on the local Ollama instance so
// the user can pick one for the intent and summarizer sessions.
package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ollama/ollama/api"
)

// ModelInfo describes a single Ollama model's capabilities.
type ModelInfo struct {
	Name              string `json:"name"`
	Size              int64  `json:"size"`               // size in bytes
	ParameterSize     string `json:"parameter_size"`     // e.g. "14B", "7B"
	QuantizationLevel string `json:"quantization_level"` // e.g. "Q4_K_M"
	Family            string `json:"family"`             // e.g. "qwen2"
}

// listModels fetches the installed models from Ollama.
func listModels(ctx context.Context) ([]ModelInfo, error) {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return nil, fmt.Errorf("ollama client: %w", err)
	}
	resp, err := client.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ollama models: %w", err)
	}
	models := make([]ModelInfo, 0, len(resp.Models))
	for _, m := range resp.Models {
		models = append(models, ModelInfo{
			Name:              m.Name,
			Size:              m.Size,
			ParameterSize:     m.Details.ParameterSize,
			QuantizationLevel: m.Details.QuantizationLevel,
			Family:            m.Details.Family,
		})
	}
	return models, nil
}

// printModels renders the model table for the `pulsevox models` command.
func printModels(w io.Writer, models []ModelInfo) {
	if len(models) == 0 {
		fmt.Fprintln(w, "No models installed. Pull one with `ollama pull <name>` first.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tFAMILY\tPARAMS\tQUANT\tSIZE")
	for _, m := range models {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f GB\n",
			m.Name, m.Family, m.ParameterSize, m.QuantizationLevel,
			float64(m.Size)/(1<<30))
	}
	tw.Flush()
}
