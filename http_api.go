// http_api.go serves the web UI: the live task list, a natural-language
// command endpoint, and an audio command endpoint that transcribes first.
package main

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

// APIServer exposes the assistant over HTTP.
type APIServer struct {
	assistant *Assistant
	store     *TaskStore
	stt       STTProvider
}

func NewAPIServer(assistant *Assistant, store *TaskStore, stt STTProvider) *APIServer {
	return &APIServer{assistant: assistant, store: store, stt: stt}
}

// Router builds the route table.
func (s *APIServer) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(requestLogging)
	router.HandleFunc("/health", s.health).Methods(http.MethodGet)
	router.HandleFunc("/tasks", s.getTasks).Methods(http.MethodGet)
	router.HandleFunc("/tasks/{taskID}", s.getTaskByID).Methods(http.MethodGet)
	router.HandleFunc("/command", s.postCommand).Methods(http.MethodPost)
	router.HandleFunc("/command/audio", s.postAudioCommand).Methods(http.MethodPost)
	return router
}

// Serve blocks on the listener.
func (s *APIServer) Serve(addr string) error {
	logger.Info().Str("addr", addr).Msg("http api listening")
	server := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return server.ListenAndServe()
}

func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *APIServer) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "tasks": s.store.Count()})
}

// getTasks handles GET /tasks: the current schedule, insertion order.
func (s *APIServer) getTasks(w http.ResponseWriter, r *http.Request) {
	tasks := s.store.Tasks()
	if tasks == nil {
		tasks = []Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

// getTaskByID handles GET /tasks/{taskID}.
func (s *APIServer) getTaskByID(w http.ResponseWriter, r *http.Request) {
	task, ok := s.store.Get(mux.Vars(r)["taskID"])
	if !ok {
		http.Error(w, "Task not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// CommandRequest is the POST /command payload.
type CommandRequest struct {
	Command string `json:"command"`
}

// CommandResponse carries the spoken reply plus the raw intent JSON so the
// UI can show the NLP output next to it.
type CommandResponse struct {
	Response string `json:"response"`
	Intent   string `json:"intent,omitempty"`
}

// postCommand handles POST /command: one typed natural-language command.
func (s *APIServer) postCommand(w http.ResponseWriter, r *http.Request) {
	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Command == "" {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	response, raw := s.assistant.HandleCommand(r.Context(), req.Command)
	writeJSON(w, http.StatusOK, CommandResponse{Response: response, Intent: raw})
}

// postAudioCommand handles POST /command/audio: a recorded command as a
// multipart upload. The audio is transcribed, then handled like typed
// input. A transcript the recognizer couldn't produce is a 422, not a 500:
// the service is fine, the audio wasn't usable.
func (s *APIServer) postAudioCommand(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("audio")
	if err != nil {
		http.Error(w, "Missing audio upload", http.StatusBadRequest)
		return
	}
	defer file.Close()

	format := "webm"
	if ext := strings.TrimPrefix(filepath.Ext(header.Filename), "."); ext != "" {
		format = ext
	}
	transcript, err := s.stt.Transcribe(r.Context(), file, format)
	if err != nil {
		logger.Warn().Err(err).Str("provider", s.stt.Name()).Msg("transcription failed")
		http.Error(w, "Could not transcribe audio", http.StatusUnprocessableEntity)
		return
	}
	if transcript == "" {
		http.Error(w, "Could not understand the audio", http.StatusUnprocessableEntity)
		return
	}
	response, raw := s.assistant.HandleCommand(r.Context(), transcript)
	writeJSON(w, http.StatusOK, struct {
		Transcript string `json:"transcript"`
		CommandResponse
	}{transcript, CommandResponse{Response: response, Intent: raw}})
}
