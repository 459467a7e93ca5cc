// mcp_server.go exposes the scheduler as MCP tools over stdio, so any MCP
// client can drive the same store the voice surfaces use.
package main

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// mcpHandlers adapts the assistant's handlers to MCP tool signatures.
type mcpHandlers struct {
	assistant *Assistant
}

// runMCPServer registers the tools and serves on stdio until the client
// disconnects. Logging stays on stderr; stdout belongs to the transport.
func runMCPServer(ctx context.Context, assistant *Assistant) error {
	h := &mcpHandlers{assistant: assistant}

	server := mcp.NewServer(&mcp.Implementation{Name: "pulsevox", Version: version}, nil)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_tasks",
		Description: "Add one or more tasks to the schedule. Rejects the whole batch if any task overlaps an existing one.",
	}, h.addTasks)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "remove_task",
		Description: "Remove the stored task best matching a partial description.",
	}, h.removeTask)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_task",
		Description: "Find a task by partial description and merge field changes into it.",
	}, h.updateTask)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_schedule",
		Description: "List everything scheduled on a given day.",
	}, h.checkSchedule)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_time",
		Description: "Report what occupies a specific time on a given day, if anything.",
	}, h.checkTime)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "summarize_day",
		Description: "Summarize a day's schedule in natural language.",
	}, h.summarizeDay)

	logger.Info().Msg("mcp server on stdio")
	return server.Run(ctx, &mcp.StdioTransport{})
}

func (h *mcpHandlers) addTasks(ctx context.Context, req *mcp.CallToolRequest, args AddTasksArgs) (*mcp.CallToolResult, AddTasksOutput, error) {
	before := h.assistant.store.Count()
	message := addTasks(h.assistant.store, args.Tasks)
	return nil, AddTasksOutput{
		Message: message,
		Added:   h.assistant.store.Count() - before,
	}, nil
}

func (h *mcpHandlers) removeTask(ctx context.Context, req *mcp.CallToolRequest, args RemoveTaskArgs) (*mcp.CallToolResult, RemoveTaskOutput, error) {
	before := h.assistant.store.Count()
	message := removeTask(h.assistant.store, h.assistant.matcher, MatchCriteria{
		Description: args.Description,
		Date:        args.Date,
		StartTime:   args.StartTime,
	})
	return nil, RemoveTaskOutput{
		Message: message,
		Removed: h.assistant.store.Count() < before,
	}, nil
}

func (h *mcpHandlers) updateTask(ctx context.Context, req *mcp.CallToolRequest, args UpdateTaskArgs) (*mcp.CallToolResult, UpdateTaskOutput, error) {
	find := MatchCriteria{
		Description: args.Description,
		Date:        args.Date,
		StartTime:   args.StartTime,
	}
	message := updateTask(h.assistant.store, h.assistant.matcher, find, args.Updates)
	return nil, UpdateTaskOutput{
		Message: message,
		Updated: strings.HasPrefix(message, "Okay,"),
	}, nil
}

func (h *mcpHandlers) checkSchedule(ctx context.Context, req *mcp.CallToolRequest, args CheckScheduleArgs) (*mcp.CallToolResult, CheckScheduleOutput, error) {
	tasks := h.assistant.store.Tasks()
	return nil, CheckScheduleOutput{
		Message: scheduleForDay(tasks, args.Date),
		Tasks:   tasksForDate(tasks, args.Date),
	}, nil
}

func (h *mcpHandlers) checkTime(ctx context.Context, req *mcp.CallToolRequest, args CheckTimeArgs) (*mcp.CallToolResult, CheckTimeOutput, error) {
	return nil, CheckTimeOutput{
		Message: taskAt(h.assistant.store.Tasks(), args.Date, args.Time),
	}, nil
}

func (h *mcpHandlers) summarizeDay(ctx context.Context, req *mcp.CallToolRequest, args SummarizeDayArgs) (*mcp.CallToolResult, SummarizeDayOutput, error) {
	return nil, SummarizeDayOutput{
		Summary: h.assistant.summarize(ctx, args.Date),
	}, nil
}
