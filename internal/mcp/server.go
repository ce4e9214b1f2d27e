// Package mcp provides an MCP (Model Context Protocol) server that exposes
// the tdo task tracker as MCP tools for AI coding assistants.
package mcp

import (
	"context"
	"fmt"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tdo-cli/tdo/internal/core"
	"github.com/tdo-cli/tdo/internal/observability"
	"github.com/tdo-cli/tdo/pkg/models"
)

// Server wraps tdo services and exposes them as MCP tools.
type Server struct {
	server      *gomcp.Server
	tracker     core.Tracker
	metricsCalc observability.MetricsCalculator
	alertEngine observability.AlertEngine
}

// NewServer creates a new MCP server with the given tdo service dependencies.
// metricsCalc and alertEngine may be nil if observability is disabled.
func NewServer(tracker core.Tracker, metricsCalc observability.MetricsCalculator, alertEngine observability.AlertEngine, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{
		tracker:     tracker,
		metricsCalc: metricsCalc,
		alertEngine: alertEngine,
	}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "tdo", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on stdio, blocking until the client disconnects
// or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type addTaskInput struct {
	Title       string `json:"title" jsonschema:"required,the task title"`
	Description string `json:"description,omitempty" jsonschema:"free-form task description"`
	Priority    string `json:"priority,omitempty" jsonschema:"task priority (low, medium, high). Defaults to medium."`
	DueDate     string `json:"due_date" jsonschema:"required,due date in DD-MM-YYYY form, e.g. 22-12-2024"`
}

type taskIDInput struct {
	TaskID uint64 `json:"task_id" jsonschema:"required,the numeric task ID"`
}

type taskOutput struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Done        bool   `json:"done"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
}

type listTasksInput struct {
	Status string `json:"status,omitempty" jsonschema:"filter tasks by status (open, done)"`
}

type listTasksOutput struct {
	Tasks []taskOutput `json:"tasks"`
	Count int          `json:"count"`
}

type changePriorityInput struct {
	TaskID   uint64 `json:"task_id" jsonschema:"required,the numeric task ID"`
	Priority string `json:"priority" jsonschema:"required,the new priority (low, medium, high)"`
}

type messageOutput struct {
	Message string `json:"message"`
}

type getMetricsInput struct {
	Since string `json:"since,omitempty" jsonschema:"time window for metrics (e.g. 7d, 30d, 24h). Defaults to 7d."`
}

type metricsOutput struct {
	TasksCreated      int            `json:"tasks_created"`
	TasksCompleted    int            `json:"tasks_completed"`
	TasksRemoved      int            `json:"tasks_removed"`
	PriorityChanges   int            `json:"priority_changes"`
	CreatedByPriority map[string]int `json:"created_by_priority"`
	EventCount        int            `json:"event_count"`
	OldestEvent       string         `json:"oldest_event,omitempty"`
	NewestEvent       string         `json:"newest_event,omitempty"`
}

type getAlertsInput struct{}

type alertOutput struct {
	ID          string `json:"id"`
	Condition   string `json:"condition"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	TriggeredAt string `json:"triggered_at"`
}

type getAlertsOutput struct {
	Alerts []alertOutput `json:"alerts"`
	Count  int           `json:"count"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "add_task",
		Description: "Add a new task. The tracker assigns the ID. Priority defaults to medium; the due date must be DD-MM-YYYY.",
	}, s.handleAddTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_task",
		Description: "Get task details by numeric ID. Returns the full task including done state, priority, and due date.",
	}, s.handleGetTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_tasks",
		Description: "List tasks with an optional status filter (open or done). Returns an array of tasks.",
	}, s.handleListTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "complete_task",
		Description: "Mark a task as done by numeric ID. Marking an already-done task again is a no-op success.",
	}, s.handleCompleteTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "remove_task",
		Description: "Remove a task by numeric ID. The ID is never reused for a later task.",
	}, s.handleRemoveTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "change_priority",
		Description: "Change a task's priority. Valid priorities: low, medium, high.",
	}, s.handleChangePriority)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_metrics",
		Description: "Get aggregated activity metrics from the event log: tasks created, completed, removed, and priority changes.",
	}, s.handleGetMetrics)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_alerts",
		Description: "Evaluate and return active alerts (overdue tasks, tasks due soon, stale tasks, too many open tasks).",
	}, s.handleGetAlerts)
}

// --- Tool handlers ---

func (s *Server) handleAddTask(_ context.Context, _ *gomcp.CallToolRequest, input addTaskInput) (*gomcp.CallToolResult, taskOutput, error) {
	if input.Title == "" {
		return errorResult("title is required"), taskOutput{}, nil
	}

	priority := models.PriorityMedium
	if input.Priority != "" {
		var err error
		priority, err = core.ValidatePriority(input.Priority)
		if err != nil {
			return errorResult(err.Error()), taskOutput{}, nil
		}
	}

	due, err := core.ParseDueDate(input.DueDate)
	if err != nil {
		return errorResult(err.Error()), taskOutput{}, nil
	}

	task, err := s.tracker.AddTask(input.Title, input.Description, priority, due)
	if err != nil {
		return errorResult(fmt.Sprintf("adding task: %s", err)), taskOutput{}, nil
	}

	return nil, taskToOutput(task), nil
}

func (s *Server) handleGetTask(_ context.Context, _ *gomcp.CallToolRequest, input taskIDInput) (*gomcp.CallToolResult, taskOutput, error) {
	if input.TaskID == 0 {
		return errorResult("task_id is required"), taskOutput{}, nil
	}

	task, err := s.tracker.GetTask(input.TaskID)
	if err != nil {
		return errorResult(fmt.Sprintf("getting task %d: %s", input.TaskID, err)), taskOutput{}, nil
	}

	return nil, taskToOutput(task), nil
}

func (s *Server) handleListTasks(_ context.Context, _ *gomcp.CallToolRequest, input listTasksInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	if input.Status != "" && input.Status != "open" && input.Status != "done" {
		return errorResult(fmt.Sprintf("invalid status %q: must be open or done", input.Status)), listTasksOutput{}, nil
	}

	tasks, err := s.tracker.ListTasks()
	if err != nil {
		return errorResult(fmt.Sprintf("listing tasks: %s", err)), listTasksOutput{}, nil
	}

	out := listTasksOutput{Tasks: []taskOutput{}}
	for _, t := range tasks {
		if input.Status == "open" && t.Done {
			continue
		}
		if input.Status == "done" && !t.Done {
			continue
		}
		out.Tasks = append(out.Tasks, taskToOutput(t))
	}
	out.Count = len(out.Tasks)

	return nil, out, nil
}

func (s *Server) handleCompleteTask(_ context.Context, _ *gomcp.CallToolRequest, input taskIDInput) (*gomcp.CallToolResult, messageOutput, error) {
	if input.TaskID == 0 {
		return errorResult("task_id is required"), messageOutput{}, nil
	}

	task, err := s.tracker.MarkDone(input.TaskID)
	if err != nil {
		return errorResult(fmt.Sprintf("marking task %d done: %s", input.TaskID, err)), messageOutput{}, nil
	}

	return nil, messageOutput{Message: fmt.Sprintf("task %d %q marked as done", task.ID, task.Title)}, nil
}

func (s *Server) handleRemoveTask(_ context.Context, _ *gomcp.CallToolRequest, input taskIDInput) (*gomcp.CallToolResult, messageOutput, error) {
	if input.TaskID == 0 {
		return errorResult("task_id is required"), messageOutput{}, nil
	}

	task, err := s.tracker.RemoveTask(input.TaskID)
	if err != nil {
		return errorResult(fmt.Sprintf("removing task %d: %s", input.TaskID, err)), messageOutput{}, nil
	}

	return nil, messageOutput{Message: fmt.Sprintf("task %d %q removed", task.ID, task.Title)}, nil
}

func (s *Server) handleChangePriority(_ context.Context, _ *gomcp.CallToolRequest, input changePriorityInput) (*gomcp.CallToolResult, taskOutput, error) {
	if input.TaskID == 0 {
		return errorResult("task_id is required"), taskOutput{}, nil
	}

	priority, err := core.ValidatePriority(input.Priority)
	if err != nil {
		return errorResult(err.Error()), taskOutput{}, nil
	}

	task, err := s.tracker.ChangePriority(input.TaskID, priority)
	if err != nil {
		return errorResult(fmt.Sprintf("changing priority of task %d: %s", input.TaskID, err)), taskOutput{}, nil
	}

	return nil, taskToOutput(task), nil
}

func (s *Server) handleGetMetrics(_ context.Context, _ *gomcp.CallToolRequest, input getMetricsInput) (*gomcp.CallToolResult, metricsOutput, error) {
	if s.metricsCalc == nil {
		return errorResult("metrics calculator not available (observability may be disabled)"), emptyMetricsOutput(), nil
	}

	sinceStr := input.Since
	if sinceStr == "" {
		sinceStr = "7d"
	}

	sinceTime, err := parseSince(sinceStr)
	if err != nil {
		return errorResult(fmt.Sprintf("parsing since duration: %s", err)), emptyMetricsOutput(), nil
	}

	metrics, err := s.metricsCalc.Calculate(sinceTime)
	if err != nil {
		return errorResult(fmt.Sprintf("calculating metrics: %s", err)), emptyMetricsOutput(), nil
	}

	out := metricsOutput{
		TasksCreated:      metrics.TasksCreated,
		TasksCompleted:    metrics.TasksCompleted,
		TasksRemoved:      metrics.TasksRemoved,
		PriorityChanges:   metrics.PriorityChanges,
		CreatedByPriority: metrics.CreatedByPriority,
		EventCount:        metrics.EventCount,
	}
	if metrics.OldestEvent != nil {
		out.OldestEvent = metrics.OldestEvent.Format(time.RFC3339)
	}
	if metrics.NewestEvent != nil {
		out.NewestEvent = metrics.NewestEvent.Format(time.RFC3339)
	}

	return nil, out, nil
}

func (s *Server) handleGetAlerts(_ context.Context, _ *gomcp.CallToolRequest, _ getAlertsInput) (*gomcp.CallToolResult, getAlertsOutput, error) {
	if s.alertEngine == nil {
		return errorResult("alert engine not available (observability may be disabled)"), getAlertsOutput{}, nil
	}

	alerts, err := s.alertEngine.Evaluate()
	if err != nil {
		return errorResult(fmt.Sprintf("evaluating alerts: %s", err)), getAlertsOutput{}, nil
	}

	out := getAlertsOutput{
		Alerts: make([]alertOutput, len(alerts)),
		Count:  len(alerts),
	}
	for i, a := range alerts {
		out.Alerts[i] = alertOutput{
			ID:          a.ID,
			Condition:   a.Condition,
			Severity:    string(a.Severity),
			Message:     a.Message,
			TriggeredAt: a.TriggeredAt.Format(time.RFC3339),
		}
	}

	return nil, out, nil
}

// --- Helpers ---

func taskToOutput(t models.Task) taskOutput {
	return taskOutput{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Done:        t.Done,
		Priority:    string(t.Priority),
		DueDate:     t.DueDate.String(),
	}
}

func emptyMetricsOutput() metricsOutput {
	return metricsOutput{CreatedByPriority: make(map[string]int)}
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}

// parseSince parses a human-friendly duration string like "7d", "30d", or
// "24h" into the corresponding time in the past.
func parseSince(s string) (time.Time, error) {
	now := time.Now().UTC()

	if len(s) < 2 {
		return time.Time{}, fmt.Errorf("invalid duration %q", s)
	}

	suffix := s[len(s)-1]
	numStr := s[:len(s)-1]
	var num int
	if _, err := fmt.Sscanf(numStr, "%d", &num); err != nil {
		return time.Time{}, fmt.Errorf("invalid duration %q: %w", s, err)
	}

	switch suffix {
	case 'd':
		return now.AddDate(0, 0, -num), nil
	case 'h':
		return now.Add(-time.Duration(num) * time.Hour), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported duration suffix %q (use d or h)", string(suffix))
	}
}
