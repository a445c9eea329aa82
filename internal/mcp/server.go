package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ldi/todo/internal/store"
)

// NewServer creates a new MCP server operating on session.
func NewServer(session *store.Session, version string) *server.MCPServer {
	s := server.NewMCPServer("Todo", version)

	// Queries
	s.AddTool(mcp.NewTool("get_state",
		mcp.WithDescription("Get the full state: tasks (newest first), both drafts, the edit mode and the theme flag."),
	), getStateHandler(session))

	s.AddTool(mcp.NewTool("list_tasks",
		mcp.WithDescription("List all tasks, newest first."),
	), listTasksHandler(session))

	// New task draft
	s.AddTool(mcp.NewTool("set_new_title",
		mcp.WithDescription("Set the title of the new task draft."),
		mcp.WithString("title", mcp.Description("Draft title"), mcp.Required()),
	), setNewTitleHandler(session))

	s.AddTool(mcp.NewTool("set_new_description",
		mcp.WithDescription("Set the description of the new task draft."),
		mcp.WithString("description", mcp.Description("Draft description"), mcp.Required()),
	), setNewDescriptionHandler(session))

	s.AddTool(mcp.NewTool("add_task",
		mcp.WithDescription("Commit the new task draft as a task at the top of the list. Fails if the draft title is blank."),
	), addTaskHandler(session))

	// Task actions
	s.AddTool(mcp.NewTool("delete_task",
		mcp.WithDescription("Delete a task. Unknown ids are ignored."),
		mcp.WithString("id", mcp.Description("Task ID"), mcp.Required()),
	), deleteTaskHandler(session))

	s.AddTool(mcp.NewTool("cycle_status",
		mcp.WithDescription("Advance a task's status: In Progress -> Past Due -> Completed -> In Progress."),
		mcp.WithString("id", mcp.Description("Task ID"), mcp.Required()),
	), cycleStatusHandler(session))

	// Editing
	s.AddTool(mcp.NewTool("open_edit",
		mcp.WithDescription("Start editing a task, loading its title and description into the edit draft."),
		mcp.WithString("id", mcp.Description("Task ID"), mcp.Required()),
	), openEditHandler(session))

	s.AddTool(mcp.NewTool("set_edit_title",
		mcp.WithDescription("Set the title of the edit draft. Ignored unless a task is being edited."),
		mcp.WithString("title", mcp.Description("Edited title"), mcp.Required()),
	), setEditTitleHandler(session))

	s.AddTool(mcp.NewTool("set_edit_description",
		mcp.WithDescription("Set the description of the edit draft. Ignored unless a task is being edited."),
		mcp.WithString("description", mcp.Description("Edited description"), mcp.Required()),
	), setEditDescriptionHandler(session))

	s.AddTool(mcp.NewTool("save_edit",
		mcp.WithDescription("Write the edit draft back to the task being edited. Fails if the title is blank."),
	), saveEditHandler(session))

	s.AddTool(mcp.NewTool("cancel_edit",
		mcp.WithDescription("Stop editing without changing the task."),
	), cancelEditHandler(session))

	// Appearance
	s.AddTool(mcp.NewTool("toggle_theme",
		mcp.WithDescription("Switch between light and dark mode."),
	), toggleThemeHandler(session))

	return s
}

// Serve starts the MCP server on stdio.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func stateResult(state store.State, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			return mcp.NewToolResultError(verr.Error()), nil
		}
		return nil, err
	}

	data, err := json.Marshal(state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}

func getStateHandler(session *store.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return stateResult(session.Snapshot(), nil)
	}
}

func listTasksHandler(session *store.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data, err := json.Marshal(map[string]interface{}{"tasks": session.Snapshot().Tasks})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(string(data)), nil
	}
}

func setNewTitleHandler(session *store.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		title := mcp.ParseString(request, "title", "")
		return stateResult(session.SetNewTitle(title), nil)
	}
}

func setNewDescriptionHandler(session *store.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		description := mcp.ParseString(request, "description", "")
		return stateResult(session.SetNewDescription(description), nil)
	}
}

func addTaskHandler(session *store.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return stateResult(session.AddTask())
	}
}

func deleteTaskHandler(session *store.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := mcp.ParseString(request, "id", "")
		return stateResult(session.DeleteTask(id), nil)
	}
}

func cycleStatusHandler(session *store.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := mcp.ParseString(request, "id", "")
		return stateResult(session.CycleStatus(id), nil)
	}
}

func openEditHandler(session *store.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := mcp.ParseString(request, "id", "")
		return stateResult(session.OpenEdit(id), nil)
	}
}

func setEditTitleHandler(session *store.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		title := mcp.ParseString(request, "title", "")
		return stateResult(session.SetEditTitle(title), nil)
	}
}

func setEditDescriptionHandler(session *store.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		description := mcp.ParseString(request, "description", "")
		return stateResult(session.SetEditDescription(description), nil)
	}
}

func saveEditHandler(session *store.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return stateResult(session.SaveEdit())
	}
}

func cancelEditHandler(session *store.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return stateResult(session.CancelEdit(), nil)
	}
}

func toggleThemeHandler(session *store.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return stateResult(session.ToggleTheme(), nil)
	}
}
