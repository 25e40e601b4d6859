package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/actd/pkg/category"
)

func categoryIDs() []string {
	all := category.All()
	ids := make([]string, 0, len(all))
	for _, c := range all {
		ids = append(ids, string(c.ID))
	}
	return ids
}

func registerTools(srv *server.MCPServer, svc *Service) {
	registerLogMoodTool(srv, svc)
	registerListMoodTool(srv, svc)
	registerAddValueTool(srv, svc)
	registerUpdateValueScoreTool(srv, svc)
	registerDeleteValueTool(srv, svc)
	registerListValuesTool(srv, svc)
	registerAddActionTool(srv, svc)
	registerToggleActionTool(srv, svc)
	registerListActionsTool(srv, svc)
	registerListCategoriesTool(srv, svc)
}

func registerLogMoodTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"log_mood",
		mcp.WithDescription("Record today's mood on a 1 to 5 scale."),
		mcp.WithNumber("score",
			mcp.Required(),
			mcp.Description("Mood score, 1 (low) to 5 (great)."),
			mcp.Min(1),
			mcp.Max(5),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		score, err := request.RequireInt("score")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.LogMood(ctx, score)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListMoodTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_mood",
		mcp.WithDescription("List every mood entry, oldest first."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries, err := svc.ListMood(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"mood":  entries,
			"count": len(entries),
		})
	})
}

func registerAddValueTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_value",
		mcp.WithDescription("Add a personal value to a category. New values start at 5/10."),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Category id."),
			mcp.Enum(categoryIDs()...),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the value."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Category string `json:"category"`
			Name     string `json:"name"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddValue(ctx, args.Category, args.Name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerUpdateValueScoreTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_value_score",
		mcp.WithDescription("Rate how well you are living a value today, 0 to 10. The rating is added to the value's history."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Value identifier."),
		),
		mcp.WithNumber("score",
			mcp.Required(),
			mcp.Description("New score, 0 to 10."),
			mcp.Min(0),
			mcp.Max(10),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		score, err := request.RequireInt("score")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.UpdateValueScore(ctx, id, score)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteValueTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_value",
		mcp.WithDescription("Delete a value. Actions aligned to it are deleted too."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Value identifier to delete."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		res, err := svc.DeleteValue(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func registerListValuesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_values",
		mcp.WithDescription("List values with their scores and rating history."),
		mcp.WithString("category",
			mcp.Description("Optional category id or name to filter by."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cat := request.GetString("category", "")

		values, err := svc.ListValues(ctx, cat)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"category": cat,
			"values":   values,
			"count":    len(values),
		})
	})
}

func registerAddActionTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_action",
		mcp.WithDescription("Commit to an action that serves a value."),
		mcp.WithString("value_id",
			mcp.Required(),
			mcp.Description("Identifier of the value the action serves."),
		),
		mcp.WithString("description",
			mcp.Required(),
			mcp.Description("What you will do."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ValueID     string `json:"value_id"`
			Description string `json:"description"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddAction(ctx, args.ValueID, args.Description)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerToggleActionTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_action",
		mcp.WithDescription("Flip an action between open and completed."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Action identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.ToggleAction(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListActionsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_actions",
		mcp.WithDescription("List committed actions with the value each one serves."),
		mcp.WithString("value_id",
			mcp.Description("Optional value identifier to filter by."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		valueID := request.GetString("value_id", "")

		actions, err := svc.ListActions(ctx, valueID)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		completed := 0
		for _, a := range actions {
			if a.Completed {
				completed++
			}
		}
		return toJSONResult(map[string]any{
			"actions":   actions,
			"count":     len(actions),
			"completed": completed,
		})
	})
}

func registerListCategoriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_categories",
		mcp.WithDescription("List the life areas values are grouped by."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cats := svc.ListCategories(ctx)
		return toJSONResult(map[string]any{
			"categories": cats,
			"count":      len(cats),
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
