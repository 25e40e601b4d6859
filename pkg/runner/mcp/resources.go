package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerMoodResource(srv, svc)
	registerValuesResource(srv, svc)
	registerValueTemplate(srv, svc)
	registerActionsResource(srv, svc)
	registerCategoriesResource(srv, svc)
	registerReportResource(srv, svc)
}

func registerMoodResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"actd://mood",
		"Mood",
		mcp.WithResourceDescription("Mood entries in the order they were logged."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		entries, err := svc.ListMood(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"mood":  entries,
			"count": len(entries),
		})
	})
}

func registerValuesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"actd://values",
		"Values",
		mcp.WithResourceDescription("All values with scores and rating history."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		values, err := svc.ListValues(ctx, "")
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"values": values,
			"count":  len(values),
		})
	})
}

func registerValueTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"actd://values/{id}",
		"Value Details",
		mcp.WithTemplateDescription("A single value, its history and its actions."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArg(request, "id")
		if id == "" {
			return nil, fmt.Errorf("value id is required")
		}

		dto, err := svc.ValueByID(ctx, id)
		if err != nil {
			return nil, err
		}
		actions, err := svc.ListActions(ctx, id)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"value":   dto,
			"actions": actions,
		})
	})
}

func registerActionsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"actd://actions",
		"Actions",
		mcp.WithResourceDescription("Committed actions with their value labels."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		actions, err := svc.ListActions(ctx, "")
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"actions": actions,
			"count":   len(actions),
		})
	})
}

func registerCategoriesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"actd://categories",
		"Categories",
		mcp.WithResourceDescription("The fixed life areas values are grouped by."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		cats := svc.ListCategories(ctx)
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"categories": cats,
			"count":      len(cats),
		})
	})
}

func registerReportResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"actd://report",
		"Report",
		mcp.WithResourceDescription("Values per category with action progress and the mood trend."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		report, err := svc.Report(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, report)
	})
}

// templateArg reads a URI template variable, which may arrive as a string
// or a single-element list.
func templateArg(request mcp.ReadResourceRequest, name string) string {
	switch v := request.Params.Arguments[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
