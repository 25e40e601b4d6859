package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"tableflip.dev/actd/pkg/app"
	"tableflip.dev/actd/pkg/category"
	"tableflip.dev/actd/pkg/seed"
)

func newTestService() *Service {
	n := 0
	a := app.New(
		app.WithSeed(seed.Sample()),
		app.WithClock(func() time.Time { return time.Date(2024, time.March, 6, 12, 0, 0, 0, time.UTC) }),
		app.WithIDs(func() string {
			n++
			return fmt.Sprintf("mcp-%d", n)
		}),
	)
	return NewService(a)
}

func TestServiceAddValueDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	dto, err := svc.AddValue(ctx, "Career & Work", "Growth")
	if err != nil {
		t.Fatalf("AddValue failed: %v", err)
	}
	if dto.Category != "career" || dto.CategoryName != "Career & Work" {
		t.Fatalf("unexpected category %s/%s", dto.Category, dto.CategoryName)
	}
	if dto.Score != 5 || len(dto.History) != 0 {
		t.Fatalf("expected default score and empty history, got %+v", dto)
	}
	if dto.ID != "mcp-1" {
		t.Fatalf("expected generated id, got %q", dto.ID)
	}

	if _, err := svc.AddValue(ctx, "gardening", "Roses"); !errors.Is(err, app.ErrUnknownCategory) {
		t.Fatalf("expected unknown category error, got %v", err)
	}
}

func TestServiceDeleteValueCascades(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	res, err := svc.DeleteValue(ctx, "1")
	if err != nil {
		t.Fatalf("DeleteValue failed: %v", err)
	}
	if res.RemovedActions != 1 {
		t.Fatalf("expected 1 removed action, got %d", res.RemovedActions)
	}
	actions, _ := svc.ListActions(ctx, "1")
	if len(actions) != 0 {
		t.Fatalf("actions for deleted value remain: %+v", actions)
	}
	if _, err := svc.ValueByID(ctx, "1"); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.DeleteValue(ctx, "1"); !errors.Is(err, app.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestServiceToggleAction(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	dto, err := svc.AddAction(ctx, "1", "Do X")
	if err != nil {
		t.Fatalf("AddAction failed: %v", err)
	}
	if dto.ValueName != "Family Connection" {
		t.Fatalf("expected value label, got %q", dto.ValueName)
	}

	toggled, err := svc.ToggleAction(ctx, dto.ID)
	if err != nil {
		t.Fatalf("ToggleAction failed: %v", err)
	}
	if !toggled.Completed {
		t.Fatalf("expected action to be completed")
	}
	toggled, _ = svc.ToggleAction(ctx, dto.ID)
	if toggled.Completed {
		t.Fatalf("expected second toggle to reopen the action")
	}
}

func TestServiceUpdateScore(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	dto, err := svc.UpdateValueScore(ctx, "3", 8)
	if err != nil {
		t.Fatalf("UpdateValueScore failed: %v", err)
	}
	if dto.Score != 8 || len(dto.History) != 1 || dto.History[0].Label != "Mar 6, 2024" {
		t.Fatalf("unexpected value %+v", dto)
	}
	if _, err := svc.UpdateValueScore(ctx, "3", 12); err == nil {
		t.Fatalf("expected range error")
	}
}

func TestServiceListValuesFilter(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	values, err := svc.ListValues(ctx, "learning")
	if err != nil {
		t.Fatalf("ListValues failed: %v", err)
	}
	if len(values) != 2 {
		t.Fatalf("expected 2 learning values, got %d", len(values))
	}
	mood, _ := svc.ListMood(ctx)
	if len(mood) != 5 || mood[0].Label != "Mar 1" || mood[3].Face != "😊" {
		t.Fatalf("unexpected mood %+v", mood)
	}
}

func TestServiceReport(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	if _, err := svc.ToggleAction(ctx, "1"); err != nil {
		t.Fatalf("ToggleAction: %v", err)
	}
	report, err := svc.Report(ctx)
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if report.TotalActions != 4 || report.CompletedActions != 2 {
		t.Fatalf("unexpected action totals %+v", report)
	}
}

func TestServiceWithoutApp(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.ListMood(context.Background()); err == nil {
		t.Fatalf("expected error without app service")
	}
}

func TestServerToolsRoundTrip(t *testing.T) {
	ctx := context.Background()
	srv := NewServer("actd", "test", newTestService().App)

	send := func(id int, method, params string) map[string]any {
		t.Helper()
		raw := fmt.Sprintf(`{"jsonrpc":"2.0","id":%d,"method":%q,"params":%s}`, id, method, params)
		resp := srv.HandleMessage(ctx, json.RawMessage(raw))
		data, err := json.Marshal(resp)
		if err != nil {
			t.Fatalf("marshal response: %v", err)
		}
		var out map[string]any
		if err := json.Unmarshal(data, &out); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		return out
	}

	send(1, "initialize", `{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"0"}}`)

	list := send(2, "tools/list", `{}`)
	result, _ := list["result"].(map[string]any)
	tools, _ := result["tools"].([]any)
	if len(tools) != 10 {
		t.Fatalf("expected 10 tools, got %d", len(tools))
	}
	for _, raw := range tools {
		tool, _ := raw.(map[string]any)
		if tool["name"] != "add_value" {
			continue
		}
		schema, _ := tool["inputSchema"].(map[string]any)
		props, _ := schema["properties"].(map[string]any)
		cat, _ := props["category"].(map[string]any)
		enum, _ := json.Marshal(cat["enum"])
		want, _ := json.Marshal(categoryIDs())
		if string(enum) != string(want) {
			t.Fatalf("add_value category enum = %s, want %s", enum, want)
		}
	}

	del := send(3, "tools/call", `{"name":"delete_value","arguments":{"id":"1"}}`)
	body, _ := json.Marshal(del["result"])
	if !strings.Contains(string(body), `removedActions`) {
		t.Fatalf("unexpected delete result %s", body)
	}

	missing := send(4, "tools/call", `{"name":"toggle_action","arguments":{"id":"nope"}}`)
	res, _ := missing["result"].(map[string]any)
	if isErr, _ := res["isError"].(bool); !isErr {
		t.Fatalf("expected tool error for unknown id, got %v", missing)
	}
}

func TestCategoryIDsFollowRegistry(t *testing.T) {
	ids := categoryIDs()
	all := category.All()
	if len(ids) != len(all) {
		t.Fatalf("expected %d ids, got %d", len(all), len(ids))
	}
	for i, c := range all {
		if ids[i] != string(c.ID) {
			t.Fatalf("ids[%d] = %q, want %q", i, ids[i], c.ID)
		}
	}
}

func TestListenURL(t *testing.T) {
	tests := []struct {
		addr   net.Addr
		host   string
		tls    bool
		expect string
	}{
		{&net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8081}, "127.0.0.1", false, "http://127.0.0.1:8081/mcp"},
		{&net.TCPAddr{IP: net.IPv4zero, Port: 9000}, "0.0.0.0", true, "https://127.0.0.1:9000/mcp"},
		{&net.TCPAddr{IP: net.IPv4(10, 0, 0, 2), Port: 9000}, "", false, "http://10.0.0.2:9000/mcp"},
		{&net.TCPAddr{IP: net.IPv6loopback, Port: 8081}, "::1", false, "http://[::1]:8081/mcp"},
	}
	for _, tt := range tests {
		if got := ListenURL(tt.addr, tt.host, "/mcp", tt.tls); got != tt.expect {
			t.Fatalf("ListenURL(%v, %q) = %q, want %q", tt.addr, tt.host, got, tt.expect)
		}
	}
}

func TestRunnerTLS(t *testing.T) {
	if on, err := (Runner{}).TLS(); on || err != nil {
		t.Fatalf("empty pair: %v, %v", on, err)
	}
	if _, err := (Runner{HTTPServerKey: "key.pem"}).TLS(); err == nil {
		t.Fatalf("expected error for a lone key")
	}
	if on, err := (Runner{HTTPServerCert: "c", HTTPServerKey: "k"}).TLS(); !on || err != nil {
		t.Fatalf("full pair: %v, %v", on, err)
	}
}
