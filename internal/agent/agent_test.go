package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Vinay-014/GoodFoods/internal/catalog"
	"github.com/Vinay-014/GoodFoods/internal/schema"
	"github.com/Vinay-014/GoodFoods/internal/tools"
)

// scriptedProvider replays a fixed sequence of responses and records the
// requests it saw.
type scriptedProvider struct {
	responses []scriptedResponse
	calls     []scriptedCall
}

type scriptedResponse struct {
	resp schema.LLMResponse
	err  error
}

type scriptedCall struct {
	messages schema.Messages
	tools    []map[string]any
}

func (p *scriptedProvider) Chat(_ context.Context, messages schema.Messages, tools []map[string]any, _ schema.ChatOptions) (schema.LLMResponse, error) {
	p.calls = append(p.calls, scriptedCall{messages: messages.Clone(), tools: tools})
	if len(p.responses) == 0 {
		return schema.LLMResponse{}, errors.New("script exhausted")
	}
	next := p.responses[0]
	p.responses = p.responses[1:]
	return next.resp, next.err
}

func (p *scriptedProvider) DefaultModel() string { return "scripted" }

func textReply(text string) scriptedResponse {
	return scriptedResponse{resp: schema.LLMResponse{Content: &text, FinishReason: "stop"}}
}

func toolCallReply(calls ...schema.ToolCallRequest) scriptedResponse {
	return scriptedResponse{resp: schema.LLMResponse{ToolCalls: calls, FinishReason: "tool_calls"}}
}

func failure(msg string) scriptedResponse {
	return scriptedResponse{err: errors.New(msg)}
}

func newTestAgent(responses ...scriptedResponse) (*ReservationAgent, *scriptedProvider, *catalog.Store) {
	restaurants := []*catalog.Restaurant{
		{
			ID:          "rest_001",
			Name:        "Bella Italian",
			Location:    "Downtown",
			Cuisine:     catalog.CuisineItalian,
			Capacity:    40,
			OpeningTime: "11:00",
			ClosingTime: "23:00",
			Rating:      4.2,
		},
	}
	clock := func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }
	store := catalog.NewStoreWithClock(restaurants, catalog.DefaultLimits(), clock)

	registry := tools.NewRegistry(
		tools.NewSearchTool(store),
		tools.NewAvailabilityTool(store),
		tools.NewCreateReservationTool(store),
		tools.NewCancelReservationTool(store),
		tools.NewReservationDetailsTool(store),
		tools.NewRecommendationsTool(store),
	)

	provider := &scriptedProvider{responses: responses}
	settings := schema.NewAgentSettings("scripted", 0.1, 1000)
	return New(provider, registry, store, settings), provider, store
}

func TestProcessMessageDirectReply(t *testing.T) {
	a, provider, _ := newTestAgent(textReply("Hello! How can I help?"))

	reply, toolResults := a.ProcessMessage(context.Background(), "hi")
	if reply != "Hello! How can I help?" {
		t.Errorf("reply = %q", reply)
	}
	if len(toolResults) != 0 {
		t.Errorf("tool results = %v", toolResults)
	}

	// One model call, with the tool schemas attached.
	if len(provider.calls) != 1 {
		t.Fatalf("provider called %d times", len(provider.calls))
	}
	if len(provider.calls[0].tools) != 6 {
		t.Errorf("first call carried %d tool definitions", len(provider.calls[0].tools))
	}

	// System seed, user, assistant.
	if got := a.HistoryLen(); got != 3 {
		t.Errorf("history length = %d, want 3", got)
	}
}

func TestProcessMessageToolFlow(t *testing.T) {
	a, provider, _ := newTestAgent(
		toolCallReply(schema.ToolCallRequest{
			ID:        "call_1",
			Name:      "search_restaurants",
			Arguments: map[string]any{"cuisine": "Italian"},
		}),
		textReply("I found Bella Italian downtown."),
	)

	reply, toolResults := a.ProcessMessage(context.Background(), "find italian food")
	if reply != "I found Bella Italian downtown." {
		t.Errorf("reply = %q", reply)
	}

	results, ok := toolResults["search_restaurants"].([]map[string]any)
	if !ok || len(results) != 1 || results[0]["id"] != "rest_001" {
		t.Errorf("tool results = %v", toolResults)
	}

	if len(provider.calls) != 2 {
		t.Fatalf("provider called %d times", len(provider.calls))
	}
	// The summary call must not re-offer the tools.
	if provider.calls[1].tools != nil {
		t.Error("summary call carried tool definitions")
	}

	// The summary call's history carries the assistant tool-call message and
	// the tool result.
	history := provider.calls[1].messages.Messages
	sawToolResult := false
	for _, m := range history {
		if m.Role == "tool" && m.ToolCallID == "call_1" {
			sawToolResult = true
		}
	}
	if !sawToolResult {
		t.Error("tool result missing from summary call history")
	}
}

func TestProcessMessageInitialFailure(t *testing.T) {
	a, _, _ := newTestAgent(failure("connection refused"))

	reply, toolResults := a.ProcessMessage(context.Background(), "hi")
	if reply != apologyInitial {
		t.Errorf("reply = %q", reply)
	}
	if len(toolResults) != 0 {
		t.Errorf("tool results = %v", toolResults)
	}
	// The apology still lands in history so the conversation stays coherent.
	if got := a.HistoryLen(); got != 3 {
		t.Errorf("history length = %d, want 3", got)
	}
}

func TestProcessMessageSummaryFailure(t *testing.T) {
	a, _, _ := newTestAgent(
		toolCallReply(schema.ToolCallRequest{
			ID:        "call_1",
			Name:      "search_restaurants",
			Arguments: map[string]any{},
		}),
		failure("timeout"),
	)

	reply, toolResults := a.ProcessMessage(context.Background(), "find food")
	if reply != apologyFinal {
		t.Errorf("reply = %q", reply)
	}
	// The tool ran before the summary failed; its results are still returned.
	if _, ok := toolResults["search_restaurants"]; !ok {
		t.Errorf("tool results = %v", toolResults)
	}
}

func TestProcessMessageUnknownTool(t *testing.T) {
	a, _, _ := newTestAgent(
		toolCallReply(schema.ToolCallRequest{
			ID:   "call_1",
			Name: "order_takeout",
		}),
		textReply("Sorry, I can't do that."),
	)

	_, toolResults := a.ProcessMessage(context.Background(), "order takeout")
	payload, ok := toolResults["order_takeout"].(map[string]any)
	if !ok || payload["success"] != false {
		t.Errorf("tool results = %v", toolResults)
	}
}

func TestCreateReservationResolvesNameAsID(t *testing.T) {
	args := map[string]any{
		"restaurant_id":  "Bella Italian",
		"customer_name":  "Ada Lovelace",
		"customer_phone": "555-123-4567",
		"customer_email": "ada@example.com",
		"party_size":     float64(2),
		"date":           "2026-08-15",
		"time":           "19:00",
	}
	a, _, store := newTestAgent(
		toolCallReply(schema.ToolCallRequest{ID: "call_1", Name: "create_reservation", Arguments: args}),
		textReply("Booked!"),
	)

	_, toolResults := a.ProcessMessage(context.Background(), "book bella italian")
	payload, ok := toolResults["create_reservation"].(map[string]any)
	if !ok || payload["success"] != true {
		t.Fatalf("tool results = %v", toolResults)
	}
	if store.ReservationCount() != 1 {
		t.Errorf("ReservationCount = %d", store.ReservationCount())
	}
}

func TestCreateReservationUnknownNameFails(t *testing.T) {
	args := map[string]any{
		"restaurant_id": "The Phantom Table",
		"party_size":    float64(2),
	}
	a, _, store := newTestAgent(
		toolCallReply(schema.ToolCallRequest{ID: "call_1", Name: "create_reservation", Arguments: args}),
		textReply("That restaurant doesn't exist."),
	)

	_, toolResults := a.ProcessMessage(context.Background(), "book the phantom table")
	payload, ok := toolResults["create_reservation"].(map[string]any)
	if !ok || payload["success"] != false {
		t.Fatalf("tool results = %v", toolResults)
	}
	if payload["error"] != "Restaurant 'The Phantom Table' not found" {
		t.Errorf("error = %v", payload["error"])
	}
	if store.ReservationCount() != 0 {
		t.Errorf("ReservationCount = %d", store.ReservationCount())
	}
}

func TestCreateReservationExplicitNameArgument(t *testing.T) {
	args := map[string]any{
		"restaurant_id":   "romantic_spot",
		"restaurant_name": "Bella Italian",
		"customer_name":   "Ada Lovelace",
		"customer_phone":  "555-123-4567",
		"customer_email":  "ada@example.com",
		"party_size":      float64(2),
		"date":            "2026-08-15",
		"time":            "19:00",
	}
	a, _, store := newTestAgent(
		toolCallReply(schema.ToolCallRequest{ID: "call_1", Name: "create_reservation", Arguments: args}),
		textReply("Booked!"),
	)

	_, toolResults := a.ProcessMessage(context.Background(), "book somewhere romantic")
	payload, ok := toolResults["create_reservation"].(map[string]any)
	if !ok || payload["success"] != true {
		t.Fatalf("tool results = %v", toolResults)
	}
	if store.ReservationCount() != 1 {
		t.Errorf("ReservationCount = %d", store.ReservationCount())
	}
}

func TestClearConversation(t *testing.T) {
	a, _, _ := newTestAgent(textReply("hello"))

	a.ProcessMessage(context.Background(), "hi")
	if got := a.HistoryLen(); got != 3 {
		t.Fatalf("history length = %d before clear", got)
	}

	a.ClearConversation()
	if got := a.HistoryLen(); got != 1 {
		t.Errorf("history length = %d after clear, want 1", got)
	}
}
