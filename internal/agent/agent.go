// Package agent drives one turn of dialogue: user message, model call,
// optional tool dispatch, then a final natural-language reply.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"sync"

	"github.com/Vinay-014/GoodFoods/internal/catalog"
	"github.com/Vinay-014/GoodFoods/internal/schema"
	"github.com/Vinay-014/GoodFoods/internal/shared/llmutils"
	"github.com/Vinay-014/GoodFoods/internal/tools"
)

var restaurantIDPattern = regexp.MustCompile(`^rest_\d+$`)

// ReservationAgent owns one conversation. The history lives for the agent's
// lifetime and is reset only by ClearConversation. A single mutex serialises
// turns; the design is one logical session per agent instance.
type ReservationAgent struct {
	mu       sync.Mutex
	provider schema.LLMProvider
	registry *tools.Registry
	store    *catalog.Store
	settings schema.AgentSettings
	history  schema.Messages
}

// New creates a ReservationAgent with a history seeded by the system prompt.
func New(provider schema.LLMProvider, registry *tools.Registry, store *catalog.Store, settings schema.AgentSettings) *ReservationAgent {
	a := &ReservationAgent{
		provider: provider,
		registry: registry,
		store:    store,
		settings: settings,
	}
	a.history = schema.NewMessages()
	a.history.AddSystem(systemPrompt)
	return a
}

// ProcessMessage runs one conversation turn and returns the reply text plus
// the results of any tools that ran, keyed by tool name. Every path appends
// a reply to history and returns control to the caller; nothing is fatal.
func (a *ReservationAgent) ProcessMessage(ctx context.Context, userMessage string) (string, map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	slog.Info("Processing message", "content", llmutils.Truncate(userMessage, 80))

	a.history.AddUser(userMessage)

	resp, err := a.provider.Chat(ctx, a.history, a.registry.Definitions(), a.chatOptions())
	if err != nil {
		slog.Error("LLM call failed", "err", err)
		return a.reply(apologyInitial), map[string]any{}
	}

	if !resp.HasToolCalls() {
		content := ""
		if resp.Content != nil {
			content = *resp.Content
		}
		return a.reply(content), map[string]any{}
	}

	toolResults := a.dispatchToolCalls(ctx, resp)

	// Second model call, with no tool schema attached, for the summary.
	final, err := a.provider.Chat(ctx, a.history, nil, a.chatOptions())
	if err != nil || final.Content == nil {
		if err != nil {
			slog.Error("LLM summary call failed", "err", err)
		}
		return a.reply(apologyFinal), toolResults
	}

	return a.reply(*final.Content), toolResults
}

// dispatchToolCalls executes each requested tool in the order the model
// listed them and appends each result to history keyed by call id.
func (a *ReservationAgent) dispatchToolCalls(ctx context.Context, resp schema.LLMResponse) map[string]any {
	var calls []schema.ToolCall
	for _, tc := range resp.ToolCalls {
		calls = append(calls, schema.ToolCall{ID: tc.ID, Name: tc.Name, Arguments: tc.Arguments})
	}
	a.history.AddAssistant(resp.Content, calls)

	toolResults := make(map[string]any, len(resp.ToolCalls))
	for _, tc := range resp.ToolCalls {
		argsJSON, _ := json.Marshal(tc.Arguments)
		slog.Info("Tool call", "name", tc.Name, "args", llmutils.Truncate(string(argsJSON), 200))

		var result any
		args, fail := a.prepareArguments(tc.Name, tc.Arguments)
		if fail != nil {
			result = fail
		} else {
			result = a.registry.Dispatch(ctx, tc.Name, args)
		}
		toolResults[tc.Name] = result

		content, _ := json.Marshal(map[string]any{"result": result})
		a.history.AddToolResult(tc.ID, tc.Name, string(content))
	}
	return toolResults
}

// prepareArguments screens create_reservation calls for invented restaurant
// identifiers: anything not matching rest_<digits> is resolved by exact
// case-insensitive name match before giving up.
func (a *ReservationAgent) prepareArguments(toolName string, args map[string]any) (map[string]any, map[string]any) {
	if toolName != "create_reservation" {
		return args, nil
	}

	id, _ := args["restaurant_id"].(string)
	if restaurantIDPattern.MatchString(id) {
		return args, nil
	}

	name, _ := args["restaurant_name"].(string)
	if name == "" {
		// The supplied id itself may be the restaurant's name.
		name = id
	}
	if name == "" {
		return nil, map[string]any{"success": false, "error": "Invalid restaurant ID provided"}
	}

	restaurant, ok := a.store.FindByName(name)
	if !ok {
		return nil, map[string]any{"success": false, "error": fmt.Sprintf("Restaurant '%s' not found", name)}
	}

	slog.Info("Resolved restaurant by name", "name", name, "id", restaurant.ID)
	fixed := make(map[string]any, len(args))
	for k, v := range args {
		fixed[k] = v
	}
	fixed["restaurant_id"] = restaurant.ID
	return fixed, nil
}

// ClearConversation resets the history to a single system seed message.
func (a *ReservationAgent) ClearConversation() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = schema.NewMessages()
	a.history.AddSystem(resetPrompt)
}

// HistoryLen returns the current history length, including the system seed.
func (a *ReservationAgent) HistoryLen() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history.Len()
}

// reply appends an assistant message and returns its text.
// Caller must hold a.mu.
func (a *ReservationAgent) reply(content string) string {
	c := content
	a.history.AddAssistant(&c, nil)
	return content
}

func (a *ReservationAgent) chatOptions() schema.ChatOptions {
	return schema.NewChatOptions(a.settings.Model, a.settings.MaxTokens, a.settings.Temperature)
}
