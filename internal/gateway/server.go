// Package gateway exposes the reservation assistant over HTTP and WebSocket
// for external user interfaces.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/Vinay-014/GoodFoods/internal/catalog"
)

// Assistant is the conversational surface the gateway serves.
type Assistant interface {
	ProcessMessage(ctx context.Context, text string) (string, map[string]any)
	ClearConversation()
}

// chatRequest is the body of POST /api/chat and of each WebSocket frame.
type chatRequest struct {
	Message string `json:"message"`
}

// chatResponse carries the reply and the per-tool results of the turn.
type chatResponse struct {
	Reply       string         `json:"reply"`
	ToolResults map[string]any `json:"tool_results"`
}

// Server serves the chat API, a catalog listing, and a WebSocket endpoint.
type Server struct {
	addr      string
	assistant Assistant
	store     *catalog.Store
	upgrader  websocket.Upgrader
}

// NewServer creates a Server listening on addr.
func NewServer(addr string, assistant Assistant, store *catalog.Store) *Server {
	return &Server{
		addr:      addr,
		assistant: assistant,
		store:     store,
		upgrader:  websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024},
	}
}

// Handler returns the route table, exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", requireMethod(http.MethodPost, s.handleChat))
	mux.HandleFunc("/api/reset", requireMethod(http.MethodPost, s.handleReset))
	mux.HandleFunc("/api/restaurants", requireMethod(http.MethodGet, s.handleRestaurants))
	mux.HandleFunc("/ws", requireMethod(http.MethodGet, s.handleWS))
	return mux
}

// requireMethod restricts a handler to one HTTP method, matching the
// behavior of Go 1.22+ ServeMux method patterns on older toolchains.
func requireMethod(method string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			httpError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h(w, r)
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("gateway listening", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		httpError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, toolResults := s.assistant.ProcessMessage(r.Context(), req.Message)
	writeJSON(w, http.StatusOK, chatResponse{Reply: reply, ToolResults: toolResults})
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.assistant.ClearConversation()
	writeJSON(w, http.StatusOK, map[string]any{"cleared": true})
}

func (s *Server) handleRestaurants(w http.ResponseWriter, _ *http.Request) {
	type entry struct {
		*catalog.Restaurant
		AvailableTables int `json:"available_tables"`
	}

	restaurants := s.store.Restaurants()
	out := make([]entry, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, entry{Restaurant: r, AvailableTables: r.AvailableTables()})
	}
	writeJSON(w, http.StatusOK, map[string]any{"restaurants": out})
}

// handleWS runs the chat loop over one WebSocket connection: each inbound
// frame is a chatRequest, each outbound frame a chatResponse.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	for {
		var req chatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("websocket read", "err", err)
			}
			return
		}
		if req.Message == "" {
			continue
		}

		reply, toolResults := s.assistant.ProcessMessage(r.Context(), req.Message)
		if err := conn.WriteJSON(chatResponse{Reply: reply, ToolResults: toolResults}); err != nil {
			slog.Warn("websocket write", "err", err)
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "err", err)
	}
}

func httpError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}
