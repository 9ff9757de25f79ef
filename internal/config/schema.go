// Package config defines and loads the goodfoods configuration.
//
// Settings come from ~/.goodfoods/config.json with environment variables
// (optionally via a .env file) taking precedence for the LLM credentials.
package config

// LLMConfig holds the chat-completion endpoint settings.
type LLMConfig struct {
	APIKey         string  `json:"apiKey"`
	APIBase        string  `json:"apiBase"`
	Model          string  `json:"model"`
	Temperature    float64 `json:"temperature"`
	MaxTokens      int     `json:"maxTokens"`
	TimeoutSeconds int     `json:"timeoutSeconds"`
}

// CatalogConfig controls where the restaurant catalog comes from.
// File, when set, points at a YAML catalog and overrides generation.
// Seed zero means a time-seeded random catalog.
type CatalogConfig struct {
	Count int    `json:"count"`
	Seed  int64  `json:"seed"`
	File  string `json:"file,omitempty"`
}

// BookingConfig bounds accepted reservations.
type BookingConfig struct {
	MaxPartySize   int `json:"maxPartySize"`
	MaxAdvanceDays int `json:"maxAdvanceDays"`
}

// GatewayConfig configures the HTTP/WebSocket gateway.
type GatewayConfig struct {
	Addr string `json:"addr"`
}

// Config is the root configuration.
type Config struct {
	LLM     LLMConfig     `json:"llm"`
	Catalog CatalogConfig `json:"catalog"`
	Booking BookingConfig `json:"booking"`
	Gateway GatewayConfig `json:"gateway"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		LLM: LLMConfig{
			APIBase:        "https://api.groq.com/openai/v1",
			Model:          "llama-3.3-70b-versatile",
			Temperature:    0.1,
			MaxTokens:      1000,
			TimeoutSeconds: 30,
		},
		Catalog: CatalogConfig{Count: 75},
		Booking: BookingConfig{MaxPartySize: 20, MaxAdvanceDays: 30},
		Gateway: GatewayConfig{Addr: ":8090"},
	}
}
