package schema

// AgentSettings holds the per-request LLM parameters the agent uses.
type AgentSettings struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

func NewAgentSettings(model string, temperature float64, maxTokens int) AgentSettings {
	return AgentSettings{Model: model, Temperature: temperature, MaxTokens: maxTokens}
}
