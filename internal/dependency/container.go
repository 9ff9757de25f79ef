// Package dependency wires the goodfoods services using go.uber.org/dig.
package dependency

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/dig"

	"github.com/Vinay-014/GoodFoods/internal/agent"
	"github.com/Vinay-014/GoodFoods/internal/catalog"
	"github.com/Vinay-014/GoodFoods/internal/config"
	"github.com/Vinay-014/GoodFoods/internal/providers"
	"github.com/Vinay-014/GoodFoods/internal/schema"
	"github.com/Vinay-014/GoodFoods/internal/tools"
)

// Container holds the resolved service singletons. Callers use the typed
// getter methods; they never need to import dig directly.
type Container struct {
	provider schema.LLMProvider
	store    *catalog.Store
	registry *tools.Registry
	agent    *agent.ReservationAgent
}

func (c *Container) Provider() schema.LLMProvider   { return c.provider }
func (c *Container) Store() *catalog.Store          { return c.store }
func (c *Container) Registry() *tools.Registry      { return c.registry }
func (c *Container) Agent() *agent.ReservationAgent { return c.agent }

// New builds and wires all services from cfg.
func New(cfg *config.Config) (*Container, error) {
	d := dig.New()

	for _, provide := range []any{
		func() *config.Config { return cfg },
		newProvider,
		newCatalog,
		newStore,
		newRegistry,
		newSettings,
		newAgent,
	} {
		if err := d.Provide(provide); err != nil {
			return nil, err
		}
	}

	var result *Container
	err := d.Invoke(func(
		provider schema.LLMProvider,
		store *catalog.Store,
		registry *tools.Registry,
		ag *agent.ReservationAgent,
	) {
		result = &Container{provider: provider, store: store, registry: registry, agent: ag}
	})
	return result, err
}

func newProvider(cfg *config.Config) (schema.LLMProvider, error) {
	if cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("no API key configured: set GROQ_API_KEY or edit %s", config.ConfigPath())
	}
	return providers.NewOpenAIProvider(
		cfg.LLM.APIKey,
		cfg.LLM.APIBase,
		cfg.LLM.Model,
		time.Duration(cfg.LLM.TimeoutSeconds)*time.Second,
	), nil
}

// newCatalog builds the restaurant catalog: from the configured YAML file
// when set, otherwise generated. Seed zero means a time-seeded catalog.
func newCatalog(cfg *config.Config) ([]*catalog.Restaurant, error) {
	if cfg.Catalog.File != "" {
		return catalog.LoadFile(cfg.Catalog.File)
	}

	seed := cfg.Catalog.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return catalog.Generate(cfg.Catalog.Count, rand.New(rand.NewSource(seed))), nil
}

func newStore(cfg *config.Config, restaurants []*catalog.Restaurant) *catalog.Store {
	return catalog.NewStore(restaurants, catalog.Limits{
		MaxPartySize:   cfg.Booking.MaxPartySize,
		MaxAdvanceDays: cfg.Booking.MaxAdvanceDays,
	})
}

func newRegistry(store *catalog.Store) *tools.Registry {
	return tools.NewRegistry(
		tools.NewSearchTool(store),
		tools.NewAvailabilityTool(store),
		tools.NewCreateReservationTool(store),
		tools.NewCancelReservationTool(store),
		tools.NewReservationDetailsTool(store),
		tools.NewRecommendationsTool(store),
	)
}

func newSettings(cfg *config.Config) schema.AgentSettings {
	return schema.NewAgentSettings(cfg.LLM.Model, cfg.LLM.Temperature, cfg.LLM.MaxTokens)
}

func newAgent(provider schema.LLMProvider, registry *tools.Registry, store *catalog.Store, settings schema.AgentSettings) *agent.ReservationAgent {
	return agent.New(provider, registry, store, settings)
}
