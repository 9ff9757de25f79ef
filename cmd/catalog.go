package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vinay-014/GoodFoods/internal/catalog"
	"github.com/Vinay-014/GoodFoods/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the restaurant catalog",
	RunE:  runCatalog,
}

func runCatalog(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var restaurants []*catalog.Restaurant
	if cfg.Catalog.File != "" {
		restaurants, err = catalog.LoadFile(cfg.Catalog.File)
		if err != nil {
			return err
		}
	} else {
		seed := cfg.Catalog.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		restaurants = catalog.Generate(cfg.Catalog.Count, rand.New(rand.NewSource(seed)))
	}

	fmt.Printf("%s %d restaurants\n\n", logo, len(restaurants))
	for _, r := range restaurants {
		fmt.Printf("%-10s %-38s %-18s %-12s %s  ★%.1f  %d/%d tables free\n",
			r.ID, r.Name, r.Location, r.Cuisine, r.PriceRange, r.Rating,
			r.AvailableTables(), r.Capacity)
	}
	return nil
}
