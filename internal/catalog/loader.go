package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape of a custom catalog.
type catalogFile struct {
	Restaurants []*Restaurant `yaml:"restaurants"`
}

// LoadFile reads a catalog from a YAML file, replacing the generated sample
// data. Missing opening hours and ratings get the generator defaults; entries
// without an id are assigned the next zero-padded sequence number.
func LoadFile(path string) ([]*Restaurant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(file.Restaurants) == 0 {
		return nil, fmt.Errorf("catalog %s contains no restaurants", path)
	}

	for i, r := range file.Restaurants {
		if r.ID == "" {
			r.ID = fmt.Sprintf("rest_%03d", i+1)
		}
		if r.OpeningTime == "" {
			r.OpeningTime = "11:00"
		}
		if r.ClosingTime == "" {
			r.ClosingTime = "23:00"
		}
		if r.Rating == 0 {
			r.Rating = 4.0
		}
		if r.Capacity <= 0 {
			return nil, fmt.Errorf("catalog %s: restaurant %s has no capacity", path, r.ID)
		}
		if r.CurrentReservations < 0 || r.CurrentReservations > r.Capacity {
			return nil, fmt.Errorf("catalog %s: restaurant %s has %d reservations for capacity %d",
				path, r.ID, r.CurrentReservations, r.Capacity)
		}
	}

	return file.Restaurants, nil
}
