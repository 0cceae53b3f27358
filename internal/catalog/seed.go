package catalog

import (
	"embed"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed seed/catalog.yaml
var seedFS embed.FS

// Dataset is the embedded seed catalog. Version identifies the shipped
// revision; it is logged at seed time, nothing else depends on it.
type Dataset struct {
	Version    int                   `yaml:"version"`
	Categories map[string][]SeedItem `yaml:"categories"`
}

type SeedItem struct {
	Name   string  `yaml:"name"`
	NameAr string  `yaml:"name_ar"`
	Year   *int    `yaml:"year"`
	Genre  *string `yaml:"genre"`
}

// LoadDataset parses the embedded seed asset and rejects entries for
// categories outside the fixed set.
func LoadDataset() (Dataset, error) {
	raw, err := seedFS.ReadFile("seed/catalog.yaml")
	if err != nil {
		return Dataset{}, fmt.Errorf("read seed asset: %w", err)
	}

	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return Dataset{}, fmt.Errorf("parse seed asset: %w", err)
	}

	for category := range ds.Categories {
		if !ValidCategory(category) {
			return Dataset{}, fmt.Errorf("seed asset: %w: %s", ErrUnknownCategory, category)
		}
	}
	return ds, nil
}

// Items materializes the seed entries of one category, assigning each a
// fresh id.
func (d Dataset) Items(category string) []Item {
	entries := d.Categories[category]
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, Item{
			ID:       uuid.New().String(),
			Name:     e.Name,
			NameAr:   e.NameAr,
			Category: category,
			Year:     e.Year,
			Genre:    e.Genre,
		})
	}
	return items
}
