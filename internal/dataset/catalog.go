package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog describes the product universe the generator draws from:
// categories with their products and price bands, and the marketplaces
// orders are attributed to. Weights are relative sampling probabilities
// and do not need to sum to 1.
type Catalog struct {
	Categories   []CategorySpec    `yaml:"categories"`
	Marketplaces []MarketplaceSpec `yaml:"marketplaces"`
}

type CategorySpec struct {
	Name     string   `yaml:"name"`
	Weight   float64  `yaml:"weight"`
	PriceMin float64  `yaml:"price_min"`
	PriceMax float64  `yaml:"price_max"`
	Products []string `yaml:"products"`
}

type MarketplaceSpec struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

// LoadCatalog reads a catalog from a YAML file. An empty path returns the
// built-in default catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file %s: %w", path, err)
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return &cat, nil
}

// Validate checks the catalog is usable for sampling.
func (c *Catalog) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}
	if len(c.Marketplaces) == 0 {
		return fmt.Errorf("at least one marketplace is required")
	}

	seen := make(map[string]struct{}, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.Name == "" {
			return fmt.Errorf("category name must not be empty")
		}
		if _, dup := seen[cat.Name]; dup {
			return fmt.Errorf("duplicate category %q", cat.Name)
		}
		seen[cat.Name] = struct{}{}

		if cat.Weight <= 0 {
			return fmt.Errorf("category %q: weight must be positive", cat.Name)
		}
		if len(cat.Products) == 0 {
			return fmt.Errorf("category %q: at least one product is required", cat.Name)
		}
		if cat.PriceMin <= 0 || cat.PriceMax <= cat.PriceMin {
			return fmt.Errorf("category %q: invalid price range [%v, %v]", cat.Name, cat.PriceMin, cat.PriceMax)
		}
	}

	for _, m := range c.Marketplaces {
		if m.Name == "" {
			return fmt.Errorf("marketplace name must not be empty")
		}
		if m.Weight <= 0 {
			return fmt.Errorf("marketplace %q: weight must be positive", m.Name)
		}
	}
	return nil
}

// DefaultCatalog is the built-in demo catalog.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Categories: []CategorySpec{
			{
				Name: "Electronics", Weight: 0.30, PriceMin: 100, PriceMax: 1500,
				Products: []string{
					"Echo Dot (4th Gen)", "Fire TV Stick 4K", "Kindle Paperwhite",
					"Ring Video Doorbell", "Bose QuietComfort Earbuds",
				},
			},
			{
				Name: "Clothing", Weight: 0.25, PriceMin: 15, PriceMax: 200,
				Products: []string{
					"Amazon Essentials T-Shirt", "Levi's 501 Original Jeans",
					"Under Armour Hoodie", "Adidas Running Shoes", "Columbia Fleece Jacket",
				},
			},
			{
				Name: "Home & Kitchen", Weight: 0.15, PriceMin: 20, PriceMax: 300,
				Products: []string{
					"Instant Pot Duo", "Ninja Air Fryer", "Keurig K-Slim Coffee Maker",
					"Lodge Cast Iron Skillet", "iRobot Roomba",
				},
			},
			{
				Name: "Beauty", Weight: 0.10, PriceMin: 10, PriceMax: 150,
				Products: []string{
					"CeraVe Moisturizer", "Olaplex Hair Perfector",
					"Revlon One-Step Hair Dryer", "Neutrogena Sunscreen", "The Ordinary Serum",
				},
			},
			{
				Name: "Sports", Weight: 0.10, PriceMin: 15, PriceMax: 250,
				Products: []string{
					"Fitbit Charge 5", "Bowflex Adjustable Dumbbells",
					"Hydro Flask Water Bottle", "Manduka Yoga Mat", "Coleman Camping Tent",
				},
			},
			{
				Name: "Books", Weight: 0.10, PriceMin: 8, PriceMax: 50,
				Products: []string{
					"Atomic Habits", "The Psychology of Money", "Where the Crawdads Sing",
					"It Ends with Us", "The Body Keeps the Score",
				},
			},
		},
		Marketplaces: []MarketplaceSpec{
			{Name: "Amazon.com (US)", Weight: 0.40},
			{Name: "Amazon.co.uk (UK)", Weight: 0.25},
			{Name: "Amazon.de (Germany)", Weight: 0.20},
			{Name: "Amazon.co.jp (Japan)", Weight: 0.08},
			{Name: "Amazon.ca (Canada)", Weight: 0.05},
			{Name: "Amazon.com.au (Australia)", Weight: 0.02},
		},
	}
}
