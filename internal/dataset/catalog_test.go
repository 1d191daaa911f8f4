package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	require.NoError(t, DefaultCatalog().Validate())
}

func TestLoadCatalog_EmptyPathUsesDefault(t *testing.T) {
	cat, err := LoadCatalog("")
	require.NoError(t, err)
	require.Equal(t, DefaultCatalog(), cat)
}

func TestLoadCatalog_FromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
categories:
  - name: "Gadgets"
    weight: 0.7
    price_min: 10
    price_max: 100
    products: ["Thing One", "Thing Two"]
  - name: "Gizmos"
    weight: 0.3
    price_min: 5
    price_max: 50
    products: ["Doohickey"]
marketplaces:
  - name: "Testmart (US)"
    weight: 0.8
  - name: "Testmart (EU)"
    weight: 0.2
`), 0o644))

	cat, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, cat.Categories, 2)
	require.Equal(t, "Gadgets", cat.Categories[0].Name)
	require.Len(t, cat.Marketplaces, 2)
}

func TestLoadCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no categories", `marketplaces: [{name: "M", weight: 1}]`},
		{"no marketplaces", `categories: [{name: "C", weight: 1, price_min: 1, price_max: 2, products: ["P"]}]`},
		{"zero weight", `
categories: [{name: "C", weight: 0, price_min: 1, price_max: 2, products: ["P"]}]
marketplaces: [{name: "M", weight: 1}]`},
		{"no products", `
categories: [{name: "C", weight: 1, price_min: 1, price_max: 2, products: []}]
marketplaces: [{name: "M", weight: 1}]`},
		{"inverted price range", `
categories: [{name: "C", weight: 1, price_min: 5, price_max: 2, products: ["P"]}]
marketplaces: [{name: "M", weight: 1}]`},
		{"duplicate category", `
categories:
  - {name: "C", weight: 1, price_min: 1, price_max: 2, products: ["P"]}
  - {name: "C", weight: 1, price_min: 1, price_max: 2, products: ["Q"]}
marketplaces: [{name: "M", weight: 1}]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.yaml), 0o644))
			_, err := LoadCatalog(path)
			require.Error(t, err)
		})
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
