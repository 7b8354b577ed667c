package inventory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-one-motors/site/vehicle"
)

const sampleJSON = `[
  {
    "id": "porsche-911",
    "brand": "Porsche",
    "model": "911 Turbo S",
    "category": "Coupe",
    "year": 2024,
    "price": 248000,
    "highlights": ["Sport Chrono"],
    "specs": {"acceleration": "2.7 s"},
    "gallery": ["/img/911-1.jpg", "/img/911-2.jpg"],
    "featured": true
  },
  {
    "id": "mini-cooper",
    "brand": "MINI",
    "model": "Cooper S",
    "category": "Hatchback",
    "year": 2024,
    "price": 38500,
    "gallery": ["/img/mini.jpg"]
  }
]`

const sampleYAML = `
- id: porsche-911
  brand: Porsche
  model: 911 Turbo S
  category: Coupe
  year: 2024
  price: 248000
  highlights: [Sport Chrono]
  specs:
    acceleration: 2.7 s
  gallery:
    - /img/911-1.jpg
    - /img/911-2.jpg
  featured: true
- id: mini-cooper
  brand: MINI
  model: Cooper S
  category: Hatchback
  year: 2024
  price: 38500
  gallery: [/img/mini.jpg]
`

func assertSample(t *testing.T, vehicles []vehicle.Vehicle) {
	t.Helper()
	require.Len(t, vehicles, 2)

	p := vehicles[0]
	assert.Equal(t, "porsche-911", p.ID)
	assert.Equal(t, "911 Turbo S", p.Model)
	assert.Equal(t, 248000, p.Price)
	assert.Equal(t, 2024, p.Year)
	assert.True(t, p.Featured)
	assert.Equal(t, []string{"Sport Chrono"}, p.Highlights)
	assert.Equal(t, "2.7 s", p.Specs["acceleration"])
	assert.Equal(t, []string{"/img/911-1.jpg", "/img/911-2.jpg"}, p.Gallery)

	m := vehicles[1]
	assert.Equal(t, "mini-cooper", m.ID)
	assert.False(t, m.Featured)
	assert.Nil(t, m.Specs)
}

func TestParse(t *testing.T) {
	vehicles, err := Parse([]byte(sampleJSON), FormatJSON)
	require.NoError(t, err)
	assertSample(t, vehicles)

	vehicles, err = Parse([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)
	assertSample(t, vehicles)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`{"id": "not-an-array"}`), FormatJSON)
	assert.ErrorContains(t, err, "JSON")

	_, err = Parse([]byte("- id: [unterminated"), FormatYAML)
	assert.ErrorContains(t, err, "YAML")

	_, err = Parse([]byte(sampleJSON), Format("toml"))
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path        string
		expected    Format
		expectError bool
	}{
		{path: "inventory.json", expected: FormatJSON},
		{path: "/data/INVENTORY.JSON", expected: FormatJSON},
		{path: "cars.yaml", expected: FormatYAML},
		{path: "cars.yml", expected: FormatYAML},
		{path: "cars.csv", expectError: true},
		{path: "cars", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, err := FormatFromPath(tt.path)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "inventory.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(sampleJSON), 0o644))
	vehicles, err := LoadFile(jsonPath)
	require.NoError(t, err)
	assertSample(t, vehicles)

	yamlPath := filepath.Join(dir, "inventory.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(sampleYAML), 0o644))
	vehicles, err = LoadFile(yamlPath)
	require.NoError(t, err)
	assertSample(t, vehicles)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestLoadEmbedded(t *testing.T) {
	vehicles, err := LoadEmbedded()
	require.NoError(t, err)
	assert.NotEmpty(t, vehicles)
	assert.Empty(t, Validate(vehicles), "bundled inventory should be clean")

	featured := 0
	for _, v := range vehicles {
		if v.Featured {
			featured++
		}
	}
	assert.Positive(t, featured)
}

func TestLoadSourceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cars.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	vehicles, err := Load(Source{Path: path})
	require.NoError(t, err)
	assertSample(t, vehicles)
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "embedded", Source{}.String())
	assert.Equal(t, "file:cars.json", Source{Path: "cars.json"}.String())
	assert.Equal(t, "sqlite:site.db", Source{DatabaseURL: "site.db", Path: "cars.json"}.String())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		vehicles []vehicle.Vehicle
		expected []string
	}{
		{
			name:     "clean",
			vehicles: []vehicle.Vehicle{{ID: "a", Gallery: []string{"x"}}, {ID: "b", Gallery: []string{"y"}}},
		},
		{
			name:     "duplicate id",
			vehicles: []vehicle.Vehicle{{ID: "a", Gallery: []string{"x"}}, {ID: "a", Gallery: []string{"y"}}},
			expected: []string{`vehicle #1 duplicates id "a" of vehicle #0`},
		},
		{
			name:     "empty gallery",
			vehicles: []vehicle.Vehicle{{ID: "a"}},
			expected: []string{`vehicle "a" has an empty gallery`},
		},
		{
			name:     "negative numbers",
			vehicles: []vehicle.Vehicle{{ID: "a", Price: -1, Year: -2020, Gallery: []string{"x"}}},
			expected: []string{`vehicle "a" has negative price -1`, `vehicle "a" has negative year -2020`},
		},
		{
			name:     "missing id",
			vehicles: []vehicle.Vehicle{{Gallery: []string{"x"}}},
			expected: []string{"vehicle #0 has no id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Validate(tt.vehicles))
		})
	}
}
