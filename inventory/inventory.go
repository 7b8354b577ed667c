// Package inventory loads the dealership's vehicle list from a bundled file,
// a JSON or YAML file on disk, or an imported SQLite database.
package inventory

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/d-one-motors/site/vehicle"
)

//go:embed data/inventory.json
var embedded []byte

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the decoder from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported inventory file %q: want .json, .yaml or .yml", path)
}

// Parse decodes an array of vehicles.
func Parse(data []byte, format Format) ([]vehicle.Vehicle, error) {
	var vehicles []vehicle.Vehicle
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &vehicles); err != nil {
			return nil, fmt.Errorf("error decoding JSON inventory: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &vehicles); err != nil {
			return nil, fmt.Errorf("error decoding YAML inventory: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown inventory format %q", format)
	}
	return vehicles, nil
}

func LoadFile(path string) ([]vehicle.Vehicle, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading inventory: %w", err)
	}

	vehicles, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vehicles, nil
}

// LoadEmbedded returns the inventory bundled into the binary.
func LoadEmbedded() ([]vehicle.Vehicle, error) {
	return Parse(embedded, FormatJSON)
}

// Validate reports data-quality problems. None of them stop the site from
// serving; they are logged so the data can be fixed upstream.
func Validate(vehicles []vehicle.Vehicle) []string {
	var warnings []string
	seen := make(map[string]int)

	for i, v := range vehicles {
		if v.ID == "" {
			warnings = append(warnings, fmt.Sprintf("vehicle #%d has no id", i))
		} else if first, dup := seen[v.ID]; dup {
			warnings = append(warnings, fmt.Sprintf("vehicle #%d duplicates id %q of vehicle #%d", i, v.ID, first))
		} else {
			seen[v.ID] = i
		}

		if len(v.Gallery) == 0 {
			warnings = append(warnings, fmt.Sprintf("vehicle %q has an empty gallery", v.ID))
		}
		if v.Price < 0 {
			warnings = append(warnings, fmt.Sprintf("vehicle %q has negative price %d", v.ID, v.Price))
		}
		if v.Year < 0 {
			warnings = append(warnings, fmt.Sprintf("vehicle %q has negative year %d", v.ID, v.Year))
		}
	}

	return warnings
}

// LogWarnings runs Validate and logs every finding.
func LogWarnings(vehicles []vehicle.Vehicle) {
	for _, w := range Validate(vehicles) {
		log.Printf("[inventory] WARNING: %s", w)
	}
}
