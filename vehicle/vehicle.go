package vehicle

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Spec keys that the detail page knows how to label.
const (
	SpecAcceleration    = "acceleration"
	SpecFuelConsumption = "fuelConsumption"
	SpecRange           = "range"
)

// Vehicle is a single car in the dealership inventory.
type Vehicle struct {
	ID           string            `json:"id" yaml:"id"`
	Brand        string            `json:"brand" yaml:"brand"`
	Model        string            `json:"model" yaml:"model"`
	Category     string            `json:"category" yaml:"category"`
	Year         int               `json:"year" yaml:"year"`
	Price        int               `json:"price" yaml:"price"`
	Tag          string            `json:"tag" yaml:"tag"`
	Power        string            `json:"power" yaml:"power"`
	Engine       string            `json:"engine" yaml:"engine"`
	Transmission string            `json:"transmission" yaml:"transmission"`
	Drivetrain   string            `json:"drivetrain" yaml:"drivetrain"`
	Fuel         string            `json:"fuel" yaml:"fuel"`
	Color        string            `json:"color" yaml:"color"`
	Interior     string            `json:"interior" yaml:"interior"`
	Mileage      string            `json:"mileage" yaml:"mileage"`
	Highlights   []string          `json:"highlights" yaml:"highlights"`
	Specs        map[string]string `json:"specs,omitempty" yaml:"specs,omitempty"`
	Gallery      []string          `json:"gallery" yaml:"gallery"`
	Featured     bool              `json:"featured" yaml:"featured"`
	Description  string            `json:"description" yaml:"description"`
}

// Image returns the cover image, the first gallery entry.
// Clone returns a copy of v that shares no slices or maps with it.
func (v Vehicle) Clone() Vehicle {
	v.Highlights = slices.Clone(v.Highlights)
	v.Specs = maps.Clone(v.Specs)
	v.Gallery = slices.Clone(v.Gallery)
	return v
}

func (v Vehicle) Image() string {
	if len(v.Gallery) == 0 {
		return ""
	}
	return v.Gallery[0]
}

func (v Vehicle) Title() string {
	return strings.TrimSpace(v.Brand + " " + v.Model)
}

// Spec returns the named spec and whether the vehicle has it.
func (v Vehicle) Spec(key string) (string, bool) {
	val, ok := v.Specs[key]
	if !ok || val == "" {
		return "", false
	}
	return val, true
}

// FormatPrice renders the price in whole dollars with en-US grouping, e.g. "$184,500".
func (v Vehicle) FormatPrice() string {
	return FormatPrice(v.Price)
}

func FormatPrice(price int) string {
	s := strconv.Itoa(price)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-$" + b.String()
	}
	return "$" + b.String()
}
