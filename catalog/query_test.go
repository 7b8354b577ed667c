package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/d-one-motors/site/vehicle"
)

func TestQueryExamples(t *testing.T) {
	c := exampleCatalog()

	tests := []struct {
		name     string
		brand    string
		mode     SortMode
		expected []string
	}{
		{name: "brand by price ascending", brand: "BMW", mode: SortPriceAsc, expected: []string{"b", "a"}},
		{name: "all newest first", brand: "All", mode: SortNewest, expected: []string{"b", "a", "c"}},
		{name: "single brand default order", brand: "Audi", mode: SortDefault, expected: []string{"c"}},
		{name: "unknown brand default", brand: "Lexus", mode: SortDefault, expected: []string{}},
		{name: "unknown brand price", brand: "Lexus", mode: SortPriceDesc, expected: []string{}},
		{name: "all default keeps insertion order", brand: "All", mode: SortDefault, expected: []string{"a", "b", "c"}},
		{name: "empty brand means all", brand: "", mode: SortPriceDesc, expected: []string{"c", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Query(tt.brand, tt.mode)
			assert.NotNil(t, got)
			assert.Equal(t, tt.expected, ids(got))
		})
	}
}

func TestQueryBrandFilter(t *testing.T) {
	c := New(testInventory())

	for _, brand := range c.Brands() {
		for _, mode := range SortModes {
			got := c.Query(brand, mode)
			if brand == AllBrands {
				assert.Len(t, got, c.Len())
				continue
			}
			assert.NotEmpty(t, got, "brand %s comes from the catalog", brand)
			for _, v := range got {
				assert.Equal(t, brand, v.Brand)
			}
		}
	}
}

func TestQueryNoPartialMatch(t *testing.T) {
	c := New(testInventory())
	assert.Empty(t, c.Query("Mercedes", SortDefault))
	assert.Empty(t, c.Query("bmw", SortDefault))
}

func TestQueryDoesNotMutateCatalog(t *testing.T) {
	c := New(testInventory())
	before := c.All()

	for _, brand := range c.Brands() {
		for _, mode := range SortModes {
			got := c.Query(brand, mode)
			if len(got) > 0 {
				got[0].ID = "mutated"
				got[0].Gallery[0] = "mutated.jpg"
			}
		}
	}

	if diff := cmp.Diff(before, c.All()); diff != "" {
		t.Errorf("catalog changed after queries (-before +after):\n%s", diff)
	}
}

func TestQueryOrdering(t *testing.T) {
	c := New(testInventory())

	asc := c.Query(AllBrands, SortPriceAsc)
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].Price, asc[i].Price)
	}

	desc := c.Query(AllBrands, SortPriceDesc)
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, desc[i-1].Price, desc[i].Price)
	}

	newest := c.Query(AllBrands, SortNewest)
	for i := 1; i < len(newest); i++ {
		assert.GreaterOrEqual(t, newest[i-1].Year, newest[i].Year)
	}
}

func TestQueryStableTies(t *testing.T) {
	c := New([]vehicle.Vehicle{
		{ID: "p1", Brand: "X", Price: 100, Year: 2020},
		{ID: "p2", Brand: "X", Price: 200, Year: 2022},
		{ID: "p3", Brand: "X", Price: 100, Year: 2022},
		{ID: "p4", Brand: "X", Price: 200, Year: 2020},
		{ID: "p5", Brand: "X", Price: 100, Year: 2021},
	})

	for i := 0; i < 5; i++ {
		assert.Equal(t, []string{"p1", "p3", "p5", "p2", "p4"}, ids(c.Query(AllBrands, SortPriceAsc)))
		assert.Equal(t, []string{"p2", "p4", "p1", "p3", "p5"}, ids(c.Query(AllBrands, SortPriceDesc)))
		assert.Equal(t, []string{"p2", "p3", "p5", "p1", "p4"}, ids(c.Query(AllBrands, SortNewest)))
	}
}

func TestParseSortMode(t *testing.T) {
	tests := []struct {
		input    string
		expected SortMode
	}{
		{"", SortDefault},
		{"default", SortDefault},
		{"price-asc", SortPriceAsc},
		{"price-desc", SortPriceDesc},
		{"newest", SortNewest},
		{"oldest", SortDefault},
		{"PRICE-ASC", SortDefault},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSortMode(tt.input))
		})
	}
}

func TestSortModeLabel(t *testing.T) {
	assert.Equal(t, "Default", SortDefault.Label())
	assert.Equal(t, "Price: Low to High", SortPriceAsc.Label())
	assert.Equal(t, "Price: High to Low", SortPriceDesc.Label())
	assert.Equal(t, "Newest First", SortNewest.Label())
}
