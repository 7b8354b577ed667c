package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/d-one-motors/site/vehicle"
)

func TestGalleryClamps(t *testing.T) {
	v := vehicle.Vehicle{ID: "s680", Gallery: []string{"one", "two", "three"}}
	g := NewGallery(v)

	assert.Equal(t, 0, g.Index())
	assert.False(t, g.HasPrev())
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0, g.Prev())
	}

	assert.Equal(t, 1, g.Next())
	assert.Equal(t, 2, g.Next())
	assert.False(t, g.HasNext())
	for i := 0; i < 3; i++ {
		assert.Equal(t, 2, g.Next())
	}
	assert.Equal(t, "three", g.Current(v))

	assert.Equal(t, 1, g.Prev())
	assert.Equal(t, "two", g.Current(v))
}

func TestGallerySelect(t *testing.T) {
	v := vehicle.Vehicle{ID: "a", Gallery: []string{"one", "two", "three"}}

	tests := []struct {
		name     string
		idx      int
		expected int
	}{
		{name: "in range", idx: 1, expected: 1},
		{name: "negative", idx: -4, expected: 0},
		{name: "past the end", idx: 9, expected: 2},
		{name: "last", idx: 2, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GalleryAt(v, tt.idx).Index())
		})
	}
}

func TestGalleryResetOnNewVehicle(t *testing.T) {
	first := vehicle.Vehicle{ID: "first", Gallery: []string{"1", "2", "3"}}
	second := vehicle.Vehicle{ID: "second", Gallery: []string{"1", "2", "3", "4"}}

	g := GalleryAt(first, 2)
	assert.Equal(t, 2, g.Index())

	g.Reset(second)
	assert.Equal(t, 0, g.Index())
	assert.Equal(t, "second", g.VehicleID())
	assert.Equal(t, 4, g.Size())

	g.Select(3)
	g.Reset(second)
	assert.Equal(t, 3, g.Index(), "same vehicle keeps its position")
}

func TestGalleryResetShrinks(t *testing.T) {
	v := vehicle.Vehicle{ID: "a", Gallery: []string{"1", "2", "3"}}
	g := GalleryAt(v, 2)

	v.Gallery = v.Gallery[:1]
	g.Reset(v)
	assert.Equal(t, 0, g.Index())
}

func TestGalleryEmpty(t *testing.T) {
	v := vehicle.Vehicle{ID: "bare"}
	g := NewGallery(v)

	assert.Equal(t, 0, g.Next())
	assert.Equal(t, 0, g.Prev())
	assert.Equal(t, 0, g.Select(5))
	assert.Equal(t, "", g.Current(v))
	assert.False(t, g.HasNext())
}
