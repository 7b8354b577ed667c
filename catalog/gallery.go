package catalog

import "github.com/d-one-motors/site/vehicle"

// Gallery is the image cursor of one detail view. It saturates at both
// ends instead of wrapping.
type Gallery struct {
	vehicleID string
	size      int
	index     int
}

func NewGallery(v vehicle.Vehicle) *Gallery {
	return &Gallery{vehicleID: v.ID, size: len(v.Gallery)}
}

// GalleryAt returns a gallery for v positioned at idx, clamped into range.
func GalleryAt(v vehicle.Vehicle, idx int) *Gallery {
	g := NewGallery(v)
	g.Select(idx)
	return g
}

func (g *Gallery) Index() int {
	return g.index
}

func (g *Gallery) Size() int {
	return g.size
}

func (g *Gallery) VehicleID() string {
	return g.vehicleID
}

func (g *Gallery) HasPrev() bool {
	return g.index > 0
}

func (g *Gallery) HasNext() bool {
	return g.index < g.size-1
}

func (g *Gallery) Prev() int {
	if g.HasPrev() {
		g.index--
	}
	return g.index
}

func (g *Gallery) Next() int {
	if g.HasNext() {
		g.index++
	}
	return g.index
}

// Select moves to idx, clamped to the gallery bounds.
func (g *Gallery) Select(idx int) int {
	switch {
	case idx < 0 || g.size == 0:
		g.index = 0
	case idx >= g.size:
		g.index = g.size - 1
	default:
		g.index = idx
	}
	return g.index
}

// Reset points the gallery at v. Switching to a different vehicle always
// starts again from the cover image.
func (g *Gallery) Reset(v vehicle.Vehicle) {
	if v.ID != g.vehicleID {
		g.vehicleID = v.ID
		g.index = 0
	}
	g.size = len(v.Gallery)
	g.Select(g.index)
}

// Current returns the image reference under the cursor, or "" for an
// empty gallery.
func (g *Gallery) Current(v vehicle.Vehicle) string {
	if g.index < len(v.Gallery) {
		return v.Gallery[g.index]
	}
	return ""
}
