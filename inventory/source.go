package inventory

import (
	"log"

	"github.com/d-one-motors/site/db"
	"github.com/d-one-motors/site/vehicle"
)

// Source says where the site reads its inventory from. A database wins
// over a file; with neither set the bundled inventory is used.
type Source struct {
	DatabaseURL string
	Path        string
}

func (s Source) String() string {
	switch {
	case s.DatabaseURL != "":
		return "sqlite:" + s.DatabaseURL
	case s.Path != "":
		return "file:" + s.Path
	}
	return "embedded"
}

// Load reads the inventory from s and logs any data-quality warnings.
func Load(s Source) ([]vehicle.Vehicle, error) {
	var (
		vehicles []vehicle.Vehicle
		err      error
	)

	switch {
	case s.DatabaseURL != "":
		conn, openErr := db.Open(s.DatabaseURL)
		if openErr != nil {
			return nil, openErr
		}
		defer conn.Close()
		vehicles, err = LoadDB(conn)
	case s.Path != "":
		vehicles, err = LoadFile(s.Path)
	default:
		vehicles, err = LoadEmbedded()
	}
	if err != nil {
		return nil, err
	}

	log.Printf("[inventory] %d vehicles from %s", len(vehicles), s)
	LogWarnings(vehicles)
	return vehicles, nil
}
