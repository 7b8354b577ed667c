package inventory

import (
	"database/sql"
	"fmt"
	"log"
	"maps"
	"slices"

	"github.com/d-one-motors/site/vehicle"
)

const (
	selectVehicles = `SELECT id, brand, model, category, year, price, tag, power, engine,
	transmission, drivetrain, fuel, color, interior, mileage, featured, description
	FROM vehicles ORDER BY position`
	selectImages     = `SELECT vehicle_id, url FROM vehicle_images ORDER BY vehicle_id, position`
	selectHighlights = `SELECT vehicle_id, label FROM vehicle_highlights ORDER BY vehicle_id, position`
	selectSpecs      = `SELECT vehicle_id, name, value FROM vehicle_specs`

	insertVehicle = `INSERT INTO vehicles (id, position, brand, model, category, year, price, tag,
	power, engine, transmission, drivetrain, fuel, color, interior, mileage, featured, description)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	insertImage     = `INSERT INTO vehicle_images (vehicle_id, position, url) VALUES (?, ?, ?)`
	insertHighlight = `INSERT INTO vehicle_highlights (vehicle_id, position, label) VALUES (?, ?, ?)`
	insertSpec      = `INSERT INTO vehicle_specs (vehicle_id, name, value) VALUES (?, ?, ?)`
)

// LoadDB reads an imported inventory back in its original order.
func LoadDB(conn *sql.DB) ([]vehicle.Vehicle, error) {
	rows, err := conn.Query(selectVehicles)
	if err != nil {
		return nil, fmt.Errorf("error querying vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []vehicle.Vehicle
	index := make(map[string]int)
	for rows.Next() {
		var v vehicle.Vehicle
		var featured int
		if err := rows.Scan(&v.ID, &v.Brand, &v.Model, &v.Category, &v.Year, &v.Price,
			&v.Tag, &v.Power, &v.Engine, &v.Transmission, &v.Drivetrain, &v.Fuel,
			&v.Color, &v.Interior, &v.Mileage, &featured, &v.Description); err != nil {
			return nil, fmt.Errorf("error scanning vehicle: %w", err)
		}
		v.Featured = featured != 0
		index[v.ID] = len(vehicles)
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vehicles: %w", err)
	}

	err = eachPair(conn, selectImages, func(id, url string) {
		if i, ok := index[id]; ok {
			vehicles[i].Gallery = append(vehicles[i].Gallery, url)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("error loading images: %w", err)
	}

	err = eachPair(conn, selectHighlights, func(id, label string) {
		if i, ok := index[id]; ok {
			vehicles[i].Highlights = append(vehicles[i].Highlights, label)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("error loading highlights: %w", err)
	}

	specRows, err := conn.Query(selectSpecs)
	if err != nil {
		return nil, fmt.Errorf("error querying specs: %w", err)
	}
	defer specRows.Close()
	for specRows.Next() {
		var id, name, value string
		if err := specRows.Scan(&id, &name, &value); err != nil {
			return nil, fmt.Errorf("error scanning spec: %w", err)
		}
		if i, ok := index[id]; ok {
			if vehicles[i].Specs == nil {
				vehicles[i].Specs = make(map[string]string)
			}
			vehicles[i].Specs[name] = value
		}
	}
	if err := specRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating specs: %w", err)
	}

	log.Printf("[inventory] Loaded %d vehicles from database", len(vehicles))
	return vehicles, nil
}

func eachPair(conn *sql.DB, query string, fn func(id, value string)) error {
	rows, err := conn.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id, value string
		if err := rows.Scan(&id, &value); err != nil {
			return err
		}
		fn(id, value)
	}
	return rows.Err()
}

// Save replaces the stored inventory with vehicles in a single transaction.
func Save(conn *sql.DB, vehicles []vehicle.Vehicle) error {
	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"vehicle_specs", "vehicle_highlights", "vehicle_images", "vehicles"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("error clearing %s: %w", table, err)
		}
	}

	for pos, v := range vehicles {
		featured := 0
		if v.Featured {
			featured = 1
		}
		_, err := tx.Exec(insertVehicle, v.ID, pos, v.Brand, v.Model, v.Category, v.Year, v.Price,
			v.Tag, v.Power, v.Engine, v.Transmission, v.Drivetrain, v.Fuel, v.Color, v.Interior,
			v.Mileage, featured, v.Description)
		if err != nil {
			return fmt.Errorf("error inserting vehicle %q: %w", v.ID, err)
		}

		for i, url := range v.Gallery {
			if _, err := tx.Exec(insertImage, v.ID, i, url); err != nil {
				return fmt.Errorf("error inserting image %d of %q: %w", i, v.ID, err)
			}
		}
		for i, label := range v.Highlights {
			if _, err := tx.Exec(insertHighlight, v.ID, i, label); err != nil {
				return fmt.Errorf("error inserting highlight %d of %q: %w", i, v.ID, err)
			}
		}
		for _, name := range slices.Sorted(maps.Keys(v.Specs)) {
			if _, err := tx.Exec(insertSpec, v.ID, name, v.Specs[name]); err != nil {
				return fmt.Errorf("error inserting spec %s of %q: %w", name, v.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing inventory: %w", err)
	}
	log.Printf("[inventory] Saved %d vehicles", len(vehicles))
	return nil
}
