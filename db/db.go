package db

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

// Schema is the SQLite layout of an imported inventory. Child rows carry a
// position column so gallery and highlight order survive the round trip.
const Schema = `
CREATE TABLE IF NOT EXISTS vehicles (
	id           TEXT PRIMARY KEY,
	position     INTEGER NOT NULL,
	brand        TEXT NOT NULL,
	model        TEXT NOT NULL,
	category     TEXT NOT NULL DEFAULT '',
	year         INTEGER NOT NULL DEFAULT 0,
	price        INTEGER NOT NULL DEFAULT 0,
	tag          TEXT NOT NULL DEFAULT '',
	power        TEXT NOT NULL DEFAULT '',
	engine       TEXT NOT NULL DEFAULT '',
	transmission TEXT NOT NULL DEFAULT '',
	drivetrain   TEXT NOT NULL DEFAULT '',
	fuel         TEXT NOT NULL DEFAULT '',
	color        TEXT NOT NULL DEFAULT '',
	interior     TEXT NOT NULL DEFAULT '',
	mileage      TEXT NOT NULL DEFAULT '',
	featured     INTEGER NOT NULL DEFAULT 0,
	description  TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS vehicle_images (
	vehicle_id TEXT NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
	position   INTEGER NOT NULL,
	url        TEXT NOT NULL,
	PRIMARY KEY (vehicle_id, position)
);
CREATE TABLE IF NOT EXISTS vehicle_highlights (
	vehicle_id TEXT NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
	position   INTEGER NOT NULL,
	label      TEXT NOT NULL,
	PRIMARY KEY (vehicle_id, position)
);
CREATE TABLE IF NOT EXISTS vehicle_specs (
	vehicle_id TEXT NOT NULL REFERENCES vehicles(id) ON DELETE CASCADE,
	name       TEXT NOT NULL,
	value      TEXT NOT NULL,
	PRIMARY KEY (vehicle_id, name)
);
`

// Open opens the SQLite database at databaseURL and checks the connection.
func Open(databaseURL string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("[db] Database opened: %s", databaseURL)
	return conn, nil
}

// EnsureSchema creates the inventory tables if they do not exist yet.
func EnsureSchema(conn *sql.DB) error {
	if _, err := conn.Exec(Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
