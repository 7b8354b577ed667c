package inventory

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d-one-motors/site/db"
	"github.com/d-one-motors/site/vehicle"
)

var vehicleColumns = []string{"id", "brand", "model", "category", "year", "price", "tag", "power",
	"engine", "transmission", "drivetrain", "fuel", "color", "interior", "mileage", "featured", "description"}

func TestLoadDB(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM vehicles ORDER BY position")).
		WillReturnRows(sqlmock.NewRows(vehicleColumns).
			AddRow("g63", "Mercedes-AMG", "G 63", "SUV", 2024, 235000, "New", "585 hp", "4.0L V8",
				"9G", "4MATIC", "Petrol", "Black", "Red", "0 km", 1, "Icon.").
			AddRow("k9", "Kia", "K9", "Sedan", 2022, 52000, "Value", "365 hp", "3.3L V6",
				"8AT", "AWD", "Petrol", "White", "Brown", "24,000 km", 0, "Value."))

	mock.ExpectQuery(regexp.QuoteMeta("FROM vehicle_images")).
		WillReturnRows(sqlmock.NewRows([]string{"vehicle_id", "url"}).
			AddRow("g63", "/g63-1.jpg").
			AddRow("g63", "/g63-2.jpg").
			AddRow("k9", "/k9.jpg").
			AddRow("orphan", "/orphan.jpg"))

	mock.ExpectQuery(regexp.QuoteMeta("FROM vehicle_highlights")).
		WillReturnRows(sqlmock.NewRows([]string{"vehicle_id", "label"}).
			AddRow("g63", "Locking Differentials"))

	mock.ExpectQuery(regexp.QuoteMeta("FROM vehicle_specs")).
		WillReturnRows(sqlmock.NewRows([]string{"vehicle_id", "name", "value"}).
			AddRow("g63", "acceleration", "4.5 s"))

	vehicles, err := LoadDB(conn)
	require.NoError(t, err)
	require.Len(t, vehicles, 2)

	assert.Equal(t, "g63", vehicles[0].ID)
	assert.True(t, vehicles[0].Featured)
	assert.Equal(t, 235000, vehicles[0].Price)
	assert.Equal(t, []string{"/g63-1.jpg", "/g63-2.jpg"}, vehicles[0].Gallery)
	assert.Equal(t, []string{"Locking Differentials"}, vehicles[0].Highlights)
	assert.Equal(t, map[string]string{"acceleration": "4.5 s"}, vehicles[0].Specs)

	assert.Equal(t, "k9", vehicles[1].ID)
	assert.False(t, vehicles[1].Featured)
	assert.Equal(t, []string{"/k9.jpg"}, vehicles[1].Gallery)
	assert.Nil(t, vehicles[1].Specs)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadDBQueryError(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectQuery("FROM vehicles").WillReturnError(assert.AnError)

	_, err = LoadDB(conn)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	v := vehicle.Vehicle{
		ID: "911", Brand: "Porsche", Model: "911", Category: "Coupe", Year: 2024, Price: 248000,
		Highlights: []string{"Sport Chrono"},
		Specs:      map[string]string{"range": "n/a", "acceleration": "2.7 s"},
		Gallery:    []string{"/a.jpg", "/b.jpg"},
		Featured:   true,
	}

	mock.ExpectBegin()
	for _, table := range []string{"vehicle_specs", "vehicle_highlights", "vehicle_images", "vehicles"} {
		mock.ExpectExec("DELETE FROM " + table).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vehicles")).
		WithArgs("911", 0, "Porsche", "911", "Coupe", 2024, 248000, "", "", "", "", "", "", "", "", "", 1, "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vehicle_images")).
		WithArgs("911", 0, "/a.jpg").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vehicle_images")).
		WithArgs("911", 1, "/b.jpg").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vehicle_highlights")).
		WithArgs("911", 0, "Sport Chrono").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vehicle_specs")).
		WithArgs("911", "acceleration", "2.7 s").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vehicle_specs")).
		WithArgs("911", "range", "n/a").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	require.NoError(t, Save(conn, []vehicle.Vehicle{v}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRollsBackOnError(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM vehicle_specs").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err = Save(conn, []vehicle.Vehicle{{ID: "x"}})
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRoundTrip(t *testing.T) {
	conn, err := db.Open(":memory:")
	require.NoError(t, err)
	defer conn.Close()
	conn.SetMaxOpenConns(1)
	require.NoError(t, db.EnsureSchema(conn))

	original, err := LoadEmbedded()
	require.NoError(t, err)

	require.NoError(t, Save(conn, original))
	loaded, err := LoadDB(conn)
	require.NoError(t, err)

	if diff := cmp.Diff(original, loaded, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
