package db

import (
	"testing"

	"namefreq/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

var testRows = []models.Row{
	{Year: 1880, Name: "Mary", Gender: "F", Count: 7065},
	{Year: 1880, Name: "John", Gender: "M", Count: 9655},
	{Year: 1880, Name: "Jamie", Gender: "M", Count: 100},
	{Year: 1880, Name: "Jamie", Gender: "F", Count: 120},
	{Year: 1881, Name: "Mary", Gender: "F", Count: 6919},
	{Year: 1881, Name: "John", Gender: "M", Count: 100},
}

// loadTestRows creates a run and inserts the shared fixture rows.
func loadTestRows(t *testing.T, db *DB) int64 {
	t.Helper()

	runID, err := db.CreateRun("https://example.com/names.zip", "names.zip", "data.csv")
	if err != nil {
		t.Fatalf("CreateRun() failed: %v", err)
	}
	if err := db.InsertRecords(runID, testRows); err != nil {
		t.Fatalf("InsertRecords() failed: %v", err)
	}
	return runID
}

func TestInsertRecords(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	loadTestRows(t, db)

	n, err := db.CountRecords()
	if err != nil {
		t.Fatalf("CountRecords() failed: %v", err)
	}
	if n != len(testRows) {
		t.Errorf("CountRecords() = %d, want %d", n, len(testRows))
	}
}

func TestTotalsByYear(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	loadTestRows(t, db)

	tests := []struct {
		name   string
		gender string
		want   map[int]int
	}{
		{"both", "", map[int]int{1880: 16940, 1881: 7019}},
		{"male", "M", map[int]int{1880: 9755, 1881: 100}},
		{"female", "F", map[int]int{1880: 7185, 1881: 6919}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals, err := db.TotalsByYear(tt.gender)
			if err != nil {
				t.Fatalf("TotalsByYear(%q) failed: %v", tt.gender, err)
			}
			if len(totals) != len(tt.want) {
				t.Fatalf("got %d totals, want %d", len(totals), len(tt.want))
			}
			for _, total := range totals {
				if tt.want[total.Year] != total.Count {
					t.Errorf("total for %d = %d, want %d", total.Year, total.Count, tt.want[total.Year])
				}
			}
			// Ascending by year.
			for i := 1; i < len(totals); i++ {
				if totals[i].Year < totals[i-1].Year {
					t.Errorf("totals not sorted by year: %v", totals)
				}
			}
		})
	}
}

func TestTopNames(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	loadTestRows(t, db)

	top, err := db.TopNames("M", 1)
	if err != nil {
		t.Fatalf("TopNames() failed: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("got %d names, want 1", len(top))
	}
	if top[0].Name != "John" || top[0].Count != 9755 {
		t.Errorf("top[0] = %+v, want John -> 9755", top[0])
	}
}

func TestGenderNeutral(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	loadTestRows(t, db)

	neutral, err := db.GenderNeutral(100, 20)
	if err != nil {
		t.Fatalf("GenderNeutral() failed: %v", err)
	}
	if len(neutral) != 1 {
		t.Fatalf("got %d neutral names, want 1", len(neutral))
	}
	if neutral[0].Name != "Jamie" || neutral[0].Male != 100 || neutral[0].Female != 120 {
		t.Errorf("neutral[0] = %+v, want Jamie M=100 F=120", neutral[0])
	}

	none, err := db.GenderNeutral(500, 20)
	if err != nil {
		t.Fatalf("GenderNeutral() failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("got %d neutral names with floor 500, want 0", len(none))
	}
}

func TestUniqueNames(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	loadTestRows(t, db)

	tests := []struct {
		gender string
		want   int
	}{
		{"", 3},
		{"M", 2},
		{"F", 2},
	}

	for _, tt := range tests {
		got, err := db.UniqueNames(tt.gender)
		if err != nil {
			t.Fatalf("UniqueNames(%q) failed: %v", tt.gender, err)
		}
		if got != tt.want {
			t.Errorf("UniqueNames(%q) = %d, want %d", tt.gender, got, tt.want)
		}
	}
}
