package flatfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"namefreq/models"
)

var testRecords = []models.Record{
	{Year: "1880", Name: "Mary", Gender: "F", Count: "7065"},
	{Year: "1880", Name: "John", Gender: "M", Count: "9655"},
	{Year: "1881", Name: "Mary", Gender: "F", Count: "6919"},
	{Year: "1881", Name: "John", Gender: "M", Count: "8769"},
}

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")

	if err := Write(path, testRecords); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	rows, err := Read(path)
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}

	if len(rows) != len(testRecords) {
		t.Fatalf("got %d rows, want %d", len(rows), len(testRecords))
	}

	first := rows[0]
	if first.Year != 1880 || first.Name != "Mary" || first.Gender != "F" || first.Count != 7065 {
		t.Errorf("rows[0] = %+v, want (1880, Mary, F, 7065)", first)
	}

	// Order is preserved as written.
	wantNames := []string{"Mary", "John", "Mary", "John"}
	for i, row := range rows {
		if row.Name != wantNames[i] {
			t.Errorf("rows[%d].Name = %q, want %q", i, row.Name, wantNames[i])
		}
	}
}

func TestWrite_HeaderRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := Write(path, testRecords[:1]); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read flat file: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "year,name,gender,count" {
		t.Errorf("header = %q, want %q", lines[0], "year,name,gender,count")
	}
	if len(lines) != 2 {
		t.Errorf("got %d lines, want 2 (header + one record)", len(lines))
	}
	if lines[1] != "1880,Mary,F,7065" {
		t.Errorf("row = %q, want %q", lines[1], "1880,Mary,F,7065")
	}
}

func TestRead_RoundTripTotals(t *testing.T) {
	// Re-deriving per-year, per-gender totals from the persisted file
	// must reproduce the totals of the source records.
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := Write(path, testRecords); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	rows, err := Read(path)
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}

	type key struct {
		year   int
		gender string
	}
	got := make(map[key]int)
	for _, r := range rows {
		got[key{r.Year, r.Gender}] += r.Count
	}

	want := map[key]int{
		{1880, "F"}: 7065,
		{1880, "M"}: 9655,
		{1881, "F"}: 6919,
		{1881, "M"}: 8769,
	}
	for k, wantTotal := range want {
		if got[k] != wantTotal {
			t.Errorf("total for %d/%s = %d, want %d", k.year, k.gender, got[k], wantTotal)
		}
	}
}

func TestRead_NonNumericCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	content := "year,name,gender,count\n1880,Pat,X,notanumber\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	_, err := Read(path)
	if err == nil {
		t.Fatal("Read() succeeded on non-numeric count, want error")
	}
}

func TestRead_WrongFieldCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	content := "year,name,gender,count\n1880,Mary,F\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	_, err := Read(path)
	if err == nil {
		t.Fatal("Read() succeeded on short row, want error")
	}
}

func TestRead_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := Read(path); err == nil {
		t.Fatal("Read() succeeded on empty file, want error")
	}
}
