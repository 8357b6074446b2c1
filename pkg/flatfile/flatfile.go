// Package flatfile persists normalized records as a delimited flat file
// and reads them back as typed rows for analysis.
package flatfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"namefreq/models"
)

// Write serializes the records to path as UTF-8 CSV: a header row
// first, then one row per record in the order given.
func Write(path string, records []models.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create flat file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(models.Header()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range records {
		if err := w.Write(r.Fields()); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush flat file: %w", err)
	}
	return nil
}

// Read parses the flat file back into typed rows, skipping the header.
// Year and count must be numeric here; this is where parsing happens,
// not during the normalize pass.
func Read(path string) ([]models.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open flat file: %w", err)
	}
	defer f.Close()

	return ReadFrom(f)
}

// ReadFrom parses rows from an already-open reader.
func ReadFrom(r io.Reader) ([]models.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(models.Header())

	// Header row.
	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("flat file is empty")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rows []models.Row
	for line := 2; ; line++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		row, err := models.ParseRow(models.Record{
			Year:   fields[0],
			Name:   fields[1],
			Gender: fields[2],
			Count:  fields[3],
		})
		if err != nil {
			return nil, fmt.Errorf("bad row at line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
