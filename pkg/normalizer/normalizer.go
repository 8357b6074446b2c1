// Package normalizer flattens year-labeled source blocks into uniform
// (year, name, gender, count) records.
package normalizer

import (
	"fmt"
	"strings"

	"namefreq/models"
	"namefreq/pkg/namezip"
)

// fieldCount is the expected number of comma-separated chunks per line.
const fieldCount = 3

// Normalize turns the blocks into one ordered record sequence. Each
// line becomes exactly one record tagged with its block's year label;
// fields are assigned positionally as strings, without validation.
//
// A line that does not split into exactly three chunks aborts the whole
// pass: there is no per-line skip or partial-success mode.
func Normalize(blocks []namezip.Block) ([]models.Record, error) {
	var records []models.Record
	for _, block := range blocks {
		blockRecords, err := NormalizeBlock(block)
		if err != nil {
			return nil, err
		}
		records = append(records, blockRecords...)
	}
	return records, nil
}

// NormalizeBlock normalizes the lines of a single block. Blank lines
// produce no record.
func NormalizeBlock(block namezip.Block) ([]models.Record, error) {
	year := block.Year()

	records := make([]models.Record, 0, len(block.Lines))
	for i, line := range block.Lines {
		if line == "" {
			continue
		}

		chunks := strings.Split(line, ",")
		if len(chunks) != fieldCount {
			return nil, fmt.Errorf("malformed line %d in %s: got %d fields, want %d",
				i+1, block.Name, len(chunks), fieldCount)
		}

		records = append(records, models.Record{
			Year:   year,
			Name:   chunks[0],
			Gender: chunks[1],
			Count:  chunks[2],
		})
	}
	return records, nil
}
