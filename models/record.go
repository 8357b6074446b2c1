// Package models defines the shared data types of the pipeline.
package models

import "strconv"

// Record is one normalized entry as extracted from a source block.
// Fields are kept as strings: the normalize pass assigns line chunks
// positionally and performs no numeric or enum validation.
type Record struct {
	Year   string
	Name   string
	Gender string
	Count  string
}

// Header returns the column names of the flat file, in field order.
func Header() []string {
	return []string{"year", "name", "gender", "count"}
}

// Fields returns the record as a CSV row in header order.
func (r Record) Fields() []string {
	return []string{r.Year, r.Name, r.Gender, r.Count}
}

// Row is the typed view of a record used by the analysis layer.
// Year and Count are parsed when the flat file is read back, not when
// records are produced.
type Row struct {
	Year   int
	Name   string
	Gender string
	Count  int
}

// ParseRow converts a normalized record into a typed row.
func ParseRow(r Record) (Row, error) {
	year, err := strconv.Atoi(r.Year)
	if err != nil {
		return Row{}, err
	}
	count, err := strconv.Atoi(r.Count)
	if err != nil {
		return Row{}, err
	}
	return Row{Year: year, Name: r.Name, Gender: r.Gender, Count: count}, nil
}
