// Package namezip reads the downloaded names archive and exposes its
// per-year text members as source blocks.
package namezip

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
)

// yearOffset and yearLen locate the 4-character year label inside a
// member name of the form "yobYYYY.txt".
const (
	yearOffset = 3
	yearLen    = 4
)

// Block is one qualifying archive member: a year-labeled text file.
type Block struct {
	Name  string
	Lines []string
}

// Year extracts the 4-character year label from the block's name.
func (b Block) Year() string {
	return YearLabel(b.Name)
}

// YearLabel returns the fixed-position year substring of a member name.
// Names shorter than the label window yield an empty string.
func YearLabel(name string) string {
	if len(name) < yearOffset+yearLen {
		return ""
	}
	return name[yearOffset : yearOffset+yearLen]
}

// Qualifies reports whether a member name matches the per-year naming
// convention. The archive ships one PDF alongside the yearly text
// files; anything without the .txt marker is skipped.
func Qualifies(name string) bool {
	return strings.Contains(name, ".txt")
}

// Open reads the archive at path and returns its qualifying members as
// blocks, in the archive's listed order.
func Open(path string) ([]Block, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer zr.Close()

	return readBlocks(&zr.Reader)
}

func readBlocks(zr *zip.Reader) ([]Block, error) {
	var blocks []Block
	for _, member := range zr.File {
		if !Qualifies(member.Name) {
			continue
		}

		rc, err := member.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open member %s: %w", member.Name, err)
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read member %s: %w", member.Name, err)
		}

		blocks = append(blocks, Block{
			Name:  member.Name,
			Lines: splitLines(string(data)),
		})
	}
	return blocks, nil
}

// splitLines splits member text into lines, tolerating CRLF endings and
// a trailing newline.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
