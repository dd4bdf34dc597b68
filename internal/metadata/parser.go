package metadata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMissingName marks a data row without an imgName value. The caller
// counts it as a parse error and continues; it is never fatal to a table.
var ErrMissingName = errors.New("row has no imgName")

// Parser yields Records from one metadata table, lazily and in file order.
// A Parser is a single forward pass; a fresh parse needs a fresh Parser.
type Parser struct {
	r    *csv.Reader
	cols map[string]int
}

// NewParser reads the header row and maps the known columns. It fails only
// when the header itself is unreadable or lacks the imgName column; per-row
// problems surface from Next instead.
func NewParser(r io.Reader) (*Parser, error) {
	cr := csv.NewReader(r)
	// Continuation tables occasionally carry ragged rows; tolerate them and
	// let per-field defaults take over.
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	if _, ok := cols[colName]; !ok {
		return nil, fmt.Errorf("header has no %q column", colName)
	}
	return &Parser{r: cr, cols: cols}, nil
}

// Next returns the next record. io.EOF ends the sequence. [ErrMissingName]
// and *csv.ParseError mark a bad row; the parser stays usable and the caller
// should count the row and continue.
func (p *Parser) Next() (Record, error) {
	row, err := p.r.Read()
	if err != nil {
		return Record{}, err
	}

	name := strings.TrimSpace(p.field(row, colName))
	if name == "" {
		return Record{}, ErrMissingName
	}

	return Record{
		Name:         name,
		Checksum:     strings.TrimSpace(p.field(row, colChecksum)),
		OriginalDate: strings.TrimSpace(p.field(row, colDate)),
		Favorite:     parseFlag(p.field(row, colFavorite)),
		Hidden:       parseFlag(p.field(row, colHidden)),
		Deleted:      parseFlag(p.field(row, colDeleted)),
		ViewCount:    parseCount(p.field(row, colViews)),
		ImportDate:   strings.TrimSpace(p.field(row, colImported)),
	}, nil
}

// field returns the named column of row, or "" when the column is absent
// from the header or the row is too short.
func (p *Parser) field(row []string, col string) string {
	i, ok := p.cols[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseFlag interprets the export's yes/no flag strings. Anything other
// than "yes" (any case) is false.
func parseFlag(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}

// parseCount parses a non-negative integer; absent or malformed values
// default to 0.
func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
