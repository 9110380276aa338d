package core

// streaming.go reads CSV exports one record at a time.
//
// NationBuilder and spreadsheet tools hand us files with a few recurring
// problems, handled here without loading the file into memory:
//
//   - UTF-8 BOM (0xEF 0xBB 0xBF) at the start of Windows exports
//   - Invalid UTF-8 sequences, replaced with U+FFFD per cell
//   - Ragged rows (fewer cells than the header)
//
// Empty lines are dropped by encoding/csv. A row of empty cells (",,,") is
// still a row: it gets a number and reads as all-empty fields.

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrEmptyFile is returned by ReadHeader when the input has no header row.
var ErrEmptyFile = errors.New("empty file: no header row")

// SkipBOM returns a reader positioned after a leading UTF-8 byte order mark.
func SkipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(3); err == nil && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = br.Discard(3)
	}
	return br
}

// Reader yields data rows bound to their header.
type Reader struct {
	csv    *csv.Reader
	header []string
	index  HeaderIndex
	rows   int
}

// NewReader wraps r for record-at-a-time reading and consumes the header row.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(SkipBOM(r))
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = false

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("invalid csv header: %w", err)
	}
	sanitizeRecord(header)

	return &Reader{
		csv:    cr,
		header: header,
		index:  MakeHeaderIndex(header),
	}, nil
}

// Header returns the header cells as they appeared in the file.
func (r *Reader) Header() []string {
	return r.header
}

// Index returns the header index used to bind rows.
func (r *Reader) Index() HeaderIndex {
	return r.index
}

// Next returns the next data row. It returns io.EOF when the input is
// exhausted.
func (r *Reader) Next() (Row, error) {
	for {
		record, err := r.csv.Read()
		if err != nil {
			if err == io.EOF {
				return Row{}, io.EOF
			}
			return Row{}, fmt.Errorf("invalid csv after row %d: %w", r.rows, err)
		}
		if len(record) == 0 {
			continue
		}

		sanitizeRecord(record)
		r.rows++
		line, _ := r.csv.FieldPos(0)
		return Row{
			Number: r.rows,
			Line:   line,
			Cells:  record,
			Header: r.index,
		}, nil
	}
}

// sanitizeRecord replaces invalid UTF-8 sequences in place.
func sanitizeRecord(record []string) {
	for i, cell := range record {
		if !utf8.ValidString(cell) {
			record[i] = strings.ToValidUTF8(cell, "\uFFFD")
		}
	}
}
