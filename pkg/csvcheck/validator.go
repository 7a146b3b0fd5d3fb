// Package csvcheck validates that files still parse as CSV after an edit.
package csvcheck

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmpty is returned when the input contains no records at all.
	ErrEmpty = errors.New("CSV file is empty")
	// ErrTooManyFields is wrapped in a *csv.ParseError when a data row is wider than the header.
	ErrTooManyFields = errors.New("too many fields")
	// ErrUnterminatedQuote is wrapped in a *csv.ParseError when input ends inside a quoted field.
	ErrUnterminatedQuote = errors.New("EOF inside quoted field")
	// ErrInvalidEncoding is wrapped in a *csv.ParseError when a field is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid UTF-8")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Result is the outcome of validating a single file.
type Result struct {
	OK      bool
	Message string
	Rows    int // data rows, header excluded
	Columns int
	Err     error
}

// Validate parses the file at path as CSV and classifies the outcome.
func Validate(path string) Result {
	f, err := os.Open(path) // #nosec G304 - path comes from the hook payload
	if err != nil {
		return failure(err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	rows, columns, err := Parse(f)
	if err != nil {
		return failure(err)
	}
	return Result{
		OK:      true,
		Message: fmt.Sprintf("Valid CSV: %d rows, %d columns", rows, columns),
		Rows:    rows,
		Columns: columns,
	}
}

// Parse reads r to the end as CSV with a header row.
//
// Blank and whitespace-only lines are skipped and a leading UTF-8 BOM is
// ignored. Quotes are only special at the start of a field, so a stray quote
// inside a field is kept as text; a quoted field still open at EOF fails.
// Rows shorter than the header are accepted. When the first data row has
// exactly one field more than the header, the extra leading field is an
// index column and that wider shape becomes the limit for every row.
func Parse(r io.Reader) (rows, columns int, err error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return 0, 0, err
		}
	}

	quotes := &quoteTracker{line: 1}
	cr := csv.NewReader(io.TeeReader(br, quotes))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := readRecord(cr)
	if errors.Is(err, io.EOF) {
		if err := quotes.err(); err != nil {
			return 0, 0, err
		}
		return 0, 0, ErrEmpty
	}
	if err != nil {
		return 0, 0, err
	}
	if err := checkEncoding(cr, header); err != nil {
		return 0, 0, err
	}
	columns = len(header)
	width := columns

	for {
		record, err := readRecord(cr)
		if errors.Is(err, io.EOF) {
			return rows, columns, quotes.err()
		}
		if err != nil {
			return rows, columns, err
		}
		if rows == 0 && len(record) == columns+1 {
			width = columns + 1
		}
		if len(record) > width {
			line, col := cr.FieldPos(width)
			return rows, columns, &csv.ParseError{
				StartLine: line,
				Line:      line,
				Column:    col,
				Err:       fmt.Errorf("%w: expected %d, saw %d", ErrTooManyFields, width, len(record)),
			}
		}
		if err := checkEncoding(cr, record); err != nil {
			return rows, columns, err
		}
		rows++
	}
}

// readRecord returns the next record that is not a whitespace-only line.
func readRecord(cr *csv.Reader) ([]string, error) {
	for {
		record, err := cr.Read()
		// A lazily quoted field running into EOF comes back with io.EOF attached.
		if errors.Is(err, io.EOF) && len(record) > 0 {
			err = nil
		}
		if err != nil {
			return record, err
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		return record, nil
	}
}

// quoteTracker watches the raw bytes handed to the csv reader and remembers
// whether input ended inside a quoted field. A quote opens a quoted field only
// at the start of a field; inside one, "" is an escaped quote and a single
// quote closes it.
type quoteTracker struct {
	state     quoteState
	line, col int
	openLine  int
	openCol   int
}

type quoteState int

const (
	fieldStart quoteState = iota
	unquoted
	quoted
	quoteInQuoted
)

func (q *quoteTracker) Write(p []byte) (int, error) {
	for _, c := range p {
		q.col++
		switch q.state {
		case fieldStart, unquoted:
			switch {
			case c == '"' && q.state == fieldStart:
				q.state = quoted
				q.openLine, q.openCol = q.line, q.col
			case c == ',' || c == '\n':
				q.state = fieldStart
			case c != '\r':
				q.state = unquoted
			}
		case quoted:
			if c == '"' {
				q.state = quoteInQuoted
			}
		case quoteInQuoted:
			switch c {
			case '"':
				q.state = quoted
			case ',', '\n':
				q.state = fieldStart
			default:
				q.state = unquoted
			}
		}
		if c == '\n' {
			q.line++
			q.col = 0
		}
	}
	return len(p), nil
}

// err reports an unterminated quoted field once all input has been seen.
func (q *quoteTracker) err() error {
	if q.state != quoted {
		return nil
	}
	return &csv.ParseError{StartLine: q.openLine, Line: q.line, Column: q.openCol, Err: ErrUnterminatedQuote}
}

// IsStructural reports whether err describes malformed CSV content rather
// than a failure to read the file.
func IsStructural(err error) bool {
	var parseErr *csv.ParseError
	return errors.As(err, &parseErr)
}

func checkEncoding(cr *csv.Reader, record []string) error {
	for i, field := range record {
		if !utf8.ValidString(field) {
			line, col := cr.FieldPos(i)
			return &csv.ParseError{StartLine: line, Line: line, Column: col, Err: ErrInvalidEncoding}
		}
	}
	return nil
}

func failure(err error) Result {
	var msg string
	switch {
	case errors.Is(err, ErrEmpty):
		msg = ErrEmpty.Error()
	case IsStructural(err):
		msg = "CSV parse error: " + err.Error()
	default:
		msg = "Validation error: " + err.Error()
	}
	return Result{Message: msg, Err: err}
}
