// Package ingestion turns the CSV text of a published sheet into typed records.
//
// Decoding is line oriented: every non-blank line is one row, the first
// non-blank line is the header, and a line that fails to decode is reported
// and skipped without affecting its neighbours.
package ingestion

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrNoHeader          = errors.New("sheet has no header line")
	ErrUnterminatedQuote = errors.New("unterminated quoted field")
	ErrUnexpectedQuote   = errors.New("unexpected quote in field")
)

// Row is one decoded, still untyped line of a sheet
type Row struct {
	// Line is the 1-based line number in the payload, header included
	Line   int
	Fields []string
}

// Field returns the field at index i, or "" when the row is shorter
func (r Row) Field(i int) string {
	if i < 0 || i >= len(r.Fields) {
		return ""
	}
	return r.Fields[i]
}

// LineError describes a line that could not be decoded
type LineError struct {
	Line int
	Err  error
}

// Table is the output of Decode
type Table struct {
	HeaderLine int
	Header     []string
	Rows       []Row
	Errors     []LineError
}

// Decode splits text into rows. The header row is excluded from Rows and its
// width defines the width of every row: shorter rows are padded with empty
// fields so positional indices stay stable.
func Decode(text string) (*Table, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	table := &Table{}
	headerSeen := false

	for i, line := range lines {
		lineNo := i + 1
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields, err := SplitLine(line)
		if !headerSeen {
			if err != nil {
				return nil, &LineError{Line: lineNo, Err: err}
			}
			table.Header = fields
			table.HeaderLine = lineNo
			headerSeen = true
			continue
		}

		if err != nil {
			table.Errors = append(table.Errors, LineError{Line: lineNo, Err: err})
			continue
		}

		for len(fields) < len(table.Header) {
			fields = append(fields, "")
		}
		table.Rows = append(table.Rows, Row{Line: lineNo, Fields: fields})
	}

	if !headerSeen {
		return nil, ErrNoHeader
	}

	return table, nil
}

func (e *LineError) Error() string {
	return "line " + strconv.Itoa(e.Line) + ": " + e.Err.Error()
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// SplitLine splits one CSV line on commas. A field wrapped in double quotes may
// contain commas, and "" inside it stands for a literal quote. Unquoted fields
// are trimmed; quoted fields keep their inner whitespace.
func SplitLine(line string) ([]string, error) {
	var (
		fields   []string
		buf      strings.Builder
		inQuotes bool
		quoted   bool
		closed   bool
	)

	flush := func() {
		value := buf.String()
		if !quoted {
			value = strings.TrimSpace(value)
		}
		fields = append(fields, value)
		buf.Reset()
		quoted = false
		closed = false
	}

	for i := 0; i < len(line); i++ {
		ch := line[i]

		if inQuotes {
			if ch == '"' {
				if i+1 < len(line) && line[i+1] == '"' {
					buf.WriteByte('"')
					i++
					continue
				}
				inQuotes = false
				closed = true
				continue
			}
			buf.WriteByte(ch)
			continue
		}

		switch {
		case ch == ',':
			flush()
		case ch == '"':
			if closed || strings.TrimSpace(buf.String()) != "" {
				return nil, ErrUnexpectedQuote
			}
			buf.Reset()
			inQuotes = true
			quoted = true
		case closed:
			// only whitespace may follow a closing quote
			if ch != ' ' && ch != '\t' {
				return nil, ErrUnexpectedQuote
			}
		default:
			buf.WriteByte(ch)
		}
	}

	if inQuotes {
		return nil, ErrUnterminatedQuote
	}
	flush()

	return fields, nil
}
