package edgelist

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ReadOption configures ReadCSV.
type ReadOption func(*readConfig)

type readConfig struct {
	comma rune
	kinds map[string]Kind
}

// WithComma sets the field delimiter. Default is ','.
func WithComma(r rune) ReadOption {
	return func(c *readConfig) { c.comma = r }
}

// WithColumnKind requests that the named column be parsed as k instead of
// the KindText default. Names absent from the header are ignored, so one
// option set can serve inputs with optional columns.
func WithColumnKind(name string, k Kind) ReadOption {
	return func(c *readConfig) { c.kinds[name] = k }
}

// ReadCSV parses a delimited stream into a Table. The first record is the
// header; every column is KindText unless WithColumnKind says otherwise.
//
// Errors:
//   - ErrEmptyInput when the stream has no header record.
//   - ErrEmptyColumnName / ErrDuplicateColumn on a bad header.
//   - ErrCellParse (with column name and 1-based data-row context) when a
//     typed column fails to parse.
func ReadCSV(r io.Reader, opts ...ReadOption) (*Table, error) {
	cfg := readConfig{comma: ',', kinds: make(map[string]Kind)}
	for _, opt := range opts {
		opt(&cfg)
	}

	cr := csv.NewReader(r)
	cr.Comma = cfg.comma
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("edgelist.ReadCSV: %w", ErrEmptyInput)
	}
	if err != nil {
		return nil, fmt.Errorf("edgelist.ReadCSV: header: %w", err)
	}

	// Validate the header before touching row data, so schema faults
	// surface without reading the whole stream.
	names := make([]string, len(header))
	copy(names, header)
	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("edgelist.ReadCSV: header field %d: %w", i, ErrEmptyColumnName)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("edgelist.ReadCSV: header field %q: %w", name, ErrDuplicateColumn)
		}
		seen[name] = struct{}{}
	}

	// encoding/csv pins FieldsPerRecord to the header width, so every
	// record below is guaranteed len(names) fields.
	cells := make([][]string, len(names))
	for {
		rec, rerr := cr.Read()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, fmt.Errorf("edgelist.ReadCSV: %w", rerr)
		}
		for i := range names {
			cells[i] = append(cells[i], rec[i])
		}
	}

	cols := make([]*Column, len(names))
	for i, name := range names {
		switch cfg.kinds[name] {
		case KindInt:
			vals := make([]int64, len(cells[i]))
			for row, cell := range cells[i] {
				v, perr := strconv.ParseInt(cell, 10, 64)
				if perr != nil {
					return nil, fmt.Errorf("edgelist.ReadCSV: column %q row %d (%q): %w",
						name, row+1, cell, ErrCellParse)
				}
				vals[row] = v
			}
			cols[i] = &Column{name: name, kind: KindInt, ints: vals}
		case KindFloat:
			vals := make([]float64, len(cells[i]))
			for row, cell := range cells[i] {
				v, perr := strconv.ParseFloat(cell, 64)
				if perr != nil {
					return nil, fmt.Errorf("edgelist.ReadCSV: column %q row %d (%q): %w",
						name, row+1, cell, ErrCellParse)
				}
				vals[row] = v
			}
			cols[i] = &Column{name: name, kind: KindFloat, floats: vals}
		default:
			cols[i] = &Column{name: name, kind: KindText, text: cells[i]}
		}
	}
	return New(cols...)
}

// ReadCSVFile opens path and delegates to ReadCSV.
func ReadCSVFile(path string, opts ...ReadOption) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist.ReadCSVFile: %w", err)
	}
	defer f.Close()

	t, err := ReadCSV(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("edgelist.ReadCSVFile %s: %w", path, err)
	}
	return t, nil
}

// WriteCSV emits t as comma-delimited text: header record first, then one
// record per row with cells rendered via TextAt. Kinds are not recorded;
// a consumer re-reading the file declares them again with WithColumnKind.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns()); err != nil {
		return fmt.Errorf("edgelist.WriteCSV: header: %w", err)
	}
	rec := make([]string, len(t.cols))
	for row := 0; row < t.rows; row++ {
		for i, c := range t.cols {
			rec[i] = c.TextAt(row)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("edgelist.WriteCSV: row %d: %w", row, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("edgelist.WriteCSV: flush: %w", err)
	}
	return nil
}
