package edgelist

import "fmt"

// Table is an ordered collection of equal-length Columns with unique,
// non-empty names. The zero value is unusable; construct with New.
type Table struct {
	cols   []*Column
	byName map[string]int
	rows   int
}

// New builds a Table from cols.
//
// Errors:
//   - ErrNoColumns when cols is empty.
//   - ErrEmptyColumnName / ErrDuplicateColumn on bad names.
//   - ErrLengthMismatch when columns disagree on length.
func New(cols ...*Column) (*Table, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("edgelist.New: %w", ErrNoColumns)
	}
	t := &Table{
		cols:   make([]*Column, len(cols)),
		byName: make(map[string]int, len(cols)),
		rows:   cols[0].Len(),
	}
	for i, c := range cols {
		if c.Name() == "" {
			return nil, fmt.Errorf("edgelist.New: column %d: %w", i, ErrEmptyColumnName)
		}
		if _, dup := t.byName[c.Name()]; dup {
			return nil, fmt.Errorf("edgelist.New: column %q: %w", c.Name(), ErrDuplicateColumn)
		}
		if c.Len() != t.rows {
			return nil, fmt.Errorf("edgelist.New: column %q has %d rows, want %d: %w",
				c.Name(), c.Len(), t.rows, ErrLengthMismatch)
		}
		t.cols[i] = c
		t.byName[c.Name()] = i
	}
	return t, nil
}

// NumRows returns the row count.
func (t *Table) NumRows() int { return t.rows }

// NumColumns returns the column count.
func (t *Table) NumColumns() int { return len(t.cols) }

// Columns returns the column names in declaration order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.name
	}
	return names
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Column returns the named column, or ErrColumnNotFound.
func (t *Table) Column(name string) (*Column, error) {
	i, ok := t.byName[name]
	if !ok {
		return nil, fmt.Errorf("edgelist: column %q: %w", name, ErrColumnNotFound)
	}
	return t.cols[i], nil
}

// Slice returns a zero-copy view over rows [lo, hi). The view shares
// backing arrays with t; both remain immutable.
func (t *Table) Slice(lo, hi int) (*Table, error) {
	if lo < 0 || hi < lo || hi > t.rows {
		return nil, fmt.Errorf("edgelist.Slice: [%d, %d) of %d rows: %w", lo, hi, t.rows, ErrRowRange)
	}
	view := &Table{
		cols:   make([]*Column, len(t.cols)),
		byName: t.byName,
		rows:   hi - lo,
	}
	for i, c := range t.cols {
		view.cols[i] = c.view(lo, hi)
	}
	return view, nil
}
