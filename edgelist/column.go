package edgelist

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the cell type of a Column.
type Kind uint8

const (
	// KindText holds free-form string cells.
	KindText Kind = iota
	// KindInt holds signed 64-bit integer cells.
	KindInt
	// KindFloat holds IEEE-754 double cells.
	KindFloat
)

// String returns the lowercase kind name ("text", "int", "float").
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Column is an immutable, named, homogeneously typed value vector.
// Constructors copy their input, so a Column never aliases caller memory
// and nothing downstream can mutate a table behind the caller's back.
type Column struct {
	name   string
	kind   Kind
	text   []string
	ints   []int64
	floats []float64
}

// TextColumn returns a KindText column holding a copy of values.
func TextColumn(name string, values []string) *Column {
	c := &Column{name: name, kind: KindText, text: make([]string, len(values))}
	copy(c.text, values)
	return c
}

// IntColumn returns a KindInt column holding a copy of values.
func IntColumn(name string, values []int64) *Column {
	c := &Column{name: name, kind: KindInt, ints: make([]int64, len(values))}
	copy(c.ints, values)
	return c
}

// FloatColumn returns a KindFloat column holding a copy of values.
func FloatColumn(name string, values []float64) *Column {
	c := &Column{name: name, kind: KindFloat, floats: make([]float64, len(values))}
	copy(c.floats, values)
	return c
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Kind returns the cell type.
func (c *Column) Kind() Kind { return c.kind }

// Len returns the number of cells.
func (c *Column) Len() int {
	switch c.kind {
	case KindInt:
		return len(c.ints)
	case KindFloat:
		return len(c.floats)
	default:
		return len(c.text)
	}
}

// TextAt returns the canonical text of cell i: text cells verbatim, int
// cells in base 10, float cells in shortest round-trip form with ".0"
// forced onto integral finite values (1 → "1.0", 0.5 → "0.5").
// This is also the serialization form used by WriteCSV and downstream
// writers, so canonical text and output text can never drift apart.
func (c *Column) TextAt(i int) string {
	switch c.kind {
	case KindInt:
		return strconv.FormatInt(c.ints[i], 10)
	case KindFloat:
		return formatFloatCell(c.floats[i])
	default:
		return c.text[i]
	}
}

// IntAt returns cell i as int64. Text cells parse base-10 and yield
// ErrCellParse on garbage. Float cells refuse with ErrKindMismatch; a
// lossy float→int narrowing is never implied.
func (c *Column) IntAt(i int) (int64, error) {
	switch c.kind {
	case KindInt:
		return c.ints[i], nil
	case KindFloat:
		return 0, fmt.Errorf("edgelist: column %q: int access on float cell %d: %w", c.name, i, ErrKindMismatch)
	default:
		v, err := strconv.ParseInt(c.text[i], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("edgelist: column %q: cell %d (%q): %w", c.name, i, c.text[i], ErrCellParse)
		}
		return v, nil
	}
}

// FloatAt returns cell i as float64. Int cells widen; text cells parse
// and yield ErrCellParse on garbage.
func (c *Column) FloatAt(i int) (float64, error) {
	switch c.kind {
	case KindFloat:
		return c.floats[i], nil
	case KindInt:
		return float64(c.ints[i]), nil
	default:
		v, err := strconv.ParseFloat(c.text[i], 64)
		if err != nil {
			return 0, fmt.Errorf("edgelist: column %q: cell %d (%q): %w", c.name, i, c.text[i], ErrCellParse)
		}
		return v, nil
	}
}

// view returns a window over cells [lo, hi) sharing the backing array.
// Bounds are the caller's responsibility (Table.Slice validates them).
func (c *Column) view(lo, hi int) *Column {
	v := &Column{name: c.name, kind: c.kind}
	switch c.kind {
	case KindInt:
		v.ints = c.ints[lo:hi]
	case KindFloat:
		v.floats = c.floats[lo:hi]
	default:
		v.text = c.text[lo:hi]
	}
	return v
}

// formatFloatCell renders v in shortest round-trip form, forcing a ".0"
// suffix onto integral finite values so that a weight of 1 prints as
// "1.0", never as the integer-looking "1".
func formatFloatCell(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !math.IsInf(v, 0) && !math.IsNaN(v) && !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
