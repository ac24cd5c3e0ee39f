package edgelist

import "errors"

var (
	// ErrNoColumns indicates a table constructed with zero columns.
	ErrNoColumns = errors.New("edgelist: table needs at least one column")
	// ErrEmptyColumnName indicates a column with an empty name.
	ErrEmptyColumnName = errors.New("edgelist: column name is empty")
	// ErrDuplicateColumn indicates two columns sharing one name.
	ErrDuplicateColumn = errors.New("edgelist: duplicate column name")
	// ErrLengthMismatch indicates columns of differing lengths.
	ErrLengthMismatch = errors.New("edgelist: columns differ in length")
	// ErrColumnNotFound indicates a lookup for a column the table lacks.
	ErrColumnNotFound = errors.New("edgelist: column not found")
	// ErrRowRange indicates Slice bounds outside [0, NumRows].
	ErrRowRange = errors.New("edgelist: row range out of bounds")
	// ErrKindMismatch indicates a typed access incompatible with the column kind.
	ErrKindMismatch = errors.New("edgelist: access incompatible with column kind")
	// ErrCellParse indicates a cell that does not parse as the requested kind.
	ErrCellParse = errors.New("edgelist: cell does not parse as requested kind")
	// ErrEmptyInput indicates a CSV stream without a header record.
	ErrEmptyInput = errors.New("edgelist: input has no header record")
)
