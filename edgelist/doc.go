// Package edgelist models a tabular edge list as an immutable, columnar
// table: named, homogeneously typed columns of equal length.
//
// What:
//
//   - Column: a typed value vector (text, int64, or float64 cells) with
//     coercing accessors, so callers pick the representation they need.
//   - Table: an ordered set of equal-length Columns with O(1) name lookup
//     and zero-copy row slicing.
//   - ReadCSV / ReadCSVFile / WriteCSV: delimited-text ingestion and
//     emission on encoding/csv.
//
// Why:
//
//   - Converters downstream (see pajek) need column access by name, a row
//     count, typed cell access, and row windows; nothing more. Keeping the
//     table abstraction this narrow keeps every consumer storage-agnostic.
//   - Immutability turns "the input is never mutated" from a promise into
//     a structural guarantee.
//
// Complexity:
//
//   - Column / HasColumn: O(1). Slice: O(C) for C columns (views, no copy).
//   - ReadCSV / WriteCSV: O(cells).
//
// Errors:
//
//   - ErrNoColumns, ErrEmptyColumnName, ErrDuplicateColumn,
//     ErrLengthMismatch, ErrColumnNotFound: table construction and lookup.
//   - ErrRowRange: Slice bounds.
//   - ErrKindMismatch, ErrCellParse: typed access and typed CSV columns.
//   - ErrEmptyInput: CSV stream without a header record.
package edgelist
