// SPDX-License-Identifier: MIT
// Package pajek: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the pajek
// package. Entry points MUST surface these sentinels (wrapped with context via
// fmt.Errorf("...: %w", ErrX) at the outer boundary) and tests MUST match them
// via errors.Is. Panics are reserved for programmer errors in option
// constructors (WithX...).

package pajek

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "pajek: ..." so one grep finds all converter
// failures in mixed logs.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil arguments -> schema (missing column, label kind) -> cell coercion ->
// translation (unresolved label) -> resource budget -> stream I/O.

var (
	// ErrNilTable indicates a nil *edgelist.Table argument.
	ErrNilTable = errors.New("pajek: table is nil")

	// ErrNilIndex indicates a nil *VertexIndex argument.
	ErrNilIndex = errors.New("pajek: vertex index is nil")

	// ErrNilWriter indicates a nil output stream.
	ErrNilWriter = errors.New("pajek: writer is nil")

	// ErrMissingColumn indicates a configured citing/cited/weight column that
	// is absent from the table. Raised eagerly, before any output exists.
	ErrMissingColumn = errors.New("pajek: required column missing")

	// ErrLabelKind indicates an endpoint column whose kind can never carry
	// labels (float). Float labels are refused, not silently coerced.
	ErrLabelKind = errors.New("pajek: label column must be text or int")

	// ErrUnresolvedLabel indicates an edge endpoint with no entry in the
	// vertex lookup. The BuildIndex→Write flow cannot produce it; seeing it
	// means index and table diverged (different table, different label kind,
	// or a stale index).
	ErrUnresolvedLabel = errors.New("pajek: edge label missing from vertex index")

	// ErrResourceExhausted indicates the configured memory budget was
	// exceeded while materializing a chunk. The partially written stream is
	// not a valid .net file; see WithCheckpoint for salvaging the rows that
	// were still untranslated.
	ErrResourceExhausted = errors.New("pajek: memory budget exhausted")
)
