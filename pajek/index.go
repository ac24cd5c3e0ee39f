// SPDX-License-Identifier: MIT

// Package pajek: deterministic vertex indexing.
// This file builds the label → dense-ID assignment every .net file starts
// from: distinct endpoint labels, coerced to the configured label kind,
// sorted ascending under that kind, numbered 1..N.
package pajek

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/pajektools/edgelist"
)

// VertexRecord pairs a dense 1-based vertex ID with the canonical label
// text exactly as the vertex block quotes it.
type VertexRecord struct {
	ID   int64
	Name string
}

// VertexIndex is the deterministic label→ID assignment for one edge table:
// records in ascending ID order plus an O(1) amortized lookup keyed by
// label under the kind the index was built with.
type VertexIndex struct {
	kind    edgelist.Kind
	records []VertexRecord
	byText  map[string]int64 // populated when kind == KindText
	byInt   map[int64]int64  // populated when kind == KindInt
}

// NumVertices returns N, the number of distinct labels.
func (ix *VertexIndex) NumVertices() int { return len(ix.records) }

// Kind returns the label kind the index was built under.
func (ix *VertexIndex) Kind() edgelist.Kind { return ix.kind }

// Records returns the vertex records in ascending ID order (IDs are exactly
// 1..N). The slice is shared; treat it as read-only.
func (ix *VertexIndex) Records() []VertexRecord { return ix.records }

// Lookup resolves a label, given as its canonical text, to its dense ID.
// Under KindInt the text parses base-10 first, so "007" resolves to the
// same ID as "7"; unparsable text is simply not found.
func (ix *VertexIndex) Lookup(label string) (int64, bool) {
	if ix.kind == edgelist.KindInt {
		v, err := strconv.ParseInt(label, 10, 64)
		if err != nil {
			return 0, false
		}
		id, ok := ix.byInt[v]
		return id, ok
	}
	id, ok := ix.byText[label]
	return id, ok
}

// BuildIndex scans the citing and cited columns of t and assigns a dense
// 1-based ID to every distinct label.
// Implementation:
//   - Stage 1: resolve both endpoint columns (ErrMissingColumn) and refuse
//     float columns (ErrLabelKind).
//   - Stage 2: coerce every endpoint to the configured label kind
//     (WithLabelKind; default KindText) and collect the distinct set.
//   - Stage 3: sort ascending under the kind's order, lexicographic for
//     text, numeric for int; number 1..N; build the lookup.
//
// Behavior highlights:
//   - Deterministic: row order never influences the assignment, only the
//     label set does.
//   - Distinctness is judged after coercion; under KindInt the spellings
//     "007" and "7" collapse into one vertex, silently.
//   - t is never mutated (edgelist tables are immutable by construction).
//
// Errors:
//   - ErrNilTable, ErrMissingColumn, ErrLabelKind; ErrCellParse (from
//     edgelist) when a text cell refuses the int coercion.
//
// Complexity:
//   - Time O(E + V log V), Space O(V).
func BuildIndex(t *edgelist.Table, opts ...Option) (*VertexIndex, error) {
	o := gatherOptions(opts...)
	ix, err := buildIndexWith(t, &o)
	if err != nil {
		return nil, fmt.Errorf("BuildIndex: %w", err)
	}
	return ix, nil
}

// buildIndexWith is the un-prefixed core shared by BuildIndex and WriteFile.
func buildIndexWith(t *edgelist.Table, o *Options) (*VertexIndex, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	citing, err := columnOrMissing(t, o.citingColumn, "citing")
	if err != nil {
		return nil, err
	}
	cited, err := columnOrMissing(t, o.citedColumn, "cited")
	if err != nil {
		return nil, err
	}
	for _, col := range []*edgelist.Column{citing, cited} {
		if err = checkLabelColumn(col); err != nil {
			return nil, err
		}
	}

	if o.labelKind == edgelist.KindInt {
		return buildIntIndex(citing, cited)
	}
	return buildTextIndex(citing, cited)
}

// buildTextIndex deduplicates canonical text and orders lexicographically.
func buildTextIndex(citing, cited *edgelist.Column) (*VertexIndex, error) {
	seen := make(map[string]struct{}, citing.Len()+cited.Len())
	for _, col := range []*edgelist.Column{citing, cited} {
		for i := 0; i < col.Len(); i++ {
			seen[col.TextAt(i)] = struct{}{}
		}
	}

	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	records := make([]VertexRecord, len(labels))
	byText := make(map[string]int64, len(labels))
	for i, label := range labels {
		id := int64(i + 1)
		records[i] = VertexRecord{ID: id, Name: label}
		byText[label] = id
	}
	return &VertexIndex{kind: edgelist.KindText, records: records, byText: byText}, nil
}

// buildIntIndex deduplicates parsed int64 values and orders numerically.
func buildIntIndex(citing, cited *edgelist.Column) (*VertexIndex, error) {
	seen := make(map[int64]struct{}, citing.Len()+cited.Len())
	for _, col := range []*edgelist.Column{citing, cited} {
		for i := 0; i < col.Len(); i++ {
			v, err := col.IntAt(i)
			if err != nil {
				return nil, err
			}
			seen[v] = struct{}{}
		}
	}

	labels := make([]int64, 0, len(seen))
	for v := range seen {
		labels = append(labels, v)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	records := make([]VertexRecord, len(labels))
	byInt := make(map[int64]int64, len(labels))
	for i, v := range labels {
		id := int64(i + 1)
		records[i] = VertexRecord{ID: id, Name: strconv.FormatInt(v, 10)}
		byInt[v] = id
	}
	return &VertexIndex{kind: edgelist.KindInt, records: records, byInt: byInt}, nil
}

// columnOrMissing fetches a configured column, swapping the table-layer
// not-found error for the converter's schema sentinel.
func columnOrMissing(t *edgelist.Table, name, role string) (*edgelist.Column, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, fmt.Errorf("%s column %q: %w", role, name, ErrMissingColumn)
	}
	return col, nil
}

// checkLabelColumn refuses endpoint columns whose kind cannot carry labels.
func checkLabelColumn(col *edgelist.Column) error {
	if k := col.Kind(); k != edgelist.KindText && k != edgelist.KindInt {
		return fmt.Errorf("column %q is %s: %w", col.Name(), k, ErrLabelKind)
	}
	return nil
}
