// Package pajektools turns tabular edge lists into Pajek .net network
// files: deterministic vertex numbering, streamed chunked output, and a
// best-effort checkpoint of untranslated rows when memory runs out.
//
// 🚀 What is pajektools?
//
//	A small, focused toolkit for converting "who cites whom" tables into
//	network files that Pajek and compatible tools can open:
//		• edgelist: typed, immutable, columnar edge tables + CSV in/out
//		• pajek: dense 1-based vertex indexing and a chunked .net writer
//		• cmd/pajekconvert: the command-line converter built on both
//
// ✨ Why pajektools?
//
//   - Deterministic: the same table always yields byte-identical output,
//     whatever chunk size the writer streams with
//   - Bounded memory: rows pass through a fixed-size chunk buffer with an
//     optional hard budget
//   - Honest failure: when the budget is exceeded mid-stream, the writer
//     checkpoints the untranslated remainder of the table, then reports
//     the original error
//
// Layout:
//
//	edgelist/         - columnar table abstraction (Kind, Column, Table, CSV)
//	pajek/            - BuildIndex, Write, WriteFile, checkpoint policies
//	cmd/pajekconvert/ - CLI: delimited edge list in, .net out
//
// Quick sketch, for edges A→B, B→C, A→C:
//
//	*Vertices 3
//	1 "A"
//	2 "B"
//	3 "C"
//	*Arcs 3
//	1 2
//	2 3
//	1 3
//
//	go get github.com/katalvlaran/pajektools
package pajektools
