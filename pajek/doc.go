// Package pajek converts tabular edge lists into Pajek .net network files:
// a vertex block mapping every distinct label to a dense 1-based integer
// ID, then an arc/edge block with endpoints translated to those IDs.
//
// 🚀 What does pajek do?
//
//	Given an edgelist.Table with a citing column and a cited column, the
//	package produces network text that Pajek and compatible tools open
//	directly:
//	  • BuildIndex: deterministic label → dense-ID assignment
//	  • Write: stream the .net text onto any io.Writer, chunk by chunk
//	  • WriteFile: validate, index, create, stream, close, in one call
//
// ✨ Key properties:
//   - deterministic: identical tables yield byte-identical output, no
//     matter the chunk size or how rows were ordered when indexing
//   - bounded memory: rows pass through a fixed-size chunk buffer, with
//     an optional hard budget (WithMemoryLimit)
//   - honest failure: exhausting the budget mid edge block salvages the
//     untranslated remainder of the table (WithCheckpoint) before the
//     original error surfaces
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/pajektools/edgelist"
//	  "github.com/katalvlaran/pajektools/pajek"
//	)
//
//	tbl, _ := edgelist.ReadCSVFile("citations.csv")
//	err := pajek.WriteFile("citations.net", tbl,
//	  pajek.WithCitingColumn("PaperId"),
//	  pajek.WithCitedColumn("PaperReferenceId"),
//	)
//
// Output shape:
//
//	*Vertices <N>
//	<id> "<label>"            one line per vertex, ascending ID
//	*Arcs <E>                 ("*Edges <E>" under WithUndirected)
//	<citing> <cited> [<w>]    one line per table row, original order
//
// Vertex order is ascending label order under the configured label kind:
// lexicographic for text ("10" before "9"), numeric for int (9 before 10).
//
// Performance:
//
//   - BuildIndex: O(E) scan + O(V log V) sort, no I/O.
//   - Write: O(V + E) with at most chunk-size rows materialized at once.
//
// Known limitations, kept for output compatibility:
//
//   - Labels are quoted verbatim; an embedded '"' produces malformed
//     Pajek output. Sanitize labels upstream if your data can carry them.
//   - Distinctness is judged after label coercion, so int-kind labels
//     "007" and "7" silently collapse into one vertex.
//
// See example_test.go for runnable end-to-end conversions.
package pajek
