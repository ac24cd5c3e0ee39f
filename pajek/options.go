// SPDX-License-Identifier: MIT

// Package pajek: functional configuration for the converter surface.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants, single source of truth),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions / finalizeOptions helpers that enforce invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Column-name defaults follow the library convention (DefaultCitingColumn
//     "ID", DefaultCitedColumn "cited_ID"); cmd/pajekconvert overrides them
//     with its own bibliometric defaults at the flag layer.
//   - The edge-block label is derived unless set explicitly: "Arcs" when
//     directed (default), "Edges" when undirected, resolved once in
//     finalizeOptions so no call site re-derives it.
//   - BuildIndex and Write consume the same Options; index-only knobs are
//     ignored by the writer and vice versa, which keeps WriteFile a plain
//     composition of the two stages.
package pajek

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/pajektools/edgelist"
)

// ---------- Defaults (single source of truth) ----------

// Column naming.
const (
	// DefaultCitingColumn names the edge-origin label column.
	DefaultCitingColumn = "ID"

	// DefaultCitedColumn names the edge-target label column.
	DefaultCitedColumn = "cited_ID"

	// DefaultWeightColumn names the weight column consulted under
	// WithWeighted(); without WithWeighted() it is never read.
	DefaultWeightColumn = "weight"
)

// Output block labels.
const (
	// DefaultVerticesLabel heads the vertex block: "*Vertices <N>".
	DefaultVerticesLabel = "Vertices"

	// DefaultDirectedEdgesLabel heads the edge block of a directed network.
	DefaultDirectedEdgesLabel = "Arcs"

	// DefaultUndirectedEdgesLabel heads the edge block of an undirected network.
	DefaultUndirectedEdgesLabel = "Edges"
)

// Conversion policy.
const (
	// DefaultDirected treats edges as directed, so the edge block is "*Arcs".
	DefaultDirected = true

	// DefaultWeighted omits the weight field from edge lines.
	DefaultWeighted = false

	// DefaultLabelKind treats labels as text: lexicographic vertex order,
	// labels compared byte-for-byte.
	DefaultLabelKind = edgelist.KindText
)

// Streaming policy.
const (
	// DefaultChunkSize is the number of rows materialized per flush. Chunking
	// is observationally invisible: output bytes never depend on it.
	DefaultChunkSize = 10_000_000

	// DefaultMemoryLimit of 0 disables the chunk-buffer budget.
	DefaultMemoryLimit int64 = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCitingColumnEmpty  = "pajek: WithCitingColumn: name must be non-empty"
	panicCitedColumnEmpty   = "pajek: WithCitedColumn: name must be non-empty"
	panicWeightColumnEmpty  = "pajek: WithWeightColumn: name must be non-empty"
	panicVerticesLabelEmpty = "pajek: WithVerticesLabel: label must be non-empty"
	panicEdgesLabelEmpty    = "pajek: WithEdgesLabel: label must be non-empty"
	panicLabelKindInvalid   = "pajek: WithLabelKind: kind must be KindText or KindInt"
	panicChunkSizeInvalid   = "pajek: WithChunkSize: size must be positive"
	panicMemoryLimitInvalid = "pajek: WithMemoryLimit: bytes must be non-negative"
	panicLoggerNil          = "pajek: WithLogger: logger must be non-nil"
	panicCheckpointFnNil    = "pajek: WithCheckpointFunc: fn must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept ...Option and resolve them via gatherOptions.
type Options struct {
	// schema
	citingColumn string // DefaultCitingColumn
	citedColumn  string // DefaultCitedColumn
	weightColumn string // DefaultWeightColumn; read only when weighted

	// output shape
	verticesLabel string // DefaultVerticesLabel
	edgesLabel    string // "" ⇒ derived from directed in finalizeOptions
	directed      bool   // DefaultDirected
	weighted      bool   // DefaultWeighted
	labelKind     edgelist.Kind

	// streaming
	chunkSize   int   // DefaultChunkSize
	memoryLimit int64 // DefaultMemoryLimit; 0 = unlimited

	// salvage on exhaustion
	checkpointOn   bool
	checkpointDir  string
	checkpointFunc CheckpointFunc

	// diagnostics
	logger *log.Logger
}

// ---------- Constructors (WithX) ----------

// WithCitingColumn names the edge-origin label column.
// Implementation:
//   - Stage 1: validate name is non-empty.
//   - Stage 2: return a setter writing it into Options.
//
// Errors:
//   - Panics with a stable message on an empty name.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithCitingColumn(name string) Option {
	if name == "" {
		panic(panicCitingColumnEmpty)
	}
	return func(o *Options) { o.citingColumn = name }
}

// WithCitedColumn names the edge-target label column.
// Errors:
//   - Panics with a stable message on an empty name.
func WithCitedColumn(name string) Option {
	if name == "" {
		panic(panicCitedColumnEmpty)
	}
	return func(o *Options) { o.citedColumn = name }
}

// WithWeightColumn names the weight column consulted under WithWeighted().
// Setting the name alone does not enable weights.
// Errors:
//   - Panics with a stable message on an empty name.
func WithWeightColumn(name string) Option {
	if name == "" {
		panic(panicWeightColumnEmpty)
	}
	return func(o *Options) { o.weightColumn = name }
}

// WithWeighted appends the weight column's canonical text as a third field
// on every edge line.
// Behavior highlights:
//   - The weight cell is rendered, never parsed or translated; a float 1
//     prints "1.0", an int 7 prints "7", text passes verbatim.
//   - The weight column must exist once enabled (ErrMissingColumn otherwise).
func WithWeighted() Option {
	return func(o *Options) { o.weighted = true }
}

// WithUnweighted restores two-field edge lines (the default).
func WithUnweighted() Option {
	return func(o *Options) { o.weighted = false }
}

// WithDirected marks the network directed: the edge block header becomes
// "*Arcs" unless WithEdgesLabel overrode it. This is the default.
func WithDirected() Option {
	return func(o *Options) { o.directed = true }
}

// WithUndirected marks the network undirected: the edge block header
// becomes "*Edges" unless WithEdgesLabel overrode it.
// Behavior highlights:
//   - Affects the header only; edge rows are emitted exactly as given,
//     never mirrored or deduplicated.
func WithUndirected() Option {
	return func(o *Options) { o.directed = false }
}

// WithVerticesLabel overrides the vertex block label ("*<label> <N>").
// Errors:
//   - Panics with a stable message on an empty label.
func WithVerticesLabel(label string) Option {
	if label == "" {
		panic(panicVerticesLabelEmpty)
	}
	return func(o *Options) { o.verticesLabel = label }
}

// WithEdgesLabel overrides the edge block label, suppressing the
// Arcs/Edges derivation from directedness.
// Errors:
//   - Panics with a stable message on an empty label.
func WithEdgesLabel(label string) Option {
	if label == "" {
		panic(panicEdgesLabelEmpty)
	}
	return func(o *Options) { o.edgesLabel = label }
}

// WithLabelKind sets the dtype labels are coerced to before dedup, sort,
// and ID assignment.
// Implementation:
//   - Stage 1: validate kind is KindText or KindInt.
//   - Stage 2: return a setter writing it into Options.
//
// Behavior highlights:
//   - KindText: lexicographic vertex order ("10" before "9").
//   - KindInt: numeric vertex order (9 before 10); text cells parse base-10
//     and distinct spellings of one value ("007", "7") collapse.
//   - Write translates with the kind the index was built under, so this
//     option matters to BuildIndex and WriteFile, not to a bare Write.
//
// Errors:
//   - Panics with a stable message on any other kind (floats can never be
//     labels; see ErrLabelKind for the data-side counterpart).
//
// Complexity:
//   - Time O(1), Space O(1).
func WithLabelKind(k edgelist.Kind) Option {
	if k != edgelist.KindText && k != edgelist.KindInt {
		panic(panicLabelKindInvalid)
	}
	return func(o *Options) { o.labelKind = k }
}

// WithChunkSize sets how many rows are materialized per flush.
// Implementation:
//   - Stage 1: validate size is positive.
//   - Stage 2: return a setter writing it into Options.
//
// Behavior highlights:
//   - Output bytes are identical for every positive size; chunking only
//     bounds the buffer between flushes.
//
// Errors:
//   - Panics with a stable message when size < 1.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Lower this together with WithMemoryLimit when converting on small
//     heaps; raise it for fewer, larger writes on fast disks.
func WithChunkSize(size int) Option {
	if size < 1 {
		panic(panicChunkSizeInvalid)
	}
	return func(o *Options) { o.chunkSize = size }
}

// WithMemoryLimit bounds the materialized chunk buffer in bytes; 0 disables
// the budget (default).
// Behavior highlights:
//   - Exceeding the budget surfaces ErrResourceExhausted at the same points
//     an allocation failure would interrupt the stream, which is what makes
//     the salvage path (WithCheckpoint) testable and portable.
//
// Errors:
//   - Panics with a stable message when bytes < 0.
func WithMemoryLimit(bytes int64) Option {
	if bytes < 0 {
		panic(panicMemoryLimitInvalid)
	}
	return func(o *Options) { o.memoryLimit = bytes }
}

// WithCheckpoint enables salvage-on-exhaustion: when the memory budget dies
// during the edge block, the untranslated remainder of the table is written
// as CSV to dir/CheckpointFilename before the original error returns.
// Behavior highlights:
//   - Best effort: a salvage failure is logged at warn level and swallowed,
//     never masking ErrResourceExhausted.
//   - dir may be empty under WriteFile, which resolves it to the output
//     file's directory; a bare Write with an empty dir logs and skips.
//   - Vertex-block exhaustion never checkpoints: those rows are all still
//     in the input table, untouched.
func WithCheckpoint(dir string) Option {
	return func(o *Options) {
		o.checkpointOn = true
		o.checkpointDir = dir
	}
}

// WithCheckpointFunc installs a custom salvage hook, taking precedence over
// the WithCheckpoint directory policy. Same best-effort contract: fn's
// error is logged and swallowed.
// Errors:
//   - Panics with a stable message on a nil fn.
func WithCheckpointFunc(fn CheckpointFunc) Option {
	if fn == nil {
		panic(panicCheckpointFnNil)
	}
	return func(o *Options) {
		o.checkpointOn = true
		o.checkpointFunc = fn
	}
}

// WithLogger routes state transitions (debug) and salvage diagnostics
// (warn) to l. The default logger discards everything, keeping the library
// silent unless asked.
// Errors:
//   - Panics with a stable message on a nil logger.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}
	return func(o *Options) { o.logger = l }
}

// ---------- Option Resolution ----------

// gatherOptions applies user-provided setters on top of defaults and
// finalizes derived invariants. This is the canonical internal entry for
// every public function consuming ...Option.
// Implementation:
//   - Stage 1: start from documented defaults (Default* constants).
//   - Stage 2: apply setters in order (last-writer-wins).
//   - Stage 3: finalizeOptions derives the edge-block label.
//
// Determinism:
//   - Stable for a given sequence of setters.
//
// Complexity:
//   - Time O(k) for k setters, Space O(1).
func gatherOptions(user ...Option) Options {
	o := Options{
		citingColumn:  DefaultCitingColumn,
		citedColumn:   DefaultCitedColumn,
		weightColumn:  DefaultWeightColumn,
		verticesLabel: DefaultVerticesLabel,
		directed:      DefaultDirected,
		weighted:      DefaultWeighted,
		labelKind:     DefaultLabelKind,
		chunkSize:     DefaultChunkSize,
		memoryLimit:   DefaultMemoryLimit,
		logger:        log.New(io.Discard),
		// edgesLabel derived in finalizeOptions unless set explicitly
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	finalizeOptions(&o)

	return o
}

// finalizeOptions enforces derived invariants in exactly one place.
// Today that is the edge-block label: explicit WithEdgesLabel wins,
// otherwise directedness picks Arcs or Edges.
func finalizeOptions(o *Options) {
	if o.edgesLabel == "" {
		if o.directed {
			o.edgesLabel = DefaultDirectedEdgesLabel
		} else {
			o.edgesLabel = DefaultUndirectedEdgesLabel
		}
	}
}
