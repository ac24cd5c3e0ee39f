// SPDX-License-Identifier: MIT

package pajek

// Test-Bridge (White-Box) for Options Resolution
//
// Purpose:
//   - Expose the resolved internal Options to pajek_test ONLY, so defaults,
//     last-writer-wins semantics, and label derivation can be asserted
//     without widening the prod API.
//   - Export panic-message constants to avoid "magic strings" in tests.
//
// Provided Surface:
//   - OptionsSnapshot + GatherOptionsSnapshot_TestOnly: stable, read-only
//     view of internal Options after derivation.
//   - Panic*_TestOnly constants mirroring the options.go guard messages.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields. If Options
//     changes, update snapshotOf(...) accordingly (tests will catch drift).

import "github.com/katalvlaran/pajektools/edgelist"

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicCitingColumnEmpty_TestOnly  = panicCitingColumnEmpty
	PanicCitedColumnEmpty_TestOnly   = panicCitedColumnEmpty
	PanicWeightColumnEmpty_TestOnly  = panicWeightColumnEmpty
	PanicVerticesLabelEmpty_TestOnly = panicVerticesLabelEmpty
	PanicEdgesLabelEmpty_TestOnly    = panicEdgesLabelEmpty
	PanicLabelKindInvalid_TestOnly   = panicLabelKindInvalid
	PanicChunkSizeInvalid_TestOnly   = panicChunkSizeInvalid
	PanicMemoryLimitInvalid_TestOnly = panicMemoryLimitInvalid
	PanicLoggerNil_TestOnly          = panicLoggerNil
	PanicCheckpointFnNil_TestOnly    = panicCheckpointFnNil
)

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
type OptionsSnapshot struct {
	CitingColumn string
	CitedColumn  string
	WeightColumn string

	VerticesLabel string
	EdgesLabel    string
	Directed      bool
	Weighted      bool
	LabelKind     edgelist.Kind

	ChunkSize   int
	MemoryLimit int64

	CheckpointOn      bool
	CheckpointDir     string
	CheckpointFuncSet bool
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after internal
// derivation (finalizeOptions included).
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return snapshotOf(o)
}

// snapshotOf copies internal fields to a public struct. Keep in sync with
// the Options layout.
func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		CitingColumn: o.citingColumn,
		CitedColumn:  o.citedColumn,
		WeightColumn: o.weightColumn,

		VerticesLabel: o.verticesLabel,
		EdgesLabel:    o.edgesLabel,
		Directed:      o.directed,
		Weighted:      o.weighted,
		LabelKind:     o.labelKind,

		ChunkSize:   o.chunkSize,
		MemoryLimit: o.memoryLimit,

		CheckpointOn:      o.checkpointOn,
		CheckpointDir:     o.checkpointDir,
		CheckpointFuncSet: o.checkpointFunc != nil,
	}
}
