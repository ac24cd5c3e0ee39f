// SPDX-License-Identifier: MIT
package pajek_test

import (
	"testing"

	"github.com/katalvlaran/pajektools/edgelist"
	"github.com/katalvlaran/pajektools/pajek"
)

// ExpectPanicMessage fails the test unless fn panics with exactly want.
func ExpectPanicMessage(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q, got nil", want)
		}
		if got, ok := r.(string); !ok || got != want {
			t.Fatalf("panic mismatch: got %v, want %q", r, want)
		}
	}()
	fn()
}

// 1) TestDefaultOptions_Documented verifies gatherOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := pajek.GatherOptionsSnapshot_TestOnly()

	// schema
	if o.CitingColumn != pajek.DefaultCitingColumn {
		t.Fatalf("citingColumn default mismatch: got %q, want %q", o.CitingColumn, pajek.DefaultCitingColumn)
	}
	if o.CitedColumn != pajek.DefaultCitedColumn {
		t.Fatalf("citedColumn default mismatch: got %q, want %q", o.CitedColumn, pajek.DefaultCitedColumn)
	}
	if o.WeightColumn != pajek.DefaultWeightColumn {
		t.Fatalf("weightColumn default mismatch: got %q, want %q", o.WeightColumn, pajek.DefaultWeightColumn)
	}

	// output shape
	if o.VerticesLabel != pajek.DefaultVerticesLabel {
		t.Fatalf("verticesLabel default mismatch: got %q, want %q", o.VerticesLabel, pajek.DefaultVerticesLabel)
	}
	if o.EdgesLabel != pajek.DefaultDirectedEdgesLabel {
		t.Fatalf("edgesLabel default mismatch: got %q, want %q", o.EdgesLabel, pajek.DefaultDirectedEdgesLabel)
	}
	if o.Directed != pajek.DefaultDirected {
		t.Fatalf("directed default mismatch: got %v, want %v", o.Directed, pajek.DefaultDirected)
	}
	if o.Weighted != pajek.DefaultWeighted {
		t.Fatalf("weighted default mismatch: got %v, want %v", o.Weighted, pajek.DefaultWeighted)
	}
	if o.LabelKind != pajek.DefaultLabelKind {
		t.Fatalf("labelKind default mismatch: got %v, want %v", o.LabelKind, pajek.DefaultLabelKind)
	}

	// streaming
	if o.ChunkSize != pajek.DefaultChunkSize {
		t.Fatalf("chunkSize default mismatch: got %d, want %d", o.ChunkSize, pajek.DefaultChunkSize)
	}
	if o.MemoryLimit != pajek.DefaultMemoryLimit {
		t.Fatalf("memoryLimit default mismatch: got %d, want %d", o.MemoryLimit, pajek.DefaultMemoryLimit)
	}

	// salvage
	if o.CheckpointOn || o.CheckpointDir != "" || o.CheckpointFuncSet {
		t.Fatalf("checkpoint must be off by default: on=%v dir=%q funcSet=%v",
			o.CheckpointOn, o.CheckpointDir, o.CheckpointFuncSet)
	}
}

// 2) TestGatherOptions_LastWriterWins ensures paired toggles resolve to the last setter.
func TestGatherOptions_LastWriterWins(t *testing.T) {
	o1 := pajek.GatherOptionsSnapshot_TestOnly(pajek.WithDirected(), pajek.WithUndirected())
	if o1.Directed {
		t.Fatalf("directed last-writer-wins failed: got %v, want false", o1.Directed)
	}
	o2 := pajek.GatherOptionsSnapshot_TestOnly(pajek.WithUndirected(), pajek.WithDirected())
	if !o2.Directed {
		t.Fatalf("directed last-writer-wins failed: got %v, want true", o2.Directed)
	}

	o3 := pajek.GatherOptionsSnapshot_TestOnly(pajek.WithWeighted(), pajek.WithUnweighted())
	if o3.Weighted {
		t.Fatalf("weighted last-writer-wins failed: got %v, want false", o3.Weighted)
	}
	o4 := pajek.GatherOptionsSnapshot_TestOnly(pajek.WithUnweighted(), pajek.WithWeighted())
	if !o4.Weighted {
		t.Fatalf("weighted last-writer-wins failed: got %v, want true", o4.Weighted)
	}
}

// 3) TestEdgesLabel_Derivation checks the Arcs/Edges derivation and the explicit override.
func TestEdgesLabel_Derivation(t *testing.T) {
	o1 := pajek.GatherOptionsSnapshot_TestOnly(pajek.WithUndirected())
	if o1.EdgesLabel != pajek.DefaultUndirectedEdgesLabel {
		t.Fatalf("undirected derivation failed: got %q, want %q", o1.EdgesLabel, pajek.DefaultUndirectedEdgesLabel)
	}

	o2 := pajek.GatherOptionsSnapshot_TestOnly(pajek.WithUndirected(), pajek.WithDirected())
	if o2.EdgesLabel != pajek.DefaultDirectedEdgesLabel {
		t.Fatalf("directed derivation failed: got %q, want %q", o2.EdgesLabel, pajek.DefaultDirectedEdgesLabel)
	}

	// Explicit label suppresses derivation regardless of directedness.
	o3 := pajek.GatherOptionsSnapshot_TestOnly(pajek.WithEdgesLabel("Links"), pajek.WithUndirected())
	if o3.EdgesLabel != "Links" {
		t.Fatalf("explicit label must win: got %q, want %q", o3.EdgesLabel, "Links")
	}
}

// 4) TestSchemaSetters_SetValues verifies column and label setters store inputs exactly.
func TestSchemaSetters_SetValues(t *testing.T) {
	o := pajek.GatherOptionsSnapshot_TestOnly(
		pajek.WithCitingColumn("PaperId"),
		pajek.WithCitedColumn("PaperReferenceId"),
		pajek.WithWeightColumn("count"),
		pajek.WithVerticesLabel("Nodes"),
		pajek.WithLabelKind(edgelist.KindInt),
		pajek.WithChunkSize(512),
		pajek.WithMemoryLimit(1 << 20),
	)
	if o.CitingColumn != "PaperId" || o.CitedColumn != "PaperReferenceId" || o.WeightColumn != "count" {
		t.Fatalf("column setters mismatch: %q %q %q", o.CitingColumn, o.CitedColumn, o.WeightColumn)
	}
	if o.VerticesLabel != "Nodes" {
		t.Fatalf("verticesLabel mismatch: got %q, want %q", o.VerticesLabel, "Nodes")
	}
	if o.LabelKind != edgelist.KindInt {
		t.Fatalf("labelKind mismatch: got %v, want %v", o.LabelKind, edgelist.KindInt)
	}
	if o.ChunkSize != 512 {
		t.Fatalf("chunkSize mismatch: got %d, want 512", o.ChunkSize)
	}
	if o.MemoryLimit != 1<<20 {
		t.Fatalf("memoryLimit mismatch: got %d, want %d", o.MemoryLimit, 1<<20)
	}
}

// 5) TestCheckpointSetters verifies both salvage policies and their precedence flag.
func TestCheckpointSetters(t *testing.T) {
	o1 := pajek.GatherOptionsSnapshot_TestOnly(pajek.WithCheckpoint("/tmp/ckpt"))
	if !o1.CheckpointOn || o1.CheckpointDir != "/tmp/ckpt" || o1.CheckpointFuncSet {
		t.Fatalf("WithCheckpoint mismatch: on=%v dir=%q funcSet=%v",
			o1.CheckpointOn, o1.CheckpointDir, o1.CheckpointFuncSet)
	}

	hook := func(*edgelist.Table) error { return nil }
	o2 := pajek.GatherOptionsSnapshot_TestOnly(pajek.WithCheckpointFunc(hook))
	if !o2.CheckpointOn || !o2.CheckpointFuncSet {
		t.Fatalf("WithCheckpointFunc mismatch: on=%v funcSet=%v", o2.CheckpointOn, o2.CheckpointFuncSet)
	}

	// WithCheckpoint("") is meaningful under WriteFile (dir resolved from the
	// output path), so the empty dir must be stored, not rejected.
	o3 := pajek.GatherOptionsSnapshot_TestOnly(pajek.WithCheckpoint(""))
	if !o3.CheckpointOn || o3.CheckpointDir != "" {
		t.Fatalf("WithCheckpoint(\"\") mismatch: on=%v dir=%q", o3.CheckpointOn, o3.CheckpointDir)
	}
}

// 6) TestPanics_StableMessages validates every constructor guard with its stable message.
func TestPanics_StableMessages(t *testing.T) {
	ExpectPanicMessage(t, pajek.PanicCitingColumnEmpty_TestOnly, func() { _ = pajek.WithCitingColumn("") })
	ExpectPanicMessage(t, pajek.PanicCitedColumnEmpty_TestOnly, func() { _ = pajek.WithCitedColumn("") })
	ExpectPanicMessage(t, pajek.PanicWeightColumnEmpty_TestOnly, func() { _ = pajek.WithWeightColumn("") })
	ExpectPanicMessage(t, pajek.PanicVerticesLabelEmpty_TestOnly, func() { _ = pajek.WithVerticesLabel("") })
	ExpectPanicMessage(t, pajek.PanicEdgesLabelEmpty_TestOnly, func() { _ = pajek.WithEdgesLabel("") })
	ExpectPanicMessage(t, pajek.PanicLabelKindInvalid_TestOnly, func() { _ = pajek.WithLabelKind(edgelist.KindFloat) })
	ExpectPanicMessage(t, pajek.PanicChunkSizeInvalid_TestOnly, func() { _ = pajek.WithChunkSize(0) })
	ExpectPanicMessage(t, pajek.PanicChunkSizeInvalid_TestOnly, func() { _ = pajek.WithChunkSize(-3) })
	ExpectPanicMessage(t, pajek.PanicMemoryLimitInvalid_TestOnly, func() { _ = pajek.WithMemoryLimit(-1) })
	ExpectPanicMessage(t, pajek.PanicLoggerNil_TestOnly, func() { _ = pajek.WithLogger(nil) })
	ExpectPanicMessage(t, pajek.PanicCheckpointFnNil_TestOnly, func() { _ = pajek.WithCheckpointFunc(nil) })
}
