// SPDX-License-Identifier: MIT

// Package pajek: chunked .net stream writer.
// This file turns an edge table plus its vertex index into Pajek text:
// vertex block first, then the arc/edge block in original row order. Rows
// accumulate in one reusable byte buffer and flush every chunkSize rows, so
// peak memory stays bounded while the produced bytes never depend on the
// chunk size. An optional budget (WithMemoryLimit) turns buffer growth into
// ErrResourceExhausted, and the salvage policies from checkpoint.go decide
// what happens to the rows that never made it out.
package pajek

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/pajektools/edgelist"
)

// writeState tracks stream progress for diagnostics and debug logging.
// The stream only ever moves forward; any error parks it in stateFailed.
type writeState uint8

const (
	stateInit writeState = iota
	stateVerticesWriting
	stateVerticesDone
	stateEdgesTranslating
	stateEdgesWriting
	stateComplete
	stateFailed
)

// String returns the kebab-case state name used in debug logs.
func (s writeState) String() string {
	switch s {
	case stateInit:
		return "init"
	case stateVerticesWriting:
		return "vertices-writing"
	case stateVerticesDone:
		return "vertices-done"
	case stateEdgesTranslating:
		return "edges-translating"
	case stateEdgesWriting:
		return "edges-writing"
	case stateComplete:
		return "complete"
	case stateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// streamer owns the chunk buffer and the state machine of one Write call.
type streamer struct {
	w     io.Writer
	buf   []byte
	limit int64 // bytes; 0 = unlimited
	state writeState
	log   *log.Logger
}

// transition advances the state machine, leaving a debug trace.
func (s *streamer) transition(next writeState) {
	s.log.Debug("state transition", "from", s.state.String(), "to", next.String())
	s.state = next
}

// fail parks the stream in its terminal error state.
func (s *streamer) fail() { s.transition(stateFailed) }

// flush hands the buffered chunk to the underlying writer and resets the
// buffer, keeping its capacity for the next chunk.
func (s *streamer) flush() error {
	if len(s.buf) == 0 {
		return nil
	}
	if _, err := s.w.Write(s.buf); err != nil {
		return fmt.Errorf("flush %d bytes: %w", len(s.buf), err)
	}
	s.buf = s.buf[:0]
	return nil
}

// checkBudget enforces the optional memory limit on the materialized chunk.
func (s *streamer) checkBudget() error {
	if s.limit > 0 && int64(len(s.buf)) > s.limit {
		return fmt.Errorf("chunk buffer %d bytes over %d byte budget: %w",
			len(s.buf), s.limit, ErrResourceExhausted)
	}
	return nil
}

// salvage checkpoints rows [chunkStart, NumRows) when a policy is
// configured. Failures are logged and swallowed: salvage never masks the
// original error, which the caller is already returning.
func (s *streamer) salvage(t *edgelist.Table, chunkStart int, o *Options) {
	if !o.checkpointOn {
		return
	}
	remaining, err := t.Slice(chunkStart, t.NumRows())
	if err != nil {
		s.log.Warn("checkpoint skipped", "err", err)
		return
	}
	switch {
	case o.checkpointFunc != nil:
		err = o.checkpointFunc(remaining)
	case o.checkpointDir != "":
		err = fileCheckpoint(o.checkpointDir, remaining)
	default:
		s.log.Warn("checkpoint requested but no directory resolved; rows not salvaged",
			"rows", remaining.NumRows())
		return
	}
	if err != nil {
		s.log.Warn("checkpoint failed", "err", err)
		return
	}
	s.log.Info("checkpoint written", "from_row", chunkStart, "rows", remaining.NumRows())
}

// Write streams t as Pajek .net text onto w, translating endpoints through
// ix. The vertex block is emitted completely before the first edge line;
// edge lines keep the table's row order, untouched and undeduplicated.
// Implementation:
//   - Stage 1: validate arguments and resolve configured columns.
//   - Stage 2: vertex block: "*<label> <N>" then `<id> "<name>"` per record.
//   - Stage 3: edge block: "*<Arcs|Edges> <E>" then "<citing> <cited>
//     [<weight>]" per row, flushing every chunkSize rows.
//
// Behavior highlights:
//   - Translation uses the kind ix was built under, not the label-kind
//     option of this call, so an index built once keeps working no matter
//     how the Write call is configured.
//   - Output bytes are identical for every positive chunk size.
//   - Labels are quoted verbatim; embedded '"' is not escaped (see package
//     doc, known limitations).
//
// Errors:
//   - ErrNilWriter, ErrNilTable, ErrNilIndex on nil arguments.
//   - ErrMissingColumn, ErrLabelKind on schema faults (before any output).
//   - ErrUnresolvedLabel when an endpoint is absent from ix.
//   - ErrResourceExhausted when the chunk buffer exceeds WithMemoryLimit;
//     during the edge block a configured checkpoint policy salvages the
//     untranslated remainder first.
//   - I/O errors from w, wrapped with the flushed byte count.
//
// Complexity:
//   - Time O(V + E), Space O(chunk) beyond the input.
func Write(w io.Writer, t *edgelist.Table, ix *VertexIndex, opts ...Option) error {
	o := gatherOptions(opts...)
	if err := writeWith(w, t, ix, &o); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	return nil
}

// WriteFile is the one-call converter: validate the schema, build the
// vertex index, create (or truncate) path, stream, close. Schema and
// indexing faults surface before the file exists, so they never leave a
// truncated artifact behind. When checkpointing was requested without a
// directory, the output file's directory is used.
//
// Errors: everything Write and BuildIndex return, plus file-system errors
// from creating or closing path.
func WriteFile(path string, t *edgelist.Table, opts ...Option) error {
	o := gatherOptions(opts...)

	if t == nil {
		return fmt.Errorf("WriteFile: %w", ErrNilTable)
	}
	if _, _, _, err := resolveWriteColumns(t, &o); err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	ix, err := buildIndexWith(t, &o)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}

	if o.checkpointOn && o.checkpointDir == "" {
		o.checkpointDir = filepath.Dir(path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	if err = writeWith(f, t, ix, &o); err != nil {
		f.Close() // the stream failure is the error worth reporting
		return fmt.Errorf("WriteFile: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("WriteFile: close %s: %w", path, err)
	}
	return nil
}

// writeWith is the un-prefixed core shared by Write and WriteFile.
func writeWith(w io.Writer, t *edgelist.Table, ix *VertexIndex, o *Options) error {
	if w == nil {
		return ErrNilWriter
	}
	if t == nil {
		return ErrNilTable
	}
	if ix == nil {
		return ErrNilIndex
	}
	citing, cited, weight, err := resolveWriteColumns(t, o)
	if err != nil {
		return err
	}

	s := &streamer{w: w, limit: o.memoryLimit, state: stateInit, log: o.logger}

	// ---- vertex block ----
	s.transition(stateVerticesWriting)
	records := ix.Records()
	s.buf = append(s.buf, '*')
	s.buf = append(s.buf, o.verticesLabel...)
	s.buf = append(s.buf, ' ')
	s.buf = strconv.AppendInt(s.buf, int64(len(records)), 10)
	s.buf = append(s.buf, '\n')
	if err = s.checkBudget(); err != nil {
		s.fail()
		return fmt.Errorf("vertex block: %w", err)
	}

	rowsInChunk := 0
	for _, rec := range records {
		s.buf = strconv.AppendInt(s.buf, rec.ID, 10)
		s.buf = append(s.buf, ' ', '"')
		s.buf = append(s.buf, rec.Name...) // verbatim; quotes are not escaped
		s.buf = append(s.buf, '"', '\n')
		if err = s.checkBudget(); err != nil {
			s.fail()
			return fmt.Errorf("vertex block: %w", err)
		}
		if rowsInChunk++; rowsInChunk == o.chunkSize {
			if err = s.flush(); err != nil {
				s.fail()
				return fmt.Errorf("vertex block: %w", err)
			}
			rowsInChunk = 0
		}
	}
	if err = s.flush(); err != nil {
		s.fail()
		return fmt.Errorf("vertex block: %w", err)
	}
	s.transition(stateVerticesDone)
	s.log.Debug("vertex block written", "label", o.verticesLabel, "vertices", len(records))

	// ---- edge block ----
	rows := t.NumRows()
	s.transition(stateEdgesTranslating)
	s.buf = append(s.buf, '*')
	s.buf = append(s.buf, o.edgesLabel...)
	s.buf = append(s.buf, ' ')
	s.buf = strconv.AppendInt(s.buf, int64(rows), 10)
	s.buf = append(s.buf, '\n')
	if err = s.checkBudget(); err != nil {
		s.fail()
		s.salvage(t, 0, o)
		return fmt.Errorf("edge block: %w", err)
	}

	chunkStart := 0
	rowsInChunk = 0
	for r := 0; r < rows; r++ {
		var citingID, citedID int64
		if citingID, err = resolveEndpoint(ix, citing, r); err != nil {
			s.fail()
			return fmt.Errorf("edge block row %d: %w", r, err)
		}
		if citedID, err = resolveEndpoint(ix, cited, r); err != nil {
			s.fail()
			return fmt.Errorf("edge block row %d: %w", r, err)
		}

		s.buf = strconv.AppendInt(s.buf, citingID, 10)
		s.buf = append(s.buf, ' ')
		s.buf = strconv.AppendInt(s.buf, citedID, 10)
		if weight != nil {
			s.buf = append(s.buf, ' ')
			s.buf = append(s.buf, weight.TextAt(r)...)
		}
		s.buf = append(s.buf, '\n')

		if err = s.checkBudget(); err != nil {
			s.fail()
			s.salvage(t, chunkStart, o)
			return fmt.Errorf("edge block row %d: %w", r, err)
		}
		if rowsInChunk++; rowsInChunk == o.chunkSize {
			s.transition(stateEdgesWriting)
			if err = s.flush(); err != nil {
				s.fail()
				return fmt.Errorf("edge block: %w", err)
			}
			chunkStart = r + 1
			rowsInChunk = 0
			if r+1 < rows {
				s.transition(stateEdgesTranslating)
			}
		}
	}
	if rowsInChunk > 0 || rows == 0 {
		s.transition(stateEdgesWriting)
		if err = s.flush(); err != nil {
			s.fail()
			return fmt.Errorf("edge block: %w", err)
		}
	}
	s.transition(stateComplete)
	s.log.Debug("edge block written", "label", o.edgesLabel, "edges", rows)

	return nil
}

// resolveWriteColumns fetches the configured columns for one Write call:
// both endpoints always, the weight column only under WithWeighted().
func resolveWriteColumns(t *edgelist.Table, o *Options) (citing, cited, weight *edgelist.Column, err error) {
	if citing, err = columnOrMissing(t, o.citingColumn, "citing"); err != nil {
		return nil, nil, nil, err
	}
	if cited, err = columnOrMissing(t, o.citedColumn, "cited"); err != nil {
		return nil, nil, nil, err
	}
	for _, col := range []*edgelist.Column{citing, cited} {
		if err = checkLabelColumn(col); err != nil {
			return nil, nil, nil, err
		}
	}
	if o.weighted {
		if weight, err = columnOrMissing(t, o.weightColumn, "weight"); err != nil {
			return nil, nil, nil, err
		}
	}
	return citing, cited, weight, nil
}

// resolveEndpoint translates the label in col at row r to its dense ID
// under the index's own kind. A lookup miss or a coercion failure both
// mean the index was not built from this table and configuration, which is
// an internal-consistency fault, not a data error.
func resolveEndpoint(ix *VertexIndex, col *edgelist.Column, r int) (int64, error) {
	if ix.kind == edgelist.KindInt {
		v, err := col.IntAt(r)
		if err != nil {
			return 0, fmt.Errorf("column %q: %v: %w", col.Name(), err, ErrUnresolvedLabel)
		}
		if id, ok := ix.byInt[v]; ok {
			return id, nil
		}
		return 0, fmt.Errorf("column %q label %d: %w", col.Name(), v, ErrUnresolvedLabel)
	}
	label := col.TextAt(r)
	if id, ok := ix.byText[label]; ok {
		return id, nil
	}
	return 0, fmt.Errorf("column %q label %q: %w", col.Name(), label, ErrUnresolvedLabel)
}
