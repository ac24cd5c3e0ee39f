// SPDX-License-Identifier: MIT

// Package pajek: salvage policy for memory exhaustion mid-stream.
// When the chunk-buffer budget dies during the edge block, the rows that
// never reached the output (current chunk onward) are still sitting in the
// immutable input table. The policies here persist that remainder so a
// retry can resume from data instead of from nothing.
package pajek

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/pajektools/edgelist"
)

// CheckpointFilename is the fixed name of the salvage file dropped by the
// WithCheckpoint policy. The name is stable so retry tooling can find it
// without coordination; an existing file is silently overwritten.
const CheckpointFilename = "memerr_edgelist_ckpt.csv"

// CheckpointFunc receives the untranslated remainder of the edge table
// (every row of the chunk in flight plus all rows after it) when the memory
// budget is exhausted during the edge block. The writer logs fn's error at
// warn level and swallows it: salvage must never mask the original failure.
type CheckpointFunc func(remaining *edgelist.Table) error

// fileCheckpoint persists remaining as CSV to dir/CheckpointFilename.
// Column kinds are not recorded in the file; a retry re-declares them via
// edgelist.WithColumnKind on re-read.
func fileCheckpoint(dir string, remaining *edgelist.Table) error {
	path := filepath.Join(dir, CheckpointFilename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("checkpoint %s: %w", path, err)
	}
	if err = edgelist.WriteCSV(f, remaining); err != nil {
		f.Close()
		return fmt.Errorf("checkpoint %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("checkpoint %s: close: %w", path, err)
	}
	return nil
}
