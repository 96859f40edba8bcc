// Package fs provides filesystem export of the discovered term set.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/lexcrawl/lexcrawl"
)

// Ensure SnapshotWriter implements lexcrawl.SnapshotWriter at compile time.
var _ lexcrawl.SnapshotWriter = (*SnapshotWriter)(nil)

// SnapshotWriter writes the term set to a file as a JSON array with
// atomic tmp+rename semantics. The array is sorted for readability;
// order carries no meaning. Consecutive identical snapshots are skipped
// by comparing content hashes of the serialized payload.
type SnapshotWriter struct {
	mu   sync.Mutex
	path string
	last uint64
}

// NewSnapshotWriter creates a SnapshotWriter targeting path.
func NewSnapshotWriter(path string) *SnapshotWriter {
	return &SnapshotWriter{path: path}
}

// WriteSnapshot serializes the terms and atomically replaces the target
// file. A snapshot identical to the previous write is a no-op.
func (w *SnapshotWriter) WriteSnapshot(ctx context.Context, terms []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sorted := make([]string, len(terms))
	copy(sorted, terms)
	sort.Strings(sorted)

	payload, err := json.MarshalIndent(sorted, "", "  ")
	if err != nil {
		return lexcrawl.Errorf(lexcrawl.EINTERNAL, "marshal snapshot: %v", err)
	}
	payload = append(payload, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()

	sum := xxhash.Sum64(payload)
	if w.last != 0 && sum == w.last {
		return nil
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return lexcrawl.Errorf(lexcrawl.EINTERNAL, "create snapshot directory: %v", err)
		}
	}

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return lexcrawl.Errorf(lexcrawl.EINTERNAL, "write snapshot: %v", err)
	}
	if err := os.Rename(tmp, w.path); err != nil {
		return lexcrawl.Errorf(lexcrawl.EINTERNAL, "commit snapshot: %v", err)
	}

	w.last = sum
	return nil
}
