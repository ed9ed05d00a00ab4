package jobs

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"agro-chain.backend/internal/domain/repositories"
)

// StateSnapshotJob periodically writes the whole entity store to one JSON
// document. The database is the system of record; the snapshot is a safety
// net and a cheap way to inspect the full marketplace state.
type StateSnapshotJob struct {
	source   repositories.SnapshotSource
	path     string
	interval time.Duration
	stop     chan struct{}
}

func NewStateSnapshotJob(source repositories.SnapshotSource, path string, interval time.Duration) *StateSnapshotJob {
	return &StateSnapshotJob{
		source:   source,
		path:     path,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *StateSnapshotJob) Start(ctx context.Context) {
	log.Println("🕐 Starting state snapshot job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ State snapshot job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ State snapshot job stopped")
			return
		case <-ticker.C:
			j.writeSnapshot(ctx)
		}
	}
}

func (j *StateSnapshotJob) Stop() {
	close(j.stop)
}

// writeSnapshot exports the store and replaces the snapshot file atomically
// via a rename so a crash mid-write never leaves a truncated document.
func (j *StateSnapshotJob) writeSnapshot(ctx context.Context) {
	snapshot, err := j.source.Export(ctx)
	if err != nil {
		log.Printf("❌ Error exporting state snapshot: %v", err)
		return
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		log.Printf("❌ Error encoding state snapshot: %v", err)
		return
	}

	tmp := j.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		log.Printf("❌ Error writing state snapshot: %v", err)
		return
	}
	if err := os.Rename(tmp, j.path); err != nil {
		log.Printf("❌ Error replacing state snapshot: %v", err)
		return
	}

	log.Printf("✅ Wrote state snapshot to %s", filepath.Clean(j.path))
}
