package processor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"fiximg/pkg/imgutil"
)

// imageExts is the set of extensions worth inspecting. Anything else is
// ignored entirely and never counted.
var imageExts = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"png":  true,
	"webp": true,
	"bmp":  true,
	"tiff": true,
}

// Run inspects every recognized image file directly under dir and, in
// ModeFix, renames those whose extension disagrees with the format
// detected from the file header. Files are handled in batches of
// opts.BatchSize: each batch runs concurrently, batches run
// sequentially, and the batch's outcomes are folded into the returned
// Stats after the batch completes. Only a failure to list dir is fatal;
// per-file failures are recorded and the run continues.
func Run(ctx context.Context, dir string, opts Options, updates chan<- ProgressUpdate) (Stats, []Outcome, error) {
	start := time.Now()
	stats := Stats{}

	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return stats, nil, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !imageExts[extOf(entry.Name())] {
			continue
		}
		names = append(names, entry.Name())
	}

	if updates != nil {
		updates <- ProgressUpdate{TotalDelta: len(names)}
	}

	outcomes := make([]Outcome, 0, len(names))
	for offset := 0; offset < len(names); offset += batchSize {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				stats.Elapsed = time.Since(start)
				return stats, outcomes, err
			}
		}

		batch := names[offset:min(offset+batchSize, len(names))]
		batchOutcomes := make([]Outcome, len(batch))

		var wg sync.WaitGroup
		for i, name := range batch {
			wg.Add(1)
			go func() {
				defer wg.Done()
				batchOutcomes[i] = processFile(dir, name, opts.Mode)
			}()
		}
		wg.Wait()

		for _, out := range batchOutcomes {
			fold(&stats, out, updates)
			outcomes = append(outcomes, out)
		}
	}

	stats.Elapsed = time.Since(start)
	return stats, outcomes, nil
}

func processFile(dir, name string, mode Mode) Outcome {
	out := Outcome{Name: name, OldExt: extOf(name)}

	kind, err := imgutil.SniffFile(filepath.Join(dir, name))
	if err != nil {
		out.Kind = EventError
		out.Err = err
		return out
	}

	out.Format = kind.String()
	if kind == imgutil.KindUnknown {
		out.Kind = EventUnknown
		return out
	}

	if extMatches(kind, out.OldExt) {
		out.Kind = EventCorrect
		return out
	}

	out.NewExt = kind.Ext()
	out.NewName = strings.TrimSuffix(name, filepath.Ext(name)) + "." + out.NewExt

	newPath := filepath.Join(dir, out.NewName)
	if _, err := os.Lstat(newPath); err == nil {
		out.Kind = EventCollision
		return out
	}

	if mode == ModeScan {
		out.Kind = EventMismatch
		return out
	}

	if err := os.Rename(filepath.Join(dir, name), newPath); err != nil {
		out.Kind = EventError
		out.Err = err
		return out
	}
	out.Kind = EventRenamed
	return out
}

// fold accumulates one outcome into stats. It runs only on the
// coordinating goroutine, after the outcome's batch has finished.
func fold(stats *Stats, out Outcome, updates chan<- ProgressUpdate) {
	stats.Processed++
	delta := ProgressUpdate{ProcessedDelta: 1}

	switch out.Kind {
	case EventRenamed, EventMismatch:
		stats.Renamed++
		delta.RenamedDelta = 1
	case EventUnknown, EventCollision:
		stats.Skipped++
		delta.SkippedDelta = 1
	case EventError:
		stats.Errors++
		delta.ErrorDelta = 1
	}

	if updates != nil {
		updates <- delta
	}
}

// extMatches reports whether ext already agrees with the detected kind.
// The jpg and jpeg spellings are both accepted for JPEG content.
func extMatches(kind imgutil.Kind, ext string) bool {
	if ext == kind.Ext() {
		return true
	}
	return kind == imgutil.KindJPEG && ext == "jpeg"
}

func extOf(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
