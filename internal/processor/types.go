package processor

import "time"

type Mode int

const (
	// ModeFix renames files whose extension disagrees with the
	// detected format.
	ModeFix Mode = iota
	// ModeScan reports what a fix run would do without touching files.
	ModeScan
)

// DefaultBatchSize bounds how many files are processed concurrently.
// Batches run sequentially so at most this many file descriptors are
// open at once.
const DefaultBatchSize = 10

type Options struct {
	Mode      Mode
	BatchSize int
}

// EventKind classifies the outcome of processing one file.
type EventKind int

const (
	// EventCorrect means the extension already matches the detected format.
	EventCorrect EventKind = iota
	// EventRenamed means the file was renamed to its canonical extension.
	EventRenamed
	// EventMismatch is ModeScan's counterpart of EventRenamed.
	EventMismatch
	// EventUnknown means no signature matched; the file was left alone.
	EventUnknown
	// EventCollision means the rename target already exists.
	EventCollision
	// EventError means the file's header could not be read.
	EventError
)

// Outcome records what happened to one recognized file. Outcomes are
// produced concurrently within a batch and folded into Stats by the
// coordinator, so no counter is ever shared between goroutines.
type Outcome struct {
	Kind    EventKind
	Name    string
	NewName string
	OldExt  string
	NewExt  string
	Format  string
	Err     error
}

type Stats struct {
	Processed int
	Renamed   int
	Skipped   int
	Errors    int
	Elapsed   time.Duration
}

type ProgressUpdate struct {
	TotalDelta     int
	ProcessedDelta int
	RenamedDelta   int
	SkippedDelta   int
	ErrorDelta     int
}
