// Package telemetry writes the append-only, newline-delimited JSON event
// stream at <out>/telemetry.ndjson (spec.md §6). Readers must tolerate a
// partial trailing line, so every write is a single buffered append plus a
// trailing newline rather than a rewrite-in-place.
package telemetry

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/google/uuid"
)

const fileName = "telemetry.ndjson"

// Writer appends ndjson events to a run's telemetry file. A Writer is not
// safe for use from more than one goroutine concurrently issuing writes that
// must stay ordered relative to each other, but the orchestrator is
// single-threaded cooperative (spec.md §5), so a simple mutex suffices.
type Writer struct {
	mu            sync.Mutex
	f             *os.File
	correlationID string
}

// Open opens (creating if absent) the telemetry file under dir, appending
// from here on. correlationID identifies every event emitted by this run.
func Open(dir string) (*Writer, error) {
	f, err := os.OpenFile(dir+string(os.PathSeparator)+fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &Writer{f: f, correlationID: uuid.NewString()}, nil
}

// CorrelationID identifies every event this Writer emits.
func (w *Writer) CorrelationID() string {
	return w.correlationID
}

// Emit appends one event. event is typically "<step>_complete" or
// "<step>_error" (spec.md §6); fields is merged alongside the envelope.
func (w *Writer) Emit(event string, tsMs int64, fields map[string]any) error {
	rec := map[string]any{
		"event":          event,
		"ts_ms":          tsMs,
		"correlation_id": w.correlationID,
	}
	for k, v := range fields {
		rec[k] = v
	}

	line, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	line = append(line, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()
	_, err = w.f.Write(line)
	return err
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.f.Close()
}
