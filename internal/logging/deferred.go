package logging

import (
	"io"
	"sync"
)

// DeferredWriter buffers log records until Flush. zerolog issues one Write per
// record, so each buffered chunk is replayed as its own Write; that keeps a
// zerolog.ConsoleWriter target parsing one JSON document at a time.
type DeferredWriter struct {
	mu      sync.Mutex
	records [][]byte
}

// Write stores a copy of p.
func (d *DeferredWriter) Write(p []byte) (int, error) {
	buf := make([]byte, len(p))
	copy(buf, p)

	d.mu.Lock()
	d.records = append(d.records, buf)
	d.mu.Unlock()
	return len(p), nil
}

// Len returns the number of buffered records.
func (d *DeferredWriter) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.records)
}

// Flush replays buffered records to w in order and empties the buffer.
// It stops at the first write error.
func (d *DeferredWriter) Flush(w io.Writer) error {
	d.mu.Lock()
	records := d.records
	d.records = nil
	d.mu.Unlock()

	for _, r := range records {
		if _, err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}
