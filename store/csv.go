package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	log "github.com/sirupsen/logrus"

	"fourier/model"
)

// CSVSink appends one delimited row per record. Existing rows are never
// truncated or rewritten.
type CSVSink struct {
	mu   sync.Mutex
	path string
	full bool
}

func NewCSVSink(path string, full bool) *CSVSink {
	return &CSVSink{path: path, full: full}
}

func (s *CSVSink) Path() string {
	return s.path
}

// Append opens the file, writes the row and closes the file again.
// Concurrent appends are serialized.
func (s *CSVSink) Append(rec model.Record) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", s.path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(rec.Fields(s.full)); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", s.path, err)
	}

	log.WithFields(log.Fields{
		"file": s.path,
		"run":  rec.RunID,
	}).Debug("record appended")
	return nil
}

func (s *CSVSink) Close() error {
	return nil
}
