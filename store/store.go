package store

import (
	"fmt"

	"fourier/model"
)

const (
	KindCSV    = "csv"
	KindSQLite = "sqlite"
)

// Sink receives finished records. Append writes exactly one record and
// holds no resource open after it returns.
type Sink interface {
	Append(rec model.Record) error
	Close() error
}

// Open returns the sink of the given kind writing to path.
// full selects all seven fields for sinks with a fixed column layout.
func Open(kind, path string, full bool) (Sink, error) {
	switch kind {
	case "", KindCSV:
		return NewCSVSink(path, full), nil
	case KindSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown sink %q (want %s or %s)", kind, KindCSV, KindSQLite)
	}
}
