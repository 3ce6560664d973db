package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"

	"fourier/model"
)

const createTable = `
	create table if not exists conduction_runs
	(
		run_id            varchar(32) not null,
		created_at        varchar(40) not null,
		hot_temp          text        not null,
		cold_temp         text        not null,
		temp_diff         text        not null,
		heat_flow         text        not null,
		entropy_flow_hot  text        not null,
		entropy_flow_cold text        not null,
		net_entropy_rate  text        not null
	);
`

const insertRun = `insert into conduction_runs
	(run_id, created_at, hot_temp, cold_temp, temp_diff, heat_flow,
	 entropy_flow_hot, entropy_flow_cold, net_entropy_rate)
	values (?, ?, ?, ?, ?, ?, ?, ?, ?)`

// SQLSink stores every field of a record as one row of conduction_runs.
type SQLSink struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLSink(db *sql.DB) *SQLSink {
	return &SQLSink{db: db, now: time.Now}
}

// OpenSQLite opens (or creates) the database file and its table.
func OpenSQLite(path string) (*SQLSink, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	s := NewSQLSink(db)
	if err := s.Init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.WithField("file", path).Debug("sqlite sink ready")
	return s, nil
}

func (s *SQLSink) Init() error {
	if _, err := s.db.Exec(createTable); err != nil {
		return fmt.Errorf("create conduction_runs: %w", err)
	}
	return nil
}

func (s *SQLSink) Append(rec model.Record) error {
	_, err := s.db.Exec(insertRun,
		rec.RunID,
		s.now().UTC().Format(time.RFC3339Nano),
		rec.HotTemp,
		rec.ColdTemp,
		rec.TempDiff,
		rec.HeatFlow,
		rec.EntropyFlowHot,
		rec.EntropyFlowCold,
		rec.NetEntropyRate,
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", rec.RunID, err)
	}
	return nil
}

func (s *SQLSink) Close() error {
	return s.db.Close()
}
