package simulation

import (
	"fmt"
	"io"

	"github.com/rs/xid"
	log "github.com/sirupsen/logrus"

	"fourier/calculator"
	"fourier/model"
	"fourier/report"
)

// RecordSink receives the row of a successful run.
type RecordSink interface {
	Append(rec model.Record) error
}

// Outcome is everything one successful run produced.
type Outcome struct {
	RunID        string
	Input        model.Input
	Conductivity float64
	Result       model.Result
	Lines        []string
	Record       model.Record
}

func (o Outcome) Reply() model.ResultReply {
	return model.ResultReply{
		RunID:        o.RunID,
		Input:        o.Input,
		Conductivity: o.Conductivity,
		Result:       o.Result,
		Lines:        o.Lines,
	}
}

// Simulation runs one evaluation per call: evaluate, print, persist.
type Simulation struct {
	calc      *calculator.Calculator
	sink      RecordSink
	out       io.Writer
	precision int
	newID     func() string
}

type Option func(*Simulation)

// WithOutput prints the parameters and results of every run to w.
func WithOutput(w io.Writer) Option {
	return func(s *Simulation) { s.out = w }
}

// WithPrecision sets the decimals of persisted fields.
func WithPrecision(precision int) Option {
	return func(s *Simulation) { s.precision = precision }
}

// WithIDs replaces the run id generator.
func WithIDs(newID func() string) Option {
	return func(s *Simulation) { s.newID = newID }
}

func New(calc *calculator.Calculator, sink RecordSink, opts ...Option) *Simulation {
	s := &Simulation{
		calc:      calc,
		sink:      sink,
		precision: report.DefaultPrecision,
		newID:     func() string { return xid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Evaluate computes and formats without any output or persistence.
func (s *Simulation) Evaluate(in model.Input) (Outcome, error) {
	id := s.newID()
	res, k, err := s.calc.Evaluate(in)
	if err != nil {
		log.WithFields(log.Fields{
			"run":      id,
			"material": in.Material,
			"kind":     calculator.KindName(err),
		}).Warn(err)
		return Outcome{}, err
	}

	f := report.FormatRecord(res, in.HotTemp, in.ColdTemp, s.precision)
	f.Record.RunID = id
	return Outcome{
		RunID:        id,
		Input:        in,
		Conductivity: k,
		Result:       res,
		Lines:        f.Results,
		Record:       f.Record,
	}, nil
}

// Into returns a copy of s that appends records to sink.
func (s *Simulation) Into(sink RecordSink) *Simulation {
	c := *s
	c.sink = sink
	return &c
}

// Run evaluates the input, prints the report and appends the record.
// Nothing is printed or persisted when the evaluation fails.
func (s *Simulation) Run(in model.Input) (Outcome, error) {
	o, err := s.Evaluate(in)
	if err != nil {
		return Outcome{}, err
	}
	return s.Emit(o)
}

// Emit prints and persists an outcome returned by Evaluate.
func (s *Simulation) Emit(o Outcome) (Outcome, error) {
	in := o.Input
	if s.out != nil {
		if err := report.WriteSection(s.out, "Parameters", report.Parameters(in, o.Conductivity)); err != nil {
			return o, fmt.Errorf("print parameters: %w", err)
		}
		if err := report.WriteSection(s.out, "Results", o.Lines); err != nil {
			return o, fmt.Errorf("print results: %w", err)
		}
	}

	if s.sink != nil {
		if err := s.sink.Append(o.Record); err != nil {
			return o, fmt.Errorf("persist run %s: %w", o.RunID, err)
		}
	}

	log.WithFields(log.Fields{
		"run":       o.RunID,
		"material":  in.Material,
		"heat_flow": o.Result.HeatFlow,
		"net_rate":  o.Result.NetEntropyRate,
	}).Info("conduction evaluated")
	return o, nil
}
