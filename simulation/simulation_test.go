package simulation

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fourier/calculator"
	"fourier/model"
)

type memSink struct {
	records []model.Record
	err     error
}

func (m *memSink) Append(rec model.Record) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, rec)
	return nil
}

var copper = model.Input{Material: "copper", Area: 1.0, Length: 200.0, HotTemp: 1000, ColdTemp: 300}

func newSim(sink RecordSink, out *bytes.Buffer) *Simulation {
	return New(calculator.NewCalculator(nil), sink,
		WithOutput(out),
		WithIDs(func() string { return "run1" }))
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	sink := &memSink{}

	o, err := newSim(sink, &out).Run(copper)
	require.NoError(t, err)

	assert.Equal(t, "run1", o.RunID)
	assert.Equal(t, 400.0, o.Conductivity)
	assert.InDelta(t, 1400.0, o.Result.HeatFlow, 1e-9)

	require.Len(t, sink.records, 1)
	assert.Equal(t, "run1", sink.records[0].RunID)
	assert.Equal(t, []string{"1000", "300", "1400"}, sink.records[0].Core())

	assert.Contains(t, out.String(), " Parameters ")
	assert.Contains(t, out.String(), " Results ")
	assert.Contains(t, out.String(), "1400.000")
	assert.Contains(t, out.String(), " copper")
}

func TestRunInvalidTemperaturesPersistNothing(t *testing.T) {
	var out bytes.Buffer
	sink := &memSink{}

	in := copper
	in.HotTemp, in.ColdTemp = 300, 1000
	_, err := newSim(sink, &out).Run(in)

	require.Error(t, err)
	assert.True(t, errors.Is(err, calculator.ErrInvalidTemperatureOrdering))
	assert.Empty(t, sink.records)
	assert.Empty(t, out.String())
}

func TestRunEqualTemperatures(t *testing.T) {
	sink := &memSink{}

	in := copper
	in.ColdTemp = in.HotTemp
	_, err := newSim(sink, &bytes.Buffer{}).Run(in)

	assert.True(t, errors.Is(err, calculator.ErrInvalidTemperatureOrdering))
	assert.Empty(t, sink.records)
}

func TestRunUnknownMaterial(t *testing.T) {
	sink := &memSink{}

	in := copper
	in.Material = "unobtainium"
	_, err := newSim(sink, &bytes.Buffer{}).Run(in)

	assert.True(t, errors.Is(err, calculator.ErrUnknownMaterial))
	assert.Empty(t, sink.records)
}

func TestRunSinkError(t *testing.T) {
	sink := &memSink{err: errors.New("read-only")}

	_, err := newSim(sink, &bytes.Buffer{}).Run(copper)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist run run1")
	assert.Contains(t, err.Error(), "read-only")
}

func TestEvaluateHasNoSideEffects(t *testing.T) {
	var out bytes.Buffer
	sink := &memSink{}
	s := newSim(sink, &out)

	first, err := s.Evaluate(copper)
	require.NoError(t, err)
	second, err := s.Evaluate(copper)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Empty(t, sink.records)
	assert.Empty(t, out.String())
	assert.Equal(t, first.Reply().Result, first.Result)
}

func TestEmitEvaluatedOutcome(t *testing.T) {
	var out bytes.Buffer
	sink := &memSink{}
	s := newSim(nil, &out)

	o, err := s.Evaluate(copper)
	require.NoError(t, err)
	assert.Empty(t, out.String())

	emitted, err := s.Into(sink).Emit(o)
	require.NoError(t, err)
	assert.Equal(t, o, emitted)
	require.Len(t, sink.records, 1)
	assert.Equal(t, o.Record, sink.records[0])
	assert.Contains(t, out.String(), " Results ")

	_, err = s.Run(copper)
	require.NoError(t, err)
	assert.Len(t, sink.records, 1, "Into leaves the original simulation unchanged")
}

func TestRunWithoutOutputOrSink(t *testing.T) {
	s := New(calculator.NewCalculator(nil), nil, WithPrecision(-1))

	o, err := s.Run(copper)
	require.NoError(t, err)
	assert.NotEmpty(t, o.RunID)
	assert.Equal(t, "1400", o.Record.HeatFlow)
}
