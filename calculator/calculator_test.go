package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fourier/material"
	"fourier/model"
)

func input(mat string) model.Input {
	return model.Input{Material: mat, Area: 1.0, Length: 200.0, HotTemp: 1000, ColdTemp: 300}
}

func TestEvaluateCopper(t *testing.T) {
	c := NewCalculator(material.Reference())

	res, k, err := c.Evaluate(input("copper"))
	require.NoError(t, err)

	assert.Equal(t, 400.0, k)
	assert.Equal(t, 700.0, res.TempDiff)
	assert.InDelta(t, 1400.0, res.HeatFlow, 1e-9)
	assert.InDelta(t, -1.4, res.EntropyFlowHot, 1e-12)
	assert.InDelta(t, 4.6667, res.EntropyFlowCold, 1e-4)
	assert.InDelta(t, 3.2667, res.NetEntropyRate, 1e-4)
}

func TestEvaluateIronAndWood(t *testing.T) {
	c := NewCalculator(nil)

	res, _, err := c.Evaluate(input("iron"))
	require.NoError(t, err)
	assert.InDelta(t, 280.0, res.HeatFlow, 1e-9)

	res, _, err = c.Evaluate(input("wood"))
	require.NoError(t, err)
	assert.InDelta(t, 0.28, res.HeatFlow, 1e-12)
}

func TestEvaluateUnknownMaterial(t *testing.T) {
	c := NewCalculator(nil)

	// Inverted temperatures too: the material is checked first.
	in := input("brass")
	in.HotTemp, in.ColdTemp = 300, 1000

	_, k, err := c.Evaluate(in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownMaterial))
	assert.False(t, errors.Is(err, ErrInvalidTemperatureOrdering))
	assert.Zero(t, k)
	assert.Contains(t, err.Error(), `"brass"`)
	assert.Equal(t, "UnknownMaterial", KindName(err))
}

func TestComputeFlowTemperatureOrdering(t *testing.T) {
	cases := map[string][2]float64{
		"inverted":       {300, 1000},
		"equal":          {500, 500},
		"zero cold":      {1000, 0},
		"negative cold":  {1000, -10},
		"nan hot":        {math.NaN(), 300},
		"inf hot":        {math.Inf(1), 300},
		"subnormal cold": {1000, 1e-310},
	}
	for name, temps := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := ComputeFlow(temps[0], temps[1], 1.0, 200.0, 400.0)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTemperatureOrdering), err.Error())
			assert.Equal(t, model.Result{}, res)

			var cerr *Error
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, opCompute, cerr.Op)
		})
	}
}

func TestComputeFlowGeometry(t *testing.T) {
	cases := map[string][3]float64{
		"zero area":         {0, 200, 400},
		"negative area":     {-1, 200, 400},
		"zero length":       {1, 0, 400},
		"negative length":   {1, -200, 400},
		"zero conductivity": {1, 200, 0},
		"nan area":          {math.NaN(), 200, 400},
		"inf length":        {1, math.Inf(1), 400},
		"overflow":          {math.MaxFloat64, 1e-300, 400},
		"underflow":         {1e-300, 1, 1e-30},
	}
	for name, g := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ComputeFlow(1000, 300, g[0], g[1], g[2])
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidGeometry), err.Error())
			assert.Equal(t, "InvalidGeometry", KindName(err))
		})
	}
}

func TestComputeFlowSigns(t *testing.T) {
	temps := [][2]float64{{1000, 300}, {301, 300}, {5000, 1}, {2, 1}, {1e6, 1e-3}}
	for _, tc := range temps {
		for _, k := range []float64{0.026, 0.08, 80, 400} {
			res, err := ComputeFlow(tc[0], tc[1], 0.5, 3.0, k)
			require.NoError(t, err)
			assert.Greater(t, res.HeatFlow, 0.0)
			assert.Less(t, res.EntropyFlowHot, 0.0)
			assert.Greater(t, res.EntropyFlowCold, 0.0)
			assert.Greater(t, res.NetEntropyRate, 0.0, "hot=%v cold=%v k=%v", tc[0], tc[1], k)
		}
	}
}

func TestComputeFlowMonotonicInTempDiff(t *testing.T) {
	prev := 0.0
	for hot := 301.0; hot <= 2000; hot += 50 {
		res, err := ComputeFlow(hot, 300, 1.0, 200.0, 80.0)
		require.NoError(t, err)
		assert.Greater(t, res.HeatFlow, prev)
		prev = res.HeatFlow
	}
}

func TestComputeFlowScaling(t *testing.T) {
	base, err := ComputeFlow(1000, 300, 1.0, 200.0, 80.0)
	require.NoError(t, err)

	doubleArea, err := ComputeFlow(1000, 300, 2.0, 200.0, 80.0)
	require.NoError(t, err)
	assert.InDelta(t, 2*base.HeatFlow, doubleArea.HeatFlow, 1e-9)

	doubleK, err := ComputeFlow(1000, 300, 1.0, 200.0, 160.0)
	require.NoError(t, err)
	assert.InDelta(t, 2*base.HeatFlow, doubleK.HeatFlow, 1e-9)

	doubleLength, err := ComputeFlow(1000, 300, 1.0, 400.0, 80.0)
	require.NoError(t, err)
	assert.InDelta(t, base.HeatFlow/2, doubleLength.HeatFlow, 1e-9)
}

func TestComputeFlowIdempotent(t *testing.T) {
	first, err := ComputeFlow(1000, 300, 1.0, 200.0, 400.0)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := ComputeFlow(1000, 300, 1.0, 200.0, 400.0)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Op: "compute flow", Kind: ErrInvalidGeometry, Detail: "area must be positive, got 0"}
	assert.Equal(t, "compute flow: invalid geometry: area must be positive, got 0", err.Error())
	assert.Equal(t, "", KindName(errors.New("other")))

	var nilErr *Error
	assert.Equal(t, "<nil>", nilErr.Error())
	assert.Nil(t, nilErr.Unwrap())
}
