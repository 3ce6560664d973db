package calculator

import (
	"math"

	"fourier/model"
)

// positive reports x > 0 and finite; NaN fails.
func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

func checkGeometry(area, length, conductivity float64) error {
	if !positive(area) {
		return newError(opCompute, ErrInvalidGeometry, "area must be positive, got %g", area)
	}
	if !positive(length) {
		return newError(opCompute, ErrInvalidGeometry, "length must be positive, got %g", length)
	}
	if !positive(conductivity) {
		return newError(opCompute, ErrInvalidGeometry, "conductivity must be positive, got %g", conductivity)
	}
	return nil
}

// checkReservoirs requires hot > cold > 0. Equal temperatures are rejected,
// not treated as zero flow.
func checkReservoirs(hotTemp, coldTemp float64) error {
	if !positive(hotTemp) || !positive(coldTemp) {
		return newError(opCompute, ErrInvalidTemperatureOrdering,
			"reservoir temperatures must be positive kelvin, got hot=%g cold=%g", hotTemp, coldTemp)
	}
	if !(coldTemp < hotTemp) {
		return newError(opCompute, ErrInvalidTemperatureOrdering,
			"cold reservoir temperature %g K is not below hot reservoir temperature %g K", coldTemp, hotTemp)
	}
	return nil
}

// checkResult rejects results that left the float64 range after valid
// inputs. A heat flow that is not finite and positive is a geometry error.
// Entropy rates that overflow, underflow or cancel are a reservoir error.
func checkResult(res model.Result, hotTemp, coldTemp, area, length, conductivity float64) error {
	if !finite(res.HeatFlow) || res.HeatFlow <= 0 {
		return newError(opCompute, ErrInvalidGeometry,
			"heat flow %g out of range for area=%g length=%g conductivity=%g",
			res.HeatFlow, area, length, conductivity)
	}
	if !finite(res.EntropyFlowHot) || res.EntropyFlowHot >= 0 ||
		!finite(res.EntropyFlowCold) || res.EntropyFlowCold <= 0 ||
		!finite(res.NetEntropyRate) || res.NetEntropyRate <= 0 {
		return newError(opCompute, ErrInvalidTemperatureOrdering,
			"entropy rates out of range for hot=%g cold=%g: hot %g, cold %g, net %g",
			hotTemp, coldTemp, res.EntropyFlowHot, res.EntropyFlowCold, res.NetEntropyRate)
	}
	return nil
}
