package calculator

import (
	"fourier/material"
	"fourier/model"
)

const (
	opResolve = "resolve conductivity"
	opCompute = "compute flow"
)

// Calculator evaluates steady conduction between two infinite reservoirs.
// It holds no state besides the material table.
type Calculator struct {
	materials *material.Properties
}

func NewCalculator(materials *material.Properties) *Calculator {
	if materials == nil {
		materials = material.Reference()
	}
	return &Calculator{materials: materials}
}

func (c *Calculator) Materials() *material.Properties {
	return c.materials
}

// ResolveConductivity returns k for the named material.
func (c *Calculator) ResolveConductivity(name string) (float64, error) {
	k, ok := c.materials.Conductivity(name)
	if !ok {
		return 0, newError(opResolve, ErrUnknownMaterial, "%q (known: %v)", name, c.materials.Names())
	}
	return k, nil
}

// Evaluate resolves the material and computes the flow. An unknown material
// fails before anything is computed.
func (c *Calculator) Evaluate(in model.Input) (model.Result, float64, error) {
	k, err := c.ResolveConductivity(in.Material)
	if err != nil {
		return model.Result{}, 0, err
	}
	res, err := ComputeFlow(in.HotTemp, in.ColdTemp, in.Area, in.Length, k)
	if err != nil {
		return model.Result{}, k, err
	}
	return res, k, nil
}

// ComputeFlow applies Fourier's law across the conductor and the entropy
// balance of both reservoirs:
//
//	dQ/dt = (k A / L) (Th - Tc)
//	dSh/dt = -dQ/dt / Th
//	dSc/dt =  dQ/dt / Tc
func ComputeFlow(hotTemp, coldTemp, area, length, conductivity float64) (model.Result, error) {
	if err := checkGeometry(area, length, conductivity); err != nil {
		return model.Result{}, err
	}
	if err := checkReservoirs(hotTemp, coldTemp); err != nil {
		return model.Result{}, err
	}

	tempDiff := hotTemp - coldTemp
	heatFlow := (area * conductivity / length) * tempDiff
	entropyFlowHot := -heatFlow / hotTemp
	entropyFlowCold := heatFlow / coldTemp

	res := model.Result{
		TempDiff:        tempDiff,
		HeatFlow:        heatFlow,
		EntropyFlowHot:  entropyFlowHot,
		EntropyFlowCold: entropyFlowCold,
		NetEntropyRate:  entropyFlowHot + entropyFlowCold,
	}
	if err := checkResult(res, hotTemp, coldTemp, area, length, conductivity); err != nil {
		return model.Result{}, err
	}
	return res, nil
}
