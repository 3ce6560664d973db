package material

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	log "github.com/sirupsen/logrus"

	"fourier/model"
)

// 导热系数, W/(m K)
var reference = map[string]float64{
	"iron":   80.0,
	"copper": 400.0,
	"wood":   0.08,
}

// Properties maps a material name to its thermal conductivity.
// It is never modified after construction.
type Properties struct {
	conductivity map[string]float64
}

// Reference returns the built-in table: iron, copper and wood.
func Reference() *Properties {
	p := &Properties{conductivity: make(map[string]float64, len(reference))}
	for name, k := range reference {
		p.conductivity[name] = k
	}
	return p
}

// Load returns the reference table extended by the materials listed in the
// JSON file at path. Entries in the file override the built-in ones.
// An empty path yields the reference table.
func Load(path string) (*Properties, error) {
	p := Reference()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read materials file: %w", err)
	}
	var materials []model.Material
	if err := json.Unmarshal(data, &materials); err != nil {
		return nil, fmt.Errorf("parse materials file %s: %w", path, err)
	}

	for _, m := range materials {
		if m.Name == "" {
			return nil, fmt.Errorf("materials file %s: entry without name", path)
		}
		if !(m.ThermalConductivity > 0) {
			return nil, fmt.Errorf("materials file %s: %q: thermal conductivity must be positive, got %v",
				path, m.Name, m.ThermalConductivity)
		}
		p.conductivity[m.Name] = m.ThermalConductivity
	}
	log.WithFields(log.Fields{
		"file":  path,
		"added": len(materials),
		"total": len(p.conductivity),
	}).Debug("materials loaded")
	return p, nil
}

// Conductivity looks the material up by exact name.
func (p *Properties) Conductivity(name string) (float64, bool) {
	k, ok := p.conductivity[name]
	return k, ok
}

func (p *Properties) Names() []string {
	names := make([]string, 0, len(p.conductivity))
	for name := range p.conductivity {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns every material sorted by name.
func (p *Properties) List() []model.Material {
	names := p.Names()
	materials := make([]model.Material, len(names))
	for i, name := range names {
		materials[i] = model.Material{Name: name, ThermalConductivity: p.conductivity[name]}
	}
	return materials
}
