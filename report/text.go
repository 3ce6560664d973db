package report

import "io"

var banner = []string{
	"###############################################################################",
	"#                                                                             #",
	"# FOURIER HEAT CONDUCTION LAW - CONSTANT FLOW                                 #",
	"#_____________________________________________________________________________#",
	"#                                                                             #",
	"# Calculates the flow of energy across a thermal conductor that connects a    #",
	"# warmer object to a cooler object. Both reservoirs are inexhaustible.        #",
	"#                                                                             #",
	"###############################################################################",
}

var background = []string{
	" Fourier's Law of Conduction describes the flow of thermal",
	" energy through a material across a temperature difference.",
	" Here the temperature difference remains constant with time.",
	"",
	" dQ/dt = (k A) (dT / dL)",
	" k = thermal conductivity of material",
}

var unitsKey = []string{
	"  Abbreviation:            Unit:",
	"",
	"       J                   Joules, a unit of energy",
	"       K                   Kelvin, a unit of temperature",
	"       m                   meters, a unit of length",
	"       s                   seconds, a unit of time",
}

var references = []string{
	`Georgia State University, "Thermal Conductivity", HyperPhysics`,
	"  http://hyperphysics.phy-astr.gsu.edu/hbase/thermo/thercond.html",
	"",
	`Neville Hogan, "Heat Transfer and the Second Law"`,
	"  https://ocw.mit.edu/courses/mechanical-engineering/2-141-modeling-and-simulation-of-dynamic-systems-fall-2006/lecture-notes/heat_transfer.pdf",
	"",
	`Daniel V. Schroeder, 2000, "An Introduction to Thermal Physics."`,
}

func WriteIntro(w io.Writer) error {
	if err := WriteSection(w, "", banner); err != nil {
		return err
	}
	return WriteSection(w, "Background", background)
}

func WriteOutro(w io.Writer) error {
	if err := WriteSection(w, "Units Key", unitsKey); err != nil {
		return err
	}
	return WriteSection(w, "References", references)
}
