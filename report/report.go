package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"fourier/model"
)

const (
	numberFormat = "%11.3f"

	// DefaultPrecision is the number of decimals persisted per field.
	// A negative precision keeps the shortest text that reads back the
	// same float64. Console lines always use three decimals.
	DefaultPrecision = -1
)

// Formatted is the console view of one result plus the row to persist.
type Formatted struct {
	Results []string
	Record  model.Record
}

// FormatRecord renders the result for display and flattens it into a record.
func FormatRecord(res model.Result, hotTemp, coldTemp float64, precision int) Formatted {
	return Formatted{
		Results: []string{
			line("Rate of thermal energy flow (J/s):", res.HeatFlow, ""),
			line("Rate of entropy change in hot reservoir (J/(K s)):", res.EntropyFlowHot, ""),
			line("Rate of entropy change in cold reservoir (J/(K s)):", res.EntropyFlowCold, ""),
			line("Rate of change in total entropy (J/(K s)):", res.NetEntropyRate, ""),
		},
		Record: model.Record{
			HotTemp:         decimal(hotTemp, precision),
			ColdTemp:        decimal(coldTemp, precision),
			TempDiff:        decimal(res.TempDiff, precision),
			HeatFlow:        decimal(res.HeatFlow, precision),
			EntropyFlowHot:  decimal(res.EntropyFlowHot, precision),
			EntropyFlowCold: decimal(res.EntropyFlowCold, precision),
			NetEntropyRate:  decimal(res.NetEntropyRate, precision),
		},
	}
}

// Parameters renders the resolved inputs.
func Parameters(in model.Input, conductivity float64) []string {
	return []string{
		line("Hot temp (in K):", in.HotTemp, ""),
		line("Cold temp (in K):", in.ColdTemp, ""),
		line("Thermal conductivity:", conductivity, " in Watts/meter/Kelvin"),
		line("Area (in m^2):", in.Area, ""),
		line("Length (in m):", in.Length, ""),
		fmt.Sprintf("  %-52s %7s", "Material:", in.Material),
	}
}

func line(label string, v float64, unit string) string {
	return fmt.Sprintf("  %-52s "+numberFormat+"%s", label, v, unit)
}

func decimal(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// WriteSection writes a titled block of lines followed by a blank line.
func WriteSection(w io.Writer, title string, lines []string) error {
	var b strings.Builder
	if title != "" {
		b.WriteString(heading(title))
	}
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func heading(title string) string {
	const width = 79
	title = " " + title + " "
	left := (width - len(title)) / 2
	if left < 0 {
		left = 0
	}
	right := width - len(title) - left
	if right < 0 {
		right = 0
	}
	return strings.Repeat("=", left) + title + strings.Repeat("=", right) + "\n\n"
}
