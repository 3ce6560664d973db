package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"fourier/material"
)

func newMaterialsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List known materials and their thermal conductivity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return reportError(cmd, err)
			}
			materials, err := material.Load(cfg.MaterialsFile)
			if err != nil {
				return reportError(cmd, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "  %-12s %s\n", "Material", "Thermal conductivity (W/(m K))")
			for _, m := range materials.List() {
				fmt.Fprintf(out, "  %-12s %11.3f\n", m.Name, m.ThermalConductivity)
			}
			return nil
		},
	}
}
