package cli

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fourier/calculator"
	"fourier/material"
	"fourier/server"
	"fourier/simulation"
	"fourier/store"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve evaluations over a websocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return reportError(cmd, err)
			}
			if addr != "" {
				cfg.Addr = addr
			}

			materials, err := material.Load(cfg.MaterialsFile)
			if err != nil {
				return reportError(cmd, err)
			}
			sink, err := store.Open(cfg.Sink, cfg.OutputFile, cfg.FullRecord)
			if err != nil {
				return reportError(cmd, err)
			}
			defer func() {
				if cerr := sink.Close(); cerr != nil {
					log.WithError(cerr).Warn("close sink")
				}
			}()

			sim := simulation.New(calculator.NewCalculator(materials), sink,
				simulation.WithPrecision(cfg.Precision))
			upgrader := websocket.Upgrader{
				ReadBufferSize:  1024,
				WriteBufferSize: 1024,
				CheckOrigin: func(r *http.Request) bool {
					return true
				},
			}
			s := server.NewServer(cfg.Addr, upgrader, sim, materials, cfg.Input)
			return reportError(cmd, s.Serve())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides [server] addr)")
	return cmd
}
