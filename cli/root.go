package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fourier/calculator"
	"fourier/config"
	"fourier/material"
	"fourier/report"
	"fourier/simulation"
	"fourier/store"
)

// Execute runs the command line.
func Execute() error {
	return newRootCmd().Execute()
}

type rootOptions struct {
	configPath  string
	logLevel    string
	output      string
	interactive bool
	sink        string
	full        bool
	quiet       bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	def := config.Default()

	cmd := &cobra.Command{
		Use:           "fourier",
		Short:         "Steady heat conduction between two constant-temperature reservoirs",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return reportError(cmd, err)
			}
			return reportError(cmd, run(cmd, cfg, opts))
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", config.DefaultPath, "ini configuration file")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (overrides [log] level)")

	f := cmd.Flags()
	f.String("material", def.Input.Material, "conductor material")
	f.Float64("area", def.Input.Area, "conductor area in m^2")
	f.Float64("length", def.Input.Length, "conductor length in m")
	f.Float64("hot", def.Input.HotTemp, "hot reservoir temperature in K")
	f.Float64("cold", def.Input.ColdTemp, "cold reservoir temperature in K")
	f.StringVarP(&opts.output, "output", "o", "", "output file the record is appended to")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "ask for the output file name")
	f.StringVar(&opts.sink, "sink", "", "record sink: csv or sqlite")
	f.BoolVar(&opts.full, "full", false, "persist all seven fields instead of hot, cold and heat flow")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "print parameters and results only")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newMaterialsCmd(opts))
	return cmd
}

// loadConfig reads the ini file, applies flags set on the command line and
// configures logging.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	f := cmd.Flags()
	if f.Lookup("material") != nil {
		if f.Changed("material") {
			cfg.Input.Material, _ = f.GetString("material")
		}
		if f.Changed("area") {
			cfg.Input.Area, _ = f.GetFloat64("area")
		}
		if f.Changed("length") {
			cfg.Input.Length, _ = f.GetFloat64("length")
		}
		if f.Changed("hot") {
			cfg.Input.HotTemp, _ = f.GetFloat64("hot")
		}
		if f.Changed("cold") {
			cfg.Input.ColdTemp, _ = f.GetFloat64("cold")
		}
	}
	if opts.sink != "" {
		cfg.SetSink(opts.sink)
	}
	if opts.output != "" {
		cfg.OutputFile = opts.output
	}
	if opts.full {
		cfg.FullRecord = true
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	if err := setupLogging(cmd.ErrOrStderr(), cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func setupLogging(w io.Writer, cfg config.Config) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetOutput(w)
	log.SetLevel(level)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{DisableColors: true})
	}
	return nil
}

func run(cmd *cobra.Command, cfg config.Config, opts *rootOptions) error {
	out := cmd.OutOrStdout()

	materials, err := material.Load(cfg.MaterialsFile)
	if err != nil {
		return err
	}
	sim := simulation.New(calculator.NewCalculator(materials), nil,
		simulation.WithOutput(out),
		simulation.WithPrecision(cfg.Precision))

	// Invalid input fails before anything is printed, asked or opened.
	o, err := sim.Evaluate(cfg.Input)
	if err != nil {
		return err
	}

	if !opts.quiet {
		if err := report.WriteIntro(out); err != nil {
			return err
		}
	}
	if opts.interactive {
		name, err := promptOutputFile(cmd.InOrStdin(), out, cfg.OutputFile)
		if err != nil {
			return err
		}
		cfg.OutputFile = name
	}

	sink, err := store.Open(cfg.Sink, cfg.OutputFile, cfg.FullRecord)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := sink.Close(); cerr != nil {
			log.WithError(cerr).Warn("close sink")
		}
	}()

	if _, err := sim.Into(sink).Emit(o); err != nil {
		return err
	}

	fmt.Fprintln(out, "Simulation is completed.")
	fmt.Fprintln(out)
	if !opts.quiet {
		return report.WriteOutro(out)
	}
	return nil
}

// promptOutputFile asks for the output file; an empty answer keeps def.
func promptOutputFile(in io.Reader, out io.Writer, def string) (string, error) {
	fmt.Fprintf(out, "What is the desired name for your output file? [%s]:\n> ", def)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read output file name: %w", err)
	}
	fmt.Fprintln(out)
	if name := strings.TrimSpace(line); name != "" {
		return name, nil
	}
	return def, nil
}

func reportError(cmd *cobra.Command, err error) error {
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "ERROR: %v\n", err)
	}
	return err
}
