package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/ini.v1"

	"fourier/model"
	"fourier/report"
	"fourier/store"
)

const (
	DefaultPath       = "conf/config.ini"
	DefaultOutputFile = "fourier_conduction_constant.csv"
	DefaultSQLiteFile = "fourier_conduction_constant.db"
	DefaultAddr       = ":9000"
)

type Config struct {
	Input model.Input

	OutputFile string
	Sink       string
	FullRecord bool
	Precision  int

	MaterialsFile string

	Addr string

	LogLevel  string
	LogFormat string
}

// Default reproduces the fixed parameters: a copper bar of 1 m^2 and 200 m
// between reservoirs at 1000 K and 300 K.
func Default() Config {
	return Config{
		Input: model.Input{
			Material: "copper",
			Area:     1.0,
			Length:   200.0,
			HotTemp:  1000,
			ColdTemp: 300,
		},
		OutputFile: DefaultOutputFile,
		Sink:       store.KindCSV,
		Precision:  report.DefaultPrecision,
		Addr:       DefaultAddr,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load reads the ini file at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	file, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return loadCfg(file), nil
}

// DefaultOutputFor is the file a sink kind writes to when none is configured.
func DefaultOutputFor(sink string) string {
	if sink == store.KindSQLite {
		return DefaultSQLiteFile
	}
	return DefaultOutputFile
}

// SetSink switches the sink kind. An output file left at the default of the
// previous kind moves to the default of the new one.
func (c *Config) SetSink(kind string) {
	if c.OutputFile == DefaultOutputFor(c.Sink) {
		c.OutputFile = DefaultOutputFor(kind)
	}
	c.Sink = kind
}

func loadCfg(file *ini.File) Config {
	d := Default()
	sink := file.Section("output").Key("sink").In(d.Sink, []string{store.KindCSV, store.KindSQLite})
	return Config{
		Input: model.Input{
			Material: file.Section("conductor").Key("material").MustString(d.Input.Material),
			Area:     file.Section("conductor").Key("area").MustFloat64(d.Input.Area),
			Length:   file.Section("conductor").Key("length").MustFloat64(d.Input.Length),
			HotTemp:  file.Section("reservoir").Key("hot").MustFloat64(d.Input.HotTemp),
			ColdTemp: file.Section("reservoir").Key("cold").MustFloat64(d.Input.ColdTemp),
		},
		OutputFile:    file.Section("output").Key("file").MustString(DefaultOutputFor(sink)),
		Sink:          sink,
		FullRecord:    file.Section("output").Key("full_record").MustBool(d.FullRecord),
		Precision:     file.Section("output").Key("precision").MustInt(d.Precision),
		MaterialsFile: file.Section("materials").Key("file").MustString(d.MaterialsFile),
		Addr:          file.Section("server").Key("addr").MustString(d.Addr),
		LogLevel:      file.Section("log").Key("level").MustString(d.LogLevel),
		LogFormat:     file.Section("log").Key("format").In(d.LogFormat, []string{"text", "json"}),
	}
}
