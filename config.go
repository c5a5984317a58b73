package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of the avm command that may come from a config
// file; command line flags take precedence.
type Config struct {
	Trace      bool   `yaml:"trace"`
	Prompt     string `yaml:"prompt"`
	Terminator string `yaml:"terminator"`
	DumpOnExit bool   `yaml:"dump_on_exit"`
}

func defaultConfig() Config {
	return Config{
		Prompt:     "avm> ",
		Terminator: ";;",
	}
}

// loadConfig reads a YAML config file over the defaults. An empty name yields
// the defaults unchanged.
func loadConfig(name string) (Config, error) {
	conf := defaultConfig()
	if name == "" {
		return conf, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return conf, err
	}
	defer f.Close()
	if err := conf.decode(f); err != nil {
		return conf, fmt.Errorf("invalid config %v: %w", name, err)
	}
	return conf, nil
}

func (conf *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(conf); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if conf.Terminator == "" {
		return errors.New("terminator must not be empty")
	}
	return nil
}
