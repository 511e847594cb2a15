package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-dlt/dltcore/dlf"
	"github.com/go-dlt/dltcore/fibex"
	"github.com/go-dlt/dltcore/filter"
)

// fileConfig is the optional YAML config a caller can point dltctl at
// with --config, bundling the filter and FIBEX settings that are
// cumbersome to respecify as flags on every invocation.
type fileConfig struct {
	MinLogLevel *uint8   `yaml:"min_log_level,omitempty"`
	EcuIDs      []string `yaml:"ecu_ids,omitempty"`
	AppIDs      []string `yaml:"app_ids,omitempty"`
	ContextIDs  []string `yaml:"context_ids,omitempty"`
	FilterFile  string   `yaml:"filter_file,omitempty"`
	FibexFiles  []string `yaml:"fibex_files,omitempty"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	if path == "" {
		return &fileConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return &cfg, nil
}

// compileFilter builds a ProcessedFilterConfig. When a DLF filter file is
// set, the result comes from that file's (id, level) pairs and
// min_log_level only; the config file's own ecu/app/context lists are not
// merged in. Otherwise it is built from those lists, or is nil when
// nothing is configured.
func (c *fileConfig) compileFilter() (*filter.ProcessedFilterConfig, error) {
	if c.FilterFile != "" {
		dlfCfg, err := dlf.LoadFile(c.FilterFile)
		if err != nil {
			return nil, fmt.Errorf("loading filter file: %w", err)
		}

		minLevel := uint8(0)
		return dlfCfg.Compile(minLevel, c.MinLogLevel), nil
	}

	if c.MinLogLevel == nil && len(c.EcuIDs) == 0 && len(c.AppIDs) == 0 && len(c.ContextIDs) == 0 {
		return nil, nil
	}

	return filter.Compile(filter.Config{
		MinLogLevel: c.MinLogLevel,
		EcuIDs:      c.EcuIDs,
		AppIDs:      c.AppIDs,
		ContextIDs:  c.ContextIDs,
	}), nil
}

func (c *fileConfig) loadFibex() (*fibex.Metadata, error) {
	if len(c.FibexFiles) == 0 {
		return nil, nil
	}

	return fibex.LoadFiles(c.FibexFiles...)
}
