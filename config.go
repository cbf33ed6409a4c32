//
// Copyright 2018 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package spinfetch

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Config contains the configuration for a spinfetch run
type Config struct {
	// HttpClient to use to perform HTTP requests
	HttpClient http.Client `yaml:"-"`
	// ExtraHeaders to add to the HTTP requests.
	ExtraHeaders map[string]string `yaml:"headers"`
	// Timeout bounds the whole fetch. If set to 0, the fetch may wait forever.
	Timeout time.Duration `yaml:"timeout"`
	// InactivityTimeout is the duration after which, if no data is received,
	// the download is aborted. If set to 0, no timeout is applied.
	InactivityTimeout time.Duration `yaml:"inactivity_timeout"`
	// BaseURL is the location the catalog paths are relative to.
	BaseURL string `yaml:"base_url"`
	// OutputDir is the directory where the downloaded file is saved.
	OutputDir string `yaml:"output_dir"`
	// TargetSize is the size, in bytes, used to pick an image from the catalog.
	TargetSize int64 `yaml:"target_size"`
	// Label is displayed next to the spinner.
	Label string `yaml:"label"`
	// SpinInterval is the time between two spinner frames.
	SpinInterval time.Duration `yaml:"spin_interval"`
	// Catalog of downloadable images. DefaultCatalog is used when empty.
	Catalog Catalog `yaml:"catalog"`
	// Out receives the spinner output. os.Stdout is used when nil.
	Out io.Writer `yaml:"-"`
}

var defaultConfig Config = Config{
	BaseURL:      DefaultBaseURL,
	OutputDir:    "downloads",
	TargetSize:   7_000_000,
	Label:        "thinking!",
	SpinInterval: 100 * time.Millisecond,
}
var defaultConfigLock sync.Mutex

// SetDefaultConfig sets the configuration that will be used by Run when
// no explicit configuration is given.
func SetDefaultConfig(newConfig Config) {
	defaultConfigLock.Lock()
	defer defaultConfigLock.Unlock()
	defaultConfig = newConfig
}

// GetDefaultConfig returns a copy of the default configuration. The default
// configuration can be changed using the SetDefaultConfig function.
func GetDefaultConfig() Config {
	defaultConfigLock.Lock()
	defer defaultConfigLock.Unlock()

	cfg := defaultConfig
	if cfg.ExtraHeaders != nil {
		cfg.ExtraHeaders = make(map[string]string, len(defaultConfig.ExtraHeaders))
		for k, v := range defaultConfig.ExtraHeaders {
			cfg.ExtraHeaders[k] = v
		}
	}
	cfg.Catalog = append(Catalog(nil), defaultConfig.Catalog...)
	return cfg
}

// LoadConfig reads a YAML file and overlays its values on the default
// configuration.
func LoadConfig(path string) (Config, error) {
	cfg := GetDefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) catalog() Catalog {
	if len(c.Catalog) == 0 {
		return DefaultCatalog
	}
	return c.Catalog
}

func (c Config) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}
