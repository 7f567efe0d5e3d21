// File: alloc/config.go
// Author: momentics <momentics@gmail.com>
//
// Declarative allocator construction. A YAML-tagged Config selects the
// backend and its wrappers, so deployments switch memory strategies without
// code changes.

package alloc

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/momentics/rawbuf/api"
)

// Config selects and tunes an allocator stack.
type Config struct {
	// Backend: "heap", "mmap" or "mapped".
	Backend string `yaml:"backend"`

	// HugePages requests 2 MiB pages on the mmap backend (Linux only).
	HugePages bool `yaml:"huge_pages"`

	// Dir is the region directory for the mapped backend.
	Dir string `yaml:"dir"`

	// FreeList enables size-classed recycling of released regions.
	FreeList FreeListConfig `yaml:"free_list"`

	// Metrics wraps the stack with Prometheus instrumentation.
	Metrics bool `yaml:"metrics"`

	// MetricsName labels the Prometheus series; defaults to the backend name.
	MetricsName string `yaml:"metrics_name"`
}

// FreeListConfig tunes the recycling wrapper.
type FreeListConfig struct {
	Enabled bool  `yaml:"enabled"`
	Classes []int `yaml:"classes"`
	Depth   int   `yaml:"depth"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read allocator config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse allocator config: %w", err)
	}
	return &cfg, nil
}

// New builds the allocator stack described by cfg. A nil logger disables
// logging on the instrumented wrapper.
func New(cfg Config, log *zap.Logger) (api.Allocator, error) {
	var backend api.Allocator
	switch cfg.Backend {
	case "", "heap":
		backend = NewHeap()
	case "mmap":
		backend = NewMmap(cfg.HugePages)
	case "mapped":
		dir := cfg.Dir
		if dir == "" {
			dir = os.TempDir()
		}
		m, err := NewMapped(dir)
		if err != nil {
			return nil, err
		}
		backend = m
	default:
		return nil, fmt.Errorf("backend %q: %w", cfg.Backend, api.ErrInvalidArgument)
	}

	if cfg.FreeList.Enabled {
		backend = NewFreeList(backend, cfg.FreeList.Classes, cfg.FreeList.Depth)
	}
	if cfg.Metrics {
		name := cfg.MetricsName
		if name == "" {
			name = cfg.Backend
			if name == "" {
				name = "heap"
			}
		}
		backend = NewInstrumented(backend, name, log)
	}
	return backend, nil
}
