// ABOUTME: Host configuration loaded from an optional YAML file.
// ABOUTME: A missing file yields defaults; a malformed file is a startup error.
package tui

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bradysimon/snowscape/preview"
)

// Config holds host-level settings for the preview application.
type Config struct {
	// SidebarWidth is the character width of the preview list sidebar.
	SidebarWidth int `yaml:"sidebar_width"`
	// ConfigPaneHeight is the line height of the configuration pane.
	ConfigPaneHeight int `yaml:"config_pane_height"`
	// SlowCallThresholdMs overrides, for display only, the latency above
	// which the performance pane flags a duration as slow. Zero means the
	// recorder's own threshold.
	SlowCallThresholdMs int `yaml:"slow_call_threshold_ms"`
	// InspectorAddr is the listen address for the HTTP inspector.
	// Empty disables the inspector.
	InspectorAddr string `yaml:"inspector_addr"`
}

// SlowCallThreshold returns the display threshold as a duration, falling
// back to the recorder's threshold when no override is configured.
func (c Config) SlowCallThreshold() time.Duration {
	if c.SlowCallThresholdMs <= 0 {
		return preview.SlowCallThreshold
	}
	return time.Duration(c.SlowCallThresholdMs) * time.Millisecond
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		SidebarWidth:     30,
		ConfigPaneHeight: 12,
	}
}

// LoadConfig reads a YAML config file, filling unset fields with defaults.
// A missing file returns the defaults without error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.SidebarWidth <= 0 {
		cfg.SidebarWidth = DefaultConfig().SidebarWidth
	}
	if cfg.ConfigPaneHeight <= 0 {
		cfg.ConfigPaneHeight = DefaultConfig().ConfigPaneHeight
	}
	return cfg, nil
}
