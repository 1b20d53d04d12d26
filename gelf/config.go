package gelf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every option the resolver consults. It is a plain
// immutable value: build it once, pass it in, never mutate it while
// events are flowing.
type Config struct {
	// Sender resolves to the GELF host field.
	Sender string `yaml:"sender"`

	// Level candidates are probed in order for severity.
	// A candidate whose %{...} reference fails to resolve is skipped,
	// except the last one, which is used as-is.
	Level []string `yaml:"level"`

	// ShipMetadata flattens event fields into _-prefixed custom fields.
	ShipMetadata bool `yaml:"ship_metadata"`

	// ShipTags emits a _tags field from the event's tags sequence.
	ShipTags bool `yaml:"ship_tags"`

	// IgnoreMetadata lists fields excluded from flattening.
	IgnoreMetadata []string `yaml:"ignore_metadata"`

	// CustomFields are static _-prefixed fields, applied last.
	CustomFields map[string]any `yaml:"custom_fields"`

	// FullMessage is a template for the GELF full_message field.
	FullMessage string `yaml:"full_message"`

	// ShortMessage names the event field preferred as short_message.
	ShortMessage string `yaml:"short_message"`
}

func DefaultConfig() Config {
	return Config{
		Sender:       "%{host}",
		Level:        []string{"%{severity}", "INFO"},
		ShipMetadata: true,
		ShipTags:     true,
		IgnoreMetadata: []string{
			"@timestamp", "@version", "host",
			"source_host", "source_path", "short_message",
		},
		FullMessage:  "%{message}",
		ShortMessage: "short_message",
	}
}

// LoadConfig reads a YAML file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	dat, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed reading gelf config: %w", err)
	}
	if err := yaml.Unmarshal(dat, &cfg); err != nil {
		return cfg, fmt.Errorf("failed parsing gelf config: %w", err)
	}
	return cfg, nil
}

func (cfg *Config) ignores(field string) bool {
	for _, skip := range cfg.IgnoreMetadata {
		if field == skip {
			return true
		}
	}
	return false
}
