// Loads sim.Config from a YAML file via bytes.NewReader + yaml.NewDecoder
// with KnownFields(true) strict decoding.

package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/modfleet/dispatch-sim/sim"
)

// LoadConfig reads and strictly decodes a run configuration file.
func LoadConfig(path string) (*sim.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg sim.Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
