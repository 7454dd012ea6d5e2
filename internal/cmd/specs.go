package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// loadSpecs reads a YAML file containing a list of feature-expression
// strings, the format every compile/run/dot/diff subcommand accepts as
// input (spec.md §6's compile interface takes specs as a list<string>; the
// CLI's job is only to get that list from a file into memory).
func loadSpecs(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading specs file: %w", err)
	}

	var specs []string
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parsing specs YAML: %w", err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("specs file %s contains no feature expressions", path)
	}
	return specs, nil
}
