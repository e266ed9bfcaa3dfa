package deploycfg

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a JSON file from the given path, decodes it into a Root and
// validates it. Any failure is fatal to the pipeline: the file is the only
// source of upstream endpoint declarations and there is no defaulting.
func Load(path string) (*Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	var cfg Root
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
