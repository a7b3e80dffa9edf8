package fs

import (
	"os"

	"github.com/jkoenig72/sfcrawl"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads and validates a YAML crawl configuration. Zero
// values are filled with defaults by Validate.
func LoadConfig(path string) (*sfcrawl.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, sfcrawl.Errorf(sfcrawl.ENOTFOUND, "reading config %s: %v", path, err)
	}

	var cfg sfcrawl.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, sfcrawl.Errorf(sfcrawl.EINVALID, "parsing config %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadManifest reads and validates a YAML start-link manifest.
func LoadManifest(path string) (*sfcrawl.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, sfcrawl.Errorf(sfcrawl.ENOTFOUND, "reading manifest %s: %v", path, err)
	}

	var m sfcrawl.Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, sfcrawl.Errorf(sfcrawl.EINVALID, "parsing manifest %s: %v", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}
