package controller

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ManifestPipeline is the parsed form of a pipeline manifest submitted with
// a repository event.
type ManifestPipeline struct {
	Name    string                    `yaml:"name"`
	Actions map[string]ActionManifest `yaml:"actions"`
}

// ActionManifest describes one action of a manifest.
type ActionManifest struct {
	Configuration Configuration `yaml:"configuration"`
	Commands      []string      `yaml:"commands"`
}

// Configuration carries the execution environment of an action.
type Configuration struct {
	Container string `yaml:"container"`
}

// ParseManifest turns manifest bytes into a ManifestPipeline. It is a pure
// function; persistence and scheduling happen elsewhere.
func ParseManifest(data []byte) (*ManifestPipeline, error) {
	var manifest ManifestPipeline
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if manifest.Name == "" {
		return nil, fmt.Errorf("manifest has no name")
	}
	if len(manifest.Actions) == 0 {
		return nil, fmt.Errorf("manifest %q has no actions", manifest.Name)
	}
	for name, action := range manifest.Actions {
		if action.Configuration.Container == "" {
			return nil, fmt.Errorf("action %q has no container image", name)
		}
	}

	return &manifest, nil
}
