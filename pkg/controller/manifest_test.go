package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
name: build-and-test
actions:
  build:
    configuration:
      container: golang:1.25
    commands:
      - go build ./...
  test:
    configuration:
      container: golang:1.25
    commands:
      - go vet ./...
      - go test ./...
`

func TestParseManifest(t *testing.T) {
	manifest, err := ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, "build-and-test", manifest.Name)
	require.Len(t, manifest.Actions, 2)

	test := manifest.Actions["test"]
	assert.Equal(t, "golang:1.25", test.Configuration.Container)
	assert.Equal(t, []string{"go vet ./...", "go test ./..."}, test.Commands)
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not yaml", input: "{{{"},
		{name: "missing name", input: "actions:\n  a:\n    configuration:\n      container: img\n"},
		{name: "no actions", input: "name: p\n"},
		{name: "action without container", input: "name: p\nactions:\n  a:\n    commands:\n      - ls\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}
