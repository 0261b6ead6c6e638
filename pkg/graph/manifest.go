package graph

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is the TOML file format for graph definitions.
//
//	name = "lab"
//
//	[nodes]
//	A = ["D", "B"]
//	B = ["C", "E", "G"]
//	F = []
//
// Successor lists keep their written order; nodes referenced only as
// successors are created with zero successors of their own.
type Manifest struct {
	Name  string              `toml:"name"`
	Nodes map[string][]string `toml:"nodes"`
}

// ParseManifest decodes a TOML graph manifest into a Digraph.
func ParseManifest(data []byte) (*Digraph, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(m.Nodes) == 0 {
		return nil, fmt.Errorf("parse manifest: no nodes defined")
	}
	return FromAdjacency(m.Nodes)
}

// ReadManifestFile reads a TOML manifest file and returns the decoded Digraph.
func ReadManifestFile(path string) (*Digraph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseManifest(data)
}

// Load reads a graph from path, choosing the decoder by file extension:
// .toml manifests and .json wire files are supported.
func Load(path string) (*Digraph, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ReadManifestFile(path)
	case ".json":
		return ReadFile(path)
	default:
		return nil, fmt.Errorf("load %s: unsupported extension (want .toml or .json)", path)
	}
}
