package cli

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	want := []string{"search", "compare", "render", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	c.SetLogLevel(log.DebugLevel)

	if got := c.Logger.GetLevel(); got != log.DebugLevel {
		t.Errorf("level = %v, want %v", got, log.DebugLevel)
	}
}

func TestNewCacheFallsBackToNull(t *testing.T) {
	if c := newCache(true); c == nil {
		t.Fatal("newCache(true) returned nil")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output, graphPath, format string
		want                      string
	}{
		{"", "", "svg", "graph.svg"},
		{"", "lab.toml", "svg", "lab.svg"},
		{"", "lab.json", "dot", "lab.dot"},
		{"out.svg", "lab.toml", "svg", "out.svg"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.output, tt.graphPath, tt.format); got != tt.want {
			t.Errorf("outputPath(%q, %q, %q) = %q, want %q",
				tt.output, tt.graphPath, tt.format, got, tt.want)
		}
	}
}
