// Package config loads the graphwalk configuration file and turns its graph
// section into a [graph.Graph] keyed by vertex label.
//
// A config file is TOML:
//
//	[log]
//	level = "debug"
//
//	[graph]
//	vertices = ["A", "B", "C"]
//	edges = [["A", "B"], ["B", "C"]]
//
// Unknown keys are rejected so that typos surface instead of silently
// producing a smaller graph.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	charmlog "github.com/charmbracelet/log"

	gwerrors "github.com/matzehuels/graphwalk/pkg/errors"
)

// Config is the decoded configuration file.
type Config struct {
	Log   LogConfig   `toml:"log"`
	Graph GraphConfig `toml:"graph"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error or fatal. Empty means info.
	Level string `toml:"level"`
}

// GraphConfig declares the vertices and edges of the graph to build.
// Vertices are added in the order listed, then edges in the order listed;
// traversal output depends on both orders.
type GraphConfig struct {
	Vertices []string   `toml:"vertices"`
	Edges    [][]string `toml:"edges"`
}

// Default returns an empty configuration at info level.
func Default() *Config {
	return &Config{Log: LogConfig{Level: "info"}}
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	if err := gwerrors.ValidateConfigPath(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, gwerrors.Wrap(gwerrors.ErrCodeFileNotFound, err, "config file %s", path)
	}
	if err != nil {
		return nil, gwerrors.Wrap(gwerrors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	cfg, err := Parse(string(data))
	if err != nil {
		return nil, gwerrors.Wrap(gwerrors.GetCode(err), err, "%s", path)
	}
	return cfg, nil
}

// Parse decodes and validates TOML config data.
func Parse(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, gwerrors.Wrap(gwerrors.ErrCodeInvalidConfig, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, gwerrors.New(gwerrors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the log level, every vertex label and every edge. Edge
// endpoints must be declared vertices.
func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	declared := make(map[string]bool, len(c.Graph.Vertices))
	for _, label := range c.Graph.Vertices {
		if err := gwerrors.ValidateVertexLabel(label); err != nil {
			return err
		}
		declared[label] = true
	}

	for i, e := range c.Graph.Edges {
		if len(e) != 2 {
			return gwerrors.New(gwerrors.ErrCodeInvalidEdge, "edge %d must list exactly two vertices, got %d", i, len(e))
		}
		for _, label := range e {
			if !declared[label] {
				return gwerrors.New(gwerrors.ErrCodeVertexNotFound, "edge %d references undeclared vertex %q", i, label)
			}
		}
	}
	return nil
}

// LogLevel parses Log.Level. An empty level means info.
func (c *Config) LogLevel() (charmlog.Level, error) {
	if c.Log.Level == "" {
		return charmlog.InfoLevel, nil
	}
	level, err := charmlog.ParseLevel(c.Log.Level)
	if err != nil {
		return charmlog.InfoLevel, gwerrors.Wrap(gwerrors.ErrCodeInvalidConfig, err, "log level %q", c.Log.Level)
	}
	return level, nil
}

// Extend appends vertices and "A:B" edge specs given on the command line
// after those already declared, then revalidates.
func (c *Config) Extend(vertices, edges []string) error {
	c.Graph.Vertices = append(c.Graph.Vertices, vertices...)
	for _, spec := range edges {
		from, to, err := gwerrors.ParseEdgeSpec(spec)
		if err != nil {
			return err
		}
		c.Graph.Edges = append(c.Graph.Edges, []string{from, to})
	}
	return c.Validate()
}
