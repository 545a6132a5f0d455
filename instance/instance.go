// SPDX-License-Identifier: MIT
// Package: mwis/instance
//
// instance.go - on-disk MWIS problem instances.
//
// Format (YAML):
//
//	name: cycle4
//	weights: [1, 5, 1, 5]
//	edges:
//	  - [0, 1]
//	  - [1, 2]
//
// Files whose path ends in ".zst" are zstd-compressed transparently.

// Package instance reads and writes weighted graph instances as YAML files,
// optionally zstd-compressed.
package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mwis/graph"
)

// CompressedSuffix marks instance files stored zstd-compressed.
const CompressedSuffix = ".zst"

// ErrMalformedInstance is returned for documents that decode but do not
// describe a graph (for example an edge with three endpoints).
var ErrMalformedInstance = errors.New("instance: malformed instance")

// Instance is the serialized form of a weighted graph.
type Instance struct {
	Name    string    `yaml:"name,omitempty"`
	Weights []float64 `yaml:"weights"`
	Edges   [][]int   `yaml:"edges,flow"`
}

// FromGraph captures g as an Instance with edges listed once, u < v.
func FromGraph(name string, g *graph.Graph) Instance {
	pairs := g.Edges()
	edges := make([][]int, len(pairs))
	for i, e := range pairs {
		edges[i] = []int{e[0], e[1]}
	}
	return Instance{Name: name, Weights: g.Weights(), Edges: edges}
}

// Graph validates the instance and builds the graph.
//
// Errors: ErrMalformedInstance for edges that are not pairs;
// graph.ErrInvalidGraphInput for everything the graph constructors reject.
func (in Instance) Graph() (*graph.Graph, error) {
	pairs := make([][2]int, len(in.Edges))
	for i, e := range in.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("%w: edge %d has %d endpoints", ErrMalformedInstance, i, len(e))
		}
		pairs[i] = [2]int{e[0], e[1]}
	}
	g, err := graph.FromEdges(len(in.Weights), in.Weights, pairs)
	if err != nil {
		return nil, fmt.Errorf("instance %q: %w", in.Name, err)
	}
	return g, nil
}

// Decode reads one YAML instance from r.
func Decode(r io.Reader) (Instance, error) {
	var in Instance
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return Instance{}, fmt.Errorf("%w: empty document", ErrMalformedInstance)
		}
		return Instance{}, fmt.Errorf("instance: decode: %w", err)
	}
	return in, nil
}

// Encode writes in to w as YAML.
func Encode(w io.Writer, in Instance) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(in); err != nil {
		return fmt.Errorf("instance: encode: %w", err)
	}
	return enc.Close()
}

// Load reads an instance file, decompressing it when path ends in ".zst".
func Load(path string) (Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return Instance{}, fmt.Errorf("instance: open: %w", err)
	}
	defer f.Close()

	if !strings.HasSuffix(path, CompressedSuffix) {
		return Decode(bufio.NewReader(f))
	}
	zr, err := zstd.NewReader(f)
	if err != nil {
		return Instance{}, fmt.Errorf("instance: zstd reader: %w", err)
	}
	defer zr.Close()
	return Decode(zr)
}

// Save writes an instance file, compressing it when path ends in ".zst".
func Save(path string, in Instance) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("instance: create: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("instance: close: %w", cerr)
		}
	}()

	if !strings.HasSuffix(path, CompressedSuffix) {
		bw := bufio.NewWriter(f)
		if err = Encode(bw, in); err != nil {
			return err
		}
		return bw.Flush()
	}

	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("instance: zstd writer: %w", err)
	}
	if err = Encode(zw, in); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}

// LoadGraph is Load followed by Instance.Graph.
func LoadGraph(path string) (*graph.Graph, Instance, error) {
	in, err := Load(path)
	if err != nil {
		return nil, Instance{}, err
	}
	g, err := in.Graph()
	if err != nil {
		return nil, in, err
	}
	return g, in, nil
}
