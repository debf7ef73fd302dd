// SPDX-License-Identifier: MIT

package complexfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/homalg/simplicial"
)

// Format is a document encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// VertexList is one simplex as listed in a document. YAML renders it in flow style.
type VertexList []int

// MarshalYAML emits [0, 1, 2] rather than a block sequence.
func (l VertexList) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range l {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)})
	}

	return n, nil
}

// Document is the on-disk shape of a complex or filtration. Exactly one of
// Simplices and Stages is set.
type Document struct {
	Labels    map[string]string `yaml:"labels,omitempty" toml:"labels,omitempty"`
	Simplices []VertexList      `yaml:"simplices,omitempty" toml:"simplices,omitempty"`
	Stages    [][]VertexList    `yaml:"stages,omitempty" toml:"stages,omitempty"`
}

// FormatOf maps a file name to its format by extension.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrFormat, name)
	}
}

// ReadFile decodes the document stored at path.
func ReadFile(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("complexfile: %w", err)
	}

	return Decode(format, data)
}

// Decode parses data in the given format. Unknown keys are rejected.
func Decode(format Format, data []byte) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	case TOML:
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return &doc, nil
}

// Encode renders d in the given format.
func (d *Document) Encode(format Format) ([]byte, error) {
	switch format {
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	case TOML:
		return toml.Marshal(d)
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}
}

// IsFiltration reports whether the document lists stages.
func (d *Document) IsFiltration() bool { return len(d.Stages) > 0 }

// Complex returns the complex described by d; for a filtration document, its final stage.
func (d *Document) Complex() (*simplicial.Complex, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	labels, err := d.labels()
	if err != nil {
		return nil, err
	}
	var all []simplicial.Simplex
	if d.IsFiltration() {
		for t, stage := range d.Stages {
			ss, err := simplices(stage, t)
			if err != nil {
				return nil, err
			}
			all = append(all, ss...)
		}
	} else if all, err = simplices(d.Simplices, -1); err != nil {
		return nil, err
	}

	return simplicial.NewComplex(all, simplicial.WithLabels(labels)), nil
}

// Filtration returns the filtration described by d; a plain complex document is a
// single-stage filtration.
func (d *Document) Filtration() (*simplicial.Filtration, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	if !d.IsFiltration() {
		c, err := d.Complex()
		if err != nil {
			return nil, err
		}

		return simplicial.NewFiltration(c)
	}
	labels, err := d.labels()
	if err != nil {
		return nil, err
	}

	stages := make([]*simplicial.Complex, len(d.Stages))
	var acc []simplicial.Simplex
	for t, stage := range d.Stages {
		ss, err := simplices(stage, t)
		if err != nil {
			return nil, err
		}
		acc = append(acc, ss...)
		stages[t] = simplicial.NewComplex(acc, simplicial.WithLabels(labels))
	}

	return simplicial.NewFiltration(stages...)
}

func (d *Document) check() error {
	switch {
	case len(d.Simplices) > 0 && len(d.Stages) > 0:
		return ErrAmbiguous
	case len(d.Simplices) == 0 && len(d.Stages) == 0:
		return ErrEmpty
	}

	return nil
}

func (d *Document) labels() (map[simplicial.Vertex]string, error) {
	out := make(map[simplicial.Vertex]string, len(d.Labels))
	for k, l := range d.Labels {
		v, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrLabel, k)
		}
		out[simplicial.Vertex(v)] = l
	}

	return out, nil
}

// simplices converts vertex lists; stage < 0 means "not inside a filtration".
func simplices(lists []VertexList, stage int) ([]simplicial.Simplex, error) {
	out := make([]simplicial.Simplex, 0, len(lists))
	for i, vs := range lists {
		s, err := simplicial.NewSimplex(vertices(vs)...)
		if err != nil {
			if stage >= 0 {
				return nil, fmt.Errorf("complexfile: stage %d, simplex %d: %w", stage, i, err)
			}

			return nil, fmt.Errorf("complexfile: simplex %d: %w", i, err)
		}
		out = append(out, s)
	}

	return out, nil
}

func vertices(vs VertexList) []simplicial.Vertex {
	out := make([]simplicial.Vertex, len(vs))
	for i, v := range vs {
		out[i] = simplicial.Vertex(v)
	}

	return out
}
