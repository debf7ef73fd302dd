// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/homalg/matrix"
)

// Coefficient names understood by the CLI.
const (
	CoeffZ  = "Z"
	CoeffQ  = "Q"
	CoeffZ2 = "Z2"
	CoeffZ3 = "Z3"
	CoeffZ5 = "Z5"
	CoeffZ7 = "Z7"
	CoeffFr = "Fr"
)

// Rendering styles; StyleAuto picks Unicode on a terminal and ASCII otherwise.
const (
	StyleAuto    = "auto"
	StyleUnicode = "unicode"
	StyleASCII   = "ascii"
)

// Sample shapes.
const (
	ShapeCycle           = "cycle"
	ShapeDisk            = "disk"
	ShapeSimplex         = "simplex"
	ShapeSphere          = "sphere"
	ShapeTorus           = "torus"
	ShapeProjectivePlane = "rp2"
	ShapeKleinBottle     = "klein"
	ShapeRandomFlag      = "random-flag"
)

var (
	coefficients = []string{CoeffZ, CoeffQ, CoeffZ2, CoeffZ3, CoeffZ5, CoeffZ7, CoeffFr}
	fields       = []string{CoeffQ, CoeffZ2, CoeffZ3, CoeffZ5, CoeffZ7, CoeffFr}
	styles       = []string{StyleAuto, StyleUnicode, StyleASCII}
	shapes       = []string{ShapeCycle, ShapeDisk, ShapeSimplex, ShapeSphere, ShapeTorus,
		ShapeProjectivePlane, ShapeKleinBottle, ShapeRandomFlag}
	storages = map[string]matrix.Storage{"dense": matrix.Dense, "sparse": matrix.Sparse}
)

// Config is the full CLI configuration.
type Config struct {
	Coefficients string `toml:"coefficients"`
	Storage      string `toml:"storage"`
	Parallelism  int    `toml:"parallelism"`
	Style        string `toml:"style"`
	Verbose      bool   `toml:"verbose"`
	Sample       Sample `toml:"sample"`
}

// Sample configures the sample command.
type Sample struct {
	Shape       string  `toml:"shape"`
	Size        int     `toml:"size"`
	Vertices    int     `toml:"vertices"`
	Probability float64 `toml:"probability"`
	Seed        int64   `toml:"seed"`
	MaxDim      int     `toml:"max_dim"`
	MaxTime     int     `toml:"max_time"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Coefficients: CoeffZ,
		Storage:      matrix.Sparse.String(),
		Style:        StyleAuto,
		Sample: Sample{
			Shape:       ShapeTorus,
			Size:        2,
			Vertices:    8,
			Probability: 0.5,
			Seed:        1,
			MaxDim:      2,
		},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	return Parse(path, data)
}

// Parse decodes TOML data over the defaults and validates the result.
func Parse(source string, data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrParse, source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", source, err)
	}

	return cfg, nil
}

// Validate checks every enumerated and numeric field.
func (c Config) Validate() error {
	switch {
	case !slices.Contains(coefficients, c.Coefficients):
		return invalid("coefficients", c.Coefficients)
	case !slices.Contains(styles, c.Style):
		return invalid("style", c.Style)
	case c.Parallelism < 0:
		return invalid("parallelism", c.Parallelism)
	}
	if _, ok := storages[c.Storage]; !ok {
		return invalid("storage", c.Storage)
	}

	return c.Sample.Validate()
}

// Validate checks the sample section.
func (s Sample) Validate() error {
	switch {
	case !slices.Contains(shapes, s.Shape):
		return invalid("sample.shape", s.Shape)
	case s.Size < 0:
		return invalid("sample.size", s.Size)
	case s.Vertices < 1:
		return invalid("sample.vertices", s.Vertices)
	case s.Probability < 0 || s.Probability > 1:
		return invalid("sample.probability", s.Probability)
	case s.MaxDim < 0:
		return invalid("sample.max_dim", s.MaxDim)
	case s.MaxTime < 0:
		return invalid("sample.max_time", s.MaxTime)
	}

	return nil
}

// MatrixStorage returns the parsed storage layout.
func (c Config) MatrixStorage() matrix.Storage { return storages[c.Storage] }

// IsField reports whether name denotes a coefficient field (persistence needs one).
func IsField(name string) bool { return slices.Contains(fields, name) }

// Encode renders c as TOML.
func (c Config) Encode() ([]byte, error) { return toml.Marshal(c) }

func invalid(key string, v any) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalid, key, v)
}
