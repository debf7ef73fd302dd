// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/homalg/builder"
	"github.com/katalvlaran/homalg/internal/complexfile"
	"github.com/katalvlaran/homalg/internal/config"
)

const (
	flagShapeSize   = "size"
	flagVertices    = "vertices"
	flagProbability = "probability"
	flagSeed        = "seed"
	flagMaxDim      = "max-dim"
	flagMaxTime     = "max-time"
	flagFormat      = "format"
	flagLabels      = "labels"
)

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample [SHAPE]",
		Short: "Write a canonical or random complex as a document.",
		Long: "Write one of cycle, disk, simplex, sphere, torus, rp2, klein or random-flag\n" +
			"to stdout. cycle and disk use --vertices, simplex and sphere use --size as\n" +
			"their dimension. random-flag with --max-time > 0 yields a filtration.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			sample, err := sampleConfig(cmd, s.cfg.Sample, args)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString(flagFormat)
			labels, _ := cmd.Flags().GetString(flagLabels)

			doc, err := sampleDocument(sample, labels)
			if err != nil {
				return err
			}
			data, err := doc.Encode(complexfile.Format(format))
			if err != nil {
				return err
			}
			_, err = s.out.Write(data)

			return err
		},
	}
	f := cmd.Flags()
	f.Int(flagShapeSize, 0, "dimension of simplex and sphere")
	f.IntP(flagVertices, "n", 0, "vertex count of cycle, disk and random-flag")
	f.Float64P(flagProbability, "p", 0, "edge probability of random-flag")
	f.Int64(flagSeed, 0, "random seed")
	f.Int(flagMaxDim, 0, "largest simplex dimension of random-flag")
	f.Int(flagMaxTime, 0, "latest edge entry time of random-flag (0 = single stage)")
	f.StringP(flagFormat, "f", string(complexfile.YAML), "output format: yaml or toml")
	f.String(flagLabels, "", "vertex labels: letters, or a prefix such as v")

	return cmd
}

// sampleConfig overlays explicitly set flags and the shape argument on the configured sample.
func sampleConfig(cmd *cobra.Command, sample config.Sample, args []string) (config.Sample, error) {
	f := cmd.Flags()
	if len(args) == 1 {
		sample.Shape = args[0]
	}
	if f.Changed(flagShapeSize) {
		sample.Size, _ = f.GetInt(flagShapeSize)
	}
	if f.Changed(flagVertices) {
		sample.Vertices, _ = f.GetInt(flagVertices)
	}
	if f.Changed(flagProbability) {
		sample.Probability, _ = f.GetFloat64(flagProbability)
	}
	if f.Changed(flagSeed) {
		sample.Seed, _ = f.GetInt64(flagSeed)
	}
	if f.Changed(flagMaxDim) {
		sample.MaxDim, _ = f.GetInt(flagMaxDim)
	}
	if f.Changed(flagMaxTime) {
		sample.MaxTime, _ = f.GetInt(flagMaxTime)
	}

	return sample, sample.Validate()
}

func sampleDocument(sample config.Sample, labels string) (*complexfile.Document, error) {
	opts := []builder.BuilderOption{builder.WithSeed(sample.Seed)}
	if sample.Shape == config.ShapeRandomFlag {
		opts = append(opts, builder.WithMaxDim(sample.MaxDim))
	}
	switch labels {
	case "":
	case "letters":
		opts = append(opts, builder.WithSymbolLabels())
	default:
		opts = append(opts, builder.WithPrefixLabels(labels))
	}

	if sample.Shape == config.ShapeRandomFlag && sample.MaxTime > 0 {
		opts = append(opts, builder.WithUniformTimes(0, sample.MaxTime))
		f, err := builder.RandomFlagFiltration(sample.Vertices, sample.Probability, opts...)
		if err != nil {
			return nil, err
		}

		return complexfile.FromFiltration(f), nil
	}

	var cons builder.Constructor
	switch sample.Shape {
	case config.ShapeCycle:
		cons = builder.Cycle(sample.Vertices)
	case config.ShapeDisk:
		cons = builder.Disk(sample.Vertices)
	case config.ShapeSimplex:
		cons = builder.Simplex(sample.Size)
	case config.ShapeSphere:
		cons = builder.Sphere(sample.Size)
	case config.ShapeTorus:
		cons = builder.Torus()
	case config.ShapeProjectivePlane:
		cons = builder.ProjectivePlane()
	case config.ShapeKleinBottle:
		cons = builder.KleinBottle()
	case config.ShapeRandomFlag:
		cons = builder.RandomFlag(sample.Vertices, sample.Probability)
	default:
		return nil, fmt.Errorf("%w: sample.shape = %s", config.ErrInvalid, sample.Shape)
	}
	c, err := builder.BuildComplex(opts, cons)
	if err != nil {
		return nil, err
	}

	return complexfile.FromComplex(c), nil
}
