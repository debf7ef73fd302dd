// SPDX-License-Identifier: MIT

package homology_test

import (
	"context"
	"testing"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/homalg/builder"
	"github.com/katalvlaran/homalg/chain"
	"github.com/katalvlaran/homalg/elimination"
	"github.com/katalvlaran/homalg/homology"
	"github.com/katalvlaran/homalg/matrix"
)

type ComputeSuite struct {
	suite.Suite
	cc *chain.Complex[Z]
}

func (s *ComputeSuite) SetupTest() {
	sc, err := builder.BuildComplex(nil, builder.Torus())
	s.Require().NoError(err)
	s.cc, err = chain.FromSimplicial[Z](sc)
	s.Require().NoError(err)
}

func (s *ComputeSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := homology.Compute(ctx, s.cc)
	s.Require().Error(err)
	s.True(elimination.IsCancelled(err))
	s.ErrorIs(err, context.Canceled)
}

func (s *ComputeSuite) TestRetryAfterCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := homology.Compute(ctx, s.cc)
	s.Require().Error(err)

	h, err := homology.Compute(context.Background(), s.cc)
	s.Require().NoError(err)
	s.Equal([]int{1, 2, 1}, h.Betti())
}

func (s *ComputeSuite) TestSequentialMatchesParallel() {
	seq, err := homology.Compute(context.Background(), s.cc, homology.WithParallelism(1))
	s.Require().NoError(err)
	par, err := homology.Compute(context.Background(), s.cc, homology.WithParallelism(8))
	s.Require().NoError(err)
	s.Equal(seq.String(), par.String())
}

func (s *ComputeSuite) TestMulStrategiesAgree() {
	def, err := homology.Compute(context.Background(), s.cc)
	s.Require().NoError(err)

	for _, strategy := range []matrix.MulStrategy{
		matrix.NaiveMul{},
		matrix.SparseMul{},
		matrix.ParallelMul{Workers: 2},
	} {
		h, err := homology.Compute(context.Background(), s.cc, homology.WithMulStrategy(strategy))
		s.Require().NoError(err)
		s.Equal([]int{1, 2, 1}, h.Betti())
		s.Equal(def.String(), h.String())
	}
}

func (s *ComputeSuite) TestDebugTrace() {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(log.DebugLevel)

	_, err := homology.Compute(context.Background(), s.cc, homology.WithLogger(logger))
	s.Require().NoError(err)

	computed := 0
	for _, e := range hook.AllEntries() {
		if e.Message == "homology: degree computed" {
			computed++
			s.Contains(e.Data, "degree")
			s.Equal("Z", e.Data["coefficients"])
		}
	}
	s.Equal(3, computed)
}

func TestComputeSuite(t *testing.T) {
	suite.Run(t, new(ComputeSuite))
}
