// SPDX-License-Identifier: MIT
package elimination_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/homalg/algebra"
	"github.com/katalvlaran/homalg/elimination"
	"github.com/katalvlaran/homalg/matrix"
)

// CancellationSuite exercises the cooperative cancellation hook.
type CancellationSuite struct {
	suite.Suite
	a *matrix.Matrix[Z]
}

func (s *CancellationSuite) SetupTest() {
	m, err := matrix.FromInts[Z]([][]int64{
		{3, 5, 7, 11},
		{13, 17, 19, 23},
		{29, 31, 37, 41},
		{43, 47, 53, 59},
	})
	require.NoError(s.T(), err)
	s.a = m
}

// TestAlreadyCancelled: a done context aborts before the first pivot.
func (s *CancellationSuite) TestAlreadyCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := elimination.Eliminate(s.a, elimination.WithContext(ctx))
	require.Nil(s.T(), res)
	require.True(s.T(), elimination.IsCancelled(err))
	require.True(s.T(), errors.Is(err, context.Canceled))
	require.False(s.T(), errors.Is(err, algebra.ErrDomain), "cancellation is not a domain error")
	require.False(s.T(), errors.Is(err, algebra.ErrCapability))
}

// TestDeadlineExceeded: an expired deadline reports the timeout cause.
func (s *CancellationSuite) TestDeadlineExceeded() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	_, err := elimination.Eliminate(s.a, elimination.WithContext(ctx), elimination.WithMode(elimination.RowEchelon))
	require.True(s.T(), elimination.IsCancelled(err))
	require.True(s.T(), errors.Is(err, context.DeadlineExceeded))
}

// TestLiveContext: an open context does not change the outcome.
func (s *CancellationSuite) TestLiveContext() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	res, err := elimination.Eliminate(s.a, elimination.WithContext(ctx))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, res.Rank())
}

// TestDebugTrace: pivot steps are traced at debug level.
func (s *CancellationSuite) TestDebugTrace() {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := elimination.Eliminate(s.a, elimination.WithLogger(logger))
	require.NoError(s.T(), err)

	var pivots int
	for _, e := range hook.AllEntries() {
		if e.Message == "elimination: pivot settled" {
			pivots++
			require.Contains(s.T(), e.Data, "maxBits")
		}
	}
	require.Equal(s.T(), 4, pivots)
	require.Equal(s.T(), "elimination: done", hook.LastEntry().Message)
}

func TestCancellationSuite(t *testing.T) {
	suite.Run(t, new(CancellationSuite))
}
