// SPDX-License-Identifier: MIT

package numtheory_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlmath/numtheory"
)

// GCDSuite groups tests for the GCD/LCM family and the Extended Euclidean Algorithm.
type GCDSuite struct {
	suite.Suite
	pairs [][2]int
}

func (s *GCDSuite) SetupTest() {
	s.pairs = nil
	for a := -30; a <= 30; a++ {
		for b := -30; b <= 30; b++ {
			s.pairs = append(s.pairs, [2]int{a, b})
		}
	}
	s.pairs = append(s.pairs,
		[2]int{240, 46}, [2]int{1071, 462}, [2]int{1 << 20, 3 << 10}, [2]int{-99991, 7919},
	)
}

// TestGCD_Known checks a few fixed values and sign insensitivity.
func (s *GCDSuite) TestGCD_Known() {
	g, err := numtheory.GCD(48, 18)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 6, g)

	g, err = numtheory.GCD(-48, 18)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 6, g)

	g, err = numtheory.GCD(0, -7)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 7, g)
}

// TestGCD_ZeroZero is undefined.
func (s *GCDSuite) TestGCD_ZeroZero() {
	_, err := numtheory.GCD(0, 0)
	require.ErrorIs(s.T(), err, numtheory.ErrDomain)
}

// TestGCD_MinInt has no absolute value in int.
func (s *GCDSuite) TestGCD_MinInt() {
	_, err := numtheory.GCD(math.MinInt, 2)
	require.ErrorIs(s.T(), err, numtheory.ErrOverflow)
	_, err = numtheory.LCM(3, math.MinInt)
	require.ErrorIs(s.T(), err, numtheory.ErrOverflow)
}

// TestLCM_ZeroOperand is undefined.
func (s *GCDSuite) TestLCM_ZeroOperand() {
	_, err := numtheory.LCM(0, 5)
	require.ErrorIs(s.T(), err, numtheory.ErrDomain)
	_, err = numtheory.LCM(5, 0)
	require.ErrorIs(s.T(), err, numtheory.ErrDomain)
}

// TestLCM_Overflow reports results larger than math.MaxInt.
func (s *GCDSuite) TestLCM_Overflow() {
	_, err := numtheory.LCM(math.MaxInt, math.MaxInt-1)
	require.ErrorIs(s.T(), err, numtheory.ErrOverflow)
}

// TestGCDTimesLCM checks gcd(a,b)·lcm(a,b) == |a·b| whenever both are defined.
func (s *GCDSuite) TestGCDTimesLCM() {
	for _, p := range s.pairs {
		a, b := p[0], p[1]
		if a == 0 || b == 0 {
			continue
		}
		g, err := numtheory.GCD(a, b)
		require.NoError(s.T(), err)
		l, err := numtheory.LCM(a, b)
		require.NoError(s.T(), err)

		want := new(big.Int).Abs(new(big.Int).Mul(big.NewInt(int64(a)), big.NewInt(int64(b))))
		got := new(big.Int).Mul(big.NewInt(int64(g)), big.NewInt(int64(l)))
		require.Zero(s.T(), want.Cmp(got), "gcd·lcm for (%d,%d)", a, b)
	}
}

// TestGCDMultiple_Known checks documented values and the early exit at 1.
func (s *GCDSuite) TestGCDMultiple_Known() {
	g, err := numtheory.GCDMultiple(48, 18, 24)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 6, g)

	g, err = numtheory.GCDMultiple(7, 13, 21)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, g)

	g, err = numtheory.GCDMultiple(-12)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 12, g)

	g, err = numtheory.GCDMultiple(0, 0, 9)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 9, g)
}

// TestGCDMultiple_Errors covers no arguments, all zeros and MinInt after an early exit.
func (s *GCDSuite) TestGCDMultiple_Errors() {
	_, err := numtheory.GCDMultiple()
	require.ErrorIs(s.T(), err, numtheory.ErrNoArguments)

	_, err = numtheory.GCDMultiple(0, 0)
	require.ErrorIs(s.T(), err, numtheory.ErrDomain)

	_, err = numtheory.GCDMultiple(2, 3, math.MinInt)
	require.ErrorIs(s.T(), err, numtheory.ErrOverflow)
}

// TestLCMMultiple_Known checks documented values.
func (s *GCDSuite) TestLCMMultiple_Known() {
	l, err := numtheory.LCMMultiple(4, 6, 8)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 24, l)

	l, err = numtheory.LCMMultiple(3, 5, 7)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 105, l)

	l, err = numtheory.LCMMultiple(-4, 6)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 12, l)
}

// TestLCMMultiple_Errors covers no arguments, a zero operand anywhere and overflow.
func (s *GCDSuite) TestLCMMultiple_Errors() {
	_, err := numtheory.LCMMultiple()
	require.ErrorIs(s.T(), err, numtheory.ErrNoArguments)

	_, err = numtheory.LCMMultiple(4, 6, 0)
	require.ErrorIs(s.T(), err, numtheory.ErrDomain)

	_, err = numtheory.LCMMultiple(math.MaxInt, 2, 3)
	require.ErrorIs(s.T(), err, numtheory.ErrOverflow)
}

// TestExtendedGCD_Known checks the coefficients produced by the recurrence.
func (s *GCDSuite) TestExtendedGCD_Known() {
	g, x, y := numtheory.ExtendedGCD(30, 18)
	require.Equal(s.T(), [3]int{6, -1, 2}, [3]int{g, x, y})

	g, x, y = numtheory.ExtendedGCD(35, 15)
	require.Equal(s.T(), [3]int{5, 1, -2}, [3]int{g, x, y})

	g, x, y = numtheory.ExtendedGCD(7, 0)
	require.Equal(s.T(), [3]int{7, 1, 0}, [3]int{g, x, y})

	g, x, y = numtheory.ExtendedGCD(0, 0)
	require.Equal(s.T(), [3]int{0, 1, 0}, [3]int{g, x, y})
}

// TestExtendedGCD_MinInt covers the one magnitude that cannot be made non-negative.
func (s *GCDSuite) TestExtendedGCD_MinInt() {
	g, x, y := numtheory.ExtendedGCD(math.MinInt, 0)
	require.Equal(s.T(), math.MinInt, g)
	require.Equal(s.T(), g, math.MinInt*x+0*y, "Bézout in wrapping arithmetic")

	g, x, y = numtheory.ExtendedGCD(math.MinInt+1, 0)
	require.Equal(s.T(), math.MaxInt, g)
	require.Equal(s.T(), g, (math.MinInt+1)*x+0*y)

	g, _, _ = numtheory.ExtendedGCD(math.MinInt, 6)
	require.Equal(s.T(), 2, g)
}

// TestExtendedGCD_Bezout checks a·x + b·y == g and g == gcd(|a|,|b|) for every
// pair not both zero, across all sign combinations.
func (s *GCDSuite) TestExtendedGCD_Bezout() {
	for _, p := range s.pairs {
		a, b := p[0], p[1]
		if a == 0 && b == 0 {
			continue
		}
		g, x, y := numtheory.ExtendedGCD(a, b)
		require.Equal(s.T(), g, a*x+b*y, "Bézout for (%d,%d)", a, b)

		want, err := numtheory.GCD(a, b)
		require.NoError(s.T(), err)
		require.Equal(s.T(), want, g, "gcd for (%d,%d)", a, b)
	}
}

func TestGCDSuite(t *testing.T) {
	suite.Run(t, new(GCDSuite))
}
