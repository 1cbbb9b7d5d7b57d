// Package stats provides descriptive statistics over float64 samples: one
// pass summaries, quantiles and simple linear regression.
package stats

import (
	"errors"
	"math"
	"slices"
)

// ErrEmpty is returned by every function that cannot be computed on an
// empty sample.
var ErrEmpty = errors.New("empty sample")

// Summary accumulates the moments of a sample in one pass. The zero value
// is ready to use; add values with Push. NaN values are skipped and do not
// count towards N.
type Summary struct {
	N     int
	Min   float64
	Max   float64
	Sum   float64
	SumSq float64
}

// Push adds a value to the summary. NaN is ignored.
func (s *Summary) Push(v float64) {
	if math.IsNaN(v) {
		return
	}
	if s.N == 0 || v < s.Min {
		s.Min = v
	}
	if s.N == 0 || v > s.Max {
		s.Max = v
	}
	s.N++
	s.Sum += v
	s.SumSq += v * v
}

// Mean is the arithmetic mean of the pushed values, NaN when empty.
func (s *Summary) Mean() float64 {
	if s.N == 0 {
		return math.NaN()
	}
	return s.Sum / float64(s.N)
}

// Variance is the population variance of the pushed values, NaN when
// empty. It may come out slightly negative to rounding; it is clamped.
func (s *Summary) Variance() float64 {
	if s.N == 0 {
		return math.NaN()
	}
	m := s.Mean()
	v := s.SumSq/float64(s.N) - m*m
	return math.Max(v, 0)
}

// StdDev is the population standard deviation, NaN when empty.
func (s *Summary) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Summarize builds a Summary of all values in one pass.
func Summarize(data []float64) Summary {
	var s Summary
	for _, v := range data {
		s.Push(v)
	}
	return s
}

// Mean is the arithmetic mean of data.
func Mean(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmpty
	}
	s := Summarize(data)
	return s.Mean(), nil
}

// Variance is the sample variance of data, with the n-1 correction. It
// needs at least two values.
func Variance(data []float64) (float64, error) {
	if len(data) < 2 {
		return 0, ErrEmpty
	}
	m, _ := Mean(data)
	sum := 0.0
	for _, v := range data {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(data)-1), nil
}

// StdDev is the sample standard deviation of data.
func StdDev(data []float64) (float64, error) {
	v, err := Variance(data)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

// Median is the 0.5 quantile of data.
func Median(data []float64) (float64, error) {
	return Quantile(data, 0.5)
}

// Quantile computes the q-th quantile of data, 0 <= q <= 1, by linear
// interpolation between closest ranks. The input is not modified.
func Quantile(data []float64, q float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmpty
	}
	if q < 0 || q > 1 {
		return 0, errors.New("quantile out of range")
	}
	sorted := slices.Clone(data)
	slices.Sort(sorted)
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo], nil
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac, nil
}

// Regression is a least squares line y = Slope*x + Intercept fitted to a
// sample, with S2 the residual variance.
type Regression struct {
	Slope     float64
	Intercept float64
	S2        float64
}

// LinearRegression fits a least squares line through the points (x[i],
// y[i]). Both slices must have the same length, at least 3 so the residual
// variance is defined.
func LinearRegression(x, y []float64) (Regression, error) {
	if len(x) != len(y) {
		return Regression{}, errors.New("mismatched sample lengths")
	}
	if len(x) < 3 {
		return Regression{}, ErrEmpty
	}
	n := float64(len(x))
	var sx, sy, sxx, sxy float64
	for i := range x {
		sx += x[i]
		sy += y[i]
		sxx += x[i] * x[i]
		sxy += x[i] * y[i]
	}
	den := sxx - sx*sx/n
	if den == 0 {
		return Regression{}, errors.New("degenerate sample: x is constant")
	}
	b1 := (sxy - sx*sy/n) / den
	b0 := (sy - b1*sx) / n
	var ss float64
	for i := range x {
		r := y[i] - (b0 + b1*x[i])
		ss += r * r
	}
	return Regression{Slope: b1, Intercept: b0, S2: ss / (n - 2)}, nil
}
