/* Copyright (C) 2016 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */


package operons

/* -------------------------------------------------------------------------- */

import "math"

import "gonum.org/v1/gonum/floats"
import "gonum.org/v1/gonum/stat"

/* -------------------------------------------------------------------------- */

// Read depth spans several orders of magnitude, therefore all averages
// are computed on log2 values. Positions without reads count as depth one.
func logDepth(depth []float64) []float64 {
  r := make([]float64, len(depth))
  for i, x := range depth {
    if x <= 0 {
      x = 1
    }
    r[i] = math.Log2(x)
  }
  return r
}

func averageDepth(depth []float64) float64 {
  if len(depth) == 0 {
    return 0
  }
  return math.Exp2(stat.Mean(logDepth(depth), nil))
}

func logCV(depth []float64) float64 {
  if len(depth) == 0 {
    return 0
  }
  mean, std := stat.PopMeanStdDev(logDepth(depth), nil)
  if mean <= 0 {
    return 0
  }
  return std/mean
}

/* -------------------------------------------------------------------------- */

// Geometric mean of the read depth, i.e. 2 to the power of the mean log2
// depth. Zero for an empty interval.
func (iv Interval) AverageDepth() float64 {
  return averageDepth(iv.Depth)
}

// Coefficient of variation of the log2 depth. Zero for an empty interval
// or if the mean log2 depth is not positive.
func (iv Interval) LogCV() float64 {
  return logCV(iv.Depth)
}

func (iv Interval) MinDepth() (float64, error) {
  if len(iv.Depth) == 0 {
    return 0, EmptyIntervalError{iv.Name, iv.Range}
  }
  return floats.Min(iv.Depth), nil
}

func (iv Interval) MaxDepth() (float64, error) {
  if len(iv.Depth) == 0 {
    return 0, EmptyIntervalError{iv.Name, iv.Range}
  }
  return floats.Max(iv.Depth), nil
}

// Genomic position of the minimum depth. Ties are resolved in favor of
// the leftmost position.
func (iv Interval) MinDepthLocation() (int, error) {
  if len(iv.Depth) == 0 {
    return 0, EmptyIntervalError{iv.Name, iv.Range}
  }
  return iv.Range.From + floats.MinIdx(iv.Depth), nil
}

// Genomic position of the minimum depth. Ties are resolved in favor of
// the rightmost position.
func (iv Interval) RightmostMinDepthLocation() (int, error) {
  if len(iv.Depth) == 0 {
    return 0, EmptyIntervalError{iv.Name, iv.Range}
  }
  j := 0
  for i := 1; i < len(iv.Depth); i++ {
    if iv.Depth[i] <= iv.Depth[j] {
      j = i
    }
  }
  return iv.Range.From + j, nil
}
