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

import "errors"
import "math"
import "testing"

import "github.com/stretchr/testify/assert"

/* -------------------------------------------------------------------------- */

func TestIntervalStatistics1(t *testing.T) {
  depth := []float64{800, 800, 400, 800, 400}

  iv, err := NewInterval(depth, Range{0, 5}, "a", '+')
  if err != nil {
    t.Fatal(err)
  }
  // log2 values are a,a,a-1,a,a-1 with a = log2(800)
  mean := math.Log2(800) - 0.4

  assert.InDelta(t, math.Exp2(mean), iv.AverageDepth(), 1e-8)
  assert.InDelta(t, math.Sqrt(0.24)/mean, iv.LogCV(), 1e-8)

  if m, err := iv.MinDepth(); err != nil || m != 400 {
    t.Error("TestIntervalStatistics1 failed!")
  }
  if m, err := iv.MaxDepth(); err != nil || m != 800 {
    t.Error("TestIntervalStatistics1 failed!")
  }
}

func TestIntervalStatistics2(t *testing.T) {
  depth := []float64{100, 200, 50, 100, 100}

  iv, _ := NewInterval(depth, Range{0, 5}, "b", '+')

  assert.InDelta(t, 100.0, iv.AverageDepth(), 1e-8)
}

func TestIntervalStatistics3(t *testing.T) {
  // positions without reads count as depth one
  depth := []float64{0, 0, -1}

  iv, _ := NewInterval(depth, Range{0, 3}, "c", '*')

  if iv.AverageDepth() != 1.0 {
    t.Error("TestIntervalStatistics3 failed!")
  }
  if iv.LogCV() != 0.0 {
    t.Error("TestIntervalStatistics3 failed!")
  }
}

func TestIntervalStatistics4(t *testing.T) {
  iv := depthWindow([]float64{1, 2, 3}, Range{2, 2})

  if iv.Length() != 0 {
    t.Error("TestIntervalStatistics4 failed!")
  }
  if iv.AverageDepth() != 0.0 || iv.LogCV() != 0.0 {
    t.Error("TestIntervalStatistics4 failed!")
  }
  _, err := iv.MinDepth()

  var e EmptyIntervalError
  if !errors.As(err, &e) {
    t.Error("TestIntervalStatistics4 failed!")
  }
  if _, err := iv.MaxDepth(); err == nil {
    t.Error("TestIntervalStatistics4 failed!")
  }
  if _, err := iv.MinDepthLocation(); err == nil {
    t.Error("TestIntervalStatistics4 failed!")
  }
  if _, err := iv.RightmostMinDepthLocation(); err == nil {
    t.Error("TestIntervalStatistics4 failed!")
  }
}

func TestIntervalStatistics5(t *testing.T) {
  depth := []float64{9, 9, 5, 1, 3, 1, 4}

  iv, _ := NewInterval(depth, Range{2, 7}, "d", '-')

  if i, _ := iv.MinDepthLocation(); i != 3 {
    t.Error("TestIntervalStatistics5 failed!")
  }
  if i, _ := iv.RightmostMinDepthLocation(); i != 5 {
    t.Error("TestIntervalStatistics5 failed!")
  }
  // both agree on a unique minimum
  iv, _ = NewInterval(depth, Range{0, 4}, "e", '-')

  i, _ := iv.MinDepthLocation()
  j, _ := iv.RightmostMinDepthLocation()
  if i != 3 || j != 3 {
    t.Error("TestIntervalStatistics5 failed!")
  }
}

func TestIntervalStatistics6(t *testing.T) {
  // statistics do not depend on the order of positions
  a := []float64{12, 7, 300, 1, 45, 45, 8}
  b := []float64{45, 1, 8, 300, 12, 45, 7}

  assert.InDelta(t, averageDepth(a), averageDepth(b), 1e-10)
  assert.InDelta(t, logCV(a), logCV(b), 1e-10)
}

func TestInterval1(t *testing.T) {
  depth := make([]float64, 10)

  if _, err := NewInterval(depth, Range{5, 11}, "a", '+'); err == nil {
    t.Error("TestInterval1 failed!")
  }
  if _, err := NewInterval(depth, Range{0, 5}, "a", '?'); err == nil {
    t.Error("TestInterval1 failed!")
  }
  // windows are clipped to the depth array
  if iv := depthWindow(depth, Range{-4, 3}); iv.Range != (Range{0, 3}) {
    t.Error("TestInterval1 failed!")
  }
  if iv := depthWindow(depth, Range{8, 20}); iv.Range != (Range{8, 10}) || iv.Length() != 2 {
    t.Error("TestInterval1 failed!")
  }
  if iv := depthWindow(depth, Range{7, 4}); iv.Range != (Range{7, 7}) || iv.Length() != 0 {
    t.Error("TestInterval1 failed!")
  }
}

func TestRange1(t *testing.T) {
  r := NewRange(10, 21)

  if r.Length() != 11 || r.Midpoint() != 15 {
    t.Error("TestRange1 failed!")
  }
  if !r.Contains(10) || r.Contains(21) {
    t.Error("TestRange1 failed!")
  }
  if s := r.Intersection(Range{15, 30}); s != (Range{15, 21}) {
    t.Error("TestRange1 failed!")
  }
  if s := r.Intersection(Range{30, 40}); s.Length() != 0 {
    t.Error("TestRange1 failed!")
  }
  if divIntDown(-3, 2) != -2 || divIntDown(3, 2) != 1 {
    t.Error("TestRange1 failed!")
  }
}
