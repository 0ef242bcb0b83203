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
import "strings"

/* -------------------------------------------------------------------------- */

// Set of criteria that separate two consecutive genes.
type SplitReason int

const (
  // average depths differ by at least Config.FoldChange
  SplitFold SplitReason = 1 << iota
  // the depth drops between both genes
  SplitDent
  // genes are on different strands
  SplitStrand
  // genes are more than Config.MaxDistance bases apart
  SplitDistance
)

func (r SplitReason) String() string {
  if r == 0 {
    return "none"
  }
  s := []string{}
  if r & SplitFold != 0 {
    s = append(s, "fold")
  }
  if r & SplitDent != 0 {
    s = append(s, "dent")
  }
  if r & SplitStrand != 0 {
    s = append(s, "strand")
  }
  if r & SplitDistance != 0 {
    s = append(s, "distance")
  }
  return strings.Join(s, "|")
}

/* -------------------------------------------------------------------------- */

func judgeFold(avgA, avgB, fold float64) bool {
  return avgA >= avgB*fold || avgA <= avgB/fold
}

// The intergenic region is [a.End(), b.Start()). It is empty if both genes
// abut or overlap, in which case there is no dent.
func judgeDent(a, b Gene, avgA, avgB float64, depth []float64, ratio float64) bool {
  if b.Start() <= a.End() {
    return false
  }
  igr := depthWindow(depth, Range{a.End(), b.Start()})
  m, err := igr.MinDepth()
  if err != nil {
    return false
  }
  return m <= ratio*math.Min(avgA, avgB)
}

// Evaluate all criteria for two genes a and b that are consecutive in
// gene order. Any single criterion separates both genes.
func Judge(a, b Gene, depth []float64, config Config) SplitReason {
  var r SplitReason

  avgA := a.AverageDepth()
  avgB := b.AverageDepth()

  if judgeFold(avgA, avgB, config.FoldChange) {
    r |= SplitFold
  }
  if judgeDent(a, b, avgA, avgB, depth, config.DentRatio) {
    r |= SplitDent
  }
  if a.Strand != b.Strand {
    r |= SplitStrand
  }
  if b.Start() - a.End() > config.MaxDistance {
    r |= SplitDistance
  }
  return r
}

// Returns true if a and b belong to different operons.
func ShouldSplit(a, b Gene, depth []float64, config Config) bool {
  return Judge(a, b, depth, config) != 0
}
