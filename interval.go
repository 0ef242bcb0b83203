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

import "fmt"

/* -------------------------------------------------------------------------- */

// An interval is a stranded genomic range together with the read depth
// of all positions in the range. The depth slice shares memory with the
// chromosome-wide depth array it was cut from and must not be modified.
type Interval struct {
  Name   string
  Range  Range
  Strand byte
  Depth  []float64
}

/* constructors
 * -------------------------------------------------------------------------- */

// Create a new interval by slicing the chromosome-wide depth array at
// [r.From, r.To). The strand must be one of '+', '-' or '*'.
func NewInterval(depth []float64, r Range, name string, strand byte) (Interval, error) {
  if r.From < 0 || r.To > len(depth) {
    return Interval{}, fmt.Errorf("NewInterval(): range %v of `%s' exceeds depth array of length %d", r, name, len(depth))
  }
  if strand != '+' && strand != '-' && strand != '*' {
    return Interval{}, fmt.Errorf("NewInterval(): invalid strand `%c' for `%s'", strand, name)
  }
  return Interval{name, r, strand, depth[r.From:r.To]}, nil
}

// Unnamed interval over r, clipped to the depth array. An interval with
// r.From >= r.To is empty and starts at r.From.
func depthWindow(depth []float64, r Range) Interval {
  from := iMin(iMax(r.From, 0), len(depth))
  to   := iMin(iMax(r.To,   0), len(depth))
  if to < from {
    to = from
  }
  return Interval{"", Range{from, to}, '*', depth[from:to]}
}

/* -------------------------------------------------------------------------- */

func (iv Interval) Length() int {
  return len(iv.Depth)
}

func (iv Interval) Start() int {
  return iv.Range.From
}

func (iv Interval) End() int {
  return iv.Range.To
}

func (iv Interval) String() string {
  return fmt.Sprintf("%s %v %c", iv.Name, iv.Range, iv.Strand)
}
