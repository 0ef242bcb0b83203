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

import "sort"

import "github.com/biogo/store/interval"

/* -------------------------------------------------------------------------- */

type operonInterval struct {
  from, to int
  id       uintptr
}

// Half-open interval indexing.
func (o operonInterval) Overlap(b interval.IntRange) bool {
  return o.to > b.Start && o.from < b.End
}

func (o operonInterval) ID() uintptr {
  return o.id
}

func (o operonInterval) Range() interval.IntRange {
  return interval.IntRange{Start: o.from, End: o.to}
}

/* -------------------------------------------------------------------------- */

// Index for finding operons that overlap a genomic range.
type OperonIndex struct {
  tree interval.IntTree
}

func NewOperonIndex(bank OperonBank) (*OperonIndex, error) {
  idx := &OperonIndex{}
  for i, op := range bank.operons {
    // empty operons never overlap anything
    if op.Right.Position <= op.Left.Position {
      continue
    }
    if err := idx.tree.Insert(operonInterval{op.Left.Position, op.Right.Position, uintptr(i)}, true); err != nil {
      return nil, err
    }
  }
  idx.tree.AdjustRanges()
  return idx, nil
}

// Indices of all operons overlapping r in increasing order.
func (idx *OperonIndex) Overlapping(r Range) []int {
  result := []int{}
  if r.To <= r.From {
    return result
  }
  for _, hit := range idx.tree.Get(operonInterval{r.From, r.To, 0}) {
    result = append(result, int(hit.ID()))
  }
  sort.Ints(result)
  return result
}
