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

import "github.com/sirupsen/logrus"

/* -------------------------------------------------------------------------- */

func operonName(i int) string {
  return fmt.Sprintf("operon_%d", i)
}

// Set coarse bounds for all operons.
func coarsen(bank OperonBank, depth []float64) (OperonBank, error) {
  result := OperonBank{}
  for _, op := range bank.operons {
    if r, err := op.Coarse(depth); err != nil {
      return OperonBank{}, err
    } else {
      result.Add(r)
    }
  }
  return result, nil
}

/* -------------------------------------------------------------------------- */

// Group genes into operons with a single greedy scan. Each gene is compared
// with its predecessor only, and a new operon is opened whenever the
// adjacency judge separates both genes. The bounds of the resulting
// operons are set to the start of their first and the end of their last
// gene.
func Segment(genes GeneBank, depth []float64, config Config) (OperonBank, error) {
  bank := OperonBank{}
  if genes.IsEmpty() {
    return bank, nil
  }
  log := config.logger()

  bank.Add(NewOperon(operonName(1), genes.genes[0]))

  for i := 1; i < genes.Length(); i++ {
    previous := genes.genes[i-1]
    current  := genes.genes[i]
    if reason := Judge(previous, current, depth, config); reason == 0 {
      bank.setLast(bank.last().withGene(current))
    } else {
      log.WithFields(logrus.Fields{
        "upstream"  : previous.Name,
        "downstream": current.Name,
        "reason"    : reason.String(),
      }).Debug("splitting genes")
      bank.Add(NewOperon(operonName(bank.Length()+1), current))
    }
  }
  return coarsen(bank, depth)
}

/* consensus segmentation
 * -------------------------------------------------------------------------- */

// Gene bank index of the last gene of every operon, assuming that the
// operons partition the gene bank in order.
func EndGaps(bank OperonBank) []int {
  gaps := []int{}
  n    := 0
  for _, op := range bank.operons {
    if op.Length() == 0 {
      continue
    }
    n   += op.Length()
    gaps = append(gaps, n-1)
  }
  return gaps
}

// Sorted union of several gap lists.
func UnionGaps(gaps ...[]int) []int {
  r := []int{}
  for _, g := range gaps {
    r = append(r, g...)
  }
  return uniqueSortedInts(r)
}

// Group genes into operons such that an operon ends after every gene whose
// index is contained in gaps. Genes following the last gap form a final
// operon.
func SegmentByGaps(genes GeneBank, gaps []int, depth []float64) (OperonBank, error) {
  bank   := OperonBank{}
  isGap  := make(map[int]bool)
  for _, i := range gaps {
    isGap[i] = true
  }
  open := false
  for i, g := range genes.genes {
    if open {
      bank.setLast(bank.last().withGene(g))
    } else {
      bank.Add(NewOperon(operonName(bank.Length()+1), g))
      open = true
    }
    if isGap[i] {
      open = false
    }
  }
  return coarsen(bank, depth)
}
