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

// Partition genes into operons and refine all boundaries between adjacent
// operons.
func FindOperons(genes GeneBank, depth []float64, config Config) (OperonBank, error) {
  coarse, err := Segment(genes, depth, config)
  if err != nil {
    return OperonBank{}, err
  }
  return Refine(coarse, depth, config)
}

/* -------------------------------------------------------------------------- */

// A dataset is one RNA-seq experiment on a common gene annotation.
type Dataset struct {
  Name  string
  Genes GeneBank
  Depth []float64
}

// Segment every dataset independently and collect the operon ends of all
// datasets. All datasets are then segmented at the union of these ends,
// so that every dataset reports the same operons, and the boundaries are
// refined on each dataset's own read depth.
func FindConsensusOperons(datasets []Dataset, config Config) ([]OperonBank, error) {
  if len(datasets) == 0 {
    return nil, nil
  }
  gaps := make([][]int, len(datasets))
  for i, d := range datasets {
    if d.Genes.Length() != datasets[0].Genes.Length() {
      return nil, fmt.Errorf("FindConsensusOperons(): dataset `%s' has %d genes, expected %d", d.Name, d.Genes.Length(), datasets[0].Genes.Length())
    }
    if bank, err := Segment(d.Genes, d.Depth, config); err != nil {
      return nil, fmt.Errorf("FindConsensusOperons(): dataset `%s': %w", d.Name, err)
    } else {
      gaps[i] = EndGaps(bank)
    }
  }
  union  := UnionGaps(gaps...)
  result := make([]OperonBank, len(datasets))
  for i, d := range datasets {
    bank, err := SegmentByGaps(d.Genes, union, d.Depth)
    if err != nil {
      return nil, fmt.Errorf("FindConsensusOperons(): dataset `%s': %w", d.Name, err)
    }
    if result[i], err = Refine(bank, d.Depth, config); err != nil {
      return nil, fmt.Errorf("FindConsensusOperons(): dataset `%s': %w", d.Name, err)
    }
  }
  return result, nil
}
