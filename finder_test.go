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
import "testing"

import "github.com/stretchr/testify/assert"

/* -------------------------------------------------------------------------- */

func newTestDataset(t *testing.T, name string, x []float64) Dataset {
  depth := make([]float64, 100*len(x))
  for i := range x {
    fillDepth(depth, 100*i, 100*(i+1), x[i])
  }
  genes := GeneBank{}
  for i := range x {
    genes.Add(newTestGene(t, depth, string(rune('a'+i)), 100*i, 100*(i+1), '+'))
  }
  return Dataset{name, genes, depth}
}

/* -------------------------------------------------------------------------- */

func TestFindOperons1(t *testing.T) {
  d := newTestDataset(t, "d", []float64{800, 800, 50, 50})

  bank, err := FindOperons(d.Genes, d.Depth, DefaultConfig())
  if err != nil {
    t.Fatal(err)
  }
  if bank.Length() != 2 {
    t.Fatal("TestFindOperons1 failed!")
  }
  for _, op := range bank.Operons() {
    if op.Stage != StageRefined || op.Right.Position < op.Left.Position {
      t.Error("TestFindOperons1 failed!")
    }
  }
  op1, _ := bank.At(0)
  op2, _ := bank.At(1)
  if op1.Left != (Bound{0, false}) || op2.Right != (Bound{400, false}) {
    t.Error("TestFindOperons1 failed!")
  }
  // refined bounds stay within the search space between both operons
  if op1.Right.Position < 150 || op2.Left.Position > 250 {
    t.Error("TestFindOperons1 failed!")
  }
}

func TestFindConsensusOperons1(t *testing.T) {
  d1 := newTestDataset(t, "d1", []float64{800, 800,  50})
  d2 := newTestDataset(t, "d2", []float64{800,  50,  50})

  config := DefaultConfig()
  config.Threads = 2

  banks, err := FindConsensusOperons([]Dataset{d1, d2}, config)
  if err != nil {
    t.Fatal(err)
  }
  if len(banks) != 2 {
    t.Fatal("TestFindConsensusOperons1 failed!")
  }
  for _, bank := range banks {
    assert.Equal(t, []string{"operon_1", "operon_2", "operon_3"}, bank.Names())
    for i, op := range bank.Operons() {
      if op.Length() != 1 || op.Genes[0].Name != string(rune('a'+i)) {
        t.Error("TestFindConsensusOperons1 failed!")
      }
      if op.Stage != StageRefined {
        t.Error("TestFindConsensusOperons1 failed!")
      }
    }
  }
}

func TestFindConsensusOperons2(t *testing.T) {
  d1 := newTestDataset(t, "d1", []float64{800, 800, 50})
  d2 := newTestDataset(t, "d2", []float64{800, 50})

  if _, err := FindConsensusOperons([]Dataset{d1, d2}, DefaultConfig()); err == nil {
    t.Error("TestFindConsensusOperons2 failed!")
  }
  if banks, err := FindConsensusOperons(nil, DefaultConfig()); err != nil || banks != nil {
    t.Error("TestFindConsensusOperons2 failed!")
  }
}

func TestFindConsensusOperons3(t *testing.T) {
  d1 := newTestDataset(t, "d1", []float64{800, 800})
  d2 := newTestDataset(t, "d2", []float64{800, 800})
  // the second gene of d2 overlaps the first one and ends before it, so
  // that both genes are joined into an operon with invalid bounds
  d2.Genes = NewGeneBank(
    newTestGene(t, d2.Depth, "a",  0, 100, '+'),
    newTestGene(t, d2.Depth, "b", 10,  20, '+'))

  _, err := FindConsensusOperons([]Dataset{d1, d2}, DefaultConfig())
  if err == nil {
    t.Fatal("TestFindConsensusOperons3 failed!")
  }
  var e InvalidOperonStateError
  if !errors.As(err, &e) || e.Name != "operon_1" {
    t.Error("TestFindConsensusOperons3 failed!")
  }
}
