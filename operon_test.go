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

func TestOperon1(t *testing.T) {
  depth := constantDepth(100, 10)

  g1 := newTestGene(t, depth, "g1", 10, 20, '-')
  g2 := newTestGene(t, depth, "g2", 25, 40, '-')

  op := NewOperon("op", g1).withGene(g2)
  if op.Stage != StageOpen || op.Length() != 2 {
    t.Error("TestOperon1 failed!")
  }
  op, err := op.Coarse(depth)
  if err != nil {
    t.Fatal(err)
  }
  if op.Stage != StageCoarse || op.Range() != (Range{10, 40}) || op.Strand != '-' {
    t.Error("TestOperon1 failed!")
  }
  assert.InDelta(t, 10.0, op.AverageDepth(), 1e-10)
  assert.Equal(t, "op: g1, g2 - [~10 ~40)", op.String())

  // coarse bounds are set only once
  _, err = op.Coarse(depth)

  var e InvalidOperonStateError
  if !errors.As(err, &e) || e.Name != "op" {
    t.Error("TestOperon1 failed!")
  }
  r, err := op.Refined(Bound{12, true}, Bound{38, false}, depth)
  if err != nil {
    t.Fatal(err)
  }
  if r.Stage != StageRefined || r.Range() != (Range{12, 38}) || len(r.Depth) != 26 {
    t.Error("TestOperon1 failed!")
  }
  assert.Equal(t, "op: g1, g2 - [12 ~38)", r.String())

  // transitions leave the receiver unchanged
  if op.Stage != StageCoarse || op.Left.Position != 10 {
    t.Error("TestOperon1 failed!")
  }
  if _, err := r.Refined(Bound{12, true}, Bound{38, false}, depth); err == nil {
    t.Error("TestOperon1 failed!")
  }
  if _, err := op.Refined(Bound{30, true}, Bound{20, true}, depth); err == nil {
    t.Error("TestOperon1 failed!")
  }
}

func TestOperon2(t *testing.T) {
  op := NewOperon("empty")

  if _, err := op.Coarse(nil); err == nil {
    t.Error("TestOperon2 failed!")
  }
  if _, err := op.First(); err == nil {
    t.Error("TestOperon2 failed!")
  }
  if _, err := op.Last(); err == nil {
    t.Error("TestOperon2 failed!")
  }
  if _, err := op.Orientation(); err == nil {
    t.Error("TestOperon2 failed!")
  }
  if _, err := op.Refined(Bound{0, false}, Bound{1, false}, nil); err == nil {
    t.Error("TestOperon2 failed!")
  }
}

func TestOperon3(t *testing.T) {
  depth := constantDepth(100, 10)

  g := newTestGene(t, depth, "g", 10, 20, '+')
  a := NewOperon("a", g)
  b := a.withGene(g)

  // growing an operon does not modify its predecessor
  if a.Length() != 1 || b.Length() != 2 {
    t.Error("TestOperon3 failed!")
  }
  assert.Equal(t, "coarse", StageCoarse.String())
  assert.Equal(t, "~5", Bound{5, false}.String())
  assert.Equal(t, "5", Bound{5, true}.String())
}

func TestOperonBank1(t *testing.T) {
  depth := constantDepth(100, 10)

  a := NewOperon("a", newTestGene(t, depth, "g1", 10, 20, '+'))
  b := NewOperon("b", newTestGene(t, depth, "g2", 30, 40, '+'), newTestGene(t, depth, "g3", 40, 50, '+'))

  bank := NewOperonBank(a, b)

  if bank.Length() != 2 || bank.Index("b") != 1 || bank.Index("c") != -1 {
    t.Error("TestOperonBank1 failed!")
  }
  if op, ok := bank.Get("b"); !ok || op.Length() != 2 {
    t.Error("TestOperonBank1 failed!")
  }
  if op, ok := bank.Next(0); !ok || op.Name != "b" {
    t.Error("TestOperonBank1 failed!")
  }
  if op, ok := bank.Previous(1); !ok || op.Name != "a" {
    t.Error("TestOperonBank1 failed!")
  }
  if _, ok := bank.Next(1); ok {
    t.Error("TestOperonBank1 failed!")
  }
  if len(bank.Genes()) != 3 {
    t.Error("TestOperonBank1 failed!")
  }
}
