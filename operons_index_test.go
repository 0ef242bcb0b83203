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

import "strings"
import "testing"

import "github.com/stretchr/testify/assert"

/* -------------------------------------------------------------------------- */

func TestOperonIndex1(t *testing.T) {
  depth := constantDepth(1000, 10)

  newOperon := func(name string, from, to int) Operon {
    op, err := NewOperon(name, newTestGene(t, depth, name, from, to, '+')).Coarse(depth)
    if err != nil {
      t.Fatal(err)
    }
    return op
  }
  bank := NewOperonBank(
    newOperon("a",   0, 100),
    newOperon("b",  50, 300),
    newOperon("c", 300, 400),
    newOperon("d", 700, 900))

  idx, err := NewOperonIndex(bank)
  if err != nil {
    t.Fatal(err)
  }
  assert.Equal(t, []int{0, 1},    idx.Overlapping(Range{60, 70}))
  assert.Equal(t, []int{1},       idx.Overlapping(Range{100, 300}))
  assert.Equal(t, []int{1, 2},    idx.Overlapping(Range{299, 301}))
  assert.Equal(t, []int{},        idx.Overlapping(Range{400, 700}))
  assert.Equal(t, []int{0, 1, 2, 3}, idx.Overlapping(Range{0, 1000}))
  assert.Equal(t, []int{},        idx.Overlapping(Range{80, 80}))
}

/* -------------------------------------------------------------------------- */

func TestReferenceGenome1(t *testing.T) {
  fasta := ">NC_000913.3 Escherichia coli K-12\nAGCTTTTC\nATTCTGAC\n>plasmid|p1\nGGCC\n"

  genome := NewReferenceGenome()
  if err := genome.ReadFasta(strings.NewReader(fasta)); err != nil {
    t.Fatal(err)
  }
  if n, _ := genome.SeqLength("NC_000913.3"); n != 16 {
    t.Error("TestReferenceGenome1 failed!")
  }
  if s, err := genome.Sequence("NC_000913.3", Range{6, 10}); err != nil || string(s) != "TCAT" {
    t.Error("TestReferenceGenome1 failed!")
  }
  if s, err := genome.Sequence("plasmid", Range{0, 4}); err != nil || string(s) != "GGCC" {
    t.Error("TestReferenceGenome1 failed!")
  }
  if _, err := genome.Sequence("NC_000913.3", Range{10, 20}); err == nil {
    t.Error("TestReferenceGenome1 failed!")
  }
  if _, err := genome.SeqLength("chr1"); err == nil {
    t.Error("TestReferenceGenome1 failed!")
  }
  if err := NewReferenceGenome().ReadFasta(strings.NewReader("ACGT\n")); err == nil {
    t.Error("TestReferenceGenome1 failed!")
  }
}
