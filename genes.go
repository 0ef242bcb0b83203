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
import "strings"

/* -------------------------------------------------------------------------- */

// A gene is a named, stranded interval with at least one position.
type Gene struct {
  Interval
}

func NewGene(name string, r Range, strand byte, depth []float64) (Gene, error) {
  if r.Length() <= 0 {
    return Gene{}, fmt.Errorf("NewGene(): gene `%s' has no positions", name)
  }
  if strand != '+' && strand != '-' {
    return Gene{}, fmt.Errorf("NewGene(): invalid strand `%c' for gene `%s'", strand, name)
  }
  if iv, err := NewInterval(depth, r, name, strand); err != nil {
    return Gene{}, err
  } else {
    return Gene{iv}, nil
  }
}

/* -------------------------------------------------------------------------- */

// Container for all genes of a chromosome in chromosomal order. Names are
// not required to be unique, lookups by name return the first match.
type GeneBank struct {
  genes []Gene
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewGeneBank(genes ...Gene) GeneBank {
  bank := GeneBank{}
  for _, g := range genes {
    bank.Add(g)
  }
  return bank
}

/* -------------------------------------------------------------------------- */

// Append a gene at the end of the bank.
func (bank *GeneBank) Add(g Gene) {
  bank.genes = append(bank.genes, g)
}

func (bank GeneBank) Length() int {
  return len(bank.genes)
}

func (bank GeneBank) IsEmpty() bool {
  return len(bank.genes) == 0
}

func (bank GeneBank) At(i int) (Gene, bool) {
  if i < 0 || i >= len(bank.genes) {
    return Gene{}, false
  }
  return bank.genes[i], true
}

func (bank GeneBank) Get(name string) (Gene, bool) {
  if i := bank.Index(name); i == -1 {
    return Gene{}, false
  } else {
    return bank.genes[i], true
  }
}

// Index of the first gene with the given name, -1 if there is none.
func (bank GeneBank) Index(name string) int {
  for i, g := range bank.genes {
    if g.Name == name {
      return i
    }
  }
  return -1
}

// Upstream neighbor of the i-th gene.
func (bank GeneBank) Previous(i int) (Gene, bool) {
  if i < 1 || i >= len(bank.genes) {
    return Gene{}, false
  }
  return bank.genes[i-1], true
}

// Downstream neighbor of the i-th gene.
func (bank GeneBank) Next(i int) (Gene, bool) {
  if i < 0 || i >= len(bank.genes)-1 {
    return Gene{}, false
  }
  return bank.genes[i+1], true
}

// Copy of all genes in order.
func (bank GeneBank) Genes() []Gene {
  r := make([]Gene, len(bank.genes))
  copy(r, bank.genes)
  return r
}

/* -------------------------------------------------------------------------- */

func (bank GeneBank) String() string {
  names := make([]string, len(bank.genes))
  for i, g := range bank.genes {
    names[i] = g.Name
  }
  return strings.Join(names, ", ")
}
