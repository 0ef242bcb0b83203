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

// Ordered container for the operons of a chromosome.
type OperonBank struct {
  operons []Operon
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewOperonBank(operons ...Operon) OperonBank {
  bank := OperonBank{}
  for _, op := range operons {
    bank.Add(op)
  }
  return bank
}

/* -------------------------------------------------------------------------- */

func (bank *OperonBank) Add(op Operon) {
  bank.operons = append(bank.operons, op)
}

func (bank OperonBank) Length() int {
  return len(bank.operons)
}

func (bank OperonBank) At(i int) (Operon, bool) {
  if i < 0 || i >= len(bank.operons) {
    return Operon{}, false
  }
  return bank.operons[i], true
}

// Replace the last operon. Used while growing operons during segmentation.
func (bank *OperonBank) setLast(op Operon) {
  bank.operons[len(bank.operons)-1] = op
}

func (bank OperonBank) last() Operon {
  return bank.operons[len(bank.operons)-1]
}

// First operon with the given name.
func (bank OperonBank) Get(name string) (Operon, bool) {
  if i := bank.Index(name); i == -1 {
    return Operon{}, false
  } else {
    return bank.operons[i], true
  }
}

func (bank OperonBank) Index(name string) int {
  for i, op := range bank.operons {
    if op.Name == name {
      return i
    }
  }
  return -1
}

func (bank OperonBank) Previous(i int) (Operon, bool) {
  if i < 1 || i >= len(bank.operons) {
    return Operon{}, false
  }
  return bank.operons[i-1], true
}

func (bank OperonBank) Next(i int) (Operon, bool) {
  if i < 0 || i >= len(bank.operons)-1 {
    return Operon{}, false
  }
  return bank.operons[i+1], true
}

func (bank OperonBank) Operons() []Operon {
  r := make([]Operon, len(bank.operons))
  copy(r, bank.operons)
  return r
}

// Genes of all operons in order.
func (bank OperonBank) Genes() []Gene {
  r := []Gene{}
  for _, op := range bank.operons {
    r = append(r, op.Genes...)
  }
  return r
}

/* -------------------------------------------------------------------------- */

func (bank OperonBank) Names() []string {
  names := make([]string, len(bank.operons))
  for i, op := range bank.operons {
    names[i] = op.Name
  }
  return names
}
