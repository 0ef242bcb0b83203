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

import "bufio"
import "bytes"
import "fmt"
import "io"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

func (op Operon) geneNames() string {
  names := make([]string, len(op.Genes))
  for i, g := range op.Genes {
    names[i] = g.Name
  }
  return strings.Join(names, ",")
}

// Export operons as a table. The first line contains the header
// of the table.
func (bank OperonBank) WriteTable(w io.Writer, header bool) error {
  if header {
    if _, err := fmt.Fprintf(w, "%14s %10s %10s %6s %11s %12s %s\n",
      "name", "from", "to", "strand", "leftPrecise", "rightPrecise", "genes"); err != nil {
      return err
    }
  }
  for _, op := range bank.operons {
    strand := op.Strand
    if strand == 0 {
      strand = '*'
    }
    if _, err := fmt.Fprintf(w, "%14s %10d %10d %6c %11t %12t %s\n",
      op.Name,
      op.Left.Position,
      op.Right.Position,
      strand,
      op.Left.Precise,
      op.Right.Precise,
      op.geneNames()); err != nil {
      return err
    }
  }
  return nil
}

func (bank OperonBank) ExportTable(filename string, header, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := bank.WriteTable(w, header); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}

/* -------------------------------------------------------------------------- */

// Import operons from a table written by WriteTable. Genes are identified
// by name in the given gene bank and depth slices are cut from the given
// depth array. The resulting operons are in the refined stage.
func ReadOperonTable(r io.Reader, genes GeneBank, depth []float64) (OperonBank, error) {
  bank    := OperonBank{}
  scanner := bufio.NewScanner(r)

  colName         := -1
  colFrom         := -1
  colTo           := -1
  colLeftPrecise  := -1
  colRightPrecise := -1
  colGenes        := -1

  // scan header
  if scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    for i := 0; i < len(fields); i++ {
      switch fields[i] {
      case "name":
        colName = i
      case "from":
        colFrom = i
      case "to":
        colTo = i
      case "leftPrecise":
        colLeftPrecise = i
      case "rightPrecise":
        colRightPrecise = i
      case "genes":
        colGenes = i
      }
    }
  }
  if colName == -1 || colFrom == -1 || colTo == -1 || colGenes == -1 {
    return bank, fmt.Errorf("ReadOperonTable(): table requires columns name, from, to and genes")
  }
  ncol := iMax(iMax(colName, colFrom), iMax(colTo, iMax(colGenes, iMax(colLeftPrecise, colRightPrecise)))) + 1
  // scan data
  for i := 2; scanner.Scan(); i++ {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) < ncol {
      return bank, fmt.Errorf("ReadOperonTable(): invalid table at line `%d'", i)
    }
    from, err := strconv.ParseInt(fields[colFrom], 10, 64)
    if err != nil {
      return bank, fmt.Errorf("ReadOperonTable(): parsing `from' column failed at line `%d': %v", i, err)
    }
    to, err := strconv.ParseInt(fields[colTo], 10, 64)
    if err != nil {
      return bank, fmt.Errorf("ReadOperonTable(): parsing `to' column failed at line `%d': %v", i, err)
    }
    left  := Bound{Position: int(from)}
    right := Bound{Position: int(to)}
    if colLeftPrecise != -1 {
      if left.Precise, err = strconv.ParseBool(fields[colLeftPrecise]); err != nil {
        return bank, fmt.Errorf("ReadOperonTable(): parsing `leftPrecise' column failed at line `%d': %v", i, err)
      }
    }
    if colRightPrecise != -1 {
      if right.Precise, err = strconv.ParseBool(fields[colRightPrecise]); err != nil {
        return bank, fmt.Errorf("ReadOperonTable(): parsing `rightPrecise' column failed at line `%d': %v", i, err)
      }
    }
    op := NewOperon(fields[colName])
    for _, name := range strings.Split(fields[colGenes], ",") {
      if g, ok := genes.Get(name); !ok {
        return bank, fmt.Errorf("ReadOperonTable(): unknown gene `%s' at line `%d'", name, i)
      } else {
        op = op.withGene(g)
      }
    }
    if op, err = op.Coarse(depth); err != nil {
      return bank, err
    }
    if op, err = op.Refined(left, right, depth); err != nil {
      return bank, err
    }
    bank.Add(op)
  }
  return bank, scanner.Err()
}

func ImportOperonTable(filename string, genes GeneBank, depth []float64) (OperonBank, error) {
  f, err := openFile(filename)
  if err != nil {
    return OperonBank{}, err
  }
  defer f.Close()
  return ReadOperonTable(f, genes, depth)
}
