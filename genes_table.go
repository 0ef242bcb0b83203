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

// Import genes from a table with columns name, start, end and strand. Columns
// may be separated by commas, tabs or blanks. A first line that does not
// parse is treated as header, empty lines and lines starting with `#' are
// skipped. Genes must be listed in chromosomal order.
func ReadGenesTable(r io.Reader, depth []float64) (GeneBank, error) {
  bank    := GeneBank{}
  scanner := bufio.NewScanner(r)
  header  := true

  for i := 1; scanner.Scan(); i++ {
    line := strings.TrimSpace(scanner.Text())
    if len(line) == 0 || line[0] == '#' {
      continue
    }
    fields := tableFields(line)
    if len(fields) < 4 {
      return bank, fmt.Errorf("ReadGenesTable(): line `%d' has less than four columns", i)
    }
    t1, err1 := strconv.ParseInt(fields[1], 10, 64)
    t2, err2 := strconv.ParseInt(fields[2], 10, 64)
    if err1 != nil || err2 != nil {
      if header {
        header = false
        continue
      }
      return bank, fmt.Errorf("ReadGenesTable(): invalid coordinates at line `%d'", i)
    }
    header = false
    if t1 > t2 {
      return bank, fmt.Errorf("ReadGenesTable(): start after end at line `%d'", i)
    }
    g, err := NewGene(fields[0], NewRange(int(t1), int(t2)), fields[3][0], depth)
    if err != nil {
      return bank, fmt.Errorf("ReadGenesTable(): line `%d': %v", i, err)
    }
    bank.Add(g)
  }
  return bank, scanner.Err()
}

func ImportGenesTable(filename string, depth []float64) (GeneBank, error) {
  f, err := openFile(filename)
  if err != nil {
    return GeneBank{}, err
  }
  defer f.Close()
  return ReadGenesTable(f, depth)
}

/* -------------------------------------------------------------------------- */

func (bank GeneBank) WriteTable(w io.Writer, header bool) error {
  if header {
    if _, err := fmt.Fprintf(w, "name\tfrom\tto\tstrand\n"); err != nil {
      return err
    }
  }
  for _, g := range bank.genes {
    if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%c\n", g.Name, g.Start(), g.End(), g.Strand); err != nil {
      return err
    }
  }
  return nil
}

func (bank GeneBank) ExportTable(filename string, header, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := bank.WriteTable(w, header); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}
