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

/* -------------------------------------------------------------------------- */

func (bank GeneBank) WritePretty(writer io.Writer, n int) error {
  // compute the width of a single cell
  updateMaxWidth := func(format string, widths []int, j int, args ...interface{}) error {
    if width, err := fmt.Fprintf(io.Discard, format, args...); err != nil {
      return err
    } else {
      if width > widths[j] {
        widths[j] = width
      }
    }
    return nil
  }
  // compute widths of all cells in row i
  updateMaxWidths := func(i int, widths []int) error {
    g := bank.genes[i]
    if err := updateMaxWidth("%d", widths, 0, i+1); err != nil {
      return err
    }
    if err := updateMaxWidth("%s", widths, 1, g.Name); err != nil {
      return err
    }
    if err := updateMaxWidth("%d", widths, 2, g.Start()); err != nil {
      return err
    }
    if err := updateMaxWidth("%d", widths, 3, g.End()); err != nil {
      return err
    }
    if err := updateMaxWidth("%.2f", widths, 5, g.AverageDepth()); err != nil {
      return err
    }
    if err := updateMaxWidth("%.4f", widths, 6, g.LogCV()); err != nil {
      return err
    }
    return nil
  }
  printRow := func(writer io.Writer, format string, i int) error {
    g := bank.genes[i]
    if _, err := fmt.Fprintf(writer, format,
      i+1,
      g.Name,
      g.Start(),
      g.End(),
      g.Strand,
      g.AverageDepth(),
      g.LogCV()); err != nil {
      return err
    }
    return nil
  }
  applyRows := func(f1 func(i int) error, f2 func() error) error {
    if bank.Length() <= n+1 {
      // apply to all entries
      for i := 0; i < bank.Length(); i++ {
        if err := f1(i); err != nil {
          return err
        }
      }
    } else {
      // apply to first n/2 rows
      for i := 0; i < n/2; i++ {
        if err := f1(i); err != nil {
          return err
        }
      }
      // between first and last n/2 rows
      if err := f2(); err != nil {
        return err
      }
      // apply to last n/2 rows
      for i := bank.Length() - n/2; i < bank.Length(); i++ {
        if err := f1(i); err != nil {
          return err
        }
      }
    }
    return nil
  }
  // maximum column widths
  widths := []int{1, 4, 1, 1, 6, 5, 6}
  // determine column widths
  if err := applyRows(func(i int) error { return updateMaxWidths(i, widths) }, func() error { return nil }); err != nil {
    return err
  }
  // generate format strings
  formatRow    := fmt.Sprintf("%%%dd %%%ds [%%%dd, %%%dd) %%%dc %%%d.2f %%%d.4f\n",
    widths[0], widths[1], widths[2], widths[3], widths[4], widths[5], widths[6])
  formatHeader := fmt.Sprintf("%%%ds %%%ds %%%ds %%%ds %%%ds %%%ds\n",
    widths[0], widths[1], widths[2]+widths[3]+4, widths[4], widths[5], widths[6])
  // print header
  if _, err := fmt.Fprintf(writer, formatHeader, "", "name", "range", "strand", "depth", "log CV"); err != nil {
    return err
  }
  // print rows
  return applyRows(
    func(i int) error {
      return printRow(writer, formatRow, i)
    },
    func() error {
      _, err := fmt.Fprintf(writer, formatHeader, "", "...", "...", "", "", "")
      return err
    })
}

func (bank GeneBank) PrintPretty(n int) string {
  var buffer bytes.Buffer
  writer := bufio.NewWriter(&buffer)

  if err := bank.WritePretty(writer, n); err != nil {
    return ""
  }
  writer.Flush()

  return buffer.String()
}
