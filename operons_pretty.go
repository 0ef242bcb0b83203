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

func precisionString(left, right Bound) string {
  s := []byte{'~', '~'}
  if left.Precise {
    s[0] = '|'
  }
  if right.Precise {
    s[1] = '|'
  }
  return string(s)
}

// Print operons as an aligned table. If there are more than n operons, only
// the first and last n/2 are shown.
func (bank OperonBank) PrettyPrint(n int) string {
  var buffer bytes.Buffer
  writer := bufio.NewWriter(&buffer)

  // compute the width of a single cell
  updateMaxWidth := func(format string, widths []int, j int, args ...interface{}) {
    width, _ := fmt.Fprintf(io.Discard, format, args...)
    if width > widths[j] {
      widths[j] = width
    }
  }
  // compute widths of all cells in row i
  updateMaxWidths := func(i int, widths []int) {
    op := bank.operons[i]
    updateMaxWidth("%d",   widths, 0, i+1)
    updateMaxWidth("%s",   widths, 1, op.Name)
    updateMaxWidth("%d",   widths, 2, op.Left.Position)
    updateMaxWidth("%d",   widths, 3, op.Right.Position)
    updateMaxWidth("%d",   widths, 6, op.Length())
    updateMaxWidth("%.2f", widths, 7, op.AverageDepth())
    updateMaxWidth("%.4f", widths, 8, op.LogCV())
  }
  printRow := func(format string, i int) {
    op := bank.operons[i]
    strand := op.Strand
    if strand == 0 {
      strand = '*'
    }
    fmt.Fprintf(writer, format,
      i+1,
      op.Name,
      op.Left.Position,
      op.Right.Position,
      strand,
      precisionString(op.Left, op.Right),
      op.Length(),
      op.AverageDepth(),
      op.LogCV())
    fmt.Fprintf(writer, "\n")
  }
  applyRows := func(f1 func(i int), f2 func()) {
    if bank.Length() <= n+1 {
      // apply to all entries
      for i := 0; i < bank.Length(); i++ { f1(i) }
    } else {
      // apply to first n/2 rows
      for i := 0; i < n/2; i++ { f1(i) }
      // between first and last n/2 rows
      f2()
      // apply to last n/2 rows
      for i := bank.Length() - n/2; i < bank.Length(); i++ { f1(i) }
    }
  }
  // maximum column widths
  widths := []int{1, 4, 1, 1, 6, 7, 5, 5, 6}
  // determine column widths
  applyRows(func(i int) { updateMaxWidths(i, widths) }, func() {})
  // generate format strings
  formatRow    := fmt.Sprintf("%%%dd %%%ds [%%%dd, %%%dd) %%%dc %%%ds %%%dd %%%d.2f %%%d.4f",
    widths[0], widths[1], widths[2], widths[3], widths[4], widths[5], widths[6], widths[7], widths[8])
  formatHeader := fmt.Sprintf("%%%ds %%%ds %%%ds %%%ds %%%ds %%%ds %%%ds %%%ds\n",
    widths[0], widths[1], widths[2]+widths[3]+4, widths[4], widths[5], widths[6], widths[7], widths[8])
  // print header
  fmt.Fprintf(writer, formatHeader, "", "name", "ranges", "strand", "precise", "genes", "depth", "log CV")
  // print rows
  applyRows(
    func(i int) {
      printRow(formatRow, i)
    },
    func() {
      fmt.Fprintf(writer, formatHeader, "", "...", "...", "", "", "", "", "")
    })
  writer.Flush()

  return buffer.String()
}

func (bank OperonBank) String() string {
  return bank.PrettyPrint(10)
}
