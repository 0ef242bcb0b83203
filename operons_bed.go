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

func (op Operon) bedScore() int {
  score := 0
  if op.Left.Precise {
    score++
  }
  if op.Right.Precise {
    score++
  }
  return score
}

// Export operons as bed file with six columns. The score column counts
// the number of precise bounds.
func (bank OperonBank) WriteBed6(w io.Writer, seqname string) error {
  for _, op := range bank.operons {
    if _, err := fmt.Fprintf(w,   "%s", seqname); err != nil {
      return err
    }
    if _, err := fmt.Fprintf(w, "\t%d", op.Left.Position); err != nil {
      return err
    }
    if _, err := fmt.Fprintf(w, "\t%d", op.Right.Position); err != nil {
      return err
    }
    if _, err := fmt.Fprintf(w, "\t%s", op.Name); err != nil {
      return err
    }
    if _, err := fmt.Fprintf(w, "\t%d", op.bedScore()); err != nil {
      return err
    }
    if op.Strand == '+' || op.Strand == '-' {
      if _, err := fmt.Fprintf(w, "\t%c\n", op.Strand); err != nil {
        return err
      }
    } else {
      if _, err := fmt.Fprintf(w, "\t%s\n", "."); err != nil {
        return err
      }
    }
  }
  return nil
}

func (bank OperonBank) ExportBed6(filename, seqname string, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := bank.WriteBed6(w, seqname); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}
