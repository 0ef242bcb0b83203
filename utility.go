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
import "compress/gzip"
import "io"
import "os"
import "sort"
import "strings"

import "github.com/brentp/xopen"

/* -------------------------------------------------------------------------- */

func iMin(a, b int) int {
  if a < b {
    return a
  } else {
    return b
  }
}

func iMax(a, b int) int {
  if a > b {
    return a
  } else {
    return b
  }
}

// Divide a by b, the result is rounded down (also for negative numbers).
func divIntDown(a, b int) int {
  q := a/b
  if (a % b != 0) && ((a < 0) != (b < 0)) {
    q--
  }
  return q
}

/* -------------------------------------------------------------------------- */

func uniqueSortedInts(s []int) []int {
  m := map[int]struct{}{}
  r := []int{}
  for _, v := range s {
    if _, ok := m[v]; !ok {
      m[v] = struct{}{}
      r    = append(r, v)
    }
  }
  sort.Ints(r)
  return r
}

/* -------------------------------------------------------------------------- */

func writeFile(filename string, r io.Reader, compress bool) error {
  var buffer bytes.Buffer

  if compress {
    w := gzip.NewWriter(&buffer)
    if _, err := io.Copy(w, r); err != nil {
      return err
    }
    w.Close()
  } else {
    w := bufio.NewWriter(&buffer)
    if _, err := io.Copy(w, r); err != nil {
      return err
    }
    w.Flush()
  }
  return os.WriteFile(filename, buffer.Bytes(), 0666)
}

// Open a plain or gzipped file for reading, "-" denotes stdin.
func openFile(filename string) (*xopen.Reader, error) {
  return xopen.Ropen(filename)
}

/* -------------------------------------------------------------------------- */

// Split a table row at commas, tabs or blanks.
func tableFields(line string) []string {
  return strings.FieldsFunc(line, func(c rune) bool {
    return c == ',' || c == '\t' || c == ' ' || c == '\r'
  })
}
