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


package progress

/* -------------------------------------------------------------------------- */

import "bytes"
import "bufio"
import "fmt"
import "io"
import "os"

/* -------------------------------------------------------------------------- */

// Status bar for n steps that is redrawn every k steps.
type Progress struct {
  N, K, LineWidth int
  Label           string
}

/* -------------------------------------------------------------------------- */

func New(n, k int) Progress {
  progress := Progress{N: n, K: 1, LineWidth: 40}
  if k > 0 && k <= n {
    progress.K = n/k
  }
  return progress
}

/* -------------------------------------------------------------------------- */

const lineDel = "\033[2K\r"

func (progress Progress) Exec(i int) string {
  var buffer bytes.Buffer
  writer := bufio.NewWriter(&buffer)

  p := 1.0
  if progress.N > 0 {
    p = float64(i)/float64(progress.N)
  }
  fmt.Fprintf(writer, "%s", lineDel)
  if progress.Label != "" {
    fmt.Fprintf(writer, "%s ", progress.Label)
  }
  fmt.Fprintf(writer, "|")
  for j := 1; j < progress.LineWidth-1; j++ {
    if float64(j)/float64(progress.LineWidth) < p {
      fmt.Fprintf(writer, ">")
    } else {
      fmt.Fprintf(writer, " ")
    }
  }
  fmt.Fprintf(writer, "| %6.2f%% (%d/%d)", p*100, i, progress.N)
  // add newline if finished
  if i >= progress.N {
    fmt.Fprintf(writer, "\n")
  }
  writer.Flush()

  return buffer.String()
}

func (progress Progress) Fprint(w io.Writer, i int) {
  if i == 0 || i >= progress.N || (i % progress.K == 0) {
    fmt.Fprint(w, progress.Exec(i))
  }
}

func (progress Progress) PrintStderr(i int) {
  progress.Fprint(os.Stderr, i)
}

/* -------------------------------------------------------------------------- */

// Returns a callback that draws a status bar on w. The total number of
// steps is taken from the first call.
func Reporter(w io.Writer, label string, k int) func(done, total int) {
  var progress *Progress
  return func(done, total int) {
    if progress == nil || progress.N != total {
      p := New(total, k)
      p.Label  = label
      progress = &p
    }
    progress.Fprint(w, done)
  }
}
