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
import "fmt"
import "io"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// Import per-base read depth from a table with one row per position. The
// depth is taken from the given column (counting from zero), e.g. column 2
// for tables with columns chromosome, position and depth.
func ReadDepthTable(r io.Reader, column int) ([]float64, error) {
  depth   := []float64{}
  scanner := bufio.NewScanner(r)

  for i := 1; scanner.Scan(); i++ {
    fields := strings.Fields(scanner.Text())
    if len(fields) == 0 {
      continue
    }
    if len(fields) <= column {
      return nil, fmt.Errorf("ReadDepthTable(): line `%d' has no column `%d'", i, column+1)
    }
    v, err := strconv.ParseFloat(fields[column], 64)
    if err != nil {
      return nil, fmt.Errorf("ReadDepthTable(): parsing column `%d' failed at line `%d': %v", column+1, i, err)
    }
    depth = append(depth, v)
  }
  return depth, scanner.Err()
}

func ImportDepthTable(filename string, column int) ([]float64, error) {
  f, err := openFile(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()
  return ReadDepthTable(f, column)
}

/* -------------------------------------------------------------------------- */

// Import per-base read depth of a single sequence from a bedGraph file.
// Positions not covered by the file have depth zero, intervals outside
// [0, length) are clipped.
func ReadDepthBedGraph(r io.Reader, seqname string, length int) ([]float64, error) {
  depth   := make([]float64, length)
  scanner := bufio.NewScanner(r)

  for i := 1; scanner.Scan(); i++ {
    line := scanner.Text()
    if strings.HasPrefix(line, "track") || strings.HasPrefix(line, "browser") || strings.HasPrefix(line, "#") {
      continue
    }
    fields := strings.Fields(line)
    if len(fields) == 0 {
      continue
    }
    if len(fields) != 4 {
      return nil, fmt.Errorf("ReadDepthBedGraph(): bedGraph file must have four columns (line `%d')", i)
    }
    if fields[0] != seqname {
      continue
    }
    t1, err := strconv.ParseInt(fields[1], 10, 64); if err != nil {
      return nil, err
    }
    t2, err := strconv.ParseInt(fields[2], 10, 64); if err != nil {
      return nil, err
    }
    t3, err := strconv.ParseFloat(fields[3], 64); if err != nil {
      return nil, err
    }
    from := iMax(int(t1), 0)
    to   := iMin(int(t2), length)
    for j := from; j < to; j++ {
      depth[j] = t3
    }
  }
  return depth, scanner.Err()
}

func ImportDepthBedGraph(filename, seqname string, length int) ([]float64, error) {
  f, err := openFile(filename)
  if err != nil {
    return nil, err
  }
  defer f.Close()
  return ReadDepthBedGraph(f, seqname, length)
}
