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

import "bytes"
import "path/filepath"
import "strings"
import "testing"

import "github.com/stretchr/testify/assert"

/* -------------------------------------------------------------------------- */

func TestGenesTable1(t *testing.T) {
  depth := constantDepth(1000, 10)
  table := `# E. coli K-12 thr operon
name,start,end,strand
thrL,189,255,+
thrA,336,2799,+

thrB 2800 3733 +
`
  if _, err := ReadGenesTable(strings.NewReader(table), depth); err == nil {
    t.Error("TestGenesTable1 failed!")
  }
  depth = constantDepth(5000, 10)

  genes, err := ReadGenesTable(strings.NewReader(table), depth)
  if err != nil {
    t.Fatal(err)
  }
  assert.Equal(t, "thrL, thrA, thrB", genes.String())

  if g, _ := genes.Get("thrB"); g.Range != (Range{2800, 3733}) || g.Strand != '+' {
    t.Error("TestGenesTable1 failed!")
  }
}

func TestGenesTable2(t *testing.T) {
  depth := constantDepth(100, 10)

  for _, table := range []string{
    "a\t10\t20\t+\nb\tx\t30\t+\n",
    "a\t10\t20\t+\nb\t30\t20\t+\n",
    "a\t10\t20\n",
    "a\t10\t20\t.\n" } {
    if _, err := ReadGenesTable(strings.NewReader(table), depth); err == nil {
      t.Errorf("TestGenesTable2 failed for table %q", table)
    }
  }
}

func TestGenesTable3(t *testing.T) {
  depth := constantDepth(100, 10)
  genes := NewGeneBank(
    newTestGene(t, depth, "a", 10, 20, '+'),
    newTestGene(t, depth, "b", 30, 50, '-'))

  filename := filepath.Join(t.TempDir(), "genes.txt.gz")

  if err := genes.ExportTable(filename, true, true); err != nil {
    t.Fatal(err)
  }
  r, err := ImportGenesTable(filename, depth)
  if err != nil {
    t.Fatal(err)
  }
  assert.Equal(t, genes.Genes(), r.Genes())
}

/* -------------------------------------------------------------------------- */

func TestDepth1(t *testing.T) {
  table := "NC_000913.3\t1\t0\nNC_000913.3\t2\t3\n\nNC_000913.3\t3\t12.5\n"

  depth, err := ReadDepthTable(strings.NewReader(table), 2)
  if err != nil {
    t.Fatal(err)
  }
  assert.Equal(t, []float64{0, 3, 12.5}, depth)

  if _, err := ReadDepthTable(strings.NewReader(table), 3); err == nil {
    t.Error("TestDepth1 failed!")
  }
  if _, err := ReadDepthTable(strings.NewReader(table), 0); err == nil {
    t.Error("TestDepth1 failed!")
  }
}

func TestDepth2(t *testing.T) {
  bedGraph := `track type=bedGraph
chr1 0 3 5
chr2 0 10 7
chr1 4 6 2.5
chr1 8 20 1
`
  depth, err := ReadDepthBedGraph(strings.NewReader(bedGraph), "chr1", 10)
  if err != nil {
    t.Fatal(err)
  }
  assert.Equal(t, []float64{5, 5, 5, 0, 2.5, 2.5, 0, 0, 1, 1}, depth)

  if _, err := ReadDepthBedGraph(strings.NewReader("chr1 0 3\n"), "chr1", 10); err == nil {
    t.Error("TestDepth2 failed!")
  }
}

func TestDepth3(t *testing.T) {
  filename := filepath.Join(t.TempDir(), "depth.txt")

  if err := writeFile(filename, strings.NewReader("1 10\n2 20\n"), false); err != nil {
    t.Fatal(err)
  }
  depth, err := ImportDepthTable(filename, 1)
  if err != nil {
    t.Fatal(err)
  }
  assert.Equal(t, []float64{10, 20}, depth)
}

/* -------------------------------------------------------------------------- */

func TestOperonTable1(t *testing.T) {
  genes, depth := newTestOperonData(t)

  bank, err := FindOperons(genes, depth, DefaultConfig())
  if err != nil {
    t.Fatal(err)
  }
  filename := filepath.Join(t.TempDir(), "operons.table")

  if err := bank.ExportTable(filename, true, false); err != nil {
    t.Fatal(err)
  }
  r, err := ImportOperonTable(filename, genes, depth)
  if err != nil {
    t.Fatal(err)
  }
  assert.Equal(t, bank.Operons(), r.Operons())
}

func TestOperonTable2(t *testing.T) {
  genes, depth := newTestOperonData(t)

  for _, table := range []string{
    "name from to\nop 0 10\n",
    "name from to genes\nop 0 10 g1,gx\n",
    "name from to genes\nop 10 0 g1\n",
    "name from to genes\nop x 10 g1\n",
    "name from to leftPrecise genes\nop 0 10 maybe g1\n" } {
    if _, err := ReadOperonTable(strings.NewReader(table), genes, depth); err == nil {
      t.Errorf("TestOperonTable2 failed for table %q", table)
    }
  }
}

/* -------------------------------------------------------------------------- */

func TestOperonBed1(t *testing.T) {
  depth := constantDepth(100, 10)

  op, _ := NewOperon("op1", newTestGene(t, depth, "g1", 10, 20, '-')).Coarse(depth)
  op, _  = op.Refined(Bound{8, true}, Bound{22, false}, depth)

  var buffer bytes.Buffer
  if err := NewOperonBank(op).WriteBed6(&buffer, "NC_000913.3"); err != nil {
    t.Fatal(err)
  }
  assert.Equal(t, "NC_000913.3\t8\t22\top1\t1\t-\n", buffer.String())
}

func TestOperonPretty1(t *testing.T) {
  genes, depth := newTestOperonData(t)

  bank, _ := Segment(genes, depth, DefaultConfig())
  s := bank.String()

  if !strings.Contains(s, "operon_1") || !strings.Contains(s, "[  0, 200)") {
    t.Errorf("TestOperonPretty1 failed: %s", s)
  }
  // only the first and last row are shown
  s = bank.PrettyPrint(2)
  if !strings.Contains(s, "...") || strings.Contains(s, "operon_2") || !strings.Contains(s, "operon_4") {
    t.Errorf("TestOperonPretty1 failed: %s", s)
  }
}
