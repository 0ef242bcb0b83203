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


package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "log"
import   "math"
import   "os"

import   "github.com/pborman/getopt"
import   "github.com/sirupsen/logrus"

import . "github.com/pbenner/operons"
import   "github.com/pbenner/operons/lib/progress"

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/plotutil"
import   "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

type SessionConfig struct {
  Operons     Config
  Seqname     string
  Length      int
  DepthColumn int
  BedGraph    bool
  UcscGenome  string
  UcscTable   string
  Status      bool
  Verbose     int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config SessionConfig, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* i/o
 * -------------------------------------------------------------------------- */

func importDepth(config SessionConfig, filename string) []float64 {
  var depth []float64
  var err   error
  PrintStderr(config, 1, "Reading read depth from `%s'... ", filename)
  if config.BedGraph {
    depth, err = ImportDepthBedGraph(filename, config.Seqname, config.Length)
  } else {
    depth, err = ImportDepthTable(filename, config.DepthColumn)
  }
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return depth
}

func importGenes(config SessionConfig, filename string, depth []float64) GeneBank {
  var genes GeneBank
  var err   error
  if config.UcscGenome != "" {
    PrintStderr(config, 1, "Importing genes from UCSC (%s.%s)... ", config.UcscGenome, config.UcscTable)
    genes, err = ImportGenesFromUCSC(config.UcscGenome, config.UcscTable, config.Seqname, depth)
  } else {
    PrintStderr(config, 1, "Reading genes from `%s'... ", filename)
    genes, err = ImportGenesTable(filename, depth)
  }
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return genes
}

func exportOperons(config SessionConfig, bank OperonBank, filename string) {
  if filename == "" {
    if err := bank.WriteTable(os.Stdout, true); err != nil {
      log.Fatal(err)
    }
  } else {
    PrintStderr(config, 1, "Writing operons to `%s'... ", filename)
    if err := bank.ExportTable(filename, true, false); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
}

func exportBed(config SessionConfig, bank OperonBank, filename string) {
  PrintStderr(config, 1, "Writing bed file `%s'... ", filename)
  if err := bank.ExportBed6(filename, config.Seqname, false); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func boundLine(x, y0, y1 float64, i int, precise bool) *plotter.Line {
  l, err := plotter.NewLine(plotter.XYs{{X: x, Y: y0}, {X: x, Y: y1}})
  if err != nil {
    log.Fatal(err)
  }
  l.LineStyle.Color = plotutil.Color(i)
  if !precise {
    l.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
  }
  return l
}

// Plot the log2 read depth together with the bounds of all operons.
// Imprecise bounds are drawn as dashed lines.
func saveOperonPlot(config SessionConfig, bank OperonBank, depth []float64, filename string) {
  xy   := make(plotter.XYs, len(depth))
  ymax := 0.0
  for i, x := range depth {
    if x <= 0 {
      x = 1
    }
    xy[i].X = float64(i)
    xy[i].Y = math.Log2(x)
    ymax    = math.Max(ymax, xy[i].Y)
  }
  p := plot.New()
  p.Title.Text   = config.Seqname
  p.X.Label.Text = "position"
  p.Y.Label.Text = "log2 depth"

  if err := plotutil.AddLines(p, "depth", xy); err != nil {
    log.Fatal(err)
  }
  for i, op := range bank.Operons() {
    p.Add(boundLine(float64(op.Left .Position), 0, ymax, i+1, op.Left .Precise))
    p.Add(boundLine(float64(op.Right.Position), 0, ymax, i+1, op.Right.Precise))
  }
  if err := p.Save(16*vg.Inch, 4*vg.Inch, filename); err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Wrote operon plot to `%s'\n", filename)
}

/* -------------------------------------------------------------------------- */

func operonFinder(config SessionConfig, filenameGenes, filenameDepth, filenameOut, filenameBed, filenamePlot string) {
  depth := importDepth(config, filenameDepth)
  genes := importGenes(config, filenameGenes, depth)

  if config.Status {
    config.Operons.Progress = progress.Reporter(os.Stderr, "refining boundaries", 100)
  }
  PrintStderr(config, 2, "%s", genes.PrintPretty(10))
  PrintStderr(config, 1, "Searching operons in %d genes...\n", genes.Length())
  bank, err := FindOperons(genes, depth, config.Operons)
  if err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 2, "%v\n", bank)

  exportOperons(config, bank, filenameOut)

  if filenameBed != "" {
    exportBed(config, bank, filenameBed)
  }
  if filenamePlot != "" {
    saveOperonPlot(config, bank, depth, filenamePlot)
  }
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := SessionConfig{}
  options := getopt.New()

  defaults := DefaultConfig()

  optGenes       := options. StringLong("genes",           0 , "", "gene annotation table [name,start,end,strand]")
  optBedGraph    := options.   BoolLong("bedgraph",        0 ,     "read depth is given as bedGraph file")
  optSeqname     := options. StringLong("seqname",         0 , "", "sequence name used in bedGraph, UCSC and bed files")
  optLength      := options.    IntLong("length",          0 ,  0, "sequence length for bedGraph input")
  optDepthColumn := options.    IntLong("depth-column",    0 ,  2, "column of the depth table that contains the read depth (counting from zero)")
  optUcscGenome  := options. StringLong("ucsc-genome",     0 , "", "import genes from the UCSC MySQL server for the given genome assembly")
  optUcscTable   := options. StringLong("ucsc-table",      0 , "refGene", "UCSC gene table")
  optFoldChange  := options. StringLong("fold-change",     0 , fmt.Sprintf("%v", defaults.FoldChange), "split genes if their average depths differ by this factor")
  optDentRatio   := options. StringLong("dent-ratio",      0 , fmt.Sprintf("%v", defaults.DentRatio), "split genes if the depth between them drops below this fraction")
  optMaxDistance := options.    IntLong("max-distance",    0 , defaults.MaxDistance, "split genes that are more than this many bases apart")
  optSearchFlank := options.    IntLong("search-flank",    0 , defaults.SearchFlank, "maximal extent of the boundary search space into flanking genes")
  optWindowWidth := options.    IntLong("window-width",    0 , defaults.WindowWidth, "width of the sliding window")
  optCVRatio     := options. StringLong("cv-ratio",        0 , fmt.Sprintf("%v", defaults.CVRatio), "minimal ratio of window and gene log CV for turning points")
  optThreads     := options.    IntLong("threads",         0 ,  1, "number of threads")
  optOutput      := options. StringLong("output",         'o', "", "write operon table to file instead of stdout")
  optBed         := options. StringLong("bed",             0 , "", "export operons as bed6 file")
  optPlot        := options. StringLong("plot",            0 , "", "plot read depth and operon bounds [pdf, png, svg]")
  optStatus      := options.   BoolLong("status",          0 ,     "show status bar")
  optVerbose     := options.CounterLong("verbose",        'v',     "verbose level [-v or -vv]")
  optHelp        := options.   BoolLong("help",           'h',     "print help")

  options.SetParameters("<DEPTH>")
  options.Parse(os.Args)

  // parse options
  //////////////////////////////////////////////////////////////////////////////
  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 1 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if *optGenes == "" && *optUcscGenome == "" {
    log.Fatal("either --genes or --ucsc-genome is required")
  }
  if (*optBedGraph || *optUcscGenome != "" || *optBed != "") && *optSeqname == "" {
    log.Fatal("--seqname is required for bedGraph, UCSC and bed files")
  }
  if *optBedGraph && *optLength <= 0 {
    log.Fatal("--length is required for bedGraph input")
  }
  config.Operons             = defaults
  config.Operons.MaxDistance = *optMaxDistance
  config.Operons.SearchFlank = *optSearchFlank
  config.Operons.WindowWidth = *optWindowWidth
  config.Operons.Threads     = *optThreads
  if _, err := fmt.Sscan(*optFoldChange, &config.Operons.FoldChange); err != nil {
    log.Fatalf("invalid fold change `%s'", *optFoldChange)
  }
  if _, err := fmt.Sscan(*optDentRatio, &config.Operons.DentRatio); err != nil {
    log.Fatalf("invalid dent ratio `%s'", *optDentRatio)
  }
  if _, err := fmt.Sscan(*optCVRatio, &config.Operons.CVRatio); err != nil {
    log.Fatalf("invalid cv ratio `%s'", *optCVRatio)
  }
  if err := config.Operons.Validate(); err != nil {
    log.Fatal(err)
  }
  config.Seqname     = *optSeqname
  config.Length      = *optLength
  config.DepthColumn = *optDepthColumn
  config.BedGraph    = *optBedGraph
  config.UcscGenome  = *optUcscGenome
  config.UcscTable   = *optUcscTable
  config.Status      = *optStatus
  config.Verbose     = *optVerbose

  logger := logrus.New()
  logger.SetOutput(os.Stderr)
  if config.Verbose >= 2 {
    logger.SetLevel(logrus.DebugLevel)
  } else {
    logger.SetLevel(logrus.WarnLevel)
  }
  config.Operons.Logger = logger

  operonFinder(config, *optGenes, options.Args()[0], *optOutput, *optBed, *optPlot)
}
