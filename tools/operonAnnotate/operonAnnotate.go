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

import   "bufio"
import   "fmt"
import   "io"
import   "log"
import   "os"
import   "strconv"
import   "strings"

import   "github.com/brentp/xopen"
import   "github.com/pborman/getopt"

import . "github.com/pbenner/operons"

/* -------------------------------------------------------------------------- */

type SessionConfig struct {
  Seqname     string
  DepthColumn int
  Verbose     int
}

/* -------------------------------------------------------------------------- */

func PrintStderr(config SessionConfig, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

type region struct {
  seqname string
  r       Range
}

func readBed3(config SessionConfig, reader io.Reader) ([]region, error) {
  regions := []region{}
  scanner := bufio.NewScanner(reader)
  for i := 1; scanner.Scan(); i++ {
    line := scanner.Text()
    if strings.HasPrefix(line, "track") || strings.HasPrefix(line, "browser") || strings.HasPrefix(line, "#") {
      continue
    }
    fields := strings.Fields(line)
    if len(fields) == 0 {
      continue
    }
    if len(fields) < 3 {
      return nil, fmt.Errorf("readBed3(): bed file must have at least three columns (line `%d')", i)
    }
    if config.Seqname != "" && fields[0] != config.Seqname {
      continue
    }
    t1, err := strconv.ParseInt(fields[1], 10, 64); if err != nil {
      return nil, err
    }
    t2, err := strconv.ParseInt(fields[2], 10, 64); if err != nil {
      return nil, err
    }
    if t1 > t2 {
      return nil, fmt.Errorf("readBed3(): invalid range at line `%d'", i)
    }
    regions = append(regions, region{fields[0], NewRange(int(t1), int(t2))})
  }
  return regions, scanner.Err()
}

func importBed3(config SessionConfig, filename string) []region {
  PrintStderr(config, 1, "Reading bed file `%s'... ", filename)
  f, err := xopen.Ropen(filename)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  defer f.Close()
  regions, err := readBed3(config, f)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return regions
}

func importOperons(config SessionConfig, filenameGenes, filenameDepth, filenameOperons string) OperonBank {
  PrintStderr(config, 1, "Reading read depth from `%s'... ", filenameDepth)
  depth, err := ImportDepthTable(filenameDepth, config.DepthColumn)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  PrintStderr(config, 1, "Reading genes from `%s'... ", filenameGenes)
  genes, err := ImportGenesTable(filenameGenes, depth)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  PrintStderr(config, 1, "Reading operons from `%s'... ", filenameOperons)
  bank, err := ImportOperonTable(filenameOperons, genes, depth)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return bank
}

func importGenome(config SessionConfig, filename string) ReferenceGenome {
  genome := NewReferenceGenome()
  PrintStderr(config, 1, "Reading genome `%s'... ", filename)
  if err := genome.ImportFasta(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return genome
}

/* -------------------------------------------------------------------------- */

func operonAnnotate(config SessionConfig, filenameGenes, filenameDepth, filenameOperons, filenameBed, filenameFasta string) {
  bank    := importOperons(config, filenameGenes, filenameDepth, filenameOperons)
  regions := importBed3(config, filenameBed)

  var genome ReferenceGenome
  if filenameFasta != "" {
    genome = importGenome(config, filenameFasta)
  }
  idx, err := NewOperonIndex(bank)
  if err != nil {
    log.Fatal(err)
  }
  writer := bufio.NewWriter(os.Stdout)
  defer writer.Flush()

  for _, reg := range regions {
    for _, i := range idx.Overlapping(reg.r) {
      op, _ := bank.At(i)
      if genome == nil {
        fmt.Fprintf(writer, "%s\t%d\t%d\t%s\t%d\t%d\t%c\n",
          reg.seqname, reg.r.From, reg.r.To, op.Name, op.Left.Position, op.Right.Position, op.Strand)
      } else {
        seq, err := genome.OperonSequence(reg.seqname, op)
        if err != nil {
          log.Fatal(err)
        }
        fmt.Fprintf(writer, ">%s|%s:%d-%d\n%s\n", op.Name, reg.seqname, op.Left.Position, op.Right.Position, seq)
      }
    }
  }
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := SessionConfig{}
  options := getopt.New()

  optSeqname     := options. StringLong("seqname",      0 , "", "only use regions on the given sequence")
  optDepthColumn := options.    IntLong("depth-column", 0 ,  2, "column of the depth table that contains the read depth (counting from zero)")
  optFasta       := options. StringLong("fasta",        0 , "", "print operon sequences from the given genome")
  optVerbose     := options.CounterLong("verbose",     'v',     "verbose level [-v or -vv]")
  optHelp        := options.   BoolLong("help",        'h',     "print help")

  options.SetParameters("<GENES> <DEPTH> <OPERONS> <REGIONS.bed>")
  options.Parse(os.Args)

  // parse options
  //////////////////////////////////////////////////////////////////////////////
  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 4 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Seqname     = *optSeqname
  config.DepthColumn = *optDepthColumn
  config.Verbose     = *optVerbose

  operonAnnotate(config, options.Args()[0], options.Args()[1], options.Args()[2], options.Args()[3], *optFasta)
}
