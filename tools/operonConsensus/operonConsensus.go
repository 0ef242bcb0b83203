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
import   "os"

import   "github.com/pborman/getopt"
import   "github.com/sirupsen/logrus"

import . "github.com/pbenner/operons"

/* -------------------------------------------------------------------------- */

type SessionConfig struct {
  Operons     Config
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

func importDataset(config SessionConfig, filenameGenes, filenameDepth string) Dataset {
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

  return Dataset{Name: filenameDepth, Genes: genes, Depth: depth}
}

/* -------------------------------------------------------------------------- */

func operonConsensus(config SessionConfig, filenames []string) {
  datasets := []Dataset{}
  outputs  := []string{}
  for i := 0; i < len(filenames); i += 3 {
    datasets = append(datasets, importDataset(config, filenames[i], filenames[i+1]))
    outputs  = append(outputs, filenames[i+2])
  }
  PrintStderr(config, 1, "Searching consensus operons in %d datasets...\n", len(datasets))
  banks, err := FindConsensusOperons(datasets, config.Operons)
  if err != nil {
    log.Fatal(err)
  }
  for i, bank := range banks {
    PrintStderr(config, 1, "Writing operons to `%s'... ", outputs[i])
    if err := bank.ExportTable(outputs[i], true, false); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := SessionConfig{}
  options := getopt.New()

  optDepthColumn := options.    IntLong("depth-column", 0 ,  2, "column of the depth tables that contains the read depth (counting from zero)")
  optThreads     := options.    IntLong("threads",      0 ,  1, "number of threads")
  optVerbose     := options.CounterLong("verbose",     'v',     "verbose level [-v or -vv]")
  optHelp        := options.   BoolLong("help",        'h',     "print help")

  options.SetParameters("<GENES_1> <DEPTH_1> <OUTPUT_1> [<GENES_2> <DEPTH_2> <OUTPUT_2>]...")
  options.Parse(os.Args)

  // parse options
  //////////////////////////////////////////////////////////////////////////////
  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) == 0 || len(options.Args()) % 3 != 0 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Operons             = DefaultConfig()
  config.Operons.Threads     = *optThreads
  config.DepthColumn         = *optDepthColumn
  config.Verbose             = *optVerbose
  if err := config.Operons.Validate(); err != nil {
    log.Fatal(err)
  }

  logger := logrus.New()
  if config.Verbose >= 2 {
    logger.SetLevel(logrus.DebugLevel)
  } else {
    logger.SetLevel(logrus.WarnLevel)
  }
  config.Operons.Logger = logger

  operonConsensus(config, options.Args())
}
