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

import "fmt"
import "os"

import "github.com/sirupsen/logrus"

/* -------------------------------------------------------------------------- */

// Parameters of the segmentation and the boundary refinement.
type Config struct {
  // two genes are split if their average depths differ by at least
  // this factor
  FoldChange  float64
  // two genes are split if the minimum depth between them is at most
  // this fraction of the smaller average depth
  DentRatio   float64
  // two genes are split if they are more than this many bases apart
  MaxDistance int
  // maximum distance of the boundary search space from the gene ends
  SearchFlank int
  // width of the sliding window
  WindowWidth int
  // a sliding window marks a turning point if its log CV is at least
  // CVRatio times the smaller log CV of the two flanking genes
  CVRatio     float64
  // number of threads used for the boundary refinement
  Threads     int
  Logger      *logrus.Logger
  // called after each refined boundary with the number of finished
  // and the total number of boundaries
  Progress    func(done, total int)
}

/* -------------------------------------------------------------------------- */

var defaultLogger = &logrus.Logger{
  Out      : os.Stderr,
  Formatter: new(logrus.TextFormatter),
  Hooks    : make(logrus.LevelHooks),
  Level    : logrus.WarnLevel,
}

func DefaultConfig() Config {
  return Config{
    FoldChange : 4.0,
    DentRatio  : 0.5,
    MaxDistance: 100,
    SearchFlank: 200,
    WindowWidth: 25,
    CVRatio    : 2.0,
    Threads    : 1,
    Logger     : defaultLogger }
}

// Check that all parameters are within their valid ranges.
func (config Config) Validate() error {
  switch {
  case config.FoldChange <= 0:
    return fmt.Errorf("Validate(): invalid fold change `%v'", config.FoldChange)
  case config.DentRatio < 0:
    return fmt.Errorf("Validate(): invalid dent ratio `%v'", config.DentRatio)
  case config.CVRatio < 0:
    return fmt.Errorf("Validate(): invalid cv ratio `%v'", config.CVRatio)
  case config.MaxDistance < 0:
    return fmt.Errorf("Validate(): invalid maximal distance `%d'", config.MaxDistance)
  case config.SearchFlank < 1:
    return fmt.Errorf("Validate(): invalid search flank `%d'", config.SearchFlank)
  case config.WindowWidth < 1:
    return fmt.Errorf("Validate(): invalid window width `%d'", config.WindowWidth)
  case config.Threads < 1:
    return fmt.Errorf("Validate(): invalid number of threads `%d'", config.Threads)
  }
  return nil
}

func (config Config) logger() *logrus.Logger {
  if config.Logger == nil {
    return defaultLogger
  }
  return config.Logger
}
