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
import "math"
import "sync"

import "github.com/pbenner/threadpool"
import "github.com/sirupsen/logrus"

/* -------------------------------------------------------------------------- */

// Result of the boundary search between two adjacent operons.
type Boundary struct {
  // search space around the gap between both operons
  Window        Range
  // position of minimum depth within the search space
  BreakPoint    int
  // center of the gap between both operons
  MidPoint      int
  LeftTurn      int
  RightTurn     int
  LeftAccepted  bool
  RightAccepted bool
  // new right bound of the upstream operon
  Right         Bound
  // new left bound of the downstream operon
  Left          Bound
}

func (b Boundary) String() string {
  return fmt.Sprintf("window=%v breakpoint=%d bounds=(%v, %v)", b.Window, b.BreakPoint, b.Right, b.Left)
}

/* -------------------------------------------------------------------------- */

func subInterval(iv Interval, from, to int) Interval {
  return Interval{"", Range{from, to}, iv.Strand, iv.Depth[from-iv.Range.From:to-iv.Range.From]}
}

func isDecreasing(x []float64) bool {
  return x[0] > x[len(x)-1]
}

func isIncreasing(x []float64) bool {
  return x[0] < x[len(x)-1]
}

// Slide a window of the given width one position at a time over space
// and return the window with maximum log CV among all windows with the
// requested shape. The first window is the initial candidate regardless
// of its shape. A space not wider than the window is returned as a whole.
func maxCVWindow(space Interval, width int, shape func([]float64) bool) Interval {
  if space.Length() <= width {
    return space
  }
  from    := space.Range.From
  best    := subInterval(space, from, from+width)
  bestCV  := best.LogCV()
  for ; from+width < space.Range.To; from++ {
    window := subInterval(space, from, from+width)
    if cv := window.LogCV(); bestCV < cv && shape(window.Depth) {
      best, bestCV = window, cv
    }
  }
  return best
}

/* -------------------------------------------------------------------------- */

// Locate the boundary between two adjacent operons. The search space
// extends from the last gene of op1 to the first gene of op2 but never
// beyond the centers of both genes. The search space is split at the
// position of minimum depth, and each half is scanned for a window of
// high variation where the depth drops (left half) or rises (right half).
func FindBoundary(op1, op2 Operon, depth []float64, config Config) (Boundary, error) {
  upGene, err := op1.Last()
  if err != nil {
    return Boundary{}, err
  }
  downGene, err := op2.First()
  if err != nil {
    return Boundary{}, err
  }
  leftEdge  := iMax(upGene.End() - config.SearchFlank, upGene.Range.Midpoint())
  rightEdge := iMin(downGene.Start() + config.SearchFlank, downGene.Range.Midpoint())

  workSpace := depthWindow(depth, Range{leftEdge, rightEdge})

  b := Boundary{}
  b.Window    = workSpace.Range
  b.MidPoint  = divIntDown(upGene.End() + downGene.Start(), 2)
  b.LeftTurn  = -1
  b.RightTurn = -1
  if workSpace.Length() == 0 {
    b.BreakPoint = workSpace.Range.From
  } else {
    b.BreakPoint, _ = workSpace.MinDepthLocation()
  }
  // not enough space for a sliding window
  if workSpace.Length() <= config.WindowWidth {
    b.Right = Bound{b.BreakPoint, false}
    b.Left  = Bound{b.BreakPoint, false}
    return b, nil
  }
  refCV := math.Min(upGene.LogCV(), downGene.LogCV())

  space1 := subInterval(workSpace, workSpace.Range.From, b.BreakPoint)
  space2 := subInterval(workSpace, b.BreakPoint, workSpace.Range.To)

  window1 := maxCVWindow(space1, config.WindowWidth, isDecreasing)
  window2 := maxCVWindow(space2, config.WindowWidth, isIncreasing)

  if window1.Length() > 0 && window1.LogCV() >= config.CVRatio*refCV {
    b.LeftTurn, _  = window1.MinDepthLocation()
    b.LeftAccepted = true
  }
  if window2.Length() > 0 && window2.LogCV() >= config.CVRatio*refCV {
    b.RightTurn, _  = window2.RightmostMinDepthLocation()
    b.RightAccepted = true
  }
  switch {
  case b.LeftAccepted && b.RightAccepted:
    b.Right = Bound{b.LeftTurn,  true}
    b.Left  = Bound{b.RightTurn, true}
  case b.LeftAccepted:
    b.Right = Bound{b.LeftTurn,   true}
    b.Left  = Bound{b.LeftTurn+1, false}
  case b.RightAccepted:
    b.Right = Bound{b.RightTurn-1, false}
    b.Left  = Bound{b.RightTurn,   true}
  default:
    b.Right = Bound{b.MidPoint,   false}
    b.Left  = Bound{b.MidPoint+1, false}
  }
  return b, nil
}

/* -------------------------------------------------------------------------- */

func findBoundaries(bank OperonBank, depth []float64, config Config) ([]Boundary, error) {
  n := bank.Length()
  boundaries := make([]Boundary, n-1)

  mtx  := sync.Mutex{}
  done := 0
  report := func() {
    if config.Progress == nil {
      return
    }
    mtx.Lock()
    defer mtx.Unlock()
    done++
    config.Progress(done, n-1)
  }
  if config.Threads <= 1 {
    for i := 0; i < n-1; i++ {
      if b, err := FindBoundary(bank.operons[i], bank.operons[i+1], depth, config); err != nil {
        return nil, err
      } else {
        boundaries[i] = b
      }
      report()
    }
    return boundaries, nil
  }
  // every boundary is owned by a single pair of operons, so that all
  // pairs can be processed independently
  pool := threadpool.New(config.Threads, 100*config.Threads)
  jg   := pool.NewJobGroup()
  if err := pool.AddRangeJob(0, n-1, jg, func(i int, pool threadpool.ThreadPool, erf func() error) error {
    if erf() != nil {
      return nil
    }
    b, err := FindBoundary(bank.operons[i], bank.operons[i+1], depth, config)
    if err != nil {
      return err
    }
    boundaries[i] = b
    report()
    return nil
  }); err != nil {
    return nil, err
  }
  if err := pool.Wait(jg); err != nil {
    return nil, err
  }
  return boundaries, nil
}

// Replace the coarse bounds between all adjacent operons by refined
// bounds. The left bound of the first and the right bound of the last
// operon are kept.
func Refine(bank OperonBank, depth []float64, config Config) (OperonBank, error) {
  n := bank.Length()
  if n == 0 {
    return OperonBank{}, nil
  }
  log := config.logger()

  boundaries, err := findBoundaries(bank, depth, config)
  if err != nil {
    return OperonBank{}, err
  }
  for i, b := range boundaries {
    log.WithFields(logrus.Fields{
      "operon"    : bank.operons[i].Name,
      "window"    : b.Window.String(),
      "breakpoint": b.BreakPoint,
      "right"     : b.Right.String(),
      "left"      : b.Left.String(),
    }).Debug("refined boundary")
  }
  result := OperonBank{}
  for i, op := range bank.operons {
    left  := op.Left
    right := op.Right
    if i > 0 {
      left = boundaries[i-1].Left
    }
    if i < n-1 {
      right = boundaries[i].Right
    }
    if right.Position < left.Position {
      log.WithFields(logrus.Fields{
        "operon": op.Name,
        "left"  : left.String(),
        "right" : right.String(),
      }).Warn("right bound precedes left bound, collapsing operon")
      right = Bound{left.Position, false}
    }
    if r, err := op.Refined(left, right, depth); err != nil {
      return OperonBank{}, err
    } else {
      result.Add(r)
    }
  }
  return result, nil
}
