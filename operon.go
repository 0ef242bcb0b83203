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
import "fmt"

/* -------------------------------------------------------------------------- */

// Bound of an operon. A bound is precise if it was placed at a turning
// point of the read depth, and imprecise if it is a fallback estimate.
type Bound struct {
  Position int
  Precise  bool
}

func (b Bound) String() string {
  if b.Precise {
    return fmt.Sprintf("%d", b.Position)
  }
  return fmt.Sprintf("~%d", b.Position)
}

/* -------------------------------------------------------------------------- */

// Bounds of an operon are set exactly twice, first by the segmentation
// pass and second by the boundary refinement.
type OperonStage int

const (
  StageOpen OperonStage = iota
  StageCoarse
  StageRefined
)

func (s OperonStage) String() string {
  switch s {
  case StageOpen:
    return "open"
  case StageCoarse:
    return "coarse"
  case StageRefined:
    return "refined"
  }
  return fmt.Sprintf("OperonStage(%d)", int(s))
}

/* -------------------------------------------------------------------------- */

// An operon is a run of consecutive genes that are transcribed together.
// Operons are values, all state transitions return a new operon.
type Operon struct {
  Name   string
  Genes  []Gene
  Strand byte
  Left   Bound
  Right  Bound
  Depth  []float64
  Stage  OperonStage
}

/* constructors
 * -------------------------------------------------------------------------- */

func NewOperon(name string, genes ...Gene) Operon {
  op := Operon{Name: name, Right: Bound{Position: -1}}
  op.Genes = make([]Gene, len(genes))
  copy(op.Genes, genes)
  return op
}

/* -------------------------------------------------------------------------- */

func (op Operon) withGene(g Gene) Operon {
  genes := make([]Gene, len(op.Genes), len(op.Genes)+1)
  copy(genes, op.Genes)
  op.Genes = append(genes, g)
  return op
}

// Set bounds to the start of the first and the end of the last gene.
func (op Operon) Coarse(depth []float64) (Operon, error) {
  if op.Stage != StageOpen {
    return Operon{}, InvalidOperonStateError{op.Name, fmt.Sprintf("coarse bounds requested in stage `%v'", op.Stage)}
  }
  strand, err := op.Orientation()
  if err != nil {
    return Operon{}, err
  }
  from := op.Genes[0].Start()
  to   := op.Genes[len(op.Genes)-1].End()
  if to < from {
    return Operon{}, InvalidOperonStateError{op.Name, fmt.Sprintf("last gene ends at %d before first gene starts at %d", to, from)}
  }
  op.Strand = strand
  op.Left   = Bound{from, false}
  op.Right  = Bound{to,   false}
  op.Depth  = depthWindow(depth, Range{from, to}).Depth
  op.Stage  = StageCoarse
  return op, nil
}

// Replace coarse bounds by refined ones. The depth slice is cut again
// from the chromosome-wide array.
func (op Operon) Refined(left, right Bound, depth []float64) (Operon, error) {
  if op.Stage != StageCoarse {
    return Operon{}, InvalidOperonStateError{op.Name, fmt.Sprintf("refined bounds requested in stage `%v'", op.Stage)}
  }
  if right.Position < left.Position {
    return Operon{}, InvalidOperonStateError{op.Name, fmt.Sprintf("right bound %d precedes left bound %d", right.Position, left.Position)}
  }
  op.Left  = left
  op.Right = right
  op.Depth = depthWindow(depth, Range{left.Position, right.Position}).Depth
  op.Stage = StageRefined
  return op, nil
}

/* -------------------------------------------------------------------------- */

// Orientation of the first gene, all genes of an operon are assumed to
// share the same strand.
func (op Operon) Orientation() (byte, error) {
  if len(op.Genes) == 0 {
    return 0, InvalidOperonStateError{op.Name, "operon has no genes"}
  }
  return op.Genes[0].Strand, nil
}

func (op Operon) First() (Gene, error) {
  if len(op.Genes) == 0 {
    return Gene{}, InvalidOperonStateError{op.Name, "operon has no genes"}
  }
  return op.Genes[0], nil
}

func (op Operon) Last() (Gene, error) {
  if len(op.Genes) == 0 {
    return Gene{}, InvalidOperonStateError{op.Name, "operon has no genes"}
  }
  return op.Genes[len(op.Genes)-1], nil
}

// Number of genes.
func (op Operon) Length() int {
  return len(op.Genes)
}

func (op Operon) Range() Range {
  return Range{op.Left.Position, op.Right.Position}
}

func (op Operon) AverageDepth() float64 {
  return averageDepth(op.Depth)
}

func (op Operon) LogCV() float64 {
  return logCV(op.Depth)
}

/* convert to string
 * -------------------------------------------------------------------------- */

func (op Operon) String() string {
  var buffer bytes.Buffer
  buffer.WriteString(op.Name)
  buffer.WriteString(": ")
  for i, g := range op.Genes {
    if i != 0 {
      buffer.WriteString(", ")
    }
    buffer.WriteString(g.Name)
  }
  strand := op.Strand
  if strand == 0 {
    strand = '*'
  }
  fmt.Fprintf(&buffer, " %c [%v %v)", strand, op.Left, op.Right)
  return buffer.String()
}
