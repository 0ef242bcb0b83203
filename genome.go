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
import "strings"
import "unicode"

/* -------------------------------------------------------------------------- */

// Reference sequences indexed by sequence name. The genome is loaded once
// and then only read, so that it can be shared freely.
type ReferenceGenome map[string][]byte

/* -------------------------------------------------------------------------- */

func NewReferenceGenome() ReferenceGenome {
  return make(ReferenceGenome)
}

/* -------------------------------------------------------------------------- */

func (genome ReferenceGenome) SeqLength(seqname string) (int, error) {
  seq, ok := genome[seqname]
  if !ok {
    return 0, fmt.Errorf("SeqLength(): sequence `%s' not found", seqname)
  }
  return len(seq), nil
}

// Bases in [r.From, r.To) of the given sequence.
func (genome ReferenceGenome) Sequence(seqname string, r Range) ([]byte, error) {
  seq, ok := genome[seqname]
  if !ok {
    return nil, fmt.Errorf("Sequence(): sequence `%s' not found", seqname)
  }
  if r.From < 0 || r.To > len(seq) || r.From > r.To {
    return nil, fmt.Errorf("Sequence(): range %v out of bounds for sequence `%s'", r, seqname)
  }
  return seq[r.From:r.To], nil
}

func (genome ReferenceGenome) OperonSequence(seqname string, op Operon) ([]byte, error) {
  return genome.Sequence(seqname, op.Range())
}

/* i/o
 * -------------------------------------------------------------------------- */

func (genome ReferenceGenome) ReadFasta(r io.Reader) error {
  scanner := bufio.NewScanner(r)
  scanner.Buffer(make([]byte, 64*1024), 1024*1024*1024)

  // current sequence
  name := ""
  seq  := []byte{}

  for scanner.Scan() {
    line := strings.TrimRight(scanner.Text(), "\r")
    if len(line) == 0 {
      continue
    }
    if line[0] == '>' {
      // save data
      if name != "" {
        genome[name] = seq
      }
      // header
      fields := strings.FieldsFunc(line, func(c rune) bool {
        return unicode.IsSpace(c) || c == '>' || c == '|'
      })
      if len(fields) == 0 {
        return fmt.Errorf("ReadFasta(): invalid fasta file")
      }
      name = fields[0]
      seq  = []byte{}
    } else {
      // data
      if name == "" {
        return fmt.Errorf("ReadFasta(): invalid fasta file")
      }
      // append sequence
      seq = append(seq, line...)
    }
  }
  if name != "" {
    genome[name] = seq
  }
  return scanner.Err()
}

func (genome ReferenceGenome) ImportFasta(filename string) error {
  f, err := openFile(filename)
  if err != nil {
    return err
  }
  defer f.Close()
  return genome.ReadFasta(f)
}
