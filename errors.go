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

/* -------------------------------------------------------------------------- */

// Returned by extremum queries on an interval without any positions.
type EmptyIntervalError struct {
  Name  string
  Range Range
}

func (e EmptyIntervalError) Error() string {
  if e.Name == "" {
    return fmt.Sprintf("interval %v is empty", e.Range)
  }
  return fmt.Sprintf("interval `%s' %v is empty", e.Name, e.Range)
}

/* -------------------------------------------------------------------------- */

// Returned when an operon is used in a state that does not permit the
// requested operation, e.g. an operon without genes or a bound transition
// applied twice.
type InvalidOperonStateError struct {
  Name   string
  Reason string
}

func (e InvalidOperonStateError) Error() string {
  return fmt.Sprintf("operon `%s': %s", e.Name, e.Reason)
}
