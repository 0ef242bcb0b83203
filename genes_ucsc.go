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

import "database/sql"
import "fmt"

import _ "github.com/go-sql-driver/mysql"

/* -------------------------------------------------------------------------- */

// Public UCSC MySQL server.
var UCSCServer = "genome-mysql.soe.ucsc.edu:3306"

/* -------------------------------------------------------------------------- */

// Read genes on a single chromosome from a UCSC gene prediction table
// (e.g. refGene) ordered by transcription start.
func ReadGenesFromDB(db *sql.DB, table, seqname string, depth []float64) (GeneBank, error) {
  bank := GeneBank{}
  /* variables for storing a single database row */
  var i_name, i_strand string
  var i_txFrom, i_txTo int

  rows, err := db.Query(
    fmt.Sprintf("SELECT name, strand, txStart, txEnd FROM %s WHERE chrom = ? ORDER BY txStart", table), seqname)
  if err != nil {
    return bank, err
  }
  defer rows.Close()
  for rows.Next() {
    if err := rows.Scan(&i_name, &i_strand, &i_txFrom, &i_txTo); err != nil {
      return bank, err
    }
    if len(i_strand) == 0 {
      return bank, fmt.Errorf("ReadGenesFromDB(): gene `%s' has no strand", i_name)
    }
    if i_txFrom > i_txTo {
      return bank, fmt.Errorf("ReadGenesFromDB(): gene `%s' has invalid coordinates", i_name)
    }
    g, err := NewGene(i_name, NewRange(i_txFrom, i_txTo), i_strand[0], depth)
    if err != nil {
      return bank, err
    }
    bank.Add(g)
  }
  return bank, rows.Err()
}

func ImportGenesFromUCSC(genome, table, seqname string, depth []float64) (GeneBank, error) {
  /* open connection */
  db, err := sql.Open("mysql",
    fmt.Sprintf("genome@tcp(%s)/%s", UCSCServer, genome))
  if err != nil {
    return GeneBank{}, err
  }
  defer db.Close()

  if err := db.Ping(); err != nil {
    return GeneBank{}, err
  }
  return ReadGenesFromDB(db, table, seqname, depth)
}
