// SPDX-License-Identifier: MIT

package stability

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrBadRiskTable indicates the risk-index table could not be parsed.
var ErrBadRiskTable = errors.New("stability: malformed risk index table")

// RiskIndex maps a country identifier to its external stability/governance
// score. Higher means more reliable.
type RiskIndex map[string]float64

// LoadRiskIndex reads a two-column (country, score) CSV table. A first row
// whose second field is not numeric is treated as a header and skipped.
func LoadRiskIndex(r io.Reader) (RiskIndex, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	index := make(RiskIndex)
	first := true
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRiskTable, err)
		}
		score, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			if first {
				first = false
				continue // header row
			}

			return nil, fmt.Errorf("%w: score %q for %q", ErrBadRiskTable, record[1], record[0])
		}
		first = false
		index[record[0]] = score
	}
	if len(index) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadRiskTable)
	}

	return index, nil
}
