// SPDX-License-Identifier: MIT

// Package scenario: the importer×exporter flow table.
package scenario

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FlowTable is a dense importer-indexed, exporter-columned non-negative
// flow table. Row i holds everything importer i receives; the cell
// (importer, exporter) mirrors the graph edge exporter→importer.
type FlowTable struct {
	importers []string
	exporters []string
	rowIdx    map[string]int
	colIdx    map[string]int
	data      *mat.Dense
}

// NewFlowTable allocates a zero-filled table over the given axes.
func NewFlowTable(importers, exporters []string) *FlowTable {
	t := &FlowTable{
		importers: append([]string(nil), importers...),
		exporters: append([]string(nil), exporters...),
		rowIdx:    make(map[string]int, len(importers)),
		colIdx:    make(map[string]int, len(exporters)),
	}
	for i, id := range t.importers {
		t.rowIdx[id] = i
	}
	for j, id := range t.exporters {
		t.colIdx[id] = j
	}
	if len(importers) > 0 && len(exporters) > 0 {
		t.data = mat.NewDense(len(importers), len(exporters), nil)
	}

	return t
}

// Set writes the flow volume exporter→importer.
// Returns ErrShape when either country is off the table.
func (t *FlowTable) Set(importer, exporter string, volume float64) error {
	i, ok := t.rowIdx[importer]
	if !ok {
		return fmt.Errorf("%w: importer %q", ErrShape, importer)
	}
	j, ok := t.colIdx[exporter]
	if !ok {
		return fmt.Errorf("%w: exporter %q", ErrShape, exporter)
	}
	t.data.Set(i, j, volume)

	return nil
}

// At returns the flow volume exporter→importer and whether both countries
// are on the table.
func (t *FlowTable) At(importer, exporter string) (float64, bool) {
	i, ok := t.rowIdx[importer]
	if !ok {
		return 0, false
	}
	j, ok := t.colIdx[exporter]
	if !ok {
		return 0, false
	}

	return t.data.At(i, j), true
}

// Importers returns the row axis in table order.
func (t *FlowTable) Importers() []string {
	return append([]string(nil), t.importers...)
}

// Exporters returns the column axis in table order.
func (t *FlowTable) Exporters() []string {
	return append([]string(nil), t.exporters...)
}

// RowSums returns each importer's total inbound volume.
// Complexity: O(r·c)
func (t *FlowTable) RowSums() map[string]float64 {
	sums := make(map[string]float64, len(t.importers))
	for i, id := range t.importers {
		total := 0.0
		for j := range t.exporters {
			total += t.data.At(i, j)
		}
		sums[id] = total
	}

	return sums
}
