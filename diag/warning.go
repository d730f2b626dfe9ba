// SPDX-License-Identifier: MIT

package diag

import "fmt"

// Warning records a single non-fatal data-quality finding.
type Warning struct {
	// Country is the identifier the finding concerns ("" when global).
	Country string

	// Message describes the finding in one line.
	Message string
}

// String renders the warning for logs and error trails.
func (w Warning) String() string {
	if w.Country == "" {
		return w.Message
	}

	return fmt.Sprintf("%s: %s", w.Country, w.Message)
}

// Warnings is an accumulating list of findings.
type Warnings []Warning

// Addf appends a formatted warning for the given country.
func (ws *Warnings) Addf(country, format string, args ...any) {
	*ws = append(*ws, Warning{Country: country, Message: fmt.Sprintf(format, args...)})
}
