// SPDX-License-Identifier: MIT

// Package diag carries the data-quality warning values accumulated by the
// analysis engines. A missing reference country, an uncommunitied node or
// an unmapped risk score is never an error: the affected entry becomes a
// NaN marker, a Warning is appended to the result, and computation
// continues. Tests assert on the warning trail directly instead of
// scraping log output; the orchestrator mirrors every warning to its
// logger.
package diag
