// SPDX-License-Identifier: MIT

package community

import (
	"errors"
	"fmt"

	"github.com/florianjehn/tradeshifts/scenario"
)

// ErrAnchorConflict indicates two anchor countries share one community, so
// the requested ordering is ambiguous.
var ErrAnchorConflict = errors.New("community: two anchors map to the same community")

// Reorder returns a copy of the partition with the communities owning the
// anchor countries moved to the front, in anchor order, and the remaining
// communities appended in their original relative order. Membership is
// untouched; only the sequence changes, so community colouring stays
// consistent across scenarios. Anchors absent from the partition are
// skipped. Two anchors resolving to the same community make the request
// ambiguous and return ErrAnchorConflict.
// Complexity: O(|anchors|·|partition| + |partition|)
func Reorder(p scenario.Partition, anchors []string) (scenario.Partition, error) {
	taken := make(map[int]struct{}, len(anchors))
	front := make([]int, 0, len(anchors))
	for _, anchor := range anchors {
		idx := p.Find(anchor)
		if idx < 0 {
			continue
		}
		if _, dup := taken[idx]; dup {
			return nil, fmt.Errorf("%w: anchor %q", ErrAnchorConflict, anchor)
		}
		taken[idx] = struct{}{}
		front = append(front, idx)
	}

	out := make(scenario.Partition, 0, len(p))
	for _, idx := range front {
		out = append(out, p[idx])
	}
	for i, c := range p {
		if _, moved := taken[i]; !moved {
			out = append(out, c)
		}
	}

	return out, nil
}
