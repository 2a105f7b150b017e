// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// coalesce merges b with its free neighbours. It is called right after
// b.free has been set true, so b is no longer adjacent to a free block
// once coalesce returns (invariant #5), unless an un-merged pair left by
// Resize's in-place shrink path sits directly before it: the backward
// merge absorbs only the immediate predecessor. It merges forward first,
// then backward, matching merge_with_next / merge_with_prev in the source
// this package generalizes.
//
// The forward merge is a loop, not a single step: invariant #5 only holds
// between releases, and Resize's in-place shrink path can leave a free
// remainder sitting next to an already-free block without coalescing it
// (see the note on Audit). A later release of that
// remainder's other neighbour walks forward through both of them, so more
// than one iteration is a real case here, not just defensive robustness.
func coalesce(b *header, numBlocks *int) *header {
	for b.next != nil && b.next.free {
		b.size += uint64(headerSize) + b.next.size
		b.next = b.next.next
		if b.next != nil {
			b.next.prev = b
		}
		*numBlocks--
	}

	if b.prev != nil && b.prev.free {
		p := b.prev
		p.size += uint64(headerSize) + b.size
		p.next = b.next
		if b.next != nil {
			b.next.prev = p
		}
		*numBlocks--
		b = p
	}

	return b
}
