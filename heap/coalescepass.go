// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// CoalescePass walks the block list in address order and coalesces every
// run of adjacent free blocks. Because Release already coalesces
// maximally, this is normally a no-op; it exists for API symmetry and for
// callers that want to validate invariant #5 out of band, or to clean up
// after the in-place shrink path of Resize, which does not eagerly merge
// its trailing remainder.
//
// It merges forward only, walking left to right: by the time the cursor
// reaches a free block, every free block to its left has already
// absorbed it would-be predecessors, so a backward merge at any position
// would just be redoing a forward merge this pass already performed. This
// sidesteps the source's own documented footgun — merging while
// link-following can mutate the very node being iterated — without
// needing a restart-after-each-merge loop.
func (h *Heap) CoalescePass() {
	if !h.active {
		return
	}

	nb := h.stats.NumBlocks
	for b := h.head; b != nil; b = b.next {
		for b.free && b.next != nil && b.next.free {
			b.size += uint64(headerSize) + b.next.size
			b.next = b.next.next
			if b.next != nil {
				b.next.prev = b
			}
			nb--
		}
	}
	h.stats.NumBlocks = nb
}
