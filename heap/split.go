// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "unsafe"

// splitBlock unconditionally divides b into two siblings: b becomes the
// size-byte block, and a new free block carrying the remainder is linked in
// right after it. numBlocks is the caller's running block count, which
// splitBlock increments by one on every call.
//
// splitBlock performs no precondition check of its own — the minimum
// viable remainder differs between callers, mirroring the source this
// package generalizes: mem_malloc.c only splits when the remainder would be
// strictly bigger than one minimum block (see canSplitForAllocate), while
// mem_realloc.c's handle_size_decrease splits down to exactly one minimum
// block. Each caller applies its own threshold before invoking this.
//
// splitBlock does not touch b.free or b.tag; whoever is about to hand b out
// (or keep it free, for the in-place shrink path of Resize) sets those.
func splitBlock(b *header, size int, numBlocks *int) {
	want := uint64(size)
	n := (*header)(unsafe.Add(toUserPointer(b), size))
	n.size = b.size - want - uint64(headerSize)
	n.free = true
	n.tag = freeTag
	n.prev = b
	n.next = b.next
	if b.next != nil {
		b.next.prev = n
	}
	b.next = n
	b.size = want
	*numBlocks++
}

// canSplitForAllocate reports whether a free block of bsize bytes is large
// enough to split off want bytes during allocation: strictly more than
// want+H+minBlock, per spec.md §4.3's precondition, so a malloc-path split
// never produces a remainder of exactly one minimum block — only more.
func canSplitForAllocate(bsize uint64, want int) bool {
	return bsize > uint64(want)+uint64(headerSize)+minBlock
}
