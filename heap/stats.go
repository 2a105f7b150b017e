// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "github.com/cznic/mathutil"

// Stats is a snapshot of the allocator's running counters plus the two
// figures derived on demand by a block-list walk: FragmentationRatio and
// LargestFreeBlock (the latter is an addition over the source this
// package generalizes; see SPEC_FULL.md §6).
type Stats struct {
	TotalAllocated     uint64
	TotalFreed         uint64
	CurrentUsage       uint64
	PeakUsage          uint64
	NumAllocations     uint64
	NumFrees           uint64
	NumBlocks          int
	FragmentationRatio uint64 // percent, integer division
	LargestFreeBlock   uint64
}

// Stats copies the running counters into out and performs one list walk
// to fill FragmentationRatio and LargestFreeBlock. It is a no-op if out is
// nil. FragmentationRatio is free payload bytes as a percentage of free
// payload + used payload + header overhead, or 0 if the heap is inactive
// or the arena is degenerate (total == 0).
func (h *Heap) Stats(out *Stats) {
	if out == nil {
		return
	}

	*out = h.stats
	if !h.active {
		return
	}

	var free, total, largest uint64
	for b := h.head; b != nil; b = b.next {
		total += b.size + uint64(headerSize)
		if b.free {
			free += b.size
			largest = uint64(mathutil.MaxInt64(int64(largest), int64(b.size)))
		}
	}

	if total > 0 {
		out.FragmentationRatio = (free * 100) / total
	}
	out.LargestFreeBlock = largest
}
