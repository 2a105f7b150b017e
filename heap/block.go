// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "unsafe"

// magic tags distinguish a real header from arbitrary bytes and catch the
// common case of a double release: a used block's tag flips to freeTag the
// moment it is released, so a second release sees freeTag, not usedTag.
type magic uint32

const (
	freeTag magic = 0xFEEDFACE
	usedTag magic = 0xDEADBEEF
)

// alignment is the only alignment the allocator guarantees.
const alignment = 8

// minBlock is the smallest payload a block may carry; split never produces
// a smaller one.
const minBlock = 16

// defaultHeapSize is used when a Heap is initialized lazily by the first
// Allocate rather than explicitly via Init.
const defaultHeapSize = 1 << 20 // 1 MiB

// header is the in-band metadata placed immediately before every payload.
// Its fields mirror mem_block_t from the source this package generalizes:
// size, a free flag, a magic tag, and the two sibling links of the
// address-ordered block list.
type header struct {
	size uint64
	next *header
	prev *header
	tag  magic
	free bool
}

// headerSize is H from the spec: the fixed, 8-aligned size of a header.
var headerSize = uintptr(unsafe.Sizeof(header{}))

// align rounds a requested payload size up to the allocator's granularity,
// per mem_align_size: never below minBlock, always a multiple of alignment.
func align(size int) int {
	if size < minBlock {
		size = minBlock
	}
	return (size + alignment - 1) &^ (alignment - 1)
}

// toUserPointer returns the address of the payload that follows h.
func toUserPointer(h *header) unsafe.Pointer {
	return unsafe.Add(unsafe.Pointer(h), headerSize)
}

// toHeader returns the header immediately preceding the payload at p. It
// performs no validation; callers must check validShape first.
func toHeader(p unsafe.Pointer) *header {
	return (*header)(unsafe.Add(p, -int(headerSize)))
}

// uintptrOf returns h's address for bounds comparisons and diagnostics.
func uintptrOf(h *header) uintptr {
	return uintptr(unsafe.Pointer(h))
}

// bounds records the arena's [base, limit) address range, cached as
// uintptrs so validShape can compare without re-deriving them from the
// backing slice on every call.
type bounds struct {
	base, limit uintptr
}

func boundsOf(arena []byte) bounds {
	base := uintptr(unsafe.Pointer(&arena[0]))
	return bounds{base: base, limit: base + uintptr(len(arena))}
}

// validShape reports whether p could plausibly be a user pointer returned
// by this allocator: non-nil, inside the arena, with its derived header
// also inside the arena and carrying one of the two legal tags. It never
// dereferences anything outside [base, limit).
func (b bounds) validShape(p unsafe.Pointer) (*header, bool) {
	if p == nil {
		return nil, false
	}

	addr := uintptr(p)
	if addr < b.base+headerSize || addr >= b.limit {
		return nil, false
	}

	hAddr := addr - headerSize
	if hAddr < b.base || hAddr >= b.limit-headerSize {
		return nil, false
	}

	h := toHeader(p)
	if h.tag != freeTag && h.tag != usedTag {
		return nil, false
	}

	return h, true
}
