// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heap implements a single-arena, first-fit heap allocator over
// one contiguous region obtained from an arenaprov.Provider. It exposes
// the classical four allocator operations (Allocate, Release, Resize,
// Zalloc) plus introspection (Stats, Audit, LeakScan, LayoutDump,
// CoalescePass).
//
// A Heap is not safe for concurrent use: like the source this package
// generalizes, it assumes a single actor and performs no locking.
package heap

import (
	"unsafe"

	"github.com/cznic/mathutil"
)

// Heap is one allocator instance: one arena, one block list, one
// statistics record. The zero value is not ready for use; construct one
// with New.
type Heap struct {
	provider Provider
	arena    []byte
	bnd      bounds
	head     *header
	active   bool
	stats    Stats
}

// Provider is the arena backing this package consumes. It is the same
// shape as arenaprov.Provider, restated here so heap does not import its
// own arenaprov subpackage and callers can supply any implementation.
type Provider interface {
	Reserve(size int) ([]byte, error)
	Release(b []byte) error
}

// New returns a Heap that will use p to reserve and release its arena. The
// Heap starts inactive; it becomes active on the first explicit Init or on
// the first Allocate if Init was never called.
func New(p Provider) *Heap {
	return &Heap{provider: p}
}

// Init reserves a size-byte arena and readies the Heap for use. It fails
// if the Heap is already active or if the Provider refuses the request.
func (h *Heap) Init(size int) error {
	if h.active {
		return &ErrINVAL{Msg: "Init: heap already active", Arg: size}
	}
	if size < int(headerSize)+minBlock {
		return &ErrINVAL{Msg: "Init: heap_size too small", Arg: size}
	}

	arena, err := h.provider.Reserve(size)
	if err != nil {
		return err
	}

	h.arena = arena
	h.bnd = boundsOf(arena)
	h.head = (*header)(unsafe.Pointer(&arena[0]))
	h.head.size = uint64(size) - uint64(headerSize)
	h.head.free = true
	h.head.tag = freeTag
	h.head.next = nil
	h.head.prev = nil
	h.stats = Stats{NumBlocks: 1}
	h.active = true
	return nil
}

// Cleanup releases the arena and resets all counters. It is a no-op if the
// Heap is not active. Any user pointer obtained before Cleanup is
// dangling afterwards.
func (h *Heap) Cleanup() error {
	if !h.active {
		return nil
	}

	err := h.provider.Release(h.arena)
	h.arena = nil
	h.bnd = bounds{}
	h.head = nil
	h.stats = Stats{}
	h.active = false
	return err
}

// Active reports whether the Heap currently owns a reserved arena.
func (h *Heap) Active() bool { return h.active }

func (h *Heap) lazyInit() bool {
	if h.active {
		return true
	}
	return h.Init(defaultHeapSize) == nil
}

// Allocate returns a pointer to a payload of at least n bytes, or nil if
// n is zero, lazy initialization failed, or no free block fits.
func (h *Heap) Allocate(n int) unsafe.Pointer {
	if n == 0 {
		return nil
	}
	if !h.lazyInit() {
		return nil
	}

	size := align(n)
	b := findFreeBlock(h.head, size)
	if b == nil {
		return nil
	}

	nb := h.stats.NumBlocks
	if canSplitForAllocate(b.size, size) {
		splitBlock(b, size, &nb)
	}
	h.stats.NumBlocks = nb

	b.free = false
	b.tag = usedTag

	h.stats.TotalAllocated += b.size
	h.stats.CurrentUsage += b.size
	h.stats.NumAllocations++
	h.stats.PeakUsage = uint64(mathutil.MaxInt64(int64(h.stats.PeakUsage), int64(h.stats.CurrentUsage)))

	return toUserPointer(b)
}

// Release returns p to the free list. A nil pointer, a pointer not shaped
// like one of ours, or a pointer to an already-free block is a silent
// no-op — this is how a double release is caught, since the tag flips to
// freeTag on the first release.
func (h *Heap) Release(p unsafe.Pointer) {
	if p == nil || !h.active {
		return
	}

	b, ok := h.bnd.validShape(p)
	if !ok {
		return
	}
	if b.tag != usedTag {
		return
	}

	b.free = true
	b.tag = freeTag

	h.stats.TotalFreed += b.size
	h.stats.CurrentUsage -= b.size
	h.stats.NumFrees++

	nb := h.stats.NumBlocks
	coalesce(b, &nb)
	h.stats.NumBlocks = nb
}

// Resize changes the size of the block at p, preserving the leading
// min(old, new) bytes of payload, and returns the (possibly new) pointer.
//
//   - Resize(nil, n) behaves like Allocate(n).
//   - Resize(p, 0) behaves like Release(p) and returns nil.
//   - An invalid-shape p returns nil without side effects.
//   - Shrinking in place never moves the payload; when the remainder is
//     large enough to carry its own header, it is split off as a new free
//     block (not eagerly coalesced with its successor — see the note
//     on Audit) and the reclaimed bytes are credited to
//     TotalFreed/CurrentUsage, same as a partial release. Too small a
//     remainder to split leaves the block, and the stats, untouched.
//   - Growing always allocates fresh, copies, and releases the old block.
func (h *Heap) Resize(p unsafe.Pointer, n int) unsafe.Pointer {
	if p == nil {
		return h.Allocate(n)
	}
	if n == 0 {
		h.Release(p)
		return nil
	}

	b, ok := h.bnd.validShape(p)
	if !ok {
		return nil
	}

	old := b.size
	size := uint64(align(n))

	if size <= old {
		if old-size >= uint64(headerSize)+minBlock {
			nb := h.stats.NumBlocks
			splitBlock(b, int(size), &nb)
			h.stats.NumBlocks = nb

			reclaimed := old - size
			h.stats.TotalFreed += reclaimed
			h.stats.CurrentUsage -= reclaimed
		}
		return p
	}

	newP := h.Allocate(int(size))
	if newP == nil {
		return nil
	}

	copy(unsafe.Slice((*byte)(newP), old), unsafe.Slice((*byte)(p), old))
	h.Release(p)
	return newP
}

// Zalloc allocates n*m bytes, zero-filled, checking for multiplication
// overflow the way mem_calloc does. It returns nil on overflow or if the
// underlying Allocate fails.
func (h *Heap) Zalloc(n, m uint64) unsafe.Pointer {
	total := n * m
	if n != 0 && total/n != m {
		return nil
	}
	if total > uint64(^uint(0)>>1) {
		return nil
	}

	p := h.Allocate(int(total))
	if p == nil {
		return nil
	}

	b := slice(p, int(total))
	for i := range b {
		b[i] = 0
	}
	return p
}

// SizeOf returns the aligned payload size of the live block at p, or 0 if
// p is not valid-shape or its block is not in use.
func (h *Heap) SizeOf(p unsafe.Pointer) int {
	if p == nil || !h.active {
		return 0
	}
	b, ok := h.bnd.validShape(p)
	if !ok || b.tag != usedTag {
		return 0
	}
	return int(b.size)
}

// slice views the total bytes at p as a []byte, for zero-filling and
// content copying. Callers must already know p is valid and total bytes
// are within the block it heads.
func slice(p unsafe.Pointer, total int) []byte {
	if total == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), total)
}
