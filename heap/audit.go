// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "fmt"

// corrupt is a convenience constructor for ErrCorrupt, used throughout
// AuditLog so every violation it reports shares the same error type.
func corrupt(format string, args ...interface{}) *ErrCorrupt {
	return &ErrCorrupt{Msg: fmt.Sprintf(format, args...)}
}

// Audit performs a read-only pass over the block list and reports whether
// every block satisfies: a legal tag, an address inside the arena, a
// consistent next/prev link, and a list length matching NumBlocks.
//
// Audit does not check invariant #1 (strict address-contiguity) or
// invariant #5 (no two adjacent free blocks) — an implementation is free
// to strengthen it, but the spec this package follows deliberately leaves
// those out of the boolean contract so that the in-place shrink path of
// Resize (which may leave a free block transiently adjacent to another
// free block) never fails an audit run between releases.
func (h *Heap) Audit() bool {
	return h.AuditLog(nil)
}

// AuditLog is Audit with diagnostics: log, if non-nil, is called once per
// violation found, mirroring Allocator.Verify's log callback in the
// teacher package this one generalizes. Its boolean return value, not the
// log calls, is authoritative.
func (h *Heap) AuditLog(log func(error) bool) bool {
	if log == nil {
		log = func(error) bool { return true }
	}

	if h.head == nil {
		return true
	}

	ok := true
	n := 0
	for b := h.head; b != nil; b = b.next {
		addr := uintptrOf(b)
		if addr < h.bnd.base || addr >= h.bnd.limit {
			log(corrupt("block %#x outside arena [%#x, %#x)", addr, h.bnd.base, h.bnd.limit))
			ok = false
		}
		if b.tag != freeTag && b.tag != usedTag {
			log(corrupt("block %#x has invalid tag %#x", addr, uint32(b.tag)))
			ok = false
		}
		if b.next != nil && b.next.prev != b {
			log(corrupt("broken next/prev link at block %#x", addr))
			ok = false
		}
		n++
	}

	if n != h.stats.NumBlocks {
		log(corrupt("block count mismatch: found %d, want %d", n, h.stats.NumBlocks))
		ok = false
	}

	return ok
}
