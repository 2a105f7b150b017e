// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "unsafe"

// Leak describes one still-live block found by LeakScan.
type Leak struct {
	Ptr  unsafe.Pointer
	Size int
}

// LeakScan walks the block list and returns one Leak per block that is
// used and carries usedTag. There is no separate leak registry — unlike
// the mem_leak_t type the source this package generalizes declares but
// never populates, LeakScan derives its answer purely from the block list
// itself, which is the only structure that can't drift out of sync with
// it.
func (h *Heap) LeakScan() []Leak {
	if !h.active {
		return nil
	}

	var leaks []Leak
	for b := h.head; b != nil; b = b.next {
		if !b.free && b.tag == usedTag {
			leaks = append(leaks, Leak{Ptr: toUserPointer(b), Size: int(b.size)})
		}
	}
	return leaks
}

// BlockInfo describes one block in list order, for LayoutDump.
type BlockInfo struct {
	Address   uintptr
	Size      int
	Free      bool
	Tag       uint32
	PayloadLo uintptr
	PayloadHi uintptr
}

// LayoutDump walks the block list and returns every block's address,
// size, status, tag, and payload range, in list order. It is a pure read
// operation.
func (h *Heap) LayoutDump() []BlockInfo {
	if !h.active {
		return nil
	}

	var out []BlockInfo
	for b := h.head; b != nil; b = b.next {
		lo := uintptr(toUserPointer(b))
		out = append(out, BlockInfo{
			Address:   uintptrOf(b),
			Size:      int(b.size),
			Free:      b.free,
			Tag:       uint32(b.tag),
			PayloadLo: lo,
			PayloadHi: lo + uintptr(b.size),
		})
	}
	return out
}
