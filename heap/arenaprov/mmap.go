// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package arenaprov

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

var _ Provider = Mmap{}

// Mmap reserves arenas via an anonymous, private mmap mapping and releases
// them with munmap. This is the production Provider: the region it returns
// is backed by real virtual memory, not by the Go heap, so the core
// allocator's in-band headers live outside the garbage collector's view.
type Mmap struct{}

// Reserve implements Provider.
func (Mmap) Reserve(size int) ([]byte, error) {
	if size <= 0 {
		return nil, &ErrReserve{Size: size}
	}

	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, &ErrReserve{Size: size, More: err}
	}

	// mmap(2) with MAP_ANON returns page-aligned memory, which is always
	// a multiple of 8, satisfying the arena's base-alignment requirement.
	if uintptr(unsafe.Pointer(&b[0]))%8 != 0 {
		unix.Munmap(b)
		return nil, &ErrReserve{Size: size, More: errUnaligned}
	}

	return b, nil
}

// Release implements Provider.
func (Mmap) Release(b []byte) error {
	if len(b) == 0 {
		return nil
	}

	if err := unix.Munmap(b); err != nil {
		return &ErrRelease{Size: len(b), More: err}
	}

	return nil
}

var errUnaligned = errAligned("mmap returned a base address not aligned to 8 bytes")

type errAligned string

func (e errAligned) Error() string { return string(e) }
