// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "unsafe"

// defaultHeap backs the package-level convenience functions below. It is
// created at package initialization with the platform's default Provider
// (see defaultProvider in provider_unix.go / provider_other.go) and reserves
// its arena lazily on the first Allocate, mirroring
// mem_init's own lazy-on-first-malloc behavior rather than requiring every
// caller to carry a *Heap around.
var defaultHeap = New(defaultProvider())

// Allocate calls Allocate on the package's default Heap.
func Allocate(n int) unsafe.Pointer { return defaultHeap.Allocate(n) }

// Release calls Release on the package's default Heap.
func Release(p unsafe.Pointer) { defaultHeap.Release(p) }

// Resize calls Resize on the package's default Heap.
func Resize(p unsafe.Pointer, n int) unsafe.Pointer { return defaultHeap.Resize(p, n) }

// Zalloc calls Zalloc on the package's default Heap.
func Zalloc(n, m uint64) unsafe.Pointer { return defaultHeap.Zalloc(n, m) }

// SizeOf calls SizeOf on the package's default Heap.
func SizeOf(p unsafe.Pointer) int { return defaultHeap.SizeOf(p) }

// DefaultHeap returns the package-level Heap instance backing the
// functions above, for callers that want Init/Cleanup/Stats/Audit/etc.
// without constructing their own.
func DefaultHeap() *Heap { return defaultHeap }
