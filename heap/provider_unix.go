// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package heap

import "github.com/jnml/heapa/heap/arenaprov"

// defaultProvider is arenaprov.Mmap on platforms where it's available:
// a real anonymous mapping, matching the source's own use of mmap/munmap
// in mem_init.c / mem_cleanup.
func defaultProvider() Provider { return arenaprov.Mmap{} }
