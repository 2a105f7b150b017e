// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix

package heap

import "github.com/jnml/heapa/heap/arenaprov"

// defaultProvider falls back to arenaprov.Slice on platforms without an
// Mmap implementation.
func defaultProvider() Provider { return arenaprov.Slice{} }
