// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"unsafe"

	"github.com/jnml/heapa/heap/arenaprov"
)

// testProvider backs every test Heap with a plain Go slice: no syscalls,
// deterministic across CI platforms.
func testProvider() Provider { return arenaprov.Slice{} }

func unsafeOf(p *int) unsafe.Pointer { return unsafe.Pointer(p) }
