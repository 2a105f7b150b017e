// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// findFreeBlock walks the block list from head and returns the first block
// that is free and big enough, per spec's first-fit rule. It deliberately
// does not consult any segregated size-class structure: the design trades
// search time for the simplicity of a single address-ordered list.
func findFreeBlock(head *header, size int) *header {
	want := uint64(size)
	for b := head; b != nil; b = b.next {
		if b.free && b.size >= want {
			return b
		}
	}
	return nil
}
