// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeakScanFindsOnlyUsedBlocks(t *testing.T) {
	h := newTestHeap(t, 4096)

	keep := h.Allocate(32)
	freed := h.Allocate(32)
	h.Release(freed)

	leaks := h.LeakScan()
	require.Len(t, leaks, 1)
	require.Equal(t, keep, leaks[0].Ptr)
	require.Equal(t, align(32), leaks[0].Size)
}

func TestLayoutDumpCoversEveryBlockInOrder(t *testing.T) {
	h := newTestHeap(t, 4096)

	h.Allocate(32)
	h.Allocate(64)

	blocks := h.LayoutDump()
	require.Len(t, blocks, 3) // two used + one free remainder
	for i := 1; i < len(blocks); i++ {
		require.Greater(t, blocks[i].Address, blocks[i-1].Address)
	}
	require.False(t, blocks[0].Free)
	require.False(t, blocks[1].Free)
	require.True(t, blocks[2].Free)
}

// Shrinking in place (see Resize's doc comment) can leave a free
// remainder adjacent to an already-free trailing block, which Audit
// tolerates but CoalescePass should clean up.
func TestCoalescePassMergesShrinkRemainderWithFreeNeighbour(t *testing.T) {
	h := newTestHeap(t, 4096)

	p := h.Allocate(200)
	require.NotNil(t, p)

	before := len(h.LayoutDump())
	q := h.Resize(p, 16)
	require.Equal(t, p, q)
	afterShrink := h.LayoutDump()
	require.Len(t, afterShrink, before+1) // shrink remainder + original tail
	require.True(t, afterShrink[1].Free)
	require.True(t, afterShrink[2].Free)

	h.CoalescePass()
	merged := h.LayoutDump()
	require.Len(t, merged, before)
	require.True(t, h.Audit())
}
