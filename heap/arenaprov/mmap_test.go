// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package arenaprov

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestMmapReserveRelease(t *testing.T) {
	var p Mmap
	b, err := p.Reserve(1 << 16)
	require.NoError(t, err)
	require.Len(t, b, 1<<16)
	require.Zero(t, uintptr(unsafe.Pointer(&b[0]))%8)
	require.NoError(t, p.Release(b))
}

func TestMmapReserveRejectsNonPositiveSize(t *testing.T) {
	var p Mmap
	_, err := p.Reserve(0)
	require.Error(t, err)
}
