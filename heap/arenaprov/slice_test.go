// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arenaprov

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestSliceReserveRelease(t *testing.T) {
	var p Slice
	b, err := p.Reserve(4096)
	require.NoError(t, err)
	require.Len(t, b, 4096)
	require.Zero(t, uintptr(unsafe.Pointer(&b[0]))%8)
	require.NoError(t, p.Release(b))
}

func TestSliceReserveRejectsNonPositiveSize(t *testing.T) {
	var p Slice
	_, err := p.Reserve(0)
	require.Error(t, err)
	_, err = p.Reserve(-1)
	require.Error(t, err)
}
