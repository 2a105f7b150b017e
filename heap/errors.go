// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "fmt"

// ErrINVAL reports an invalid argument to a Heap method: a lifecycle
// violation (Init called twice), or a size that cannot be acted on.
type ErrINVAL struct {
	Msg string
	Arg interface{}
}

func (e *ErrINVAL) Error() string { return fmt.Sprintf("heap: %s: %v", e.Msg, e.Arg) }

// ErrCorrupt describes one specific violation found by AuditLog, which
// passes it to its log callback. Neither Audit nor AuditLog returns it;
// both only ever return bool.
type ErrCorrupt struct {
	Msg string
}

func (e *ErrCorrupt) Error() string { return fmt.Sprintf("heap: corrupt: %s", e.Msg) }
