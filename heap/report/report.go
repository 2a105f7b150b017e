// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders the read-only data package heap exposes —
// statistics, the block-list layout, and live leaks — as human-readable
// text. It is the "human-readable reporting" collaborator spec.md §1
// places out of scope for the core: it only ever reads a heap.Stats
// snapshot or an iterator of heap.BlockInfo/heap.Leak values, never a
// *heap.Heap directly.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jnml/heapa/heap"
)

// Stats writes stats as the fixed-width banner report the teacher's
// driver programs favor (see lldb/lab/1/main.go's plain fmt.Printf
// reporting), one line per field.
func Stats(w io.Writer, stats heap.Stats) {
	fmt.Fprintln(w, "========================================")
	fmt.Fprintln(w, "HEAP STATISTICS")
	fmt.Fprintln(w, "========================================")
	fmt.Fprintf(w, "Total allocated:    %d bytes\n", stats.TotalAllocated)
	fmt.Fprintf(w, "Total freed:        %d bytes\n", stats.TotalFreed)
	fmt.Fprintf(w, "Current usage:      %d bytes\n", stats.CurrentUsage)
	fmt.Fprintf(w, "Peak usage:         %d bytes\n", stats.PeakUsage)
	fmt.Fprintf(w, "Number of allocs:   %d\n", stats.NumAllocations)
	fmt.Fprintf(w, "Number of frees:    %d\n", stats.NumFrees)
	fmt.Fprintf(w, "Total blocks:       %d\n", stats.NumBlocks)
	fmt.Fprintf(w, "Largest free block: %d bytes\n", stats.LargestFreeBlock)
	fmt.Fprintf(w, "Fragmentation:      %d%%\n", stats.FragmentationRatio)
	fmt.Fprintln(w, "========================================")
}

// Layout renders one line per block in a tab-aligned table, using
// text/tabwriter the way the teacher's db_bench driver formats its own
// tabular output.
func Layout(w io.Writer, blocks []heap.BlockInfo) {
	if len(blocks) == 0 {
		fmt.Fprintln(w, "heap not initialized")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tADDRESS\tSIZE\tSTATUS\tTAG")
	for i, b := range blocks {
		status := "ALLOCATED"
		if b.Free {
			status = "FREE"
		}
		fmt.Fprintf(tw, "%d\t%#x\t%d\t%s\t%#08x\n", i, b.Address, b.Size, status, b.Tag)
	}
	tw.Flush()
}

// Leaks renders LeakScan's result the way mem_detect_leaks does: a
// per-leak line, or a single "none" line when the scan is empty.
func Leaks(w io.Writer, leaks []heap.Leak) {
	fmt.Fprintln(w, "========================================")
	fmt.Fprintln(w, "MEMORY LEAK DETECTION")
	fmt.Fprintln(w, "========================================")
	if len(leaks) == 0 {
		fmt.Fprintln(w, "No memory leaks detected.")
		fmt.Fprintln(w, "========================================")
		return
	}

	fmt.Fprintln(w, "Memory leaks detected:")
	fmt.Fprintln(w, "----------------------------------------")
	for _, l := range leaks {
		fmt.Fprintf(w, "LEAK: %d bytes at %p\n", l.Size, l.Ptr)
	}
	fmt.Fprintln(w, "========================================")
}
