// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command heapdemo drives package heap through a handful of scenarios and
// prints its statistics, layout and leak report after each one. It is a
// peripheral example/driver program, not part of the allocator itself —
// modeled on lldb/lab/1/main.go's flag-driven harness, supplemented with
// the scenario menu the original C examples/ directory offered
// (basic_example.c, advanced_example.c, project_showcase.c).
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"unsafe"

	"github.com/jnml/heapa/heap"
	"github.com/jnml/heapa/heap/arenaprov"
	"github.com/jnml/heapa/heap/report"
)

var (
	scenario = flag.String("scenario", "all", "sequential|fragmentation|resize|leak|all")
	heapSize = flag.Int("size", 1<<20, "heap size in bytes")
	seed     = flag.Int64("seed", 42, "PRNG seed for the fragmentation scenario")
)

func main() {
	flag.Parse()

	switch *scenario {
	case "sequential":
		runSequential()
	case "fragmentation":
		runFragmentation()
	case "resize":
		runResize()
	case "leak":
		runLeak()
	case "all":
		runSequential()
		runFragmentation()
		runResize()
		runLeak()
	default:
		log.Fatalf("heapdemo: unknown scenario %q", *scenario)
	}
}

func newHeap() *heap.Heap {
	h := heap.New(arenaprov.Slice{})
	if err := h.Init(*heapSize); err != nil {
		log.Fatal(err)
	}
	return h
}

// runSequential allocates a few blocks, releases one, and prints stats —
// end-to-end scenario 1 of spec.md §8.
func runSequential() {
	fmt.Println("--- sequential ---")
	h := newHeap()
	defer h.Cleanup()

	a := h.Allocate(100)
	b := h.Allocate(200)
	c := h.Allocate(300)
	_ = a
	_ = c
	h.Release(b)

	var st heap.Stats
	h.Stats(&st)
	report.Stats(os.Stdout, st)
	fmt.Println("audit:", h.Audit())
}

// runFragmentation allocates twenty blocks of 50 to 57 bytes (sizes drawn
// from -seed), frees every other one, then runs a manual coalesce pass —
// end-to-end scenario 2.
func runFragmentation() {
	fmt.Println("--- fragmentation ---")
	h := newHeap()
	defer h.Cleanup()

	rng := rand.New(rand.NewSource(*seed))
	ptrs := make([]unsafe.Pointer, 20)
	for i := range ptrs {
		ptrs[i] = h.Allocate(50 + rng.Intn(8))
	}
	for i := 1; i < len(ptrs); i += 2 {
		h.Release(ptrs[i])
	}

	var before heap.Stats
	h.Stats(&before)
	h.CoalescePass()
	var after heap.Stats
	h.Stats(&after)

	report.Stats(os.Stdout, after)
	fmt.Printf("blocks before pass: %d, after: %d\n", before.NumBlocks, after.NumBlocks)
	fmt.Println("audit:", h.Audit())
}

// runResize allocates, writes a pattern, grows, and checks the pattern
// survived — end-to-end scenario 4.
func runResize() {
	fmt.Println("--- resize ---")
	h := newHeap()
	defer h.Cleanup()

	p := h.Allocate(100)
	buf := unsafe.Slice((*byte)(p), 100)
	for i := range buf {
		buf[i] = 0xA5
	}

	p = h.Resize(p, 500)
	buf = unsafe.Slice((*byte)(p), 100)
	ok := true
	for _, v := range buf {
		if v != 0xA5 {
			ok = false
			break
		}
	}
	fmt.Println("pattern preserved across growth:", ok)

	var st heap.Stats
	h.Stats(&st)
	report.Stats(os.Stdout, st)
}

// runLeak allocates a few blocks, releases only some, and prints what
// LeakScan still finds — supplements the original's mem_detect_leaks
// driver demo.
func runLeak() {
	fmt.Println("--- leak ---")
	h := newHeap()
	defer h.Cleanup()

	keep := h.Allocate(64)
	_ = keep
	freed := h.Allocate(64)
	h.Release(freed)

	report.Leaks(os.Stdout, h.LeakScan())
	report.Layout(os.Stdout, h.LayoutDump())
}
