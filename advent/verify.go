package main

import (
	"fmt"
	"log"

	"github.com/cespare/spiralmemory/spiral"
	"github.com/cespare/wait"
)

func init() {
	register("3verify", day3verify)
}

// day3verify checks spiral.Distance against a walked-out layout for every
// cell up to the given number.
func day3verify(args []string) {
	n := parseArg(args)
	if n < 1 || n > maxVerify {
		log.Fatalf("cell count must be in [1, %d]", maxVerify)
	}
	if err := verify(n, cfg.workers); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("checked %s cells\n", formatInt(n))
}

// maxVerify bounds the layout held in memory.
const maxVerify = 50_000_000

func verify(n int64, workers int) error {
	if workers < 1 {
		workers = 1
	}
	l := spiral.NewLayout()
	// Place every cell up front; after this the layout is only read.
	l.Grow(n)

	shard := (n + int64(workers) - 1) / int64(workers)
	var wg wait.Group
	for lo := int64(1); lo <= n; lo += shard {
		lo, hi := lo, min(lo+shard-1, n)
		wg.Go(func(quit <-chan struct{}) error {
			return verifyRange(l, lo, hi, spiral.Distance, quit)
		})
	}
	return wg.Wait()
}

func verifyRange(l *spiral.Layout, lo, hi int64, distance func(int64) int64, quit <-chan struct{}) error {
	for i := lo; i <= hi; i++ {
		if i%4096 == 0 {
			select {
			case <-quit:
				return nil
			default:
			}
		}
		v := l.Coords(i)
		if got, want := distance(i), v.Manhattan(); got != want {
			return fmt.Errorf("cell %d at %s: Distance gave %d; want %d", i, v, got, want)
		}
	}
	return nil
}
