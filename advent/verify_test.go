package main

import (
	"strings"
	"testing"

	"github.com/cespare/spiralmemory/spiral"
)

func TestVerify(t *testing.T) {
	for _, tt := range []struct {
		n       int64
		workers int
	}{
		{1, 1},
		{2, 4},
		{1000, 1},
		{1000, 3},
		{5000, 8},
		{7, 0},
	} {
		if err := verify(tt.n, tt.workers); err != nil {
			t.Errorf("verify(%d, %d): %s", tt.n, tt.workers, err)
		}
	}
}

func TestVerifyRangeMismatch(t *testing.T) {
	l := spiral.NewLayout()
	l.Grow(100)
	offByOne := func(n int64) int64 {
		if n == 50 {
			return spiral.Distance(n) + 1
		}
		return spiral.Distance(n)
	}
	err := verifyRange(l, 1, 100, offByOne, nil)
	if err == nil {
		t.Fatal("got nil error")
	}
	if !strings.HasPrefix(err.Error(), "cell 50 at ") {
		t.Errorf("unexpected error: %s", err)
	}
	if err := verifyRange(l, 51, 100, offByOne, nil); err != nil {
		t.Errorf("range after the bad cell: %s", err)
	}
}

func TestVerifyRangeQuit(t *testing.T) {
	quit := make(chan struct{})
	close(quit)
	// The layout only has cell 1, so reaching Coords(4096) would grow it;
	// the quit check comes first.
	l := spiral.NewLayout()
	if err := verifyRange(l, 4096, 8192, spiral.Distance, quit); err != nil {
		t.Errorf("got %v after quit; want nil", err)
	}
	if l.Len() != 1 {
		t.Errorf("layout grew to %d cells after quit", l.Len())
	}
}
