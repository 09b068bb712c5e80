package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/cespare/spiralmemory/spiral"
	"github.com/kr/pretty"
)

func init() {
	register("3", day3)
	register("3a", day3a)
	register("3b", day3b)
	register("3coords", day3coords)
	register("3index", day3index)
	register("3seq", day3seq)
	register("3dump", day3dump)
}

// day3 prints both answers for one input, distance first.
func day3(args []string) {
	n := parseArg(args)
	fmt.Println(formatInt(distance(n)))
	fmt.Println(formatInt(sumToTarget(n)))
}

func day3a(args []string) {
	fmt.Println(formatInt(distance(parseArg(args))))
}

func day3b(args []string) {
	fmt.Println(formatInt(sumToTarget(parseArg(args))))
}

func day3coords(args []string) {
	n := parseArg(args)
	if err := spiral.CheckCell(n); err != nil {
		log.Fatal(err)
	}
	v := spiral.NewLayout().Coords(n)
	fmt.Println(v.X, v.Y)
}

func day3index(args []string) {
	if len(args) != 2 {
		log.Fatal("need 2 args")
	}
	x, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		log.Fatal(err)
	}
	y, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(formatInt(spiral.NewLayout().Index(spiral.Vec2{X: x, Y: y})))
}

func day3seq(args []string) {
	k := parseArg(args)
	if k < 0 || k > maxSeq {
		log.Fatalf("sequence length must be in [0, %d]", maxSeq)
	}
	for _, v := range spiral.Sequence(int(k)) {
		fmt.Println(formatInt(v))
	}
}

// maxSeq is the number of spiral-sum values that fit in an int64.
const maxSeq = 463

type dumpState struct {
	Step   int
	Pos    spiral.Vec2
	Around spiral.Vec2
	Inward spiral.Vec2
	Value  int64
}

// day3dump prints the accumulator's state after each of the first k steps.
func day3dump(args []string) {
	k := parseArg(args)
	if k < 0 || k >= maxSeq {
		log.Fatalf("step count must be in [0, %d)", maxSeq)
	}
	a := spiral.NewAccumulator()
	for i := 1; i <= int(k); i++ {
		a.Next()
		c := a.Cursor()
		pretty.Println(dumpState{
			Step:   i,
			Pos:    c.Pos(),
			Around: c.Around(),
			Inward: c.Inward(),
			Value:  a.Value(),
		})
	}
}

func parseArg(args []string) int64 {
	if len(args) != 1 {
		log.Fatal("need 1 arg")
	}
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		log.Fatal(err)
	}
	return n
}

func distance(n int64) int64 {
	if err := spiral.CheckCell(n); err != nil {
		log.Fatal(err)
	}
	return spiral.Distance(n)
}

func sumToTarget(target int64) int64 {
	if err := spiral.CheckTarget(target); err != nil {
		log.Fatal(err)
	}
	return spiral.SumToTarget(target)
}
