package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		var names []string
		for name := range solutions {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
		fmt.Fprintf(os.Stderr, "usage: %s [solution] [args...]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "where solution is one of:")
		for _, name := range names {
			fmt.Fprintln(os.Stderr, name)
		}
		os.Exit(1)
	}

	fn, ok := solutions[os.Args[1]]
	if !ok {
		log.Fatalf("unknown solution %q", os.Args[1])
	}
	c, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	cfg = c
	stop := startProfile(cfg.fgprof)
	fn(os.Args[2:])
	stop()
}

var solutions = make(map[string]func([]string))

func register(name string, fn func([]string)) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

// nameLess orders solution names by day number and then by suffix,
// so that 3 < 3a < 3b < 10a.
func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 != n1 {
		return n0 < n1
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}

// formatInt renders n for output, grouping digits if the config asks for it.
func formatInt(n int64) string {
	if cfg.commas {
		return humanize.Comma(n)
	}
	return strconv.FormatInt(n, 10)
}
