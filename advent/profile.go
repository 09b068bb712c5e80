package main

import (
	"log"
	"os"

	"github.com/felixge/fgprof"
)

// startProfile begins writing an fgprof profile in pprof format to path and
// returns a function that finishes it. An empty path disables profiling.
func startProfile(path string) func() {
	if path == "" {
		return func() {}
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	stop := fgprof.Start(f, fgprof.FormatPprof)
	return func() {
		if err := stop(); err != nil {
			log.Fatalf("error writing profile: %s", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("error writing profile: %s", err)
		}
	}
}
