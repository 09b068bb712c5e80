package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/vaughan0/go-ini"
)

// config holds settings read from advent.ini. Every setting is optional.
//
//	[output]
//	commas = true
//
//	[profile]
//	fgprof = /tmp/advent.pprof
//
//	[verify]
//	workers = 4
//
//	[repl]
//	history = /tmp/advent-history
type config struct {
	commas  bool
	fgprof  string
	workers int
	history string
}

func defaultConfig() *config {
	return &config{workers: runtime.NumCPU()}
}

var cfg = defaultConfig()

// configPath returns $ADVENT_CONFIG if set, and otherwise advent/advent.ini
// under the user's config directory.
func configPath() (string, error) {
	if p := os.Getenv("ADVENT_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "advent", "advent.ini"), nil
}

func loadConfig() (*config, error) {
	path, err := configPath()
	if err != nil {
		// No config dir means no config file.
		return defaultConfig(), nil
	}
	f, err := ini.LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	c, err := parseConfig(f)
	if err != nil {
		return nil, fmt.Errorf("bad config (%s): %s", path, err)
	}
	return c, nil
}

func parseConfig(f ini.File) (*config, error) {
	c := defaultConfig()
	if s, ok := f.Get("output", "commas"); ok {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("output.commas: %s", err)
		}
		c.commas = b
	}
	if s, ok := f.Get("profile", "fgprof"); ok {
		c.fgprof = s
	}
	if s, ok := f.Get("verify", "workers"); ok {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("verify.workers: %s", err)
		}
		if n < 1 {
			return nil, fmt.Errorf("verify.workers must be positive (got %d)", n)
		}
		c.workers = n
	}
	if s, ok := f.Get("repl", "history"); ok {
		c.history = s
	}
	return c, nil
}
