package main

import (
	"reflect"
	"sort"
	"testing"
)

func TestNameLess(t *testing.T) {
	names := []string{"10a", "3b", "3verify", "3", "3a", "1b", "2a", "1a"}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	want := []string{"1a", "1b", "2a", "3", "3a", "3b", "3verify", "10a"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("got %v; want %v", names, want)
	}
}

func TestSplitName(t *testing.T) {
	for _, tt := range []struct {
		name   string
		n      int
		suffix string
	}{
		{"3", 3, ""},
		{"3a", 3, "a"},
		{"12coords", 12, "coords"},
	} {
		n, suffix := splitName(tt.name)
		if n != tt.n || suffix != tt.suffix {
			t.Errorf("splitName(%q): got (%d, %q); want (%d, %q)",
				tt.name, n, suffix, tt.n, tt.suffix)
		}
	}
}

func TestDay3Registered(t *testing.T) {
	for _, name := range []string{"3", "3a", "3b", "3coords", "3index", "3seq", "3dump", "3repl", "3verify"} {
		if _, ok := solutions[name]; !ok {
			t.Errorf("solution %q not registered", name)
		}
	}
}

func TestRegisterDuplicate(t *testing.T) {
	const name = "99dup"
	register(name, func([]string) {})
	defer delete(solutions, name)
	defer func() {
		if recover() == nil {
			t.Fatal("duplicate register did not panic")
		}
	}()
	register(name, func([]string) {})
}

func TestFormatInt(t *testing.T) {
	defer func(c *config) { cfg = c }(cfg)

	cfg = defaultConfig()
	if got, want := formatInt(1234567), "1234567"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
	cfg.commas = true
	if got, want := formatInt(1234567), "1,234,567"; got != want {
		t.Errorf("with commas: got %q; want %q", got, want)
	}
}

func TestAnswer(t *testing.T) {
	defer func(c *config) { cfg = c }(cfg)
	cfg = defaultConfig()

	got, err := answer(" 748")
	if err == nil {
		t.Errorf("answer with leading space: got %q; want error", got)
	}
	got, err = answer("748")
	if err != nil {
		t.Fatal(err)
	}
	if want := "distance 19; sum 806"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
	for _, line := range []string{"0", "-3", "x", "9223372036854775807"} {
		if _, err := answer(line); err == nil {
			t.Errorf("answer(%q): got nil error", line)
		}
	}
}
