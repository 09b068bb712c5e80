package main

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/cespare/spiralmemory/spiral"
	"github.com/chzyer/readline"
)

func init() {
	register("3repl", day3repl)
}

// day3repl answers both questions for each number typed at the prompt.
func day3repl(_ []string) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "spiral> ",
		HistoryFile: cfg.history,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return
		default:
			log.Println("Readline error:", err)
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s, err := answer(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(s)
	}
}

func answer(line string) (string, error) {
	n, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return "", err
	}
	if err := spiral.CheckCell(n); err != nil {
		return "", err
	}
	if err := spiral.CheckTarget(n); err != nil {
		return "", err
	}
	d := spiral.Distance(n)
	s := spiral.SumToTarget(n)
	return fmt.Sprintf("distance %s; sum %s", formatInt(d), formatInt(s)), nil
}
