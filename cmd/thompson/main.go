// Command thompson is a small grep-style front end for the engine: it
// compiles a pattern, searches each input line and prints the lines with
// their occurrences highlighted.
//
// Usage:
//
//	thompson [-w] [-spans] [-plain] pattern [file]
//
// With no file, input is read from stdin. Exit status is 0 when at least one
// line matched, 1 when none did, and 2 on usage or compilation errors.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/coregx/thompson"
)

var (
	wordMode   = flag.Bool("w", false, "match each line as a whole word instead of searching")
	printSpans = flag.Bool("spans", false, "print start:end spans instead of highlighting")
	plain      = flag.Bool("plain", false, "bracket matches instead of using ANSI escapes")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-w] [-spans] [-plain] pattern [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		flag.Usage()
		return 2
	}

	re, err := thompson.Compile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
		return 2
	}

	in := os.Stdin
	if len(args) == 2 {
		f, err := os.Open(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
			return 2
		}
		defer f.Close()
		in = f
	}

	matched := false
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if *wordMode {
			if re.MatchWord(line) {
				matched = true
				fmt.Println(line)
			}
			continue
		}

		spans := re.FindOccurrences(line)
		if len(spans) == 0 {
			continue
		}
		matched = true
		thompson.SortSpans(spans)

		switch {
		case *printSpans:
			parts := make([]string, len(spans))
			for i, s := range spans {
				parts[i] = fmt.Sprintf("%d:%d", s.Start, s.End)
			}
			fmt.Printf("%s\t%s\n", strings.Join(parts, " "), line)
		case *plain:
			fmt.Println(thompson.HighlightPlain(line, spans))
		default:
			fmt.Println(thompson.Highlight(line, spans))
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
		return 2
	}

	if !matched {
		return 1
	}
	return 0
}
