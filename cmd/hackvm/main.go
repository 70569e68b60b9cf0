// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/hackvm/translate"
	"github.com/ezrec/hackvm/vm"
)

// load parses one source file, or stdin for "-".
func load(ctx context.Context, rd *vm.Reader, name string) (prog *vm.Program, err error) {
	if name == "-" {
		return rd.Parse(ctx, os.Stdin)
	}

	inf, err := os.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	return rd.Parse(ctx, inf)
}

// emit writes the canonical form of every instruction.
func emit(w io.Writer, progs ...*vm.Program) (err error) {
	bw := bufio.NewWriter(w)
	for in := range vm.Concat(progs...) {
		_, err = fmt.Fprintln(bw, in)
		if err != nil {
			return
		}
	}
	return bw.Flush()
}

// save writes the canonical program text to output, or stdout for "-".
func save(output string, progs ...*vm.Program) (err error) {
	if output == "-" {
		return emit(os.Stdout, progs...)
	}

	ouf, err := os.Create(output)
	if err != nil {
		return
	}
	defer func() {
		cerr := ouf.Close()
		if err == nil {
			err = cerr
		}
	}()

	return emit(ouf, progs...)
}

func main() {
	var output string
	var verbose bool
	var jobs int
	var lang string

	rd := &vm.Reader{}

	flag.StringVar(&output, "o", "-", "Canonical VM output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.IntVar(&jobs, "j", 0, "Parallel line parsers (0 = GOMAXPROCS)")
	flag.StringVar(&lang, "lang", "", "Language of line diagnostics (default from locale)")
	flag.Func("D", "Predefine NAME=VALUE for $(...) expressions", func(def string) error {
		name, value, ok := strings.Cut(def, "=")
		if !ok || len(name) == 0 {
			return fmt.Errorf("expected NAME=VALUE, got %q", def)
		}
		rd.Predefine(name, value)
		return nil
	})

	flag.Parse()

	if len(lang) != 0 {
		translate.SetLanguage(lang)
	}

	rd.Verbose = verbose
	rd.Jobs = jobs

	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	ctx := context.Background()

	var progs []*vm.Program
	for _, input := range inputs {
		prog, err := load(ctx, rd, input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		progs = append(progs, prog)
	}

	err := save(output, progs...)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
