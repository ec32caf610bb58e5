package utils

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Printer writes progress lines for people. The leading mark (usually an
// emoji) is only printed when the output is a terminal, so redirected
// output stays plain.
type Printer struct {
	out   io.Writer
	fancy bool
}

func NewPrinter(f *os.File) *Printer {
	return &Printer{out: f, fancy: term.IsTerminal(int(f.Fd()))}
}

func (p *Printer) Println(mark string, a ...any) {
	if p.fancy && mark != "" {
		a = append([]any{mark}, a...)
	}
	fmt.Fprintln(p.out, a...)
}

func (p *Printer) Printf(mark string, format string, a ...any) {
	if p.fancy && mark != "" {
		format = mark + " " + format
	}
	fmt.Fprintf(p.out, format, a...)
}
