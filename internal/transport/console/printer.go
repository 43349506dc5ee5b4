// Package console renders exercise output as plain text lines.
package console

import (
	"fmt"
	"io"

	"github.com/Hughesneal88/dcit318-assignment3-11178252/internal/model"
)

type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Heading(title string) {
	fmt.Fprintf(p.w, "\n== %s ==\n", title)
}

func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) OK(format string, args ...any) {
	p.Line("[OK] "+format, args...)
}

// Caught prints err prefixed with its kind, e.g. "[Not Found] ...".
func (p *Printer) Caught(err error) {
	if err == nil {
		return
	}
	p.Line("[%s] %v", model.KindOf(err), err)
}

// List prints one line per item, or empty when there is nothing to show.
func List[T fmt.Stringer](p *Printer, items []T, empty string) {
	if len(items) == 0 && empty != "" {
		p.Line("%s", empty)
		return
	}
	for _, item := range items {
		p.Line("%s", item.String())
	}
}
