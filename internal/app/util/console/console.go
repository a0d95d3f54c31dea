package console

import (
	"fmt"
	"io"
	"os"
)

// Printer writes user-facing messages, optionally prefixed with a decorative
// emoji. Diagnostics go through the logger instead; this is only for the
// interactive surface.
type Printer struct {
	out        io.Writer
	decorative bool
}

func NewPrinter(decorative bool) Printer {
	return Printer{out: os.Stdout, decorative: decorative}
}

func NewPrinterTo(out io.Writer, decorative bool) Printer {
	return Printer{out: out, decorative: decorative}
}

func (p Printer) Println(emoji, msg string) {
	if p.decorative && emoji != "" {
		fmt.Fprintf(p.out, "%s %s\n", emoji, msg)
		return
	}
	fmt.Fprintln(p.out, msg)
}

func (p Printer) Printf(emoji, format string, args ...any) {
	p.Println(emoji, fmt.Sprintf(format, args...))
}
