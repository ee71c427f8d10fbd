package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gchq/gaffer-experimental-sub000/validation"
)

// Printer writes validation reports for people to read.
type Printer struct {
	w       io.Writer
	header  *color.Color
	failure *color.Color
	success *color.Color
}

func NewPrinter(w io.Writer, useColor bool) *Printer {
	p := &Printer{
		w:       w,
		header:  color.New(color.FgYellow, color.Bold),
		failure: color.New(color.FgRed),
		success: color.New(color.FgGreen),
	}

	for _, c := range []*color.Color{p.header, p.failure, p.success} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func (p *Printer) Header(format string, args ...interface{}) {
	p.header.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Success(format string, args ...interface{}) {
	p.success.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Failure(format string, args ...interface{}) {
	p.failure.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format, args...)
}

// Report prints the outcome of validating one document: a success line, or
// the number of errors followed by each message.
func (p *Printer) Report(name string, notifications *validation.Notifications) {
	if notifications.IsEmpty() {
		p.Success("%s schema is valid!", name)
		return
	}

	p.Failure("Found %d errors", notifications.Len())
	fmt.Fprintf(p.w, "\n")

	for i, message := range notifications.Messages() {
		fmt.Fprintf(p.w, "%d) %s\n", i+1, message)
	}

	fmt.Fprintf(p.w, "\n")
}
