package output

import (
	"io"
	"time"

	"github.com/efritz/pentimento"
)

var ticker = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const tickInterval = 100 * time.Millisecond

// WithProgress runs fn, animating a progress line labelled name on w until
// it returns. Without progress fn is simply called.
func WithProgress(w io.Writer, enabled bool, name string, fn func() error) error {
	if !enabled {
		return fn()
	}

	errs := make(chan error, 1)
	go func() {
		errs <- fn()
	}()

	return pentimento.PrintProgress(func(p *pentimento.Printer) error {
		defer p.Reset()

		for i := 0; ; i++ {
			content := pentimento.NewContent()
			content.AddLine("%s %s...", ticker[i%len(ticker)], name)
			p.WriteContent(content)

			select {
			case err := <-errs:
				return err
			case <-time.After(tickInterval):
			}
		}
	}, pentimento.WithWriter(w))
}
