package login

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// spinner shows an indeterminate progress indicator while a request is in
// flight. It renders nothing when the CLI is not attached to a terminal.
type spinner struct {
	progress *mpb.Progress
	bar      *mpb.Bar
}

func newSpinner(enabled bool, out io.Writer, msg string) *spinner {
	if !enabled {
		return &spinner{}
	}

	p := mpb.New(mpb.WithWidth(5), mpb.WithOutput(out))
	b := p.New(-1,
		mpb.SpinnerStyle(),
		mpb.PrependDecorators(decor.Name(msg+" ")),
	)

	return &spinner{progress: p, bar: b}
}

func (s *spinner) stop() {
	if s.progress == nil {
		return
	}
	s.bar.SetTotal(-1, true)
	s.progress.Wait()
}
