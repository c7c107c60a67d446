package main

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// newProgressFunc returns a scheduler progress callback rendering a terminal
// progress bar, or nil when stderr is not a terminal.
func newProgressFunc(total int, description string) func(done, total int) {
	if !stderrIsTerminal() || total <= 0 {
		return nil
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionThrottle(65*time.Millisecond),
	)
	return func(done, total int) {
		_ = bar.Set(done)
		if done >= total {
			_ = bar.Finish()
		}
	}
}
