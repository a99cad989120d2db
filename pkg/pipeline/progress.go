package pipeline

import (
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/taigrr/rasterlab/pkg/config"
)

// newProgress returns a face-count progress bar, or nil when none should be
// shown.
func newProgress(cfg config.Config, opts Options, total int, desc string) *progressbar.ProgressBar {
	if total <= 0 {
		return nil
	}
	w := opts.Progress
	if w == nil {
		if !cfg.Progress || !term.IsTerminal(int(os.Stderr.Fd())) {
			return nil
		}
		w = os.Stderr
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
