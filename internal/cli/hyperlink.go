package cli

import (
	"fmt"
	"net/url"
	"os"

	"github.com/mattn/go-isatty"
)

// hyperlinkEnabled caches whether we should emit hyperlinks.
// Hyperlinks are only emitted to TTY terminals, not JSON output or pipes.
var hyperlinkEnabled *bool

// shouldEmitHyperlinks returns true if we should emit OSC 8 hyperlinks.
func shouldEmitHyperlinks() bool {
	if hyperlinkEnabled != nil {
		return *hyperlinkEnabled
	}

	enabled := !jsonOutput && isatty.IsTerminal(os.Stdout.Fd())
	hyperlinkEnabled = &enabled
	return enabled
}

// fileURL builds a file:// URL for an absolute path.
func fileURL(absPath string) string {
	u := url.URL{Scheme: "file", Path: absPath}
	return u.String()
}

// formatFileLink renders label, as an OSC 8 link to absPath when the terminal
// supports it.
func formatFileLink(label, absPath string, render func(string) string) string {
	if render == nil {
		render = func(s string) string { return s }
	}
	if !shouldEmitHyperlinks() || absPath == "" {
		return render(label)
	}
	return render(fmt.Sprintf("\x1b]8;;%s\x07%s\x1b]8;;\x07", fileURL(absPath), label))
}
