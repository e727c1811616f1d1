// Package browser opens suggestion pages in the user's web browser.
package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/custodia-labs/ghsuggest/internal/core/ports/driven"
)

// Ensure Opener implements the interface.
var _ driven.URLOpener = (*Opener)(nil)

// ErrUnsupportedURL is returned for anything other than an http(s) URL.
var ErrUnsupportedURL = errors.New("browser: only http and https URLs can be opened")

// Opener launches the platform URL handler.
type Opener struct {
	goos  string
	start func(name string, args ...string) error
}

// NewOpener creates an opener for the running platform.
func NewOpener() *Opener {
	return &Opener{
		goos: runtime.GOOS,
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// Open opens rawURL using the system default handler.
func (o *Opener) Open(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrUnsupportedURL, rawURL)
	}

	switch o.goos {
	case "darwin":
		return o.start("open", rawURL)
	case "linux", "freebsd", "openbsd", "netbsd":
		return o.start("xdg-open", rawURL)
	case "windows":
		return o.start("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		return fmt.Errorf("unsupported platform: %s", o.goos)
	}
}
