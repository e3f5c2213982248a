package preview

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// ErrPreviewBlocked means no browsing context could be opened. It is
// distinct from rendering or publishing failures.
var ErrPreviewBlocked = errors.New("preview window was blocked")

// Opener shows a URL to the user.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// BrowserOpener launches the platform's default browser.
type BrowserOpener struct {
	// Command overrides the platform launcher, for example "firefox".
	Command string
}

func (o BrowserOpener) command(url string) (string, []string) {
	if o.Command != "" {
		return o.Command, []string{url}
	}
	switch runtime.GOOS {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

func headless() bool {
	if runtime.GOOS != "linux" && runtime.GOOS != "freebsd" {
		return false
	}
	return os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == ""
}

func (o BrowserOpener) Open(ctx context.Context, url string) error {
	if o.Command == "" && headless() {
		return fmt.Errorf("%w: no display available", ErrPreviewBlocked)
	}
	name, args := o.command(url)
	path, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%w: %s not found", ErrPreviewBlocked, name)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	// The launcher outlives ctx; it is reaped in the background.
	cmd := exec.Command(path, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %v", ErrPreviewBlocked, err)
	}
	go reap(cmd)
	return nil
}

var reap = func(cmd *exec.Cmd) { _ = cmd.Wait() }

// NoOpener never opens anything; the caller prints the URL instead.
type NoOpener struct{}

func (NoOpener) Open(context.Context, string) error { return nil }
