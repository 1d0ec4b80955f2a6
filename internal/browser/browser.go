package browser

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Open hands url to the default browser of the current platform.
func Open(ctx context.Context, url string) error {
	name, args := command(runtime.GOOS, url)

	if err := exec.CommandContext(ctx, name, args...).Run(); err != nil {
		return fmt.Errorf("could not open the browser: %w", err)
	}

	return nil
}

// command returns the program that opens url in the default browser.
func command(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}
