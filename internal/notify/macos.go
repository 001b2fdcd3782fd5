// Package notify raises a desktop notification when a design run finishes.
// Notifications are best-effort; callers log failures and move on.
package notify

import (
	"fmt"
	"os/exec"
	"strings"
)

// DesignComplete announces a finished design run.
func DesignComplete(appName string, fileCount int) error {
	return Send("Blueprint", completionMessage(appName, fileCount))
}

func completionMessage(appName string, n int) string {
	if n == 1 {
		return fmt.Sprintf("1 document generated for %s", appName)
	}
	return fmt.Sprintf("%d documents generated for %s", n, appName)
}

// Send sends a macOS notification via osascript with sound.
func Send(title, message string) error {
	title = escapeAppleScript(title)
	message = escapeAppleScript(message)

	script := fmt.Sprintf(
		`display notification %q with title %q sound name "default"`,
		message, title,
	)

	cmd := exec.Command("osascript", "-e", script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("osascript: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}
