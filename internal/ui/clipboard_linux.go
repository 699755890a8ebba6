//go:build linux || freebsd || netbsd || openbsd

package ui

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Clipboard access shells out to the session's clipboard tool. Wayland
// sessions get wl-clipboard, X11 sessions get xclip or xsel. When none
// is installed, paste and copy silently do nothing.

func clipboardReadCmd() *exec.Cmd {
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		if _, err := exec.LookPath("wl-paste"); err == nil {
			return exec.Command("wl-paste", "--no-newline")
		}
	}
	if _, err := exec.LookPath("xclip"); err == nil {
		return exec.Command("xclip", "-selection", "clipboard", "-out")
	}
	if _, err := exec.LookPath("xsel"); err == nil {
		return exec.Command("xsel", "--clipboard", "--output")
	}
	return nil
}

func clipboardWriteCmd() *exec.Cmd {
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		if _, err := exec.LookPath("wl-copy"); err == nil {
			return exec.Command("wl-copy")
		}
	}
	if _, err := exec.LookPath("xclip"); err == nil {
		return exec.Command("xclip", "-selection", "clipboard", "-in")
	}
	if _, err := exec.LookPath("xsel"); err == nil {
		return exec.Command("xsel", "--clipboard", "--input")
	}
	return nil
}

// readClipboard reads text from the system clipboard.
func readClipboard() string {
	cmd := clipboardReadCmd()
	if cmd == nil {
		return ""
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Start(); err != nil {
		return ""
	}

	// The tool can hang when the selection owner is unresponsive
	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()
	select {
	case err := <-done:
		if err != nil {
			return ""
		}
	case <-time.After(time.Second):
		cmd.Process.Kill()
		<-done
		return ""
	}

	return strings.TrimRight(out.String(), "\n")
}

// writeClipboard writes text to the system clipboard.
func writeClipboard(text string) {
	cmd := clipboardWriteCmd()
	if cmd == nil {
		return
	}
	cmd.Stdin = strings.NewReader(text)
	go cmd.Run()
}
