// ABOUTME: End-to-end tests running the real pickline binary under a pty
// ABOUTME: Asserts the stdout contract and exit codes for confirm and cancel

//go:build !windows

package e2e

import (
	"strings"
	"testing"
	"time"
)

const (
	keyEnter = "\r"
	keyEsc   = "\x1b"
	keyDown  = "\x1b[B"
)

func TestConfirm_PrintsChoiceWithoutNewline(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	s := start(t, "apple\nbanana\ngrape\n")
	s.expectString(t, "banana", 5*time.Second)

	// "ap" reorders to grape, apple, banana; Down lands on apple.
	s.send(t, "ap")
	s.expectString(t, "3/3", 5*time.Second)
	s.send(t, keyDown)
	s.send(t, keyEnter)

	if code := s.waitExit(t, 5*time.Second); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if got := s.stdout.String(); got != "apple" {
		t.Errorf("stdout = %q, want %q (no trailing newline)", got, "apple")
	}
}

func TestCancel_EmptyStdoutAndExitOne(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	s := start(t, "apple\nbanana\n")
	s.expectString(t, "apple", 5*time.Second)

	s.send(t, keyEsc)

	if code := s.waitExit(t, 5*time.Second); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if got := s.stdout.String(); got != "" {
		t.Errorf("stdout = %q, want empty on cancel", got)
	}
	s.expectString(t, "user cancelled", 2*time.Second)
}

func TestConfirm_NoMatchesKeepsSessionAlive(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	s := start(t, "alpha\nbeta\n")
	s.expectString(t, "alpha", 5*time.Second)

	s.send(t, "zz")
	s.expectString(t, "0/2", 5*time.Second)
	s.send(t, keyEnter)

	select {
	case <-s.done:
		t.Fatal("enter with no matches ended the session")
	case <-time.After(300 * time.Millisecond):
	}

	s.send(t, keyEsc)
	if code := s.waitExit(t, 5*time.Second); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestPromptFlag_OverridesPrompt(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	s := start(t, "one\ntwo\n", "-prompt", "pick: ")
	s.expectString(t, "pick: ", 5*time.Second)

	s.send(t, keyEnter)
	if code := s.waitExit(t, 5*time.Second); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if got := s.stdout.String(); got != "one" {
		t.Errorf("stdout = %q, want %q", got, "one")
	}
}

func TestEmptyStdin_CancelStillExitsCleanly(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	s := start(t, "")
	s.expectString(t, "0/0", 5*time.Second)

	// Enter has nothing to confirm; Esc is the only way out.
	s.send(t, keyEnter)
	s.send(t, keyEsc)

	if code := s.waitExit(t, 5*time.Second); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if got := s.stdout.String(); got != "" {
		t.Errorf("stdout = %q, want empty", got)
	}
}

func TestVersionFlag_PrintsAndExits(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	s := start(t, "", "-version")
	if code := s.waitExit(t, 5*time.Second); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if got := s.stdout.String(); !strings.Contains(got, "pickline") {
		t.Errorf("stdout = %q, want version banner", got)
	}
}
