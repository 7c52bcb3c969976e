//go:build e2e && unix

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"
	"unsafe"

	"github.com/creack/pty"
)

const ringSize = 1 << 20 // 1 MiB of scrollback

var binPath = "comboselect_e2e"

// Key sequences as a terminal sends them
const (
	KeyEnter     = "\r"
	KeyCtrlC     = "\x03"
	KeyCtrlS     = "\x13"
	KeyCtrlU     = "\x15"
	KeyEsc       = "\x1b"
	KeyTab       = "\t"
	KeyBackspace = "\x7f"
	KeyUp        = "\x1b[A"
	KeyDown      = "\x1b[B"
	KeyF1        = "\x1bOP"
)

// promptMark is drawn at the start of the control line
const promptMark = "❯"

// ANSI escape sequence regex for normalization - covers CSI, OSC, charset, keypad modes
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` + // CSI sequences
		`(?:\x1b\][^\x07]*\x07)|` + // OSC sequences
		`(?:\x1b[\(\)][A-Za-z])|` + // charset sequences
		`(?:\x1b=|\x1b>)|` + // keypad mode sequences
		`\r`, // carriage returns
)

// TUITestFramework drives the binary inside a PTY. The UI is drawn on the
// PTY while stdout is captured separately, since that is where the picked
// options are printed.
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	tty       *os.File
	cmd       *exec.Cmd
	workspace string
	stdout    bytes.Buffer
	exited    chan struct{} // closed once the process was reaped
	exitErr   error

	// Ring buffer for continuous output capture
	mu   sync.Mutex
	buf  []byte
	head int
	full bool
}

// NewTUITest creates a test driver with its own workspace directory
func NewTUITest(t *testing.T) *TUITestFramework {
	return &TUITestFramework{
		t:         t,
		buf:       make([]byte, ringSize),
		workspace: t.TempDir(),
	}
}

// WriteFile writes a file into the workspace and returns its path
func (tf *TUITestFramework) WriteFile(name, content string) string {
	tf.t.Helper()
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tf.t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// env isolates the binary from the user's config and log locations
func (tf *TUITestFramework) env() []string {
	return append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C.UTF-8",
		"HOME="+tf.workspace,
		"XDG_CONFIG_HOME="+filepath.Join(tf.workspace, ".config"),
	)
}

// StartApp launches comboselect with args in a PTY
func (tf *TUITestFramework) StartApp(args ...string) error {
	args = append([]string{"--log-file", filepath.Join(tf.workspace, "comboselect.log")}, args...)
	tf.cmd = exec.Command(binPath, args...)
	tf.cmd.Env = tf.env()
	tf.cmd.Dir = tf.workspace

	ptyFile, tty, err := pty.Open()
	if err != nil {
		return fmt.Errorf("failed to open pty: %w", err)
	}

	tf.pty = ptyFile
	tf.tty = tty
	tf.cmd.Stdin = tty
	tf.cmd.Stderr = tty
	tf.cmd.Stdout = &tf.stdout
	// The PTY becomes the controlling terminal so /dev/tty works
	tf.cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true, Setctty: true}

	// Set terminal size
	ws := struct {
		Row uint16
		Col uint16
		X   uint16
		Y   uint16
	}{30, 100, 0, 0}
	syscall.Syscall(syscall.SYS_IOCTL, ptyFile.Fd(), uintptr(syscall.TIOCSWINSZ), uintptr(unsafe.Pointer(&ws)))

	if err := tf.cmd.Start(); err != nil {
		ptyFile.Close()
		tty.Close()
		return fmt.Errorf("failed to start command: %w", err)
	}

	tf.exited = make(chan struct{})
	go func() {
		tf.exitErr = tf.cmd.Wait()
		close(tf.exited)
	}()

	tf.startReader()
	return nil
}

// startReader copies PTY output into the ring buffer
func (tf *TUITestFramework) startReader() {
	go func() {
		buf := make([]byte, 8192)
		for {
			n, err := tf.pty.Read(buf)
			if n > 0 {
				tf.mu.Lock()
				for i := 0; i < n; i++ {
					tf.buf[tf.head] = buf[i]
					tf.head = (tf.head + 1) % ringSize
					if tf.head == 0 {
						tf.full = true
					}
				}
				tf.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()
}

// SendKeys sends keystrokes to the application
func (tf *TUITestFramework) SendKeys(keys ...string) error {
	tf.t.Helper()
	for _, k := range keys {
		if _, err := tf.pty.Write([]byte(k)); err != nil {
			return err
		}
		// Keep escape sequences from being merged into one read
		time.Sleep(30 * time.Millisecond)
	}
	return nil
}

// Type sends text one rune at a time
func (tf *TUITestFramework) Type(text string) error {
	tf.t.Helper()
	for _, r := range text {
		if err := tf.SendKeys(string(r)); err != nil {
			return err
		}
	}
	return nil
}

// Ready waits for the control line to be drawn
func (tf *TUITestFramework) Ready() bool {
	tf.t.Helper()
	return tf.OutputContains(promptMark, 5*time.Second)
}

// SeePlain waits for specific plain text to appear (normalized output)
func (tf *TUITestFramework) SeePlain(text string) bool {
	tf.t.Helper()
	return tf.OutputContainsPlain(text, 3*time.Second)
}

// OutputContains checks if the output contains specific text within a timeout
func (tf *TUITestFramework) OutputContains(text string, timeout time.Duration) bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool { return strings.Contains(s, text) }, timeout)
}

// OutputContainsPlain checks if the normalized output contains specific text within a timeout
func (tf *TUITestFramework) OutputContainsPlain(text string, timeout time.Duration) bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), text)
	}, timeout)
}

// WaitFor waits for a predicate to be true in the output
func (tf *TUITestFramework) WaitFor(pred func(string) bool, timeout time.Duration) bool {
	tf.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if pred(tf.Snapshot()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond) // simple, reliable polling; tests only
	}
}

// WaitExit waits for the process to exit and returns its exit code
func (tf *TUITestFramework) WaitExit(timeout time.Duration) (int, error) {
	tf.t.Helper()
	select {
	case <-tf.exited:
		var exitErr *exec.ExitError
		if errors.As(tf.exitErr, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		if tf.exitErr != nil {
			return -1, tf.exitErr
		}
		return 0, nil
	case <-time.After(timeout):
		tf.DumpTailOnFail(tf.t, "exit-timeout", 4096)
		return -1, fmt.Errorf("process did not exit within %s", timeout)
	}
}

// Stdout returns what the process printed on stdout. Only valid after
// WaitExit returned.
func (tf *TUITestFramework) Stdout() string {
	return tf.stdout.String()
}

// Snapshot returns the current contents of the ring buffer (thread-safe)
func (tf *TUITestFramework) Snapshot() string {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	if !tf.full {
		return string(tf.buf[:tf.head])
	}
	out := make([]byte, ringSize)
	copy(out, tf.buf[tf.head:])
	copy(out[ringSize-tf.head:], tf.buf[:tf.head])
	return string(out)
}

// SnapshotPlain returns the current contents of the ring buffer with ANSI sequences removed
func (tf *TUITestFramework) SnapshotPlain() string {
	return ansiRe.ReplaceAllString(tf.Snapshot(), "")
}

// DumpTailOnFail logs the last n bytes of normalized output
func (tf *TUITestFramework) DumpTailOnFail(t *testing.T, name string, n int) {
	t.Helper()
	s := tf.SnapshotPlain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	t.Logf("--- %s tail ---\n%s", name, s)
}

// Cleanup closes the PTY and terminates the application
func (tf *TUITestFramework) Cleanup() {
	if tf.cmd != nil && tf.cmd.Process != nil {
		select {
		case <-tf.exited:
		default:
			_ = tf.cmd.Process.Kill()
			<-tf.exited
		}
		tf.cmd = nil
	}
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.tty != nil {
		_ = tf.tty.Close()
		tf.tty = nil
	}
}

// RunCLI runs the binary outside the PTY and returns its combined output
func (tf *TUITestFramework) RunCLI(args ...string) (string, error) {
	cmd := exec.Command(binPath, append([]string{"--log-file", ""}, args...)...)
	cmd.Env = tf.env()
	cmd.Dir = tf.workspace
	out, err := cmd.CombinedOutput()
	return string(out), err
}
